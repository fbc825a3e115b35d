package huffman

import (
	"bytes"
	"errors"
	"io"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTree_Translate(t *testing.T) {
	tree := makeTestTree()

	var buf bytes.Buffer
	n, err := tree.Translate(NewCodeReader("0"+"100"+"1100"+"111"+"0"+"1101"+"101"), &buf)
	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, []byte{5, 2, 0, 4, 5, 1, 3}, buf.Bytes())

	buf.Reset()
	n, err = tree.Translate(NewCodeReader(""), &buf)
	require.NoError(t, err)
	require.Equal(t, int64(0), n)
	require.Empty(t, buf.Bytes())
}

func TestTree_Translate_Truncated(t *testing.T) {
	tree := makeTestTree()

	var buf bytes.Buffer
	n, err := tree.Translate(NewCodeReader("0"+"110"), &buf)
	require.ErrorIs(t, err, ErrTruncated)
	require.Equal(t, int64(1), n)
	require.Equal(t, []byte{5}, buf.Bytes())
}

func TestTree_Translate_Empty(t *testing.T) {
	var tree Tree

	var buf bytes.Buffer
	n, err := tree.Translate(NewCodeReader(""), &buf)
	require.NoError(t, err)
	require.Equal(t, int64(0), n)

	n, err = tree.Translate(NewCodeReader("0"), &buf)
	require.ErrorIs(t, err, ErrEmptyTree)
	require.Equal(t, int64(0), n)
	require.Empty(t, buf.Bytes())
}

func TestTree_Translate_SingleSymbol(t *testing.T) {
	var tree Tree
	require.NoError(t, tree.InitFromTable(Table{{'A', ""}}))

	var buf bytes.Buffer
	n, err := tree.Translate(NewCodeReader("000"), &buf)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
	require.Equal(t, "AAA", buf.String())

	buf.Reset()
	n, err = tree.Translate(NewCodeReader("010"), &buf)
	var fe *FormatError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, BadCode, fe.How)
	require.Equal(t, int64(1), n)
	require.Equal(t, "A", buf.String())
}

type failingBitReader struct{}

func (failingBitReader) HasNextBit() bool      { return true }
func (failingBitReader) NextBit() (Bit, error) { return 0, io.ErrClosedPipe }

func TestTree_Translate_ReadError(t *testing.T) {
	tree := makeTestTree()

	var buf bytes.Buffer
	_, err := tree.Translate(failingBitReader{}, &buf)
	require.True(t, errors.Is(err, io.ErrClosedPipe))
}

func TestTree_EncodeAll(t *testing.T) {
	tree := makeTestTree()

	var cw CodeWriter
	n, err := tree.EncodeAll(bytes.NewReader([]byte{5, 2, 0, 4}), &cw)
	require.NoError(t, err)
	require.Equal(t, int64(11), n)
	require.Equal(t, Code("0"+"100"+"1100"+"111"), cw.Code())

	n, err = tree.EncodeAll(bytes.NewReader([]byte{5, 9}), &cw)
	require.Equal(t, int64(1), n)
	var se *SymbolError
	require.ErrorAs(t, err, &se)
	require.Equal(t, Symbol(9), se.Symbol)
	require.Equal(t, "huffman: no code for symbol 9", se.Error())
}

func TestTree_EncodeAll_SingleSymbol(t *testing.T) {
	var freqs Frequencies
	freqs['z'] = 4

	var tree Tree
	tree.Init(&freqs)

	var cw CodeWriter
	n, err := tree.EncodeAll(bytes.NewReader([]byte("zzzz")), &cw)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	require.Equal(t, Code("0000"), cw.Code())
}

func TestTree_EncodeAll_Translate(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < 10; trial++ {
		data := make([]byte, 1+rng.Intn(4096))
		alphabet := 1 + rng.Intn(NumSymbols)
		for i := range data {
			// Skew toward small values so the codes differ in length.
			data[i] = byte(rng.Intn(1+rng.Intn(alphabet)) % NumSymbols)
		}

		var freqs Frequencies
		freqs.Add(data)

		var tree Tree
		tree.Init(&freqs)

		var cw CodeWriter
		numBits, err := tree.EncodeAll(bytes.NewReader(data), &cw)
		require.NoError(t, err)
		require.Equal(t, int64(cw.Code().Len()), numBits)
		if tree.Len() > 1 {
			require.Equal(t, tree.WeightedSize(&freqs), uint64(numBits))
		}

		var out bytes.Buffer
		n, err := tree.Translate(NewCodeReader(cw.Code()), &out)
		require.NoError(t, err)
		require.Equal(t, int64(len(data)), n)
		require.Equal(t, data, out.Bytes())
	}
}

func TestTree_Decode(t *testing.T) {
	tree := makeTestTree()

	type testRow struct {
		hc  Code
		min int
		max int
		sym Symbol
	}

	testData := [...]testRow{
		{hc: "", min: 1, max: 4, sym: InvalidSymbol},
		{hc: "0", min: 1, max: 1, sym: 5},
		{hc: "1", min: 3, max: 4, sym: InvalidSymbol},
		{hc: "10", min: 3, max: 3, sym: InvalidSymbol},
		{hc: "11", min: 3, max: 4, sym: InvalidSymbol},
		{hc: "100", min: 3, max: 3, sym: 2},
		{hc: "101", min: 3, max: 3, sym: 3},
		{hc: "110", min: 4, max: 4, sym: InvalidSymbol},
		{hc: "111", min: 3, max: 3, sym: 4},
		{hc: "1100", min: 4, max: 4, sym: 0},
		{hc: "1101", min: 4, max: 4, sym: 1},
		{hc: "00", min: 0, max: 0, sym: InvalidSymbol},
		{hc: "1111", min: 0, max: 0, sym: InvalidSymbol},
	}
	for _, row := range testData {
		row := row
		t.Run(row.hc.String(), func(t *testing.T) {
			sym, min, max := tree.Decode(row.hc)
			if sym != row.sym {
				t.Errorf("expected symbol %d, got %d", row.sym, sym)
			}
			if min != row.min {
				t.Errorf("expected minimum size %d, got %d", row.min, min)
			}
			if max != row.max {
				t.Errorf("expected maximum size %d, got %d", row.max, max)
			}
		})
	}

	var empty Tree
	sym, min, max := empty.Decode("")
	require.Equal(t, InvalidSymbol, sym)
	require.Equal(t, 0, min)
	require.Equal(t, 0, max)
}
