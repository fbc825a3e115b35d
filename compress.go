package huffman

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// Compress encodes all of src with the codes of t and writes the result to
// dst.  It returns the number of bytes written.
//
// The compressed form is the number of payload bits as a uvarint, followed
// by the payload bits packed most significant bit first and padded with 0
// bits to a whole byte.
//
func Compress(dst io.Writer, src io.Reader, t Tree) (int64, error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return 0, fmt.Errorf("huffman: failed to read input: %w", err)
	}

	// First pass: count the payload bits, and find out about any byte
	// without a code before anything is written.
	var numBits bitCounter
	if _, err := t.EncodeAll(bytes.NewReader(data), &numBits); err != nil {
		return 0, err
	}

	cw := &countingWriter{w: dst}

	var header [binary.MaxVarintLen64]byte
	headerLen := binary.PutUvarint(header[:], uint64(numBits))
	if _, err := cw.Write(header[:headerLen]); err != nil {
		return cw.n, err
	}

	bw := NewStreamBitWriter(cw)
	if _, err := t.EncodeAll(bytes.NewReader(data), bw); err != nil {
		return cw.n, err
	}
	if err := bw.Close(); err != nil {
		return cw.n, err
	}

	log.Debugf("compressed %d bytes into %d bits (%d bytes)", len(data), uint64(numBits), cw.n)
	return cw.n, nil
}

// Decompress decodes the output of Compress from src with the codes of t
// and writes the original bytes to dst.  It returns the number of bytes
// written.  Bytes in src after the padded payload are a FormatError.
func Decompress(dst io.Writer, src io.Reader, t Tree) (int64, error) {
	br := bufio.NewReader(src)
	numBits, err := binary.ReadUvarint(br)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return 0, &FormatError{How: Truncated, Detail: "missing payload bit count"}
	}
	if err != nil {
		return 0, &FormatError{How: BadCode, Detail: fmt.Sprintf("bad payload bit count: %v", err)}
	}

	bw := bufio.NewWriter(dst)
	n, err := t.Translate(NewStreamBitReader(br, numBits), bw)
	if errors.Is(err, io.ErrUnexpectedEOF) {
		err = &FormatError{How: Truncated, Detail: fmt.Sprintf("payload is shorter than %d bits", numBits)}
	}
	if err == nil {
		err = checkTrailing(br)
	}
	if flushErr := bw.Flush(); err == nil {
		err = flushErr
	}
	if err != nil {
		return n, err
	}

	log.Debugf("decompressed %d bits into %d bytes", numBits, n)
	return n, nil
}

// checkTrailing expects br to be at the end of its input.  The bit reader
// takes its bytes from br one at a time, so nothing past the payload has
// been consumed.
func checkTrailing(br *bufio.Reader) error {
	_, err := br.ReadByte()
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return fmt.Errorf("huffman: failed to read input: %w", err)
	}
	extra := 1 + br.Buffered()
	return &FormatError{How: TrailingData, Detail: fmt.Sprintf("at least %d bytes after the payload", extra)}
}

type bitCounter uint64

func (c *bitCounter) WriteBit(bit Bit) error {
	*c++
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
