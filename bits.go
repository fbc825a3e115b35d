package huffman

import (
	"fmt"
	"io"
	"strings"

	"github.com/icza/bitio"
)

// BitReader is a sequential, single-pass source of bits.
type BitReader interface {
	// HasNextBit returns true iff NextBit has another bit to return.
	HasNextBit() bool

	// NextBit consumes and returns the next bit.
	NextBit() (Bit, error)
}

// BitWriter is a sequential sink of bits.
type BitWriter interface {
	WriteBit(bit Bit) error
}

// type StreamBitReader {{{

// StreamBitReader is a BitReader that reads a known number of bits from an
// io.Reader, most significant bit of each byte first.
type StreamBitReader struct {
	br        *bitio.Reader
	remaining uint64
}

// NewStreamBitReader returns a StreamBitReader that reads exactly numBits
// bits from r.  Any bits in r after the first numBits are not consumed by
// NextBit, although up to one partial byte may be buffered.
func NewStreamBitReader(r io.Reader, numBits uint64) *StreamBitReader {
	return &StreamBitReader{br: bitio.NewReader(r), remaining: numBits}
}

// HasNextBit returns true iff some of the numBits bits remain.
func (r *StreamBitReader) HasNextBit() bool {
	return r.remaining != 0
}

// NextBit reads the next bit.  It returns io.ErrUnexpectedEOF if the
// underlying reader ends before numBits bits have been read.
func (r *StreamBitReader) NextBit() (Bit, error) {
	if r.remaining == 0 {
		return 0, io.EOF
	}
	b, err := r.br.ReadBool()
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	if err != nil {
		return 0, err
	}
	r.remaining--
	if b {
		return 1, nil
	}
	return 0, nil
}

// Remaining returns the number of bits not yet read.
func (r *StreamBitReader) Remaining() uint64 {
	return r.remaining
}

var _ BitReader = (*StreamBitReader)(nil)

// }}}

// type StreamBitWriter {{{

// StreamBitWriter is a BitWriter that packs bits into bytes for an
// io.Writer, most significant bit first.  It must be closed to write out
// the final partial byte.
type StreamBitWriter struct {
	bw    *bitio.Writer
	count uint64
}

// NewStreamBitWriter returns a StreamBitWriter that writes to w.
func NewStreamBitWriter(w io.Writer) *StreamBitWriter {
	return &StreamBitWriter{bw: bitio.NewWriter(w)}
}

// WriteBit writes one bit.
func (w *StreamBitWriter) WriteBit(bit Bit) error {
	if err := w.bw.WriteBool(bit != 0); err != nil {
		return err
	}
	w.count++
	return nil
}

// Count returns the number of bits written so far, not counting padding.
func (w *StreamBitWriter) Count() uint64 {
	return w.count
}

// Close pads the final byte with 0 bits and flushes it.  It does not close
// the underlying io.Writer.
func (w *StreamBitWriter) Close() error {
	return w.bw.Close()
}

var (
	_ BitWriter = (*StreamBitWriter)(nil)
	_ io.Closer = (*StreamBitWriter)(nil)
)

// }}}

// type CodeReader + type CodeWriter {{{

// CodeReader is a BitReader that returns the bits of a Code.
type CodeReader struct {
	hc  Code
	pos int
}

// NewCodeReader returns a CodeReader positioned at the first bit of hc.
func NewCodeReader(hc Code) *CodeReader {
	return &CodeReader{hc: hc}
}

// HasNextBit returns true iff bits of the Code remain.
func (r *CodeReader) HasNextBit() bool {
	return r.pos < r.hc.Len()
}

// NextBit returns the next bit of the Code.
func (r *CodeReader) NextBit() (Bit, error) {
	if r.pos >= r.hc.Len() {
		return 0, io.EOF
	}
	bit := r.hc.Bit(r.pos)
	r.pos++
	return bit, nil
}

// CodeWriter is a BitWriter that collects bits into a Code.
type CodeWriter struct {
	sb strings.Builder
}

// WriteBit appends one bit.
func (w *CodeWriter) WriteBit(bit Bit) error {
	if bit != 0 {
		w.sb.WriteByte('1')
	} else {
		w.sb.WriteByte('0')
	}
	return nil
}

// Code returns the bits written so far.
func (w *CodeWriter) Code() Code {
	return Code(w.sb.String())
}

// String returns the bits written so far, quoted.
func (w *CodeWriter) String() string {
	return w.Code().String()
}

var (
	_ BitReader    = (*CodeReader)(nil)
	_ BitWriter    = (*CodeWriter)(nil)
	_ fmt.Stringer = (*CodeWriter)(nil)
)

// }}}
