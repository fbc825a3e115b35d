package huffman

import (
	"io"

	"github.com/chronos-tachyon/assert"
)

// Counter reports how many times each Symbol occurs in some data.
type Counter interface {
	Count(symbol Symbol) uint64
}

// Frequencies counts occurrences of each byte value.
type Frequencies [NumSymbols]uint64

// Count returns the number of occurrences of symbol.
func (f *Frequencies) Count(symbol Symbol) uint64 {
	assert.Assertf(symbol.IsValid(), "symbol %d is not in 0 .. %d", symbol, MaxSymbol)
	return f[symbol]
}

// Add counts each byte of p.
func (f *Frequencies) Add(p []byte) {
	for _, b := range p {
		f[b]++
	}
}

// Total returns the number of bytes counted.
func (f *Frequencies) Total() uint64 {
	var total uint64
	for _, n := range f {
		total += n
	}
	return total
}

// ReadFrom counts each byte read from r until EOF.
func (f *Frequencies) ReadFrom(r io.Reader) (int64, error) {
	var total int64
	buf := make([]byte, 64*1024)
	for {
		n, err := r.Read(buf)
		f.Add(buf[:n])
		total += int64(n)
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

var (
	_ Counter       = (*Frequencies)(nil)
	_ io.ReaderFrom = (*Frequencies)(nil)
)
