package huffman

import (
	"fmt"
	"io"
)

// Translate decodes the bits from src, writing each symbol to dst as soon
// as its code is complete, and returns the number of symbols written.  It
// stops when src has no more bits and the last code is complete.
//
// Translate returns a *FormatError if the bits are not a sequence of
// complete codes of this Tree: ErrTruncated if src runs out in the middle
// of a code, and ErrEmptyTree if this Tree is empty but src is not.
//
// A Tree with a single symbol has an empty code for it, which cannot be
// counted in a bit stream.  In that case each occurrence of the symbol is
// written as a single 0 bit, and a 1 bit is a FormatError.
//
func (t Tree) Translate(src BitReader, dst io.ByteWriter) (int64, error) {
	if t.IsEmpty() {
		if src.HasNextBit() {
			return 0, &FormatError{How: EmptyTree}
		}
		return 0, nil
	}

	var n int64
	root := &t.nodes[t.root]
	if root.kind == leafNode {
		for src.HasNextBit() {
			bit, err := src.NextBit()
			if err != nil {
				return n, err
			}
			if bit != 0 {
				return n, &FormatError{
					How:    BadCode,
					Detail: fmt.Sprintf("1 bit after %d symbols for single-symbol code", n),
				}
			}
			if err := dst.WriteByte(byte(root.symbol)); err != nil {
				return n, err
			}
			n++
		}
		return n, nil
	}

	index := t.root
	var depth int
	for {
		nd := &t.nodes[index]
		if nd.kind == leafNode {
			if err := dst.WriteByte(byte(nd.symbol)); err != nil {
				return n, err
			}
			n++
			index = t.root
			depth = 0
			continue
		}

		if !src.HasNextBit() {
			if depth == 0 {
				return n, nil
			}
			return n, &FormatError{
				How:    Truncated,
				Detail: fmt.Sprintf("bits ended %d bits into a code after %d symbols", depth, n),
			}
		}

		bit, err := src.NextBit()
		if err != nil {
			return n, err
		}
		index = t.child(index, bit)
		depth++
	}
}

// EncodeAll writes the code of each byte read from src to dst, until src
// returns io.EOF, and returns the number of bits written.
//
// For a Tree with a single symbol, each occurrence is written as a single
// 0 bit, which is what Translate expects.  EncodeAll returns a *SymbolError
// for a byte that has no code.
//
func (t Tree) EncodeAll(src io.ByteReader, dst BitWriter) (int64, error) {
	book := t.CodeBook()
	if !t.IsEmpty() && t.nodes[t.root].kind == leafNode {
		book[t.nodes[t.root].symbol] = "0"
	}

	var n int64
	for {
		b, err := src.ReadByte()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}

		hc, found := book[Symbol(b)]
		if !found {
			return n, &SymbolError{Symbol: Symbol(b)}
		}
		for i := 0; i < hc.Len(); i++ {
			if err := dst.WriteBit(hc.Bit(i)); err != nil {
				return n, err
			}
			n++
		}
	}
}

// Decode attempts to decode a single Code into a Symbol.
//
// If hc is a complete code, symbol >= 0 and minSize == maxSize == hc.Len().
//
// If hc is a proper prefix of one or more codes, symbol == InvalidSymbol and
// the codes that start with hc are between minSize and maxSize bits long.
//
// If hc is not a prefix of any code, symbol == InvalidSymbol and
// minSize == maxSize == 0.
//
func (t Tree) Decode(hc Code) (symbol Symbol, minSize int, maxSize int) {
	if t.IsEmpty() {
		return InvalidSymbol, 0, 0
	}

	index := t.root
	for i := 0; i < hc.Len(); i++ {
		if t.nodes[index].kind == leafNode {
			return InvalidSymbol, 0, 0
		}
		index = t.child(index, hc.Bit(i))
	}

	if nd := &t.nodes[index]; nd.kind == leafNode {
		return nd.symbol, hc.Len(), hc.Len()
	}

	type stackItem struct {
		index nodeIndex
		size  int
	}

	minSize = -1
	stack := []stackItem{{index, hc.Len()}}
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := &t.nodes[top.index]
		if nd.kind == leafNode {
			if minSize < 0 || top.size < minSize {
				minSize = top.size
			}
			if top.size > maxSize {
				maxSize = top.size
			}
			continue
		}
		stack = append(stack, stackItem{nd.left, top.size + 1}, stackItem{nd.right, top.size + 1})
	}
	return InvalidSymbol, minSize, maxSize
}
