package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// Tree is a Huffman code tree over the byte alphabet.
//
// The zero value is the empty tree, which has no symbols.  A Tree is filled
// in once by Init or InitFromTable and is not modified afterward.
type Tree struct {
	nodes []node
	root  nodeIndex
}

type nodeIndex int32

const noNode = nodeIndex(-1)

type nodeKind byte

const (
	leafNode nodeKind = iota + 1
	internalNode
)

// node is one slot of the Tree's arena.  Leaves use symbol; internal nodes
// use left and right.  freq is zero for trees loaded from a code table.
type node struct {
	kind   nodeKind
	symbol Symbol
	freq   uint64
	left   nodeIndex
	right  nodeIndex
}

func (t *Tree) newLeaf(symbol Symbol, freq uint64) nodeIndex {
	t.nodes = append(t.nodes, node{kind: leafNode, symbol: symbol, freq: freq, left: noNode, right: noNode})
	return nodeIndex(len(t.nodes) - 1)
}

func (t *Tree) newInternal(left, right nodeIndex, freq uint64) nodeIndex {
	t.nodes = append(t.nodes, node{kind: internalNode, symbol: InvalidSymbol, freq: freq, left: left, right: right})
	return nodeIndex(len(t.nodes) - 1)
}

func (t *Tree) child(index nodeIndex, bit Bit) nodeIndex {
	if bit != 0 {
		return t.nodes[index].right
	}
	return t.nodes[index].left
}

func (t *Tree) setChild(index nodeIndex, bit Bit, child nodeIndex) {
	if bit != 0 {
		t.nodes[index].right = child
	} else {
		t.nodes[index].left = child
	}
}

// IsEmpty returns true iff this Tree has no symbols.
func (t Tree) IsEmpty() bool {
	return len(t.nodes) == 0
}

// Len returns the number of symbols (leaves) in this Tree.
func (t Tree) Len() int {
	var n int
	t.walk(func(symbol Symbol, hc Code) {
		n++
	})
	return n
}

// MinSize is the bit length of the shortest code.
func (t Tree) MinSize() int {
	minSize := -1
	t.walk(func(symbol Symbol, hc Code) {
		if minSize < 0 || hc.Len() < minSize {
			minSize = hc.Len()
		}
	})
	if minSize < 0 {
		return 0
	}
	return minSize
}

// MaxSize is the bit length of the longest code.
func (t Tree) MaxSize() int {
	var maxSize int
	t.walk(func(symbol Symbol, hc Code) {
		if hc.Len() > maxSize {
			maxSize = hc.Len()
		}
	})
	return maxSize
}

// CodeBook maps each Symbol in a Tree to its Code.
type CodeBook map[Symbol]Code

// CodeBook returns the Code of every Symbol in this Tree.
func (t Tree) CodeBook() CodeBook {
	book := make(CodeBook, NumSymbols)
	t.walk(func(symbol Symbol, hc Code) {
		book[symbol] = hc
	})
	return book
}

// Encode returns the Code for a single Symbol.  The boolean is false if
// the symbol does not appear in this Tree.
func (t Tree) Encode(symbol Symbol) (Code, bool) {
	var out Code
	var found bool
	t.walk(func(s Symbol, hc Code) {
		if s == symbol {
			out, found = hc, true
		}
	})
	return out, found
}

// walk visits the leaves in table order: depth first, with each node's left
// (0) subtree before its right (1) subtree.  An explicit stack keeps very
// skewed trees from recursing deeply.
func (t Tree) walk(fn func(symbol Symbol, hc Code)) {
	if t.IsEmpty() {
		return
	}

	type stackItem struct {
		index nodeIndex
		hc    Code
	}

	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{t.root, ""})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		nd := &t.nodes[top.index]
		if nd.kind == leafNode {
			fn(nd.symbol, top.hc)
			continue
		}

		// Right is pushed first so that left is popped first.
		stack = append(stack, stackItem{nd.right, top.hc.Append(1)})
		stack = append(stack, stackItem{nd.left, top.hc.Append(0)})
	}
}

// WeightedSize returns the total number of bits needed to encode every
// symbol occurrence counted by freqs, i.e. the sum of count × code length.
// Symbols with no code are ignored.
func (t Tree) WeightedSize(freqs Counter) uint64 {
	var total uint64
	t.walk(func(symbol Symbol, hc Code) {
		total += freqs.Count(symbol) * uint64(hc.Len())
	})
	return total
}

// Dump writes a programmer-readable debugging dump of the Tree's current
// state to the given writer.
func (t Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tLen() = %d\n", t.Len())
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", t.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", t.MaxSize())
	book := t.CodeBook()
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if hc, found := book[symbol]; found {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, hc)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// String returns a brief description of this Tree.
func (t Tree) String() string {
	if t.IsEmpty() {
		return "(empty Huffman tree)"
	}
	return fmt.Sprintf("(Huffman tree with %d symbols, with code lengths of %d .. %d bits)", t.Len(), t.MinSize(), t.MaxSize())
}

var _ fmt.Stringer = Tree{}
