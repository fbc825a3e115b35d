package huffman

import (
	"container/heap"
	"math"

	"github.com/chronos-tachyon/assert"
	logging "github.com/op/go-logging"
)

// Init initializes this Tree from symbol frequencies, i.e. the number of
// occurrences of each Symbol.  Symbols with a frequency of 0 are omitted
// from the code entirely.
//
// If no symbol has a nonzero frequency, the Tree is empty.  If exactly one
// symbol does, the Tree consists of a single leaf whose Code is empty.
//
func (t *Tree) Init(freqs Counter) {
	*t = Tree{}

	// Step 1: one leaf per natural symbol, in ascending symbol order.

	h := freqHeap{list: make([]indexAndFreq, 0, NumSymbols)}
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if freq := freqs.Count(symbol); freq != 0 {
			index := t.newLeaf(symbol, freq)
			h.list = append(h.list, indexAndFreq{index, freq})
		}
	}

	numLeaves := len(h.list)
	if numLeaves == 0 {
		log.Debugf("built empty tree")
		return
	}

	// Step 2: build a minheap.  Ties are broken by arena index, which is
	// the order in which each node arrived.

	h.Init()

	// Step 3: pop two nodes, combine them into a new internal node, and
	// push the new node back onto the minheap.  The first node popped
	// becomes the left (0) child.

	for h.Len() > 1 {
		a := heap.Pop(&h).(indexAndFreq)
		b := heap.Pop(&h).(indexAndFreq)

		// Compute freqSum using saturating addition
		freqSum := a.freq + b.freq
		if freqSum < a.freq {
			freqSum = math.MaxUint64
		}

		index := t.newInternal(a.index, b.index, freqSum)
		heap.Push(&h, indexAndFreq{index, freqSum})
	}

	t.root = heap.Pop(&h).(indexAndFreq).index

	assert.Assertf(len(t.nodes) == 2*numLeaves-1, "tree has %d nodes for %d leaves", len(t.nodes), numLeaves)
	assert.Assertf(t.root == nodeIndex(len(t.nodes)-1), "root %d is not the last node %d", t.root, len(t.nodes)-1)

	if log.IsEnabledFor(logging.DEBUG) {
		log.Debugf("built tree from frequencies: %d symbols, code lengths %d .. %d", numLeaves, t.MinSize(), t.MaxSize())
	}
}

// type indexAndFreq + type freqHeap {{{

type indexAndFreq struct {
	index nodeIndex
	freq  uint64
}

type freqHeap struct {
	list []indexAndFreq
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.index < b.index
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(indexAndFreq))
}

func (h *freqHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
