package huffcode

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

type nodeKind byte

const (
	leafNode nodeKind = iota
	internalNode
)

// nodeID is an index into Tree.nodes.
type nodeID int32

type node[S comparable] struct {
	kind   nodeKind
	weight int64

	// leafNode only
	symbol S

	// internalNode only
	left  nodeID
	right nodeID
}

// Tree is a full binary Huffman tree.  Its nodes live in a single arena and
// refer to their children by index.
//
// The first NumSymbols() nodes are the leaves, in the order of the frequency
// table passed to BuildTree.  The remaining nodes are the internal nodes, in
// the order they were created; the root is always the last node.
type Tree[S comparable] struct {
	nodes []node[S]
	root  nodeID
}

// BuildTree constructs the Huffman tree for the given frequency table.
//
// Nodes are merged lightest-first.  When two candidates have equal weight,
// the one that arrived first wins: leaves arrive in table order, and each
// merged node arrives when it is created, after every leaf.  The first node
// removed becomes the left child ('0') and the second becomes the right child
// ('1').  This rule makes the resulting code a deterministic function of the
// table, including its order.
//
func BuildTree[S comparable](freqs []Frequency[S]) (*Tree[S], error) {
	numSymbols := len(freqs)
	if numSymbols == 0 {
		return nil, invalidInputf("empty frequency table")
	}
	if numSymbols > math.MaxInt32/2 {
		return nil, invalidInputf("too many symbols: got %d, max %d", numSymbols, math.MaxInt32/2)
	}

	t := &Tree[S]{
		nodes: make([]node[S], 0, 2*numSymbols-1),
	}

	seen := make(map[S]int, numSymbols)
	var total int64
	for index, freq := range freqs {
		if prev, found := seen[freq.Symbol]; found {
			return nil, invalidInputf("duplicate symbol %s at index %d (first seen at index %d)", formatSymbol(freq.Symbol), index, prev)
		}
		if freq.Weight < 0 {
			return nil, invalidInputf("negative weight %d for symbol %s at index %d", freq.Weight, formatSymbol(freq.Symbol), index)
		}
		if total > math.MaxInt64-freq.Weight {
			return nil, invalidInputf("sum of weights overflows int64 at index %d", index)
		}
		seen[freq.Symbol] = index
		total += freq.Weight
		t.nodes = append(t.nodes, node[S]{kind: leafNode, weight: freq.Weight, symbol: freq.Symbol})
	}

	// Step 1: build a minheap holding every leaf.

	h := nodeHeap[S]{tree: t, list: make([]nodeID, numSymbols)}
	for index := range h.list {
		h.list[index] = nodeID(index)
	}
	h.Init()

	// Step 2: repeatedly pop the two lightest nodes, merge them into a new
	// internal node, and push the new node back onto the minheap.

	for h.Len() > 1 {
		a := heap.Pop(&h).(nodeID)
		b := heap.Pop(&h).(nodeID)
		heap.Push(&h, t.merge(a, b))
	}

	t.root = heap.Pop(&h).(nodeID)

	assert.Assertf(len(t.nodes) == 2*numSymbols-1, "arena holds %d nodes, expected %d", len(t.nodes), 2*numSymbols-1)
	assert.Assertf(int(t.root) == len(t.nodes)-1, "root %d is not the last node of %d", t.root, len(t.nodes))
	assert.Assertf(t.nodes[t.root].weight == total, "root weight %d != total weight %d", t.nodes[t.root].weight, total)

	return t, nil
}

func (t *Tree[S]) merge(left, right nodeID) nodeID {
	assert.Assertf(left != right, "merging node %d with itself", left)
	id := nodeID(len(t.nodes))
	t.nodes = append(t.nodes, node[S]{
		kind:   internalNode,
		weight: t.nodes[left].weight + t.nodes[right].weight,
		left:   left,
		right:  right,
	})
	return id
}

// NumSymbols returns the number of leaves in the tree.
func (t *Tree[S]) NumSymbols() int {
	return (len(t.nodes) + 1) / 2
}

// Weight returns the weight of the root, which is the sum of all weights.
func (t *Tree[S]) Weight() int64 {
	return t.nodes[t.root].weight
}

// IsLeaf returns true iff the tree consists of a single leaf.  Such a tree
// assigns the empty code to its only symbol.
func (t *Tree[S]) IsLeaf() bool {
	return t.nodes[t.root].kind == leafNode
}

// Depth returns the length of the longest root-to-leaf path.
func (t *Tree[S]) Depth() int {
	// Children always precede their parents in the arena, so walking it
	// backwards visits every parent before its children.
	depth := make([]int, len(t.nodes))
	var maxDepth int
	for id := len(t.nodes) - 1; id >= 0; id-- {
		n := &t.nodes[id]
		if n.kind == leafNode {
			if depth[id] > maxDepth {
				maxDepth = depth[id]
			}
			continue
		}
		depth[n.left] = depth[id] + 1
		depth[n.right] = depth[id] + 1
	}
	return maxDepth
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (t *Tree[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tRoot() = #%d\n", t.root)
	for id, n := range t.nodes {
		switch n.kind {
		case leafNode:
			fmt.Fprintf(&buf, "\t#%d = Leaf{%s, %d}\n", id, formatSymbol(n.symbol), n.weight)
		case internalNode:
			fmt.Fprintf(&buf, "\t#%d = Internal{#%d, #%d, %d}\n", id, n.left, n.right, n.weight)
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// type nodeHeap {{{

type nodeHeap[S comparable] struct {
	tree *Tree[S]
	list []nodeID
}

func (h *nodeHeap[S]) Init() {
	heap.Init(h)
}

func (h *nodeHeap[S]) Len() int {
	return len(h.list)
}

func (h *nodeHeap[S]) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap[S]) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := h.tree.nodes[a].weight, h.tree.nodes[b].weight
	if aw != bw {
		return aw < bw
	}
	return a < b
}

func (h *nodeHeap[S]) Push(x any) {
	h.list = append(h.list, x.(nodeID))
}

func (h *nodeHeap[S]) Pop() any {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap[byte])(nil)

// }}}
