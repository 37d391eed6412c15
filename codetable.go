package huffcode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
	"golang.org/x/exp/slices"
)

// CodeTable maps every symbol of a Tree to its Code.
type CodeTable[S comparable] struct {
	codes   map[S]Code
	minSize int
	maxSize int
}

// NewCodeTable derives the CodeTable of the given tree.  The code of a leaf
// is the path from the root to that leaf, with '0' for every left edge and '1'
// for every right edge.
func NewCodeTable[S comparable](t *Tree[S]) CodeTable[S] {
	numSymbols := t.NumSymbols()
	codes := make(map[S]Code, numSymbols)

	root := &t.nodes[t.root]
	if root.kind == leafNode {
		codes[root.symbol] = ""
		return CodeTable[S]{codes: codes}
	}

	// Walk the tree with an explicit stack.  Only internal nodes are ever
	// pushed, and path always holds the code of the node on top.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		id nodeID
		x  byte
	}

	nodeLog := log2int(numSymbols)
	stack := make([]stackItem, 0, nodeLog)
	path := make([]byte, 0, nodeLog)

	processChild := func(child nodeID, bit byte) {
		path = append(path, bit)
		n := &t.nodes[child]
		if n.kind == internalNode {
			stack = append(stack, stackItem{id: child})
			return
		}
		codes[n.symbol] = Code(path)
		path = path[:len(path)-1]
	}

	stack = append(stack, stackItem{id: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		n := &t.nodes[top.id]
		switch x {
		case 0:
			processChild(n.left, '0')
		case 1:
			processChild(n.right, '1')
		case 2:
			stack = stack[:len(stack)-1]
			if len(path) != 0 {
				path = path[:len(path)-1]
			}
		}
	}

	assert.Assertf(len(codes) == numSymbols, "derived %d codes for %d symbols", len(codes), numSymbols)

	sizes := make([]int, 0, len(codes))
	for _, hc := range codes {
		sizes = append(sizes, hc.Len())
	}

	return CodeTable[S]{
		codes:   codes,
		minSize: slices.Min(sizes),
		maxSize: slices.Max(sizes),
	}
}

// Lookup returns the Code for the given symbol.  The second return value is
// false if the symbol is not part of the alphabet.
func (ct CodeTable[S]) Lookup(symbol S) (Code, bool) {
	hc, found := ct.codes[symbol]
	return hc, found
}

// Len returns the number of symbols in the alphabet.
func (ct CodeTable[S]) Len() int {
	return len(ct.codes)
}

// MinSize is the bit length of the shortest code.
func (ct CodeTable[S]) MinSize() int {
	return ct.minSize
}

// MaxSize is the bit length of the longest code.
func (ct CodeTable[S]) MaxSize() int {
	return ct.maxSize
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.  Entries are sorted by code.
func (ct CodeTable[S]) Dump(w io.Writer) (int64, error) {
	type entry struct {
		symbol S
		code   Code
	}

	list := make([]entry, 0, len(ct.codes))
	for symbol, hc := range ct.codes {
		list = append(list, entry{symbol, hc})
	}
	slices.SortFunc(list, func(a, b entry) int {
		return compareCodes(a.code, b.code)
	})

	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for _, e := range list {
		fmt.Fprintf(&buf, "\tLookup(%s) = %s\n", formatSymbol(e.symbol), e.code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// compareCodes orders codes by length, then lexically.
func compareCodes(a, b Code) int {
	if a.Len() != b.Len() {
		return a.Len() - b.Len()
	}
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
