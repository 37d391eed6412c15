package huffcode

import (
	"bytes"
	"fmt"
	"io"
	"math"
)

// Engine holds a Huffman code: the tree, the table of codes derived from it,
// and the frequency table it was built from.
//
// An Engine is immutable once Build returns, so it may be shared by any
// number of goroutines without locking.
type Engine[S comparable] struct {
	tree  *Tree[S]
	codes CodeTable[S]
	freqs []Frequency[S]
}

// Entry is one line of a Report.
type Entry[S comparable] struct {
	Symbol S
	Weight int64
	Code   Code
}

// Build constructs an Engine from an ordered frequency table.  See BuildTree
// for the rules on valid tables and for how ties between equal weights are
// broken.
func Build[S comparable](freqs []Frequency[S]) (*Engine[S], error) {
	tree, err := BuildTree(freqs)
	if err != nil {
		return nil, err
	}

	e := &Engine[S]{
		tree:  tree,
		codes: NewCodeTable(tree),
		freqs: make([]Frequency[S], len(freqs)),
	}
	copy(e.freqs, freqs)
	return e, nil
}

// Tree returns the Huffman tree of this Engine.
func (e *Engine[S]) Tree() *Tree[S] {
	return e.tree
}

// Codes returns the code table of this Engine.
func (e *Engine[S]) Codes() CodeTable[S] {
	return e.codes
}

// Code returns the Code assigned to the given symbol.
func (e *Engine[S]) Code(symbol S) (Code, bool) {
	return e.codes.Lookup(symbol)
}

// NumSymbols returns the size of the alphabet.
func (e *Engine[S]) NumSymbols() int {
	return len(e.freqs)
}

// MinSize is the bit length of the shortest code.
func (e *Engine[S]) MinSize() int {
	return e.codes.MinSize()
}

// MaxSize is the bit length of the longest code.
func (e *Engine[S]) MaxSize() int {
	return e.codes.MaxSize()
}

// Report lists every symbol with its weight and code, in the order of the
// frequency table passed to Build.
func (e *Engine[S]) Report() []Entry[S] {
	out := make([]Entry[S], len(e.freqs))
	for index, freq := range e.freqs {
		out[index] = Entry[S]{
			Symbol: freq.Symbol,
			Weight: freq.Weight,
			Code:   e.codes.codes[freq.Symbol],
		}
	}
	return out
}

// Cost returns the total length in bits of a message in which every symbol
// occurs exactly as often as its weight, i.e. the sum of weight×length over
// the alphabet.  The sum saturates at math.MaxInt64.
func (e *Engine[S]) Cost() int64 {
	var sum int64
	for _, freq := range e.freqs {
		size := int64(e.codes.codes[freq.Symbol].Len())
		if size != 0 && freq.Weight > (math.MaxInt64-sum)/size {
			return math.MaxInt64
		}
		sum += freq.Weight * size
	}
	return sum
}

// String returns a brief description of this Engine.
func (e *Engine[S]) String() string {
	return fmt.Sprintf("(Huffman code with %d symbols, with coded lengths of %d .. %d bits)", e.NumSymbols(), e.MinSize(), e.MaxSize())
}

// Dump writes a programmer-readable debugging dump of the Engine's current
// state to the given writer.
func (e *Engine[S]) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Engine{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.MinSize())
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.MaxSize())
	fmt.Fprintf(&buf, "\tCost() = %d\n", e.Cost())
	for _, entry := range e.Report() {
		fmt.Fprintf(&buf, "\tCode(%s) = %s\n", formatSymbol(entry.Symbol), entry.Code)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*Engine[byte])(nil)
