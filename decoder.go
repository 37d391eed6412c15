package huffcode

import (
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// Decode decodes a bit string into the sequence of symbols it encodes, by
// walking the tree from the root: '0' descends left, '1' descends right, and
// reaching a leaf emits its symbol and returns to the root.
//
// Decode returns a *MalformedInputError if the bit string contains anything
// other than '0' and '1', or if it ends partway through a code.
//
// A single-symbol code assigns the empty code to its only symbol, so the bit
// string cannot tell how many symbols it holds.  For such a code, Decode
// returns an empty sequence for an empty bit string and fails for any other
// input; use DecodeN to recover a known number of symbols.
//
func (e *Engine[S]) Decode(bits string) ([]S, error) {
	return e.tree.decode(bits, -1)
}

// DecodeN is like Decode, except that the bit string must hold exactly count
// symbols.  For a single-symbol code, DecodeN returns count copies of the
// symbol, each consuming zero bits.
//
// It is a programming error to pass a negative count.
//
func (e *Engine[S]) DecodeN(bits string, count int) ([]S, error) {
	assert.Assertf(count >= 0, "count %d < 0", count)
	return e.tree.decode(bits, count)
}

func (t *Tree[S]) decode(bits string, count int) ([]S, error) {
	if t.IsLeaf() {
		return t.decodeLeaf(bits, count)
	}

	capacity := count
	if capacity < 0 {
		capacity = len(bits) / 2
	}
	out := make([]S, 0, capacity)

	current := t.root
	start := 0
	for index := 0; index < len(bits); index++ {
		if count >= 0 && len(out) == count {
			return nil, &MalformedInputError{
				Offset: index,
				Reason: fmt.Sprintf("trailing bits after %d symbols", count),
			}
		}

		n := &t.nodes[current]
		switch bits[index] {
		case '0':
			current = n.left
		case '1':
			current = n.right
		default:
			return nil, &MalformedInputError{
				Offset: index,
				Reason: fmt.Sprintf("invalid bit %q", bits[index]),
			}
		}

		if n = &t.nodes[current]; n.kind == leafNode {
			out = append(out, n.symbol)
			current = t.root
			start = index + 1
		}
	}

	if current != t.root {
		return nil, &MalformedInputError{
			Offset: start,
			Reason: "truncated code",
		}
	}
	if count >= 0 && len(out) != count {
		return nil, &MalformedInputError{
			Offset: len(bits),
			Reason: fmt.Sprintf("decoded %d symbols, expected %d", len(out), count),
		}
	}
	return out, nil
}

func (t *Tree[S]) decodeLeaf(bits string, count int) ([]S, error) {
	for index := 0; index < len(bits); index++ {
		if bit := bits[index]; bit != '0' && bit != '1' {
			return nil, &MalformedInputError{
				Offset: index,
				Reason: fmt.Sprintf("invalid bit %q", bit),
			}
		}
	}
	if bits != "" {
		return nil, &MalformedInputError{
			Offset: 0,
			Reason: "single-symbol code cannot consume bits",
		}
	}

	if count < 0 {
		count = 0
	}
	symbol := t.nodes[t.root].symbol
	out := make([]S, count)
	for index := range out {
		out[index] = symbol
	}
	return out, nil
}
