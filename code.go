package huffcode

import (
	"fmt"
	"strconv"
	"strings"
)

// Code represents a sequence of bits, one '0' or '1' character per bit.  The
// first character is the first bit, i.e. the edge taken from the root of the
// tree.
type Code string

// Len returns the number of bits in this Code.
func (hc Code) Len() int {
	return len(hc)
}

// IsPrefixOf returns true iff this Code is a prefix of other.  Every Code is
// a prefix of itself.
func (hc Code) IsPrefixOf(other Code) bool {
	return strings.HasPrefix(string(other), string(hc))
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc == "" {
		return "\"\""
	}
	return strconv.Quote(string(hc))
}

var _ fmt.Stringer = Code("")
