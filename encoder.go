package huffcode

import (
	"strings"
)

// Encode encodes a sequence of symbols into a bit string, which is the
// concatenation of the codes of every symbol in order.
//
// If any symbol is not part of the alphabet, Encode returns an
// *UnknownSymbolError and no output.
//
func (e *Engine[S]) Encode(symbols []S) (string, error) {
	var sb strings.Builder
	sb.Grow(len(symbols))
	for index, symbol := range symbols {
		hc, found := e.codes.Lookup(symbol)
		if !found {
			return "", &UnknownSymbolError{Symbol: symbol, Index: index}
		}
		sb.WriteString(string(hc))
	}
	return sb.String(), nil
}
