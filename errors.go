package huffcode

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrInvalidInput is returned by Build and BuildTree when the frequency
	// table is empty, contains a duplicate symbol, contains a negative
	// weight, or has weights whose sum does not fit in an int64.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownSymbol is matched by errors returned from Encode when a
	// symbol is not part of the code's alphabet.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrMalformedInput is matched by errors returned from Decode when the
	// bit string cannot be decoded.
	ErrMalformedInput = errors.New("malformed input")
)

// UnknownSymbolError reports a symbol that has no code.
type UnknownSymbolError struct {
	// Symbol is the offending symbol.
	Symbol any

	// Index is the position of Symbol within the input sequence.
	Index int
}

// Error fulfills the error interface.
func (err *UnknownSymbolError) Error() string {
	return fmt.Sprintf("%v: %s at index %d", ErrUnknownSymbol, formatSymbol(err.Symbol), err.Index)
}

// Is returns true for ErrUnknownSymbol.
func (err *UnknownSymbolError) Is(target error) bool {
	return target == ErrUnknownSymbol
}

// MalformedInputError reports a bit string that cannot be decoded.
type MalformedInputError struct {
	// Offset is the byte offset within the bit string where the problem
	// was detected.
	Offset int

	// Reason describes the problem.
	Reason string
}

// Error fulfills the error interface.
func (err *MalformedInputError) Error() string {
	return fmt.Sprintf("%v at offset %d: %s", ErrMalformedInput, err.Offset, err.Reason)
}

// Is returns true for ErrMalformedInput.
func (err *MalformedInputError) Is(target error) bool {
	return target == ErrMalformedInput
}

var (
	_ error = (*UnknownSymbolError)(nil)
	_ error = (*MalformedInputError)(nil)
)

func invalidInputf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

// formatSymbol renders byte and rune symbols as quoted characters, which is
// far more readable than their numeric values.
func formatSymbol(symbol any) string {
	switch x := symbol.(type) {
	case byte:
		return strconv.QuoteRuneToASCII(rune(x))
	case rune:
		return strconv.QuoteRuneToASCII(x)
	case string:
		return strconv.Quote(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}
