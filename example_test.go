package huffcode_test

import (
	"errors"
	"fmt"

	"github.com/chronos-tachyon/huffcode"
)

func Example() {
	e, err := huffcode.Build([]huffcode.Frequency[byte]{
		{Symbol: 'a', Weight: 32},
		{Symbol: 'b', Weight: 25},
		{Symbol: 'c', Weight: 20},
		{Symbol: 'd', Weight: 18},
		{Symbol: 'e', Weight: 5},
	})
	if err != nil {
		panic(err)
	}

	for _, entry := range e.Report() {
		fmt.Printf("%c %s\n", entry.Symbol, string(entry.Code))
	}

	bits, err := huffcode.EncodeString(e, "abc")
	if err != nil {
		panic(err)
	}
	fmt.Println(bits)

	msg, err := huffcode.DecodeString(e, bits)
	if err != nil {
		panic(err)
	}
	fmt.Println(msg)

	// Output:
	// a 11
	// b 10
	// c 00
	// d 011
	// e 010
	// 111000
	// abc
}

func Example_errors() {
	e, err := huffcode.BuildFromText("abracadabra")
	if err != nil {
		panic(err)
	}

	_, err = huffcode.DecodeString(e, "012")
	fmt.Println(errors.Is(err, huffcode.ErrMalformedInput))

	_, err = huffcode.EncodeString(e, "abz")
	fmt.Println(err)

	// Output:
	// true
	// unknown symbol: 'z' at index 2
}
