package huffcode

// exampleFreqs is the five-letter table used throughout the tests.
// Under the arrival-order tie-break its code is:
//
//   a=11 b=10 c=00 d=011 e=010
//
func exampleFreqs() []Frequency[byte] {
	return []Frequency[byte]{
		{'a', 32},
		{'b', 25},
		{'c', 20},
		{'d', 18},
		{'e', 5},
	}
}

func makeTestEngine() *Engine[byte] {
	e, err := Build(exampleFreqs())
	if err != nil {
		panic(err)
	}
	return e
}

// makeClassicEngine builds the six-symbol code from CLRS §16.3.
func makeClassicEngine() *Engine[int] {
	weights := []int64{5, 9, 12, 13, 16, 45}
	freqs := make([]Frequency[int], len(weights))
	for index, weight := range weights {
		freqs[index] = Frequency[int]{Symbol: index, Weight: weight}
	}
	e, err := Build(freqs)
	if err != nil {
		panic(err)
	}
	return e
}
