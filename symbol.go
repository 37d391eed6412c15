package huffcode

// Frequency pairs a symbol with its weight, i.e. the number of times the
// symbol is expected to occur.  Weights must not be negative.
type Frequency[S comparable] struct {
	Symbol S
	Weight int64
}

// CountFrequencies returns the frequency table of a sample sequence.  Symbols
// are listed in order of first occurrence, so the same sample always yields
// the same table and therefore the same code.
func CountFrequencies[S comparable](sample []S) []Frequency[S] {
	index := make(map[S]int)
	var out []Frequency[S]
	for _, symbol := range sample {
		if i, found := index[symbol]; found {
			out[i].Weight++
			continue
		}
		index[symbol] = len(out)
		out = append(out, Frequency[S]{Symbol: symbol, Weight: 1})
	}
	return out
}
