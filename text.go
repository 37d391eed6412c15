package huffcode

// BuildFromText builds a byte-oriented Engine whose frequency table is
// counted from a sample text.
func BuildFromText(sample string) (*Engine[byte], error) {
	return Build(CountFrequencies([]byte(sample)))
}

// EncodeString encodes the bytes of msg.
func EncodeString(e *Engine[byte], msg string) (string, error) {
	return e.Encode([]byte(msg))
}

// DecodeString decodes bits into a string of bytes.
func DecodeString(e *Engine[byte], bits string) (string, error) {
	symbols, err := e.Decode(bits)
	if err != nil {
		return "", err
	}
	return string(symbols), nil
}

// DecodeStringN decodes exactly count bytes from bits.
func DecodeStringN(e *Engine[byte], bits string, count int) (string, error) {
	symbols, err := e.DecodeN(bits, count)
	if err != nil {
		return "", err
	}
	return string(symbols), nil
}
