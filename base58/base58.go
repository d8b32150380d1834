// Package base58 converts byte sequences to and from text over a 58-symbol
// alphabet. The input is taken as a big-endian unsigned integer; leading zero
// bytes are carried over one-to-one as leading ZeroSymbol characters.
package base58

// Encode never fails. An empty input gives an empty string.
func Encode(b []byte) string {
	// 7/5 is just over log_58(256)
	scratch := make([]byte, 1+len(b)*7/5)

	for _, d256 := range b {
		// X = X * 256 + d256, in base 58
		carry := uint32(d256)
		for i := len(scratch) - 1; i >= 0; i-- {
			carry += uint32(scratch[i]) << 8
			scratch[i] = byte(carry % uint32(Radix))
			carry /= uint32(Radix)
		}

		if carry != 0 {
			panic("base58: scratch overflow while encoding")
		}
	}

	var zeros int
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	var skip int
	for skip < len(scratch) && scratch[skip] == 0 {
		skip++
	}

	out := make([]byte, zeros, zeros+len(scratch)-skip)
	for i := range out {
		out[i] = ZeroSymbol
	}

	for _, d58 := range scratch[skip:] {
		out = append(out, Alphabet[d58])
	}

	return string(out)
}

// Decode fails with BadSymbolError at the first character outside of
// Alphabet; nothing is returned in that case.
func Decode(s string) ([]byte, error) {
	// 11/15 is just over log_256(58)
	scratch := make([]byte, 1+len(s)*11/15)

	for offset := 0; offset < len(s); offset++ {
		d58, ok := Index(s[offset])
		if !ok {
			return nil, BadSymbolError{Symbol: s[offset], Offset: offset}
		}

		// X = X * 58 + d58, in base 256
		carry := uint32(d58)
		for i := len(scratch) - 1; i >= 0; i-- {
			carry += uint32(scratch[i]) * uint32(Radix)
			scratch[i] = byte(carry)
			carry >>= 8
		}

		if carry != 0 {
			panic("base58: scratch overflow while decoding")
		}
	}

	var zeros int
	for zeros < len(s) && s[zeros] == ZeroSymbol {
		zeros++
	}

	var skip int
	for skip < len(scratch) && scratch[skip] == 0 {
		skip++
	}

	out := make([]byte, zeros, zeros+len(scratch)-skip)

	return append(out, scratch[skip:]...), nil
}
