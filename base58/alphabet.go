package base58

// Alphabet omits 0, O, I and l. The first symbol stands for the zero digit.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

const (
	Radix           = len(Alphabet)
	ZeroSymbol byte = '1'
)

type symbol struct {
	index int
	ok    bool
}

var symbols [256]symbol

func init() {
	for i := 0; i < len(Alphabet); i++ {
		symbols[Alphabet[i]] = symbol{index: i, ok: true}
	}
}

// Index returns the digit value of c; ok is false when c is not in Alphabet.
func Index(c byte) (int, bool) {
	s := symbols[c]

	return s.index, s.ok
}
