package base58

import (
	"fmt"

	"github.com/spikeekips/alexandria/common"
)

const (
	InvalidSymbolErrorCode common.ErrorCode = iota + 1
)

var (
	InvalidSymbolError = common.NewErrorType("base58", InvalidSymbolErrorCode, "invalid base58 character")
)

// BadSymbolError reports the first character of the input which is not in
// Alphabet.
type BadSymbolError struct {
	Symbol byte
	Offset int
}

func (e BadSymbolError) Error() string {
	return fmt.Sprintf("%s 0x%x at offset %d", InvalidSymbolError.Message(), e.Symbol, e.Offset)
}

func (e BadSymbolError) Is(target error) bool {
	t, ok := target.(common.ErrorType)
	if !ok {
		return false
	}

	return t.Equal(InvalidSymbolError)
}
