package keypair

import (
	"fmt"

	"golang.org/x/xerrors"

	"github.com/spikeekips/alexandria/base58"
	"github.com/spikeekips/alexandria/common"
)

// KeySize is the length of both private and public keys.
const KeySize = 32

type DecodeFailure uint

const (
	BadSymbolFailure DecodeFailure = iota + 1
	WrongLengthFailure
)

func (f DecodeFailure) String() string {
	switch f {
	case BadSymbolFailure:
		return "bad-symbol"
	case WrongLengthFailure:
		return "wrong-length"
	}

	return ""
}

// DecodeError is returned by DecodeKey. Symbol is set for BadSymbolFailure,
// Length for WrongLengthFailure.
type DecodeError struct {
	Failure DecodeFailure
	Symbol  byte
	Length  int
	err     error
}

func (e *DecodeError) Error() string {
	var detail string
	switch e.Failure {
	case BadSymbolFailure:
		detail = fmt.Sprintf("bad symbol 0x%x", e.Symbol)
	case WrongLengthFailure:
		detail = fmt.Sprintf("wrong length; length=%d expected=%d", e.Length, KeySize)
	default:
		detail = "unknown failure"
	}

	return fmt.Sprintf("%s; %s", FailedToDecodeKeyError.Message(), detail)
}

func (e *DecodeError) Unwrap() error {
	return e.err
}

func (e *DecodeError) Is(target error) bool {
	t, ok := target.(common.ErrorType)
	if !ok {
		return false
	}

	return t.Equal(FailedToDecodeKeyError)
}

func EncodeKey(b [KeySize]byte) string {
	return base58.Encode(b[:])
}

// DecodeKey never pads or truncates; the decoded text must be exactly KeySize
// bytes.
func DecodeKey(s string) ([KeySize]byte, error) {
	var key [KeySize]byte

	b, err := base58.Decode(s)
	if err != nil {
		var se base58.BadSymbolError
		if !xerrors.As(err, &se) {
			return key, err
		}

		return key, &DecodeError{Failure: BadSymbolFailure, Symbol: se.Symbol, err: err}
	}

	if len(b) != KeySize {
		return key, &DecodeError{Failure: WrongLengthFailure, Length: len(b)}
	}

	copy(key[:], b)

	return key, nil
}
