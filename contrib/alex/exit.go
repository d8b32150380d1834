package main

import (
	"fmt"

	"golang.org/x/xerrors"

	"github.com/spikeekips/alexandria/base58"
	"github.com/spikeekips/alexandria/common"
	"github.com/spikeekips/alexandria/keypair"
)

const (
	exitOK = iota
	exitFailed
	exitBadSymbol
	exitWrongLength
	exitGenerationFailed
	exitNotImplemented
)

// exitStatus maps err to the process exit code and the message for stderr.
func exitStatus(err error) (int, string) {
	if err == nil {
		return exitOK, ""
	}

	var de *keypair.DecodeError
	if xerrors.As(err, &de) {
		switch de.Failure {
		case keypair.BadSymbolFailure:
			return exitBadSymbol, fmt.Sprintf("key contains invalid character %q (0x%x)", de.Symbol, de.Symbol)
		case keypair.WrongLengthFailure:
			return exitWrongLength, fmt.Sprintf(
				"key must decode to %d bytes, but got %d bytes", keypair.KeySize, de.Length,
			)
		}
	}

	var se base58.BadSymbolError
	if xerrors.As(err, &se) {
		return exitBadSymbol, fmt.Sprintf("invalid base58 character %q (0x%x) at offset %d", se.Symbol, se.Symbol, se.Offset)
	}

	switch {
	case xerrors.Is(err, keypair.GenerationFailedError):
		return exitGenerationFailed, errorMessage(err)
	case xerrors.Is(err, common.NotImplementedError):
		return exitNotImplemented, errorMessage(err)
	}

	return exitFailed, errorMessage(err)
}

func errorMessage(err error) string {
	var ce common.Error
	if xerrors.As(err, &ce) {
		return ce.Message()
	}

	return err.Error()
}
