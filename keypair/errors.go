package keypair

import "github.com/spikeekips/alexandria/common"

const (
	FailedToDecodeKeyErrorCode common.ErrorCode = iota + 1
	GenerationFailedErrorCode
	UnknownKeyKindErrorCode
	DeriverAlreadyRegisteredErrorCode
	DeriverNotRegisteredErrorCode
)

var (
	FailedToDecodeKeyError = common.NewErrorType(
		"keypair",
		FailedToDecodeKeyErrorCode,
		"failed to decode key",
	)
	GenerationFailedError = common.NewErrorType(
		"keypair",
		GenerationFailedErrorCode,
		"failed to generate private key",
	)
	UnknownKeyKindError = common.NewErrorType(
		"keypair",
		UnknownKeyKindErrorCode,
		"unknown key kind found",
	)
	DeriverAlreadyRegisteredError = common.NewErrorType(
		"keypair",
		DeriverAlreadyRegisteredErrorCode,
		"Deriver is already registered in Derivers",
	)
	DeriverNotRegisteredError = common.NewErrorType(
		"keypair",
		DeriverNotRegisteredErrorCode,
		"Deriver is not registered in Derivers",
	)
)
