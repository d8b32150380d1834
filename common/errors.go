package common

const (
	NotImplementedErrorCode ErrorCode = iota + 1
	InvalidVersionErrorCode
)

var (
	NotImplementedError = NewErrorType("common", NotImplementedErrorCode, "not implemented")
	InvalidVersionError = NewErrorType("common", InvalidVersionErrorCode, "invalid version")
)
