package common

import (
	"fmt"

	"golang.org/x/xerrors"
)

type ErrorCode uint

// ErrorType is the sentinel of a family of errors. ErrorType itself can be
// returned as error; New and Newf derive Error values which still match the
// type with xerrors.Is.
type ErrorType struct {
	name    string
	code    ErrorCode
	message string
}

func NewErrorType(name string, code ErrorCode, message string) ErrorType {
	return ErrorType{name: name, code: code, message: message}
}

func (et ErrorType) Code() string {
	return fmt.Sprintf("%s-%d", et.name, et.code)
}

func (et ErrorType) Message() string {
	return et.message
}

func (et ErrorType) Error() string {
	return errorString(et.Code(), et.message)
}

func (et ErrorType) Equal(b ErrorType) bool {
	return et.name == b.name && et.code == b.code
}

func (et ErrorType) New(err error) Error {
	var message string
	if err != nil {
		message = err.Error()
	}

	return Error{
		errorType: et,
		message:   message,
		wrapped:   err,
		frame:     xerrors.Caller(1),
	}
}

func (et ErrorType) Newf(format string, args ...interface{}) Error {
	return Error{
		errorType: et,
		message:   fmt.Sprintf(format, args...),
		frame:     xerrors.Caller(1),
	}
}

func (et ErrorType) MarshalJSON() ([]byte, error) {
	return EncodeJSON(map[string]string{
		"code":    et.Code(),
		"message": et.message,
	}, false, false)
}

type Error struct {
	errorType ErrorType
	message   string
	wrapped   error
	frame     xerrors.Frame
}

func (e Error) Type() ErrorType {
	return e.errorType
}

func (e Error) Code() string {
	return e.errorType.Code()
}

func (e Error) Message() string {
	if len(e.message) < 1 {
		return e.errorType.message
	}

	return fmt.Sprintf("%s; %s", e.errorType.message, e.message)
}

func (e Error) Error() string {
	return errorString(e.Code(), e.Message())
}

func (e Error) Unwrap() error {
	return e.wrapped
}

func (e Error) Is(target error) bool {
	switch t := target.(type) {
	case ErrorType:
		return e.errorType.Equal(t)
	case Error:
		return e.errorType.Equal(t.errorType)
	default:
		return false
	}
}

func (e Error) FormatError(p xerrors.Printer) error {
	p.Print(e.Error())
	e.frame.Format(p)

	return e.wrapped
}

func (e Error) Format(s fmt.State, v rune) {
	xerrors.FormatError(e, s, v)
}

func (e Error) MarshalJSON() ([]byte, error) {
	return EncodeJSON(map[string]string{
		"code":    e.Code(),
		"message": e.Message(),
	}, false, false)
}

func errorString(code, message string) string {
	b, _ := EncodeJSON(map[string]string{
		"code":    code,
		"message": message,
	}, false, false)

	return TerminalLogString(string(b))
}
