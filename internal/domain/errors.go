package domain

import "fmt"

type ErrorCode int64

const (
	ErrorCodeNotFound     ErrorCode = 1
	ErrorCodeInvalidEvent ErrorCode = 2
	ErrorCodeNotDue       ErrorCode = 3
	ErrorCodeTerminal     ErrorCode = 4
)

type Error struct {
	Code    ErrorCode
	Message string
}

func (e Error) Error() string {
	return e.Message
}

// Is matches on the code so that errors.Is(err, ErrUnknownRecord) holds for
// any not-found error regardless of its message.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Message == "" || t.Message == e.Message)
}

var (
	ErrUnknownRecord = Error{Code: ErrorCodeNotFound}
	ErrInvalidEvent  = Error{Code: ErrorCodeInvalidEvent}
	ErrNotDue        = Error{Code: ErrorCodeNotDue}
	ErrTerminal      = Error{Code: ErrorCodeTerminal}
)

func UnknownRecordError(id string) error {
	return Error{
		Code:    ErrorCodeNotFound,
		Message: fmt.Sprintf("Record %q not found", id),
	}
}

func InvalidEventError(message string) error {
	return Error{
		Code:    ErrorCodeInvalidEvent,
		Message: fmt.Sprintf("invalid event: %s", message),
	}
}

func NotDueError(id string) error {
	return Error{
		Code:    ErrorCodeNotDue,
		Message: fmt.Sprintf("Record %q is not due for an attempt", id),
	}
}

func TerminalRecordError(id string, status RecordStatus) error {
	return Error{
		Code:    ErrorCodeTerminal,
		Message: fmt.Sprintf("Record %q is already %s", id, status),
	}
}
