package errorx

import (
	"errors"
	"fmt"
)

type Code int

const (
	EMPTY_VALUE Code = iota
	INVALID_VALUE
	MISSING_COLUMN
	INSUFFICIENT_LENGTH
	DEGENERATE_SERIES
)

func (c Code) String() string {
	switch c {
	case EMPTY_VALUE:
		return "EMPTY_VALUE"
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case MISSING_COLUMN:
		return "MISSING_COLUMN"
	case INSUFFICIENT_LENGTH:
		return "INSUFFICIENT_LENGTH"
	case DEGENERATE_SERIES:
		return "DEGENERATE_SERIES"
	default:
		return "UNKNOWN"
	}
}

// Error carries a code so callers can dispatch without string matching.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

func New(code Code, msg string) error {
	return &Error{Code: code, Msg: msg}
}

func Newf(code Code, format string, args ...any) error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf returns the code carried by err, or -1 when err carries none.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return Code(-1)
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
