package types

import (
	"errors"
	"fmt"
)

// ErrUnmappedKey is wrapped by every CalcError of type UnmappedKey.
var ErrUnmappedKey = errors.New("unmapped key")

// CalcError represents errors raised by the calculator's input surfaces
// (key lookup, tape parsing, tool arguments). The calculator core itself
// never returns errors.
type CalcError struct {
	Type    ErrorType
	Message string
	File    string
	Line    int
	Column  int
	Cause   error
}

func (e *CalcError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Column, e.Message)
	}
	return e.Message
}

func (e *CalcError) Unwrap() error {
	return e.Cause
}

type ErrorType int

const (
	ParseError ErrorType = iota
	UnmappedKey
	InvalidOperand
	InvalidOperator
	FileSystemError
)

func (t ErrorType) String() string {
	switch t {
	case ParseError:
		return "parse error"
	case UnmappedKey:
		return "unmapped key"
	case InvalidOperand:
		return "invalid operand"
	case InvalidOperator:
		return "invalid operator"
	case FileSystemError:
		return "filesystem error"
	default:
		return fmt.Sprintf("ErrorType(%d)", int(t))
	}
}

// NewUnmappedKeyError reports a key that has no action bound to it.
func NewUnmappedKeyError(key string) *CalcError {
	return &CalcError{
		Type:    UnmappedKey,
		Message: fmt.Sprintf("no action bound to key %q", key),
		Cause:   ErrUnmappedKey,
	}
}
