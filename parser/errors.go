package parser

import (
	"errors"
	"fmt"

	"github.com/xiam/sread/lexer"
)

// Kinds of read errors. Every error returned by Read matches exactly one of
// them through errors.Is.
var (
	ErrUnexpectedCloseParen = errors.New("unexpected `)`")
	ErrUnterminatedList     = errors.New("unterminated list")
	ErrUnterminatedString   = errors.New("unterminated string")
	ErrInvalidDot           = errors.New("`.` is not a valid symbol")
	ErrInvalidEncoding      = errors.New("invalid UTF-8")
	ErrIO                   = errors.New("input error")
	ErrPushbackOverflow     = lexer.ErrPushbackOverflow
	ErrUnexpectedByte       = errors.New("unexpected byte")
	ErrExpectedCloseParen   = errors.New("expected `)`")
	ErrUnexpectedEOF        = errors.New("unexpected EOF")
	ErrIntegerRange         = errors.New("integer out of range")
)

// Error describes why and where a read failed
type Error struct {
	Kind error
	Pos  lexer.Pos
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %v: %v", e.Pos, e.Kind, e.Err)
	}
	return fmt.Sprintf("%v: %v", e.Pos, e.Kind)
}

// Is reports whether target is the kind of e
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}
