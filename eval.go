package sread

import (
	"errors"

	"github.com/xiam/sread/ast"
)

var errInvalidHandle = errors.New("invalid handle")

// Evaluator turns a value that was read into the value to be printed
type Evaluator interface {
	Eval(ast.Handle) (ast.Handle, error)
}

// EvaluatorFunc adapts a function to the Evaluator interface
type EvaluatorFunc func(ast.Handle) (ast.Handle, error)

// Eval calls fn(h)
func (fn EvaluatorFunc) Eval(h ast.Handle) (ast.Handle, error) {
	return fn(h)
}

// Identity evaluates every value to itself
var Identity Evaluator = EvaluatorFunc(Eval)

// Eval returns h as it is. The end of input marker evaluates to itself too,
// callers are expected to stop on it.
func Eval(h ast.Handle) (ast.Handle, error) {
	if !h.IsValid() {
		return ast.Handle{}, errInvalidHandle
	}
	return h, nil
}
