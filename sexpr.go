// Package sread reads S-expressions out of byte streams and prints them back.
//
// The reader itself lives in the parser package, the values it produces in
// the ast package. This package glues them together: one-shot helpers, an
// identity evaluator and a read-eval-print loop.
package sread

import (
	"bytes"
	"io"

	"github.com/xiam/sread/ast"
	"github.com/xiam/sread/parser"
)

// NewReader returns a parser reading values from r
func NewReader(r io.Reader) *parser.Parser {
	return parser.New(r)
}

// Read returns the first value within in, or the end of input marker if in
// holds nothing but spaces.
func Read(in []byte) (ast.Handle, error) {
	return NewReader(bytes.NewReader(in)).Read()
}

// ReadAll returns every value within in
func ReadAll(in []byte) ([]ast.Handle, error) {
	return parser.Parse(in)
}
