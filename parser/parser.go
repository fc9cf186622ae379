package parser

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"unicode/utf8"

	"github.com/xiam/sread/ast"
	"github.com/xiam/sread/lexer"
)

const quoteSymbol = "quote"

// readState consumes one byte, eof is true when there are no bytes left. A
// nil state with a nil error means the frame holds a complete value.
type readState func(f *frame, c byte, eof bool) (readState, error)

// Parser reads values out of a byte source, one per call to Read.
type Parser struct {
	src *lexer.Source
}

// frame holds the accumulators of a single, possibly nested, call to Read
type frame struct {
	p *Parser

	items []ast.Handle
	buf   []byte

	out ast.Handle
}

// New creates a Parser that reads from r
func New(r io.Reader) *Parser {
	return NewFromSource(lexer.New(r))
}

// NewFromSource creates a Parser that reads from an existing source
func NewFromSource(src *lexer.Source) *Parser {
	return &Parser{src: src}
}

// Source returns the byte source the parser reads from
func (p *Parser) Source() *lexer.Source {
	return p.src
}

// Read returns the next complete value, or the end of input marker if the
// source is exhausted before a value begins. A failed read leaves the source
// in the middle of the offending token.
func (p *Parser) Read() (ast.Handle, error) {
	f := &frame{p: p}

	for state := readState(readStart); state != nil; {
		c, err := p.src.Next()
		eof := err == io.EOF
		if err != nil && !eof {
			return ast.Handle{}, p.fail(ErrIO, err)
		}
		if state, err = state(f, c, eof); err != nil {
			return ast.Handle{}, err
		}
	}

	return f.out, nil
}

func (p *Parser) fail(kind error, err error) error {
	return &Error{Kind: kind, Pos: p.src.Pos(), Err: err}
}

func (p *Parser) unexpected(c byte) error {
	return p.fail(ErrUnexpectedByte, fmt.Errorf("%q", c))
}

func (f *frame) push(c ...byte) error {
	if len(c) > f.p.src.Free() {
		return f.p.fail(ErrPushbackOverflow, nil)
	}
	for i := range c {
		if err := f.p.src.Push(c[i]); err != nil {
			return f.p.fail(ErrPushbackOverflow, nil)
		}
	}
	return nil
}

// readItem pushes back c and reads a whole value starting with it.
func (f *frame) readItem(c ...byte) error {
	if err := f.push(c...); err != nil {
		return err
	}
	v, err := f.p.Read()
	if err != nil {
		return err
	}
	f.items = append(f.items, v)
	return nil
}

func (f *frame) done(v ast.Handle, err error) (readState, error) {
	if err != nil {
		return nil, err
	}
	f.out = v
	return nil, nil
}

func readStart(f *frame, c byte, eof bool) (readState, error) {
	if eof {
		return f.done(ast.NewEOF(), nil)
	}

	switch {
	case lexer.IsSpace(c):
		return readStart, nil

	case lexer.IsOpenList(c):
		return readList, nil

	case lexer.IsCloseList(c):
		return nil, f.p.fail(ErrUnexpectedCloseParen, nil)

	case lexer.IsDoubleQuote(c):
		return readString, nil

	case lexer.IsQuote(c):
		v, err := f.p.Read()
		if err != nil {
			return nil, err
		}
		if v.IsEOF() {
			return nil, f.p.fail(ErrUnexpectedEOF, nil)
		}
		return f.done(ast.NewList(ast.NewSymbol(quoteSymbol), v), nil)

	case lexer.IsDigit(c), lexer.IsSign(c):
		f.buf = append(f.buf, c)
		return readInt, nil

	case lexer.IsSymbolChar(c):
		f.buf = append(f.buf, c)
		return readSymbol, nil
	}

	return nil, f.p.unexpected(c)
}

func readList(f *frame, c byte, eof bool) (readState, error) {
	if eof {
		return nil, f.p.fail(ErrUnterminatedList, nil)
	}

	switch {
	case lexer.IsSpace(c):
		return readList, nil

	case lexer.IsCloseList(c):
		return f.done(ast.NewList(f.items...), nil)

	case lexer.IsDot(c):
		return readMaybeDot, nil
	}

	if err := f.readItem(c); err != nil {
		return nil, err
	}
	return readList, nil
}

// readMaybeDot follows a `.` within a list. Only a delimiting space makes it
// the marker of a dotted tail, anything else puts the dot back in front of
// the byte and reads both as the start of a symbol.
func readMaybeDot(f *frame, c byte, eof bool) (readState, error) {
	if eof {
		return nil, f.p.fail(ErrUnterminatedList, nil)
	}

	if !lexer.IsSpace(c) {
		if err := f.readItem(c, '.'); err != nil {
			return nil, err
		}
		return readList, nil
	}

	if len(f.items) == 0 {
		return nil, f.p.fail(ErrInvalidDot, nil)
	}

	tail, err := f.p.Read()
	if err != nil {
		return nil, err
	}
	if tail.IsEOF() {
		return nil, f.p.fail(ErrUnterminatedList, nil)
	}
	f.items = append(f.items, tail)
	return readListEnd, nil
}

func readListEnd(f *frame, c byte, eof bool) (readState, error) {
	if eof {
		return nil, f.p.fail(ErrUnterminatedList, nil)
	}

	switch {
	case lexer.IsSpace(c):
		return readListEnd, nil

	case lexer.IsCloseList(c):
		return f.done(ast.Chain(f.items...), nil)
	}

	return nil, f.p.fail(ErrExpectedCloseParen, fmt.Errorf("got %q", c))
}

func readInt(f *frame, c byte, eof bool) (readState, error) {
	if eof {
		return f.done(f.makeInt())
	}

	switch {
	case lexer.IsDelimiter(c):
		if err := f.push(c); err != nil {
			return nil, err
		}
		return f.done(f.makeInt())

	case lexer.IsDigit(c):
		f.buf = append(f.buf, c)
		return readInt, nil

	case lexer.IsSymbolChar(c):
		// not a number after all, the token read so far starts a symbol
		f.buf = append(f.buf, c)
		return readSymbol, nil
	}

	return nil, f.p.unexpected(c)
}

func readSymbol(f *frame, c byte, eof bool) (readState, error) {
	if eof {
		return f.done(f.makeSymbol())
	}

	switch {
	case lexer.IsDelimiter(c):
		if err := f.push(c); err != nil {
			return nil, err
		}
		return f.done(f.makeSymbol())

	case lexer.IsSymbolChar(c):
		f.buf = append(f.buf, c)
		return readSymbol, nil
	}

	return nil, f.p.unexpected(c)
}

func readString(f *frame, c byte, eof bool) (readState, error) {
	if eof {
		return nil, f.p.fail(ErrUnterminatedString, nil)
	}

	switch {
	case lexer.IsDoubleQuote(c):
		return f.done(f.makeText())

	case lexer.IsBackslash(c):
		return readStringEscape, nil
	}

	f.buf = append(f.buf, c)
	return readString, nil
}

// readStringEscape takes the byte after a backslash as it is.
func readStringEscape(f *frame, c byte, eof bool) (readState, error) {
	if eof {
		return nil, f.p.fail(ErrUnterminatedString, nil)
	}

	f.buf = append(f.buf, c)
	return readString, nil
}

func (f *frame) makeInt() (ast.Handle, error) {
	if len(f.buf) == 1 && lexer.IsSign(f.buf[0]) {
		return f.makeSymbol()
	}

	n, err := strconv.ParseInt(string(f.buf), 10, 64)
	if err != nil {
		return ast.Handle{}, f.p.fail(ErrIntegerRange, fmt.Errorf("%s", f.buf))
	}
	return ast.NewInteger(n), nil
}

func (f *frame) makeSymbol() (ast.Handle, error) {
	if len(f.buf) == 1 && lexer.IsDot(f.buf[0]) {
		return ast.Handle{}, f.p.fail(ErrInvalidDot, nil)
	}
	if !utf8.Valid(f.buf) {
		return ast.Handle{}, f.p.fail(ErrInvalidEncoding, nil)
	}
	return ast.NewSymbol(string(f.buf)), nil
}

func (f *frame) makeText() (ast.Handle, error) {
	if !utf8.Valid(f.buf) {
		return ast.Handle{}, f.p.fail(ErrInvalidEncoding, nil)
	}
	return ast.NewText(string(f.buf)), nil
}

// Parse reads every value within in
func Parse(in []byte) ([]ast.Handle, error) {
	p := New(bytes.NewReader(in))

	values := []ast.Handle{}
	for {
		v, err := p.Read()
		if err != nil {
			return nil, err
		}
		if v.IsEOF() {
			return values, nil
		}
		values = append(values, v)
	}
}
