package parser

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/sread/ast"
	"github.com/xiam/sread/lexer"
)

func readInput(t *testing.T, in string) ast.Handle {
	v, err := New(strings.NewReader(in)).Read()
	require.NoError(t, err, "input %q", in)
	return v
}

func encodeAll(values []ast.Handle) string {
	out := []string{}
	for i := range values {
		out = append(out, string(ast.Encode(values[i])))
	}
	return strings.Join(out, " ")
}

func TestReadEOF(t *testing.T) {
	for _, in := range []string{"", "   ", " \n", "\t\t\n \n"} {
		assert.True(t, readInput(t, in).IsEOF(), "input %q", in)
	}
}

func TestReadStructure(t *testing.T) {
	one, two, three := ast.NewInteger(1), ast.NewInteger(2), ast.NewInteger(3)

	testCases := []struct {
		In  string
		Out ast.Handle
	}{
		{`()`, ast.NewNil()},
		{`(1)`, ast.NewPair(one, ast.NewNil())},
		{`(1 2)`, ast.NewPair(one, ast.NewPair(two, ast.NewNil()))},
		{`(1 2 . 3)`, ast.NewPair(one, ast.NewPair(two, three))},
		{`(1  2 . 3)`, ast.NewPair(one, ast.NewPair(two, three))},
		{`(1 .a)`, ast.NewPair(one, ast.NewPair(ast.NewSymbol(".a"), ast.NewNil()))},
		{`'x`, ast.NewList(ast.NewSymbol("quote"), ast.NewSymbol("x"))},
		{`''x`, ast.NewList(ast.NewSymbol("quote"), ast.NewList(ast.NewSymbol("quote"), ast.NewSymbol("x")))},
		{`'(1 . 2)`, ast.NewList(ast.NewSymbol("quote"), ast.NewPair(one, two))},
		{`(a . (b))`, ast.NewList(ast.NewSymbol("a"), ast.NewSymbol("b"))},
		{`(a . ())`, ast.NewList(ast.NewSymbol("a"))},
		{`"foo bar"`, ast.NewText("foo bar")},
		{`-17`, ast.NewInteger(-17)},
		{`+17`, ast.NewInteger(17)},
		{`1+`, ast.NewSymbol("1+")},
		{`-`, ast.NewSymbol("-")},
		{`+`, ast.NewSymbol("+")},
		{`-foo`, ast.NewSymbol("-foo")},
		{`...`, ast.NewSymbol("...")},
		{`Hello`, ast.NewSymbol("Hello")},
	}

	for i := range testCases {
		got := readInput(t, testCases[i].In)
		if diff := cmp.Diff(testCases[i].Out, got); diff != "" {
			t.Errorf("input %q: (-want +got)\n%s", testCases[i].In, diff)
		}
	}
}

func TestParserBuildTree(t *testing.T) {
	testCases := []struct {
		In  string
		Out string
	}{
		{
			In:  ``,
			Out: ``,
		},
		{
			In:  `1`,
			Out: `1`,
		},
		{
			In:  `1 3 -4 +5`,
			Out: `1 3 -4 5`,
		},
		{
			In:  `(1 2 3)`,
			Out: `(1 2 3)`,
		},
		{
			In:  "(1\n\t 2\n\n3\n)",
			Out: "(1 2 3)",
		},
		{
			In:  `() (1) ()`,
			Out: `() (1) ()`,
		},
		{
			In:  `(1 2 () (3(4(5))) 6 (7))`,
			Out: `(1 2 () (3 (4 (5))) 6 (7))`,
		},
		{
			In:  `((1(2)))`,
			Out: `((1 (2)))`,
		},
		{
			In: "(a		b c def GHIJ 1 -1)",
			Out: "(a b c def GHIJ 1 -1)",
		},
		{
			In:  "a\n\n\n\nb\nc\nCBD",
			Out: "a b c CBD",
		},
		{
			In: `"ABC		DEF	() GHI :jkl mno" :aBC def ghij "foo BAR"`,
			Out: "\"ABC\t\tDEF\t() GHI :jkl mno\" :aBC def ghij \"foo BAR\"",
		},
		{
			In:  `"a \"quoted\" \\ word\n"`,
			Out: `"a "quoted" \ wordn"`,
		},
		{
			In:  `(define (f . args) 'args)`,
			Out: `(define (f . args) (quote args))`,
		},
		{
			In:  `(+ 1 2 3 4)`,
			Out: `(+ 1 2 3 4)`,
		},
		{
			In:  `(+ -1 55 +6 +2 -3 4)`,
			Out: `(+ -1 55 6 2 -3 4)`,
		},
		{
			In:  `(x .y ..z . w)`,
			Out: `(x .y ..z . w)`,
		},
		{
			In:  `(print "hello world" "beautiful world!")(echo brave new world)`,
			Out: `(print "hello world" "beautiful world!") (echo brave new world)`,
		},
		{
			In:  `(fn1 (quote "😊"))`,
			Out: `(fn1 (quote "😊"))`,
		},
		{
			In:  `(a 'b '(c d))`,
			Out: `(a (quote b) (quote (c d)))`,
		},
	}

	for i := range testCases {
		values, err := Parse([]byte(testCases[i].In))
		assert.NoError(t, err)
		assert.NotNil(t, values)

		assert.Equal(t, testCases[i].Out, encodeAll(values), "input %q", testCases[i].In)
	}
}

func TestReadErrors(t *testing.T) {
	testCases := []struct {
		In  string
		Err error
	}{
		{`)`, ErrUnexpectedCloseParen},
		{`(1 2))`, nil},
		{`(1 2`, ErrUnterminatedList},
		{`(1 2 `, ErrUnterminatedList},
		{`(`, ErrUnterminatedList},
		{`(1 .`, ErrUnterminatedList},
		{`(1 . `, ErrUnterminatedList},
		{`(1 . 2`, ErrUnterminatedList},
		{`(1 . 2 3)`, ErrExpectedCloseParen},
		{`(. 1)`, ErrInvalidDot},
		{`(1 .)`, ErrInvalidDot},
		{`(1 .(2))`, ErrInvalidDot},
		{`.`, ErrInvalidDot},
		{`(1 . )`, ErrUnexpectedCloseParen},
		{`"abc`, ErrUnterminatedString},
		{`"abc\`, ErrUnterminatedString},
		{`"abc\"`, ErrUnterminatedString},
		{"\"\xff\xfe\"", ErrInvalidEncoding},
		{`'`, ErrUnexpectedEOF},
		{`'  `, ErrUnexpectedEOF},
		{`#t`, ErrUnexpectedByte},
		{`[1]`, ErrUnexpectedByte},
		{`abc"def"`, ErrUnexpectedByte},
		{`12'3`, ErrUnexpectedByte},
		{"a\rb", ErrUnexpectedByte},
		{`99999999999999999999`, ErrIntegerRange},
		{`-9223372036854775809`, ErrIntegerRange},
	}

	for i := range testCases {
		_, err := New(strings.NewReader(testCases[i].In)).Read()
		if testCases[i].Err == nil {
			assert.NoError(t, err, "input %q", testCases[i].In)
			continue
		}
		require.Error(t, err, "input %q", testCases[i].In)
		assert.True(t, errors.Is(err, testCases[i].Err), "input %q: got %v", testCases[i].In, err)

		var perr *Error
		assert.True(t, errors.As(err, &perr))
	}
}

func TestReadIntegerLimits(t *testing.T) {
	assert.Equal(t, int64(9223372036854775807), readInput(t, `9223372036854775807`).Int())
	assert.Equal(t, int64(-9223372036854775808), readInput(t, `-9223372036854775808`).Int())
}

func TestReadIOError(t *testing.T) {
	failure := errors.New("connection reset")
	r := io.MultiReader(strings.NewReader(`(1 2`), iotest.ErrReader(failure))

	_, err := New(r).Read()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
	assert.True(t, errors.Is(err, failure))
}

func TestPushbackOverflow(t *testing.T) {
	p := New(strings.NewReader(``))
	f := &frame{p: p}

	err := f.push('a', 'b', 'c')
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrPushbackOverflow))

	// a rejected push leaves nothing behind
	assert.False(t, p.Source().HasPending())
	assert.Equal(t, lexer.PushbackSize, p.Source().Free())

	require.NoError(t, f.push('x'))
	assert.True(t, errors.Is(f.push('y', 'z'), ErrPushbackOverflow))
	assert.Equal(t, lexer.PushbackSize-1, p.Source().Free())
}

func TestReadSequence(t *testing.T) {
	p := New(strings.NewReader("foo (bar) 12 \"x\"\n'y"))

	expected := []string{`foo`, `(bar)`, `12`, `"x"`, `(quote y)`}
	for i := range expected {
		v, err := p.Read()
		require.NoError(t, err)
		assert.Equal(t, expected[i], v.String())
	}

	v, err := p.Read()
	require.NoError(t, err)
	assert.True(t, v.IsEOF())
}

func TestErrorPosition(t *testing.T) {
	_, err := New(strings.NewReader("(a\n b\n #)")).Read()

	var perr *Error
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Pos.Line)
	assert.Contains(t, perr.Error(), "line 3")
	assert.Contains(t, perr.Error(), "'#'")
}

func TestRoundTrip(t *testing.T) {
	testCases := []string{
		`()`,
		`(1 2 3)`,
		`(1 (2 (3 . 4)) . 5)`,
		`(define (fact n) (if (< n 2) 1 (* n (fact (- n 1)))))`,
		`'(a 'b . c)`,
		`("text with spaces" sym -42 .dot)`,
		`(((())))`,
		`(1+ -x ... <=? a.b)`,
	}

	for i := range testCases {
		first, err := Parse([]byte(testCases[i]))
		require.NoError(t, err)

		printed := []byte(encodeAll(first))
		second, err := Parse(printed)
		require.NoError(t, err, "printed %q", printed)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("input %q: (-first +second)\n%s", testCases[i], diff)
		}
		assert.True(t, bytes.Equal(printed, []byte(encodeAll(second))))
	}
}
