package ast

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		In  Handle
		Out string
	}{
		{NewNil(), `()`},
		{NewEOF(), ``},
		{NewInteger(0), `0`},
		{NewInteger(-42), `-42`},
		{NewInteger(9223372036854775807), `9223372036854775807`},
		{NewSymbol("set!"), `set!`},
		{NewText(`a "b" \c`), `"a "b" \c"`},
		{NewText(""), `""`},
		{NewList(NewInteger(1)), `(1)`},
		{NewList(NewInteger(1), NewInteger(2)), `(1 2)`},
		{NewDotted(NewInteger(3), NewInteger(1), NewInteger(2)), `(1 2 . 3)`},
		{NewPair(NewSymbol("a"), NewText("b")), `(a . "b")`},
		{NewList(NewNil(), NewList(NewNil())), `(() (()))`},
		{NewList(NewList(NewSymbol("quote"), NewSymbol("x")), NewDotted(NewNil(), NewInteger(1))), `((quote x) (1))`},
		{NewPair(NewInteger(1), NewEOF()), `(1 . )`},
	}

	for i := range testCases {
		assert.Equal(t, testCases[i].Out, string(Encode(testCases[i].In)))
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, NewList(NewSymbol("a"), NewText("b"))))
	assert.Equal(t, `(a "b")`, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestFprintError(t *testing.T) {
	assert.Error(t, Fprint(failingWriter{}, NewInteger(1)))
	assert.Error(t, Dump(failingWriter{}, NewList(NewInteger(1))))
}

func TestEncodeColor(t *testing.T) {
	bracket := func(format string, a ...interface{}) string {
		return "<" + fmt.Sprintf(format, a...) + ">"
	}

	c := &Colors{
		Map: map[Type]func(string, ...interface{}) string{
			TypeSymbol: bracket,
			TypePair:   bracket,
		},
	}

	out := EncodeColor(NewList(NewSymbol("a"), NewInteger(1)), c)
	assert.Equal(t, `<(><a> 1<)>`, string(out))

	c.Default = func(format string, a ...interface{}) string {
		return "*" + fmt.Sprintf(format, a...)
	}
	out = EncodeColor(NewList(NewSymbol("a"), NewInteger(1)), c)
	assert.Equal(t, `<(><a> *1<)>`, string(out))

	assert.NotNil(t, NewColors().Map[TypeText])
}

func TestDump(t *testing.T) {
	var buf bytes.Buffer

	tree := NewList(
		NewSymbol("define"),
		NewDotted(NewSymbol("rest"), NewSymbol("f")),
		NewText("doc"),
		NewInteger(1),
	)
	require.NoError(t, Dump(&buf, tree))

	expected := "" +
		"(list)[4]\n" +
		"    (symbol): define\n" +
		"    (list)[1]\n" +
		"        (symbol): f\n" +
		"      .\n" +
		"        (symbol): rest\n" +
		"    (text): \"doc\"\n" +
		"    (integer): 1\n"
	assert.Equal(t, expected, buf.String())
}
