package ast

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Encode transforms a handle into its text representation. Texts are
// written between double quotes as they are, without escaping.
func Encode(h Handle) []byte {
	return EncodeColor(h, nil)
}

// EncodeColor works like Encode, painting every atom and every pair of
// parentheses with the function c assigns to its type.
func EncodeColor(h Handle, c *Colors) []byte {
	var buf bytes.Buffer
	encode(&buf, h, c)
	return buf.Bytes()
}

// Fprint writes the text representation of h to w
func Fprint(w io.Writer, h Handle) error {
	_, err := w.Write(Encode(h))
	return err
}

func encode(buf *bytes.Buffer, h Handle, c *Colors) {
	switch h.Type() {
	case TypeNil:
		buf.WriteString(c.paint(TypeNil, "()"))

	case TypeInteger:
		buf.WriteString(c.paint(TypeInteger, strconv.FormatInt(h.o.n, 10)))

	case TypeSymbol:
		buf.WriteString(c.paint(TypeSymbol, h.o.s))

	case TypeText:
		buf.WriteString(c.paint(TypeText, `"`+h.o.s+`"`))

	case TypePair:
		buf.WriteString(c.paint(TypePair, "("))
		encode(buf, h.o.first, c)
		rest := h.o.rest
		for rest.IsPair() {
			buf.WriteByte(' ')
			encode(buf, rest.o.first, c)
			rest = rest.o.rest
		}
		if !rest.IsNil() {
			buf.WriteString(" . ")
			encode(buf, rest, c)
		}
		buf.WriteString(c.paint(TypePair, ")"))

	case TypeEOF, TypeInvalid:
		// nothing to print
	}
}

// Dump writes a human-readable, indented representation of h to w
func Dump(w io.Writer, h Handle) error {
	return dumpLevel(w, h, 0)
}

func dumpLevel(w io.Writer, h Handle, level int) error {
	indent := strings.Repeat("    ", level)

	if !h.IsPair() {
		var err error
		switch h.Type() {
		case TypeSymbol, TypeInteger, TypeText:
			_, err = fmt.Fprintf(w, "%s(%s): %s\n", indent, h.Type(), h)
		default:
			_, err = fmt.Fprintf(w, "%s(%s)\n", indent, h.Type())
		}
		return err
	}

	items, tail := h.Slice()
	if _, err := fmt.Fprintf(w, "%s(list)[%d]\n", indent, len(items)); err != nil {
		return err
	}
	for i := range items {
		if err := dumpLevel(w, items[i], level+1); err != nil {
			return err
		}
	}
	if tail.IsNil() {
		return nil
	}
	if _, err := fmt.Fprintf(w, "%s  .\n", indent); err != nil {
		return err
	}
	return dumpLevel(w, tail, level+1)
}
