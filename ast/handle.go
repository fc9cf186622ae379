package ast

import (
	"fmt"
)

// Object is a tagged value: the empty list, a pair, a symbol, an integer, a
// text or the end of input marker.
type Object struct {
	t Type

	first Handle
	rest  Handle

	s string
	n int64
}

// Handle is a shared reference to an Object. Copies of a Handle point at the
// same Object, so changes made through any of them are seen by all.
//
// Nothing here detects or breaks reference cycles: a pair made to contain
// itself through SetFirst or SetRest stays valid, but Equal, String and the
// printers never terminate on it.
type Handle struct {
	o *Object
}

func newHandle(o Object) Handle {
	return Handle{o: &o}
}

// IsValid returns false for the zero Handle
func (h Handle) IsValid() bool {
	return h.o != nil
}

// Type returns the tag of the referenced object
func (h Handle) Type() Type {
	if h.o == nil {
		return TypeInvalid
	}
	return h.o.t
}

// IsNil returns true if h refers to the empty list
func (h Handle) IsNil() bool {
	return h.Type() == TypeNil
}

// IsPair returns true if h refers to a pair
func (h Handle) IsPair() bool {
	return h.Type() == TypePair
}

// IsEOF returns true if h refers to the end of input marker
func (h Handle) IsEOF() bool {
	return h.Type() == TypeEOF
}

func (h Handle) expect(t Type, op string) *Object {
	if h.Type() != t {
		panic(fmt.Sprintf("ast: %s called on %v", op, h.Type()))
	}
	return h.o
}

// First returns the first slot of a pair
func (h Handle) First() Handle {
	return h.expect(TypePair, "First").first
}

// Rest returns the second slot of a pair
func (h Handle) Rest() Handle {
	return h.expect(TypePair, "Rest").rest
}

// Symbol returns the spelling of a symbol
func (h Handle) Symbol() string {
	return h.expect(TypeSymbol, "Symbol").s
}

// Int returns the value of an integer
func (h Handle) Int() int64 {
	return h.expect(TypeInteger, "Int").n
}

// Text returns the contents of a text
func (h Handle) Text() string {
	return h.expect(TypeText, "Text").s
}

// SetFirst replaces the first slot of a pair
func (h Handle) SetFirst(v Handle) {
	h.expect(TypePair, "SetFirst").first = v
}

// SetRest replaces the second slot of a pair
func (h Handle) SetRest(v Handle) {
	h.expect(TypePair, "SetRest").rest = v
}

// Set turns the object referenced by h into a shallow copy of the one
// referenced by v.
func (h Handle) Set(v Handle) {
	if h.o == nil || v.o == nil {
		panic("ast: Set called on invalid handle")
	}
	*h.o = *v.o
}

// Same returns true if h and v refer to the very same object
func (h Handle) Same(v Handle) bool {
	return h.o == v.o
}

// Equal compares the objects referenced by h and v structurally.
func (h Handle) Equal(v Handle) bool {
	for {
		if h.o == v.o {
			return true
		}
		if h.o == nil || v.o == nil || h.o.t != v.o.t {
			return false
		}

		switch h.o.t {
		case TypeNil, TypeEOF:
			return true
		case TypeSymbol, TypeText:
			return h.o.s == v.o.s
		case TypeInteger:
			return h.o.n == v.o.n
		case TypePair:
			if !h.o.first.Equal(v.o.first) {
				return false
			}
			h, v = h.o.rest, v.o.rest
		default:
			return false
		}
	}
}

// Slice returns the elements of a pair chain along with whatever ends it:
// Nil for a proper list, any other atom for a dotted one.
func (h Handle) Slice() ([]Handle, Handle) {
	items := []Handle{}
	for h.IsPair() {
		items = append(items, h.o.first)
		h = h.o.rest
	}
	return items, h
}

func (h Handle) String() string {
	switch h.Type() {
	case TypeInvalid:
		return "#<invalid>"
	case TypeEOF:
		return "#<eof>"
	}
	return string(Encode(h))
}
