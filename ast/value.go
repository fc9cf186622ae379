package ast

// NewNil creates the empty list
func NewNil() Handle {
	return newHandle(Object{t: TypeNil})
}

// NewPair creates a pair out of first and rest
func NewPair(first Handle, rest Handle) Handle {
	return newHandle(Object{t: TypePair, first: first, rest: rest})
}

// NewSymbol creates a symbol spelled as s
func NewSymbol(s string) Handle {
	return newHandle(Object{t: TypeSymbol, s: s})
}

// NewInteger creates an integer and sets it to the given value
func NewInteger(n int64) Handle {
	return newHandle(Object{t: TypeInteger, n: n})
}

// NewText creates a text and sets it to the given value
func NewText(s string) Handle {
	return newHandle(Object{t: TypeText, s: s})
}

// NewEOF creates the end of input marker
func NewEOF() Handle {
	return newHandle(Object{t: TypeEOF})
}

// Chain links items into pairs from back to front, the last item becoming
// the tail of the chain. No items yield the empty list.
func Chain(items ...Handle) Handle {
	if len(items) == 0 {
		return NewNil()
	}
	tail := items[len(items)-1]
	for i := len(items) - 2; i >= 0; i-- {
		tail = NewPair(items[i], tail)
	}
	return tail
}

// NewList creates a proper list holding items
func NewList(items ...Handle) Handle {
	return Chain(append(items[:len(items):len(items)], NewNil())...)
}

// NewDotted creates a list holding items and ended by tail
func NewDotted(tail Handle, items ...Handle) Handle {
	return Chain(append(items[:len(items):len(items)], tail)...)
}
