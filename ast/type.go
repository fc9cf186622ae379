package ast

// Type represents the tag of an Object
type Type uint8

// Object types
const (
	TypeInvalid Type = iota
	TypeNil
	TypePair
	TypeSymbol
	TypeInteger
	TypeText
	TypeEOF
)

func (t Type) String() string {
	s, ok := typeName[t]
	if ok {
		return s
	}
	return typeName[TypeInvalid]
}

// IsAtom returns true for every type that isn't a pair
func (t Type) IsAtom() bool {
	return t != TypePair && t != TypeInvalid
}

var typeName = map[Type]string{
	TypeInvalid: "invalid",
	TypeNil:     "nil",
	TypePair:    "pair",
	TypeSymbol:  "symbol",
	TypeInteger: "integer",
	TypeText:    "text",
	TypeEOF:     "eof",
}
