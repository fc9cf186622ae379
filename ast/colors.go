package ast

import (
	"github.com/fatih/color"
)

// Colors maps object types to the functions used to paint them
type Colors struct {
	Default func(string, ...interface{}) string
	Map     map[Type]func(string, ...interface{}) string
}

// NewColors returns the default palette
func NewColors() *Colors {
	return &Colors{
		Default: color.New(color.Reset).SprintfFunc(),
		Map: map[Type]func(string, ...interface{}) string{
			TypePair:    color.RGB(196, 128, 128).SprintfFunc(),
			TypeNil:     color.RGB(168, 0, 196).SprintfFunc(),
			TypeSymbol:  color.CyanString,
			TypeInteger: color.RGB(128, 216, 236).SprintfFunc(),
			TypeText:    color.RGB(8, 196, 16).SprintfFunc(),
		},
	}
}

func (c *Colors) paint(t Type, s string) string {
	if c == nil {
		return s
	}
	fn, ok := c.Map[t]
	if !ok {
		fn = c.Default
	}
	if fn == nil {
		return s
	}
	return fn("%s", s)
}
