package lexer

import (
	"fmt"
)

// Pos represents the location of the next byte a Source is going to return
type Pos struct {
	Line   int
	Offset int64
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, byte %d", p.Line, p.Offset)
}
