package main

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/xiam/sread/lexer"
)

func main() {
	input := `
		(fn_a
			(fn_b (89 a . b))
			(fn_c 66 3 53 "Hello world!")
		)
	`

	src := lexer.New(strings.NewReader(input))
	for i := 0; ; i++ {
		pos := src.Pos()
		c, err := src.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			log.Fatal("lexer.Next:", err)
		}

		fmt.Printf("byte[%d] (class: %v, line: %d, offset: %d)\n\t-> %q\n\n", i, lexer.ClassOf(c), pos.Line, pos.Offset, c)
	}
}
