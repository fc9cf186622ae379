package main

import (
	"log"
	"os"

	"github.com/xiam/sread/ast"
	"github.com/xiam/sread/parser"
)

func main() {
	input := `(fn_a (fn_b (89 a b (67 . 3))) (fn_c 66 3 53 "Hello world!" 'quoted))`

	values, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for i := range values {
		if err := ast.Dump(os.Stdout, values[i]); err != nil {
			log.Fatal("ast.Dump:", err)
		}
	}
}
