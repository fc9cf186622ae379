package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/xiam/sread/ast"
	"github.com/xiam/sread/parser"
)

func printTree(h ast.Handle) {
	printIndentedTree(h, 0)
}

func printIndentedTree(h ast.Handle, indentationLevel int) {
	indent := strings.Repeat("  ", indentationLevel)
	if h.IsPair() {
		items, tail := h.Slice()
		fmt.Printf("%s<list>\n", indent)
		for i := range items {
			printIndentedTree(items[i], indentationLevel+1)
		}
		if !tail.IsNil() {
			fmt.Printf("%s  <tail>\n", indent)
			printIndentedTree(tail, indentationLevel+2)
			fmt.Printf("%s  </tail>\n", indent)
		}
		fmt.Printf("%s</list>\n", indent)
		return
	}
	fmt.Printf("%s<%s>%v</%s>\n", indent, h.Type(), h, h.Type())
}

func main() {
	input := `(fn_a (fn_b (89 a b (67 . 3))) (fn_c 66 3 53 "Hello world!" 'quoted))`

	values, err := parser.Parse([]byte(input))
	if err != nil {
		log.Fatal("parser.Parse:", err)
	}

	for i := range values {
		printTree(values[i])
	}
}
