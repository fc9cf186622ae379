package sread

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/xiam/sread/ast"
	"github.com/xiam/sread/parser"
)

// REPL reads values from an input, evaluates them and prints the results
type REPL struct {
	p   *parser.Parser
	out io.Writer
	cfg Config

	colors *ast.Colors
}

// NewREPL creates a REPL reading from in and writing to out
func NewREPL(in io.Reader, out io.Writer, cfg Config) *REPL {
	if cfg.Evaluator == nil {
		cfg.Evaluator = Identity
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}

	r := &REPL{
		p:   parser.New(in),
		out: out,
		cfg: cfg,
	}
	if cfg.Color {
		r.colors = ast.NewColors()
	}
	return r
}

// Run loops until the input is exhausted. It returns nil at the end of the
// input and the first error it can't get past otherwise.
func (r *REPL) Run() error {
	src := r.p.Source()

	if r.cfg.Interactive && r.cfg.Banner != "" {
		if _, err := fmt.Fprintln(r.out, r.cfg.Banner); err != nil {
			return err
		}
	}

	for {
		if r.cfg.Interactive && !src.HasPending() {
			if _, err := io.WriteString(r.out, r.cfg.Prompt); err != nil {
				return err
			}
		}

		v, err := r.p.Read()
		if err == nil {
			if v.IsEOF() {
				return nil
			}
			v, err = r.cfg.Evaluator.Eval(v)
		}
		if err != nil {
			if !r.cfg.ContinueOnError || errors.Is(err, parser.ErrIO) {
				return err
			}
			r.cfg.Logger.Printf("error: %v", err)
			if err := r.resync(); err != nil {
				return err
			}
			continue
		}

		if err := r.print(v); err != nil {
			return err
		}
		src.ClearPendingSpace()
	}
}

// resync drops the rest of the input that led to a failure: whatever was
// typed so far on a terminal, the current line otherwise.
func (r *REPL) resync() error {
	src := r.p.Source()
	if r.cfg.Interactive {
		src.Discard()
		return nil
	}
	return src.SkipLine()
}

func (r *REPL) print(v ast.Handle) error {
	if r.cfg.Dump {
		return ast.Dump(r.out, v)
	}
	_, err := fmt.Fprintf(r.out, "%s\n", ast.EncodeColor(v, r.colors))
	return err
}
