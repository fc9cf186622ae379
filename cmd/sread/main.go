package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/xiam/sread"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func isTerminal(v interface{}) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func newRootCmd(in io.Reader, out io.Writer, errOut io.Writer) *cobra.Command {
	var (
		readExpressions bool
		useColor        bool
		dump            bool
		noBanner        bool
		keepGoing       bool
		prompt          string
	)

	cmd := &cobra.Command{
		Use:   "sread [file...]",
		Short: "Read and print S-expressions",
		Long: `Read S-expressions and print them back.

Without arguments values are read from the standard input, interactively if
it is a terminal. Otherwise every argument names a file to read, or holds the
expressions themselves when -e is given.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			color.NoColor = !useColor

			cfg := sread.DefaultConfig()
			cfg.Prompt = prompt
			cfg.Color = useColor
			cfg.Dump = dump
			cfg.ContinueOnError = keepGoing
			cfg.Logger = log.New(errOut, "sread: ", 0)

			if len(args) == 0 {
				cfg.Interactive = isTerminal(in)
				if cfg.Interactive {
					cfg.ContinueOnError = true
				}
				if noBanner {
					cfg.Banner = ""
				}
				return sread.NewREPL(in, out, cfg).Run()
			}

			inputs, err := readInputs(args, readExpressions)
			if err != nil {
				return err
			}
			for i := range inputs {
				if err := sread.NewREPL(bytes.NewReader(inputs[i]), out, cfg).Run(); err != nil {
					return fmt.Errorf("%s: %w", args[i], err)
				}
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&readExpressions, "expr", "e", false, "treat arguments as expressions instead of file names")
	flags.BoolVar(&useColor, "color", isTerminal(out), "colorize printed values")
	flags.BoolVar(&dump, "dump", false, "print an indented tree of every value")
	flags.BoolVar(&noBanner, "no-banner", false, "don't greet interactive sessions")
	flags.BoolVarP(&keepGoing, "keep-going", "k", false, "report malformed input and continue with the next line")
	flags.StringVar(&prompt, "prompt", ">>> ", "prompt of interactive sessions")

	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd
}

func readInputs(args []string, isExpression bool) ([][]byte, error) {
	inputs := make([][]byte, len(args))
	if isExpression {
		for i := range args {
			inputs[i] = []byte(args[i])
		}
		return inputs, nil
	}
	for i, path := range args {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		inputs[i] = b
	}
	return inputs, nil
}
