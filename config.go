package sread

import (
	"log"
	"os"
)

// Config holds the settings of a REPL
type Config struct {
	// Prompt is written before reading whenever no input is pending.
	Prompt string
	Banner string

	// Interactive enables the banner and the prompt.
	Interactive bool

	Color bool
	Dump  bool

	// ContinueOnError makes the REPL log a failed read, skip the rest of the
	// offending line (everything pending when interactive) and keep going.
	// Input errors stop it anyway.
	ContinueOnError bool

	Evaluator Evaluator
	Logger    *log.Logger
}

// DefaultConfig returns the settings of a non interactive REPL
func DefaultConfig() Config {
	return Config{
		Prompt:    ">>> ",
		Banner:    "Welcome to sread!",
		Evaluator: Identity,
		Logger:    log.New(os.Stderr, "sread: ", 0),
	}
}
