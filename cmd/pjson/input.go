package main

import (
	"fmt"
	"io"
	"os"

	"github.com/creachadair/pjson"
	"github.com/creachadair/pjson/jwcc"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// scanFlags are the flags shared by commands that scan input.
type scanFlags struct {
	verbatim   bool
	escapeRuns bool
	jwcc       bool
}

func (f *scanFlags) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.verbatim, "verbatim", false, "do not trim whitespace from bare tokens")
	cmd.Flags().BoolVar(&f.escapeRuns, "escape-runs", false, "count runs of backslashes before quotes")
	cmd.Flags().BoolVar(&f.jwcc, "jwcc", false, "accept comments and trailing commas")
}

func (f *scanFlags) config(numbers bool) pjson.Config {
	return pjson.Config{
		Numbers:    numbers,
		Verbatim:   f.verbatim,
		EscapeRuns: f.escapeRuns,
	}
}

// readInput reads the named file, or stdin if args is empty. If useJWCC is
// set, the input is standardized before it is returned.
func readInput(cmd *cobra.Command, args []string, useJWCC bool) ([]byte, error) {
	var data []byte
	var err error
	name := "-"
	if len(args) == 0 {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
	} else {
		name = args[0]
		data, err = os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read file: %w", err)
		}
	}
	log.Debug().Str("input", name).Int("bytes", len(data)).Msg("read input")

	if useJWCC {
		data, err = jwcc.Standardize(data)
		if err != nil {
			return nil, err
		}
	}
	return data, nil
}
