package main

import (
	"fmt"
	"strconv"

	"github.com/creachadair/pjson/ast"
	"github.com/creachadair/pjson/ast/cursor"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newParseCmd() *cobra.Command {
	var flags scanFlags
	var rawNumbers bool
	var path []string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse JSON input and print the value as compact JSON",
		Long: `Build a value from JSON input and print it as compact JSON.

If a file is provided, it is parsed; otherwise input is read from stdin.
Use --path to select a value inside the result. Path elements that are
integers index arrays and objects; other elements are object keys.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, flags.jwcc)
			if err != nil {
				return err
			}
			v, err := ast.ParseConfig(flags.config(!rawNumbers), data, 0, len(data))
			if err != nil {
				return fmt.Errorf("parse: %w", err)
			}

			if len(path) != 0 {
				c := cursor.New(v).Down(pathElements(path)...)
				if err := c.Err(); err != nil {
					return fmt.Errorf("path: %w", err)
				}
				v = c.Value()
				log.Debug().Strs("path", path).Msg("selected value")
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), v.JSON())
			return err
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVar(&rawNumbers, "raw-numbers", false, "keep bare tokens as strings")
	cmd.Flags().StringSliceVarP(&path, "path", "p", nil, "path of the value to print")

	return cmd
}

// pathElements converts path strings to cursor path elements. The result
// always ends in nil, so a path ending at an object member selects its value.
func pathElements(path []string) []any {
	out := make([]any, 0, len(path)+1)
	for _, p := range path {
		if i, err := strconv.Atoi(p); err == nil {
			out = append(out, i)
		} else {
			out = append(out, p)
		}
	}
	return append(out, nil)
}
