package main

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/creachadair/pjson"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newEventsCmd() *cobra.Command {
	var flags scanFlags
	var numbers, check, spans bool

	cmd := &cobra.Command{
		Use:   "events [file]",
		Short: "Print the scanner events for JSON input",
		Long: `Print one line for each event reported by the scanner.

If a file is provided, it is scanned; otherwise input is read from stdin.
Use --check to reject input whose brackets are not balanced.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, flags.jwcc)
			if err != nil {
				return err
			}

			w := bufio.NewWriter(cmd.OutOrStdout())
			p := &eventPrinter{w: w, spans: spans}
			var l pjson.Listener = p
			var c *pjson.Checker
			if check {
				c = pjson.NewChecker(p)
				l = c
			}

			start := time.Now()
			err = flags.config(numbers).ScanAll(data, l)
			if err == nil && c != nil {
				err = c.Done()
			}
			if ferr := w.Flush(); err == nil {
				err = ferr
			}
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			log.Debug().Int("events", p.n).Dur("elapsed", time.Since(start)).Msg("scan complete")
			return nil
		},
	}

	flags.bind(cmd)
	cmd.Flags().BoolVarP(&numbers, "numbers", "n", false, "convert bare tokens to integers")
	cmd.Flags().BoolVar(&check, "check", false, "reject unbalanced brackets")
	cmd.Flags().BoolVar(&spans, "spans", false, "print the input offsets of values")

	return cmd
}

// eventPrinter is a pjson.Listener that writes one line per event.
type eventPrinter struct {
	w     io.Writer
	spans bool
	n     int
}

func (p *eventPrinter) print(e pjson.Event) error {
	p.n++
	var err error
	if p.spans && (e.Token == pjson.StringValue || e.Token == pjson.NumberValue) {
		_, err = fmt.Fprintf(p.w, "%s @%s\n", e, e.Span)
	} else {
		_, err = fmt.Fprintln(p.w, e)
	}
	return err
}

func (p *eventPrinter) ObjectStart() error { return p.print(pjson.Event{Token: pjson.ObjectStart}) }
func (p *eventPrinter) ObjectEnd() error   { return p.print(pjson.Event{Token: pjson.ObjectEnd}) }
func (p *eventPrinter) ArrayStart() error  { return p.print(pjson.Event{Token: pjson.ArrayStart}) }
func (p *eventPrinter) ArrayEnd() error    { return p.print(pjson.Event{Token: pjson.ArrayEnd}) }

func (p *eventPrinter) String(text pjson.Text) error {
	return p.print(pjson.Event{Token: pjson.StringValue, Span: text.Span(), Text: text.String()})
}

func (p *eventPrinter) Number(n pjson.Number) error {
	return p.print(pjson.Event{Token: pjson.NumberValue, Span: n.Span(), Number: n})
}
