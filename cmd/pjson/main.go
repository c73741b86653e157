// Program pjson scans JSON input and prints the events or values it contains.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("pjson failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	var pretty bool

	root := &cobra.Command{
		Use:   "pjson",
		Short: "A single-pass JSON scanner",
		Long: `Scan JSON text from a file or stdin.

The events command prints one line per scanner event. The parse command
builds a value from the events and prints it as compact JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(cmd.ErrOrStderr(), logLevel, pretty)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error, fatal)")
	root.PersistentFlags().BoolVar(&pretty, "pretty", false, "enable pretty logging output")

	root.AddCommand(newEventsCmd())
	root.AddCommand(newParseCmd())
	return root
}
