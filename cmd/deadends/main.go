// Command deadends loads a GEDCOM file and runs a report script
// against it, the same two-input shape as RunScript: a database built
// from -g, a script parsed from -s, and its main procedure executed
// with the two wired together.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cacack/deadends/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("deadends: %v", err))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var gedcomFile, scriptFile, configFile string

	cmd := &cobra.Command{
		Use:           "deadends",
		Short:         "Run a report script against a GEDCOM database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if gedcomFile == "" {
				return fmt.Errorf("-g/--gedcom is required")
			}
			if scriptFile == "" {
				return fmt.Errorf("-s/--script is required")
			}
			opts, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if opts.NoColor {
				color.NoColor = true
			}
			return run(gedcomFile, scriptFile, opts)
		},
	}

	cmd.Flags().StringVarP(&gedcomFile, "gedcom", "g", "", "GEDCOM file to load")
	cmd.Flags().StringVarP(&scriptFile, "script", "s", "", "report script to run")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "optional YAML config file")

	return cmd
}
