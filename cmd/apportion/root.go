package main

import (
	"github.com/spf13/cobra"

	"github.com/arloliu/apportion"
	"github.com/arloliu/apportion/internal/logging"
)

// app carries state shared between the root command and its subcommands.
type app struct {
	verbose bool
	logger  apportion.Logger
	flush   func()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "apportion",
		Short: "Split a value across weighted slots",
		Long: `apportion splits a quantity across slots in proportion to weights.

Exact mode guarantees the shares sum to the value; the leftover units of
integral kinds go to the slots with the highest demand weight/(share+1).
Approximate mode rounds each share independently.

Configuration is read from an optional YAML file and APPORTION_* environment
variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			logger, flush, err := logging.NewZapProduction(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			a.flush = flush

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.flush != nil {
				a.flush()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(newDistributeCmd(a))

	return rootCmd
}
