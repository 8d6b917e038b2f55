// Command olsim runs Monte Carlo experiments on the sampling distribution of
// ordinary least squares estimates and inspects saved result frames.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "olsim",
		Short: "Sampling distribution of OLS estimates by simulation",
		Long: `olsim repeatedly draws synthetic datasets from y = intercept + slope*x + e,
fits a least squares line to each and reports how the estimated intercept
and slope are distributed around their true values.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: error, warn, info, debug, trace")

	rootCmd.AddCommand(
		newRunCmd(),
		newInspectCmd(),
		newFitCmd(),
		newVersionCmd(),
	)

	return rootCmd
}
