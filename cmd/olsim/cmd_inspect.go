package main

import (
	"fmt"
	"os"

	"github.com/arloliu/olsim/frame"
	"github.com/arloliu/olsim/summary"
	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <frame-file>",
		Short: "Decode a saved result frame and report it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading frame: %w", err)
			}

			f, err := frame.Decode(data)
			if err != nil {
				return fmt.Errorf("decoding %s: %w", args[0], err)
			}

			bins, _ := cmd.Flags().GetInt("bins")
			rep, err := buildReport(f.Result(), bins)
			if err != nil {
				return err
			}
			rep.Frame = f.String()

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), rep)
			}

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), rep.Frame); err != nil {
				return err
			}

			return writeText(cmd.OutOrStdout(), rep)
		},
	}

	cmd.Flags().Int("bins", summary.DefaultBins, "Histogram bins")

	return cmd
}
