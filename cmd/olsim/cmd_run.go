package main

import (
	"fmt"
	"os"

	"github.com/arloliu/olsim/config"
	"github.com/arloliu/olsim/frame"
	"github.com/arloliu/olsim/internal/logging"
	"github.com/arloliu/olsim/simulation"
	"github.com/arloliu/olsim/summary"
	"github.com/spf13/cobra"
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a simulation and report the estimate distributions",
		Long: `Run draws the configured number of samples, fits each one and prints
descriptive statistics and histograms of the intercept and slope estimates.

Settings come from defaults, then --config, then OLSIM_* environment
variables, then the flags given here.`,
		Example: `  olsim run
  olsim run -s 5000 -n 20 --seed 42
  olsim run --policy skip --out run.olsf --compression zstd`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())

			opts, err := cfg.RunnerOptions()
			if err != nil {
				return err
			}
			runner, err := simulation.New(append(opts, simulation.WithLogger(logger))...)
			if err != nil {
				return err
			}

			res, err := runner.Run(cfg.Simulation.NumSimulations, cfg.Simulation.SampleSize, cfg.Params())
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}
			logger.Info("simulation complete",
				"trials", res.Trials, "stored", res.Len(), "failed", len(res.Failures), "seed", res.Seed)

			if out, _ := cmd.Flags().GetString("out"); out != "" {
				if err := writeFrame(out, res, cfg); err != nil {
					return err
				}
				logger.Info("frame written", "path", out)
			}

			rep, err := buildReport(res, cfg.Output.Bins)
			if err != nil {
				return err
			}

			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return writeJSON(cmd.OutOrStdout(), rep)
			}

			return writeText(cmd.OutOrStdout(), rep)
		},
	}

	cmd.Flags().IntP("simulations", "s", config.DefaultNumSimulations, "Number of simulated datasets")
	cmd.Flags().IntP("sample-size", "n", config.DefaultSampleSize, "Observations per dataset")
	cmd.Flags().Float64("intercept", config.DefaultIntercept, "True intercept")
	cmd.Flags().Float64("slope", config.DefaultSlope, "True slope")
	cmd.Flags().Float64("noise", config.DefaultNoiseStdDev, "Noise standard deviation")
	cmd.Flags().Uint64("seed", 0, "Random seed (drawn at random when unset)")
	cmd.Flags().String("policy", "abort", "Degenerate trial policy: abort, skip, propagate")
	cmd.Flags().Int("bins", summary.DefaultBins, "Histogram bins")
	cmd.Flags().StringP("out", "o", "", "Write the result frame to this file")
	cmd.Flags().String("compression", "none", "Frame compression: none, zstd, s2, lz4")

	return cmd
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}

	return cfg, nil
}

// applyFlags copies the flags the user set onto cfg. Flags a command does
// not define are left alone.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error

	if flags.Changed("simulations") {
		cfg.Simulation.NumSimulations, err = flags.GetInt("simulations")
	}
	if err == nil && flags.Changed("sample-size") {
		cfg.Simulation.SampleSize, err = flags.GetInt("sample-size")
	}
	if err == nil && flags.Changed("intercept") {
		cfg.Simulation.Intercept, err = flags.GetFloat64("intercept")
	}
	if err == nil && flags.Changed("slope") {
		cfg.Simulation.Slope, err = flags.GetFloat64("slope")
	}
	if err == nil && flags.Changed("noise") {
		cfg.Simulation.NoiseStdDev, err = flags.GetFloat64("noise")
	}
	if err == nil && flags.Changed("seed") {
		var seed uint64
		seed, err = flags.GetUint64("seed")
		cfg.Simulation.Seed = &seed
	}
	if err == nil && flags.Changed("policy") {
		cfg.Simulation.DegeneratePolicy, err = flags.GetString("policy")
	}
	if err == nil && flags.Changed("bins") {
		cfg.Output.Bins, err = flags.GetInt("bins")
	}
	if err == nil && flags.Changed("compression") {
		cfg.Output.Compression, err = flags.GetString("compression")
	}

	return err
}

func writeFrame(path string, res *simulation.Result, cfg *config.Config) error {
	ct, err := cfg.Compression()
	if err != nil {
		return err
	}

	data, err := frame.Encode(res, frame.WithCompression(ct))
	if err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}

	return nil
}
