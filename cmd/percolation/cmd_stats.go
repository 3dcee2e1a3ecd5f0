package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/stats"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [n] [trials]",
		Short: "Estimate the percolation threshold of an n-by-n grid",
		Long: `Run independent trials on an n-by-n grid, opening random sites until the
system percolates, and report the mean open-site fraction, its sample
standard deviation and a 95% confidence interval.

n and trials default to stats.side and stats.trials from the config.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := loadSettings(cmd)
			if err != nil {
				return err
			}

			n, trials := cfg.Stats.Side, cfg.Stats.Trials
			if len(args) > 0 {
				if n, err = strconv.Atoi(args[0]); err != nil {
					return fmt.Errorf("invalid n %q: %w", args[0], err)
				}
			}
			if len(args) > 1 {
				if trials, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("invalid trials %q: %w", args[1], err)
				}
			}

			seed := cfg.Stats.Seed
			if cmd.Flags().Changed("seed") {
				seed, _ = cmd.Flags().GetInt64("seed")
			}
			opts := []stats.Option{stats.WithLogger(logger)}
			if seed != 0 {
				opts = append(opts, stats.WithSeed(seed))
			}

			logger.Debug("starting simulation", "side", n, "trials", trials, "seed", seed)
			s, err := stats.New(n, trials, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			jsonOut, _ := cmd.Flags().GetBool("json")
			if jsonOut {
				return json.NewEncoder(out).Encode(s.Summary())
			}
			fmt.Fprintf(out, "mean                    = %v\n", s.Mean())
			fmt.Fprintf(out, "stddev                  = %v\n", s.Stddev())
			fmt.Fprintf(out, "95%% confidence interval = [%v, %v]\n", s.ConfidenceLo(), s.ConfidenceHi())

			return nil
		},
	}

	cmd.Flags().Int64("seed", 0, "Random seed (0 seeds from the clock)")

	return cmd
}
