// Command percolation estimates percolation thresholds by Monte Carlo
// simulation and offers an interactive shell over a single grid.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/internal/config"
	"github.com/katalvlaran/percolation/internal/logging"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
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
		Use:   "percolation",
		Short: "Percolation threshold estimation on n-by-n grids",
		Long: `percolation models site percolation on a square grid using a
union-find connectivity engine.

Run "percolation stats" for a Monte Carlo estimate of the threshold, or
"percolation interactive" to open sites by hand.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored log output")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newStatsCmd(),
		newInteractiveCmd(),
	)

	return rootCmd
}

// loadSettings resolves the effective configuration (file, environment,
// then flags) and builds the logger that writes to the command's stderr.
func loadSettings(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}

	if cmd.Flags().Changed("log-level") {
		cfg.Logging.Level, _ = cmd.Flags().GetString("log-level")
	}
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		cfg.Logging.NoColor = true
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.NoColor)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}
