// Package cmd implements the fairscan command line interface.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fairscan/fairscan/internal/config"
	"github.com/fairscan/fairscan/pkg/logging"
)

var (
	configFile string
	logLevel   string
	quiet      bool

	// Version information set by main.
	Version = "dev"
	// Commit is the git commit hash.
	Commit = "unknown"
	// Date is the build date.
	Date = "unknown"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "fairscan",
	Short: "Multi-source player suspicion reconciler",
	Long: `Fairscan merges per-player performance metrics from three partially
overlapping sources - a structured scan result, a flat side table with
unpredictable header spellings, and a free-text narrative - into one
canonical, unit-normalized row per player, ranked by suspicion score.`,
	PersistentPreRunE: setup,
	SilenceUsage:      true,
}

// Execute runs the root command with signal-aware context.
func Execute(version, commit, date string) {
	Version = version
	Commit = commit
	Date = date

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		logging.Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default fairscan.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all log output below errors")
}

// setup loads .env, configuration, and logging before any subcommand runs.
func setup(cmd *cobra.Command, _ []string) error {
	// A missing .env file is fine.
	_ = godotenv.Load()

	if err := config.Init(configFile); err != nil {
		return err
	}

	level := logLevel
	if level == "" {
		level = config.GetString(config.KeyLogs)
	}
	if quiet {
		level = "error"
	}
	logging.Configure(&logging.Config{
		Level:  level,
		Format: "auto",
		Output: "stderr",
	})
	return nil
}
