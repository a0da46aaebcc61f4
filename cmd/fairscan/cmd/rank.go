package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fairscan/fairscan/internal/config"
	"github.com/fairscan/fairscan/internal/export"
	"github.com/fairscan/fairscan/internal/scanfile"
	"github.com/fairscan/fairscan/pkg/constants"
	"github.com/fairscan/fairscan/pkg/logging"
	"github.com/fairscan/fairscan/pkg/reconcile"
	"github.com/fairscan/fairscan/pkg/scans"
)

var (
	rankOutput  string
	rankOutFile string
	rankWorkers int
)

var rankCmd = &cobra.Command{
	Use:   "rank <scan-file>",
	Short: "Reconcile scan inputs and rank players by suspicion",
	Long: `Rank reads per-player scan inputs from a YAML or JSON file (or stdin
with "-"), reconciles each player's three sources into one canonical row,
and prints the rows ordered by suspicion score.`,
	Args: cobra.ExactArgs(1),
	RunE: runRank,
}

func init() {
	rankCmd.Flags().StringVarP(&rankOutput, "output", "o", "", "output format (table, json, yaml, csv, markdown)")
	rankCmd.Flags().StringVar(&rankOutFile, "out-file", "", "write the report to a file instead of stdout")
	rankCmd.Flags().IntVar(&rankWorkers, "workers", 0, "concurrent reconciliation workers")
	rootCmd.AddCommand(rankCmd)
}

func runRank(cmd *cobra.Command, args []string) error {
	path := args[0]
	ctx := logging.WithOperation(cmd.Context(), "rank")
	ctx = logging.WithScanFile(ctx, path)

	inputs, err := scanfile.Load(path)
	if err != nil {
		return err
	}
	logging.Ctx(ctx).Info().
		Int("players", len(inputs)).
		Msg("loaded scan inputs")

	r := reconcile.New(reconcile.WithWorkers(workerCount()))
	rows, err := r.ReconcileAll(ctx, inputs)
	if err != nil {
		return err
	}
	scans.Sort(rows)

	explicit := rankOutput
	if explicit == "" {
		explicit = config.GetString(config.KeyOutput)
	}
	format, err := export.ParseFormat(explicit)
	if err != nil {
		return err
	}

	if rankOutFile == "" {
		return export.Write(os.Stdout, export.DetectFormat(format), rows)
	}

	if format == "" {
		format = export.Format(constants.DefaultOutputFormat)
	}
	if dir := filepath.Dir(rankOutFile); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return err
		}
	}
	f, err := os.OpenFile(rankOutFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.Write(f, format, rows); err != nil {
		return err
	}
	logging.Ctx(ctx).Info().
		Str("file", rankOutFile).
		Str("format", string(format)).
		Msg("wrote report")
	return nil
}

// workerCount resolves the worker bound from flag, then config, then the
// default, clamped to the maximum.
func workerCount() int {
	n := rankWorkers
	if n <= 0 {
		n = config.GetInt(config.KeyWorkers)
	}
	if n <= 0 {
		n = constants.DefaultScanWorkers
	}
	if n > constants.MaxScanWorkers {
		n = constants.MaxScanWorkers
	}
	return n
}
