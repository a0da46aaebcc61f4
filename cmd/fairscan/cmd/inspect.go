package cmd

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fairscan/fairscan/internal/scanfile"
	"github.com/fairscan/fairscan/pkg/errors"
	"github.com/fairscan/fairscan/pkg/logging"
	"github.com/fairscan/fairscan/pkg/reconcile"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <scan-file> <player>",
	Short: "Show per-field values and which source tier supplied them",
	Long: `Inspect reconciles a single player and prints every canonical field
with its resolved value and provenance: the structured source, the side
table, the narrative text, a derivation, or unknown.`,
	Args: cobra.ExactArgs(2),
	RunE: runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	path, player := args[0], args[1]
	ctx := logging.WithOperation(cmd.Context(), "inspect")
	ctx = logging.WithScanFile(ctx, path)
	ctx = logging.WithPlayer(ctx, player)

	inputs, err := scanfile.Load(path)
	if err != nil {
		return err
	}

	r := reconcile.New()
	for _, in := range inputs {
		if in.Name != player {
			continue
		}
		logging.Ctx(ctx).Debug().Msg("rendering field provenance")
		row, prov := r.Reconcile(in)

		table := tablewriter.NewTable(os.Stdout)
		table.Header("Field", "Value", "Tier")
		for _, field := range reconcile.Fields() {
			v, _ := reconcile.FieldValue(row, field)
			if err := table.Append(string(field), v.String(), prov[field].String()); err != nil {
				return err
			}
		}
		return table.Render()
	}

	return errors.NewNotFoundError("player", player)
}
