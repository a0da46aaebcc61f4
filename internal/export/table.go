package export

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/fairscan/fairscan/pkg/scans"
)

// writeTable renders rows as an ASCII table with the numeric columns
// right-aligned.
func writeTable(w io.Writer, rows []*scans.Row) error {
	headers := Headers()

	alignment := make([]tw.Align, len(headers))
	for i := range alignment {
		alignment[i] = tw.AlignRight
	}
	// Player and Narrative stay left-aligned.
	alignment[0] = tw.AlignLeft
	alignment[len(alignment)-1] = tw.AlignLeft

	config := tablewriter.Config{}
	config.Header.Alignment = tw.CellAlignment{PerColumn: alignment}
	config.Row.Alignment = tw.CellAlignment{PerColumn: alignment}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	cells := make([]any, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	table.Header(cells...)

	for _, row := range rows {
		rowCells := Cells(row)
		data := make([]any, len(rowCells))
		for i, c := range rowCells {
			data[i] = c
		}
		if err := table.Append(data...); err != nil {
			return err
		}
	}

	return table.Render()
}
