package export

import (
	"fmt"
	"io"

	md "github.com/nao1215/markdown"

	"github.com/fairscan/fairscan/pkg/scans"
)

// writeMarkdown renders rows as a Markdown report: a heading, a summary
// line, and one table in export order.
func writeMarkdown(w io.Writer, rows []*scans.Row) error {
	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = Cells(row)
	}

	doc := md.NewMarkdown(w)
	doc.H1("Suspicion Report").LF()
	doc.PlainText(fmt.Sprintf("%d players, ranked by suspicion score.", len(rows))).LF()
	doc.Table(md.TableSet{
		Header: Headers(),
		Rows:   cells,
	})
	return doc.Build()
}
