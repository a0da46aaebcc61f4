// Package export renders the ordered result set for the outside world:
// terminal tables, CSV, JSON, YAML, and Markdown reports. It is strictly a
// presentation layer over reconciled rows; it never recomputes a metric.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"

	"github.com/fairscan/fairscan/pkg/scans"
)

// Format identifies an output format.
type Format string

// Supported output formats.
const (
	FormatTable    Format = "table"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCSV      Format = "csv"
	FormatMarkdown Format = "markdown"
)

// ParseFormat converts a string to a Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(s))
	switch format {
	case FormatTable, FormatJSON, FormatYAML, FormatCSV, FormatMarkdown, "":
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, json, yaml, csv, markdown", s)
	}
}

// DetectFormat picks the output format: the explicit one when given, a table
// when stdout is a terminal, JSON otherwise.
func DetectFormat(explicit Format) Format {
	if explicit != "" {
		return explicit
	}
	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}
	return FormatJSON
}

// Write renders rows to w in the given format.
func Write(w io.Writer, format Format, rows []*scans.Row) error {
	switch format {
	case FormatJSON, "":
		return writeJSON(w, rows)
	case FormatYAML:
		return writeYAML(w, rows)
	case FormatCSV:
		return writeCSV(w, rows)
	case FormatMarkdown:
		return writeMarkdown(w, rows)
	case FormatTable:
		return writeTable(w, rows)
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

func writeJSON(w io.Writer, rows []*scans.Row) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rows)
}

func writeYAML(w io.Writer, rows []*scans.Row) error {
	data, err := yaml.MarshalWithOptions(rows,
		yaml.Indent(2),
		yaml.IndentSequence(false),
	)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

func writeCSV(w io.Writer, rows []*scans.Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Headers()); err != nil {
		return err
	}
	for _, row := range rows {
		if err := cw.Write(Cells(row)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
