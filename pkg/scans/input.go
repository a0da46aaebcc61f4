package scans

import (
	"fmt"
	"strings"

	"github.com/fairscan/fairscan/pkg/constants"
)

// Input carries the three per-player sources handed to reconciliation.
// Any of the three may be absent; the engine degrades to unknown fields
// rather than failing. Inputs are read-only to the engine.
type Input struct {
	// Name identifies the player and is carried into the row verbatim.
	Name string `json:"name" yaml:"name"`

	// Structured is the authoritative nested scan result, consulted first.
	Structured map[string]any `json:"structured,omitempty" yaml:"structured,omitempty"`

	// SideTable is a flat header-to-scalar row with unpredictable header
	// spellings, consulted second via alias matching.
	SideTable map[string]any `json:"side_table,omitempty" yaml:"side_table,omitempty"`

	// Narrative is a free-text explanation, either one string or an ordered
	// list of short phrases. It is the last-resort numeric source for a
	// small field subset and is passed through to the row unmodified.
	Narrative any `json:"narrative,omitempty" yaml:"narrative,omitempty"`
}

// NarrativeText flattens the narrative source to a single string. A list of
// phrases is joined with "; "; anything else renders empty.
func (in Input) NarrativeText() string {
	switch v := in.Narrative.(type) {
	case string:
		return v
	case []string:
		return strings.Join(v, constants.NarrativeSeparator)
	case []any:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			switch s := p.(type) {
			case string:
				parts = append(parts, s)
			case nil:
				// skip
			default:
				parts = append(parts, fmt.Sprint(s))
			}
		}
		return strings.Join(parts, constants.NarrativeSeparator)
	default:
		return ""
	}
}
