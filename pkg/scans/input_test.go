package scans_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fairscan/fairscan/pkg/scans"
)

func TestNarrativeText(t *testing.T) {
	tests := []struct {
		name      string
		narrative any
		want      string
	}{
		{"plain string", "flagged over 15 games", "flagged over 15 games"},
		{"string slice", []string{"high win streak", "gap 0.42"}, "high win streak; gap 0.42"},
		{"any slice from decoding", []any{"one", "two"}, "one; two"},
		{"any slice skips nils", []any{"one", nil, "two"}, "one; two"},
		{"absent", nil, ""},
		{"wrong type", 42, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := scans.Input{Name: "p", Narrative: tt.narrative}
			assert.Equal(t, tt.want, in.NarrativeText())
		})
	}
}
