package scans_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fairscan/fairscan/pkg/metric"
	"github.com/fairscan/fairscan/pkg/scans"
)

func row(player string, score metric.Value) *scans.Row {
	return &scans.Row{Player: player, SuspicionScore: score}
}

func players(rows []*scans.Row) []string {
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Player
	}
	return names
}

func TestSortScoreDescendingUnknownLast(t *testing.T) {
	rows := []*scans.Row{
		row("bob", metric.Num(3.2)),
		row("Alice", metric.Num(3.2)),
		row("carl", metric.Unknown()),
		row("dave", metric.Num(5.0)),
	}

	scans.Sort(rows)

	assert.Equal(t, []string{"dave", "Alice", "bob", "carl"}, players(rows))
}

func TestSortTieBreakIsCaseInsensitive(t *testing.T) {
	rows := []*scans.Row{
		row("zeta", metric.Num(1)),
		row("ALPHA", metric.Num(1)),
		row("beta", metric.Num(1)),
	}

	scans.Sort(rows)

	assert.Equal(t, []string{"ALPHA", "beta", "zeta"}, players(rows))
}

func TestSortUnknownsSortedByName(t *testing.T) {
	rows := []*scans.Row{
		row("yuri", metric.Unknown()),
		row("Ana", metric.Unknown()),
		row("mara", metric.Num(0)),
	}

	scans.Sort(rows)

	// A known score of 0 still beats unknown.
	assert.Equal(t, []string{"mara", "Ana", "yuri"}, players(rows))
}

func TestSortIsStableBeyondKeys(t *testing.T) {
	first := row("same", metric.Num(2))
	second := row("same", metric.Num(2))
	rows := []*scans.Row{first, second}

	scans.Sort(rows)

	assert.Same(t, first, rows[0])
	assert.Same(t, second, rows[1])
}
