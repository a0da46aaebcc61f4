package reconcile_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fairscan/fairscan/pkg/reconcile"
	"github.com/fairscan/fairscan/pkg/scans"
)

func TestStructuredSourceWinsOverSideTableAndNarrative(t *testing.T) {
	r := reconcile.New()
	row, prov := r.Reconcile(scans.Input{
		Name: "asym_knight",
		Structured: map[string]any{
			"elo": map[string]any{"ratio": 1.5},
		},
		SideTable: map[string]any{"Elo Ratio": 9.9},
		Narrative: "elo ratio: 3.3",
	})

	assert.Equal(t, 1.5, row.EloRatio.Float())
	assert.Equal(t, reconcile.TierStructured, prov[reconcile.FieldEloRatio])
}

func TestSideTableWinsOverNarrative(t *testing.T) {
	r := reconcile.New()
	row, prov := r.Reconcile(scans.Input{
		Name:      "p1",
		SideTable: map[string]any{"t_elo_ratio": 2.5},
		Narrative: "tournament elo ratio: 9.9",
	})

	assert.Equal(t, 2.5, row.TournamentEloRatio.Float())
	assert.Equal(t, reconcile.TierSideTable, prov[reconcile.FieldTournamentEloRatio])
}

func TestWrongTypeAtPathDegradesToNextTier(t *testing.T) {
	r := reconcile.New()
	row, prov := r.Reconcile(scans.Input{
		Name: "p1",
		Structured: map[string]any{
			"suspicion": map[string]any{"score": "not numeric"},
		},
		SideTable: map[string]any{"Suspicion Score": 4.2},
	})

	assert.Equal(t, 4.2, row.SuspicionScore.Float())
	assert.Equal(t, reconcile.TierSideTable, prov[reconcile.FieldSuspicionScore])
}

func TestDerivedSumIsNullPropagating(t *testing.T) {
	r := reconcile.New()
	row, prov := r.Reconcile(scans.Input{
		Name: "p1",
		Structured: map[string]any{
			"tournament": map[string]any{"games": 10},
		},
	})

	// Non-tournament games are unknown, so the sum must be unknown, not 10.
	assert.False(t, row.RecentGames.Known())
	assert.Equal(t, reconcile.TierUnknown, prov[reconcile.FieldRecentGames])
}

func TestPercentFieldsNormalizeFractions(t *testing.T) {
	r := reconcile.New()
	row, _ := r.Reconcile(scans.Input{
		Name: "p1",
		Structured: map[string]any{
			"tournament":     map[string]any{"win_rate": 0.7},
			"non_tournament": map[string]any{"win_rate": 55.5},
		},
	})

	assert.Equal(t, 70.0, row.TournamentWinRate.Float())
	assert.Equal(t, 55.5, row.NonTournamentWinRate.Float())
	// Both rates resolved directly, so the gap derives from them.
	assert.Equal(t, 14.5, row.WinRateGap.Float())
}

func TestEndToEndScenario(t *testing.T) {
	r := reconcile.New()
	in := scans.Input{
		Name: "asym_knight",
		Structured: map[string]any{
			"tournament":     map[string]any{"games": 10, "wins": 7},
			"non_tournament": map[string]any{"games": 5, "wins": 1},
		},
		Narrative: "flagged over 15 games (gap 0.42)",
	}

	row, prov := r.Reconcile(in)

	assert.Equal(t, 15.0, row.RecentGames.Float())
	assert.Equal(t, 70.0, row.TournamentWinRate.Float())
	assert.Equal(t, reconcile.TierDerived, prov[reconcile.FieldTournamentWinRate])
	assert.Equal(t, 20.0, row.NonTournamentWinRate.Float())
	assert.Equal(t, 0.42, row.EloRatioGap.Float())
	assert.Equal(t, reconcile.TierNarrative, prov[reconcile.FieldEloRatioGap])
	assert.Equal(t, "flagged over 15 games (gap 0.42)", row.Narrative)
}

func TestReconcileIsIdempotent(t *testing.T) {
	r := reconcile.New()
	in := scans.Input{
		Name: "p1",
		Structured: map[string]any{
			"tournament": map[string]any{"games": 12, "wins": 9, "elo": map[string]any{"ratio": 1.8}},
		},
		SideTable: map[string]any{"NT Games": 4, "NT Wins": 2},
		Narrative: []string{"2 upset wins", "NT SB 11%"},
	}

	first, firstProv := r.Reconcile(in)
	second, secondProv := r.Reconcile(in)

	assert.Equal(t, first, second)
	assert.Equal(t, firstProv, secondProv)
}

func TestDuplicateNamesKeepTheirOwnSideTables(t *testing.T) {
	r := reconcile.New()

	first, _ := r.Reconcile(scans.Input{
		Name:      "dup",
		SideTable: map[string]any{"Suspicion Score": 1.0},
	})
	second, _ := r.Reconcile(scans.Input{
		Name:      "dup",
		SideTable: map[string]any{"Suspicion Score": 9.0},
	})

	assert.Equal(t, 1.0, first.SuspicionScore.Float())
	assert.Equal(t, 9.0, second.SuspicionScore.Float())
}

func TestNarrativeJoinAndFacts(t *testing.T) {
	r := reconcile.New()
	row, prov := r.Reconcile(scans.Input{
		Name:      "p1",
		Narrative: []string{"3 upset wins", "non-tournament self-bail losses 12%"},
	})

	assert.Equal(t, "3 upset wins; non-tournament self-bail losses 12%", row.Narrative)
	assert.Equal(t, 3.0, row.UpsetWins.Float())
	assert.Equal(t, 12.0, row.NonTournamentSelfBailRatio.Float())
	assert.Equal(t, reconcile.TierNarrative, prov[reconcile.FieldUpsetWins])
}

func TestAllSourcesAbsent(t *testing.T) {
	r := reconcile.New()
	row, prov := r.Reconcile(scans.Input{Name: "ghost"})

	assert.Equal(t, "ghost", row.Player)
	assert.Equal(t, "", row.Narrative)
	for _, field := range reconcile.Fields() {
		v, ok := reconcile.FieldValue(row, field)
		require.True(t, ok)
		assert.False(t, v.Known(), "field %s", field)
		assert.Equal(t, reconcile.TierUnknown, prov[field])
	}
}

func TestEloRatioGapDerivedFromSplits(t *testing.T) {
	r := reconcile.New()
	row, prov := r.Reconcile(scans.Input{
		Name: "p1",
		Structured: map[string]any{
			"tournament":     map[string]any{"elo": map[string]any{"ratio": 2.0}},
			"non_tournament": map[string]any{"elo": map[string]any{"ratio": 0.75}},
		},
	})

	assert.Equal(t, 1.25, row.EloRatioGap.Float())
	assert.Equal(t, reconcile.TierDerived, prov[reconcile.FieldEloRatioGap])
}

func TestReconcileAllPreservesInputOrder(t *testing.T) {
	r := reconcile.New(reconcile.WithWorkers(8))
	inputs := make([]scans.Input, 50)
	for i := range inputs {
		inputs[i] = scans.Input{
			Name:       string(rune('a' + i%26)),
			Structured: map[string]any{"suspicion": map[string]any{"score": i}},
		}
	}

	rows, err := r.ReconcileAll(context.Background(), inputs)
	require.NoError(t, err)
	require.Len(t, rows, len(inputs))
	for i, row := range rows {
		assert.Equal(t, inputs[i].Name, row.Player)
		assert.Equal(t, float64(i), row.SuspicionScore.Float())
	}
}

func TestReconcileAllHonorsCancellation(t *testing.T) {
	r := reconcile.New(reconcile.WithWorkers(1))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	inputs := make([]scans.Input, 100)
	for i := range inputs {
		inputs[i] = scans.Input{Name: "p"}
	}

	_, err := r.ReconcileAll(ctx, inputs)
	assert.ErrorIs(t, err, context.Canceled)
}
