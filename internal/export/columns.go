package export

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/fairscan/fairscan/pkg/metric"
	"github.com/fairscan/fairscan/pkg/scans"
)

// column describes one numeric export column: its snake_case id, how many
// decimals its values carry (-1 for plain numbers, 1 for percentages, 3 for
// ratios), and how to read it off a row. Column order is the fixed export
// order of the canonical row.
type column struct {
	id       string
	decimals int
	value    func(*scans.Row) metric.Value
}

var columns = []column{
	{"suspicion_score", -1, func(r *scans.Row) metric.Value { return r.SuspicionScore }},
	{"recent_games", -1, func(r *scans.Row) metric.Value { return r.RecentGames }},
	{"recent_wins", -1, func(r *scans.Row) metric.Value { return r.RecentWins }},
	{"recent_draws", -1, func(r *scans.Row) metric.Value { return r.RecentDraws }},
	{"recent_losses", -1, func(r *scans.Row) metric.Value { return r.RecentLosses }},
	{"win_streak", -1, func(r *scans.Row) metric.Value { return r.WinStreak }},
	{"max_win_streak", -1, func(r *scans.Row) metric.Value { return r.MaxWinStreak }},
	{"upset_wins", -1, func(r *scans.Row) metric.Value { return r.UpsetWins }},
	{"short_win_rate", 1, func(r *scans.Row) metric.Value { return r.ShortWinRate }},
	{"timeout_win_ratio", 1, func(r *scans.Row) metric.Value { return r.TimeoutWinRatio }},
	{"tournament_games", -1, func(r *scans.Row) metric.Value { return r.TournamentGames }},
	{"tournament_wins", -1, func(r *scans.Row) metric.Value { return r.TournamentWins }},
	{"tournament_draws", -1, func(r *scans.Row) metric.Value { return r.TournamentDraws }},
	{"tournament_losses", -1, func(r *scans.Row) metric.Value { return r.TournamentLosses }},
	{"non_tournament_games", -1, func(r *scans.Row) metric.Value { return r.NonTournamentGames }},
	{"non_tournament_wins", -1, func(r *scans.Row) metric.Value { return r.NonTournamentWins }},
	{"non_tournament_draws", -1, func(r *scans.Row) metric.Value { return r.NonTournamentDraws }},
	{"non_tournament_losses", -1, func(r *scans.Row) metric.Value { return r.NonTournamentLosses }},
	{"tournament_win_rate", 1, func(r *scans.Row) metric.Value { return r.TournamentWinRate }},
	{"non_tournament_win_rate", 1, func(r *scans.Row) metric.Value { return r.NonTournamentWinRate }},
	{"win_rate_gap", 1, func(r *scans.Row) metric.Value { return r.WinRateGap }},
	{"elo_gain", -1, func(r *scans.Row) metric.Value { return r.EloGain }},
	{"elo_loss", -1, func(r *scans.Row) metric.Value { return r.EloLoss }},
	{"elo_ratio", 3, func(r *scans.Row) metric.Value { return r.EloRatio }},
	{"tournament_elo_gain", -1, func(r *scans.Row) metric.Value { return r.TournamentEloGain }},
	{"tournament_elo_loss", -1, func(r *scans.Row) metric.Value { return r.TournamentEloLoss }},
	{"tournament_elo_ratio", 3, func(r *scans.Row) metric.Value { return r.TournamentEloRatio }},
	{"non_tournament_elo_gain", -1, func(r *scans.Row) metric.Value { return r.NonTournamentEloGain }},
	{"non_tournament_elo_loss", -1, func(r *scans.Row) metric.Value { return r.NonTournamentEloLoss }},
	{"non_tournament_elo_ratio", 3, func(r *scans.Row) metric.Value { return r.NonTournamentEloRatio }},
	{"elo_ratio_gap", 3, func(r *scans.Row) metric.Value { return r.EloRatioGap }},
	{"tournament_self_bail_ratio", 1, func(r *scans.Row) metric.Value { return r.TournamentSelfBailRatio }},
	{"non_tournament_self_bail_ratio", 1, func(r *scans.Row) metric.Value { return r.NonTournamentSelfBailRatio }},
}

var titleCaser = cases.Title(language.English)

// Headers returns the export header row: Player, the numeric columns
// title-cased from their ids, then Narrative.
func Headers() []string {
	out := make([]string, 0, len(columns)+2)
	out = append(out, "Player")
	for _, c := range columns {
		out = append(out, titleCaser.String(strings.ReplaceAll(c.id, "_", " ")))
	}
	out = append(out, "Narrative")
	return out
}

// Cells renders one row in export order. Unknown values render as "unknown";
// known values carry their column's fixed decimals.
func Cells(r *scans.Row) []string {
	out := make([]string, 0, len(columns)+2)
	out = append(out, r.Player)
	for _, c := range columns {
		out = append(out, c.value(r).Format(c.decimals))
	}
	out = append(out, r.Narrative)
	return out
}
