package reconcile

import (
	"github.com/fairscan/fairscan/pkg/metric"
	"github.com/fairscan/fairscan/pkg/scans"
)

// Field names one canonical row field.
type Field string

// Canonical fields.
const (
	FieldSuspicionScore             Field = "suspicion_score"
	FieldWinStreak                  Field = "win_streak"
	FieldMaxWinStreak               Field = "max_win_streak"
	FieldShortWinRate               Field = "short_win_rate"
	FieldTimeoutWinRatio            Field = "timeout_win_ratio"
	FieldTournamentGames            Field = "tournament_games"
	FieldTournamentWins             Field = "tournament_wins"
	FieldTournamentDraws            Field = "tournament_draws"
	FieldTournamentLosses           Field = "tournament_losses"
	FieldNonTournamentGames         Field = "non_tournament_games"
	FieldNonTournamentWins          Field = "non_tournament_wins"
	FieldNonTournamentDraws         Field = "non_tournament_draws"
	FieldNonTournamentLosses        Field = "non_tournament_losses"
	FieldRecentGames                Field = "recent_games"
	FieldRecentWins                 Field = "recent_wins"
	FieldRecentDraws                Field = "recent_draws"
	FieldRecentLosses               Field = "recent_losses"
	FieldUpsetWins                  Field = "upset_wins"
	FieldEloGain                    Field = "elo_gain"
	FieldEloLoss                    Field = "elo_loss"
	FieldEloRatio                   Field = "elo_ratio"
	FieldTournamentEloGain          Field = "tournament_elo_gain"
	FieldTournamentEloLoss          Field = "tournament_elo_loss"
	FieldTournamentEloRatio         Field = "tournament_elo_ratio"
	FieldNonTournamentEloGain       Field = "non_tournament_elo_gain"
	FieldNonTournamentEloLoss       Field = "non_tournament_elo_loss"
	FieldNonTournamentEloRatio      Field = "non_tournament_elo_ratio"
	FieldTournamentWinRate          Field = "tournament_win_rate"
	FieldNonTournamentWinRate       Field = "non_tournament_win_rate"
	FieldWinRateGap                 Field = "win_rate_gap"
	FieldEloRatioGap                Field = "elo_ratio_gap"
	FieldTournamentSelfBailRatio    Field = "tournament_self_bail_ratio"
	FieldNonTournamentSelfBailRatio Field = "non_tournament_self_bail_ratio"
)

// Kind selects the unit rule applied to raw source values for a field.
type Kind int

const (
	// KindNumber is a plain coerced number (counts, streaks, elo deltas).
	KindNumber Kind = iota
	// KindPercent applies the fraction-vs-percent rule and rounds to 1dp.
	KindPercent
	// KindRatio rounds to 3dp.
	KindRatio
)

// normalize applies a field's unit rule to a raw source value.
func normalize(k Kind, raw any) metric.Value {
	switch k {
	case KindPercent:
		return metric.AsPercent(raw)
	case KindRatio:
		return metric.AsRatio3(raw)
	default:
		return metric.Coerce(raw)
	}
}

// fieldSpec is one entry of the static resolution table: the ordered dotted
// paths into the structured source, the ordered side-table alias spellings,
// the optional narrative fact key, and the optional derivation. One generic
// loop consults these per field; there is no per-field bespoke code.
type fieldSpec struct {
	field   Field
	kind    Kind
	paths   []string
	aliases []string
	fact    factKey
	derive  func(*scans.Row) metric.Value
	assign  func(*scans.Row, metric.Value)
	get     func(*scans.Row) metric.Value
}

// Derivations. All are null-propagating: an unknown operand makes the result
// unknown, never an assumed zero.

// sumOf adds two resolved values.
func sumOf(a, b metric.Value) metric.Value {
	if !a.Known() || !b.Known() {
		return metric.Unknown()
	}
	return metric.Num(a.Float() + b.Float())
}

// rateOf computes round1(wins/games*100) when both counts are known and
// games is positive.
func rateOf(wins, games metric.Value) metric.Value {
	if !wins.Known() || !games.Known() || games.Float() <= 0 {
		return metric.Unknown()
	}
	return metric.Num(metric.Round1(wins.Float() / games.Float() * 100))
}

// gapOf subtracts two resolved values and rounds with the given rule.
func gapOf(a, b metric.Value, round func(float64) float64) metric.Value {
	if !a.Known() || !b.Known() {
		return metric.Unknown()
	}
	return metric.Num(round(a.Float() - b.Float()))
}

// fieldSpecs is the resolution table in evaluation order. Evaluation order
// is dependency order, not export order: split counts resolve before the
// aggregates summed from them, counts before the rates computed from them,
// and rates and ratios before the gaps between them. Export order lives on
// scans.Row.
var fieldSpecs = []fieldSpec{
	{
		field:   FieldSuspicionScore,
		kind:    KindNumber,
		paths:   []string{"suspicion.score", "suspicion_score", "score"},
		aliases: []string{"Suspicion Score", "Suspicion", "Overall Score"},
		assign:  func(r *scans.Row, v metric.Value) { r.SuspicionScore = v },
		get:     func(r *scans.Row) metric.Value { return r.SuspicionScore },
	},
	{
		field:   FieldWinStreak,
		kind:    KindNumber,
		paths:   []string{"recent.win_streak", "win_streak"},
		aliases: []string{"Win Streak", "Streak"},
		assign:  func(r *scans.Row, v metric.Value) { r.WinStreak = v },
		get:     func(r *scans.Row) metric.Value { return r.WinStreak },
	},
	{
		field:   FieldMaxWinStreak,
		kind:    KindNumber,
		paths:   []string{"recent.max_win_streak", "max_win_streak"},
		aliases: []string{"Max Win Streak", "Longest Streak"},
		assign:  func(r *scans.Row, v metric.Value) { r.MaxWinStreak = v },
		get:     func(r *scans.Row) metric.Value { return r.MaxWinStreak },
	},
	{
		field:   FieldShortWinRate,
		kind:    KindPercent,
		paths:   []string{"recent.short_win_rate", "short_win_rate"},
		aliases: []string{"Short Win Rate", "Short WR"},
		assign:  func(r *scans.Row, v metric.Value) { r.ShortWinRate = v },
		get:     func(r *scans.Row) metric.Value { return r.ShortWinRate },
	},
	{
		field:   FieldTimeoutWinRatio,
		kind:    KindPercent,
		paths:   []string{"recent.timeout_win_ratio", "timeout_win_ratio"},
		aliases: []string{"Timeout Win Ratio", "Timeout WR"},
		assign:  func(r *scans.Row, v metric.Value) { r.TimeoutWinRatio = v },
		get:     func(r *scans.Row) metric.Value { return r.TimeoutWinRatio },
	},
	{
		field:   FieldTournamentGames,
		kind:    KindNumber,
		paths:   []string{"tournament.games", "tournament.game_count"},
		aliases: []string{"Tournament Games", "T Games", "TG"},
		assign:  func(r *scans.Row, v metric.Value) { r.TournamentGames = v },
		get:     func(r *scans.Row) metric.Value { return r.TournamentGames },
	},
	{
		field:   FieldTournamentWins,
		kind:    KindNumber,
		paths:   []string{"tournament.wins"},
		aliases: []string{"Tournament Wins", "T Wins", "TW"},
		assign:  func(r *scans.Row, v metric.Value) { r.TournamentWins = v },
		get:     func(r *scans.Row) metric.Value { return r.TournamentWins },
	},
	{
		field:   FieldTournamentDraws,
		kind:    KindNumber,
		paths:   []string{"tournament.draws"},
		aliases: []string{"Tournament Draws", "T Draws"},
		assign:  func(r *scans.Row, v metric.Value) { r.TournamentDraws = v },
		get:     func(r *scans.Row) metric.Value { return r.TournamentDraws },
	},
	{
		field:   FieldTournamentLosses,
		kind:    KindNumber,
		paths:   []string{"tournament.losses"},
		aliases: []string{"Tournament Losses", "T Losses"},
		assign:  func(r *scans.Row, v metric.Value) { r.TournamentLosses = v },
		get:     func(r *scans.Row) metric.Value { return r.TournamentLosses },
	},
	{
		field:   FieldNonTournamentGames,
		kind:    KindNumber,
		paths:   []string{"non_tournament.games", "non_tournament.game_count"},
		aliases: []string{"Non-Tournament Games", "NT Games", "NTG"},
		assign:  func(r *scans.Row, v metric.Value) { r.NonTournamentGames = v },
		get:     func(r *scans.Row) metric.Value { return r.NonTournamentGames },
	},
	{
		field:   FieldNonTournamentWins,
		kind:    KindNumber,
		paths:   []string{"non_tournament.wins"},
		aliases: []string{"Non-Tournament Wins", "NT Wins", "NTW"},
		assign:  func(r *scans.Row, v metric.Value) { r.NonTournamentWins = v },
		get:     func(r *scans.Row) metric.Value { return r.NonTournamentWins },
	},
	{
		field:   FieldNonTournamentDraws,
		kind:    KindNumber,
		paths:   []string{"non_tournament.draws"},
		aliases: []string{"Non-Tournament Draws", "NT Draws"},
		assign:  func(r *scans.Row, v metric.Value) { r.NonTournamentDraws = v },
		get:     func(r *scans.Row) metric.Value { return r.NonTournamentDraws },
	},
	{
		field:   FieldNonTournamentLosses,
		kind:    KindNumber,
		paths:   []string{"non_tournament.losses"},
		aliases: []string{"Non-Tournament Losses", "NT Losses"},
		assign:  func(r *scans.Row, v metric.Value) { r.NonTournamentLosses = v },
		get:     func(r *scans.Row) metric.Value { return r.NonTournamentLosses },
	},
	{
		field:   FieldRecentGames,
		kind:    KindNumber,
		paths:   []string{"recent.games", "games"},
		aliases: []string{"Recent Games", "Games", "Games Played"},
		fact:    factGames,
		derive: func(r *scans.Row) metric.Value {
			return sumOf(r.TournamentGames, r.NonTournamentGames)
		},
		assign: func(r *scans.Row, v metric.Value) { r.RecentGames = v },
		get:    func(r *scans.Row) metric.Value { return r.RecentGames },
	},
	{
		field:   FieldRecentWins,
		kind:    KindNumber,
		paths:   []string{"recent.wins", "wins"},
		aliases: []string{"Recent Wins", "Wins"},
		derive: func(r *scans.Row) metric.Value {
			return sumOf(r.TournamentWins, r.NonTournamentWins)
		},
		assign: func(r *scans.Row, v metric.Value) { r.RecentWins = v },
		get:    func(r *scans.Row) metric.Value { return r.RecentWins },
	},
	{
		field:   FieldRecentDraws,
		kind:    KindNumber,
		paths:   []string{"recent.draws", "draws"},
		aliases: []string{"Recent Draws", "Draws"},
		derive: func(r *scans.Row) metric.Value {
			return sumOf(r.TournamentDraws, r.NonTournamentDraws)
		},
		assign: func(r *scans.Row, v metric.Value) { r.RecentDraws = v },
		get:    func(r *scans.Row) metric.Value { return r.RecentDraws },
	},
	{
		field:   FieldRecentLosses,
		kind:    KindNumber,
		paths:   []string{"recent.losses", "losses"},
		aliases: []string{"Recent Losses", "Losses"},
		derive: func(r *scans.Row) metric.Value {
			return sumOf(r.TournamentLosses, r.NonTournamentLosses)
		},
		assign: func(r *scans.Row, v metric.Value) { r.RecentLosses = v },
		get:    func(r *scans.Row) metric.Value { return r.RecentLosses },
	},
	{
		field:   FieldUpsetWins,
		kind:    KindNumber,
		paths:   []string{"recent.upset_wins", "upset_wins"},
		aliases: []string{"Upset Wins", "Upsets"},
		fact:    factUpsetWins,
		assign:  func(r *scans.Row, v metric.Value) { r.UpsetWins = v },
		get:     func(r *scans.Row) metric.Value { return r.UpsetWins },
	},
	{
		field:   FieldEloGain,
		kind:    KindNumber,
		paths:   []string{"elo.gain", "elo_gain"},
		aliases: []string{"Elo Gain", "Elo Won"},
		assign:  func(r *scans.Row, v metric.Value) { r.EloGain = v },
		get:     func(r *scans.Row) metric.Value { return r.EloGain },
	},
	{
		field:   FieldEloLoss,
		kind:    KindNumber,
		paths:   []string{"elo.loss", "elo_loss"},
		aliases: []string{"Elo Loss", "Elo Lost"},
		assign:  func(r *scans.Row, v metric.Value) { r.EloLoss = v },
		get:     func(r *scans.Row) metric.Value { return r.EloLoss },
	},
	{
		field:   FieldEloRatio,
		kind:    KindRatio,
		paths:   []string{"elo.ratio", "elo_ratio"},
		aliases: []string{"Elo Ratio", "ER"},
		fact:    factEloRatio,
		assign:  func(r *scans.Row, v metric.Value) { r.EloRatio = v },
		get:     func(r *scans.Row) metric.Value { return r.EloRatio },
	},
	{
		field:   FieldTournamentEloGain,
		kind:    KindNumber,
		paths:   []string{"tournament.elo.gain", "tournament.elo_gain"},
		aliases: []string{"Tournament Elo Gain", "T Elo Gain"},
		assign:  func(r *scans.Row, v metric.Value) { r.TournamentEloGain = v },
		get:     func(r *scans.Row) metric.Value { return r.TournamentEloGain },
	},
	{
		field:   FieldTournamentEloLoss,
		kind:    KindNumber,
		paths:   []string{"tournament.elo.loss", "tournament.elo_loss"},
		aliases: []string{"Tournament Elo Loss", "T Elo Loss"},
		assign:  func(r *scans.Row, v metric.Value) { r.TournamentEloLoss = v },
		get:     func(r *scans.Row) metric.Value { return r.TournamentEloLoss },
	},
	{
		field:   FieldTournamentEloRatio,
		kind:    KindRatio,
		paths:   []string{"tournament.elo.ratio", "tournament.elo_ratio"},
		aliases: []string{"Tournament Elo Ratio", "T Elo Ratio", "TELOR"},
		fact:    factTournamentEloRatio,
		assign:  func(r *scans.Row, v metric.Value) { r.TournamentEloRatio = v },
		get:     func(r *scans.Row) metric.Value { return r.TournamentEloRatio },
	},
	{
		field:   FieldNonTournamentEloGain,
		kind:    KindNumber,
		paths:   []string{"non_tournament.elo.gain", "non_tournament.elo_gain"},
		aliases: []string{"Non-Tournament Elo Gain", "NT Elo Gain"},
		assign:  func(r *scans.Row, v metric.Value) { r.NonTournamentEloGain = v },
		get:     func(r *scans.Row) metric.Value { return r.NonTournamentEloGain },
	},
	{
		field:   FieldNonTournamentEloLoss,
		kind:    KindNumber,
		paths:   []string{"non_tournament.elo.loss", "non_tournament.elo_loss"},
		aliases: []string{"Non-Tournament Elo Loss", "NT Elo Loss"},
		assign:  func(r *scans.Row, v metric.Value) { r.NonTournamentEloLoss = v },
		get:     func(r *scans.Row) metric.Value { return r.NonTournamentEloLoss },
	},
	{
		field:   FieldNonTournamentEloRatio,
		kind:    KindRatio,
		paths:   []string{"non_tournament.elo.ratio", "non_tournament.elo_ratio"},
		aliases: []string{"Non-Tournament Elo Ratio", "NT Elo Ratio", "NTELOR"},
		fact:    factNonTournamentEloRatio,
		assign:  func(r *scans.Row, v metric.Value) { r.NonTournamentEloRatio = v },
		get:     func(r *scans.Row) metric.Value { return r.NonTournamentEloRatio },
	},
	{
		field:   FieldTournamentWinRate,
		kind:    KindPercent,
		paths:   []string{"tournament.win_rate"},
		aliases: []string{"Tournament Win Rate", "T Win Rate", "T WR"},
		derive: func(r *scans.Row) metric.Value {
			return rateOf(r.TournamentWins, r.TournamentGames)
		},
		assign: func(r *scans.Row, v metric.Value) { r.TournamentWinRate = v },
		get:    func(r *scans.Row) metric.Value { return r.TournamentWinRate },
	},
	{
		field:   FieldNonTournamentWinRate,
		kind:    KindPercent,
		paths:   []string{"non_tournament.win_rate"},
		aliases: []string{"Non-Tournament Win Rate", "NT Win Rate", "NT WR"},
		derive: func(r *scans.Row) metric.Value {
			return rateOf(r.NonTournamentWins, r.NonTournamentGames)
		},
		assign: func(r *scans.Row, v metric.Value) { r.NonTournamentWinRate = v },
		get:    func(r *scans.Row) metric.Value { return r.NonTournamentWinRate },
	},
	{
		field:   FieldWinRateGap,
		kind:    KindPercent,
		paths:   []string{"win_rate_gap", "gaps.win_rate"},
		aliases: []string{"Win Rate Gap", "WR Gap"},
		derive: func(r *scans.Row) metric.Value {
			return gapOf(r.TournamentWinRate, r.NonTournamentWinRate, metric.Round1)
		},
		assign: func(r *scans.Row, v metric.Value) { r.WinRateGap = v },
		get:    func(r *scans.Row) metric.Value { return r.WinRateGap },
	},
	{
		field:   FieldEloRatioGap,
		kind:    KindRatio,
		paths:   []string{"elo.ratio_gap", "elo_ratio_gap", "gaps.elo_ratio"},
		aliases: []string{"Elo Ratio Gap", "ER Gap"},
		fact:    factGap,
		derive: func(r *scans.Row) metric.Value {
			return gapOf(r.TournamentEloRatio, r.NonTournamentEloRatio, metric.Round3)
		},
		assign: func(r *scans.Row, v metric.Value) { r.EloRatioGap = v },
		get:    func(r *scans.Row) metric.Value { return r.EloRatioGap },
	},
	{
		field:   FieldTournamentSelfBailRatio,
		kind:    KindPercent,
		paths:   []string{"tournament.self_bail_ratio", "tournament.self_bail.ratio"},
		aliases: []string{"Tournament Self-Bail Ratio", "T Self Bail", "T SB"},
		assign:  func(r *scans.Row, v metric.Value) { r.TournamentSelfBailRatio = v },
		get:     func(r *scans.Row) metric.Value { return r.TournamentSelfBailRatio },
	},
	{
		field:   FieldNonTournamentSelfBailRatio,
		kind:    KindPercent,
		paths:   []string{"non_tournament.self_bail_ratio", "non_tournament.self_bail.ratio"},
		aliases: []string{"Non-Tournament Self-Bail Ratio", "NT Self Bail", "NT SB"},
		fact:    factNonTournamentSelfBail,
		assign:  func(r *scans.Row, v metric.Value) { r.NonTournamentSelfBailRatio = v },
		get:     func(r *scans.Row) metric.Value { return r.NonTournamentSelfBailRatio },
	},
}

// Fields returns the canonical fields in resolution order.
func Fields() []Field {
	out := make([]Field, len(fieldSpecs))
	for i, fs := range fieldSpecs {
		out[i] = fs.field
	}
	return out
}

// FieldValue reads one canonical field from a row. The second return is
// false for names not in the table.
func FieldValue(r *scans.Row, f Field) (metric.Value, bool) {
	for _, fs := range fieldSpecs {
		if fs.field == f {
			return fs.get(r), true
		}
	}
	return metric.Unknown(), false
}
