// Package scans defines the canonical per-player row produced by
// reconciliation, the three-source input shape it is built from, and the
// deterministic ordering over reconciled rows.
package scans

import "github.com/fairscan/fairscan/pkg/metric"

// Row is the canonical, unit-normalized record for one player. Every numeric
// field is a metric.Value: a finite number (percentages rounded to one
// decimal, ratios to three) or explicitly unknown, never omitted. A Row is
// built once per reconciliation pass and not mutated afterwards.
//
// Field order here is the fixed export order.
type Row struct {
	Player string `json:"player" yaml:"player"`

	SuspicionScore metric.Value `json:"suspicion_score" yaml:"suspicion_score"`

	RecentGames  metric.Value `json:"recent_games" yaml:"recent_games"`
	RecentWins   metric.Value `json:"recent_wins" yaml:"recent_wins"`
	RecentDraws  metric.Value `json:"recent_draws" yaml:"recent_draws"`
	RecentLosses metric.Value `json:"recent_losses" yaml:"recent_losses"`

	WinStreak    metric.Value `json:"win_streak" yaml:"win_streak"`
	MaxWinStreak metric.Value `json:"max_win_streak" yaml:"max_win_streak"`
	UpsetWins    metric.Value `json:"upset_wins" yaml:"upset_wins"`

	ShortWinRate    metric.Value `json:"short_win_rate" yaml:"short_win_rate"`
	TimeoutWinRatio metric.Value `json:"timeout_win_ratio" yaml:"timeout_win_ratio"`

	TournamentGames  metric.Value `json:"tournament_games" yaml:"tournament_games"`
	TournamentWins   metric.Value `json:"tournament_wins" yaml:"tournament_wins"`
	TournamentDraws  metric.Value `json:"tournament_draws" yaml:"tournament_draws"`
	TournamentLosses metric.Value `json:"tournament_losses" yaml:"tournament_losses"`

	NonTournamentGames  metric.Value `json:"non_tournament_games" yaml:"non_tournament_games"`
	NonTournamentWins   metric.Value `json:"non_tournament_wins" yaml:"non_tournament_wins"`
	NonTournamentDraws  metric.Value `json:"non_tournament_draws" yaml:"non_tournament_draws"`
	NonTournamentLosses metric.Value `json:"non_tournament_losses" yaml:"non_tournament_losses"`

	TournamentWinRate    metric.Value `json:"tournament_win_rate" yaml:"tournament_win_rate"`
	NonTournamentWinRate metric.Value `json:"non_tournament_win_rate" yaml:"non_tournament_win_rate"`
	WinRateGap           metric.Value `json:"win_rate_gap" yaml:"win_rate_gap"`

	EloGain  metric.Value `json:"elo_gain" yaml:"elo_gain"`
	EloLoss  metric.Value `json:"elo_loss" yaml:"elo_loss"`
	EloRatio metric.Value `json:"elo_ratio" yaml:"elo_ratio"`

	TournamentEloGain  metric.Value `json:"tournament_elo_gain" yaml:"tournament_elo_gain"`
	TournamentEloLoss  metric.Value `json:"tournament_elo_loss" yaml:"tournament_elo_loss"`
	TournamentEloRatio metric.Value `json:"tournament_elo_ratio" yaml:"tournament_elo_ratio"`

	NonTournamentEloGain  metric.Value `json:"non_tournament_elo_gain" yaml:"non_tournament_elo_gain"`
	NonTournamentEloLoss  metric.Value `json:"non_tournament_elo_loss" yaml:"non_tournament_elo_loss"`
	NonTournamentEloRatio metric.Value `json:"non_tournament_elo_ratio" yaml:"non_tournament_elo_ratio"`

	EloRatioGap metric.Value `json:"elo_ratio_gap" yaml:"elo_ratio_gap"`

	TournamentSelfBailRatio    metric.Value `json:"tournament_self_bail_ratio" yaml:"tournament_self_bail_ratio"`
	NonTournamentSelfBailRatio metric.Value `json:"non_tournament_self_bail_ratio" yaml:"non_tournament_self_bail_ratio"`

	Narrative string `json:"narrative" yaml:"narrative"`
}
