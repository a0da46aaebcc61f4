package reconcile

import (
	"regexp"
	"strings"

	"github.com/fairscan/fairscan/pkg/metric"
)

// Facts holds the numeric facts minable from a narrative explanation.
// Each fact is independently unknown when its phrasing does not appear.
// Narrative facts are the lowest-precedence source and only ever feed the
// field subset that declares a fact key in the field table.
type Facts struct {
	Games                        metric.Value
	EloRatio                     metric.Value
	TournamentEloRatio           metric.Value
	NonTournamentEloRatio        metric.Value
	Gap                          metric.Value
	NonTournamentSelfBailPercent metric.Value
	UpsetWins                    metric.Value
}

// factKey names one Facts field in the field table.
type factKey int

const (
	factNone factKey = iota
	factGames
	factEloRatio
	factTournamentEloRatio
	factNonTournamentEloRatio
	factGap
	factNonTournamentSelfBail
	factUpsetWins
)

// value returns the fact for a key, or unknown for factNone.
func (f Facts) value(k factKey) metric.Value {
	switch k {
	case factGames:
		return f.Games
	case factEloRatio:
		return f.EloRatio
	case factTournamentEloRatio:
		return f.TournamentEloRatio
	case factNonTournamentEloRatio:
		return f.NonTournamentEloRatio
	case factGap:
		return f.Gap
	case factNonTournamentSelfBail:
		return f.NonTournamentSelfBailPercent
	case factUpsetWins:
		return f.UpsetWins
	default:
		return metric.Unknown()
	}
}

const numeral = `(-?\d+(?:\.\d+)?)`

var (
	// "over 15 games", "over 15 rated games"
	gamesRe = regexp.MustCompile(`(?i)\bover\s+(\d+)\s+(?:rated[\s-]+)?games\b`)

	// "tournament elo ratio: 2.1", "non-tournament ratio 0.8". The prefix
	// group decides which split the ratio belongs to.
	prefixedRatioRe = regexp.MustCompile(`(?i)\b(non[\s-]*tournament|tournament)[\s-]+(?:elo[\s-]+)?ratio\s*[:=]?\s*` + numeral)

	// "elo ratio: 1.5" or the abbreviated "ER: 1.5". The abbreviation needs
	// the separator so stray "er" words never read a number. Matches inside
	// a prefixed ratio phrase are discarded by span overlap.
	overallRatioRe = regexp.MustCompile(`(?i)\b(?:elo[\s-]+ratio\s*[:=]?|er\s*[:=])\s*` + numeral)

	// "(gap 0.42)", "gap: 0.42"
	gapRe = regexp.MustCompile(`(?i)\bgap\s*[:=]?\s*` + numeral)

	// "non-tournament self-bail losses 12%", abbreviated "NT SB 12%"
	selfBailRe = regexp.MustCompile(`(?i)\b(?:non[\s-]*tournament|nt)[\s-]+(?:self[\s-]*bail|sb)(?:[\s-]+loss(?:es)?)?\s*[:=]?\s*` + numeral + `\s*%?`)

	// "3 upset wins", "1 upset win"
	upsetWinsRe = regexp.MustCompile(`(?i)\b(\d+)[\s-]+upset[\s-]+wins?\b`)
)

// Extract mines the fixed fact set out of a narrative string. Absence of any
// pattern is normal; the result simply carries unknowns. Values are coerced
// but not unit-normalized here; the field table applies each field's unit
// rule when a fact is consulted.
func Extract(text string) Facts {
	var f Facts
	if text == "" {
		return f
	}

	if m := gamesRe.FindStringSubmatch(text); m != nil {
		f.Games = metric.Coerce(m[1])
	}

	// Split-qualified ratios first, remembering their spans so the overall
	// pattern cannot re-read the tail of "tournament elo ratio: X".
	var spans [][2]int
	for _, loc := range prefixedRatioRe.FindAllStringSubmatchIndex(text, -1) {
		prefix := strings.ToLower(text[loc[2]:loc[3]])
		val := metric.Coerce(text[loc[4]:loc[5]])
		if strings.HasPrefix(prefix, "non") {
			if !f.NonTournamentEloRatio.Known() {
				f.NonTournamentEloRatio = val
			}
		} else if !f.TournamentEloRatio.Known() {
			f.TournamentEloRatio = val
		}
		spans = append(spans, [2]int{loc[0], loc[1]})
	}
	for _, loc := range overallRatioRe.FindAllStringSubmatchIndex(text, -1) {
		if withinAny(loc[0], spans) {
			continue
		}
		f.EloRatio = metric.Coerce(text[loc[2]:loc[3]])
		break
	}

	if m := gapRe.FindStringSubmatch(text); m != nil {
		f.Gap = metric.Coerce(m[1])
	}
	if m := selfBailRe.FindStringSubmatch(text); m != nil {
		f.NonTournamentSelfBailPercent = metric.Coerce(m[1])
	}
	if m := upsetWinsRe.FindStringSubmatch(text); m != nil {
		f.UpsetWins = metric.Coerce(m[1])
	}

	return f
}

func withinAny(pos int, spans [][2]int) bool {
	for _, s := range spans {
		if pos >= s[0] && pos < s[1] {
			return true
		}
	}
	return false
}
