package scans

import (
	"sort"
	"strings"
)

// Sort imposes the canonical total order on rows, in place: suspicion score
// descending with unknown scores last, then player name compared
// case-insensitively ascending. The sort is stable, so rows that tie on both
// keys keep their arrival order.
func Sort(rows []*Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		return Less(rows[i], rows[j])
	})
}

// Less reports whether row a orders before row b under the canonical order.
func Less(a, b *Row) bool {
	as, bs := a.SuspicionScore, b.SuspicionScore
	switch {
	case as.Known() && bs.Known():
		if as.Float() != bs.Float() {
			return as.Float() > bs.Float()
		}
	case as.Known():
		return true
	case bs.Known():
		return false
	}
	an, bn := strings.ToLower(a.Player), strings.ToLower(b.Player)
	return an < bn
}
