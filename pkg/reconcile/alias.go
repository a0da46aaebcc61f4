package reconcile

import (
	"reflect"
	"sort"
	"strings"

	gocache "github.com/patrickmn/go-cache"
)

// AliasIndex resolves canonical fields against a flat side-table row whose
// header spellings are unpredictable. Headers and aliases are compared after
// key normalization: lowercase with every character outside [a-z0-9]
// stripped, so "T Elo Ratio", "t_elo_ratio" and "TELOR" can all name one
// field. The normalized-key index for a row is memoized per row identity in
// an explicit cache owned by the index; the row map itself is never touched.
type AliasIndex struct {
	memo *gocache.Cache
}

// NewAliasIndex creates an AliasIndex with an empty memo.
func NewAliasIndex() *AliasIndex {
	return &AliasIndex{
		memo: gocache.New(gocache.NoExpiration, 0),
	}
}

// Lookup returns the value of the first alias present and non-null in the
// row, in alias order. The second return is false when no alias resolves.
func (ai *AliasIndex) Lookup(rowID string, row map[string]any, aliases []string) (any, bool) {
	if len(row) == 0 {
		return nil, false
	}
	index := ai.index(rowID, row)
	for _, alias := range aliases {
		if v, ok := index[NormalizeKey(alias)]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Invalidate drops the memoized index for a row identity.
func (ai *AliasIndex) Invalidate(rowID string) {
	ai.memo.Delete(rowID)
}

// aliasEntry pairs a built index with the row map it was built from, so a
// memo hit is honored only for that exact row. Holding the map keeps its
// address from being recycled while the entry lives.
type aliasEntry struct {
	row   map[string]any
	index map[string]any
}

// index returns the memoized normalized-key index for the row, building it
// on first use. Headers are registered in sorted order and the first header
// to claim a normalized key wins, so collisions resolve deterministically.
// A row identity reused with a different row map rebuilds the index; one
// entity's side table must never answer for another.
func (ai *AliasIndex) index(rowID string, row map[string]any) map[string]any {
	fp := reflect.ValueOf(row).Pointer()
	if rowID != "" {
		if cached, ok := ai.memo.Get(rowID); ok {
			if entry := cached.(aliasEntry); reflect.ValueOf(entry.row).Pointer() == fp {
				return entry.index
			}
		}
	}

	headers := make([]string, 0, len(row))
	for h := range row {
		headers = append(headers, h)
	}
	sort.Strings(headers)

	index := make(map[string]any, len(row))
	for _, h := range headers {
		key := NormalizeKey(h)
		if key == "" {
			continue
		}
		if _, taken := index[key]; !taken {
			index[key] = row[h]
		}
	}

	if rowID != "" {
		ai.memo.Set(rowID, aliasEntry{row: row, index: index}, gocache.NoExpiration)
	}
	return index
}

// NormalizeKey lowercases s and strips every character outside [a-z0-9].
func NormalizeKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}
