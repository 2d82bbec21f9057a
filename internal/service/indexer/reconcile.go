package indexer

import (
	"sort"

	"github.com/lexread/lexread-backend/internal/domain"
)

// tokenKey identifies one distinct token within a language before it has a
// registry id.
type tokenKey struct {
	norm string
	kind domain.TokenKind
}

// sortedKeys returns the map's keys ordered by norm, then kind.
func sortedKeys(counts map[tokenKey]int) []tokenKey {
	keys := make([]tokenKey, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].norm != keys[j].norm {
			return keys[i].norm < keys[j].norm
		}
		return keys[i].kind < keys[j].kind
	})
	return keys
}

// diffIndex splits the wanted index state against the current rows into the
// minimal set of writes: new rows, rows whose count changed, and token ids
// no longer present in the text. Results are ordered by token id so batch
// writes are deterministic.
func diffIndex(bookID int64, wanted map[int64]int, current map[int64]domain.VocabEntry) (inserts, updates []domain.VocabEntry, stale []int64) {
	for tokenID, count := range wanted {
		existing, ok := current[tokenID]
		switch {
		case !ok:
			inserts = append(inserts, domain.VocabEntry{BookID: bookID, TokenID: tokenID, Count: count})
		case existing.Count != count:
			updates = append(updates, domain.VocabEntry{BookID: bookID, TokenID: tokenID, Count: count})
		}
	}
	for tokenID := range current {
		if _, ok := wanted[tokenID]; !ok {
			stale = append(stale, tokenID)
		}
	}

	sort.Slice(inserts, func(i, j int) bool { return inserts[i].TokenID < inserts[j].TokenID })
	sort.Slice(updates, func(i, j int) bool { return updates[i].TokenID < updates[j].TokenID })
	sort.Slice(stale, func(i, j int) bool { return stale[i] < stale[j] })

	return inserts, updates, stale
}
