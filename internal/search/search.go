// Package search implements ranked, boundary-aware lookup over an
// in-memory set of entry.EntryRecord, plus the incremental session cache
// that lets successive typeahead queries reuse each other's candidate
// sets.
package search

import (
	"sort"
	"strings"
	"time"

	"github.com/Jeremis70/desktop-indexer/internal/entry"
	"github.com/Jeremis70/desktop-indexer/internal/usage"
)

// EmptyMode selects the ranking signal used when a query carries no
// tokens.
type EmptyMode int

const (
	// Recency ranks entries with usage by last-used time, most recent
	// first.
	Recency EmptyMode = iota
	// Frequency ranks entries with usage by use count, most frequent
	// first.
	Frequency
)

// Result is one ranked search hit.
type Result struct {
	Entry *entry.EntryRecord
	Score int
}

// Session remembers the previous query against one in-memory index, so a
// refining follow-up query can start from a narrowed candidate set instead
// of rescanning every entry.
type Session struct {
	tokens     []string
	candidates []int
	queryKey   string
	valid      bool
}

// isRefinement reports whether newTokens/newKey refine the session's
// previous query, per the three refinement conditions in §4.6.
func (s *Session) isRefinement(newTokens []string, newKey string) bool {
	if !s.valid {
		return false
	}

	if isTokenSuperset(newTokens, s.tokens) {
		return true
	}
	if len(s.tokens) == 1 && len(newTokens) == 1 && strings.HasPrefix(newTokens[0], s.tokens[0]) {
		return true
	}
	if len(newKey) > len(s.queryKey) && strings.HasPrefix(newKey, s.queryKey) {
		return true
	}
	return false
}

func isTokenSuperset(newTokens, prevTokens []string) bool {
	set := make(map[string]struct{}, len(newTokens))
	for _, t := range newTokens {
		set[t] = struct{}{}
	}
	for _, t := range prevTokens {
		if _, ok := set[t]; !ok {
			return false
		}
	}
	return true
}

func (s *Session) update(tokens []string, candidates []int, key string) {
	s.tokens = append([]string(nil), tokens...)
	s.candidates = append([]int(nil), candidates...)
	s.queryKey = key
	s.valid = true
}

func (s *Session) clear() {
	*s = Session{}
}

// Search ranks entries against query, consulting usageStore for scoring
// and session for incremental candidate reuse. session may be nil, in
// which case every query starts from the full entry set and no state is
// kept.
func Search(entries []*entry.EntryRecord, usageStore *usage.Store, session *Session, query string, limit int, emptyMode EmptyMode, now time.Time) []Result {
	if limit == 0 {
		return nil
	}

	tokens := Tokenize(query)
	if len(tokens) == 0 {
		if session != nil {
			session.clear()
		}
		return searchEmpty(entries, usageStore, emptyMode, limit)
	}

	key := QueryKey(query)

	var baseIndices []int
	usePlainContains := false
	if session != nil && session.isRefinement(tokens, key) {
		baseIndices = session.candidates
		usePlainContains = true
	} else {
		baseIndices = allIndices(len(entries))
	}

	var candidates []scoredIndex
	var survivingIndices []int
	for _, idx := range baseIndices {
		e := entries[idx]
		ok := false
		if usePlainContains {
			ok = passesPlainContains(e, tokens)
		} else {
			ok = passesCandidateFilter(e, tokens)
		}
		if !ok {
			continue
		}
		survivingIndices = append(survivingIndices, idx)

		var u usage.Record
		if usageStore != nil {
			u = usageStore.Get(e.ID)
		}
		candidates = append(candidates, scoredIndex{score: score(e, tokens, u, now), index: idx})
	}

	ranked := topK(candidates, limit)

	if session != nil {
		session.update(tokens, survivingIndices, key)
	}

	out := make([]Result, len(ranked))
	for i, c := range ranked {
		out[i] = Result{Entry: entries[c.index], Score: c.score}
	}
	return out
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// passesPlainContains applies the relaxed filter used on a refinement's
// inherited candidate set: plain substring containment against norm,
// rather than the full boundary test (the inherited candidates already
// survived boundary filtering for a weaker query).
func passesPlainContains(e *entry.EntryRecord, tokens []string) bool {
	for _, tok := range tokens {
		if !strings.Contains(e.Norm, tok) {
			return false
		}
	}
	return true
}

func searchEmpty(entries []*entry.EntryRecord, usageStore *usage.Store, mode EmptyMode, limit int) []Result {
	if usageStore == nil {
		return nil
	}

	type row struct {
		e   *entry.EntryRecord
		u   usage.Record
		has bool
	}

	rows := make([]row, 0, len(entries))
	for _, e := range entries {
		u := usageStore.Get(e.ID)
		has := u.Freq != 0 || u.LastUsed != 0
		if !has {
			continue
		}
		switch mode {
		case Recency:
			if u.LastUsed == 0 {
				continue
			}
		case Frequency:
			if u.Freq == 0 {
				continue
			}
		}
		rows = append(rows, row{e: e, u: u, has: true})
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch mode {
		case Recency:
			if a.u.LastUsed != b.u.LastUsed {
				return a.u.LastUsed > b.u.LastUsed
			}
			if a.u.Freq != b.u.Freq {
				return a.u.Freq > b.u.Freq
			}
		case Frequency:
			if a.u.Freq != b.u.Freq {
				return a.u.Freq > b.u.Freq
			}
			if a.u.LastUsed != b.u.LastUsed {
				return a.u.LastUsed > b.u.LastUsed
			}
		}
		nameA, nameB := "", ""
		if a.e.Name != nil {
			nameA = *a.e.Name
		}
		if b.e.Name != nil {
			nameB = *b.e.Name
		}
		if nameA != nameB {
			return nameA < nameB
		}
		return a.e.ID < b.e.ID
	})

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	out := make([]Result, len(rows))
	for i, r := range rows {
		out[i] = Result{Entry: r.e}
	}
	return out
}
