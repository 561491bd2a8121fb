package search

import (
	"time"

	"github.com/Jeremis70/desktop-indexer/internal/entry"
	"github.com/Jeremis70/desktop-indexer/internal/usage"
)

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// tokenContribution computes one token's best single-field relevance
// contribution against name_lc or id_lc: a boundary match wins over a
// plain substring match, and its score decays with offset, capped at 80.
func tokenContribution(haystack, token string, isBoundary func(byte) bool, boundaryBase, substrBase int) (int, bool) {
	boundaryPos, anyPos := findMatches(haystack, token, isBoundary)
	if boundaryPos >= 0 {
		return boundaryBase - min(boundaryPos, 80), true
	}
	if anyPos >= 0 {
		return substrBase - min(anyPos, 80), true
	}
	return 0, false
}

// score computes an entry's integer rank for a tokenized, already-filtered
// query, per the relevance/bonus/usage/recency/constant formula.
func score(e *entry.EntryRecord, tokens []string, u usage.Record, now time.Time) int {
	total := 0

	allNameBoundary := e.NameLower != ""
	for _, tok := range tokens {
		nameContribution, nameFound := tokenContribution(e.NameLower, tok, isNameBoundaryByte, 140, 80)
		idContribution, idFound := tokenContribution(e.IDLower, tok, isIDBoundaryByte, 110, 60)

		best := 0
		if nameFound && nameContribution > best {
			best = nameContribution
		}
		if idFound && idContribution > best {
			best = idContribution
		}
		total += best

		if !hasBoundaryMatch(e.NameLower, tok, isNameBoundaryByte) {
			allNameBoundary = false
		}
	}

	if e.NameLower != "" && allNameBoundary {
		total += 120
	}
	if e.NameLower != "" {
		total += max(0, 30-min(len(e.NameLower), 30))
	}

	total += 2 * min(int(u.Freq), 20)

	if u.LastUsed != 0 && !now.IsZero() {
		age := now.Sub(time.Unix(u.LastUsed, 0))
		switch {
		case age < time.Hour:
			total += 10
		case age < 24*time.Hour:
			total += 7
		case age < 7*24*time.Hour:
			total += 4
		case age < 30*24*time.Hour:
			total += 2
		}
	}

	total += 10

	return total
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// passesCandidateFilter reports whether every token in tokens appears at
// least once at a boundary within e's normalized haystack.
func passesCandidateFilter(e *entry.EntryRecord, tokens []string) bool {
	for _, tok := range tokens {
		if !hasBoundaryMatch(e.Norm, tok, isNormBoundaryByte) {
			return false
		}
	}
	return true
}
