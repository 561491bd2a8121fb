package search

import (
	"sort"
	"strings"
	"unicode"

	"github.com/Jeremis70/desktop-indexer/internal/entry"
)

// Tokenize normalizes a raw query into the sorted, deduplicated token list
// used for filtering and scoring: alphanumeric runs become lowercase
// tokens; any other rune closes the current token. Tokens are then sorted
// by descending length, then ascending lexicographically (most-selective
// first), with adjacent duplicates after sort removed.
func Tokenize(query string) []string {
	query = strings.TrimSpace(query)

	var tokens []string
	var buf strings.Builder
	flush := func() {
		if buf.Len() > 0 {
			tokens = append(tokens, buf.String())
			buf.Reset()
		}
	}

	for _, r := range query {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			buf.WriteString(entry.ToLower(string(r)))
		} else {
			flush()
		}
	}
	flush()

	sort.Slice(tokens, func(i, j int) bool {
		if len(tokens[i]) != len(tokens[j]) {
			return len(tokens[i]) > len(tokens[j])
		}
		return tokens[i] < tokens[j]
	})

	out := tokens[:0:0]
	for i, t := range tokens {
		if i > 0 && t == tokens[i-1] {
			continue
		}
		out = append(out, t)
	}
	return out
}

// QueryKey computes the normalized-query-key used by the incremental
// session cache: trimmed, internal whitespace runs collapsed to a single
// space, lowercased.
func QueryKey(query string) string {
	fields := strings.Fields(query)
	return strings.ToLower(strings.Join(fields, " "))
}
