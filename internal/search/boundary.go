package search

import "strings"

func isNameBoundaryByte(b byte) bool {
	return b == ' '
}

func isIDBoundaryByte(b byte) bool {
	return b == '-' || b == '_' || b == '.'
}

func isNormBoundaryByte(b byte) bool {
	return b == ' '
}

// findMatches scans haystack for every occurrence of token and returns the
// earliest boundary-qualified occurrence (boundaryPos) and the earliest
// occurrence at all (anyPos), each -1 if none exists. A match at offset 0
// is always a boundary match.
func findMatches(haystack, token string, isBoundary func(byte) bool) (boundaryPos, anyPos int) {
	boundaryPos, anyPos = -1, -1
	if token == "" {
		return
	}
	start := 0
	for {
		idx := strings.Index(haystack[start:], token)
		if idx < 0 {
			break
		}
		p := start + idx
		if anyPos < 0 {
			anyPos = p
		}
		if boundaryPos < 0 && (p == 0 || isBoundary(haystack[p-1])) {
			boundaryPos = p
			break
		}
		start = p + 1
	}
	return
}

// hasBoundaryMatch reports whether token occurs in haystack at a position
// satisfying isBoundary (or at offset 0).
func hasBoundaryMatch(haystack, token string, isBoundary func(byte) bool) bool {
	boundaryPos, _ := findMatches(haystack, token, isBoundary)
	return boundaryPos >= 0
}
