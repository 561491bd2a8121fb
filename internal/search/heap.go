package search

import (
	"container/heap"
	"sort"
)

// scoredIndex is one candidate's score and its position in the entries
// slice being searched.
type scoredIndex struct {
	score int
	index int
}

// minHeap is a bounded min-heap of scoredIndex, ordered by ascending score
// so the lowest-scoring survivor is always at the root and can be evicted
// when a better candidate arrives.
type minHeap []scoredIndex

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(i, j int) bool  { return h[i].score < h[j].score }
func (h minHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x interface{}) { *h = append(*h, x.(scoredIndex)) }
func (h *minHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// topK maintains a bounded min-heap of capacity limit over the given
// scored candidates and returns them sorted by descending score. limit <=
// 0 is treated as unbounded (used internally; callers must handle
// limit == 0 meaning "empty result" before calling this).
func topK(candidates []scoredIndex, limit int) []scoredIndex {
	if limit <= 0 || limit >= len(candidates) {
		out := append([]scoredIndex(nil), candidates...)
		sortByScoreDesc(out)
		return out
	}

	h := make(minHeap, 0, limit)
	heap.Init(&h)
	for _, c := range candidates {
		if h.Len() < limit {
			heap.Push(&h, c)
			continue
		}
		if c.score > h[0].score {
			heap.Pop(&h)
			heap.Push(&h, c)
		}
	}

	out := make([]scoredIndex, h.Len())
	copy(out, h)
	sortByScoreDesc(out)
	return out
}

func sortByScoreDesc(s []scoredIndex) {
	sort.Slice(s, func(i, j int) bool { return s[i].score > s[j].score })
}
