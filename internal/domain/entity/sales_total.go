package entity

import (
	"container/heap"
	"sort"
)

// SalesTotal is one aggregate ledger entry: a grouping key and its revenue
type SalesTotal struct {
	Key   string
	Total float64
}

// ranksAbove orders by total descending, then key ascending
func ranksAbove(a, b SalesTotal) bool {
	if a.Total != b.Total {
		return a.Total > b.Total
	}
	return a.Key < b.Key
}

// SortedSalesTotals returns every entry of totals, largest first
func SortedSalesTotals(totals map[string]float64) []SalesTotal {
	out := make([]SalesTotal, 0, len(totals))
	for key, total := range totals {
		out = append(out, SalesTotal{Key: key, Total: total})
	}
	sort.Slice(out, func(i, j int) bool { return ranksAbove(out[i], out[j]) })
	return out
}

// minHeap keeps the weakest of the current top entries at the root
type minHeap []SalesTotal

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return ranksAbove(h[j], h[i]) }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any)        { *h = append(*h, x.(SalesTotal)) }
func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// TopSalesTotals selects the n largest entries of totals, largest first.
// It holds at most n entries at a time, so it runs in O(m log n) for m keys.
// n <= 0 yields an empty result.
func TopSalesTotals(totals map[string]float64, n int) []SalesTotal {
	if n <= 0 {
		return []SalesTotal{}
	}
	if n >= len(totals) {
		return SortedSalesTotals(totals)
	}

	h := make(minHeap, 0, n)
	for key, total := range totals {
		entry := SalesTotal{Key: key, Total: total}
		if h.Len() < n {
			heap.Push(&h, entry)
			continue
		}
		if ranksAbove(entry, h[0]) {
			h[0] = entry
			heap.Fix(&h, 0)
		}
	}

	out := make([]SalesTotal, h.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&h).(SalesTotal)
	}
	return out
}
