// Package pagination computes the sliding window of page links shown under
// every collection table.
package pagination

// MAX_VISIBLE_PAGES bounds the number of numbered links in a window.
const MAX_VISIBLE_PAGES = 5

// Window is the clamped range of page links around the current page.
type Window struct {
	Current int
	Total   int
	Start   int
	End     int
}

// Compute returns the window for current out of total pages. A total below 1
// is treated as 1 and current is clamped to [1, total].
func Compute(current, total int) Window {
	total = max(total, 1)
	current = min(max(current, 1), total)
	start := max(1, min(current-MAX_VISIBLE_PAGES/2, total-MAX_VISIBLE_PAGES+1))
	end := min(total, start+MAX_VISIBLE_PAGES-1)
	return Window{Current: current, Total: total, Start: start, End: end}
}

// Pages lists the page numbers inside the window.
func (w Window) Pages() []int {
	pages := make([]int, 0, w.End-w.Start+1)
	for i := w.Start; i <= w.End; i++ {
		pages = append(pages, i)
	}
	return pages
}

func (w Window) HasPrev() bool {
	return w.Current > 1
}

func (w Window) HasNext() bool {
	return w.Current < w.Total
}

func (w Window) Prev() int {
	return max(w.Current-1, 1)
}

func (w Window) Next() int {
	return min(w.Current+1, w.Total)
}
