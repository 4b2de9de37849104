// Package selection models the set of pages a user picks for extraction,
// either one at a time or through inclusive page ranges.
package selection

import "sort"

// Range is an inclusive, 1-based block of pages.
type Range struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// DefaultRange is the range a freshly loaded document starts with.
var DefaultRange = Range{From: 1, To: 1}

// Valid reports whether r describes at least one page.
func (r Range) Valid() bool {
	return r.From >= 1 && r.From <= r.To
}

// Expand returns the pages of r that exist in a document of pageCount pages.
func (r Range) Expand(pageCount int) []int {
	if !r.Valid() {
		return nil
	}
	to := min(r.To, pageCount)
	var pages []int
	for p := r.From; p <= to; p++ {
		pages = append(pages, p)
	}
	return pages
}

// Selection is a deduplicated set of 1-based page numbers.
// The zero value is an empty selection ready to use.
type Selection struct {
	pages map[int]struct{}
}

func New(pages ...int) *Selection {
	s := &Selection{}
	for _, p := range pages {
		s.Add(p)
	}
	return s
}

func (s *Selection) Add(page int) {
	if s.pages == nil {
		s.pages = make(map[int]struct{})
	}
	s.pages[page] = struct{}{}
}

func (s *Selection) Remove(page int) {
	delete(s.pages, page)
}

func (s *Selection) Has(page int) bool {
	_, ok := s.pages[page]
	return ok
}

// Toggle flips membership of page and reports whether it is now selected.
func (s *Selection) Toggle(page int) bool {
	if s.Has(page) {
		s.Remove(page)
		return false
	}
	s.Add(page)
	return true
}

func (s *Selection) Len() int {
	return len(s.pages)
}

func (s *Selection) Clear() {
	s.pages = nil
}

// ApplyRanges merges every valid range, clamped to pageCount, into the
// selection. Pages already selected stay selected. It returns the number of
// distinct pages the ranges covered.
func (s *Selection) ApplyRanges(ranges []Range, pageCount int) int {
	covered := make(map[int]struct{})
	for _, r := range ranges {
		for _, p := range r.Expand(pageCount) {
			covered[p] = struct{}{}
			s.Add(p)
		}
	}
	return len(covered)
}

// Sorted returns the selected pages in ascending order. This is the order
// sent to the server.
func (s *Selection) Sorted() []int {
	pages := make([]int, 0, len(s.pages))
	for p := range s.pages {
		pages = append(pages, p)
	}
	sort.Ints(pages)
	return pages
}
