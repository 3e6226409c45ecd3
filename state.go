package pagenav

import "fmt"

// PagerState is the projection a pager control is rendered from. It is
// recomputed from the request and the total count on every call and holds no
// history.
//
// Invariant: 1 <= CurrentPage <= max(TotalPages, 1).
type PagerState struct {
	// CurrentPage 1-based page number.
	CurrentPage int `json:"currentPage"`
	// TotalPages ceil(TotalCount / PageSize).
	TotalPages int `json:"totalPages"`
	// PageSize number of items per page.
	PageSize int `json:"pageSize"`
	// TotalCount number of items in the whole result set.
	TotalCount int64 `json:"totalCount"`
}

// TotalPagesFor returns ceil(totalCount / pageSize), or 0 for non-positive
// arguments.
func TotalPagesFor(totalCount int64, pageSize int) int {
	if totalCount <= 0 || pageSize <= 0 {
		return 0
	}

	return int((totalCount + int64(pageSize) - 1) / int64(pageSize))
}

// NewPagerState builds a PagerState. The page size is normalized with
// NormalizePageSize and the current page is clamped into the valid range.
func NewPagerState(currentPage, pageSize int, totalCount int64) PagerState {
	return newPagerState(currentPage, NormalizePageSize(pageSize), totalCount)
}

func newPagerState(currentPage, pageSize int, totalCount int64) PagerState {
	totalCount = max(totalCount, 0)
	totalPages := TotalPagesFor(totalCount, pageSize)

	return PagerState{
		CurrentPage: ClampPage(currentPage, totalPages),
		TotalPages:  totalPages,
		PageSize:    pageSize,
		TotalCount:  totalCount,
	}
}

// HasPrevious returns true if the "previous" control is enabled.
func (s PagerState) HasPrevious() bool {
	return s.CurrentPage > 1
}

// HasNext returns true if the "next" control is enabled.
func (s PagerState) HasNext() bool {
	return s.CurrentPage < s.TotalPages
}

func (s PagerState) PreviousPage() (int, bool) {
	if !s.HasPrevious() {
		return 0, false
	}

	return s.CurrentPage - 1, true
}

func (s PagerState) NextPage() (int, bool) {
	if !s.HasNext() {
		return 0, false
	}

	return s.CurrentPage + 1, true
}

// ShouldRender returns false when there is nothing to navigate between.
func (s PagerState) ShouldRender() bool {
	return s.TotalPages > 1
}

// Offset returns the number of items preceding the current page.
func (s PagerState) Offset() int {
	return (NormalizePage(s.CurrentPage) - 1) * s.PageSize
}

// ItemRange returns the 1-based inclusive range of items shown on the current
// page, or (0, 0) for an empty result set.
func (s PagerState) ItemRange() (int64, int64) {
	if s.TotalCount <= 0 || s.PageSize <= 0 {
		return 0, 0
	}

	from := int64(s.Offset()) + 1
	if from > s.TotalCount {
		return 0, 0
	}

	return from, min(from+int64(s.PageSize)-1, s.TotalCount)
}

// Summary returns the item-count summary text shown next to the pager.
func (s PagerState) Summary() string {
	from, to := s.ItemRange()
	if from == 0 {
		return "No items"
	}

	return fmt.Sprintf("Showing %d to %d of %d items", from, to, s.TotalCount)
}

// VisiblePages returns the visible page sequence for the state.
func (s PagerState) VisiblePages() []PageMarker {
	return GenerateVisiblePages(ClampPage(s.CurrentPage, s.TotalPages), s.TotalPages)
}
