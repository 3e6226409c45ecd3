package pagenav

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// PageResult is a generic page-number paginated result container.
type PageResult[T any] struct {
	// Items result elements of the current page.
	Items []T `json:"items"`
	// State pager state the page was fetched with.
	State PagerState `json:"pager"`
	// Pages visible page sequence for the pager control.
	Pages []PageMarker `json:"pages"`
}

// Fetch counts the records matched by db and loads the page selected by pager.
//
// A requested page past the end of the result set is clamped to the last
// page, so a stale page number still yields items. When nothing matches, the
// items query is skipped.
//
// db must not carry ORDER BY, LIMIT or OFFSET clauses of its own.
func Fetch[T any](ctx context.Context, db *gorm.DB, pager *PagePager) (*PageResult[T], error) {
	if err := pager.validate(); err != nil {
		return nil, fmt.Errorf("cannot fetch page: %w", err)
	}

	db = db.WithContext(ctx)

	var total int64
	if err := db.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}

	state := pager.State(total)
	ret := &PageResult[T]{
		Items: make([]T, 0),
		State: state,
		Pages: state.VisiblePages(),
	}
	if total == 0 {
		return ret, nil
	}

	paged, err := NewPagePager().
		WithMaxPageSize(state.PageSize).
		WithPageSize(state.PageSize).
		WithPage(state.CurrentPage).
		WithSubstitutedSort(pager.GetSort()...).
		Paginate(db.Session(&gorm.Session{}))
	if err != nil {
		return nil, fmt.Errorf("cannot fetch page: %w", err)
	}

	if err = paged.Find(&ret.Items).Error; err != nil {
		return nil, fmt.Errorf("failed to find records: %w", err)
	}

	return ret, nil
}
