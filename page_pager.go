package pagenav

import (
	"fmt"
	"slices"

	"gorm.io/gorm"
)

// RawPagePager is intended for API payloads and query strings. For proper
// code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPagePager `json:",inline"`
//	}
type RawPagePager struct {
	// Page - 1-based number of the requested page. Non-positive means the first page.
	Page int `json:"page" form:"page"`
	// PageSize - number of records per page. Normalized with NormalizePageSize.
	PageSize int `json:"pageSize" form:"pageSize"`
	// Sort - list of "[-]alias [asc|desc]" entries, resolved via ColumnMapping.
	Sort []string `json:"sort,omitempty" form:"sort"`
}

// Decode converts RawPagePager into *PagePager. Sort entries are parsed with
// ParseSort against mapping; when Sort is empty, defaultSort is used.
func (p RawPagePager) Decode(mapping ColumnMapping, defaultSort ...OrderBy) (*PagePager, error) {
	sort := Orderings(defaultSort)
	if len(p.Sort) > 0 {
		parsed, err := ParseSort(p.Sort, mapping)
		if err != nil {
			return nil, fmt.Errorf("cannot decode page pager: %w", err)
		}
		sort = parsed
	}

	return NewPagePager().
		WithPage(p.Page).
		WithPageSize(p.PageSize).
		WithSubstitutedSort(sort...), nil
}

// PagePager applies LIMIT/OFFSET pagination addressed by page number.
//
// IMPORTANT:
// The ordering MUST be deterministic (end with a unique column), otherwise
// rows may repeat or be skipped across pages.
type PagePager struct {
	page        int
	pageSize    int
	maxPageSize int
	sort        Orderings
}

func NewPagePager() *PagePager {
	return &PagePager{
		page:        FirstPage,
		pageSize:    DefaultPageSize,
		maxPageSize: MaxPageSize,
	}
}

// WithPage sets the requested page. Non-positive values select the first page.
func (p *PagePager) WithPage(page int) *PagePager {
	if p == nil {
		p = NewPagePager()
	}

	p.page = NormalizePage(page)

	return p
}

// WithMaxPageSize sets the upper bound for the page size and re-normalizes
// the current page size against it.
func (p *PagePager) WithMaxPageSize(maxPageSize int) *PagePager {
	if p == nil {
		p = NewPagePager()
	}

	if maxPageSize <= 0 {
		maxPageSize = MaxPageSize
	}
	p.maxPageSize = maxPageSize
	p.pageSize = NormalizePageSizeMax(p.pageSize, p.maxPageSize)

	return p
}

// WithPageSize sets the number of records per page.
// NormalizePageSizeMax is applied against the configured maximum.
func (p *PagePager) WithPageSize(pageSize int) *PagePager {
	if p == nil {
		p = NewPagePager()
	}

	p.pageSize = NormalizePageSizeMax(pageSize, p.getMaxPageSize())

	return p
}

// WithSubstitutedSort resets previous orderings and applies the provided ones.
func (p *PagePager) WithSubstitutedSort(orderBy ...OrderBy) *PagePager {
	if p == nil {
		p = NewPagePager()
	}

	p.sort = nil

	return p.WithSort(orderBy...)
}

// WithSort appends sort orderings without overwriting existing ones.
// A column that is already present moves to the end with the new direction:
//
//	OrderBy(o1).ThenBy(o2).ThenBy(o3)...
func (p *PagePager) WithSort(orderBy ...OrderBy) *PagePager {
	if p == nil {
		p = NewPagePager()
	}

	for _, o := range orderBy {
		idx := slices.IndexFunc(p.sort, func(processed OrderBy) bool {
			return processed.Column == o.Column
		})

		if idx != -1 {
			p.sort = slices.Delete(p.sort, idx, idx+1)
		}

		p.sort = append(p.sort, o)
	}

	return p
}

// Paginate applies ordering, LIMIT and OFFSET to the dataset. Returns an error
// if pagination cannot be applied.
func (p *PagePager) Paginate(db *gorm.DB) (*gorm.DB, error) {
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	db = p.sort.Apply(db).Limit(p.pageSize)
	if offset := p.GetOffset(); offset > 0 {
		db = db.Offset(offset)
	}

	return db, nil
}

// State projects the pager onto a result set of totalCount records. A page
// past the end of the result set is clamped to the last page.
func (p *PagePager) State(totalCount int64) PagerState {
	return newPagerState(p.GetPage(), p.GetPageSize(), totalCount)
}

// GetPage returns the requested page as stored in PagePager.
func (p *PagePager) GetPage() int {
	if p == nil {
		return FirstPage
	}

	return p.page
}

// GetPageSize returns the normalized page size.
func (p *PagePager) GetPageSize() int {
	if p == nil {
		return DefaultPageSize
	}

	return p.pageSize
}

// GetOffset returns the number of records to skip: (page-1) * pageSize.
func (p *PagePager) GetOffset() int {
	return (p.GetPage() - 1) * p.GetPageSize()
}

// GetSort returns orderings that will be applied to the dataset.
func (p *PagePager) GetSort() Orderings {
	if p == nil {
		return nil
	}

	return p.sort
}

func (p *PagePager) getMaxPageSize() int {
	if p == nil || p.maxPageSize <= 0 {
		return MaxPageSize
	}

	return p.maxPageSize
}

func (p *PagePager) validate() error {
	if p == nil {
		return fmt.Errorf("page pager is nil")
	}

	if p.page < FirstPage {
		return fmt.Errorf("invalid page %d", p.page)
	}

	if p.pageSize <= 0 {
		return fmt.Errorf("invalid page size %d", p.pageSize)
	}

	return p.sort.validate()
}
