package pagenav

import (
	"slices"

	"github.com/samber/lo"
)

const (
	FirstPage       = 1
	MaxPageSize     = 100
	DefaultPageSize = 10
)

// DefaultPageSizeOptions are the page sizes offered by the page-size selector.
var DefaultPageSizeOptions = PageSizeOptions{10, 20, 50, 100}

// IsNormalizedPageSizeMax returns the normalized page size and true if no
// adjustment was needed.
func IsNormalizedPageSizeMax(pageSize int, maxPageSize int) (int, bool) {
	if pageSize <= 0 {
		return DefaultPageSize, false
	} else if pageSize > maxPageSize {
		return maxPageSize, false
	}

	return pageSize, true
}

func NormalizePageSizeMax(pageSize int, maxPageSize int) int {
	ret, _ := IsNormalizedPageSizeMax(pageSize, maxPageSize)
	return ret
}

func NormalizePageSize(pageSize int) int {
	return NormalizePageSizeMax(pageSize, MaxPageSize)
}

// NormalizePage maps non-positive page numbers to FirstPage.
func NormalizePage(page int) int {
	return max(page, FirstPage)
}

// PageSizeOptions is an ascending list of selectable page sizes.
type PageSizeOptions []int

// Contains returns true if pageSize is one of the options.
func (o PageSizeOptions) Contains(pageSize int) bool {
	return lo.Contains(o, pageSize)
}

// Normalize snaps pageSize to the smallest option that is not less than it.
// Values above every option snap to the largest one. Non-positive values
// resolve to fallback when it is an option, otherwise to the first option.
// Empty options leave pageSize untouched.
func (o PageSizeOptions) Normalize(pageSize int, fallback int) int {
	if len(o) == 0 {
		return pageSize
	}

	sorted := slices.Clone(o)
	slices.Sort(sorted)

	if pageSize <= 0 {
		return lo.Ternary(sorted.Contains(fallback), fallback, sorted[0])
	}

	option, ok := lo.Find(sorted, func(option int) bool {
		return option >= pageSize
	})
	if !ok {
		return sorted[len(sorted)-1]
	}

	return option
}
