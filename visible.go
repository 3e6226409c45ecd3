package pagenav

// MaxVisiblePages is the number of pages up to which every page is listed
// without truncation.
const MaxVisiblePages = 7

// GenerateVisiblePages builds the sequence of markers for a compact pager
// control. The first and the last pages are always present, and so are the
// current page and its immediate neighbours. Skipped ranges collapse into a
// single ellipsis.
//
// Examples:
//
//	GenerateVisiblePages(3, 5)  -> [1 2 3 4 5]
//	GenerateVisiblePages(1, 10) -> [1 2 3 4 … 10]
//	GenerateVisiblePages(5, 10) -> [1 … 4 5 6 … 10]
//	GenerateVisiblePages(9, 10) -> [1 … 7 8 9 10]
//
// IMPORTANT:
// currentPage is not clamped. A value outside [1, totalPages] still yields a
// sequence, but neighbour pages may fall out of range or repeat the anchors.
// Use ClampPage or PagerState.VisiblePages when the value may be stale.
func GenerateVisiblePages(currentPage, totalPages int) []PageMarker {
	if totalPages <= MaxVisiblePages {
		ret := make([]PageMarker, 0, max(totalPages, 0))
		for page := 1; page <= totalPages; page++ {
			ret = append(ret, PageNumber(page))
		}

		return ret
	}

	ret := make([]PageMarker, 0, MaxVisiblePages)
	ret = append(ret, PageNumber(1))

	switch {
	case currentPage <= 3:
		ret = append(ret, PageNumber(2), PageNumber(3), PageNumber(4))
		if totalPages > 4 {
			ret = append(ret, Ellipsis(), PageNumber(totalPages))
		}
	case currentPage >= totalPages-2:
		ret = append(ret, Ellipsis())
		for page := totalPages - 3; page <= totalPages; page++ {
			ret = append(ret, PageNumber(page))
		}
	default:
		ret = append(ret,
			Ellipsis(),
			PageNumber(currentPage-1),
			PageNumber(currentPage),
			PageNumber(currentPage+1),
			Ellipsis(),
			PageNumber(totalPages),
		)
	}

	return ret
}

// ClampPage clamps currentPage into [1, max(totalPages, 1)].
func ClampPage(currentPage, totalPages int) int {
	if currentPage < 1 {
		return 1
	}

	return min(currentPage, max(totalPages, 1))
}
