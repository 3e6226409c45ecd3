// Package pagenav provides page-number pagination primitives for GORM and the
// page sequence a compact pager control is rendered from.
//
// Overview
//
// pagenav covers both ends of classic "page N of M" navigation:
//   - PagePager: applies deterministic ordering and LIMIT/OFFSET to a GORM
//     query for the requested page.
//   - Fetch: counts the result set, clamps stale page numbers and loads the
//     page into a PageResult.
//   - PagerState: the projection a pager control is drawn from (current page,
//     total pages, prev/next availability, item-count summary).
//   - GenerateVisiblePages: the truncated sequence of page numbers and
//     ellipsis markers, at most MaxVisiblePages interactive entries wide.
//
// Key concepts
//   - PageMarker: either a page number or an ellipsis placeholder.
//   - Orderings: multi-column ordering with explicit directions, parsed from
//     client input through a ColumnMapping.
//   - PageSizeOptions: the values offered by a page-size selector.
package pagenav
