package pagenav

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// MarkerKind distinguishes concrete page markers from ellipsis placeholders.
type MarkerKind uint8

const (
	MarkerKindPage MarkerKind = iota
	MarkerKindEllipsis
)

// EllipsisValue is the wire representation of an ellipsis marker.
const EllipsisValue = "ellipsis"

// PageMarker is an element of a visible page sequence: either a concrete,
// clickable page number or a non-interactive ellipsis placeholder.
//
// The zero value is not a valid marker; use PageNumber or Ellipsis.
type PageMarker struct {
	kind MarkerKind
	page int
}

func PageNumber(page int) PageMarker {
	return PageMarker{
		kind: MarkerKindPage,
		page: page,
	}
}

func Ellipsis() PageMarker {
	return PageMarker{kind: MarkerKindEllipsis}
}

// Kind returns the marker kind.
func (m PageMarker) Kind() MarkerKind {
	return m.kind
}

// IsEllipsis returns true if the marker is an ellipsis placeholder.
func (m PageMarker) IsEllipsis() bool {
	return m.kind == MarkerKindEllipsis
}

// Page returns the page number. The second value is false for ellipsis markers.
func (m PageMarker) Page() (int, bool) {
	if m.IsEllipsis() {
		return 0, false
	}

	return m.page, true
}

// String - implements fmt.Stringer.
func (m PageMarker) String() string {
	if m.IsEllipsis() {
		return EllipsisValue
	}

	return strconv.Itoa(m.page)
}

// MarshalJSON - implements json.Marshaler. A page is encoded as a bare
// number, an ellipsis as the string "ellipsis".
func (m PageMarker) MarshalJSON() ([]byte, error) {
	if m.IsEllipsis() {
		return json.Marshal(EllipsisValue)
	}

	return []byte(strconv.Itoa(m.page)), nil
}

// UnmarshalJSON - implements json.Unmarshaler. Only a page number >= 1 or
// the string "ellipsis" are accepted; null is rejected.
func (m *PageMarker) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("page marker must not be null")
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("failed to unmarshal page marker: %w", err)
		}
		if s != EllipsisValue {
			return fmt.Errorf("unexpected page marker value '%s'", s)
		}

		*m = Ellipsis()
		return nil
	}

	var page int
	if err := json.Unmarshal(data, &page); err != nil {
		return fmt.Errorf("failed to unmarshal page marker: %w", err)
	}
	if page < FirstPage {
		return fmt.Errorf("invalid page marker %d", page)
	}

	*m = PageNumber(page)
	return nil
}

var (
	_ fmt.Stringer     = PageMarker{}
	_ json.Marshaler   = PageMarker{}
	_ json.Unmarshaler = (*PageMarker)(nil)
)

// PageNumbers returns the numeric entries of the sequence in order,
// skipping ellipsis markers.
func PageNumbers(markers []PageMarker) []int {
	ret := make([]int, 0, len(markers))
	for _, m := range markers {
		if page, ok := m.Page(); ok {
			ret = append(ret, page)
		}
	}

	return ret
}
