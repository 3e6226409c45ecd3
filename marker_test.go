package pagenav

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PageMarker_Accessors(t *testing.T) {
	page := PageNumber(4)
	n, ok := page.Page()
	assert.True(t, ok)
	assert.Equal(t, 4, n)
	assert.False(t, page.IsEllipsis())
	assert.Equal(t, MarkerKindPage, page.Kind())
	assert.Equal(t, "4", page.String())

	ellipsis := Ellipsis()
	_, ok = ellipsis.Page()
	assert.False(t, ok)
	assert.True(t, ellipsis.IsEllipsis())
	assert.Equal(t, MarkerKindEllipsis, ellipsis.Kind())
	assert.Equal(t, "ellipsis", ellipsis.String())
}

func Test_PageMarker_JSON(t *testing.T) {
	data, err := json.Marshal(GenerateVisiblePages(5, 10))
	require.NoError(t, err)
	require.JSONEq(t, `[1,"ellipsis",4,5,6,"ellipsis",10]`, string(data))

	var decoded []PageMarker
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, GenerateVisiblePages(5, 10), decoded)
}

func Test_PageMarker_UnmarshalJSON_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown string", `"dots"`},
		{"float", `1.5`},
		{"object", `{"page":1}`},
		{"bool", `true`},
		{"null", `null`},
		{"zero page", `0`},
		{"negative page", `-3`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m PageMarker
			require.Error(t, json.Unmarshal([]byte(tt.input), &m))
		})
	}
}

func Test_PageMarker_UnmarshalJSON_NullInSequence(t *testing.T) {
	var decoded []PageMarker
	require.Error(t, json.Unmarshal([]byte(`[1, null, "ellipsis", 10]`), &decoded))
	require.Error(t, json.Unmarshal([]byte(`[1, "ellipsis", 0]`), &decoded))
}

func Test_PageNumbers(t *testing.T) {
	require.Equal(t, []int{1, 7, 8, 9, 10}, PageNumbers(GenerateVisiblePages(9, 10)))
	require.Empty(t, PageNumbers(nil))
}
