package pagenav

import "testing"

func Test_IsNormalizedPageSizeMax(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
		max      int
		want     int
		isStrict bool
	}{
		{"zero uses default", 0, 50, DefaultPageSize, false},
		{"negative uses default", -10, 50, DefaultPageSize, false},
		{"within max unchanged", 7, 50, 7, true},
		{"equal max unchanged", 50, 50, 50, true},
		{"above max clamped", 51, 50, 50, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, strict := IsNormalizedPageSizeMax(tt.pageSize, tt.max)
			if got != tt.want || strict != tt.isStrict {
				t.Errorf("%s: got=(%d,%v) want=(%d,%v)", tt.name, got, strict, tt.want, tt.isStrict)
			}
		})
	}
}

func Test_NormalizePageSize(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
		want     int
	}{
		{"zero -> default", 0, DefaultPageSize},
		{"negative -> default", -1, DefaultPageSize},
		{"clamp to MaxPageSize", MaxPageSize + 1, MaxPageSize},
		{"keep when ok", 17, 17},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePageSize(tt.pageSize); got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}
}

func Test_NormalizePage(t *testing.T) {
	tests := []struct {
		name string
		page int
		want int
	}{
		{"zero -> first", 0, FirstPage},
		{"negative -> first", -7, FirstPage},
		{"keep when ok", 3, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePage(tt.page); got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}
}

func Test_PageSizeOptions_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		options  PageSizeOptions
		pageSize int
		fallback int
		want     int
	}{
		{"exact option", DefaultPageSizeOptions, 20, 10, 20},
		{"snap up", DefaultPageSizeOptions, 21, 10, 50},
		{"above every option", DefaultPageSizeOptions, 500, 10, 100},
		{"zero uses fallback", DefaultPageSizeOptions, 0, 20, 20},
		{"fallback not an option", DefaultPageSizeOptions, -1, 15, 10},
		{"unsorted options", PageSizeOptions{50, 10, 25}, 11, 10, 25},
		{"no options", nil, 33, 10, 33},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.options.Normalize(tt.pageSize, tt.fallback); got != tt.want {
				t.Errorf("%s: got %d want %d", tt.name, got, tt.want)
			}
		})
	}
}

func Test_PageSizeOptions_Contains(t *testing.T) {
	if !DefaultPageSizeOptions.Contains(50) {
		t.Errorf("expected 50 to be an option")
	}
	if DefaultPageSizeOptions.Contains(30) {
		t.Errorf("expected 30 not to be an option")
	}
}
