package pagenav

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	DefaultSeparator     = " "
	DefaultEllipsisGlyph = "…"
	DefaultCurrentFormat = "[%d]"
)

type renderConfig struct {
	separator     string
	ellipsisGlyph string
	currentFormat string
}

// RenderOption customizes Render.
type RenderOption func(*renderConfig)

func WithSeparator(separator string) RenderOption {
	return func(c *renderConfig) {
		c.separator = separator
	}
}

func WithEllipsisGlyph(glyph string) RenderOption {
	return func(c *renderConfig) {
		c.ellipsisGlyph = glyph
	}
}

// WithCurrentFormat sets the fmt verb string used for the current page.
// It must contain exactly one %d.
func WithCurrentFormat(format string) RenderOption {
	return func(c *renderConfig) {
		c.currentFormat = format
	}
}

// Render draws a page sequence as plain text.
//
// Example:
//
//	Render(GenerateVisiblePages(5, 10), 5) -> "1 … 4 [5] 6 … 10"
func Render(markers []PageMarker, currentPage int, opts ...RenderOption) string {
	cfg := renderConfig{
		separator:     DefaultSeparator,
		ellipsisGlyph: DefaultEllipsisGlyph,
		currentFormat: DefaultCurrentFormat,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	parts := lo.Map(markers, func(m PageMarker, _ int) string {
		page, ok := m.Page()
		if !ok {
			return cfg.ellipsisGlyph
		}
		if page == currentPage {
			return fmt.Sprintf(cfg.currentFormat, page)
		}

		return m.String()
	})

	return strings.Join(parts, cfg.separator)
}
