package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alp4ka/pagenav"
)

// RenderOutput is the JSON form of the render command. Summary is only set
// when the item count is known.
type RenderOutput struct {
	State   pagenav.PagerState   `json:"pager"`
	Pages   []pagenav.PageMarker `json:"pages"`
	Summary string               `json:"summary,omitempty"`
}

func NewRenderCmd() *cobra.Command {
	var (
		page       int
		totalPages int
		totalCount int64
		pageSize   int
		asJSON     bool
		ellipsis   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the visible page sequence for a pager",
		Long: `Print the visible page sequence for a pager.

The page count comes either from --total or from --count and --page-size.
The current page is clamped into the valid range.

Examples:
  pagenav render --page 5 --total 10
  pagenav render --page 3 --count 95 --page-size 20 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if totalPages < 0 || totalCount < 0 {
				return fmt.Errorf("totals must not be negative")
			}

			out := RenderOutput{}
			if cmd.Flags().Changed("count") {
				out.State = pagenav.NewPagerState(page, pageSize, totalCount)
				out.Summary = out.State.Summary()
			} else {
				out.State = pagenav.PagerState{
					CurrentPage: pagenav.ClampPage(page, totalPages),
					TotalPages:  totalPages,
					PageSize:    pagenav.NormalizePageSize(pageSize),
				}
			}
			state := out.State
			markers := state.VisiblePages()

			if asJSON {
				out.Pages = markers
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to marshal pages to JSON: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), pagenav.Render(markers, state.CurrentPage, pagenav.WithEllipsisGlyph(ellipsis)))
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", pagenav.FirstPage, "Current page (1-based)")
	cmd.Flags().IntVar(&totalPages, "total", 0, "Total number of pages")
	cmd.Flags().Int64Var(&totalCount, "count", 0, "Total number of items (overrides --total)")
	cmd.Flags().IntVar(&pageSize, "page-size", pagenav.DefaultPageSize, "Items per page, used with --count")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON instead of text")
	cmd.Flags().StringVar(&ellipsis, "ellipsis", pagenav.DefaultEllipsisGlyph, "Glyph drawn for skipped pages")

	return cmd
}
