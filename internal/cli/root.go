package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the pagenav command tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pagenav",
		Short: "Page-number pagination toolkit and demo catalog service",
		Long: `pagenav computes the compact page sequence a pager control is drawn from
and serves a demo storefront catalog paginated by page number.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().String("config", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().String("log-level", "", "Log level override (debug, info, warn, error)")

	cmd.AddCommand(NewRenderCmd())
	cmd.AddCommand(NewServeCmd())

	return cmd
}
