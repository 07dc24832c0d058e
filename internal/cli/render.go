package cli

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"folio/internal/ui/viewmodels"
	"folio/internal/ui/views"
)

func newRenderCmd(opts *options) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the page once, fully revealed",
		Long: `Renders the whole page to stdout without starting the interactive UI.
Every section is shown revealed and every carousel on its first document.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts, nil)
			if err != nil {
				return err
			}
			log.SetOutput(io.Discard)

			p, err := loadContent(cfg)
			if err != nil {
				return err
			}
			if width <= 0 {
				width = cfg.UI.MaxWidth + 2*views.PageMargin
			}

			pageWidth := viewmodels.PageWidth(width, cfg.UI.MaxWidth)
			page := views.NewRenderer().RenderPage(viewmodels.StaticPage(p, pageWidth))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), page.Content)
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "terminal width in columns (default fits ui.max_width)")
	return cmd
}
