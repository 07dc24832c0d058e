package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/domain"
	"folio/internal/eventbus"
)

// options holds the flags shared by every command
type options struct {
	configPath  string
	contentPath string
	interval    int
	noMouse     bool
}

// Execute runs the command tree against os.Args
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "folio",
		Short: "Portfolio page in the terminal",
		Long: `folio renders a product portfolio as a scrolling terminal page.
Sections fade in as they scroll into view and every case study carries a
carousel of supporting documents that advances on its own.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().StringVar(&opts.contentPath, "content", "", "portfolio content file (TOML, default built-in)")
	root.Flags().IntVar(&opts.interval, "interval", 0, "carousel auto-advance interval in milliseconds")
	root.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse hover and clicks")

	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newConfigCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// loadConfig reads .env files and the config file, then applies flag
// overrides. A non-nil bus receives the ConfigLoaded event.
func loadConfig(cmd *cobra.Command, opts *options, bus eventbus.EventBus) (*config.Config, error) {
	if err := config.LoadDotEnv(); err != nil {
		return nil, err
	}

	cfg, err := config.NewConfigServiceWithBus(opts.configPath, bus).Load()
	if err != nil {
		return nil, err
	}

	if opts.contentPath != "" {
		cfg.Content = opts.contentPath
	}
	if f := cmd.Flags().Lookup("interval"); f != nil && f.Changed {
		cfg.Carousel.IntervalMS = opts.interval
	}
	if opts.noMouse {
		cfg.UI.Mouse = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadContent(cfg *config.Config) (*domain.Portfolio, error) {
	p, err := content.Load(cfg.Content)
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	return p, nil
}
