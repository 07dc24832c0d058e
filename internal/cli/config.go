package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/eventbus"
)

func newConfigCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the folio config file",
	}
	cmd.AddCommand(newConfigInitCmd(opts))
	return cmd
}

func newConfigInitCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(io.Discard)
			bus := eventbus.New()
			defer bus.Close()
			out := cmd.OutOrStdout()
			defer bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
				fmt.Fprintf(out, "Wrote %s\n", e.(eventbus.ConfigSavedEvent).Path)
			})()

			svc := config.NewConfigServiceWithBus(opts.configPath, bus)
			path := svc.Path()

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("check config file: %w", err)
			}

			if err := svc.Save(config.DefaultConfig()); err != nil {
				return err
			}
			// Flush so the saved event is printed before returning
			bus.Close()
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
