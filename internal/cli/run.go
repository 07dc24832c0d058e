package cli

import (
	"bytes"
	"context"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/eventbus"
	"folio/internal/ui"
)

// runUI runs the interactive page until the user quits
func runUI(cmd *cobra.Command, opts *options) error {
	// Hold log output until the log file is known
	early := &bytes.Buffer{}
	log.SetOutput(early)
	closeLog := func() {}
	defer func() { closeLog() }()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()
	unsubscribe := subscribeActivityLog(bus)
	defer unsubscribe()

	cfg, err := loadConfig(cmd, opts, bus)
	if err != nil {
		log.SetOutput(io.Discard)
		return err
	}

	closeLog = setupLogging(cfg, early)

	p, err := loadContent(cfg)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d case studies from %s", len(p.CaseStudies), contentName(cfg))

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	uiModel, err := ui.NewModel(bus, cfg, p)
	if err != nil {
		return err
	}
	defer uiModel.Shutdown()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithReportFocus()}
	if cfg.UI.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		programOpts = append(programOpts, tea.WithMouseAllMotion())
	}
	program := tea.NewProgram(uiModel, programOpts...)
	uiModel.SetProgram(program)

	bus.Publish(eventbus.ContentLoadedEvent{Source: contentName(cfg), CaseStudies: len(p.CaseStudies)})

	log.Printf("Starting UI...")
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		return err
	}
	log.Printf("UI exited normally")
	return nil
}

// setupLogging sends the standard logger to the configured file and appends
// what was logged before it opened. The terminal belongs to the UI, so
// without a file log output is dropped.
func setupLogging(cfg *config.Config, early *bytes.Buffer) func() {
	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(logFile)
	if early != nil {
		// early has no writers once the output moved
		_, _ = logFile.Write(early.Bytes())
	}
	return func() { _ = logFile.Close() }
}

func contentName(cfg *config.Config) string {
	if cfg.Content == "" {
		return "built-in content"
	}
	return cfg.Content
}
