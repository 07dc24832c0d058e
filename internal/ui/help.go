package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/noborus/ov/oviewer"

	"folio/internal/content"
	"folio/internal/domain"
	"folio/internal/ui/input/modes"
)

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	what string
	err  error
}

// HelpRenderer handles help and document page rendering for the pager
type HelpRenderer struct {
	title   lipgloss.Style
	section lipgloss.Style
	key     lipgloss.Style
	desc    lipgloss.Style
	dim     lipgloss.Style
}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{
		title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")).MarginBottom(1),
		section: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1),
		key:     lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		desc:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		dim:     lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("241")),
	}
}

func (r *HelpRenderer) writeBindings(b *strings.Builder, bindings []key.Binding) {
	width := 0
	for _, kb := range bindings {
		width = max(width, lipgloss.Width(kb.Help().Key))
	}
	for _, kb := range bindings {
		h := kb.Help()
		pad := strings.Repeat(" ", width-lipgloss.Width(h.Key))
		fmt.Fprintf(b, "  %s%s  %s\n", r.key.Render(h.Key), pad, r.desc.Render(h.Desc))
	}
}

// RenderHelpContent generates help content with colors for the pager
func (r *HelpRenderer) RenderHelpContent(keys modes.KeyMap) string {
	var help strings.Builder

	help.WriteString(r.title.Render("folio Help"))
	help.WriteString("\n")

	groups := keys.FullHelp()
	names := []string{"Scrolling", "Documents", "Other"}
	for i, bindings := range groups {
		help.WriteString(r.section.Render(names[i]))
		help.WriteString("\n")
		r.writeBindings(&help, bindings)
	}

	help.WriteString("\n")
	help.WriteString(r.dim.Render("  Carousels pause while the mouse pointer is over them."))
	help.WriteString("\n")
	help.WriteString(r.dim.Render("  Click an indicator dot to show that document."))
	help.WriteString("\n")
	help.WriteString(r.dim.Render("  Jump targets: about, impact, skills, contact or a case study name."))
	return help.String()
}

// RenderDocument generates the full page for one supporting document
func (r *HelpRenderer) RenderDocument(cs domain.CaseStudy, index int) string {
	var doc strings.Builder

	title := ""
	if index >= 0 && index < len(cs.Documents) {
		title = cs.Documents[index]
	}
	doc.WriteString(r.title.Render(title))
	doc.WriteString("\n")
	doc.WriteString(r.dim.Render(fmt.Sprintf("Document %d of %d · %s", index+1, len(cs.Documents), cs.Title)))
	doc.WriteString("\n")

	section := func(name, text string) {
		if text == "" {
			return
		}
		doc.WriteString(r.section.Render(name))
		doc.WriteString("\n")
		doc.WriteString("  " + r.desc.Render(content.Plain(text)))
		doc.WriteString("\n")
	}
	list := func(name string, items []string) {
		if len(items) == 0 {
			return
		}
		doc.WriteString(r.section.Render(name))
		doc.WriteString("\n")
		for _, it := range items {
			doc.WriteString("  " + r.key.Render("•") + " " + r.desc.Render(content.Plain(it)))
			doc.WriteString("\n")
		}
	}

	section("Role", cs.Role)
	section("The Challenge", cs.Challenge)
	list("My Process", cs.Process)
	section("The Solution", cs.Solution)
	list("Measurable Impact", cs.Impact)
	return doc.String()
}

// PagerOps runs the ov pager on top of the program
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps() *PagerOps {
	return &PagerOps{}
}

// SetProgram sets the program whose terminal the pager borrows
func (h *PagerOps) SetProgram(p *tea.Program) {
	h.program = p
}

// Show shows content using the ov pager
func (h *PagerOps) Show(text string) error {
	if h.program == nil {
		return fmt.Errorf("program not set")
	}

	// Release terminal control to run ov
	if err := h.program.ReleaseTerminal(); err != nil {
		return err
	}

	// Ensure terminal is restored even if ov fails
	defer func() {
		// Small delay to ensure ov has fully exited before restoring terminal
		time.Sleep(100 * time.Millisecond)
		_ = h.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(strings.NewReader(text))
	if err != nil {
		return err
	}

	// Configure ov to not write on exit (to avoid messing with our screen)
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	// Run the oviewer (this will take over the terminal)
	return root.Run()
}
