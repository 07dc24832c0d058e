package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"folio/internal/carousel"
	"folio/internal/clock"
	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/domain"
	"folio/internal/eventbus"
	"folio/internal/reveal"
	"folio/internal/ui/handlers"
	"folio/internal/ui/input"
	inputtypes "folio/internal/ui/input/types"
	"folio/internal/ui/state"
	"folio/internal/ui/tracker"
	"folio/internal/ui/viewmodels"
	"folio/internal/ui/views"
)

const (
	wheelStep     = 3
	statusTimeout = 3 * time.Second
)

// Option configures a Model
type Option func(*Model)

// WithScheduler replaces the event loop scheduler that drives carousel
// timers
func WithScheduler(s clock.Scheduler) Option {
	return func(m *Model) {
		m.scheduler = s
	}
}

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	portfolio *domain.Portfolio
	state     *state.AppState // centralized state

	// UI-specific state not in AppState
	width    int
	height   int
	help     help.Model
	viewport viewport.Model
	layout   views.Layout

	// Carousels and reveal
	scheduler clock.Scheduler
	loop      *loopScheduler         // nil when a scheduler was injected
	carousels []*carousel.Controller // by case study index, nil without documents
	order     []int                  // case study indices that have a carousel
	tracker   *tracker.Tracker
	trigger   *reveal.Trigger
	regions   int

	// Handlers
	renderer     *views.Renderer
	viewModel    *viewmodels.ViewModel
	inputHandler *input.Handler
	eventHandler *handlers.EventHandler
	helpRenderer *HelpRenderer
	pager        *PagerOps

	statusSeq    int
	closed       bool
	unsubscribes []func()

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model and mounts one carousel per case study
// that has supporting documents
func NewModel(bus eventbus.EventBus, cfg *config.Config, p *domain.Portfolio, opts ...Option) (*Model, error) {
	m := &Model{
		bus:          bus,
		config:       cfg,
		portfolio:    p,
		state:        state.NewAppState(),
		help:         help.New(),
		viewport:     viewport.New(0, 0),
		renderer:     views.NewRenderer(),
		inputHandler: input.New(),
		helpRenderer: NewHelpRenderer(),
		pager:        NewPagerOps(),
		tracker:      tracker.New(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.scheduler == nil {
		m.loop = newLoopScheduler()
		m.scheduler = m.loop
	}

	m.eventHandler = handlers.NewEventHandler(m.state)
	m.viewModel = viewmodels.NewViewModel(m.state, cfg, p, *m.inputHandler.GetTextInput())
	m.viewModel.SetHelp(m.help, m.inputHandler.Keys())

	m.trigger = reveal.New(m.tracker, reveal.Options{
		Threshold:    cfg.Reveal.Threshold,
		BottomMargin: cfg.Reveal.BottomMargin,
	}, m.onReveal)

	m.carousels = make([]*carousel.Controller, len(p.CaseStudies))
	for i, cs := range p.CaseStudies {
		if len(cs.Documents) == 0 {
			continue
		}
		c, err := m.mountCarousel(cs)
		if err != nil {
			m.Shutdown()
			return nil, fmt.Errorf("mount carousel %s: %w", cs.ID, err)
		}
		m.carousels[i] = c
		m.order = append(m.order, i)
	}

	for _, region := range m.regionNames() {
		m.trigger.Observe(reveal.Region(region))
		m.regions++
	}
	return m, nil
}

func (m *Model) mountCarousel(cs domain.CaseStudy) (*carousel.Controller, error) {
	items := make([]carousel.Item, len(cs.Documents))
	for i, d := range cs.Documents {
		items[i] = carousel.Item(d)
	}
	id := cs.ID
	return carousel.Mount(items, m.scheduler,
		carousel.WithInterval(m.config.Carousel.Interval()),
		carousel.WithResetOnNavigate(m.config.Carousel.ResetOnNavigate),
		carousel.WithOnChange(func(ch carousel.Change) {
			m.publish(eventbus.SlideChangedEvent{Carousel: id, From: ch.From, To: ch.To, Cause: string(ch.Cause)})
		}),
		carousel.WithOnStateChange(func(s carousel.State) {
			switch s {
			case carousel.Paused:
				m.publish(eventbus.CarouselPausedEvent{Carousel: id})
			case carousel.Running:
				m.publish(eventbus.CarouselResumedEvent{Carousel: id})
			case carousel.Stopped:
				m.publish(eventbus.CarouselStoppedEvent{Carousel: id})
			}
		}),
	)
}

func (m *Model) regionNames() []string {
	names := []string{views.RegionHero}
	if len(m.portfolio.Metrics) > 0 {
		names = append(names, views.RegionMetrics)
	}
	names = append(names, views.RegionImpact)
	for _, cs := range m.portfolio.CaseStudies {
		names = append(names, views.CaseRegion(cs.ID))
	}
	return append(names, views.RegionSkills, views.RegionContact)
}

func (m *Model) publish(e eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

func (m *Model) onReveal(region reveal.Region) {
	m.state.MarkRevealed(string(region))
	m.publish(eventbus.RegionRevealedEvent{Region: string(region)})
}

// SetProgram sets the program reference for terminal management and timer
// delivery
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
	if m.loop != nil {
		m.loop.attach(p.Send)
	}
	m.forwardEvents(p.Send)
}

// forwardEvents delivers bus events that surface in the status line to the
// event loop
func (m *Model) forwardEvents(send func(tea.Msg)) {
	if m.bus == nil {
		return
	}
	forward := func(e eventbus.DomainEvent) {
		send(EventMsg{Event: e})
	}
	for _, t := range []eventbus.EventType{eventbus.EventError, eventbus.EventContentLoaded} {
		m.unsubscribes = append(m.unsubscribes, m.bus.Subscribe(t, forward))
	}
}

// Shutdown unmounts every carousel and disconnects the reveal trigger. It is
// safe to call more than once.
func (m *Model) Shutdown() {
	if m.closed {
		return
	}
	m.closed = true
	for _, unsubscribe := range m.unsubscribes {
		unsubscribe()
	}
	for _, c := range m.carousels {
		if c != nil {
			c.Unmount()
		}
	}
	m.trigger.DisconnectAll()
	log.Printf("UI shut down: %d carousels unmounted", len(m.order))
}

// Carousel returns the controller of a case study, nil if it has none
func (m *Model) Carousel(index int) *carousel.Controller {
	if index < 0 || index >= len(m.carousels) {
		return nil
	}
	return m.carousels[index]
}

// Revealed reports whether a page region has faded in
func (m *Model) Revealed(region string) bool {
	return m.trigger.Revealed(reveal.Region(region))
}

// State returns the UI state
func (m *Model) State() *state.AppState {
	return m.state
}

// Layout returns the geometry of the last rendered page
func (m *Model) Layout() views.Layout {
	return m.layout
}

// ScrollOffset returns the first page line in the viewport
func (m *Model) ScrollOffset() int {
	return m.viewport.YOffset
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.portfolio.Headline)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.viewModel.SetHelp(m.help, m.inputHandler.Keys())
		m.viewModel.SetDimensions(msg.Width, msg.Height)
		m.viewport.Width = msg.Width
		m.viewport.Height = m.viewModel.ViewportHeight()
		m.relayout()
		if !m.state.Ready {
			m.state.Ready = true
			m.publish(eventbus.AppReadyEvent{})
		}
		return m, nil

	case tea.KeyMsg:
		actions, cmd := m.inputHandler.HandleKey(msg, m.inputContext())

		cmds := []tea.Cmd{}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		for _, action := range actions {
			if actionCmd := m.processAction(action); actionCmd != nil {
				cmds = append(cmds, actionCmd)
			}
		}
		m.syncInputView()
		m.relayout()
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case tea.BlurMsg:
		// No motion is reported once the pointer leaves the window
		m.state.MouseX, m.state.MouseY = -1, -1
		if m.setHovered(-1) {
			m.render()
		}
		return m, nil

	case timerFiredMsg, EventMsg:
		return m.handleNonKeyboardMsg(msg)

	default:
		// Handle non-keyboard messages
		if cmd := m.inputHandler.Update(msg); cmd != nil {
			m.syncInputView()
			return m, cmd
		}
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) inputContext() *input.ModelContext {
	return &input.ModelContext{
		Focused: m.state.Focused,
		Order:   m.order,
		Slides: func(i int) int {
			if c := m.Carousel(i); c != nil {
				return c.Len()
			}
			return 0
		},
	}
}

func (m *Model) syncInputView() {
	if m.inputHandler.CurrentMode() == inputtypes.ModeJump {
		m.viewModel.SetInputMode(viewmodels.InputModeJump)
		m.viewModel.UpdateTextInput(*m.inputHandler.TextInput())
		return
	}
	m.viewModel.SetInputMode(viewmodels.InputModeNormal)
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.state.InPager {
		return ""
	}
	info := m.viewModel.StatusInfo(m.carousels, m.trigger.RevealedCount(), m.regions)
	return m.renderer.Render(m.viewModel.BuildViewState(m.viewport.View(), info, m.activeAnchor()))
}

// relayout renders the page, moves the reveal window and the hover state
// to match it, and renders again when either changed something visible
func (m *Model) relayout() {
	if m.width == 0 {
		return
	}
	m.render()
	revealed := m.syncTracker()
	hovered := m.syncHover()
	if revealed || hovered {
		m.render()
	}
}

func (m *Model) render() {
	m.layout = m.renderer.RenderPage(m.viewModel.BuildPageState(m.carousels))
	m.viewport.SetContent(m.layout.Content)
}

func (m *Model) syncTracker() bool {
	for _, b := range m.layout.Blocks {
		m.tracker.SetBounds(reveal.Region(b.Region), tracker.Bounds{Top: b.Top, Height: b.Height})
	}
	before := m.trigger.RevealedCount()
	m.tracker.Scroll(m.viewport.YOffset, m.viewport.Height)
	return m.trigger.RevealedCount() != before
}

// pageLine maps a screen row to a page line
func (m *Model) pageLine(y int) (int, bool) {
	if y < views.HeaderHeight || y >= views.HeaderHeight+m.viewport.Height {
		return 0, false
	}
	return y - views.HeaderHeight + m.viewport.YOffset, true
}

func (m *Model) syncHover() bool {
	if m.state.MouseY < 0 {
		return false
	}
	idx := -1
	if line, ok := m.pageLine(m.state.MouseY); ok {
		if c, ok := m.layout.CarouselAt(line); ok {
			idx = c
		}
	}
	return m.setHovered(idx)
}

func (m *Model) setHovered(idx int) bool {
	if idx == m.state.Hovered {
		return false
	}
	if c := m.Carousel(m.state.Hovered); c != nil {
		c.SetHovered(false)
	}
	if c := m.Carousel(idx); c != nil {
		c.SetHovered(true)
	}
	m.state.Hovered = idx
	return true
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !m.config.UI.Mouse {
		return nil
	}
	m.state.MouseX, m.state.MouseY = msg.X, msg.Y

	var cmd tea.Cmd
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.viewport.SetYOffset(m.viewport.YOffset - wheelStep)
	case tea.MouseButtonWheelDown:
		m.viewport.SetYOffset(m.viewport.YOffset + wheelStep)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			break
		}
		line, ok := m.pageLine(msg.Y)
		if !ok {
			break
		}
		if c, delta, ok := m.layout.ArrowAt(line, msg.X); ok {
			m.state.Focused = c
			m.step(c, delta)
		} else if c, slide, ok := m.layout.DotAt(line, msg.X); ok {
			m.state.Focused = c
			cmd = m.goTo(c, slide)
		} else if c, ok := m.layout.CarouselAt(line); ok {
			m.state.Focused = c
		}
	}
	m.relayout()
	return cmd
}

func (m *Model) focused() *carousel.Controller {
	return m.Carousel(m.state.Focused)
}

// step moves a carousel one document back or forward
func (m *Model) step(index, delta int) {
	c := m.Carousel(index)
	if c == nil {
		return
	}
	if delta < 0 {
		c.Previous()
	} else {
		c.Next()
	}
}

func (m *Model) goTo(index, slide int) tea.Cmd {
	c := m.Carousel(index)
	if c == nil {
		return nil
	}
	if err := c.GoTo(slide); err != nil {
		if errors.Is(err, carousel.ErrIndexOutOfRange) {
			return m.setError(fmt.Sprintf("No document %d here, this carousel has %d", slide+1, c.Len()))
		}
		return m.setError(err.Error())
	}
	return nil
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	log.Printf("processAction: %T in %s mode", action, m.inputHandler.ModeName())
	switch a := action.(type) {
	case inputtypes.ScrollAction:
		m.scroll(a.Direction)

	case inputtypes.FocusCarouselAction:
		if idx := m.state.CycleFocus(m.order, a.Delta); idx >= 0 {
			if hit, ok := m.carouselHit(idx); ok {
				m.ensureVisible(hit.Block)
			}
		}

	case inputtypes.ClearFocusAction:
		m.state.Focused = -1

	case inputtypes.SlideAction:
		m.step(m.state.Focused, a.Delta)

	case inputtypes.GoToSlideAction:
		return m.goTo(m.state.Focused, a.Index)

	case inputtypes.OpenDocumentAction:
		c := m.focused()
		if c == nil {
			return nil
		}
		cs := m.portfolio.CaseStudies[m.state.Focused]
		m.publish(eventbus.DocumentOpenedEvent{Carousel: cs.ID, Title: string(c.Current())})
		return m.showInPager("document", m.helpRenderer.RenderDocument(cs, c.Selected()))

	case inputtypes.ToggleHelpAction:
		return m.showInPager("help", m.helpRenderer.RenderHelpContent(m.inputHandler.Keys()))

	case inputtypes.SubmitTextAction:
		if a.Mode == inputtypes.ModeJump {
			return m.jump(a.Text)
		}

	case inputtypes.QuitAction:
		m.Shutdown()
		return tea.Quit
	}

	return nil
}

func (m *Model) scroll(direction string) {
	h := m.viewport.Height
	y := m.viewport.YOffset
	switch direction {
	case "up":
		y--
	case "down":
		y++
	case "pageup":
		y -= h
	case "pagedown":
		y += h
	case "halfup":
		y -= h / 2
	case "halfdown":
		y += h / 2
	case "top":
		y = 0
	case "bottom":
		y = m.layout.Lines
	}
	m.viewport.SetYOffset(y)
}

func (m *Model) carouselHit(index int) (views.CarouselHit, bool) {
	for _, hit := range m.layout.Carousels {
		if hit.Index == index {
			return hit, true
		}
	}
	return views.CarouselHit{}, false
}

// ensureVisible scrolls the least needed to bring a block into view,
// preferring its top when it is taller than the viewport
func (m *Model) ensureVisible(b views.Block) {
	top := m.viewport.YOffset
	bottom := top + m.viewport.Height
	switch {
	case b.Top < top:
		m.viewport.SetYOffset(b.Top)
	case b.Top+b.Height > bottom:
		m.viewport.SetYOffset(min(b.Top, b.Top+b.Height-m.viewport.Height))
	}
}

// jump scrolls to a navigation anchor or case study
func (m *Model) jump(text string) tea.Cmd {
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return nil
	}
	for _, a := range domain.Anchors() {
		if a.ID == q || strings.HasPrefix(strings.ToLower(a.Label), q) {
			if b, ok := m.layout.Block(views.AnchorRegion(a.ID)); ok {
				m.viewport.SetYOffset(b.Top)
			}
			return m.setStatus("Jumped to " + a.Label)
		}
	}
	if i, ok := content.FindCaseStudy(m.portfolio, q); ok {
		if b, ok := m.layout.Block(views.CaseRegion(m.portfolio.CaseStudies[i].ID)); ok {
			m.viewport.SetYOffset(b.Top)
		}
		if m.carousels[i] != nil {
			m.state.Focused = i
		}
		return m.setStatus("Jumped to " + m.portfolio.CaseStudies[i].Title)
	}
	return m.setError(fmt.Sprintf("Nothing to jump to for %q", text))
}

// activeAnchor returns the navigation entry for the top of the viewport
func (m *Model) activeAnchor() string {
	if m.viewport.AtBottom() && m.viewport.YOffset > 0 {
		return "contact"
	}
	region, ok := m.layout.RegionAt(m.viewport.YOffset)
	if !ok {
		// blank separator line, use the region below
		region, _ = m.layout.RegionAt(m.viewport.YOffset + 1)
	}
	switch {
	case region == views.RegionHero || region == views.RegionMetrics:
		return "about"
	case region == views.RegionImpact || strings.HasPrefix(region, views.CaseRegion("")):
		return "impact"
	case region == views.RegionSkills:
		return "skills"
	case region == views.RegionContact:
		return "contact"
	}
	return ""
}

func (m *Model) setStatus(msg string) tea.Cmd {
	m.state.SetStatus(msg)
	return m.clearStatusLater()
}

func (m *Model) setError(msg string) tea.Cmd {
	log.Printf("UI error: %s", msg)
	m.state.SetError(msg)
	return m.clearStatusLater()
}

func (m *Model) clearStatusLater() tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}

// showInPager returns a command that shows text in the ov pager
func (m *Model) showInPager(what, text string) tea.Cmd {
	if m.program == nil {
		return m.setError("Pager unavailable")
	}
	program := m.program
	return func() tea.Msg {
		// Send pause message to stop rendering
		program.Send(pauseRenderingMsg{})

		err := m.pager.Show(text)

		// Send resume message to restart rendering
		program.Send(resumeRenderingMsg{})

		if err != nil {
			log.Printf("%s pager failed: %v", what, err)
			m.publish(eventbus.ErrorEvent{Message: "Could not open " + what, Err: err})
		}
		return pagerMsg{what: what, err: err}
	}
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case timerFiredMsg:
		if m.loop != nil {
			m.loop.dispatch(msg.id)
		}
		m.relayout()
		return m, nil

	case EventMsg:
		if m.eventHandler.HandleEvent(msg.Event) {
			return m, m.clearStatusLater()
		}
		return m, nil

	case pagerMsg:
		// Failures reach the status line as forwarded error events
		if msg.err != nil && m.bus == nil {
			return m, m.setError(fmt.Sprintf("Could not open %s: %v", msg.what, msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.state.InPager = true
		return m, nil

	case resumeRenderingMsg:
		m.state.InPager = false
		m.relayout()
		return m, nil

	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.state.ClearStatus()
		}
		return m, nil

	default:
		// Other messages are handled elsewhere
		return m, nil
	}
}
