package modes

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the normal mode bindings. It implements help.KeyMap so the
// footer and the help page list the same keys the mode reacts to.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	HalfUp     key.Binding
	HalfDown   key.Binding
	Top        key.Binding
	Bottom     key.Binding
	NextFocus  key.Binding
	PrevFocus  key.Binding
	Previous   key.Binding
	Next       key.Binding
	GoTo       key.Binding
	Open       key.Binding
	ClearFocus key.Binding
	Jump       key.Binding
	Help       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the normal mode bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "scroll up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "scroll down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdn", "page down")),
		HalfUp:     key.NewBinding(key.WithKeys("ctrl+u"), key.WithHelp("ctrl+u", "half page up")),
		HalfDown:   key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "half page down")),
		Top:        key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:     key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		NextFocus:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next carousel")),
		PrevFocus:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous carousel")),
		Previous:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous document")),
		Next:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next document")),
		GoTo:       key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "go to document")),
		Open:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "view document")),
		ClearFocus: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "leave carousel")),
		Jump:       key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "jump to")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.NextFocus, k.Next, k.Open, k.Jump, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.HalfUp, k.HalfDown, k.Top, k.Bottom},
		{k.NextFocus, k.PrevFocus, k.Previous, k.Next, k.GoTo, k.Open, k.ClearFocus},
		{k.Jump, k.Help, k.Quit},
	}
}
