package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Quit     key.Binding
	Add      key.Binding
	Left     key.Binding
	Right    key.Binding
	Remove   key.Binding
	Select   key.Binding
	Prev     key.Binding
	Next     key.Binding
	Layout   key.Binding
	Mortgage key.Binding
	Details  key.Binding
	Clear    key.Binding
	Help     key.Binding
	Up       key.Binding
	Down     key.Binding
	Toggle   key.Binding
	Filter   key.Binding
	Close    key.Binding
	RateUp   key.Binding
	RateDown key.Binding
	TermUp   key.Binding
	TermDown key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add property")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "focus left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "focus right")),
		Remove:   key.NewBinding(key.WithKeys("x", "delete", "backspace"), key.WithHelp("x", "remove")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Prev:     key.NewBinding(key.WithKeys("[", "p"), key.WithHelp("[", "prev card")),
		Next:     key.NewBinding(key.WithKeys("]", "n"), key.WithHelp("]", "next card")),
		Layout:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "table/cards")),
		Mortgage: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mortgage")),
		Details:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "details")),
		Clear:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Up:       key.NewBinding(key.WithKeys("up", "k", "ctrl+p"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j", "ctrl+n"), key.WithHelp("↓/j", "down")),
		Toggle:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "select")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		RateUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "rate")),
		RateDown: key.NewBinding(key.WithKeys("-")),
		TermUp:   key.NewBinding(key.WithKeys(">", "."), key.WithHelp("</>", "term")),
		TermDown: key.NewBinding(key.WithKeys("<", ",")),
	}
}

// helpLine renders bindings as "[key] desc" pairs.
func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, "["+h.Key+"] "+h.Desc)
	}
	return strings.Join(parts, "  ")
}
