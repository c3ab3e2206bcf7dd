package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	nextTab  key.Binding
	prevTab  key.Binding
	nextPage key.Binding
	prevPage key.Binding
	download key.Binding
	view     key.Binding
	bookmark key.Binding
	refresh  key.Binding
	logout   key.Binding
	quit     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	nextTab:  key.NewBinding(key.WithKeys("tab", "right", "l")),
	prevTab:  key.NewBinding(key.WithKeys("shift+tab", "left", "h")),
	nextPage: key.NewBinding(key.WithKeys("n", "pgdown")),
	prevPage: key.NewBinding(key.WithKeys("p", "pgup")),
	download: key.NewBinding(key.WithKeys("d")),
	view:     key.NewBinding(key.WithKeys("v", "enter")),
	bookmark: key.NewBinding(key.WithKeys("b")),
	refresh:  key.NewBinding(key.WithKeys("r")),
	logout:   key.NewBinding(key.WithKeys("x")),
	quit:     key.NewBinding(key.WithKeys("q")),
}
