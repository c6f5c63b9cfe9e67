package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	prevDay key.Binding
	nextDay key.Binding
	today   key.Binding
	enter   key.Binding
	esc     key.Binding
	save    key.Binding
	quit    key.Binding
	newItem key.Binding
	delete  key.Binding
	copy    key.Binding
	lock    key.Binding
	about   key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	prevDay: key.NewBinding(key.WithKeys("left", "h")),
	nextDay: key.NewBinding(key.WithKeys("right", "l")),
	today:   key.NewBinding(key.WithKeys("t")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	save:    key.NewBinding(key.WithKeys("ctrl+s")),
	quit:    key.NewBinding(key.WithKeys("q")),
	newItem: key.NewBinding(key.WithKeys("n")),
	delete:  key.NewBinding(key.WithKeys("d")),
	copy:    key.NewBinding(key.WithKeys("c")),
	lock:    key.NewBinding(key.WithKeys("x")),
	about:   key.NewBinding(key.WithKeys("v")),
}
