package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	space     key.Binding
	quit      key.Binding
	upload    key.Binding
	sync      key.Binding
	download  key.Binding
	selectAll key.Binding
	copy      key.Binding
	guest     key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up", "k")),
	down:      key.NewBinding(key.WithKeys("down", "j")),
	enter:     key.NewBinding(key.WithKeys("enter")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab")),
	space:     key.NewBinding(key.WithKeys(" ")),
	quit:      key.NewBinding(key.WithKeys("q", "ctrl+c")),
	upload:    key.NewBinding(key.WithKeys("u")),
	sync:      key.NewBinding(key.WithKeys("s")),
	download:  key.NewBinding(key.WithKeys("d")),
	selectAll: key.NewBinding(key.WithKeys("a")),
	copy:      key.NewBinding(key.WithKeys("c")),
	guest:     key.NewBinding(key.WithKeys("g")),
}
