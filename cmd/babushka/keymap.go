package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Recolor key.Binding
	Reset   key.Binding
	Reload  key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Recolor: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "recolor")),
		Reset:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Reload:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "reload")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Recolor, k.Reset, k.Reload, k.Quit}
}
