package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/babushka/composer"
	"github.com/iw2rmb/babushka/markup"
	"github.com/iw2rmb/babushka/piece"
	"github.com/iw2rmb/babushka/surface"
)

var palette = []piece.Color{piece.Red, piece.Green, piece.Blue, piece.Magenta, piece.Black}

// viewer shows a composed document and lets the user recolor, reset and
// reload it.
type viewer struct {
	load func() ([]*piece.Piece, error)

	comp *composer.Composer
	term *surface.Terminal
	keys keyMap

	statusStyle lipgloss.Style
	next        int
	status      string
}

func newViewer(load func() ([]*piece.Piece, error), term *surface.Terminal, cfg composer.Config, statusStyle lipgloss.Style) viewer {
	v := viewer{
		load:        load,
		comp:        composer.New(term, cfg),
		term:        term,
		keys:        defaultKeyMap(),
		statusStyle: statusStyle,
	}
	v.reload()
	return v
}

func (v *viewer) reload() {
	pieces, err := v.load()
	if err != nil {
		v.status = "load failed: " + err.Error()
		return
	}
	v.comp.Reset()
	markup.Populate(v.comp, pieces)
	out := v.comp.Render()
	v.status = fmt.Sprintf("%d pieces, %d annotations", v.comp.Count(), len(out.Annotations))
}

func (v viewer) Init() tea.Cmd { return nil }

func (v viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}
	switch {
	case key.Matches(km, v.keys.Quit):
		return v, tea.Quit
	case key.Matches(km, v.keys.Recolor):
		col := palette[v.next%len(palette)]
		v.next++
		v.comp.RecolorAll(col)
		v.status = "recolored " + col.Hex()
	case key.Matches(km, v.keys.Reset):
		v.comp.Reset()
		v.status = "reset"
	case key.Matches(km, v.keys.Reload):
		v.reload()
	}
	return v, nil
}

func (v viewer) View() string {
	var help []string
	for _, b := range v.keys.help() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	return v.term.String() + "\n\n" +
		v.statusStyle.Render(v.status+" · "+strings.Join(help, " · "))
}
