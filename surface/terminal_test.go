package surface

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/babushka/composer"
	"github.com/iw2rmb/babushka/piece"
)

func trueColorRenderer() *lipgloss.Renderer {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)
	return r
}

func TestTerminal_RendersRuns(t *testing.T) {
	r := trueColorRenderer()
	term := NewTerminal(TerminalOptions{Renderer: r})
	c := composer.New(term, composer.Config{})
	c.Append(piece.NewBuilder("Hello ").Build())
	c.Append(piece.NewBuilder("world").WithStyle(piece.Bold).Underline().WithTextColor(piece.Red).Build())
	_ = c.Render()

	plainStyle := r.NewStyle().Foreground(lipgloss.Color("#000000"))
	worldStyle := r.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#ff0000"))
	want := plainStyle.Render("Hello ") + worldStyle.Render("world")
	if got := term.String(); got != want {
		t.Fatalf("ansi:\n got: %q\nwant: %q", got, want)
	}
	if term.Plain() != "Hello world" {
		t.Fatalf("plain=%q", term.Plain())
	}
	if term.Width() != 11 {
		t.Fatalf("width=%d, want 11", term.Width())
	}
}

func TestTerminal_BackgroundAndTransparency(t *testing.T) {
	r := trueColorRenderer()
	term := NewTerminal(TerminalOptions{Renderer: r})
	c := composer.New(term, composer.Config{})
	c.Append(piece.NewBuilder("bg").WithTextColor(piece.Transparent).WithBackgroundColor(piece.Blue).Build())
	c.Append(piece.NewBuilder("clear").WithTextColor(piece.White).WithBackgroundColor(piece.Transparent).Build())
	_ = c.Render()

	want := r.NewStyle().Background(lipgloss.Color("#0000ff")).Render("bg") +
		r.NewStyle().Foreground(lipgloss.Color("#ffffff")).Render("clear")
	if got := term.String(); got != want {
		t.Fatalf("ansi:\n got: %q\nwant: %q", got, want)
	}
}

func TestTerminal_MultiLineRunsAreNotPadded(t *testing.T) {
	term := NewTerminal(TerminalOptions{Renderer: trueColorRenderer()})
	c := composer.New(term, composer.Config{})
	c.Append(piece.NewBuilder("a\nlonger\n").Build())
	_ = c.Render()

	if got := strings.Count(term.String(), "\n"); got != 2 {
		t.Fatalf("newlines=%d, want 2", got)
	}
	if term.Plain() != "a\nlonger\n" {
		t.Fatalf("plain=%q", term.Plain())
	}
	if term.Width() != 6 {
		t.Fatalf("width=%d, want 6", term.Width())
	}
}

func TestTerminal_ScriptForms(t *testing.T) {
	term := NewTerminal(TerminalOptions{})
	c := composer.New(term, composer.Config{})
	c.Append(piece.NewBuilder("x").Build())
	c.Append(piece.NewBuilder("2n").Superscript().Build())
	c.Append(piece.NewBuilder("H").Build())
	c.Append(piece.NewBuilder("2o").Subscript().Build())
	_ = c.Render()

	if got, want := term.Plain(), "x²ⁿH₂ₒ"; got != want {
		t.Fatalf("plain=%q, want %q", got, want)
	}
}

func TestTerminal_ScriptFormsKeepCombiningClusters(t *testing.T) {
	term := NewTerminal(TerminalOptions{})
	c := composer.New(term, composer.Config{})
	c.Append(piece.NewBuilder("e\u0301e2").Subscript().Build())
	_ = c.Render()

	if got, want := term.Plain(), "e\u0301ₑ₂"; got != want {
		t.Fatalf("plain=%q, want %q", got, want)
	}
}

func TestTerminal_WritesAndResets(t *testing.T) {
	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	r.SetColorProfile(termenv.Ascii)
	term := NewTerminal(TerminalOptions{Writer: &buf, Renderer: r})

	c := composer.New(term, composer.Config{})
	c.Append(piece.NewBuilder("plain").Build())
	_ = c.Render()
	if got := buf.String(); got != "plain\n" {
		t.Fatalf("written=%q, want %q", got, "plain\n")
	}

	c.Reset()
	if term.String() != "" || term.Width() != 0 {
		t.Fatalf("terminal not cleared: %q", term.String())
	}
	if got := buf.String(); got != "plain\n" {
		t.Fatalf("reset wrote output: %q", got)
	}
	if term.DefaultTextSize() != composer.DefaultTextSize {
		t.Fatalf("default size=%d", term.DefaultTextSize())
	}
}
