// Command babushka renders a piece document (YAML) or Markdown file as styled
// text: to the terminal, to a PNG, or in an interactive viewer.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/babushka/composer"
	"github.com/iw2rmb/babushka/markup"
	"github.com/iw2rmb/babushka/piece"
	"github.com/iw2rmb/babushka/surface"
)

var errUsage = errors.New("usage: babushka [-ansi] [-png out.png] [-size px] [-v] FILE")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("babushka", flag.ContinueOnError)
	fs.SetOutput(stderr)
	ansi := fs.Bool("ansi", false, "print the styled text and exit")
	pngPath := fs.String("png", "", "write a PNG rendering to `path` and exit")
	size := fs.Int("size", 0, "default text size in pixels")
	verbose := fs.Bool("v", false, "log debug output to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errUsage
	}
	path := fs.Arg(0)

	if *verbose {
		composer.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	load := func() ([]*piece.Piece, error) {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return markup.Parse(path, data, markup.MarkdownOptions{})
	}

	switch {
	case *pngPath != "":
		return writePNG(load, *pngPath, *size)
	case *ansi:
		return printANSI(load, stdout, *size)
	default:
		term := surface.NewTerminal(surface.TerminalOptions{
			Renderer:        lipgloss.DefaultRenderer(),
			DefaultTextSize: *size,
		})
		v := newViewer(load, term, composer.Config{}, lipgloss.NewStyle().Faint(true))
		_, err := tea.NewProgram(v, tea.WithAltScreen()).Run()
		return err
	}
}

func printANSI(load func() ([]*piece.Piece, error), w io.Writer, size int) error {
	pieces, err := load()
	if err != nil {
		return err
	}
	term := surface.NewTerminal(surface.TerminalOptions{
		Writer:          w,
		Renderer:        lipgloss.NewRenderer(w),
		DefaultTextSize: size,
	})
	c := composer.New(term, composer.Config{})
	markup.Populate(c, pieces)
	c.Render()
	return nil
}

func writePNG(load func() ([]*piece.Piece, error), path string, size int) (err error) {
	pieces, err := load()
	if err != nil {
		return err
	}
	im, err := surface.NewImage(surface.ImageOptions{DefaultTextSize: size})
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, im.Close()) }()

	c := composer.New(im, composer.Config{})
	markup.Populate(c, pieces)
	c.Render()

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, f.Close()) }()
	if err := im.EncodePNG(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
