package surface

import (
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/iw2rmb/babushka/composer"
)

// TerminalOptions configures a Terminal. The zero value writes nowhere and,
// having no terminal to detect, renders without color.
type TerminalOptions struct {
	// Writer, when set, receives each non-empty rendering followed by '\n'.
	Writer io.Writer

	// Renderer picks the color profile. Default: lipgloss.NewRenderer over
	// Writer (or io.Discard when Writer is nil).
	Renderer *lipgloss.Renderer

	// DefaultTextSize is reported to the composer. Terminals cannot scale
	// text, so it only ends up in the annotations. Default:
	// composer.DefaultTextSize.
	DefaultTextSize int
}

// Terminal renders artifacts as ANSI-styled text. Sizes are ignored;
// superscript and subscript map characters to their Unicode forms where one
// exists.
type Terminal struct {
	opt TerminalOptions

	ansi  string
	plain string
}

func NewTerminal(opt TerminalOptions) *Terminal {
	if opt.Renderer == nil {
		w := opt.Writer
		if w == nil {
			w = io.Discard
		}
		opt.Renderer = lipgloss.NewRenderer(w)
	}
	if opt.DefaultTextSize == 0 {
		opt.DefaultTextSize = composer.DefaultTextSize
	}
	return &Terminal{opt: opt}
}

func (t *Terminal) DefaultTextSize() int { return t.opt.DefaultTextSize }

func (t *Terminal) SetContent(s composer.Styled) {
	var ansi, plain strings.Builder
	for _, run := range s.Runs {
		text := scriptText(run.Text, run.Attrs)
		plain.WriteString(text)
		ansi.WriteString(renderRun(t.styleFor(run.Attrs), text))
	}
	t.ansi = ansi.String()
	t.plain = plain.String()

	if t.opt.Writer == nil || t.ansi == "" {
		return
	}
	if _, err := io.WriteString(t.opt.Writer, t.ansi+"\n"); err != nil {
		composer.Logger().Warn("surface: terminal write failed", slog.Any("err", err))
	}
}

// String returns the ANSI text of the current content.
func (t *Terminal) String() string { return t.ansi }

// Plain returns the current content without escape sequences.
func (t *Terminal) Plain() string { return t.plain }

// Width returns the display width, in cells, of the widest line of the
// current content.
func (t *Terminal) Width() int {
	w := 0
	for _, line := range strings.Split(t.plain, "\n") {
		w = max(w, runewidth.StringWidth(line))
	}
	return w
}

func (t *Terminal) styleFor(a composer.Attrs) lipgloss.Style {
	st := t.opt.Renderer.NewStyle().
		Bold(a.Style.IsBold()).
		Italic(a.Style.IsItalic()).
		Underline(a.Underline).
		Strikethrough(a.Strikethrough)
	if a.Foreground.A() != 0 {
		st = st.Foreground(lipgloss.Color(a.Foreground.Hex()))
	}
	if a.HasBackground && a.Background.A() != 0 {
		st = st.Background(lipgloss.Color(a.Background.Hex()))
	}
	return st
}

// renderRun styles each line separately so lipgloss does not pad lines of a
// multi-line run to a common width.
func renderRun(st lipgloss.Style, text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = st.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
