package markup

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/iw2rmb/babushka/piece"
)

// headingScales are relative sizes for heading levels 1..6.
var headingScales = [...]float64{2.0, 1.5, 1.17, 1.0, 0.83, 0.67}

// MarkdownOptions configures ParseMarkdown. The zero value is ready to use.
type MarkdownOptions struct {
	// TextColor of plain text. Default: piece.Black.
	TextColor piece.Color
	// LinkColor of links and autolinks. Default: piece.Blue.
	LinkColor piece.Color
	// CodeBackground behind code spans and code blocks. Default: piece.LightGray.
	CodeBackground piece.Color
	// BaseSize, when non-zero, is the absolute size of every piece. Zero
	// leaves sizes unset so the surface default applies.
	BaseSize int
}

func (o MarkdownOptions) withDefaults() MarkdownOptions {
	if o.TextColor == 0 {
		o.TextColor = piece.Black
	}
	if o.LinkColor == 0 {
		o.LinkColor = piece.Blue
	}
	if o.CodeBackground == 0 {
		o.CodeBackground = piece.LightGray
	}
	return o
}

// inline is the style in effect while walking inline nodes.
type inline struct {
	bold, italic bool
	strike       bool
	underline    bool
	sup, sub     bool
	color        piece.Color
	bg           piece.Color
	hasBG        bool
	scale        float64
}

type mdState struct {
	opts   MarkdownOptions
	source []byte

	out     []*piece.Piece
	pending strings.Builder
	style   inline
	hasText bool
}

// ParseMarkdown turns Markdown into pieces. Emphasis becomes italic, strong
// emphasis bold, ~~text~~ strikethrough, links underlined in LinkColor, code
// on CodeBackground, and headings bold with a larger relative size. Raw
// <sup>, <sub> and <u> tags toggle superscript, subscript and underline.
// Blocks are separated by a blank line; list items by a newline and start
// with a bullet. Adjacent text with the same style is merged into one piece.
func ParseMarkdown(src []byte, opts MarkdownOptions) []*piece.Piece {
	md := goldmark.New(goldmark.WithExtensions(extension.Strikethrough))
	root := md.Parser().Parse(text.NewReader(src))

	st := &mdState{opts: opts.withDefaults(), source: src}
	st.style = st.base()
	first := true
	st.blocks(root, &first)
	st.flush()
	return st.out
}

func (st *mdState) base() inline {
	return inline{color: st.opts.TextColor, scale: 1}
}

func (st *mdState) blocks(node ast.Node, first *bool) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Paragraph, *ast.TextBlock:
			st.separate(first)
			st.inlines(n, st.base())
		case *ast.Heading:
			st.separate(first)
			s := st.base()
			s.bold = true
			if n.Level >= 1 && n.Level <= len(headingScales) {
				s.scale = headingScales[n.Level-1]
			}
			st.inlines(n, s)
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			st.separate(first)
			s := st.base()
			s.bg, s.hasBG = st.opts.CodeBackground, true
			lines := n.Lines()
			var code bytes.Buffer
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				code.Write(seg.Value(st.source))
			}
			st.emit(strings.TrimRight(code.String(), "\n"), s)
		case *ast.ThematicBreak:
			st.separate(first)
			st.emit("───", st.base())
		case *ast.ListItem:
			switch {
			case *first:
			case n.PreviousSibling() == nil:
				st.emit("\n\n", st.base())
			default:
				st.emit("\n", st.base())
			}
			*first = false
			st.emit("• ", st.base())
			itemFirst := true
			st.blocks(n, &itemFirst)
		default:
			st.blocks(n, first)
		}
	}
}

// separate writes the blank line between two blocks. The first block of a
// list item follows its bullet directly.
func (st *mdState) separate(first *bool) {
	if !*first {
		st.emit("\n\n", st.base())
	}
	*first = false
}

func (st *mdState) inlines(node ast.Node, s inline) {
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.Text:
			st.emit(string(n.Segment.Value(st.source)), s)
			if n.SoftLineBreak() {
				st.emit(" ", s)
			}
			if n.HardLineBreak() {
				st.emit("\n", s)
			}
		case *ast.String:
			st.emit(string(n.Value), s)
		case *ast.CodeSpan:
			cs := s
			cs.bg, cs.hasBG = st.opts.CodeBackground, true
			st.emit(plainText(n, st.source), cs)
		case *ast.Emphasis:
			es := s
			if n.Level >= 2 {
				es.bold = true
			} else {
				es.italic = true
			}
			st.inlines(n, es)
		case *extast.Strikethrough:
			ss := s
			ss.strike = true
			st.inlines(n, ss)
		case *ast.Link:
			ls := s
			ls.underline, ls.color = true, st.opts.LinkColor
			st.inlines(n, ls)
		case *ast.AutoLink:
			ls := s
			ls.underline, ls.color = true, st.opts.LinkColor
			st.emit(string(n.URL(st.source)), ls)
		case *ast.RawHTML:
			s = st.rawTag(n, s)
		default:
			st.inlines(n, s)
		}
	}
}

// rawTag applies <sup>, <sub> and <u> and their closing tags to the style of
// the following siblings. Other HTML is dropped.
func (st *mdState) rawTag(n *ast.RawHTML, s inline) inline {
	var tag strings.Builder
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		tag.Write(seg.Value(st.source))
	}
	switch strings.ToLower(strings.TrimSpace(tag.String())) {
	case "<sup>":
		s.sup = true
	case "</sup>":
		s.sup = false
	case "<sub>":
		s.sub = true
	case "</sub>":
		s.sub = false
	case "<u>":
		s.underline = true
	case "</u>":
		s.underline = false
	}
	return s
}

func (st *mdState) emit(txt string, s inline) {
	if txt == "" {
		return
	}
	if st.hasText && s != st.style {
		st.flush()
	}
	st.style = s
	st.hasText = true
	st.pending.WriteString(txt)
}

func (st *mdState) flush() {
	if !st.hasText {
		return
	}
	s := st.style
	b := piece.NewBuilder(st.pending.String()).
		WithTextColor(s.color).
		WithRelativeSize(s.scale)
	if st.opts.BaseSize != 0 {
		b.WithAbsoluteSize(st.opts.BaseSize)
	}
	switch {
	case s.bold && s.italic:
		b.WithStyle(piece.BoldItalic)
	case s.bold:
		b.WithStyle(piece.Bold)
	case s.italic:
		b.WithStyle(piece.Italic)
	}
	if s.hasBG {
		b.WithBackgroundColor(s.bg)
	}
	if s.underline {
		b.Underline()
	}
	if s.strike {
		b.Strikethrough()
	}
	if s.sup {
		b.Superscript()
	}
	if s.sub {
		b.Subscript()
	}
	st.out = append(st.out, b.Build())
	st.pending.Reset()
	st.hasText = false
}

func plainText(node ast.Node, source []byte) string {
	var b strings.Builder
	var walk func(ast.Node)
	walk = func(n ast.Node) {
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
		case *ast.String:
			b.Write(t.Value)
		}
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			walk(child)
		}
	}
	walk(node)
	return b.String()
}
