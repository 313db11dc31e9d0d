package composer

import (
	"log/slog"
	"strings"

	"github.com/iw2rmb/babushka/piece"
)

// Render concatenates the piece texts in order, annotates each piece's span
// with its style, hands the result to the bound surface (if any) and returns
// it. Nil pieces contribute no text and no annotations.
func (c *Composer) Render() Styled {
	total := 0
	for _, p := range c.pieces {
		if p != nil {
			total += len(p.Text())
		}
	}

	var sb strings.Builder
	sb.Grow(total)
	for _, p := range c.pieces {
		if p != nil {
			sb.WriteString(p.Text())
		}
	}

	out := Styled{
		Text: sb.String(),
		Unit: c.cfg.Unit,
	}
	if len(c.pieces) > 0 {
		out.Annotations = make([]Annotation, 0, len(c.pieces)*5)
		out.Runs = make([]Run, 0, len(c.pieces))
	}

	cursor, byteCursor := 0, 0
	resolved := 0
	for _, p := range c.pieces {
		if p == nil {
			continue
		}
		text := p.Text()
		span := Span{Start: cursor, End: cursor + c.cfg.Unit.Len(text)}
		if _, ok := p.AbsoluteSize(); !ok {
			resolved++
		}
		attrs := c.resolveAttrs(p)
		out.Annotations = appendAnnotations(out.Annotations, span, attrs)
		out.Runs = append(out.Runs, Run{
			Text:      text,
			ByteStart: byteCursor,
			ByteEnd:   byteCursor + len(text),
			Span:      span,
			Attrs:     attrs,
		})
		cursor = span.End
		byteCursor += len(text)
	}

	Logger().Debug("composer: rendered",
		slog.Int("pieces", len(c.pieces)),
		slog.Int("bytes", len(out.Text)),
		slog.Int("annotations", len(out.Annotations)),
		slog.Int("resolved_sizes", resolved),
		slog.String("unit", c.cfg.Unit.String()),
	)

	c.last = out
	c.version++
	if c.surface != nil {
		c.surface.SetContent(out)
	}
	return out
}

// Reset clears the sequence and the rendered output, and clears the surface.
func (c *Composer) Reset() {
	c.pieces = nil
	c.last = Styled{Unit: c.cfg.Unit}
	c.version++
	if c.surface != nil {
		c.surface.SetContent(c.last)
	}
}

// RecolorAll sets the text color of every piece to col and renders.
func (c *Composer) RecolorAll(col piece.Color) Styled {
	for _, p := range c.pieces {
		if p != nil {
			p.SetTextColor(col)
		}
	}
	return c.Render()
}

func (c *Composer) defaultTextSize() int {
	if c.surface != nil {
		return c.surface.DefaultTextSize()
	}
	return c.cfg.DefaultTextSize
}

// resolveAttrs reads the style of p, resolving an unset absolute size against
// the surface default and caching it on p.
func (c *Composer) resolveAttrs(p *piece.Piece) Attrs {
	size, ok := p.AbsoluteSize()
	if !ok {
		size = p.ResolveAbsoluteSize(c.defaultTextSize())
	}
	bg, hasBG := p.BackgroundColor()
	return Attrs{
		Subscript:     p.Subscript(),
		Superscript:   p.Superscript(),
		Strikethrough: p.Strikethrough(),
		Underline:     p.Underline(),
		Style:         p.Style(),
		Size:          size,
		Scale:         p.RelativeSize(),
		Foreground:    p.TextColor(),
		Background:    bg,
		HasBackground: hasBG,
	}
}

// appendAnnotations emits the annotations of one piece in a fixed order.
func appendAnnotations(dst []Annotation, span Span, a Attrs) []Annotation {
	if a.Subscript {
		dst = append(dst, Annotation{Span: span, Kind: KindSubscript})
	}
	if a.Superscript {
		dst = append(dst, Annotation{Span: span, Kind: KindSuperscript})
	}
	if a.Strikethrough {
		dst = append(dst, Annotation{Span: span, Kind: KindStrikethrough})
	}
	if a.Underline {
		dst = append(dst, Annotation{Span: span, Kind: KindUnderline})
	}
	dst = append(dst,
		Annotation{Span: span, Kind: KindFontStyle, Style: a.Style},
		Annotation{Span: span, Kind: KindAbsoluteSize, Size: a.Size},
		Annotation{Span: span, Kind: KindRelativeSize, Scale: a.Scale},
		Annotation{Span: span, Kind: KindForeground, Color: a.Foreground},
	)
	if a.HasBackground {
		dst = append(dst, Annotation{Span: span, Kind: KindBackground, Color: a.Background})
	}
	return dst
}
