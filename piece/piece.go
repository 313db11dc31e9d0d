package piece

// DefaultRelativeSize is the relative size multiplier of a piece that never
// had one set.
const DefaultRelativeSize = 1.0

// attrs is the full style configuration shared by Builder and Piece.
type attrs struct {
	absSize    int
	absSizeSet bool
	relSize    float64

	textColor Color
	bgColor   Color
	bgSet     bool

	style FontStyle

	underline     bool
	strikethrough bool
	superscript   bool
	subscript     bool
}

func defaultAttrs() attrs {
	return attrs{
		relSize:   DefaultRelativeSize,
		textColor: Black,
		style:     Normal,
	}
}

// Piece is one contiguous, independently styled run of text.
//
// Only the text, the text color and the absolute size change after Build:
// the first two through SetText and SetTextColor, the last when a composer
// resolves an unset size against its surface default.
type Piece struct {
	text string
	a    attrs
}

func (p *Piece) Text() string { return p.text }

// AbsoluteSize returns the pixel size and whether it is set. An unset size
// inherits the rendering surface default at render time.
func (p *Piece) AbsoluteSize() (int, bool) { return p.a.absSize, p.a.absSizeSet }

func (p *Piece) RelativeSize() float64 { return p.a.relSize }

func (p *Piece) TextColor() Color { return p.a.textColor }

// BackgroundColor returns the background color and whether one is set.
func (p *Piece) BackgroundColor() (Color, bool) { return p.a.bgColor, p.a.bgSet }

func (p *Piece) Style() FontStyle { return p.a.style }

func (p *Piece) Underline() bool     { return p.a.underline }
func (p *Piece) Strikethrough() bool { return p.a.strikethrough }
func (p *Piece) Superscript() bool   { return p.a.superscript }
func (p *Piece) Subscript() bool     { return p.a.subscript }

// SetText replaces the text in place. It does not re-render.
func (p *Piece) SetText(text string) { p.text = text }

// SetTextColor replaces the text color in place. It does not re-render.
func (p *Piece) SetTextColor(c Color) { p.a.textColor = c }

// ResetAbsoluteSize returns the absolute size to unset, so the next render
// resolves it against the surface default again.
func (p *Piece) ResetAbsoluteSize() {
	p.a.absSize = 0
	p.a.absSizeSet = false
}

// ResolveAbsoluteSize returns the absolute size, first storing def as the
// size if none is set. Later calls return the stored value regardless of def.
func (p *Piece) ResolveAbsoluteSize(def int) int {
	if !p.a.absSizeSet {
		p.a.absSize = def
		p.a.absSizeSet = true
	}
	return p.a.absSize
}

// Clone returns an independent copy of p.
func (p *Piece) Clone() *Piece {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
