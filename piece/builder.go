package piece

// Builder accumulates a piece configuration. Every setter returns the same
// builder so calls can be chained. A builder may keep being used after Build;
// built pieces copy its state.
type Builder struct {
	text string
	a    attrs
}

// NewBuilder starts a piece with the given text, stored verbatim.
func NewBuilder(text string) *Builder {
	return &Builder{text: text, a: defaultAttrs()}
}

// WithAbsoluteSize sets the size in pixels. Any value, including zero or a
// negative one, counts as set.
func (b *Builder) WithAbsoluteSize(px int) *Builder {
	b.a.absSize = px
	b.a.absSizeSet = true
	return b
}

func (b *Builder) WithRelativeSize(f float64) *Builder {
	b.a.relSize = f
	return b
}

func (b *Builder) WithTextColor(c Color) *Builder {
	b.a.textColor = c
	return b
}

func (b *Builder) WithBackgroundColor(c Color) *Builder {
	b.a.bgColor = c
	b.a.bgSet = true
	return b
}

// WithoutBackgroundColor drops a previously set background.
func (b *Builder) WithoutBackgroundColor() *Builder {
	b.a.bgColor = 0
	b.a.bgSet = false
	return b
}

func (b *Builder) WithStyle(s FontStyle) *Builder {
	b.a.style = s
	return b
}

func (b *Builder) Underline() *Builder {
	b.a.underline = true
	return b
}

func (b *Builder) Strikethrough() *Builder {
	b.a.strikethrough = true
	return b
}

func (b *Builder) Superscript() *Builder {
	b.a.superscript = true
	return b
}

func (b *Builder) Subscript() *Builder {
	b.a.subscript = true
	return b
}

// Build returns a new Piece snapshot of the current configuration.
func (b *Builder) Build() *Piece {
	return &Piece{text: b.text, a: b.a}
}
