package composer

import "github.com/iw2rmb/babushka/piece"

// Span is a half-open offset range [Start, End) into Styled.Text, counted in
// Styled.Unit.
type Span struct {
	Start int
	End   int
}

func (s Span) Len() int { return s.End - s.Start }

func (s Span) IsEmpty() bool { return s.End <= s.Start }

// Kind names the style effect an Annotation applies.
type Kind uint8

const (
	KindSubscript Kind = iota
	KindSuperscript
	KindStrikethrough
	KindUnderline
	KindFontStyle
	KindAbsoluteSize
	KindRelativeSize
	KindForeground
	KindBackground
)

func (k Kind) String() string {
	switch k {
	case KindSubscript:
		return "subscript"
	case KindSuperscript:
		return "superscript"
	case KindStrikethrough:
		return "strikethrough"
	case KindUnderline:
		return "underline"
	case KindFontStyle:
		return "font_style"
	case KindAbsoluteSize:
		return "absolute_size"
	case KindRelativeSize:
		return "relative_size"
	case KindForeground:
		return "foreground"
	case KindBackground:
		return "background"
	default:
		return "unknown"
	}
}

// Annotation applies one style effect over a span. Only the value field that
// matches Kind is meaningful; flag kinds carry no value.
type Annotation struct {
	Span Span
	Kind Kind

	Style piece.FontStyle // KindFontStyle
	Size  int             // KindAbsoluteSize
	Scale float64         // KindRelativeSize
	Color piece.Color     // KindForeground, KindBackground
}

// Attrs is the resolved style of one piece at render time.
type Attrs struct {
	Subscript     bool
	Superscript   bool
	Strikethrough bool
	Underline     bool

	Style      piece.FontStyle
	Size       int
	Scale      float64
	Foreground piece.Color

	Background    piece.Color
	HasBackground bool
}

// Run is the rendered form of one piece: its text, where that text sits in
// Styled.Text, and its resolved style.
type Run struct {
	Text string

	// ByteStart and ByteEnd locate Text inside Styled.Text regardless of Unit.
	ByteStart int
	ByteEnd   int

	Span  Span
	Attrs Attrs
}

// Styled is the artifact produced by Render: the concatenated text plus the
// style annotations over it.
type Styled struct {
	Text        string
	Unit        Unit
	Annotations []Annotation
	Runs        []Run
}

// IsEmpty reports whether s has no text and no annotations.
func (s Styled) IsEmpty() bool {
	return s.Text == "" && len(s.Annotations) == 0
}

// OfKind returns the annotations of kind k in emission order.
func (s Styled) OfKind(k Kind) []Annotation {
	var out []Annotation
	for _, a := range s.Annotations {
		if a.Kind == k {
			out = append(out, a)
		}
	}
	return out
}

// AnnotationsAt returns the annotations whose span equals sp.
func (s Styled) AnnotationsAt(sp Span) []Annotation {
	var out []Annotation
	for _, a := range s.Annotations {
		if a.Span == sp {
			out = append(out, a)
		}
	}
	return out
}
