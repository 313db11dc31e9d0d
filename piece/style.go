package piece

import "fmt"

// FontStyle selects the typeface variant of a piece.
type FontStyle int

const (
	Normal FontStyle = iota
	Bold
	Italic
	BoldItalic
)

// IsBold reports whether s carries the bold bit.
func (s FontStyle) IsBold() bool { return s&Bold != 0 }

// IsItalic reports whether s carries the italic bit.
func (s FontStyle) IsItalic() bool { return s&Italic != 0 }

func (s FontStyle) String() string {
	switch s {
	case Normal:
		return "normal"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "bold_italic"
	default:
		return fmt.Sprintf("FontStyle(%d)", int(s))
	}
}

// ParseFontStyle maps the String form back to a FontStyle.
func ParseFontStyle(s string) (FontStyle, bool) {
	switch s {
	case "", "normal":
		return Normal, true
	case "bold":
		return Bold, true
	case "italic":
		return Italic, true
	case "bold_italic", "bold-italic", "bolditalic":
		return BoldItalic, true
	}
	return Normal, false
}
