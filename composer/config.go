package composer

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/iw2rmb/babushka/internal/grapheme"
)

// DefaultTextSize is the size, in pixels, given to pieces without an absolute
// size when the composer has no surface and Config.DefaultTextSize is zero.
const DefaultTextSize = 14

// Unit selects how span offsets count text.
type Unit uint8

const (
	// UnitByte counts UTF-8 bytes, so spans slice Styled.Text directly.
	UnitByte Unit = iota
	// UnitRune counts Unicode code points.
	UnitRune
	// UnitUTF16 counts UTF-16 code units.
	UnitUTF16
	// UnitGrapheme counts user-perceived characters.
	UnitGrapheme
)

func (u Unit) String() string {
	switch u {
	case UnitByte:
		return "byte"
	case UnitRune:
		return "rune"
	case UnitUTF16:
		return "utf16"
	case UnitGrapheme:
		return "grapheme"
	default:
		return "unknown"
	}
}

// Len returns the length of text measured in u. Unknown units count bytes.
func (u Unit) Len(text string) int {
	switch u {
	case UnitRune:
		return utf8.RuneCountInString(text)
	case UnitUTF16:
		n := 0
		for _, r := range text {
			if l := utf16.RuneLen(r); l > 0 {
				n += l
			} else {
				n++
			}
		}
		return n
	case UnitGrapheme:
		return grapheme.Count(text)
	default:
		return len(text)
	}
}

// Config configures a Composer. The zero value is ready to use.
type Config struct {
	// Unit used for annotation spans. Default: UnitByte.
	Unit Unit

	// DefaultTextSize resolves unset piece sizes when no surface is bound.
	// Zero means DefaultTextSize.
	DefaultTextSize int
}
