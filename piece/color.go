package piece

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned by ParseColor for unrecognized input.
var ErrInvalidColor = errors.New("piece: invalid color")

// Color is a packed 0xAARRGGBB value.
type Color uint32

const (
	Transparent Color = 0x00000000
	Black       Color = 0xFF000000
	DarkGray    Color = 0xFF444444
	Gray        Color = 0xFF888888
	LightGray   Color = 0xFFCCCCCC
	White       Color = 0xFFFFFFFF
	Red         Color = 0xFFFF0000
	Green       Color = 0xFF00FF00
	Blue        Color = 0xFF0000FF
	Yellow      Color = 0xFFFFFF00
	Cyan        Color = 0xFF00FFFF
	Magenta     Color = 0xFFFF00FF
)

var namedColors = map[string]Color{
	"transparent": Transparent,
	"black":       Black,
	"darkgray":    DarkGray,
	"gray":        Gray,
	"grey":        Gray,
	"lightgray":   LightGray,
	"white":       White,
	"red":         Red,
	"green":       Green,
	"blue":        Blue,
	"yellow":      Yellow,
	"cyan":        Cyan,
	"magenta":     Magenta,
}

// ARGB packs the four channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB returns the opaque color with the given channels.
func RGB(r, g, b uint8) Color {
	return ARGB(0xFF, r, g, b)
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// RGBA converts c to a premultiplied image/color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBAModel.Convert(color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}).(color.RGBA)
}

// Hex returns the #RRGGBB form of c. Alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
}

func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

// ParseColor accepts #RGB, #RRGGBB, #AARRGGBB and the names of the package
// level color constants (case-insensitive).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if len(s) == 9 && s[0] == '#' {
		alpha, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
		}
		rgb, err := ParseColor("#" + s[3:])
		if err != nil {
			return 0, err
		}
		return ARGB(uint8(alpha), rgb.R(), rgb.G(), rgb.B()), nil
	}
	hc, err := colorful.Hex(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := hc.RGB255()
	return RGB(r, g, b), nil
}
