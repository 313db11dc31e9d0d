package surface

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/iw2rmb/babushka/composer"
	"github.com/iw2rmb/babushka/piece"
)

// ErrNoImage is returned by EncodePNG before any content was rendered.
var ErrNoImage = errors.New("surface: no image rendered")

// ImageOptions configures an Image. The zero value is ready to use.
type ImageOptions struct {
	// DefaultTextSize in pixels. Default: composer.DefaultTextSize.
	DefaultTextSize int

	// Padding around the text in pixels. Default: 4.
	Padding int

	// Canvas fills the image before drawing. Default: piece.White.
	// TransparentCanvas leaves the canvas unfilled instead.
	Canvas            piece.Color
	TransparentCanvas bool
}

// Image rasterizes artifacts onto an RGBA image using the Go fonts. The
// pixel size of a run is its absolute size times its relative size.
type Image struct {
	opt   ImageOptions
	fonts [4]*opentype.Font
	faces map[faceKey]font.Face

	img *image.RGBA
}

// maxPixelSize bounds the rasterized size of a run. Larger runs are not drawn.
const maxPixelSize = 4096

type faceKey struct {
	variant int
	px      float64
}

// NewImage parses the Go fonts and returns an empty Image surface.
func NewImage(opt ImageOptions) (*Image, error) {
	if opt.DefaultTextSize == 0 {
		opt.DefaultTextSize = composer.DefaultTextSize
	}
	if opt.Padding == 0 {
		opt.Padding = 4
	}
	if opt.Canvas == 0 {
		opt.Canvas = piece.White
	}

	im := &Image{opt: opt, faces: make(map[faceKey]font.Face)}
	for i, ttf := range [][]byte{goregular.TTF, gobold.TTF, goitalic.TTF, gobolditalic.TTF} {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return nil, fmt.Errorf("surface: parse go font %d: %w", i, err)
		}
		im.fonts[i] = f
	}
	return im, nil
}

func (im *Image) DefaultTextSize() int { return im.opt.DefaultTextSize }

// Image returns the current raster, or nil before the first SetContent.
func (im *Image) Image() *image.RGBA { return im.img }

// EncodePNG writes the current raster as PNG.
func (im *Image) EncodePNG(w io.Writer) error {
	if im.img == nil {
		return ErrNoImage
	}
	return png.Encode(w, im.img)
}

// Close releases cached font faces.
func (im *Image) Close() error {
	var errs []error
	for k, f := range im.faces {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
		delete(im.faces, k)
	}
	return errors.Join(errs...)
}

// box is one drawable piece of a run on one line.
type box struct {
	text  string
	face  font.Face
	attrs composer.Attrs

	width   int
	ascent  int
	descent int
	shift   int // baseline offset; negative raises
}

type line struct {
	boxes   []box
	width   int
	ascent  int
	descent int
}

func (im *Image) SetContent(s composer.Styled) {
	if s.Text == "" {
		im.img = image.NewRGBA(image.Rect(0, 0, 0, 0))
		return
	}

	lines := im.layout(s)
	pad := im.opt.Padding
	width, height := 0, 0
	for _, ln := range lines {
		width = max(width, ln.width)
		height += ln.ascent + ln.descent
	}

	im.img = image.NewRGBA(image.Rect(0, 0, width+2*pad, height+2*pad))
	if !im.opt.TransparentCanvas {
		draw.Draw(im.img, im.img.Bounds(), image.NewUniform(im.opt.Canvas.RGBA()), image.Point{}, draw.Src)
	}

	y := pad
	for _, ln := range lines {
		baseline := y + ln.ascent
		x := pad
		for _, b := range ln.boxes {
			im.drawBox(b, x, y, y+ln.ascent+ln.descent, baseline)
			x += b.width
		}
		y += ln.ascent + ln.descent
	}
}

func (im *Image) layout(s composer.Styled) []line {
	lines := []line{{}}
	for _, run := range s.Runs {
		face := im.face(run.Attrs)
		for i, part := range strings.Split(run.Text, "\n") {
			if i > 0 {
				lines = append(lines, line{})
			}
			b := measureBox(part, face, run.Attrs)
			cur := &lines[len(lines)-1]
			cur.boxes = append(cur.boxes, b)
			cur.width += b.width
			cur.ascent = max(cur.ascent, b.ascent-b.shift)
			cur.descent = max(cur.descent, b.descent+b.shift)
		}
	}
	// Empty lines keep the height of the default size.
	fallback := im.face(composer.Attrs{Size: im.opt.DefaultTextSize, Scale: 1})
	for i := range lines {
		if lines[i].ascent+lines[i].descent == 0 && fallback != nil {
			m := fallback.Metrics()
			lines[i].ascent = m.Ascent.Ceil()
			lines[i].descent = m.Descent.Ceil()
		}
	}
	return lines
}

func measureBox(text string, face font.Face, a composer.Attrs) box {
	b := box{text: text, face: face, attrs: a}
	if face == nil {
		return b
	}
	m := face.Metrics()
	b.ascent = m.Ascent.Ceil()
	b.descent = m.Descent.Ceil()
	b.width = font.MeasureString(face, text).Ceil()
	if a.Subscript {
		b.shift += b.ascent / 4
	}
	if a.Superscript {
		b.shift -= b.ascent / 2
	}
	return b
}

func (im *Image) drawBox(b box, x, top, bottom, baseline int) {
	if b.attrs.HasBackground && b.width > 0 {
		r := image.Rect(x, top, x+b.width, bottom)
		draw.Draw(im.img, r, image.NewUniform(b.attrs.Background.RGBA()), image.Point{}, draw.Over)
	}
	if b.face == nil || b.text == "" {
		return
	}

	fg := image.NewUniform(b.attrs.Foreground.RGBA())
	base := baseline + b.shift
	d := &font.Drawer{
		Dst:  im.img,
		Src:  fg,
		Face: b.face,
		Dot:  fixed.P(x, base),
	}
	d.DrawString(b.text)

	thick := max(1, b.ascent/12)
	if b.attrs.Underline {
		y := base + max(1, b.descent/3)
		draw.Draw(im.img, image.Rect(x, y, x+b.width, y+thick), fg, image.Point{}, draw.Over)
	}
	if b.attrs.Strikethrough {
		y := base - b.ascent*3/10
		draw.Draw(im.img, image.Rect(x, y, x+b.width, y+thick), fg, image.Point{}, draw.Over)
	}
}

// face returns the cached face for a, or nil when the pixel size is not
// drawable.
func (im *Image) face(a composer.Attrs) font.Face {
	px := float64(a.Size) * a.Scale
	if !(px >= 1) {
		return nil
	}
	if px > maxPixelSize {
		composer.Logger().Warn("surface: text size too large to draw",
			slog.Float64("px", px),
			slog.Int("max", maxPixelSize),
		)
		return nil
	}
	variant := 0
	if a.Style.IsBold() {
		variant |= 1
	}
	if a.Style.IsItalic() {
		variant |= 2
	}
	key := faceKey{variant: variant, px: px}
	if f, ok := im.faces[key]; ok {
		return f
	}
	f, err := opentype.NewFace(im.fonts[variant], &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		composer.Logger().Warn("surface: font face unavailable",
			slog.Float64("px", px),
			slog.Int("variant", variant),
			slog.Any("err", err),
		)
		return nil
	}
	im.faces[key] = f
	return f
}
