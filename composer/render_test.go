package composer

import (
	"reflect"
	"strings"
	"testing"

	"github.com/iw2rmb/babushka/piece"
)

func TestRender_HelloWorld(t *testing.T) {
	s := &stubSurface{size: 14}
	c := New(s, Config{})
	c.Append(plain("Hello "))
	c.Append(piece.NewBuilder("world").WithStyle(piece.Bold).Underline().WithTextColor(piece.Red).Build())

	out := c.Render()
	if out.Text != "Hello world" {
		t.Fatalf("text=%q, want %q", out.Text, "Hello world")
	}

	first := Span{Start: 0, End: 6}
	wantFirst := []Annotation{
		{Span: first, Kind: KindFontStyle, Style: piece.Normal},
		{Span: first, Kind: KindAbsoluteSize, Size: 14},
		{Span: first, Kind: KindRelativeSize, Scale: 1.0},
		{Span: first, Kind: KindForeground, Color: piece.Black},
	}
	if got := out.AnnotationsAt(first); !reflect.DeepEqual(got, wantFirst) {
		t.Fatalf("annotations over [0,6):\n got: %+v\nwant: %+v", got, wantFirst)
	}

	second := Span{Start: 6, End: 11}
	wantSecond := []Annotation{
		{Span: second, Kind: KindUnderline},
		{Span: second, Kind: KindFontStyle, Style: piece.Bold},
		{Span: second, Kind: KindAbsoluteSize, Size: 14},
		{Span: second, Kind: KindRelativeSize, Scale: 1.0},
		{Span: second, Kind: KindForeground, Color: piece.Red},
	}
	if got := out.AnnotationsAt(second); !reflect.DeepEqual(got, wantSecond) {
		t.Fatalf("annotations over [6,11):\n got: %+v\nwant: %+v", got, wantSecond)
	}
	if len(out.Annotations) != len(wantFirst)+len(wantSecond) {
		t.Fatalf("annotation count=%d, want %d", len(out.Annotations), len(wantFirst)+len(wantSecond))
	}

	if len(s.contents) != 1 || !reflect.DeepEqual(s.contents[0], out) {
		t.Fatalf("surface did not receive the rendered artifact")
	}
}

func TestRender_ConcatenationAndContiguousSpans(t *testing.T) {
	texts := []string{"", "ab", "", "c", "déf", "\n", ""}
	for _, unit := range []Unit{UnitByte, UnitRune, UnitUTF16, UnitGrapheme} {
		c := New(nil, Config{Unit: unit})
		for _, s := range texts {
			c.Append(plain(s))
		}
		out := c.Render()

		if want := strings.Join(texts, ""); out.Text != want {
			t.Fatalf("%v: text=%q, want %q", unit, out.Text, want)
		}
		if len(out.Runs) != len(texts) {
			t.Fatalf("%v: runs=%d, want %d", unit, len(out.Runs), len(texts))
		}

		cursor := 0
		for i, r := range out.Runs {
			want := Span{Start: cursor, End: cursor + unit.Len(texts[i])}
			if r.Span != want {
				t.Fatalf("%v: run %d span=%v, want %v", unit, i, r.Span, want)
			}
			if out.Text[r.ByteStart:r.ByteEnd] != texts[i] || r.Text != texts[i] {
				t.Fatalf("%v: run %d bytes [%d,%d) do not hold %q", unit, i, r.ByteStart, r.ByteEnd, texts[i])
			}
			cursor = want.End
		}
		if cursor != unit.Len(out.Text) {
			t.Fatalf("%v: spans cover %d, want %d", unit, cursor, unit.Len(out.Text))
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	c := New(&stubSurface{size: 12}, Config{})
	c.Append(piece.NewBuilder("a").Subscript().Superscript().Build())
	c.Append(piece.NewBuilder("bc").WithBackgroundColor(piece.Yellow).WithRelativeSize(1.5).Build())

	first := c.Render()
	second := c.Render()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("renders differ:\n first: %+v\nsecond: %+v", first, second)
	}
	if !reflect.DeepEqual(c.Last(), second) {
		t.Fatalf("Last() does not match the latest render")
	}
}

func TestRender_ResolvesDefaultSizeOnce(t *testing.T) {
	s := &stubSurface{size: 16}
	c := New(s, Config{})
	p := plain("x")
	c.Append(p)
	c.Append(piece.NewBuilder("y").WithAbsoluteSize(30).Build())

	out := c.Render()
	sizes := out.OfKind(KindAbsoluteSize)
	if len(sizes) != 2 || sizes[0].Size != 16 || sizes[1].Size != 30 {
		t.Fatalf("sizes=%+v, want 16 then 30", sizes)
	}
	if got, ok := p.AbsoluteSize(); !ok || got != 16 {
		t.Fatalf("resolved size not cached on piece: (%d,%v)", got, ok)
	}
	if s.sizeRead != 1 {
		t.Fatalf("default size read %d times, want 1", s.sizeRead)
	}

	s.size = 40
	out = c.Render()
	if got := out.OfKind(KindAbsoluteSize)[0].Size; got != 16 {
		t.Fatalf("second render size=%d, want cached 16", got)
	}
	if s.sizeRead != 1 {
		t.Fatalf("default size re-read after caching")
	}

	p.ResetAbsoluteSize()
	out = c.Render()
	if got := out.OfKind(KindAbsoluteSize)[0].Size; got != 40 {
		t.Fatalf("size after reset=%d, want 40", got)
	}
}

func TestRender_HeadlessDefaultSize(t *testing.T) {
	c := New(nil, Config{})
	c.Append(plain("x"))
	if got := c.Render().OfKind(KindAbsoluteSize)[0].Size; got != DefaultTextSize {
		t.Fatalf("headless size=%d, want %d", got, DefaultTextSize)
	}

	c = New(nil, Config{DefaultTextSize: 9})
	c.Append(plain("x"))
	if got := c.Render().OfKind(KindAbsoluteSize)[0].Size; got != 9 {
		t.Fatalf("configured headless size=%d, want 9", got)
	}
}

func TestRender_BackgroundOnlyWhenSet(t *testing.T) {
	c := New(nil, Config{})
	c.Append(plain("none"))
	c.Append(piece.NewBuilder("white").WithBackgroundColor(piece.White).Build())

	bgs := c.Render().OfKind(KindBackground)
	if len(bgs) != 1 {
		t.Fatalf("background annotations=%d, want 1", len(bgs))
	}
	if bgs[0].Span != (Span{Start: 4, End: 9}) || bgs[0].Color != piece.White {
		t.Fatalf("background=%+v", bgs[0])
	}
}

func TestRender_DecorationsAreIndependent(t *testing.T) {
	c := New(nil, Config{})
	c.Append(piece.NewBuilder("deco").Underline().Strikethrough().Build())
	out := c.Render()

	flags := []Kind{KindSubscript, KindSuperscript, KindStrikethrough, KindUnderline}
	var got []Kind
	for _, a := range out.Annotations {
		for _, k := range flags {
			if a.Kind == k {
				if a.Span != (Span{Start: 0, End: 4}) {
					t.Fatalf("%v span=%v, want full piece", k, a.Span)
				}
				got = append(got, k)
			}
		}
	}
	want := []Kind{KindStrikethrough, KindUnderline}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("decorations=%v, want %v", got, want)
	}
}

func TestRender_EmissionOrder(t *testing.T) {
	c := New(nil, Config{})
	c.Append(piece.NewBuilder("all").
		Subscript().Superscript().Strikethrough().Underline().
		WithBackgroundColor(piece.Cyan).
		Build())

	var got []Kind
	for _, a := range c.Render().Annotations {
		got = append(got, a.Kind)
	}
	want := []Kind{
		KindSubscript, KindSuperscript, KindStrikethrough, KindUnderline,
		KindFontStyle, KindAbsoluteSize, KindRelativeSize, KindForeground, KindBackground,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("order=%v, want %v", got, want)
	}
}

func TestRender_Empty(t *testing.T) {
	s := &stubSurface{}
	c := New(s, Config{})
	out := c.Render()
	if !out.IsEmpty() || len(out.Runs) != 0 {
		t.Fatalf("empty render=%+v", out)
	}
	if s.sizeRead != 0 {
		t.Fatalf("empty render read the default size")
	}
}

func TestRender_DegenerateSpansAreKept(t *testing.T) {
	c := New(nil, Config{})
	c.Append(piece.NewBuilder("").WithAbsoluteSize(-2).Build())
	c.Append(nil)
	c.Append(plain("z"))

	out := c.Render()
	if out.Text != "z" {
		t.Fatalf("text=%q, want %q", out.Text, "z")
	}
	sizes := out.OfKind(KindAbsoluteSize)
	if len(sizes) != 2 || sizes[0].Span != (Span{}) || sizes[0].Size != -2 {
		t.Fatalf("sizes=%+v", sizes)
	}
	if sizes[1].Span != (Span{Start: 0, End: 1}) {
		t.Fatalf("span after empty piece=%v", sizes[1].Span)
	}
}

func TestReset(t *testing.T) {
	s := &stubSurface{size: 10}
	c := New(s, Config{})
	c.Append(plain("a"))
	c.Append(plain("b"))
	_ = c.Render()

	c.Reset()
	if c.Count() != 0 {
		t.Fatalf("count after reset=%d", c.Count())
	}
	if !c.Last().IsEmpty() {
		t.Fatalf("last output not cleared")
	}
	if got := s.contents[len(s.contents)-1]; !got.IsEmpty() {
		t.Fatalf("surface not cleared: %+v", got)
	}

	out := c.Render()
	if out.Text != "" || len(out.Annotations) != 0 {
		t.Fatalf("render after reset=%+v", out)
	}
}

func TestRecolorAll(t *testing.T) {
	s := &stubSurface{size: 10}
	c := New(s, Config{})
	a := piece.NewBuilder("a").WithTextColor(piece.Red).Build()
	b := plain("b")
	c.Append(a)
	c.Append(b)

	out := c.RecolorAll(piece.Blue)
	if a.TextColor() != piece.Blue || b.TextColor() != piece.Blue {
		t.Fatalf("pieces not recolored")
	}
	for _, fg := range out.OfKind(KindForeground) {
		if fg.Color != piece.Blue {
			t.Fatalf("foreground=%v, want blue", fg.Color)
		}
	}
	if len(s.contents) != 1 {
		t.Fatalf("RecolorAll rendered %d times, want 1", len(s.contents))
	}
}

func TestRender_TextEditsNeedRerender(t *testing.T) {
	c := New(nil, Config{})
	p := plain("before")
	c.Append(p)
	first := c.Render()

	p.SetText("after!")
	if c.Last().Text != first.Text {
		t.Fatalf("SetText changed the rendered output without a render")
	}
	if got := c.Render().Text; got != "after!" {
		t.Fatalf("text=%q, want %q", got, "after!")
	}
}
