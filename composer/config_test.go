package composer

import "testing"

func TestUnitLen(t *testing.T) {
	text := "a\u00e9\U0001F600\u00e9"
	cases := []struct {
		unit Unit
		want int
	}{
		{unit: UnitByte, want: 1 + 2 + 4 + 1 + 2},
		{unit: UnitRune, want: 5},
		{unit: UnitUTF16, want: 1 + 1 + 2 + 1 + 1},
		{unit: UnitGrapheme, want: 4},
		{unit: Unit(99), want: len(text)},
	}
	for _, tc := range cases {
		if got := tc.unit.Len(text); got != tc.want {
			t.Fatalf("%v.Len=%d, want %d", tc.unit, got, tc.want)
		}
	}
}

func TestNew_FillsDefaults(t *testing.T) {
	c := New(nil, Config{})
	if c.cfg.DefaultTextSize != DefaultTextSize {
		t.Fatalf("default text size=%d, want %d", c.cfg.DefaultTextSize, DefaultTextSize)
	}
	if c.cfg.Unit != UnitByte {
		t.Fatalf("unit=%v, want byte", c.cfg.Unit)
	}
}
