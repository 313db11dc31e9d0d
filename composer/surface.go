package composer

// Surface displays rendered text and supplies the default text size for
// pieces that do not set one.
type Surface interface {
	// DefaultTextSize is read lazily, once per unresolved piece per render.
	DefaultTextSize() int
	// SetContent replaces the displayed content. Reset passes an empty Styled.
	SetContent(Styled)
}
