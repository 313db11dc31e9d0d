package composer

import (
	"log/slog"

	"github.com/iw2rmb/babushka/piece"
)

// Composer owns an ordered sequence of pieces. Sequence order is render order.
type Composer struct {
	pieces  []*piece.Piece
	surface Surface
	cfg     Config

	version uint64
	last    Styled
}

// New returns an empty Composer bound to s. A nil s is allowed for headless
// use; Render still returns its artifact.
func New(s Surface, cfg Config) *Composer {
	if cfg.DefaultTextSize == 0 {
		cfg.DefaultTextSize = DefaultTextSize
	}
	return &Composer{
		surface: s,
		cfg:     cfg,
	}
}

// Surface returns the bound surface, or nil.
func (c *Composer) Surface() Surface { return c.surface }

// Version increases on every change to the sequence or the rendered output.
func (c *Composer) Version() uint64 { return c.version }

// Last returns the artifact of the most recent Render, or the empty artifact
// after Reset or before the first Render.
func (c *Composer) Last() Styled { return c.last }

func (c *Composer) Count() int { return len(c.pieces) }

// Pieces returns a copy of the sequence. The pieces themselves are shared.
func (c *Composer) Pieces() []*piece.Piece {
	return append([]*piece.Piece(nil), c.pieces...)
}

// Get returns the piece at index, or (nil, false) when index is outside
// [0, Count()). It never fails.
func (c *Composer) Get(index int) (*piece.Piece, bool) {
	if index < 0 || index >= len(c.pieces) {
		return nil, false
	}
	return c.pieces[index], true
}

// Append adds p at the end of the sequence.
func (c *Composer) Append(p *piece.Piece) {
	c.pieces = append(c.pieces, p)
	c.version++
}

// Insert places p before index. index must be in [0, Count()].
func (c *Composer) Insert(p *piece.Piece, index int) error {
	if index < 0 || index > len(c.pieces) {
		return c.indexError("insert", index)
	}
	c.pieces = append(c.pieces, nil)
	copy(c.pieces[index+1:], c.pieces[index:])
	c.pieces[index] = p
	c.version++
	return nil
}

// Replace overwrites the piece at index. index must be in [0, Count()).
func (c *Composer) Replace(index int, p *piece.Piece) error {
	if index < 0 || index >= len(c.pieces) {
		return c.indexError("replace", index)
	}
	c.pieces[index] = p
	c.version++
	return nil
}

// RemoveAt drops the piece at index. index must be in [0, Count()).
func (c *Composer) RemoveAt(index int) error {
	if index < 0 || index >= len(c.pieces) {
		return c.indexError("remove", index)
	}
	copy(c.pieces[index:], c.pieces[index+1:])
	c.pieces[len(c.pieces)-1] = nil
	c.pieces = c.pieces[:len(c.pieces)-1]
	c.version++
	return nil
}

func (c *Composer) indexError(op string, index int) error {
	Logger().Debug("composer: rejected index",
		slog.String("op", op),
		slog.Int("index", index),
		slog.Int("len", len(c.pieces)),
	)
	return &IndexError{Op: op, Index: index, Len: len(c.pieces)}
}
