package markup

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/babushka/piece"
)

type document struct {
	Pieces []pieceSpec `yaml:"pieces"`
}

// pieceSpec mirrors the Builder. Pointer fields distinguish "absent" from a
// zero value.
type pieceSpec struct {
	Text          string   `yaml:"text"`
	Size          *int     `yaml:"size"`
	RelativeSize  *float64 `yaml:"relative_size"`
	Color         string   `yaml:"color"`
	Background    string   `yaml:"background"`
	Style         string   `yaml:"style"`
	Underline     bool     `yaml:"underline"`
	Strikethrough bool     `yaml:"strikethrough"`
	Superscript   bool     `yaml:"superscript"`
	Subscript     bool     `yaml:"subscript"`
}

// ParseYAML decodes a piece document:
//
//	pieces:
//	  - text: "Hello "
//	  - text: world
//	    style: bold
//	    underline: true
//	    color: "#ff0000"
//
// Unknown keys are rejected. An empty document yields no pieces.
func ParseYAML(data []byte) ([]*piece.Piece, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	out := make([]*piece.Piece, 0, len(doc.Pieces))
	for i, ps := range doc.Pieces {
		p, err := ps.build()
		if err != nil {
			return nil, fmt.Errorf("%w: pieces[%d]: %w", ErrInvalidDocument, i, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func (ps pieceSpec) build() (*piece.Piece, error) {
	b := piece.NewBuilder(ps.Text)
	if ps.Size != nil {
		b.WithAbsoluteSize(*ps.Size)
	}
	if ps.RelativeSize != nil {
		b.WithRelativeSize(*ps.RelativeSize)
	}
	if ps.Color != "" {
		c, err := piece.ParseColor(ps.Color)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		b.WithTextColor(c)
	}
	if ps.Background != "" {
		c, err := piece.ParseColor(ps.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		b.WithBackgroundColor(c)
	}
	style, ok := piece.ParseFontStyle(ps.Style)
	if !ok {
		return nil, fmt.Errorf("style: unknown %q", ps.Style)
	}
	b.WithStyle(style)
	if ps.Underline {
		b.Underline()
	}
	if ps.Strikethrough {
		b.Strikethrough()
	}
	if ps.Superscript {
		b.Superscript()
	}
	if ps.Subscript {
		b.Subscript()
	}
	return b.Build(), nil
}
