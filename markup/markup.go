package markup

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/iw2rmb/babushka/composer"
	"github.com/iw2rmb/babushka/piece"
)

// ErrInvalidDocument wraps every YAML decoding and attribute error.
var ErrInvalidDocument = errors.New("markup: invalid document")

// Populate appends pieces to c in order.
func Populate(c *composer.Composer, pieces []*piece.Piece) {
	for _, p := range pieces {
		c.Append(p)
	}
}

// Parse picks the parser from the file name: .yaml and .yml are piece
// documents, anything else is Markdown.
func Parse(name string, data []byte, opts MarkdownOptions) ([]*piece.Piece, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseMarkdown(data, opts), nil
	}
}
