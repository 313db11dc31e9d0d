// Package markup builds pieces from documents: a YAML list of piece
// attributes, or inline Markdown. Populate adds the result to a composer
// through Append, the same path any other caller uses.
package markup
