// Package piece implements the styled text fragments that a composer joins
// into one annotated text block.
//
// A Piece is built once with a Builder and is treated as a value afterwards.
// Every attribute has a defined default:
//
//   - absolute size: unset (inherit the surface default at render time)
//   - relative size: 1.0
//   - text color: opaque black
//   - background color: unset (no background)
//   - font style: Normal
//   - underline, strikethrough, superscript, subscript: false
//
// Attribute values are never validated. Odd colors or negative sizes are
// carried through unchanged and show up as odd output.
package piece
