// Package composer joins an ordered sequence of styled pieces into one
// annotated text block.
//
// Render concatenates the piece texts in order, assigns each piece the
// half-open span [start, end) it occupies in the result, and attaches that
// piece's style to its span as a list of annotations. Spans are recomputed on
// every Render and are never stored on the pieces. The only state Render
// writes back is the absolute size of pieces that had none, which is resolved
// once against the bound Surface and cached on the piece.
//
// A Composer is not safe for concurrent use. Callers that share one across
// goroutines must serialize access.
package composer
