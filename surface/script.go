package surface

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/babushka/composer"
	"github.com/iw2rmb/babushka/internal/grapheme"
)

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
	'+': '⁺', '-': '⁻', '=': '⁼', '(': '⁽', ')': '⁾',
	'i': 'ⁱ', 'n': 'ⁿ',
}

var subscripts = map[rune]rune{
	'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
	'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
	'+': '₊', '-': '₋', '=': '₌', '(': '₍', ')': '₎',
	'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'k': 'ₖ', 'l': 'ₗ', 'm': 'ₘ',
	'n': 'ₙ', 'o': 'ₒ', 'p': 'ₚ', 's': 'ₛ', 't': 'ₜ', 'x': 'ₓ',
}

// scriptText applies subscript then superscript character forms. Only
// single-rune grapheme clusters are mapped; clusters carrying combining marks
// and characters without a form are kept.
func scriptText(text string, a composer.Attrs) string {
	if a.Subscript {
		text = mapRunes(text, subscripts)
	}
	if a.Superscript {
		text = mapRunes(text, superscripts)
	}
	return text
}

func mapRunes(text string, table map[rune]rune) string {
	var sb strings.Builder
	sb.Grow(len(text))
	for _, cluster := range grapheme.Split(text) {
		r, size := utf8.DecodeRuneInString(cluster)
		if m, ok := table[r]; ok && size == len(cluster) {
			sb.WriteRune(m)
			continue
		}
		sb.WriteString(cluster)
	}
	return sb.String()
}
