package renderer

import (
	"strconv"
	"strings"
)

var (
	superscripts = map[rune]rune{
		'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
		'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
		'-': '⁻', '+': '⁺',
	}
	subscripts = map[rune]rune{
		'0': '₀', '1': '₁', '2': '₂', '3': '₃', '4': '₄',
		'5': '₅', '6': '₆', '7': '₇', '8': '₈', '9': '₉',
		'a': 'ₐ', 'e': 'ₑ', 'h': 'ₕ', 'i': 'ᵢ', 'j': 'ⱼ', 'k': 'ₖ',
		'l': 'ₗ', 'm': 'ₘ', 'n': 'ₙ', 'o': 'ₒ', 'p': 'ₚ', 'r': 'ᵣ',
		's': 'ₛ', 't': 'ₜ', 'u': 'ᵤ', 'v': 'ᵥ', 'x': 'ₓ',
		'-': '₋', '+': '₊',
	}
)

// plainLabel turns a TeX-style label such as "$k_x$" into plain text for
// text.Plain. Sub- and superscripts use Unicode forms where every rune has
// one ("kₓ"); otherwise the marker is kept ("k_y").
func plainLabel(s string) string {
	s = strings.ReplaceAll(s, "$", "")

	var b strings.Builder
	for i := 0; i < len(s); {
		c := s[i]
		if (c != '_' && c != '^') || i+1 == len(s) {
			b.WriteByte(c)
			i++
			continue
		}

		table := subscripts
		if c == '^' {
			table = superscripts
		}

		group, next := scriptGroup(s, i+1)
		if mapped, ok := mapRunes(group, table); ok {
			b.WriteString(mapped)
		} else {
			b.WriteByte(c)
			b.WriteString(group)
		}
		i = next
	}
	return b.String()
}

// scriptGroup returns the script argument starting at i, either a braced
// group or a single character, and the index after it.
func scriptGroup(s string, i int) (string, int) {
	if s[i] == '{' {
		if end := strings.IndexByte(s[i:], '}'); end > 0 {
			return s[i+1 : i+end], i + end + 1
		}
	}
	return s[i : i+1], i + 1
}

func mapRunes(s string, table map[rune]rune) (string, bool) {
	if s == "" {
		return "", false
	}
	out := make([]rune, 0, len(s))
	for _, r := range s {
		m, ok := table[r]
		if !ok {
			return "", false
		}
		out = append(out, m)
	}
	return string(out), true
}

// superscript writes an integer exponent with superscript digits.
func superscript(n int) string {
	s, _ := mapRunes(strconv.Itoa(n), superscripts)
	return s
}
