package meta

import (
	"strings"
	"unicode"
)

// SplitWords derives a display name from a Go identifier.
// A space is inserted before a rune when:
//   - it is an uppercase letter and the previous rune was lowercase
//     ("maxHealth" -> "max Health")
//   - it is an uppercase letter or digit that is not first and is followed
//     by a lowercase letter ("HPValue" -> "HP Value")
//
// Digits after a lowercase letter stay attached to that word, and symbols
// never split. Examples:
//   - "MaxHP" -> "Max HP"
//   - "HP" -> "HP"
//   - "Item2Count" -> "Item2 Count"
//   - "MaxHP2Value" -> "Max HP2 Value"
func SplitWords(name string) string {
	var out strings.Builder

	out.Grow(len(name) + 4)

	runes := []rune(name)
	lastWasLower := false

	for i, r := range runes {
		switch {
		case unicode.IsUpper(r) || unicode.IsDigit(r):
			if i > 0 && shouldSplit(runes, i, lastWasLower) {
				out.WriteByte(' ')
			}

			out.WriteRune(r)

			lastWasLower = false
		case unicode.IsSymbol(r):
			out.WriteRune(r)
		default:
			out.WriteRune(r)

			lastWasLower = unicode.IsLower(r)
		}
	}

	return out.String()
}

// shouldSplit decides whether a word starts at the uppercase letter or digit
// at position i.
func shouldSplit(runes []rune, i int, lastWasLower bool) bool {
	r := runes[i]

	// Lower to upper transition, e.g. "maxHP" -> split before 'H'.
	if lastWasLower && unicode.IsUpper(r) {
		return true
	}

	// Start of a capitalized word, e.g. "HPValue" -> split before 'V'.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
