// Package match suggests close names for misspelled identifiers.
//
// Names are compared after normalization (case folded, separators removed)
// by Levenshtein similarity:
//
//	match.Suggest("plyer", []string{"Player", "Entity"}, 3) // ["Player"]
package match
