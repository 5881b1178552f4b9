package widget

import (
	"strings"
)

// TextFilter is a comma separated list of case-insensitive substrings.
// A term prefixed with "-" excludes matches. With only exclusions, anything
// not excluded passes.
type TextFilter struct {
	input    string
	includes []string
	excludes []string
}

// NewTextFilter creates a filter from its textual form.
func NewTextFilter(text string) *TextFilter {
	f := &TextFilter{}
	f.Set(text)

	return f
}

// Set replaces the filter text and rebuilds the terms.
func (f *TextFilter) Set(text string) {
	f.input = text
	f.includes = f.includes[:0]
	f.excludes = f.excludes[:0]

	for _, term := range strings.Split(text, ",") {
		term = strings.TrimSpace(term)
		if term == "" || term == "-" {
			continue
		}

		if strings.HasPrefix(term, "-") {
			f.excludes = append(f.excludes, strings.ToLower(term[1:]))
		} else {
			f.includes = append(f.includes, strings.ToLower(term))
		}
	}
}

// String returns the filter text.
func (f *TextFilter) String() string {
	return f.input
}

// IsActive reports whether any term is set.
func (f *TextFilter) IsActive() bool {
	return f != nil && (len(f.includes) > 0 || len(f.excludes) > 0)
}

// Pass reports whether text satisfies the filter.
func (f *TextFilter) Pass(text string) bool {
	if !f.IsActive() {
		return true
	}

	lower := strings.ToLower(text)
	for _, ex := range f.excludes {
		if strings.Contains(lower, ex) {
			return false
		}
	}

	if len(f.includes) == 0 {
		return true
	}

	for _, in := range f.includes {
		if strings.Contains(lower, in) {
			return true
		}
	}

	return false
}

// Draw emits the filter input and applies edits. Returns true when the
// filter text changed this frame.
func (f *TextFilter) Draw(r Renderer, label string) bool {
	text := f.input
	if r.InputText(label, &text) {
		f.Set(text)
		return true
	}

	return false
}
