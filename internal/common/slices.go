package common

// IsEmpty reports whether s has no elements.
func IsEmpty[S ~[]E, E any](s S) bool { return len(s) == 0 }

// IsSingle reports whether s has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool { return len(s) == 1 }

// IsMultiple reports whether s has two or more elements.
func IsMultiple[S ~[]E, E any](s S) bool { return len(s) > 1 }

// First returns the head of s, or false when s is empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if IsEmpty(s) {
		var zero E
		return zero, false
	}

	return s[0], true
}
