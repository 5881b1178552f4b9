package analyze

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// TagKey is the struct tag key read for field annotations.
const TagKey = "inspect"

// ParseTag parses an annotation string such as
//
//	priority=2,category=Stats,name=Max HP,desc='Upper bound, inclusive',flags=A|B
//
// Values containing commas are wrapped in single quotes. A lone "-" is
// shorthand for ignore. Invalid entries are reported in the returned error
// and skipped; valid entries are still applied.
func ParseTag(tag string) (Annotations, error) {
	var (
		ann  Annotations
		errs []error
	)

	tag = strings.TrimSpace(tag)
	if tag == "-" {
		ann.Ignore = true
		return ann, nil
	}

	for _, entry := range splitEntries(tag) {
		key, value, hasValue := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		value = unquote(strings.TrimSpace(value))

		switch key {
		case "":
			continue
		case "priority":
			level, err := strconv.Atoi(value)
			if err != nil {
				errs = append(errs, fmt.Errorf("priority %q: %w", value, err))
				continue
			}

			ann.Priority = level
			ann.HasPriority = true
		case "ignore":
			ann.Ignore = !hasValue || value == "true"
		case "hidden":
			ann.Hidden = !hasValue || value == "true"
		case "browsable":
			b, err := strconv.ParseBool(value)
			if err != nil {
				errs = append(errs, fmt.Errorf("browsable %q: %w", value, err))
				continue
			}

			ann.Hidden = !b
		case "name":
			ann.Name = value
		case "category":
			ann.Category = value
		case "desc":
			ann.Description = value
		case "flags":
			for _, f := range strings.Split(value, "|") {
				if f = strings.TrimSpace(f); f != "" {
					ann.Flags = append(ann.Flags, f)
				}
			}
		default:
			errs = append(errs, fmt.Errorf("unknown annotation key %q", key))
		}
	}

	return ann, errors.Join(errs...)
}

// splitEntries splits on commas that are not inside single quotes.
func splitEntries(tag string) []string {
	var (
		entries []string
		current strings.Builder
		quoted  bool
	)

	for _, r := range tag {
		switch {
		case r == '\'':
			quoted = !quoted
			current.WriteRune(r)
		case r == ',' && !quoted:
			entries = append(entries, current.String())
			current.Reset()
		default:
			current.WriteRune(r)
		}
	}

	if current.Len() > 0 {
		entries = append(entries, current.String())
	}

	return entries
}

func unquote(s string) string {
	if len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'' {
		return s[1 : len(s)-1]
	}

	return s
}
