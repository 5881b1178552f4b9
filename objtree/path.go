package objtree

import (
	"strconv"
	"strings"
)

// Step is one element of a Path: a child index, or the index of a
// sub-branch when the parent has several list members.
type Step struct {
	Index  int
	Branch bool
}

// String returns "3" for a child and "b1" for a sub-branch.
func (s Step) String() string {
	if s.Branch {
		return "b" + strconv.Itoa(s.Index)
	}

	return strconv.Itoa(s.Index)
}

// Path identifies a node from the roots, e.g. 0/3/b1/2.
type Path []Step

// Child returns the path of the i-th child.
func (p Path) Child(i int) Path {
	return p.with(Step{Index: i})
}

// Branch returns the path of the i-th sub-branch.
func (p Path) Branch(i int) Path {
	return p.with(Step{Index: i, Branch: true})
}

func (p Path) with(s Step) Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)

	return append(out, s)
}

// Depth returns the number of child steps, ignoring sub-branches.
func (p Path) Depth() int {
	depth := 0
	for _, s := range p {
		if !s.Branch {
			depth++
		}
	}

	return depth
}

// String joins the steps with "/".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		parts[i] = s.String()
	}

	return strings.Join(parts, "/")
}

// ParsePath parses the String form of a Path.
func ParsePath(s string) (Path, bool) {
	if s == "" {
		return Path{}, true
	}

	parts := strings.Split(s, "/")
	p := make(Path, 0, len(parts))

	for _, part := range parts {
		branch := strings.HasPrefix(part, "b")

		idx, err := strconv.Atoi(strings.TrimPrefix(part, "b"))
		if err != nil || idx < 0 {
			return nil, false
		}

		p = append(p, Step{Index: idx, Branch: branch})
	}

	return p, true
}
