package analyze

import (
	"reflect"

	"inspector-kit/internal/common"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "inspector-kit/examples/scene"
	Name    string // e.g., "Player"
}

// IDOf returns the TypeID of t, dereferencing pointers.
func IDOf(t reflect.Type) TypeID {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	if t == nil {
		return TypeID{}
	}

	return TypeID{PkgPath: t.PkgPath(), Name: t.Name()}
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// MemberSource tells whether a member is a struct field or a property.
type MemberSource int

const (
	SourceField    MemberSource = iota // exported struct field
	SourceProperty                     // X() getter with SetX(v) setter
)

// String returns a human-readable representation of the MemberSource.
func (s MemberSource) String() string {
	switch s {
	case SourceField:
		return "field"
	case SourceProperty:
		return "property"
	default:
		return common.UnknownStr
	}
}

// MemberInfo describes one discovered member.
type MemberInfo struct {
	Name   string       // Go identifier used for access
	Source MemberSource // field or property
	Type   reflect.Type // value type
	Tag    string       // raw `inspect` tag, fields only
	Index  []int        // field index path (promoted fields have len > 1)
	Getter int          // method index on *T, properties only
	Setter int          // method index on *T, properties only
	Order  int          // discovery order
}

// Annotations are the declarative settings attached to one member.
type Annotations struct {
	Priority    int
	HasPriority bool
	Ignore      bool
	Hidden      bool // browsable=false
	Name        string
	Category    string
	Description string
	Flags       []string
}

// Merge returns a copy of a with every key set in over applied on top.
func (a Annotations) Merge(over Annotations) Annotations {
	if over.HasPriority {
		a.Priority = over.Priority
		a.HasPriority = true
	}

	a.Ignore = a.Ignore || over.Ignore
	a.Hidden = a.Hidden || over.Hidden

	if over.Name != "" {
		a.Name = over.Name
	}

	if over.Category != "" {
		a.Category = over.Category
	}

	if over.Description != "" {
		a.Description = over.Description
	}

	if len(over.Flags) > 0 {
		a.Flags = over.Flags
	}

	return a
}

// Excluded reports whether the member must not appear in any view.
func (a Annotations) Excluded() bool {
	return a.Ignore || a.Hidden
}
