package meta

import (
	"fmt"
	"reflect"

	"inspector-kit/internal/common"
)

// Source tells where the accessors of a member come from.
type Source int

const (
	Field    Source = iota // exported struct field
	Property               // X() getter with SetX(v) setter
	Accessor               // TypeTable entry backed by functions
)

// String returns a human-readable representation of the Source.
func (s Source) String() string {
	switch s {
	case Field:
		return "field"
	case Property:
		return "property"
	case Accessor:
		return "accessor"
	default:
		return common.UnknownStr
	}
}

// DefaultCategory is the group of members without a category annotation.
const DefaultCategory = "Misc"

// Member describes one editable member of a type. Members are built once
// per type by Cache and shared by every instance; Get and Set take the
// instance explicitly.
type Member struct {
	AccessName  string // Go identifier used by get/set and generated code
	DisplayName string
	Tip         string
	Kind        ValueKind
	Type        reflect.Type
	EnumNames   []string // KindEnum only
	EnumValues  []any    // KindEnum only, same order as EnumNames
	Source      Source
	Category    string
	Flags       []string // custom widget flags
	Priority    int
	HasPriority bool
	Index       int // discovery order

	get func(target any) any
	set func(target any, v any)
}

// Get reads the member from target. Returns nil when target is not an
// instance (or pointer to an instance) of the member's owner type.
func (m *Member) Get(target any) any {
	if m.get == nil {
		return nil
	}

	return m.get(target)
}

// Set writes v to the member of target. Numeric values are converted to the
// member type; unconvertible values and read-only members are ignored.
func (m *Member) Set(target any, v any) {
	if m.set != nil {
		m.set(target, v)
	}
}

// CanSet reports whether the member has a setter.
func (m *Member) CanSet() bool {
	return m.set != nil
}

// Bind returns accessors bound to target.
func (m *Member) Bind(target any) Binding {
	return Binding{member: m, target: target}
}

// EnumIndex returns the position of the member's current value in
// EnumValues, or -1.
func (m *Member) EnumIndex(target any) int {
	return EnumIndex(m.EnumValues, m.Get(target))
}

// String returns a human-readable representation of the Member.
func (m *Member) String() string {
	return fmt.Sprintf("%s (%s %s)", m.DisplayName, m.AccessName, m.Kind)
}

// Binding is a member bound to one instance.
type Binding struct {
	member *Member
	target any
}

// Member returns the bound member.
func (b Binding) Member() *Member { return b.member }

// Target returns the bound instance.
func (b Binding) Target() any { return b.target }

// Get reads the bound value.
func (b Binding) Get() any { return b.member.Get(b.target) }

// Set writes the bound value.
func (b Binding) Set(v any) { b.member.Set(b.target, v) }

// Grouping is a named bucket of members sharing a category.
type Grouping struct {
	Name    string
	Members []*Member
}

// EnumIndex returns the index of v in values, or -1.
func EnumIndex(values []any, v any) int {
	for i, candidate := range values {
		if candidate == v {
			return i
		}
	}

	return -1
}

// enumValuesOf lists the declared values of an Enum type.
func enumValuesOf(t reflect.Type) []any {
	var zero reflect.Value
	if t.Kind() == reflect.Pointer {
		zero = reflect.New(t.Elem())
	} else {
		zero = reflect.Zero(t)
	}

	e, ok := zero.Interface().(Enum)
	if !ok {
		return nil
	}

	return e.EnumValues()
}

// convertValue makes v assignable to t. Numeric kinds convert between each
// other; other kinds only convert within the same reflect.Kind.
func convertValue(v any, t reflect.Type) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return reflect.Zero(t), true
	}

	if rv.Type().AssignableTo(t) {
		return rv, true
	}

	if !rv.Type().ConvertibleTo(t) {
		return reflect.Value{}, false
	}

	if isNumericKind(rv.Kind()) != isNumericKind(t.Kind()) || (!isNumericKind(t.Kind()) && rv.Kind() != t.Kind()) {
		return reflect.Value{}, false
	}

	return rv.Convert(t), true
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
