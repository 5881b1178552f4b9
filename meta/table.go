package meta

import (
	"reflect"
)

// TypeTable is an explicit descriptor table for one type. Registering a
// table with Cache.Register replaces reflective discovery for that type
// while keeping the same annotation rules.
type TypeTable struct {
	typ     reflect.Type
	members []TableMember
	class   []ClassAnnotation
}

// TableMember is one entry of a TypeTable. Build it with Prop.
type TableMember struct {
	name string
	typ  reflect.Type
	tag  string
	get  func(target any) any
	set  func(target any, v any)
}

// Table creates a TypeTable for T with members in discovery order.
func Table[T any](members ...TableMember) *TypeTable {
	return &TypeTable{
		typ:     reflect.TypeFor[T](),
		members: members,
	}
}

// Type returns the described type.
func (t *TypeTable) Type() reflect.Type { return t.typ }

// Annotate adds class-level annotations.
func (t *TypeTable) Annotate(annotations ...ClassAnnotation) *TypeTable {
	t.class = append(t.class, annotations...)
	return t
}

// Prop describes a member of T with value type V. A nil set makes the
// member read-only.
func Prop[T, V any](name string, get func(*T) V, set func(*T, V)) TableMember {
	valueType := reflect.TypeFor[V]()

	m := TableMember{
		name: name,
		typ:  valueType,
		get: func(target any) any {
			switch v := target.(type) {
			case *T:
				if v == nil {
					return nil
				}

				return get(v)
			case T:
				return get(&v)
			default:
				return nil
			}
		},
	}

	if set != nil {
		m.set = func(target any, v any) {
			p, ok := target.(*T)
			if !ok || p == nil {
				return
			}

			typed, ok := v.(V)
			if ok {
				set(p, typed)
				return
			}

			rv, ok := convertValue(v, valueType)
			if !ok {
				return
			}

			typed, _ = rv.Interface().(V)
			set(p, typed)
		}
	}

	return m
}

// Tag attaches member-level annotations in struct tag syntax.
func (m TableMember) Tag(tag string) TableMember {
	m.tag = tag
	return m
}
