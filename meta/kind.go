package meta

import (
	"reflect"

	"inspector-kit/widget"
)

//go:generate go tool stringer -type=ValueKind -trimprefix=Kind -output=kind_string.go

// ValueKind is the semantic category of a member value. It selects the edit
// control drawn for the member.
type ValueKind int

const (
	KindUnhandled ValueKind = iota // no built-in control, handler registry only

	KindBool
	KindInt
	KindFloat  // float32
	KindDouble // float64, edited at float32 precision
	KindString
	KindColor
	KindVector2
	KindVector3
	KindVector4
	KindMatrix
	KindQuaternion
	KindEnum
	KindList // slice members, used as child collections by objtree
)

// IsBuiltin reports whether the inspector draws k without a handler.
func (k ValueKind) IsBuiltin() bool {
	return k != KindUnhandled && k != KindList && k != KindQuaternion
}

// Enum is implemented by value types edited with a combo box. EnumValues
// lists the declared values in order; names are taken from fmt.Sprint of
// each value, so a stringer-generated String method is the usual companion.
type Enum interface {
	EnumValues() []any
}

var (
	enumType  = reflect.TypeFor[Enum]()
	colorType = reflect.TypeFor[widget.Color]()
	vec2Type  = reflect.TypeFor[widget.Vec2]()
	vec3Type  = reflect.TypeFor[widget.Vec3]()
	vec4Type  = reflect.TypeFor[widget.Vec4]()
	mat4Type  = reflect.TypeFor[widget.Mat4]()
	quatType  = reflect.TypeFor[widget.Quat]()
)

// KindOf resolves the ValueKind of a Go type.
func KindOf(t reflect.Type) ValueKind {
	if t == nil {
		return KindUnhandled
	}

	if t.Implements(enumType) {
		return KindEnum
	}

	switch t {
	case colorType:
		return KindColor
	case vec2Type:
		return KindVector2
	case vec3Type:
		return KindVector3
	case vec4Type:
		return KindVector4
	case mat4Type:
		return KindMatrix
	case quatType:
		return KindQuaternion
	}

	switch t.Kind() {
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return KindInt
	case reflect.Float32:
		return KindFloat
	case reflect.Float64:
		return KindDouble
	case reflect.String:
		return KindString
	case reflect.Pointer:
		if t.Elem().Kind() == reflect.String {
			return KindString
		}
	case reflect.Slice:
		if t.Elem().Kind() != reflect.Uint8 {
			return KindList
		}
	default:
	}

	return KindUnhandled
}
