package inspector

import (
	"reflect"

	"inspector-kit/meta"
	"inspector-kit/widget"
)

// DrawField draws the edit control of m for target. withLabel draws the
// display name first; grid cells pass false.
func (i *Inspector) DrawField(m *meta.Member, target any, withLabel bool) {
	if i.Filter.IsActive() && !i.Filter.Pass(m.DisplayName) {
		return
	}

	r := i.r

	var handler TypeHandler
	if !m.Kind.IsBuiltin() {
		handler, _ = i.Handlers.Lookup(m.Type)
	}

	if m.Kind != meta.KindBool && withLabel && (handler == nil || handler.RequiresLabel()) {
		r.Text(m.DisplayName)
		widget.Tooltip(r, m.Tip)
	}

	hidden := "##" + m.DisplayName
	b := m.Bind(target)

	switch m.Kind {
	case meta.KindBool:
		lbl := hidden
		if withLabel {
			lbl = m.DisplayName
		}

		v := valueAs[bool](b.Get())
		if r.Checkbox(lbl, &v) {
			b.Set(v)
		}

		widget.Tooltip(r, m.Tip)
	case meta.KindInt:
		v := valueAs[int](b.Get())
		if r.DragInt(hidden, &v) {
			b.Set(v)
		}
	case meta.KindFloat:
		v := valueAs[float32](b.Get())
		if r.DragFloat(hidden, &v) {
			b.Set(v)
		}
	case meta.KindDouble:
		v := valueAs[float32](b.Get())
		if r.DragFloat(hidden, &v) {
			b.Set(float64(v))
		}
	case meta.KindString:
		drawString(r, hidden, m, b)
	case meta.KindColor:
		v := valueAs[widget.Color](b.Get())
		if r.ColorEdit4(hidden, &v) {
			b.Set(v)
		}
	case meta.KindVector2:
		v := valueAs[widget.Vec2](b.Get())
		if r.DragFloat2(hidden, &v) {
			b.Set(v)
		}
	case meta.KindVector3:
		v := valueAs[widget.Vec3](b.Get())
		if r.DragFloat3(hidden, &v) {
			b.Set(v)
		}
	case meta.KindVector4:
		v := valueAs[widget.Vec4](b.Get())
		if r.DragFloat4(hidden, &v) {
			b.Set(v)
		}
	case meta.KindMatrix:
		v := valueAs[widget.Mat4](b.Get())
		if r.DragMatrix(hidden, &v) {
			b.Set(v)
		}
	case meta.KindEnum:
		idx := m.EnumIndex(target)
		if r.Combo(hidden, &idx, m.EnumNames) && idx >= 0 && idx < len(m.EnumValues) {
			b.Set(m.EnumValues[idx])
		}
	default:
		// Quaternions, lists and unknown types: handler or nothing.
		if handler != nil {
			handler.EmitUI(r, m, target)
		}
	}
}

// drawString edits string and *string members. A nil *string shows as
// empty and stays nil until the user commits an edit.
func drawString(r widget.Renderer, label string, m *meta.Member, b meta.Binding) {
	if m.Type.Kind() != reflect.Pointer {
		v := valueAs[string](b.Get())
		if r.InputText(label, &v) {
			b.Set(v)
		}

		return
	}

	var v string
	if p := reflect.ValueOf(b.Get()); p.IsValid() && !p.IsNil() {
		v = valueAs[string](p.Elem().Interface())
	}

	if !r.InputText(label, &v) {
		return
	}

	ptr := reflect.New(m.Type.Elem())
	ptr.Elem().Set(reflect.ValueOf(v).Convert(m.Type.Elem()))
	b.Set(ptr.Interface())
}

// valueAs converts v to T, or returns the zero value when it cannot.
func valueAs[T any](v any) T {
	if typed, ok := v.(T); ok {
		return typed
	}

	var zero T

	rv := reflect.ValueOf(v)
	t := reflect.TypeFor[T]()

	if !rv.IsValid() || (rv.Kind() != t.Kind() && !(isNumeric(rv.Kind()) && isNumeric(t.Kind()))) {
		return zero
	}

	if !rv.Type().ConvertibleTo(t) {
		return zero
	}

	typed, _ := rv.Convert(t).Interface().(T)

	return typed
}

func isNumeric(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}
