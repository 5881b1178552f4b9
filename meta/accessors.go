package meta

import (
	"reflect"

	"inspector-kit/internal/analyze"
)

// scanMembers discovers members of t by reflection and binds accessors.
func (c *Cache) scanMembers(t reflect.Type) []rawMember {
	infos := c.scanner.Scan(t)
	raws := make([]rawMember, 0, len(infos))

	for _, info := range infos {
		raw := rawMember{
			name: info.Name,
			typ:  info.Type,
			tag:  info.Tag,
		}

		switch info.Source {
		case analyze.SourceField:
			raw.source = Field
			raw.get, raw.set = fieldAccessors(t, info.Index, info.Type)
		case analyze.SourceProperty:
			raw.source = Property
			raw.get, raw.set = propertyAccessors(t, info.Getter, info.Setter, info.Type)
		}

		raws = append(raws, raw)
	}

	return raws
}

// instance returns the struct value of target and whether it is addressable
// through a pointer.
func instance(target any, t reflect.Type) (reflect.Value, bool) {
	rv := reflect.ValueOf(target)
	if !rv.IsValid() {
		return reflect.Value{}, false
	}

	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() || rv.Type().Elem() != t {
			return reflect.Value{}, false
		}

		return rv.Elem(), true
	}

	if rv.Type() != t {
		return reflect.Value{}, false
	}

	return rv, false
}

func fieldAccessors(t reflect.Type, index []int, valueType reflect.Type) (func(any) any, func(any, any)) {
	get := func(target any) any {
		v, _ := instance(target, t)
		if !v.IsValid() {
			return nil
		}

		f, err := v.FieldByIndexErr(index)
		if err != nil || !f.CanInterface() {
			return nil
		}

		return f.Interface()
	}

	set := func(target any, value any) {
		v, addressable := instance(target, t)
		if !addressable {
			return
		}

		f, err := v.FieldByIndexErr(index)
		if err != nil || !f.CanSet() {
			return
		}

		rv, ok := convertValue(value, valueType)
		if !ok {
			return
		}

		f.Set(rv)
	}

	return get, set
}

func propertyAccessors(t reflect.Type, getter, setter int, valueType reflect.Type) (func(any) any, func(any, any)) {
	get := func(target any) any {
		v, addressable := instance(target, t)
		if !v.IsValid() {
			return nil
		}

		var ptr reflect.Value
		if addressable {
			ptr = v.Addr()
		} else {
			ptr = reflect.New(t)
			ptr.Elem().Set(v)
		}

		return ptr.Method(getter).Call(nil)[0].Interface()
	}

	set := func(target any, value any) {
		v, addressable := instance(target, t)
		if !addressable {
			return
		}

		rv, ok := convertValue(value, valueType)
		if !ok {
			return
		}

		v.Addr().Method(setter).Call([]reflect.Value{rv})
	}

	return get, set
}
