package analyze

import (
	"reflect"
	"strings"
)

// Scanner enumerates the members of runtime types.
type Scanner struct {
	properties bool
	fields     bool
}

// NewScanner creates a Scanner. Properties and fields are scanned only when
// the matching flag is set.
func NewScanner(properties, fields bool) *Scanner {
	return &Scanner{
		properties: properties,
		fields:     fields,
	}
}

// Scan returns the members of t in discovery order: properties first (in
// method order), then fields (in declaration order, embedded structs
// promoted in place, shadowed and ambiguous names resolved as the compiler
// does). Pointer types are dereferenced.
func (s *Scanner) Scan(t reflect.Type) []MemberInfo {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	var members []MemberInfo

	if s.properties {
		members = append(members, scanProperties(t)...)
	}

	if s.fields && t.Kind() == reflect.Struct {
		members = append(members, scanFields(t)...)
	}

	for i := range members {
		members[i].Order = i
	}

	return members
}

// scanProperties finds X()/SetX(v) pairs on the pointer method set.
func scanProperties(t reflect.Type) []MemberInfo {
	pt := reflect.PointerTo(t)

	var props []MemberInfo

	for i := 0; i < pt.NumMethod(); i++ {
		getter := pt.Method(i)
		if strings.HasPrefix(getter.Name, "Set") {
			continue
		}

		// Receiver counts as the first input.
		if getter.Type.NumIn() != 1 || getter.Type.NumOut() != 1 {
			continue
		}

		setter, ok := pt.MethodByName("Set" + getter.Name)
		if !ok || setter.Type.NumIn() != 2 || setter.Type.NumOut() != 0 {
			continue
		}

		valueType := getter.Type.Out(0)
		if setter.Type.In(1) != valueType {
			continue
		}

		props = append(props, MemberInfo{
			Name:   getter.Name,
			Source: SourceProperty,
			Type:   valueType,
			Getter: getter.Index,
			Setter: setter.Index,
		})
	}

	return props
}

// fieldCandidate is a field reachable from the scanned type. Embedded
// structs and unexported fields take part in name resolution without being
// members themselves.
type fieldCandidate struct {
	info   MemberInfo
	depth  int
	member bool
}

// scanFields returns the exported fields of t the way Go resolves
// selectors: the shallowest field of a name wins, and a name found more than
// once at its shallowest depth is ambiguous and dropped. Members keep the
// position of the winning field in declaration order.
func scanFields(t reflect.Type) []MemberInfo {
	var candidates []fieldCandidate

	collectFields(t, nil, map[reflect.Type]bool{t: true}, &candidates)

	type resolution struct {
		depth int
		count int
	}

	resolved := make(map[string]*resolution)

	for _, c := range candidates {
		res, ok := resolved[c.info.Name]

		switch {
		case !ok:
			resolved[c.info.Name] = &resolution{depth: c.depth, count: 1}
		case c.depth < res.depth:
			res.depth, res.count = c.depth, 1
		case c.depth == res.depth:
			res.count++
		}
	}

	var out []MemberInfo

	for _, c := range candidates {
		res := resolved[c.info.Name]
		if c.member && c.depth == res.depth && res.count == 1 {
			out = append(out, c.info)
		}
	}

	return out
}

// collectFields appends every field reachable from t in declaration order,
// descending into untagged embedded structs. path holds the embedded types
// being walked so recursive embedding terminates.
func collectFields(t reflect.Type, prefix []int, path map[reflect.Type]bool, out *[]fieldCandidate) {
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		index := append(append([]int{}, prefix...), i)
		tag, hasTag := field.Tag.Lookup(TagKey)

		*out = append(*out, fieldCandidate{
			info: MemberInfo{
				Name:   field.Name,
				Source: SourceField,
				Type:   field.Type,
				Tag:    tag,
				Index:  index,
			},
			depth:  len(prefix),
			member: field.IsExported() && (!field.Anonymous || hasTag || !isStruct(field.Type)),
		})

		if !field.Anonymous || hasTag {
			continue
		}

		embedded := field.Type
		if embedded.Kind() == reflect.Pointer {
			embedded = embedded.Elem()
		}

		if embedded.Kind() != reflect.Struct || path[embedded] {
			continue
		}

		path[embedded] = true
		collectFields(embedded, index, path, out)
		delete(path, embedded)
	}
}

func isStruct(t reflect.Type) bool {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Kind() == reflect.Struct
}
