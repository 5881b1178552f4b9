package gen

import (
	"fmt"
	"reflect"

	"github.com/dave/jennifer/jen"

	"inspector-kit/internal/analyze"
	"inspector-kit/internal/diagnostic"
	"inspector-kit/meta"
	"inspector-kit/widget"
)

var (
	widgetPkg = reflect.TypeFor[widget.Renderer]().PkgPath()
	metaPkg   = reflect.TypeFor[meta.Member]().PkgPath()
)

// control maps a value kind to the edit control and its value type.
type control struct {
	method string
	value  reflect.Type
}

var controls = map[meta.ValueKind]control{
	meta.KindBool:    {"Checkbox", reflect.TypeFor[bool]()},
	meta.KindInt:     {"DragInt", reflect.TypeFor[int]()},
	meta.KindFloat:   {"DragFloat", reflect.TypeFor[float32]()},
	meta.KindDouble:  {"DragFloat", reflect.TypeFor[float32]()},
	meta.KindString:  {"InputText", reflect.TypeFor[string]()},
	meta.KindColor:   {"ColorEdit4", reflect.TypeFor[widget.Color]()},
	meta.KindVector2: {"DragFloat2", reflect.TypeFor[widget.Vec2]()},
	meta.KindVector3: {"DragFloat3", reflect.TypeFor[widget.Vec3]()},
	meta.KindVector4: {"DragFloat4", reflect.TypeFor[widget.Vec4]()},
	meta.KindMatrix:  {"DragMatrix", reflect.TypeFor[widget.Mat4]()},
}

// memberCode returns the statements editing m. ok is false when the member
// is omitted; a diagnostic explains why.
func (g *Generator) memberCode(t reflect.Type, m *meta.Member) ([]jen.Code, bool) {
	typeName := analyze.IDOf(t).String()

	if m.Source == meta.Accessor {
		g.warn(diagnostic.CodeOmittedAccessor,
			"table accessors have no static form", typeName, m.AccessName)

		return nil, false
	}

	switch m.Kind {
	case meta.KindEnum:
		return enumCode(m), true
	case meta.KindString:
		if m.Type.Kind() == reflect.Pointer {
			return nullableStringCode(m), true
		}
	case meta.KindQuaternion, meta.KindList, meta.KindUnhandled:
		return g.emitterCode(typeName, m)
	}

	ctl, ok := controls[m.Kind]
	if !ok {
		return nil, false
	}

	code := []jen.Code{
		jen.Id("v").Op(":=").Add(convert(getter(m), m.Type, ctl.value)),
		jen.If(jen.Id("r").Dot(ctl.method).Call(jen.Lit(label(m)), jen.Op("&").Id("v"))).Block(
			setter(m, convert(jen.Id("v"), ctl.value, m.Type)),
		),
	}

	if m.Kind == meta.KindBool && m.Tip != "" {
		code = append(code, jen.If(jen.Id("r").Dot("IsItemHovered").Call()).Block(
			jen.Id("r").Dot("SetTooltip").Call(jen.Lit(m.Tip)),
		))
	}

	return code, true
}

// enumCode selects from the declared values of the enum type.
func enumCode(m *meta.Member) []jen.Code {
	names := make([]jen.Code, 0, len(m.EnumNames))
	for _, name := range m.EnumNames {
		names = append(names, jen.Lit(name))
	}

	return []jen.Code{
		jen.Id("v").Op(":=").Add(getter(m)),
		jen.Id("values").Op(":=").Id("v").Dot("EnumValues").Call(),
		jen.Id("current").Op(":=").Qual(metaPkg, "EnumIndex").Call(jen.Id("values"), jen.Id("v")),
		jen.If(
			jen.Id("r").Dot("Combo").Call(
				jen.Lit(label(m)),
				jen.Op("&").Id("current"),
				jen.Index().String().Values(names...),
			).Op("&&").Id("current").Op(">=").Lit(0).Op("&&").Id("current").Op("<").Len(jen.Id("values")),
		).Block(
			jen.If(
				jen.List(jen.Id("e"), jen.Id("ok")).Op(":=").Id("values").Index(jen.Id("current")).Assert(typeExpr(m.Type)),
				jen.Id("ok"),
			).Block(setter(m, jen.Id("e"))),
		),
	}
}

// nullableStringCode edits a *string; nil reads as "" and is only replaced
// when the user commits an edit.
func nullableStringCode(m *meta.Member) []jen.Code {
	elem := m.Type.Elem()
	stringType := reflect.TypeFor[string]()

	commit := []jen.Code{setter(m, jen.Op("&").Id("v"))}
	if elem != stringType {
		commit = []jen.Code{
			jen.Id("s").Op(":=").Add(convert(jen.Id("v"), stringType, elem)),
			setter(m, jen.Op("&").Id("s")),
		}
	}

	return []jen.Code{
		jen.Var().Id("v").String(),
		jen.If(
			jen.Id("p").Op(":=").Add(getter(m)),
			jen.Id("p").Op("!=").Nil(),
		).Block(
			jen.Id("v").Op("=").Add(convert(jen.Op("*").Id("p"), elem, stringType)),
		),
		jen.If(jen.Id("r").Dot("InputText").Call(jen.Lit(label(m)), jen.Op("&").Id("v"))).Block(commit...),
	}
}

// emitterCode asks the handler registered for the member type.
func (g *Generator) emitterCode(typeName string, m *meta.Member) ([]jen.Code, bool) {
	h, registered := g.handlers(m.Type)

	switch {
	case h.Emitter != nil:
		return []jen.Code{h.Emitter.GenerateCode("obj", m.AccessName, true)}, true
	case registered:
		g.warn(diagnostic.CodeHandlerNoCode,
			fmt.Sprintf("handler for %s does not emit code", m.Type), typeName, m.AccessName)
	default:
		g.warn(diagnostic.CodeOmittedKind,
			fmt.Sprintf("%s members have no generated form", m.Kind), typeName, m.AccessName)
	}

	return nil, false
}

// label is the widget label; only checkboxes show their display name.
func label(m *meta.Member) string {
	if m.Kind == meta.KindBool {
		return m.DisplayName
	}

	return "##" + m.DisplayName
}

// getter reads the member from obj.
func getter(m *meta.Member) *jen.Statement {
	if m.Source == meta.Property {
		return jen.Id("obj").Dot(m.AccessName).Call()
	}

	return jen.Id("obj").Dot(m.AccessName)
}

// setter writes value to the member of obj.
func setter(m *meta.Member, value jen.Code) *jen.Statement {
	if m.Source == meta.Property {
		return jen.Id("obj").Dot("Set" + m.AccessName).Call(value)
	}

	return jen.Id("obj").Dot(m.AccessName).Op("=").Add(value)
}

// convert wraps expr in a conversion to "to" unless the types match.
func convert(expr jen.Code, from, to reflect.Type) jen.Code {
	if from == to {
		return expr
	}

	return typeExpr(to).Call(expr)
}

// typeExpr renders a reflect.Type as a Go type expression.
func typeExpr(t reflect.Type) *jen.Statement {
	if t.Name() != "" {
		if t.PkgPath() == "" {
			return jen.Id(t.Name())
		}

		return jen.Qual(t.PkgPath(), t.Name())
	}

	switch t.Kind() {
	case reflect.Pointer:
		return jen.Op("*").Add(typeExpr(t.Elem()))
	case reflect.Slice:
		return jen.Index().Add(typeExpr(t.Elem()))
	case reflect.Array:
		return jen.Index(jen.Lit(t.Len())).Add(typeExpr(t.Elem()))
	case reflect.Map:
		return jen.Map(typeExpr(t.Key())).Add(typeExpr(t.Elem()))
	default:
		return jen.Id(t.String())
	}
}
