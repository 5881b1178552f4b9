package gen

import (
	"bytes"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dave/jennifer/jen"

	"inspector-kit/internal/analyze"
	"inspector-kit/internal/common"
	"inspector-kit/internal/diagnostic"
	"inspector-kit/meta"
)

// ErrUnsupportedType is returned for types that are not named structs.
var ErrUnsupportedType = errors.New("only named struct types can be generated")

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// PackagePath is the import path of the generated package. Types living
	// in the same package are referenced unqualified when set.
	PackagePath string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// GenerateComments enables doc comments on generated functions.
	GenerateComments bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "inspectors",
		OutputDir:        "./generated",
		GenerateComments: true,
	}
}

// Emitter contributes generated code for a member drawn by a custom handler.
// target is the name of the instance variable and accessor the member's Go
// identifier.
type Emitter interface {
	GenerateCode(target, accessor string, label bool) jen.Code
}

// Handler describes the custom handler registered for a member type.
type Handler struct {
	// Emitter generates the member's code; nil when the handler cannot.
	Emitter Emitter
	// RequiresLabel draws the display name before the emitted code.
	RequiresLabel bool
}

// HandlerLookup resolves the handler registered for a member type.
type HandlerLookup func(t reflect.Type) (h Handler, registered bool)

// Generator generates static inspector functions from cached member tables.
type Generator struct {
	config   GeneratorConfig
	cache    *meta.Cache
	handlers HandlerLookup
	diags    diagnostic.Diagnostics
	reported map[string]bool
}

// NewGenerator creates a new Generator reading member tables from cache.
// handlers may be nil.
func NewGenerator(config GeneratorConfig, cache *meta.Cache, handlers HandlerLookup) *Generator {
	if handlers == nil {
		handlers = func(reflect.Type) (Handler, bool) { return Handler{}, false }
	}

	return &Generator{
		config:   config,
		cache:    cache,
		handlers: handlers,
	}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "scene_player_inspector.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generate renders one file per type. Diagnostics of the run are available
// from Diagnostics afterwards.
func (g *Generator) Generate(types ...reflect.Type) ([]GeneratedFile, error) {
	g.diags = diagnostic.Diagnostics{}
	g.reported = make(map[string]bool)

	files := make([]GeneratedFile, 0, len(types))

	for _, t := range types {
		file, err := g.generateType(t)
		if err != nil {
			return nil, fmt.Errorf("generating %s: %w", analyze.IDOf(t), err)
		}

		files = append(files, *file)
	}

	return files, nil
}

// Source renders a single file holding the inspector function of t.
func (g *Generator) Source(t reflect.Type) (string, error) {
	files, err := g.Generate(t)
	if err != nil {
		return "", err
	}

	return string(files[0].Content), nil
}

// Diagnostics returns the diagnostics of the last run.
func (g *Generator) Diagnostics() diagnostic.Diagnostics {
	return g.diags
}

// generateType generates the file for a single type.
func (g *Generator) generateType(t reflect.Type) (*GeneratedFile, error) {
	t = deref(t)
	if t == nil || t.Kind() != reflect.Struct || t.Name() == "" {
		return nil, ErrUnsupportedType
	}

	var f *jen.File
	if g.config.PackagePath != "" {
		f = jen.NewFilePathName(g.config.PackagePath, g.config.PackageName)
	} else {
		f = jen.NewFile(g.config.PackageName)
	}

	f.HeaderComment("Code generated by inspectgen. DO NOT EDIT.")
	g.function(f, t)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		g.diags.AddError(diagnostic.CodeRender, err.Error(), analyze.IDOf(t).String(), "")
		return nil, fmt.Errorf("rendering code: %w", err)
	}

	return &GeneratedFile{
		Filename: g.filename(t),
		Content:  buf.Bytes(),
	}, nil
}

// function emits
//
//	func DrawT(r widget.Renderer, target any, alphabetical bool)
//
// mirroring the dispatch of the reflective inspector.
func (g *Generator) function(f *jen.File, t reflect.Type) {
	name := FunctionName(t)

	if g.config.GenerateComments {
		f.Comment(fmt.Sprintf("%s draws %s without reflection.", name, analyze.IDOf(t)))
	}

	// Branches are built first: the type assertion binds obj only when a
	// member uses it.
	used := false
	emit := func(grp *jen.Group, m *meta.Member, idx int) {
		if g.member(grp, t, m, idx) {
			used = true
		}
	}

	branches := jen.If(jen.Id("alphabetical")).BlockFunc(func(alpha *jen.Group) {
		for i, m := range g.cache.Alphabetical(t) {
			emit(alpha, m, i)
		}
	}).Else().BlockFunc(func(grouped *jen.Group) {
		for _, group := range g.cache.Grouped(t) {
			grouped.If(jen.Id("r").Dot("CollapsingHeader").Call(jen.Lit(group.Name))).BlockFunc(func(h *jen.Group) {
				h.Id("r").Dot("Indent").Call()

				for i, m := range group.Members {
					emit(h, m, i)
				}

				h.Id("r").Dot("Unindent").Call()
			})
		}
	})

	assertion := jen.Id("target").Assert(jen.Op("*").Add(typeExpr(t)))

	f.Func().Id(name).Params(
		jen.Id("r").Qual(widgetPkg, "Renderer"),
		jen.Id("target").Interface(),
		jen.Id("alphabetical").Bool(),
	).BlockFunc(func(body *jen.Group) {
		if used {
			body.List(jen.Id("obj"), jen.Id("ok")).Op(":=").Add(assertion)
			body.If(jen.Op("!").Id("ok")).Block(jen.Return())
		} else {
			body.If(
				jen.List(jen.Id("_"), jen.Id("ok")).Op(":=").Add(assertion),
				jen.Op("!").Id("ok"),
			).Block(jen.Return())
		}

		body.Line()
		body.Id("r").Dot("PushItemWidth").Call(jen.Lit(-1))
		body.Add(branches)
		body.Id("r").Dot("PopItemWidth").Call()
	})

	if !used {
		g.diags.AddInfo(diagnostic.CodeNoMembers,
			"no member has a static form", analyze.IDOf(t).String(), "")
	}
}

// member emits the block drawing one member under PushID(idx+1). It returns
// false when the member is omitted.
func (g *Generator) member(grp *jen.Group, t reflect.Type, m *meta.Member, idx int) bool {
	code, ok := g.memberCode(t, m)
	if !ok {
		return false
	}

	grp.Id("r").Dot("PushID").Call(jen.Lit(fmt.Sprint(idx + 1)))

	if g.labelled(m) {
		grp.Id("r").Dot("Text").Call(jen.Lit(m.DisplayName))
		tooltip(grp, m)
	}

	grp.Block(code...)
	grp.Id("r").Dot("PopID").Call()

	return true
}

// labelled reports whether the display name is drawn before the control.
// Checkboxes label themselves; handlers decide for their kinds.
func (g *Generator) labelled(m *meta.Member) bool {
	if m.Kind == meta.KindBool {
		return false
	}

	if m.Kind.IsBuiltin() {
		return true
	}

	h, ok := g.handlers(m.Type)

	return !ok || h.RequiresLabel
}

// warn records a warning once per type and member across both branches.
func (g *Generator) warn(code, message, typeName, member string) {
	key := typeName + "." + member
	if g.reported[key] {
		return
	}

	g.reported[key] = true
	g.diags.AddWarning(code, message, typeName, member)
}

func tooltip(grp *jen.Group, m *meta.Member) {
	if m.Tip == "" {
		return
	}

	grp.If(jen.Id("r").Dot("IsItemHovered").Call()).Block(
		jen.Id("r").Dot("SetTooltip").Call(jen.Lit(m.Tip)),
	)
}

// FunctionName returns the name of the generated function for t.
func FunctionName(t reflect.Type) string {
	return "Draw" + deref(t).Name()
}

func (g *Generator) filename(t reflect.Type) string {
	id := analyze.IDOf(t)
	name := strings.ToLower(id.Name)

	if pkg := common.PkgAlias(id.PkgPath); pkg != "" {
		return fmt.Sprintf("%s_%s_inspector.go", pkg, name)
	}

	return fmt.Sprintf("%s_inspector.go", name)
}

func deref(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t
}
