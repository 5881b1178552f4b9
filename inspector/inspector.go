package inspector

import (
	"fmt"
	"reflect"
	"strconv"

	"go.uber.org/zap"

	"inspector-kit/internal/gen"
	"inspector-kit/meta"
	"inspector-kit/widget"
)

// Placeholder texts.
const (
	NothingToEdit     = "< nothing to edit >"
	NoObjectsSelected = "< no objects selected >"
	NoCommonFields    = "< no common fields to edit >"
)

// FilterLabel is the label of the menu bar filter input.
const FilterLabel = "Filter"

// Inspector draws the members of one object.
type Inspector struct {
	*Registry

	// Alphabetical selects the flat alphabetical view; otherwise members are
	// grouped by category under collapsing headers.
	Alphabetical bool
	// Inspecting is the object drawn by DrawAsWindow.
	Inspecting any
	// Filter hides members whose display name does not pass.
	Filter *widget.TextFilter

	cache     *meta.Cache
	r         widget.Renderer
	logger    *zap.Logger
	genConfig gen.GeneratorConfig
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithRegistry shares handler and page registries between inspectors.
func WithRegistry(reg *Registry) Option {
	return func(i *Inspector) {
		if reg != nil {
			i.Registry = reg
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(i *Inspector) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithCodePackage sets the package clause of generated code.
func WithCodePackage(name string) Option {
	return func(i *Inspector) {
		i.genConfig.PackageName = name
	}
}

// New creates an Inspector drawing through r.
func New(cache *meta.Cache, r widget.Renderer, opts ...Option) *Inspector {
	i := &Inspector{
		Registry:     NewRegistry(),
		Alphabetical: true,
		Filter:       widget.NewTextFilter(""),
		cache:        cache,
		r:            r,
		logger:       zap.NewNop(),
		genConfig:    gen.DefaultGeneratorConfig(),
	}

	for _, opt := range opts {
		opt(i)
	}

	return i
}

// Cache returns the metadata cache.
func (i *Inspector) Cache() *meta.Cache { return i.cache }

// Renderer returns the renderer the inspector draws through.
func (i *Inspector) Renderer() widget.Renderer { return i.r }

// DrawAsWindow draws Inspecting inside a window with a menu bar.
func (i *Inspector) DrawAsWindow(title string) {
	if i.r.Begin(title, widget.WindowResizeFromAnySide|widget.WindowMenuBar) {
		i.DrawMenuBar()
		i.Draw(i.Inspecting)
	}

	i.r.End()
}

// DrawMenuBar draws the filter input and the alphabetical/grouped toggle.
func (i *Inspector) DrawMenuBar() {
	r := i.r
	if !r.BeginMenuBar() {
		return
	}

	r.PushItemWidth(r.ContentWidth() * 0.65)
	i.Filter.Draw(r, FilterLabel)
	r.PopItemWidth()
	r.SameLine()

	label := "A"
	if i.Alphabetical {
		label = "G"
	}

	if r.Button(label) {
		i.Alphabetical = !i.Alphabetical
	}

	widget.Tooltip(r, "Toggle alphabetical / grouping")
	r.EndMenuBar()
}

// Draw draws the members of target. A page registered for the dynamic type
// of target takes over completely.
func (i *Inspector) Draw(target any) {
	r := i.r
	if isNil(target) {
		r.Text(NothingToEdit)
		return
	}

	if page, ok := i.Pages.Lookup(reflect.TypeOf(target)); ok {
		page.EmitEditPage(r, target)
		return
	}

	r.PushItemWidth(-1)

	if i.Alphabetical {
		i.drawMembers(i.cache.AlphabeticalOf(target), target)
	} else {
		for _, group := range i.cache.GroupedOf(target) {
			if r.CollapsingHeader(group.Name) {
				r.Indent()
				i.drawMembers(group.Members, target)
				r.Unindent()
			}
		}
	}

	r.PopItemWidth()
}

func (i *Inspector) drawMembers(members []*meta.Member, target any) {
	for idx, m := range members {
		i.r.PushID(strconv.Itoa(idx + 1))
		i.DrawField(m, target, true)
		i.r.PopID()
	}
}

// GenerateCode returns Go source of a function drawing t without
// reflection. Members without a static form are omitted.
func (i *Inspector) GenerateCode(t reflect.Type) (string, error) {
	g := gen.NewGenerator(i.genConfig, i.cache, i.Handlers.codegen)

	src, err := g.Source(t)
	if err != nil {
		return "", fmt.Errorf("generating code: %w", err)
	}

	for _, d := range g.Diagnostics().Warnings {
		i.logger.Debug("member omitted from generated code",
			zap.String("type", d.Type),
			zap.String("member", d.Member),
			zap.String("code", d.Code))
	}

	return src, nil
}

// GenerateCodeFor is GenerateCode for the dynamic type of v.
func (i *Inspector) GenerateCodeFor(v any) (string, error) {
	return i.GenerateCode(reflect.TypeOf(v))
}

func isNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
