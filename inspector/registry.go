package inspector

import (
	"reflect"

	"github.com/dave/jennifer/jen"

	"inspector-kit/internal/gen"
	"inspector-kit/meta"
	"inspector-kit/widget"
)

// TypeHandler draws members of one value type.
type TypeHandler interface {
	// EmitUI draws the edit control for m on target and writes changes back.
	EmitUI(r widget.Renderer, m *meta.Member, target any)
	// RequiresLabel reports whether the inspector draws the display name
	// before EmitUI. Checkbox-like handlers that label themselves return false.
	RequiresLabel() bool
}

// CodeEmitter is implemented by handlers that contribute generated code.
// target names the instance variable, accessor the member identifier.
type CodeEmitter interface {
	GenerateCode(target, accessor string, label bool) jen.Code
}

// PageHandler replaces the inspector view for one object type.
type PageHandler interface {
	EmitEditPage(r widget.Renderer, target any)
	// EmitColumns draws one grid row for target, one cell per field.
	EmitColumns(r widget.Renderer, fields []string, target any)
}

// HandlerRegistry maps exact member types to handlers.
type HandlerRegistry struct {
	handlers map[reflect.Type]TypeHandler
}

// NewHandlerRegistry creates an empty HandlerRegistry.
func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{handlers: make(map[reflect.Type]TypeHandler)}
}

// Register installs handler for t, replacing any previous one.
func (h *HandlerRegistry) Register(t reflect.Type, handler TypeHandler) {
	h.handlers[t] = handler
}

// Lookup returns the handler registered for t.
func (h *HandlerRegistry) Lookup(t reflect.Type) (TypeHandler, bool) {
	handler, ok := h.handlers[t]
	return handler, ok
}

// codegen adapts the registry to code generation.
func (h *HandlerRegistry) codegen(t reflect.Type) (gen.Handler, bool) {
	handler, ok := h.handlers[t]
	if !ok {
		return gen.Handler{}, false
	}

	e, _ := handler.(CodeEmitter)

	return gen.Handler{Emitter: e, RequiresLabel: handler.RequiresLabel()}, true
}

// PageRegistry maps exact object types to pages.
type PageRegistry struct {
	pages map[reflect.Type]PageHandler
}

// NewPageRegistry creates an empty PageRegistry.
func NewPageRegistry() *PageRegistry {
	return &PageRegistry{pages: make(map[reflect.Type]PageHandler)}
}

// Register installs page for objects whose dynamic type is exactly t.
func (p *PageRegistry) Register(t reflect.Type, page PageHandler) {
	p.pages[t] = page
}

// Lookup returns the page registered for t.
func (p *PageRegistry) Lookup(t reflect.Type) (PageHandler, bool) {
	page, ok := p.pages[t]
	return page, ok
}

// Registry bundles the handler and page registries so several inspectors
// can share them.
type Registry struct {
	Handlers *HandlerRegistry
	Pages    *PageRegistry
}

// NewRegistry creates empty registries.
func NewRegistry() *Registry {
	return &Registry{
		Handlers: NewHandlerRegistry(),
		Pages:    NewPageRegistry(),
	}
}

// RegisterHandler installs handler for members of type T.
func RegisterHandler[T any](reg *Registry, handler TypeHandler) {
	reg.Handlers.Register(reflect.TypeFor[T](), handler)
}

// RegisterPage installs page for objects of dynamic type T. Objects are
// usually inspected through pointers, so T is typically *Something.
func RegisterPage[T any](reg *Registry, page PageHandler) {
	reg.Pages.Register(reflect.TypeFor[T](), page)
}
