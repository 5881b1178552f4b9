package objtree

import (
	"fmt"
	"reflect"
	"strconv"

	"go.uber.org/zap"

	"inspector-kit/internal/common"
	"inspector-kit/meta"
	"inspector-kit/widget"
)

// Drag-drop payload kind and context popup ID used by every tree.
const (
	PayloadKind  = "U_TREE"
	ContextPopup = "###tree_ctx"
)

// Selection receives selection changes and drops from the tree.
type Selection interface {
	IsSelected(obj any) bool
	Select(obj any, additive bool)
	Deselect(obj any)
	// Drop is called when a payload produced by DragConverter is dropped
	// onto obj.
	Drop(onto any, key string)
}

// Tree draws Roots and their descendants.
type Tree struct {
	Roots []any

	// StringConverter labels nodes; fmt.Sprint when nil.
	StringConverter func(obj any) string
	// DragConverter enables drag and drop; its result is the payload.
	DragConverter func(obj any) string
	// ContextMenu draws the right-click popup contents of obj.
	ContextMenu func(obj any)
	// Selection is optional; without it nodes can't be selected or dropped on.
	Selection Selection

	cache  *meta.Cache
	r      widget.Renderer
	logger *zap.Logger
}

// Option configures a Tree.
type Option func(*Tree)

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(t *Tree) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates a Tree drawing through r.
func New(cache *meta.Cache, r widget.Renderer, opts ...Option) *Tree {
	t := &Tree{
		cache:  cache,
		r:      r,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// DrawAsWindow draws the tree inside a window.
func (t *Tree) DrawAsWindow(title string) {
	if t.r.Begin(title, widget.WindowResizeFromAnySide) {
		t.Draw()
	}

	t.r.End()
}

// Draw draws every root.
func (t *Tree) Draw() {
	t.draw(t.Roots, Path{})
}

// ListMembers returns the slice-typed members of obj in alphabetical order.
func (t *Tree) ListMembers(obj any) []*meta.Member {
	var lists []*meta.Member

	for _, m := range t.cache.AlphabeticalOf(obj) {
		if m.Kind == meta.KindList {
			lists = append(lists, m)
		}
	}

	return lists
}

// IsLeaf reports whether obj draws without an expand arrow: it has no list
// members, or exactly one whose current value is empty.
func (t *Tree) IsLeaf(obj any) bool {
	return isLeaf(t.ListMembers(obj), obj)
}

func isLeaf(lists []*meta.Member, obj any) bool {
	switch {
	case common.IsEmpty(lists):
		return true
	case common.IsSingle(lists):
		return common.IsEmpty(Children(lists[0], obj))
	default:
		return false
	}
}

// Children returns the elements of the list member m of obj. Struct
// elements are returned as pointers into the slice so edits stick.
func Children(m *meta.Member, obj any) []any {
	rv := reflect.ValueOf(m.Get(obj))
	if !rv.IsValid() || rv.Kind() != reflect.Slice {
		return nil
	}

	out := make([]any, rv.Len())
	for i := range out {
		elem := rv.Index(i)
		if elem.Kind() == reflect.Struct {
			elem = elem.Addr()
		}

		out[i] = elem.Interface()
	}

	return out
}

// Walk calls fn for every node depth first, whether expanded or not.
// Returning false skips the node's children.
func (t *Tree) Walk(fn func(p Path, obj any) bool) {
	t.walk(t.Roots, Path{}, fn)
}

func (t *Tree) walk(list []any, path Path, fn func(Path, any) bool) {
	for i, obj := range list {
		p := path.Child(i)
		if !fn(p, obj) {
			continue
		}

		lists := t.ListMembers(obj)
		if common.IsSingle(lists) {
			t.walk(Children(lists[0], obj), p, fn)
			continue
		}

		for b, m := range lists {
			t.walk(Children(m, obj), p.Branch(b), fn)
		}
	}
}

func (t *Tree) draw(list []any, path Path) {
	r := t.r

	for i, obj := range list {
		p := path.Child(i)
		r.PushID(strconv.Itoa(i))

		lists := t.ListMembers(obj)
		selected := t.Selection != nil && t.Selection.IsSelected(obj)

		flags := widget.TreeNodeNone
		if isLeaf(lists, obj) {
			flags |= widget.TreeNodeLeaf
		}

		if selected {
			flags |= widget.TreeNodeSelected
		}

		open := r.TreeNode("##"+p.String(), flags)
		t.drawNode(obj, t.Text(obj), selected)

		if open {
			switch len(lists) {
			case 0:
			case 1:
				t.draw(Children(lists[0], obj), p)
			default:
				for b, m := range lists {
					r.PushID("b" + strconv.Itoa(b))

					if r.TreeNode(m.DisplayName, widget.TreeNodeNone) {
						t.draw(Children(m, obj), p.Branch(b))
						r.TreePop()
					}

					r.PopID()
				}
			}

			r.TreePop()
		}

		r.PopID()
	}
}

// drawNode draws the label of obj and handles selection, the context menu
// and drag and drop.
func (t *Tree) drawNode(obj any, text string, selected bool) {
	r := t.r
	r.SameLine()
	r.Selectable(text, selected)

	switch {
	case t.Selection != nil && r.IsItemClicked(widget.MouseLeft):
		switch {
		case !r.KeyCtrl():
			t.Selection.Select(obj, false)
		case selected:
			t.Selection.Deselect(obj)
		default:
			t.Selection.Select(obj, true)
		}
	case t.ContextMenu != nil && r.IsItemClicked(widget.MouseRight):
		r.OpenPopup(ContextPopup)
	}

	if t.ContextMenu != nil && r.BeginPopup(ContextPopup) {
		t.ContextMenu(obj)
		r.EndPopup()
	}

	if t.DragConverter == nil {
		return
	}

	if !r.IsPopupOpen() && r.BeginDragDropSource() {
		r.SetDragDropPayload(PayloadKind, t.DragConverter(obj))
		r.Text(text)
		r.EndDragDropSource()

		return
	}

	if r.BeginDragDropTarget() {
		if key, ok := r.AcceptDragDropPayload(PayloadKind); ok && t.Selection != nil {
			t.logger.Debug("tree drop", zap.String("key", key), zap.String("onto", text))
			t.Selection.Drop(obj, key)
		}

		r.EndDragDropTarget()
	}
}

// Text returns the label of obj.
func (t *Tree) Text(obj any) string {
	if t.StringConverter != nil {
		return t.StringConverter(obj)
	}

	return fmt.Sprint(obj)
}
