// Package widgettest provides a scripted widget.Renderer that records every
// call. Tests script user input (edits, clicks, drags) keyed by widget label
// and then assert on the recorded call sequence.
package widgettest

import (
	"image"
	"strconv"
	"strings"

	"inspector-kit/widget"
)

// Call is one recorded renderer invocation.
type Call struct {
	Op    string // method name, e.g. "DragInt"
	Label string // label or text argument
	Scope string // ID stack at the time of the call, joined by "/"
}

type toggle struct{}

type drop struct {
	kind string
	data string
}

// Recorder implements widget.Renderer.
type Recorder struct {
	Calls []Call
	// Pushed lists the full ID scope after every PushID.
	Pushed []string
	// Payloads lists data passed to SetDragDropPayload.
	Payloads []string
	// Ctrl is returned by KeyCtrl.
	Ctrl bool
	// Hovered is returned by IsItemHovered.
	Hovered bool
	// ColumnW is returned by ColumnWidth.
	ColumnW float32

	edits   map[string]any
	clicks  map[string]widget.MouseButton
	closed  map[string]bool
	drags   map[string]bool
	drops   map[string]drop
	popups  map[string]bool
	ids     []string
	last    string
	inPopup bool
}

// New creates a Recorder where every header and tree node starts open.
func New() *Recorder {
	return &Recorder{
		ColumnW: 100,
		edits:   make(map[string]any),
		clicks:  make(map[string]widget.MouseButton),
		closed:  make(map[string]bool),
		drags:   make(map[string]bool),
		drops:   make(map[string]drop),
		popups:  make(map[string]bool),
	}
}

// Edit schedules a one-shot value change for the widget with label. The
// value type must match the widget's value (int for Combo and DragInt).
func (r *Recorder) Edit(label string, v any) { r.edits[label] = v }

// Toggle schedules a one-shot flip of the checkbox with label.
func (r *Recorder) Toggle(label string) { r.edits[label] = toggle{} }

// Click schedules a one-shot click on the item with label.
func (r *Recorder) Click(label string, button widget.MouseButton) { r.clicks[label] = button }

// Close makes the header or tree node with label report closed.
func (r *Recorder) Close(label string) { r.closed[label] = true }

// DragFrom makes the item with label start a drag on the next frame.
func (r *Recorder) DragFrom(label string) { r.drags[label] = true }

// DropOnto makes the item with label accept a payload of kind.
func (r *Recorder) DropOnto(label, kind, data string) { r.drops[label] = drop{kind: kind, data: data} }

// Reset clears recorded calls but keeps scripted state.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Pushed = nil
	r.Payloads = nil
}

// Scope returns the current ID stack joined by "/".
func (r *Recorder) Scope() string { return strings.Join(r.ids, "/") }

// Count returns how many calls match op and label. An empty label matches any.
func (r *Recorder) Count(op, label string) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op && (label == "" || c.Label == label) {
			n++
		}
	}

	return n
}

// Has reports whether a call with op and label was recorded.
func (r *Recorder) Has(op, label string) bool { return r.Count(op, label) > 0 }

// Labels returns the labels of all calls with op, in call order.
func (r *Recorder) Labels(op string) []string {
	var out []string
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c.Label)
		}
	}

	return out
}

func (r *Recorder) record(op, label string) {
	r.Calls = append(r.Calls, Call{Op: op, Label: label, Scope: r.Scope()})
	r.last = label
}

// lookup finds a scripted key, preferring the scoped form "scope/label".
func lookup[V any](r *Recorder, m map[string]V, label string) (string, V, bool) {
	if scope := r.Scope(); scope != "" {
		key := scope + "/" + label
		if v, ok := m[key]; ok {
			return key, v, true
		}
	}

	v, ok := m[label]

	return label, v, ok
}

func apply[T any](r *Recorder, op, label string, v *T) bool {
	r.record(op, label)

	key, val, ok := lookup(r, r.edits, label)
	if !ok {
		return false
	}

	typed, ok := val.(T)
	if !ok {
		return false
	}

	delete(r.edits, key)
	*v = typed

	return true
}

// The widget.Renderer methods below record one Call each. Controls apply
// scripted edits, toggles and clicks addressed to their label.

// Begin records a window and reports it open unless Close was scripted.
func (r *Recorder) Begin(title string, _ widget.WindowFlags) bool {
	r.record("Begin", title)
	return !r.closed[title]
}

func (r *Recorder) End() { r.record("End", "") }
func (r *Recorder) BeginMenuBar() bool { r.record("BeginMenuBar", ""); return true }
func (r *Recorder) EndMenuBar() { r.record("EndMenuBar", "") }
func (r *Recorder) Text(text string) { r.record("Text", text) }

func (r *Recorder) Button(label string) bool {
	r.record("Button", label)

	key, _, ok := lookup(r, r.clicks, label)
	if ok {
		delete(r.clicks, key)
	}

	return ok
}

func (r *Recorder) Selectable(label string, selected bool) bool {
	op := "Selectable"
	if selected {
		op = "Selectable*"
	}

	r.record(op, label)

	return false
}

func (r *Recorder) Image(_ image.Image, _ widget.Vec2) { r.record("Image", "") }

func (r *Recorder) Checkbox(label string, v *bool) bool {
	r.record("Checkbox", label)

	key, val, ok := lookup(r, r.edits, label)
	if !ok {
		return false
	}

	delete(r.edits, key)

	switch tv := val.(type) {
	case toggle:
		*v = !*v
	case bool:
		*v = tv
	default:
		return false
	}

	return true
}

func (r *Recorder) DragInt(label string, v *int) bool { return apply(r, "DragInt", label, v) }
func (r *Recorder) DragFloat(label string, v *float32) bool {
	return apply(r, "DragFloat", label, v)
}
func (r *Recorder) DragFloat2(label string, v *widget.Vec2) bool {
	return apply(r, "DragFloat2", label, v)
}
func (r *Recorder) DragFloat3(label string, v *widget.Vec3) bool {
	return apply(r, "DragFloat3", label, v)
}
func (r *Recorder) DragFloat4(label string, v *widget.Vec4) bool {
	return apply(r, "DragFloat4", label, v)
}
func (r *Recorder) DragMatrix(label string, v *widget.Mat4) bool {
	return apply(r, "DragMatrix", label, v)
}
func (r *Recorder) ColorEdit4(label string, v *widget.Color) bool {
	return apply(r, "ColorEdit4", label, v)
}
func (r *Recorder) InputText(label string, v *string) bool { return apply(r, "InputText", label, v) }
func (r *Recorder) Combo(label string, current *int, _ []string) bool {
	return apply(r, "Combo", label, current)
}

func (r *Recorder) CollapsingHeader(label string) bool {
	r.record("CollapsingHeader", label)
	_, _, closed := lookup(r, r.closed, label)

	return !closed
}

func (r *Recorder) TreeNode(label string, flags widget.TreeNodeFlags) bool {
	op := "TreeNode"
	if flags&widget.TreeNodeLeaf != 0 {
		op = "TreeLeaf"
	}

	r.record(op, label)
	_, _, closed := lookup(r, r.closed, label)

	return !closed
}

func (r *Recorder) TreePop() { r.record("TreePop", "") }
func (r *Recorder) Indent() { r.record("Indent", "") }
func (r *Recorder) Unindent() { r.record("Unindent", "") }
func (r *Recorder) SameLine() {}
func (r *Recorder) Separator() { r.record("Separator", "") }
func (r *Recorder) Columns(count int) { r.record("Columns", strconv.Itoa(count)) }
func (r *Recorder) NextColumn() { r.record("NextColumn", "") }
func (r *Recorder) ColumnWidth(int) float32 { return r.ColumnW }
func (r *Recorder) CalcTextWidth(text string) float32 { return float32(7 * len(text)) }
func (r *Recorder) ContentWidth() float32 { return 400 }
func (r *Recorder) PushItemWidth(float32) {}
func (r *Recorder) PopItemWidth() {}

func (r *Recorder) PushID(id string) {
	r.ids = append(r.ids, id)
	r.Pushed = append(r.Pushed, r.Scope())
}

func (r *Recorder) PopID() {
	if len(r.ids) > 0 {
		r.ids = r.ids[:len(r.ids)-1]
	}
}

func (r *Recorder) IsItemHovered() bool { return r.Hovered }

func (r *Recorder) IsItemClicked(button widget.MouseButton) bool {
	key, b, ok := lookup(r, r.clicks, r.last)
	if !ok || b != button {
		return false
	}

	delete(r.clicks, key)

	return true
}

func (r *Recorder) SetTooltip(text string) { r.record("SetTooltip", text) }
func (r *Recorder) KeyCtrl() bool { return r.Ctrl }

func (r *Recorder) OpenPopup(id string) {
	r.record("OpenPopup", id)
	r.popups[id] = true
}

func (r *Recorder) BeginPopup(id string) bool {
	if !r.popups[id] {
		return false
	}

	delete(r.popups, id)
	r.record("BeginPopup", id)
	r.inPopup = true

	return true
}

func (r *Recorder) EndPopup() {
	r.record("EndPopup", "")
	r.inPopup = false
}

func (r *Recorder) IsPopupOpen() bool { return r.inPopup || len(r.popups) > 0 }

func (r *Recorder) BeginDragDropSource() bool {
	if !r.drags[r.last] {
		return false
	}

	delete(r.drags, r.last)

	return true
}

func (r *Recorder) SetDragDropPayload(kind, data string) {
	r.record("SetDragDropPayload", kind)
	r.Payloads = append(r.Payloads, data)
}

func (r *Recorder) EndDragDropSource() {}

func (r *Recorder) BeginDragDropTarget() bool {
	_, ok := r.drops[r.last]
	return ok
}

func (r *Recorder) AcceptDragDropPayload(kind string) (string, bool) {
	d, ok := r.drops[r.last]
	if !ok || d.kind != kind {
		return "", false
	}

	delete(r.drops, r.last)

	return d.data, true
}

func (r *Recorder) EndDragDropTarget() {}

var _ widget.Renderer = (*Recorder)(nil)

