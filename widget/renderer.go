package widget

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Value types with dedicated edit controls.
type (
	Color = color.RGBA
	Vec2  = mgl32.Vec2
	Vec3  = mgl32.Vec3
	Vec4  = mgl32.Vec4
	Mat4  = mgl32.Mat4
	Quat  = mgl32.Quat
)

// WindowFlags adjust Begin.
type WindowFlags int

const (
	WindowNone              WindowFlags = 0
	WindowMenuBar           WindowFlags = 1 << iota
	WindowResizeFromAnySide             // allow resizing from every edge
)

// TreeNodeFlags adjust TreeNode.
type TreeNodeFlags int

const (
	TreeNodeNone     TreeNodeFlags = 0
	TreeNodeLeaf     TreeNodeFlags = 1 << iota // no expand arrow, always open
	TreeNodeSelected                           // draw highlighted
)

// MouseButton identifies a mouse button for IsItemClicked.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// Renderer is the immediate-mode widget API. Edit controls return true on the
// frame the user changed the value, after writing the new value through the
// pointer. Labels starting with "##" are hidden and only disambiguate IDs.
type Renderer interface {
	Begin(title string, flags WindowFlags) bool
	End()
	BeginMenuBar() bool
	EndMenuBar()

	Text(text string)
	Button(label string) bool
	Selectable(label string, selected bool) bool
	Image(img image.Image, size Vec2)

	Checkbox(label string, v *bool) bool
	DragInt(label string, v *int) bool
	DragFloat(label string, v *float32) bool
	DragFloat2(label string, v *Vec2) bool
	DragFloat3(label string, v *Vec3) bool
	DragFloat4(label string, v *Vec4) bool
	DragMatrix(label string, v *Mat4) bool
	ColorEdit4(label string, v *Color) bool
	InputText(label string, v *string) bool
	Combo(label string, current *int, items []string) bool

	CollapsingHeader(label string) bool
	TreeNode(label string, flags TreeNodeFlags) bool
	TreePop()
	Indent()
	Unindent()
	SameLine()
	Separator()
	Columns(count int)
	NextColumn()
	ColumnWidth(index int) float32
	CalcTextWidth(text string) float32
	ContentWidth() float32
	PushItemWidth(width float32)
	PopItemWidth()

	PushID(id string)
	PopID()

	IsItemHovered() bool
	IsItemClicked(button MouseButton) bool
	SetTooltip(text string)
	KeyCtrl() bool

	OpenPopup(id string)
	BeginPopup(id string) bool
	EndPopup()
	IsPopupOpen() bool

	BeginDragDropSource() bool
	SetDragDropPayload(kind, data string)
	EndDragDropSource()
	BeginDragDropTarget() bool
	AcceptDragDropPayload(kind string) (string, bool)
	EndDragDropTarget()
}

// Tooltip shows text when the previous item is hovered and text is not empty.
func Tooltip(r Renderer, text string) {
	if text != "" && r.IsItemHovered() {
		r.SetTooltip(text)
	}
}
