// Package widget defines the immediate-mode renderer contract consumed by
// the inspector, grid, tree and file browser.
//
// The package carries no drawing code. A host binds Renderer to its UI
// toolkit; every call happens on the UI thread during a frame.
//
// Key types:
//   - Renderer: widget primitives (text, drags, combos, trees, drag-drop)
//   - TextFilter: include/exclude substring filter with its own input widget
//   - Color, Vec2, Vec3, Vec4, Mat4, Quat: value types with dedicated controls
package widget
