// Package inspector draws editable views of arbitrary values through a
// widget.Renderer.
//
// An Inspector shows one object, either alphabetically or grouped by
// category. A Grid shows many objects side by side, one row per object and
// one column per display name the objects have in common. Member discovery
// and ordering come from a shared meta.Cache.
//
// Types the inspector has no built-in control for are drawn by a TypeHandler
// registered for the exact member type. A PageHandler replaces the whole
// view for one object type.
package inspector
