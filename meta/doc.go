// Package meta provides the metadata cache behind the inspector.
//
// A type is introspected once, on first request, into an immutable list of
// Member descriptors. Three views are cached separately:
//   - Ordered: prioritized members first, then discovery order
//   - Grouped: Ordered bucketed by category, groups sorted by name
//   - Alphabetical: sorted by display name
//
// Members come from exported struct fields and X()/SetX(v) method pairs,
// annotated with the `inspect` struct tag:
//
//	type Player struct {
//		MaxHP int     `inspect:"priority=1,category=Stats,desc=Upper bound"`
//		Speed float32 `inspect:"category=Movement"`
//		Debug bool    `inspect:"ignore"`
//	}
//
// Class-level annotations (PriorityFor, IgnoreMember, RenameMember, Tag)
// come from the Annotated interface. Types can bypass reflection entirely
// by registering a TypeTable.
package meta
