// Package gen provides deterministic Go code generation for static
// inspector functions.
//
// Generation builds each function with jennifer from the same member tables
// the reflective inspector uses, so the generated dispatch matches the
// interactive one:
//   - Alphabetical branch: one block per member, PushID(index+1)
//   - Grouped branch: a collapsing header per category, indented
//   - Kind-specific edit controls with typed write-back
//   - Custom handlers contribute code through an Emitter
//
// Members without a static form (quaternions and lists without an emitter,
// table accessors) are omitted and reported as diagnostics.
package gen
