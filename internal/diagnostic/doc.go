// Package diagnostic collects structured warnings and errors raised while
// generating static inspector code.
//
// Key capabilities:
//   - Omitted member warnings (quaternions, lists, unhandled types)
//   - Accessor members that have no static Go form
//   - Render failures reported per type
//   - Types whose generated function edits no member
package diagnostic
