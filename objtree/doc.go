// Package objtree draws a hierarchy of arbitrary objects as a tree.
//
// Children are discovered from slice-typed members (meta.KindList) of each
// object. An object with one list member expands straight into its
// elements; an object with several gets one labeled sub-branch per member.
// Every node is identified by its Path, which is also the ID pushed while
// drawing it, so siblings with equal labels never collide.
package objtree
