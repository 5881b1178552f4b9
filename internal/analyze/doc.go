// Package analyze provides host introspection over runtime Go types.
//
// It uses reflect to enumerate the editable members of a type and parses
// the `inspect` struct tag into Annotations.
//
// Key types:
//   - TypeID: package import path + type name
//   - MemberInfo: one field or property (getter/setter method pair)
//   - Annotations: priority, ignore, display name, category, description,
//     browsable and custom widget flags
package analyze
