// Package core defines the domain model for the socialgraph service.
//
// The core package provides:
//   - Domain types (User, Post, Profile, MemberType)
//   - Create payloads and explicit optional-field update structs
//   - The NotFound/BadRequest error taxonomy shared by storage,
//     integrity rules and the service layer
//
// Design notes:
//   - Update structs carry one pointer per mutable field instead of a
//     generic untyped merge, so partial updates stay type-checked.
//   - The subscription graph is a denormalized adjacency list owned by
//     User (SubscribedToUserIDs), not a separate join entity.
package core
