// Package storage provides the in-memory entity store.
//
// The store is the sole mutable state holder. It keeps four
// insertion-ordered collections (users, posts, profiles, member types)
// and exposes primitive lookup and mutation operations; cross-entity
// validation and cascading side effects live in the integrity and
// service packages, keeping the store free of entity-specific logic.
//
// # Filters
//
// Lookups accept a single predicate-shaped [Filter] over a named field:
//
//   - Equals: scalar field equals a value
//   - OneOf: scalar field equals any value of a set (batched loads)
//   - Contains: sequence field contains a value (reverse subscriptions)
//
// # Concurrency
//
// Each collection carries its own RWMutex, so every store call is
// atomic in isolation and reads never observe a torn write. There is
// no cross-call locking: composite operations such as the user delete
// cascade are their own transaction boundary, and a failure mid-way
// leaves partial state. The store is volatile and process-lifetime
// only; durability is out of scope.
package storage
