// Package unifiedmap implements a unified open-addressed hash map: keys and
// values live in alternating slots of a single flat slice rather than as
// separately allocated entry objects, which is friendlier to CPU caches than
// a chained-bucket table.
//
// Collisions are handled by repurposing the same flat slice: a distinguished
// sentinel placed in a key slot marks that the companion value slot holds an
// overflow chain instead of a direct value, rather than allocating a
// separate entry node per collision. This keeps the common (non-colliding)
// case allocation-free while still giving correct semantics for collisions,
// null keys/values, iteration with structural removal, growth, and
// serialization.
//
// Map is not safe for concurrent use. It is a single-writer structure: all
// methods assume the caller serializes access, the same way a plain Go
// map requires external synchronization for concurrent writers. Iteration
// order is unspecified and is not guaranteed stable across mutation.
package unifiedmap
