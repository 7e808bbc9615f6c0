// Package mapx provides generic, stateless transformation helpers for Go
// maps — filtering, grouping, inversion, relational joins, deep merging,
// and dot-path access to nested map[string]any structures — together with
// a few specialized ordered container types.
//
// # Immutability
//
// Functions taking a map allocate and return a new map; inputs are never
// mutated. The only exceptions are the in-place nested-map writers
// ([SetPath], [ForgetPath]) and the container types, whose whole point is
// mutation.
//
// # Encounter order
//
// Go map iteration order is unspecified, so operations whose result
// depends on which colliding item is seen first or last take an ordered
// item stream (iter.Seq2[K, V]) instead of a map:
//
//	om := mapx.NewOrderedMap[string, int]()
//	om.Set("alice", 10)
//	om.Set("bob", 10)
//	inv := mapx.InvertLastSeen(om.All()) // 10 → "bob", deterministically
//
// [OrderedMap.All] and [SortedItems] are the usual feeders. The map-input
// [Invert] is provided for when collisions are known absent (see
// [IsOneToOne]) or the winner does not matter.
//
// # Nested maps
//
// Dot-notation helpers read and write deeply nested map[string]any values:
//
//	m := map[string]any{"user": map[string]any{"name": "Alice"}}
//	v, ok := mapx.GetPath(m, "user.name") // "Alice", true
//	mapx.SetPath(m, "user.address.city", "London")
//
// A lookup distinguishes "key absent" from "key present with a nil value";
// the ok result is authoritative.
package mapx
