// Package planner implements path search over the reduction graph
// (spec.md §4.7): a Dijkstra variant adapted directly from the teacher's
// dijkstra/dijkstra.go (the same lazy-decrease-key heap, the same
// runner-owns-all-mutable-state shape), generalised so that:
//
//   - nodes are problem descriptors discovered via variant-subtype-aware
//     neighbour enumeration rather than a fixed adjacency list,
//   - an edge's cost depends on the size profile accumulated so far
//     along the walk, not a fixed scalar weight,
//   - the frontier is kept in a float64 min-heap instead of an int64 one.
package planner
