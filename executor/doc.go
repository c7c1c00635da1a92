// Package executor walks a planner.Path against a concrete source
// instance, materialising every intermediate instance by invoking
// registered reducers (or a cast fallback) and composing back-maps in
// reverse (spec.md §4.8).
//
// Like dijkstra/dijkstra.go's runner and planner's own path search, a
// Chain owns all of its state for a single call and is never shared
// across goroutines (spec.md §5).
package executor
