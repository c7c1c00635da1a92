// Package problemreductions catalogues NP-hard combinatorial problems
// and the polynomial-overhead reductions between them as a queryable
// graph.
//
// Every problem is a (name, variant) descriptor — MaximumIndependentSet
// on a SimpleGraph, GraphColoring with k=3, QUBO over f64 weights — and
// every reduction is a directed edge carrying the overhead it costs to
// cross (in terms of the source instance's own size profile) plus the
// Go closure that performs the transformation and the back-map that
// recovers a source solution from a target one.
//
// Subpackages:
//
//	polynomial/     — multivariate overhead polynomials over a size profile
//	profile/        — the insertion-ordered size-variable -> value mapping
//	variant/        — the category-tagged variant subtype lattice
//	problem/        — descriptor, Problem interface, Assignment, schema registry
//	problems/       — concrete problems shipped out of the box
//	graphmodel/     — SimpleGraph / UnitDiskGraph instance-data value types
//	fixtures/       — deterministic graph builders for tests and examples
//	registry/       — the append-only reduction rule registry
//	reductions/     — the reduction rules themselves, one file per pair
//	reductiongraph/ — the registry materialised into a directed multigraph
//	planner/        — cheapest-path search and bounded path enumeration
//	executor/       — walks a path against a concrete instance
//	introspect/     — bounded neighbourhood queries and JSON export
//	coreerr/        — the shared Kind + Error wrapper
//
// The registry and the graph built from it are process-wide and
// populated entirely by package-level init() functions; nothing here
// mutates global state after program startup, so every exported type is
// safe to use from any number of goroutines once the process has
// finished loading (see each package's own doc comment for specifics).
package problemreductions
