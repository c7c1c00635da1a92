// Package fixtures provides small deterministic graphmodel.SimpleGraph
// constructors for tests and documentation examples (spec.md §4.12),
// adapted from builder/impl_path.go and builder/impl_complete.go: the
// same "emit vertices 0..n-1, then emit edges in stable lexicographic
// order" shape, stripped of the teacher's core.Graph mutation/option
// machinery since a fixture here is a single immutable value, not a
// graph built incrementally under a functional-options config.
package fixtures

import (
	"fmt"

	"github.com/CodingThrust/problem-reductions-sub000/graphmodel"
)

// ErrTooFewVertices mirrors the teacher's builder.ErrTooFewVertices
// sentinel for fixtures that are undefined below a minimum size.
var ErrTooFewVertices = fmt.Errorf("fixtures: too few vertices")

// PathGraph returns the simple path P_n: edges (0,1), (1,2), ..., (n-2,n-1).
func PathGraph(n int) (graphmodel.SimpleGraph, error) {
	if n < 2 {
		return graphmodel.SimpleGraph{}, fmt.Errorf("PathGraph: n=%d: %w", n, ErrTooFewVertices)
	}
	edges := make([]graphmodel.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, graphmodel.Edge{From: i - 1, To: i})
	}
	return graphmodel.NewSimpleGraph(n, edges), nil
}

// CompleteGraph returns the complete simple graph K_n: every unordered
// pair {i,j}, i<j, exactly once.
func CompleteGraph(n int) (graphmodel.SimpleGraph, error) {
	if n < 1 {
		return graphmodel.SimpleGraph{}, fmt.Errorf("CompleteGraph: n=%d: %w", n, ErrTooFewVertices)
	}
	edges := make([]graphmodel.Edge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, graphmodel.Edge{From: i, To: j})
		}
	}
	return graphmodel.NewSimpleGraph(n, edges), nil
}

// Triangle is CompleteGraph(3), K_3 — the smallest odd cycle, a common
// smoke-test fixture for coloring and independent-set problems.
func Triangle() graphmodel.SimpleGraph {
	g, _ := CompleteGraph(3)
	return g
}

// CycleGraph returns the simple cycle C_n: PathGraph(n) plus the closing
// edge (n-1,0).
func CycleGraph(n int) (graphmodel.SimpleGraph, error) {
	if n < 3 {
		return graphmodel.SimpleGraph{}, fmt.Errorf("CycleGraph: n=%d: %w", n, ErrTooFewVertices)
	}
	p, err := PathGraph(n)
	if err != nil {
		return graphmodel.SimpleGraph{}, err
	}
	edges := append(p.Edges, graphmodel.Edge{From: n - 1, To: 0})
	return graphmodel.NewSimpleGraph(n, edges), nil
}

// StarGraph returns the star K_{1,n-1}: vertex 0 connected to every
// other vertex, no other edges.
func StarGraph(n int) (graphmodel.SimpleGraph, error) {
	if n < 2 {
		return graphmodel.SimpleGraph{}, fmt.Errorf("StarGraph: n=%d: %w", n, ErrTooFewVertices)
	}
	edges := make([]graphmodel.Edge, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, graphmodel.Edge{From: 0, To: i})
	}
	return graphmodel.NewSimpleGraph(n, edges), nil
}

// UnitDiskGrid returns a UnitDiskGraph whose points form a rows x cols
// integer grid with unit spacing and a connection radius slightly above
// 1, so only axis-aligned nearest neighbours are adjacent.
func UnitDiskGrid(rows, cols int) (graphmodel.UnitDiskGraph, error) {
	if rows < 1 || cols < 1 {
		return graphmodel.UnitDiskGraph{}, fmt.Errorf("UnitDiskGrid: rows=%d cols=%d: %w", rows, cols, ErrTooFewVertices)
	}
	points := make([]graphmodel.Point, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			points = append(points, graphmodel.Point{X: float64(c), Y: float64(r)})
		}
	}
	return graphmodel.UnitDiskGraph{Points: points, Radius: 1.01}, nil
}
