package reductions

import (
	"github.com/CodingThrust/problem-reductions-sub000/polynomial"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/problems"
	"github.com/CodingThrust/problem-reductions-sub000/registry"
	"github.com/CodingThrust/problem-reductions-sub000/variant"
)

// coloringPenalty is the per-constraint QUBO penalty weight: any
// constraint violation (a vertex with zero or multiple colors, or an
// edge whose endpoints share a color) costs strictly more than the
// maximum possible saving elsewhere, since this encoding has no reward
// term to outweigh.
const coloringPenalty = 1.0

func init() {
	registry.Register(registry.Rule{
		SourceName: problems.NameGraphColoring,
		// Registered against the unbounded k:KN variant; a concrete K3
		// instance still matches via the planner's subtyping check
		// (spec.md §9, "polymorphism over variants").
		SourceVariant: func() problem.VariantTuple {
			return problem.VariantTuple{
				{Category: variant.CategoryGraph, Value: variant.SimpleGraph},
				{Category: variant.CategoryK, Value: variant.KN},
			}
		},
		TargetName:    problems.NameQUBO,
		TargetVariant: problems.QUBO{}.Variant,
		Overhead: []registry.OverheadField{
			{Field: "num_vars", Poly: polynomial.Var("num_vertices").Mul(polynomial.Var("k"))},
		},
		ModulePath: "reductions.GraphColoringToQUBO",
		Reduce: func(source problem.Problem) (problem.Problem, registry.BackMap, error) {
			gc := source.(problems.GraphColoring)
			n, k := gc.Graph.NumVertices, gc.K
			numVars := n * k
			q := make([][]float64, numVars)
			for i := range q {
				q[i] = make([]float64, numVars)
			}
			idx := func(v, c int) int { return v*k + c }

			for v := 0; v < n; v++ {
				for c := 0; c < k; c++ {
					q[idx(v, c)][idx(v, c)] -= coloringPenalty
				}
				for c := 0; c < k; c++ {
					for c2 := c + 1; c2 < k; c2++ {
						q[idx(v, c)][idx(v, c2)] += 2 * coloringPenalty
					}
				}
			}
			for _, e := range gc.Graph.Edges {
				for c := 0; c < k; c++ {
					q[idx(e.From, c)][idx(e.To, c)] += coloringPenalty
				}
			}

			backMap := func(a problem.Assignment) problem.Assignment {
				out := make(problem.Assignment, n)
				for v := 0; v < n; v++ {
					for c := 0; c < k; c++ {
						if a[idx(v, c)] == 1 {
							out[v] = c
							break
						}
					}
				}
				return out
			}
			return problems.QUBO{Q: q}, backMap, nil
		},
	})
}
