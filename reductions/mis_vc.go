// Package reductions registers every reduction rule this module ships
// out of the box (spec.md §4.13), one file per (source, target) pair,
// each calling registry.Register from its own init().
package reductions

import (
	"github.com/CodingThrust/problem-reductions-sub000/polynomial"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/problems"
	"github.com/CodingThrust/problem-reductions-sub000/registry"
)

// flipAssignment returns a new assignment with every 0/1 component
// inverted, used by both directions of the MIS<->VC reduction (a vertex
// is in a maximum independent set iff it is excluded from a
// complementary minimum vertex cover).
func flipAssignment(a problem.Assignment) problem.Assignment {
	out := make(problem.Assignment, len(a))
	for i, v := range a {
		out[i] = 1 - v
	}
	return out
}

func init() {
	registry.Register(registry.Rule{
		SourceName:    problems.NameMaximumIndependentSet,
		SourceVariant: problems.MaximumIndependentSet{}.Variant,
		TargetName:    problems.NameMinimumVertexCover,
		TargetVariant: problems.MinimumVertexCover{}.Variant,
		Overhead: []registry.OverheadField{
			{Field: "num_vertices", Poly: polynomial.Var("num_vertices")},
			{Field: "num_edges", Poly: polynomial.Var("num_edges")},
		},
		ModulePath: "reductions.MISToVC",
		Reduce: func(source problem.Problem) (problem.Problem, registry.BackMap, error) {
			mis := source.(problems.MaximumIndependentSet)
			target := problems.MinimumVertexCover{Graph: mis.Graph, Weights: mis.Weights}
			return target, flipAssignment, nil
		},
	})

	registry.Register(registry.Rule{
		SourceName:    problems.NameMinimumVertexCover,
		SourceVariant: problems.MinimumVertexCover{}.Variant,
		TargetName:    problems.NameMaximumIndependentSet,
		TargetVariant: problems.MaximumIndependentSet{}.Variant,
		Overhead: []registry.OverheadField{
			{Field: "num_vertices", Poly: polynomial.Var("num_vertices")},
			{Field: "num_edges", Poly: polynomial.Var("num_edges")},
		},
		ModulePath: "reductions.VCToMIS",
		Reduce: func(source problem.Problem) (problem.Problem, registry.BackMap, error) {
			vc := source.(problems.MinimumVertexCover)
			target := problems.MaximumIndependentSet{Graph: vc.Graph, Weights: vc.Weights}
			return target, flipAssignment, nil
		},
	})
}
