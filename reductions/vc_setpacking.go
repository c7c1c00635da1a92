package reductions

import (
	"github.com/CodingThrust/problem-reductions-sub000/polynomial"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/problems"
	"github.com/CodingThrust/problem-reductions-sub000/registry"
)

func init() {
	registry.Register(registry.Rule{
		SourceName:    problems.NameMinimumVertexCover,
		SourceVariant: problems.MinimumVertexCover{}.Variant,
		TargetName:    problems.NameMaximumSetPacking,
		TargetVariant: problems.MaximumSetPacking{}.Variant,
		Overhead: []registry.OverheadField{
			// one set per vertex: the efficient encoding, kept alongside
			// the naive 3x MaximumIndependentSet->MaximumSetPacking rule
			// so the pair has two paths of different cost (spec.md §8
			// scenario 6).
			{Field: "num_sets", Poly: polynomial.Var("num_vertices")},
			{Field: "num_elements", Poly: polynomial.Var("num_vertices").Add(polynomial.Var("num_edges"))},
		},
		ModulePath: "reductions.VCToSetPacking",
		Reduce: func(source problem.Problem) (problem.Problem, registry.BackMap, error) {
			vc := source.(problems.MinimumVertexCover)
			n := vc.Graph.NumVertices
			sets := make([][]int, n)
			for v := 0; v < n; v++ {
				sets[v] = vertexSet(vc.Graph, v)
			}
			target := problems.MaximumSetPacking{
				NumElements: n + vc.Graph.NumEdges(),
				Sets:        sets,
			}
			// A packed set v means v is in the complementary independent
			// set, hence excluded from the vertex cover.
			return target, flipAssignment, nil
		},
	})
}
