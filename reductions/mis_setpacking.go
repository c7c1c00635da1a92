package reductions

import (
	"github.com/CodingThrust/problem-reductions-sub000/graphmodel"
	"github.com/CodingThrust/problem-reductions-sub000/polynomial"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/problems"
	"github.com/CodingThrust/problem-reductions-sub000/registry"
)

// vertexSet returns the element indices for vertex v's set, in the
// shared vertex-then-edge universe used by both this file's naive
// encoding and vc_setpacking.go's efficient one: v's own vertex-element,
// plus one element per edge incident to v (offset past the n
// vertex-elements). Two vertex-sets are disjoint exactly when the
// vertices are non-adjacent: they never share a vertex-element, and they
// share an edge-element iff that edge joins them.
func vertexSet(g graphmodel.SimpleGraph, v int) []int {
	elems := []int{v}
	for ei, e := range g.Edges {
		if e.From == v || e.To == v {
			elems = append(elems, g.NumVertices+ei)
		}
	}
	return elems
}

func init() {
	registry.Register(registry.Rule{
		SourceName:    problems.NameMaximumIndependentSet,
		SourceVariant: problems.MaximumIndependentSet{}.Variant,
		TargetName:    problems.NameMaximumSetPacking,
		TargetVariant: problems.MaximumSetPacking{}.Variant,
		Overhead: []registry.OverheadField{
			// 3 sets per vertex: a deliberately naive encoding kept
			// alongside the efficient MinimumVertexCover->MaximumSetPacking
			// rule so MaximumIndependentSet->MaximumSetPacking has two
			// paths of different cost under different cost functions.
			{Field: "num_sets", Poly: polynomial.Var("num_vertices").Scale(3)},
			{Field: "num_elements", Poly: polynomial.Var("num_vertices").Add(polynomial.Var("num_edges"))},
		},
		ModulePath: "reductions.MISToSetPackingNaive",
		Reduce: func(source problem.Problem) (problem.Problem, registry.BackMap, error) {
			mis := source.(problems.MaximumIndependentSet)
			n := mis.Graph.NumVertices
			sets := make([][]int, 0, 3*n)
			for v := 0; v < n; v++ {
				elems := vertexSet(mis.Graph, v)
				sets = append(sets, elems, elems, elems) // 3 identical copies per vertex
			}
			target := problems.MaximumSetPacking{
				NumElements: n + mis.Graph.NumEdges(),
				Sets:        sets,
			}
			backMap := func(a problem.Assignment) problem.Assignment {
				out := make(problem.Assignment, n)
				for v := 0; v < n; v++ {
					if a[3*v] == 1 || a[3*v+1] == 1 || a[3*v+2] == 1 {
						out[v] = 1
					}
				}
				return out
			}
			return target, backMap, nil
		},
	})
}
