package reductions

import (
	"github.com/CodingThrust/problem-reductions-sub000/polynomial"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/problems"
	"github.com/CodingThrust/problem-reductions-sub000/registry"
)

// identityBackMap passes an assignment through unchanged, used by
// reductions whose target has exactly the source's variables in the
// same order (spec.md §8 scenario 2).
func identityBackMap(a problem.Assignment) problem.Assignment { return a }

// misPenalty picks a single edge-conflict penalty strictly larger than
// the total achievable reward, so no optimal QUBO assignment ever
// includes both endpoints of an edge.
func misPenalty(weights []float64, n int) float64 {
	var total float64
	for i := 0; i < n; i++ {
		if weights == nil {
			total++
			continue
		}
		total += weights[i]
	}
	return total + 1
}

func init() {
	registry.Register(registry.Rule{
		SourceName:    problems.NameMaximumIndependentSet,
		SourceVariant: problems.MaximumIndependentSet{}.Variant,
		TargetName:    problems.NameQUBO,
		TargetVariant: problems.QUBO{}.Variant,
		Overhead: []registry.OverheadField{
			{Field: "num_vars", Poly: polynomial.Var("num_vertices")},
		},
		ModulePath: "reductions.MISToQUBO",
		Reduce: func(source problem.Problem) (problem.Problem, registry.BackMap, error) {
			mis := source.(problems.MaximumIndependentSet)
			n := mis.Graph.NumVertices
			q := make([][]float64, n)
			for i := range q {
				q[i] = make([]float64, n)
			}
			var weight func(int) float64
			if mis.Weights == nil {
				weight = func(int) float64 { return 1 }
			} else {
				weight = func(i int) float64 { return mis.Weights[i] }
			}
			for i := 0; i < n; i++ {
				q[i][i] -= weight(i)
			}
			penalty := misPenalty(mis.Weights, n)
			for _, e := range mis.Graph.Edges {
				q[e.From][e.To] += penalty
			}
			return problems.QUBO{Q: q}, identityBackMap, nil
		},
	})
}
