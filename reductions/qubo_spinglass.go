package reductions

import (
	"github.com/CodingThrust/problem-reductions-sub000/polynomial"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/problems"
	"github.com/CodingThrust/problem-reductions-sub000/registry"
)

// quboToIsing converts a QUBO matrix (objective sum_ij Q[i][j] x_i x_j
// over x in {0,1}) into the equivalent Ising couplings/fields (objective
// sum_{i<j} J[i][j] s_i s_j + sum_i H[i] s_i over s in {-1,+1}) via the
// standard substitution x_i = (s_i+1)/2, dropping the resulting
// assignment-independent constant term (spec.md §4.13 item 7).
func quboToIsing(q [][]float64) (couplings [][]float64, fields []float64) {
	n := len(q)
	couplings = make([][]float64, n)
	fields = make([]float64, n)
	for i := range couplings {
		couplings[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		fields[i] += q[i][i] / 2
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			fields[i] += (q[i][j] + q[j][i]) / 4
			if j > i {
				couplings[i][j] += q[i][j] / 4
			} else {
				couplings[j][i] += q[i][j] / 4
			}
		}
	}
	return couplings, fields
}

func init() {
	registry.Register(registry.Rule{
		SourceName:    problems.NameQUBO,
		SourceVariant: problems.QUBO{}.Variant,
		TargetName:    problems.NameSpinGlass,
		TargetVariant: problems.SpinGlass{}.Variant,
		Overhead: []registry.OverheadField{
			{Field: "num_spins", Poly: polynomial.Var("num_vars")},
		},
		ModulePath: "reductions.QUBOToSpinGlass",
		Reduce: func(source problem.Problem) (problem.Problem, registry.BackMap, error) {
			q := source.(problems.QUBO)
			couplings, fields := quboToIsing(q.Q)
			return problems.SpinGlass{Couplings: couplings, Fields: fields}, identityBackMap, nil
		},
	})
}
