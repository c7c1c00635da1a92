package problems

import (
	"encoding/json"

	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/profile"
	"github.com/CodingThrust/problem-reductions-sub000/variant"
)

// NameQUBO is the registered problem name.
const NameQUBO = "QUBO"

// QUBO is quadratic unconstrained binary optimisation: minimise
// sum_{i,j} Q[i][j] * x_i * x_j over x in {0,1}^N.
type QUBO struct {
	Q [][]float64 // N x N; need not be symmetric, the objective sums every (i,j) pair once
}

func (QUBO) Name() string { return NameQUBO }

func (QUBO) Variant() problem.VariantTuple {
	return problem.VariantTuple{{Category: variant.CategoryWeight, Value: variant.WeightF64}}
}

func (p QUBO) SizeProfile() profile.SizeProfile {
	return profile.New(profile.Pair{Name: "num_vars", Value: uint64(len(p.Q))})
}

func (p QUBO) NumVariables() int { return len(p.Q) }
func (QUBO) NumFlavors() int      { return 2 }

func (p QUBO) Evaluate(a problem.Assignment) problem.Evaluation {
	if !a.Validate(p.NumVariables(), p.NumFlavors()) {
		return problem.Infeasible
	}
	var objective float64
	for i, row := range p.Q {
		if a[i] == 0 {
			continue
		}
		for j, q := range row {
			if a[j] == 1 {
				objective += q
			}
		}
	}
	return problem.Evaluation{Feasible: true, Objective: objective, Direction: problem.Minimize}
}

type quboData struct {
	Q [][]float64 `json:"q"`
}

func (p QUBO) MarshalData() (json.RawMessage, error) {
	return json.Marshal(quboData{Q: p.Q})
}

func decodeQUBO(_ problem.VariantTuple, data json.RawMessage) (problem.Problem, error) {
	var d quboData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return QUBO{Q: d.Q}, nil
}

func init() {
	problem.RegisterSchema(NameQUBO, decodeQUBO)
	problem.RegisterCategory(NameQUBO, "optimization")
	problem.RegisterDocPath(NameQUBO, "problems.QUBO")
}
