package problems

import (
	"encoding/json"

	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/profile"
	"github.com/CodingThrust/problem-reductions-sub000/variant"
)

// NameSpinGlass is the registered problem name.
const NameSpinGlass = "SpinGlass"

// SpinGlass is Ising-model energy minimisation over spins s_i in
// {-1,+1}: minimise sum_{i<j} J[i][j]*s_i*s_j + sum_i H[i]*s_i. An
// Assignment's flavor 0 maps to spin -1 and flavor 1 maps to spin +1.
type SpinGlass struct {
	Couplings [][]float64 // N x N, read only for i<j; entries elsewhere are ignored
	Fields    []float64   // len N
}

func spin(flavor int) float64 {
	if flavor == 1 {
		return 1
	}
	return -1
}

func (SpinGlass) Name() string { return NameSpinGlass }

func (SpinGlass) Variant() problem.VariantTuple {
	return problem.VariantTuple{{Category: variant.CategoryWeight, Value: variant.WeightF64}}
}

func (p SpinGlass) SizeProfile() profile.SizeProfile {
	return profile.New(profile.Pair{Name: "num_spins", Value: uint64(len(p.Fields))})
}

func (p SpinGlass) NumVariables() int { return len(p.Fields) }
func (SpinGlass) NumFlavors() int      { return 2 }

func (p SpinGlass) Evaluate(a problem.Assignment) problem.Evaluation {
	if !a.Validate(p.NumVariables(), p.NumFlavors()) {
		return problem.Infeasible
	}
	spins := make([]float64, len(a))
	for i, f := range a {
		spins[i] = spin(f)
	}
	var objective float64
	for i := range spins {
		for j := i + 1; j < len(spins); j++ {
			if i < len(p.Couplings) && j < len(p.Couplings[i]) {
				objective += p.Couplings[i][j] * spins[i] * spins[j]
			}
		}
		objective += p.Fields[i] * spins[i]
	}
	return problem.Evaluation{Feasible: true, Objective: objective, Direction: problem.Minimize}
}

type spinGlassData struct {
	Couplings [][]float64 `json:"couplings"`
	Fields    []float64   `json:"fields"`
}

func (p SpinGlass) MarshalData() (json.RawMessage, error) {
	return json.Marshal(spinGlassData{Couplings: p.Couplings, Fields: p.Fields})
}

func decodeSpinGlass(_ problem.VariantTuple, data json.RawMessage) (problem.Problem, error) {
	var d spinGlassData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return SpinGlass{Couplings: d.Couplings, Fields: d.Fields}, nil
}

func init() {
	problem.RegisterSchema(NameSpinGlass, decodeSpinGlass)
	problem.RegisterCategory(NameSpinGlass, "optimization")
	problem.RegisterDocPath(NameSpinGlass, "problems.SpinGlass")
}
