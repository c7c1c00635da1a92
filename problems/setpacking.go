package problems

import (
	"encoding/json"

	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/profile"
	"github.com/CodingThrust/problem-reductions-sub000/variant"
)

// NameMaximumSetPacking is the registered problem name.
const NameMaximumSetPacking = "MaximumSetPacking"

// MaximumSetPacking asks for the largest collection of pairwise disjoint
// subsets of a universe of NumElements elements.
type MaximumSetPacking struct {
	NumElements int
	Sets        [][]int
	Weights     []float64 // len == len(Sets); nil means every weight is 1
}

func (p MaximumSetPacking) weight(i int) float64 {
	if p.Weights == nil {
		return 1
	}
	return p.Weights[i]
}

func (MaximumSetPacking) Name() string { return NameMaximumSetPacking }

func (MaximumSetPacking) Variant() problem.VariantTuple {
	return problem.VariantTuple{
		{Category: variant.CategoryWeight, Value: variant.WeightOne},
	}
}

func (p MaximumSetPacking) SizeProfile() profile.SizeProfile {
	return profile.New(
		profile.Pair{Name: "num_sets", Value: uint64(len(p.Sets))},
		profile.Pair{Name: "num_elements", Value: uint64(p.NumElements)},
	)
}

func (p MaximumSetPacking) NumVariables() int { return len(p.Sets) }
func (MaximumSetPacking) NumFlavors() int      { return 2 }

func (p MaximumSetPacking) Evaluate(a problem.Assignment) problem.Evaluation {
	if !a.Validate(p.NumVariables(), p.NumFlavors()) {
		return problem.Infeasible
	}
	used := make(map[int]bool, p.NumElements)
	for i, v := range a {
		if v != 1 {
			continue
		}
		for _, e := range p.Sets[i] {
			if used[e] {
				return problem.Infeasible
			}
			used[e] = true
		}
	}
	var objective float64
	for i, v := range a {
		if v == 1 {
			objective += p.weight(i)
		}
	}
	return problem.Evaluation{Feasible: true, Objective: objective, Direction: problem.Maximize}
}

type setPackingData struct {
	NumElements int       `json:"num_elements"`
	Sets        [][]int   `json:"sets"`
	Weights     []float64 `json:"weights,omitempty"`
}

func (p MaximumSetPacking) MarshalData() (json.RawMessage, error) {
	return json.Marshal(setPackingData{NumElements: p.NumElements, Sets: p.Sets, Weights: p.Weights})
}

func decodeSetPacking(_ problem.VariantTuple, data json.RawMessage) (problem.Problem, error) {
	var d setPackingData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return MaximumSetPacking{NumElements: d.NumElements, Sets: d.Sets, Weights: d.Weights}, nil
}

func init() {
	problem.RegisterSchema(NameMaximumSetPacking, decodeSetPacking)
	problem.RegisterCategory(NameMaximumSetPacking, "set")
	problem.RegisterDocPath(NameMaximumSetPacking, "problems.MaximumSetPacking")
}
