// Package problems bundles the concrete combinatorial-problem types this
// module ships out of the box (spec.md §4.13), each satisfying
// problem.Problem and registering its JSON schema in its init().
package problems

import (
	"encoding/json"

	"github.com/CodingThrust/problem-reductions-sub000/graphmodel"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/profile"
	"github.com/CodingThrust/problem-reductions-sub000/variant"
)

// NameMaximumIndependentSet is the registered problem name.
const NameMaximumIndependentSet = "MaximumIndependentSet"

// MaximumIndependentSet asks for the largest set of pairwise
// non-adjacent vertices; Weights lets a vertex contribute more than 1 to
// the objective, though the default variant (weight:One) uses all-1s.
type MaximumIndependentSet struct {
	Graph   graphmodel.SimpleGraph
	Weights []float64 // len == Graph.NumVertices; nil means every weight is 1
}

func (p MaximumIndependentSet) weight(i int) float64 {
	if p.Weights == nil {
		return 1
	}
	return p.Weights[i]
}

func (MaximumIndependentSet) Name() string { return NameMaximumIndependentSet }

func (MaximumIndependentSet) Variant() problem.VariantTuple {
	return problem.VariantTuple{
		{Category: variant.CategoryGraph, Value: variant.SimpleGraph},
		{Category: variant.CategoryWeight, Value: variant.WeightOne},
	}
}

func (p MaximumIndependentSet) SizeProfile() profile.SizeProfile {
	return profile.New(
		profile.Pair{Name: "num_vertices", Value: uint64(p.Graph.NumVertices)},
		profile.Pair{Name: "num_edges", Value: uint64(p.Graph.NumEdges())},
	)
}

func (p MaximumIndependentSet) NumVariables() int { return p.Graph.NumVertices }
func (MaximumIndependentSet) NumFlavors() int      { return 2 }

func (p MaximumIndependentSet) Evaluate(a problem.Assignment) problem.Evaluation {
	if !a.Validate(p.NumVariables(), p.NumFlavors()) {
		return problem.Infeasible
	}
	for _, e := range p.Graph.Edges {
		if a[e.From] == 1 && a[e.To] == 1 {
			return problem.Infeasible
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

type misData struct {
	Graph   graphmodel.SimpleGraph `json:"graph"`
	Weights []float64              `json:"weights,omitempty"`
}

func (p MaximumIndependentSet) MarshalData() (json.RawMessage, error) {
	return json.Marshal(misData{Graph: p.Graph, Weights: p.Weights})
}

func decodeMIS(_ problem.VariantTuple, data json.RawMessage) (problem.Problem, error) {
	var d misData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return MaximumIndependentSet{Graph: d.Graph, Weights: d.Weights}, nil
}

func init() {
	problem.RegisterSchema(NameMaximumIndependentSet, decodeMIS)
	problem.RegisterCategory(NameMaximumIndependentSet, "graph")
	problem.RegisterDocPath(NameMaximumIndependentSet, "problems.MaximumIndependentSet")
}
