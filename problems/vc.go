package problems

import (
	"encoding/json"

	"github.com/CodingThrust/problem-reductions-sub000/graphmodel"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/profile"
	"github.com/CodingThrust/problem-reductions-sub000/variant"
)

// NameMinimumVertexCover is the registered problem name.
const NameMinimumVertexCover = "MinimumVertexCover"

// MinimumVertexCover asks for the smallest set of vertices touching
// every edge.
type MinimumVertexCover struct {
	Graph   graphmodel.SimpleGraph
	Weights []float64 // len == Graph.NumVertices; nil means every weight is 1
}

func (p MinimumVertexCover) weight(i int) float64 {
	if p.Weights == nil {
		return 1
	}
	return p.Weights[i]
}

func (MinimumVertexCover) Name() string { return NameMinimumVertexCover }

func (MinimumVertexCover) Variant() problem.VariantTuple {
	return problem.VariantTuple{
		{Category: variant.CategoryGraph, Value: variant.SimpleGraph},
		{Category: variant.CategoryWeight, Value: variant.WeightOne},
	}
}

func (p MinimumVertexCover) SizeProfile() profile.SizeProfile {
	return profile.New(
		profile.Pair{Name: "num_vertices", Value: uint64(p.Graph.NumVertices)},
		profile.Pair{Name: "num_edges", Value: uint64(p.Graph.NumEdges())},
	)
}

func (p MinimumVertexCover) NumVariables() int { return p.Graph.NumVertices }
func (MinimumVertexCover) NumFlavors() int      { return 2 }

func (p MinimumVertexCover) Evaluate(a problem.Assignment) problem.Evaluation {
	if !a.Validate(p.NumVariables(), p.NumFlavors()) {
		return problem.Infeasible
	}
	for _, e := range p.Graph.Edges {
		if a[e.From] == 0 && a[e.To] == 0 {
			return problem.Infeasible
		}
	}
	var objective float64
	for i, v := range a {
		if v == 1 {
			objective += p.weight(i)
		}
	}
	return problem.Evaluation{Feasible: true, Objective: objective, Direction: problem.Minimize}
}

type vcData struct {
	Graph   graphmodel.SimpleGraph `json:"graph"`
	Weights []float64              `json:"weights,omitempty"`
}

func (p MinimumVertexCover) MarshalData() (json.RawMessage, error) {
	return json.Marshal(vcData{Graph: p.Graph, Weights: p.Weights})
}

func decodeVC(_ problem.VariantTuple, data json.RawMessage) (problem.Problem, error) {
	var d vcData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return MinimumVertexCover{Graph: d.Graph, Weights: d.Weights}, nil
}

func init() {
	problem.RegisterSchema(NameMinimumVertexCover, decodeVC)
	problem.RegisterCategory(NameMinimumVertexCover, "graph")
	problem.RegisterDocPath(NameMinimumVertexCover, "problems.MinimumVertexCover")
}
