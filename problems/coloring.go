package problems

import (
	"encoding/json"

	"github.com/CodingThrust/problem-reductions-sub000/graphmodel"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/profile"
	"github.com/CodingThrust/problem-reductions-sub000/variant"
)

// NameGraphColoring is the registered problem name.
const NameGraphColoring = "GraphColoring"

// GraphColoring asks whether Graph's vertices can be labelled with K
// colors so that no edge joins two equally-coloured vertices. K is
// instance data rather than a type parameter; Variant reports the most
// specific k-lattice value K admits (K1..K4 for small K, KN otherwise),
// so a reduction registered against the general k:KN variant still
// applies to a concrete K3 instance via the planner's subtyping check
// (spec.md §9, "polymorphism over variants").
type GraphColoring struct {
	Graph graphmodel.SimpleGraph
	K     int
}

func (GraphColoring) Name() string { return NameGraphColoring }

func (p GraphColoring) Variant() problem.VariantTuple {
	k := variant.KN
	if v, ok := kValueName(p.K); ok {
		k = v
	}
	return problem.VariantTuple{
		{Category: variant.CategoryGraph, Value: variant.SimpleGraph},
		{Category: variant.CategoryK, Value: k},
	}
}

// kValueName maps a concrete color count to its registered k-lattice
// name, when one exists (spec.md §8: K1..K4 are the only bounded
// values); larger or non-positive k has no specific lattice entry and
// falls back to the unbounded root KN.
func kValueName(k int) (string, bool) {
	switch k {
	case 1:
		return variant.K1, true
	case 2:
		return variant.K2, true
	case 3:
		return variant.K3, true
	case 4:
		return variant.K4, true
	default:
		return "", false
	}
}

func (p GraphColoring) SizeProfile() profile.SizeProfile {
	return profile.New(
		profile.Pair{Name: "num_vertices", Value: uint64(p.Graph.NumVertices)},
		profile.Pair{Name: "num_edges", Value: uint64(p.Graph.NumEdges())},
		profile.Pair{Name: "k", Value: uint64(p.K)},
	)
}

func (p GraphColoring) NumVariables() int { return p.Graph.NumVertices }
func (p GraphColoring) NumFlavors() int    { return p.K }

func (p GraphColoring) Evaluate(a problem.Assignment) problem.Evaluation {
	if !a.Validate(p.NumVariables(), p.NumFlavors()) {
		return problem.Infeasible
	}
	for _, e := range p.Graph.Edges {
		if a[e.From] == a[e.To] {
			return problem.Infeasible
		}
	}
	return problem.Evaluation{Feasible: true, Objective: 0, Direction: problem.Minimize}
}

type coloringData struct {
	Graph graphmodel.SimpleGraph `json:"graph"`
	K     int                    `json:"k"`
}

func (p GraphColoring) MarshalData() (json.RawMessage, error) {
	return json.Marshal(coloringData{Graph: p.Graph, K: p.K})
}

func decodeColoring(_ problem.VariantTuple, data json.RawMessage) (problem.Problem, error) {
	var d coloringData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return GraphColoring{Graph: d.Graph, K: d.K}, nil
}

func init() {
	problem.RegisterSchema(NameGraphColoring, decodeColoring)
	problem.RegisterCategory(NameGraphColoring, "graph")
	problem.RegisterDocPath(NameGraphColoring, "problems.GraphColoring")
}
