package problems

import (
	"encoding/json"

	"github.com/CodingThrust/problem-reductions-sub000/graphmodel"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/profile"
	"github.com/CodingThrust/problem-reductions-sub000/variant"
)

// NameMaximumIndependentSetUnitDisk is the registered problem name.
const NameMaximumIndependentSetUnitDisk = "MaximumIndependentSetUnitDisk"

// MaximumIndependentSetUnitDisk is MaximumIndependentSet restricted to
// unit-disk graphs: adjacency is derived from Euclidean distance rather
// than stored directly, and the instance can cast up to a plain
// MaximumIndependentSet once that derivation has been performed
// (spec.md §4.11, §9).
type MaximumIndependentSetUnitDisk struct {
	Graph graphmodel.UnitDiskGraph
}

func (MaximumIndependentSetUnitDisk) Name() string { return NameMaximumIndependentSetUnitDisk }

func (MaximumIndependentSetUnitDisk) Variant() problem.VariantTuple {
	return problem.VariantTuple{
		{Category: variant.CategoryGraph, Value: variant.UnitDiskGraph},
		{Category: variant.CategoryWeight, Value: variant.WeightOne},
	}
}

func (p MaximumIndependentSetUnitDisk) SizeProfile() profile.SizeProfile {
	simple := p.Graph.ToSimpleGraph()
	return profile.New(
		profile.Pair{Name: "num_vertices", Value: uint64(simple.NumVertices)},
		profile.Pair{Name: "num_edges", Value: uint64(simple.NumEdges())},
	)
}

func (p MaximumIndependentSetUnitDisk) NumVariables() int { return len(p.Graph.Points) }
func (MaximumIndependentSetUnitDisk) NumFlavors() int      { return 2 }

func (p MaximumIndependentSetUnitDisk) Evaluate(a problem.Assignment) problem.Evaluation {
	return MaximumIndependentSet{Graph: p.Graph.ToSimpleGraph()}.Evaluate(a)
}

type misUnitDiskData struct {
	Graph graphmodel.UnitDiskGraph `json:"graph"`
}

func (p MaximumIndependentSetUnitDisk) MarshalData() (json.RawMessage, error) {
	return json.Marshal(misUnitDiskData{Graph: p.Graph})
}

// CastToParent derives the SimpleGraph implied by the unit-disk
// geometry; this is a one-way cast (spec.md §9: a UnitDiskGraph never
// re-derives its point coordinates from a plain SimpleGraph).
func (p MaximumIndependentSetUnitDisk) CastToParent(category string) (problem.Problem, bool) {
	if category != variant.CategoryGraph {
		return nil, false
	}
	return MaximumIndependentSet{Graph: p.Graph.ToSimpleGraph()}, true
}

func decodeMISUnitDisk(_ problem.VariantTuple, data json.RawMessage) (problem.Problem, error) {
	var d misUnitDiskData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return MaximumIndependentSetUnitDisk{Graph: d.Graph}, nil
}

func init() {
	problem.RegisterSchema(NameMaximumIndependentSetUnitDisk, decodeMISUnitDisk)
	problem.RegisterCategory(NameMaximumIndependentSetUnitDisk, "graph")
	problem.RegisterDocPath(NameMaximumIndependentSetUnitDisk, "problems.MaximumIndependentSetUnitDisk")
}
