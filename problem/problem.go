package problem

import (
	"encoding/json"

	"github.com/CodingThrust/problem-reductions-sub000/profile"
)

// Direction is the sense in which a Problem's objective is optimised.
type Direction int

const (
	// Minimize means smaller Evaluation.Objective values are better.
	Minimize Direction = iota
	// Maximize means larger Evaluation.Objective values are better.
	Maximize
)

func (d Direction) String() string {
	if d == Maximize {
		return "maximize"
	}
	return "minimize"
}

// Evaluation is the result of evaluating an Assignment against a Problem
// instance (spec.md §4.4): either the assignment is infeasible, or it
// carries a comparable real-valued objective and the direction in which
// that objective is optimised.
type Evaluation struct {
	Feasible  bool
	Objective float64
	Direction Direction
}

// Infeasible is the Evaluation returned for an assignment that violates
// a problem's constraints.
var Infeasible = Evaluation{Feasible: false}

// Assignment is a length-NumVariables sequence of flavor indices, each
// in [0, NumFlavors) (spec.md GLOSSARY).
type Assignment []int

// Validate reports whether a has the expected length and every
// component is in range.
func (a Assignment) Validate(numVariables, numFlavors int) bool {
	if len(a) != numVariables {
		return false
	}
	for _, v := range a {
		if v < 0 || v >= numFlavors {
			return false
		}
	}
	return true
}

// Problem is the minimum surface every concrete combinatorial problem
// must implement to participate as a reduction-graph node (spec.md
// §4.10). Name is fixed per Go type. Variant is usually fixed per type
// too, but a type parameterised by a lattice-valued field (e.g.
// GraphColoring's k) may return the most specific descriptor its current
// field value admits — the planner resolves applicability against a
// more general registered rule via variant subtyping (spec.md §4.7), not
// by requiring an exact match.
type Problem interface {
	// Name is the canonical problem name used as the descriptor's key.
	Name() string
	// Variant is the variant tuple of this problem's static type.
	Variant() VariantTuple
	// SizeProfile computes this instance's current size profile.
	SizeProfile() profile.SizeProfile
	// NumVariables is the length of a valid Assignment for this instance.
	NumVariables() int
	// NumFlavors is the exclusive upper bound on each Assignment component.
	NumFlavors() int
	// Evaluate scores an Assignment against this instance.
	Evaluate(a Assignment) Evaluation
	// MarshalData encodes this instance's problem-specific payload, the
	// opaque "data" field of the JSON envelope (spec.md §6).
	MarshalData() (json.RawMessage, error)
}

// DescriptorOf returns the (Name, Variant) pair identifying p's node.
func DescriptorOf(p Problem) Descriptor {
	return Descriptor{Name: p.Name(), Variant: p.Variant()}
}

// Castable is implemented by a Problem whose declared variant has a
// registered parent in the variant lattice and that knows how to
// reconstruct itself as an instance of that parent (spec.md's
// cast_to_parent, applied at the instance level rather than per
// variant-parameter marker type — see DESIGN.md for why). The executor
// (C8) invokes CastToParent when a path step has no registered reducer
// for the current descriptor pair.
type Castable interface {
	Problem
	// CastToParent produces an instance whose variant carries the named
	// category's registered parent value, deriving whatever instance data
	// the cast requires. The problem name of the result is whatever the
	// concrete type returns: MaximumIndependentSetUnitDisk casts to a
	// MaximumIndependentSet, whose name differs. ok is false if
	// this instance cannot perform the requested cast (a programming
	// error in the concrete problem, surfaced by the executor as
	// MissingReducer).
	CastToParent(category string) (parent Problem, ok bool)
}
