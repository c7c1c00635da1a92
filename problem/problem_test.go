package problem_test

import (
	"encoding/json"
	"testing"

	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubProblem is a minimal Problem used only to exercise the contract
// types in this package, never registered against the real graph.
type stubProblem struct {
	n int
}

func (stubProblem) Name() string { return "stub_problem_test" }
func (stubProblem) Variant() problem.VariantTuple {
	return problem.VariantTuple{{Category: "weight", Value: "One"}}
}
func (p stubProblem) SizeProfile() profile.SizeProfile {
	return profile.New(profile.Pair{Name: "n", Value: uint64(p.n)})
}
func (p stubProblem) NumVariables() int { return p.n }
func (stubProblem) NumFlavors() int     { return 2 }
func (p stubProblem) Evaluate(a problem.Assignment) problem.Evaluation {
	if !a.Validate(p.n, 2) {
		return problem.Infeasible
	}
	return problem.Evaluation{Feasible: true, Objective: float64(len(a)), Direction: problem.Minimize}
}
func (p stubProblem) MarshalData() (json.RawMessage, error) {
	return json.Marshal(map[string]int{"n": p.n})
}

func TestVariantTuple_Get(t *testing.T) {
	vt := problem.VariantTuple{{Category: "graph", Value: "SimpleGraph"}, {Category: "weight", Value: "One"}}
	v, ok := vt.Get("weight")
	assert.True(t, ok)
	assert.Equal(t, "One", v)

	_, ok = vt.Get("missing")
	assert.False(t, ok)
}

func TestDescriptor_NormalisedGraphDefault(t *testing.T) {
	d := problem.Descriptor{Name: "X", Variant: problem.VariantTuple{{Category: "graph", Value: ""}}}
	norm := d.Normalised()
	v, ok := norm.Variant.Get("graph")
	require.True(t, ok)
	assert.Equal(t, "SimpleGraph", v)
}

func TestDescriptor_Equal(t *testing.T) {
	a := problem.Descriptor{Name: "X", Variant: problem.VariantTuple{{Category: "weight", Value: "One"}}}
	b := problem.Descriptor{Name: "X", Variant: problem.VariantTuple{{Category: "weight", Value: "One"}}}
	c := problem.Descriptor{Name: "X", Variant: problem.VariantTuple{{Category: "weight", Value: "f64"}}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestSortDescriptors_DeterministicTotalOrder(t *testing.T) {
	ds := []problem.Descriptor{
		{Name: "B", Variant: nil},
		{Name: "A", Variant: problem.VariantTuple{{Category: "weight", Value: "f64"}}},
		{Name: "A", Variant: problem.VariantTuple{{Category: "weight", Value: "One"}}},
	}
	problem.SortDescriptors(ds)
	assert.Equal(t, "A", ds[0].Name)
	assert.Equal(t, "A", ds[1].Name)
	assert.Equal(t, "B", ds[2].Name)
	assert.True(t, ds[0].Variant.String() < ds[1].Variant.String())
}

func TestAssignment_Validate(t *testing.T) {
	a := problem.Assignment{0, 1, 1}
	assert.True(t, a.Validate(3, 2))
	assert.False(t, a.Validate(2, 2))
	assert.False(t, a.Validate(3, 1))
}

func TestDescriptorOf(t *testing.T) {
	d := problem.DescriptorOf(stubProblem{n: 4})
	assert.Equal(t, "stub_problem_test", d.Name)
}

func TestEncodeDecodeInstance_RoundTrip(t *testing.T) {
	problem.RegisterSchema("stub_problem_test", func(_ problem.VariantTuple, data json.RawMessage) (problem.Problem, error) {
		var payload struct {
			N int `json:"n"`
		}
		if err := json.Unmarshal(data, &payload); err != nil {
			return nil, err
		}
		return stubProblem{n: payload.N}, nil
	})
	problem.RegisterCategory("stub_problem_test", "scratch")

	raw, err := problem.EncodeInstance(stubProblem{n: 5})
	require.NoError(t, err)

	decoded, err := problem.DecodeInstance(raw)
	require.NoError(t, err)
	assert.Equal(t, 5, decoded.NumVariables())
	assert.Equal(t, "scratch", problem.CategoryOf("stub_problem_test"))
}

func TestDecodeInstance_UnknownProblem(t *testing.T) {
	raw, err := json.Marshal(map[string]interface{}{"type": "nope-not-registered", "data": map[string]int{}})
	require.NoError(t, err)

	_, err = problem.DecodeInstance(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, problem.ErrUnknownProblem)
}
