package reductions_test

import (
	"testing"

	_ "github.com/CodingThrust/problem-reductions-sub000/reductions"

	"github.com/CodingThrust/problem-reductions-sub000/fixtures"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/problems"
	"github.com/CodingThrust/problem-reductions-sub000/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func findRule(t *testing.T, sourceName, targetName string) registry.Rule {
	t.Helper()
	for _, r := range registry.Rules() {
		if r.SourceName == sourceName && r.TargetName == targetName {
			return r
		}
	}
	t.Fatalf("no rule registered for %s -> %s", sourceName, targetName)
	return registry.Rule{}
}

func TestMISToVC_FlipsAssignmentBothWays(t *testing.T) {
	toVC := findRule(t, problems.NameMaximumIndependentSet, problems.NameMinimumVertexCover)
	g := fixtures.Triangle()
	mis := problems.MaximumIndependentSet{Graph: g}

	target, backMap, err := toVC.Reduce(mis)
	require.NoError(t, err)
	vc := target.(problems.MinimumVertexCover)
	assert.Equal(t, g, vc.Graph)
	assert.Equal(t, problem.Assignment{0, 1, 1}, backMap(problem.Assignment{1, 0, 0}))

	toMIS := findRule(t, problems.NameMinimumVertexCover, problems.NameMaximumIndependentSet)
	back, backMap2, err := toMIS.Reduce(vc)
	require.NoError(t, err)
	assert.Equal(t, mis, back.(problems.MaximumIndependentSet))
	assert.Equal(t, problem.Assignment{1, 0, 0}, backMap2(problem.Assignment{0, 1, 1}))
}

func TestMISToQUBO_PenaltyForbidsAdjacentOnes(t *testing.T) {
	r := findRule(t, problems.NameMaximumIndependentSet, problems.NameQUBO)
	mis := problems.MaximumIndependentSet{Graph: fixtures.Triangle()}

	target, backMap, err := r.Reduce(mis)
	require.NoError(t, err)
	q := target.(problems.QUBO)

	feasible := q.Evaluate(problem.Assignment{1, 0, 0})
	violating := q.Evaluate(problem.Assignment{1, 1, 0})
	assert.Less(t, feasible.Objective, violating.Objective)
	assert.Equal(t, problem.Assignment{1, 0, 0}, backMap(problem.Assignment{1, 0, 0}))
}

func TestMISToSetPackingNaive_BackMapCollapsesTriples(t *testing.T) {
	r := findRule(t, problems.NameMaximumIndependentSet, problems.NameMaximumSetPacking)
	mis := problems.MaximumIndependentSet{Graph: fixtures.Triangle()}

	target, backMap, err := r.Reduce(mis)
	require.NoError(t, err)
	sp := target.(problems.MaximumSetPacking)
	assert.Len(t, sp.Sets, 9) // 3 vertices x 3 copies

	a := make(problem.Assignment, len(sp.Sets))
	a[0] = 1 // one of vertex 0's three copies selected
	back := backMap(a)
	assert.Equal(t, problem.Assignment{1, 0, 0}, back)
}

func TestVCToSetPacking_EfficientEncodingOneSetPerVertex(t *testing.T) {
	r := findRule(t, problems.NameMinimumVertexCover, problems.NameMaximumSetPacking)
	vc := problems.MinimumVertexCover{Graph: fixtures.Triangle()}

	target, backMap, err := r.Reduce(vc)
	require.NoError(t, err)
	sp := target.(problems.MaximumSetPacking)
	assert.Len(t, sp.Sets, 3)

	back := backMap(problem.Assignment{1, 0, 0})
	assert.Equal(t, problem.Assignment{0, 1, 1}, back)
}

func TestGraphColoringToQUBO_FeasibleColoringBeatsSingleColorClash(t *testing.T) {
	r := findRule(t, problems.NameGraphColoring, problems.NameQUBO)
	gc := problems.GraphColoring{Graph: fixtures.Triangle(), K: 3}

	target, backMap, err := r.Reduce(gc)
	require.NoError(t, err)
	q := target.(problems.QUBO)
	assert.Equal(t, 9, q.NumVariables()) // 3 vertices x 3 colors

	// one-hot: vertex0->color0, vertex1->color1, vertex2->color2
	proper := make(problem.Assignment, 9)
	proper[0*3+0] = 1
	proper[1*3+1] = 1
	proper[2*3+2] = 1
	properEval := q.Evaluate(proper)

	// every vertex picks color0: edge clashes everywhere
	clash := make(problem.Assignment, 9)
	clash[0*3+0] = 1
	clash[1*3+0] = 1
	clash[2*3+0] = 1
	clashEval := q.Evaluate(clash)

	assert.Less(t, properEval.Objective, clashEval.Objective)
	assert.Equal(t, problem.Assignment{0, 1, 2}, backMap(proper))
}

func TestQUBOToSpinGlass_PreservesObjectiveDifferences(t *testing.T) {
	r := findRule(t, problems.NameQUBO, problems.NameSpinGlass)
	q := problems.QUBO{Q: [][]float64{
		{2, 1},
		{3, -1},
	}}

	target, backMap, err := r.Reduce(q)
	require.NoError(t, err)
	sg := target.(problems.SpinGlass)

	assignments := []problem.Assignment{{0, 0}, {1, 0}, {0, 1}, {1, 1}}
	qBase := q.Evaluate(assignments[0]).Objective
	sBase := sg.Evaluate(assignments[0]).Objective
	for _, a := range assignments {
		qDiff := q.Evaluate(a).Objective - qBase
		sDiff := sg.Evaluate(a).Objective - sBase
		assert.InDelta(t, qDiff, sDiff, 1e-9)
		assert.Equal(t, a, backMap(a))
	}
}

func TestFactoringToCircuitSAT_EncodesMultiplication(t *testing.T) {
	r := findRule(t, problems.NameFactoring, problems.NameCircuitSAT)
	f := problems.Factoring{BitsP: 2, BitsQ: 2, Target: 6} // 2*3 = 6

	target, backMap, err := r.Reduce(f)
	require.NoError(t, err)
	c := target.(problems.CircuitSAT)
	assert.Equal(t, f.NumVariables(), c.NumVariables())

	// p = 2 (bits [0,1]), q = 3 (bits [1,1])
	solution := problem.Assignment{0, 1, 1, 1}
	assert.True(t, c.Evaluate(solution).Feasible)
	assert.Equal(t, solution, backMap(solution))

	assert.Equal(t, problem.Infeasible, c.Evaluate(problem.Assignment{1, 1, 1, 1})) // p=3,q=3=9 != 6
}

func TestCircuitSATToSpinGlass_GroundStateSatisfiesCircuit(t *testing.T) {
	r := findRule(t, problems.NameCircuitSAT, problems.NameSpinGlass)
	// wire2 = wire0 AND wire1, output wire2
	c := problems.CircuitSAT{
		NumInputs: 2, NumWires: 3,
		Gates:      []problems.Gate{{Op: problems.GateAnd, Inputs: []int{0, 1}, Output: 2}},
		OutputWire: 2,
	}

	target, backMap, err := r.Reduce(c)
	require.NoError(t, err)
	sg := target.(problems.SpinGlass)
	assert.Equal(t, c.NumWires, sg.NumVariables())

	satisfying := make(problem.Assignment, sg.NumVariables())
	satisfying[0], satisfying[1], satisfying[2] = 1, 1, 1
	violating := make(problem.Assignment, sg.NumVariables())
	violating[0], violating[1], violating[2] = 1, 0, 1 // output forced to 1 but AND(1,0) != 1

	satisfyingEval := sg.Evaluate(satisfying)
	violatingEval := sg.Evaluate(violating)
	assert.Less(t, satisfyingEval.Objective, violatingEval.Objective)

	back := backMap(satisfying)
	assert.Equal(t, problem.Assignment{1, 1}, back)
}
