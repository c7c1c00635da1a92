package planner_test

import (
	"testing"

	"github.com/CodingThrust/problem-reductions-sub000/coreerr"
	"github.com/CodingThrust/problem-reductions-sub000/planner"
	"github.com/CodingThrust/problem-reductions-sub000/polynomial"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/profile"
	"github.com/CodingThrust/problem-reductions-sub000/reductiongraph"
	"github.com/CodingThrust/problem-reductions-sub000/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyVariant() problem.VariantTuple { return nil }

func passthrough(source problem.Problem) (problem.Problem, registry.BackMap, error) {
	return source, func(a problem.Assignment) problem.Assignment { return a }, nil
}

// buildChain registers A -> B -> C, both edges costed by the overhead
// field "n" scaled differently, then resets the cached graph so the
// planner sees exactly this inventory.
func buildChain(t *testing.T) {
	t.Helper()
	reductiongraph.ResetForTest()
	registry.Register(registry.Rule{
		SourceName: "planner_test_A", SourceVariant: emptyVariant,
		TargetName: "planner_test_B", TargetVariant: emptyVariant,
		Overhead: []registry.OverheadField{{Field: "n", Poly: polynomial.Var("n").Scale(2)}},
		Reduce:   passthrough,
	})
	registry.Register(registry.Rule{
		SourceName: "planner_test_B", SourceVariant: emptyVariant,
		TargetName: "planner_test_C", TargetVariant: emptyVariant,
		Overhead: []registry.OverheadField{{Field: "n", Poly: polynomial.Var("n")}},
		Reduce:   passthrough,
	})
}

func TestFindCheapestPath_ZeroHopWhenSourceEqualsTarget(t *testing.T) {
	buildChain(t)
	a := problem.Descriptor{Name: "planner_test_A"}
	path, err := planner.FindCheapestPath(a, a, profile.New(), planner.MinimizeSteps())
	require.NoError(t, err)
	assert.Empty(t, path.Hops)
}

func TestFindCheapestPath_FindsChain(t *testing.T) {
	buildChain(t)
	a := problem.Descriptor{Name: "planner_test_A"}
	c := problem.Descriptor{Name: "planner_test_C"}

	path, err := planner.FindCheapestPath(a, c, profile.New(profile.Pair{Name: "n", Value: 5}), planner.MinimizeSteps())
	require.NoError(t, err)
	require.Len(t, path.Hops, 2)
	assert.Equal(t, "planner_test_B", path.Hops[0].To.Name)
	assert.Equal(t, "planner_test_C", path.Hops[1].To.Name)
}

func TestFindCheapestPath_NoReductionPath(t *testing.T) {
	buildChain(t)
	a := problem.Descriptor{Name: "planner_test_A"}
	unreachable := problem.Descriptor{Name: "planner_test_nowhere"}

	_, err := planner.FindCheapestPath(a, unreachable, profile.New(), planner.MinimizeSteps())
	require.Error(t, err)
	assert.True(t, coreerr.Is(err, coreerr.KindNoReductionPath))
}

func TestFindCheapestPath_CostFunctionSwapPicksDifferentPaths(t *testing.T) {
	// A -> D direct (cheap hop count, expensive field), A -> B -> D
	// (more hops, cheaper field total).
	reductiongraph.ResetForTest()
	registry.Register(registry.Rule{
		SourceName: "planner_test_swap_A", SourceVariant: emptyVariant,
		TargetName: "planner_test_swap_D", TargetVariant: emptyVariant,
		Overhead: []registry.OverheadField{{Field: "cost", Poly: polynomial.Constant(100)}},
		Reduce:   passthrough,
	})
	registry.Register(registry.Rule{
		SourceName: "planner_test_swap_A", SourceVariant: emptyVariant,
		TargetName: "planner_test_swap_B", TargetVariant: emptyVariant,
		Overhead: []registry.OverheadField{{Field: "cost", Poly: polynomial.Constant(1)}},
		Reduce:   passthrough,
	})
	registry.Register(registry.Rule{
		SourceName: "planner_test_swap_B", SourceVariant: emptyVariant,
		TargetName: "planner_test_swap_D", TargetVariant: emptyVariant,
		Overhead: []registry.OverheadField{{Field: "cost", Poly: polynomial.Constant(1)}},
		Reduce:   passthrough,
	})

	a := problem.Descriptor{Name: "planner_test_swap_A"}
	d := problem.Descriptor{Name: "planner_test_swap_D"}

	byHops, err := planner.FindCheapestPath(a, d, profile.New(), planner.MinimizeSteps())
	require.NoError(t, err)
	assert.Len(t, byHops.Hops, 1)

	byCost, err := planner.FindCheapestPath(a, d, profile.New(), planner.Minimize("cost"))
	require.NoError(t, err)
	assert.Len(t, byCost.Hops, 2)
}

func TestAllSimplePaths_FindsBothRoutes(t *testing.T) {
	reductiongraph.ResetForTest()
	registry.Register(registry.Rule{
		SourceName: "planner_test_all_A", SourceVariant: emptyVariant,
		TargetName: "planner_test_all_D", TargetVariant: emptyVariant,
		Reduce: passthrough,
	})
	registry.Register(registry.Rule{
		SourceName: "planner_test_all_A", SourceVariant: emptyVariant,
		TargetName: "planner_test_all_B", TargetVariant: emptyVariant,
		Reduce: passthrough,
	})
	registry.Register(registry.Rule{
		SourceName: "planner_test_all_B", SourceVariant: emptyVariant,
		TargetName: "planner_test_all_D", TargetVariant: emptyVariant,
		Reduce: passthrough,
	})

	a := problem.Descriptor{Name: "planner_test_all_A"}
	d := problem.Descriptor{Name: "planner_test_all_D"}

	paths := planner.AllSimplePaths(a, d, profile.New(), 0, 0)
	assert.Len(t, paths, 2)
}

func TestAllSimplePaths_RespectsMaxPaths(t *testing.T) {
	reductiongraph.ResetForTest()
	registry.Register(registry.Rule{
		SourceName: "planner_test_bound_A", SourceVariant: emptyVariant,
		TargetName: "planner_test_bound_D", TargetVariant: emptyVariant,
		Reduce: passthrough,
	})
	registry.Register(registry.Rule{
		SourceName: "planner_test_bound_A", SourceVariant: emptyVariant,
		TargetName: "planner_test_bound_B", TargetVariant: emptyVariant,
		Reduce: passthrough,
	})
	registry.Register(registry.Rule{
		SourceName: "planner_test_bound_B", SourceVariant: emptyVariant,
		TargetName: "planner_test_bound_D", TargetVariant: emptyVariant,
		Reduce: passthrough,
	})

	a := problem.Descriptor{Name: "planner_test_bound_A"}
	d := problem.Descriptor{Name: "planner_test_bound_D"}

	paths := planner.AllSimplePaths(a, d, profile.New(), 0, 1)
	assert.Len(t, paths, 1)
}
