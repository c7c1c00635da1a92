package reductiongraph_test

import (
	"testing"

	"github.com/CodingThrust/problem-reductions-sub000/polynomial"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/reductiongraph"
	"github.com/CodingThrust/problem-reductions-sub000/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyVariant() problem.VariantTuple { return nil }

func passthroughReduce(source problem.Problem) (problem.Problem, registry.BackMap, error) {
	return source, func(a problem.Assignment) problem.Assignment { return a }, nil
}

func TestBuild_NodesAndEdges(t *testing.T) {
	reductiongraph.ResetForTest()
	registry.Register(registry.Rule{
		SourceName: "graph_test_A", SourceVariant: emptyVariant,
		TargetName: "graph_test_B", TargetVariant: emptyVariant,
		Overhead: []registry.OverheadField{{Field: "n", Poly: polynomial.Var("n")}},
		Reduce:   passthroughReduce,
	})

	g := reductiongraph.Get()

	a := problem.Descriptor{Name: "graph_test_A"}
	b := problem.Descriptor{Name: "graph_test_B"}
	aID, ok := g.NodeID(a)
	require.True(t, ok)
	bID, ok := g.NodeID(b)
	require.True(t, ok)

	out := g.OutEdges(aID)
	require.Len(t, out, 1)
	assert.Equal(t, bID, out[0].To)

	in := g.InEdges(bID)
	require.Len(t, in, 1)
	assert.Equal(t, aID, in[0].From)
}

func TestBuild_DedupesIdenticalOverheadMultiEdges(t *testing.T) {
	reductiongraph.ResetForTest()
	rule := registry.Rule{
		SourceName: "graph_test_dup_A", SourceVariant: emptyVariant,
		TargetName: "graph_test_dup_B", TargetVariant: emptyVariant,
		Overhead: []registry.OverheadField{{Field: "n", Poly: polynomial.Var("n")}},
		Reduce:   passthroughReduce,
	}
	registry.Register(rule)
	registry.Register(rule) // identical (source, target, overhead): suppressed

	g := reductiongraph.Get()
	aID, _ := g.NodeID(problem.Descriptor{Name: "graph_test_dup_A"})
	assert.Len(t, g.OutEdges(aID), 1)
}

func TestBuild_KeepsDistinctOverheadMultiEdges(t *testing.T) {
	reductiongraph.ResetForTest()
	registry.Register(registry.Rule{
		SourceName: "graph_test_multi_A", SourceVariant: emptyVariant,
		TargetName: "graph_test_multi_B", TargetVariant: emptyVariant,
		Overhead: []registry.OverheadField{{Field: "n", Poly: polynomial.Var("n")}},
		Reduce:   passthroughReduce,
	})
	registry.Register(registry.Rule{
		SourceName: "graph_test_multi_A", SourceVariant: emptyVariant,
		TargetName: "graph_test_multi_B", TargetVariant: emptyVariant,
		Overhead: []registry.OverheadField{{Field: "n", Poly: polynomial.Var("n").Scale(3)}},
		Reduce:   passthroughReduce,
	})

	g := reductiongraph.Get()
	aID, _ := g.NodeID(problem.Descriptor{Name: "graph_test_multi_A"})
	assert.Len(t, g.OutEdges(aID), 2)
}

func TestGet_CachesAcrossCalls(t *testing.T) {
	reductiongraph.ResetForTest()
	registry.Register(registry.Rule{SourceName: "graph_test_cache_A", SourceVariant: emptyVariant, TargetName: "graph_test_cache_B", TargetVariant: emptyVariant})

	first := reductiongraph.Get()
	registry.Register(registry.Rule{SourceName: "graph_test_cache_C", SourceVariant: emptyVariant, TargetName: "graph_test_cache_D", TargetVariant: emptyVariant})
	second := reductiongraph.Get()

	assert.Same(t, first, second)
	_, ok := second.NodeID(problem.Descriptor{Name: "graph_test_cache_C"})
	assert.False(t, ok, "rules registered after the first Get must not appear until ResetForTest")
}
