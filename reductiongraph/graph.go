// Package reductiongraph materialises the reduction rule registry into a
// directed multigraph over (problem, variant) nodes (spec.md §4.6). The
// graph is built at most once per process, on first demand, and cached
// for the process lifetime — the same lazy-materialise-and-cache shape
// the teacher uses for derived adjacency views (core/adjacency_list.go),
// generalised here from a per-Graph cache to a process-wide one because
// the registry itself is process-wide and immutable once populated.
//
// Cast edges are deliberately NOT materialised here (spec.md §4.6): the
// planner (package planner) consults the variant lattice directly during
// neighbour enumeration instead.
package reductiongraph

import (
	"sort"
	"sync"

	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/registry"
	"github.com/sirupsen/logrus"
)

// NodeID indexes into Graph.nodes.
type NodeID int

// Node is a reduction-graph vertex: a problem descriptor.
type Node struct {
	Descriptor problem.Descriptor
}

// Edge is a reduction-graph arc, either a rule edge. Cast edges are
// synthesised on the fly by the planner and never appear here.
type Edge struct {
	From, To   NodeID
	Overhead   []registry.OverheadField
	ModulePath string
	RuleIndex  int // index into the Rules() snapshot this graph was built from
}

// Graph is the materialised multigraph. All fields are immutable after
// build returns, so a *Graph may be shared by reference across any
// number of goroutines without synchronisation (spec.md §5).
type Graph struct {
	nodes []Node
	index map[string]NodeID
	out   map[NodeID][]int // node -> edge indices
	in    map[NodeID][]int
	edges []Edge
}

// Nodes returns every node in the graph, in the order first encountered
// during build (not necessarily the deterministic total order — callers
// that need a stable display order should sort with problem.SortDescriptors).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// NodeID looks up the node id for a descriptor, after applying the same
// historical-compatibility normalisation build applies to every rule
// endpoint.
func (g *Graph) NodeID(d problem.Descriptor) (NodeID, bool) {
	id, ok := g.index[d.Normalised().Key()]
	return id, ok
}

// Descriptor returns the descriptor of node id.
func (g *Graph) Descriptor(id NodeID) problem.Descriptor {
	return g.nodes[id].Descriptor
}

// OutEdges returns the edges leaving node id.
func (g *Graph) OutEdges(id NodeID) []Edge {
	idxs := g.out[id]
	out := make([]Edge, len(idxs))
	for i, e := range idxs {
		out[i] = g.edges[e]
	}
	return out
}

// InEdges returns the edges entering node id.
func (g *Graph) InEdges(id NodeID) []Edge {
	idxs := g.in[id]
	out := make([]Edge, len(idxs))
	for i, e := range idxs {
		out[i] = g.edges[e]
	}
	return out
}

// Edges returns every edge in the graph.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)
	return out
}

// NumNodes is the count of distinct descriptors interned into g, i.e.
// the exclusive upper bound on any valid NodeID — callers doing a
// bounded traversal (package introspect) size a visited set against it.
func (g *Graph) NumNodes() int { return len(g.nodes) }

func (g *Graph) internNode(d problem.Descriptor) NodeID {
	d = d.Normalised()
	key := d.Key()
	if id, ok := g.index[key]; ok {
		return id
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{Descriptor: d})
	g.index[key] = id
	return id
}

// build performs the one-shot construction described in spec.md §4.6:
// for every registered rule, intern its source/target descriptors, add
// a directed edge weighted by the rule's overhead, and suppress exact
// (source, target, overhead) duplicates.
func build(rules []registry.Rule) *Graph {
	g := &Graph{
		index: map[string]NodeID{},
		out:   map[NodeID][]int{},
		in:    map[NodeID][]int{},
	}
	seen := map[string]bool{}
	for ruleIdx, r := range rules {
		srcID := g.internNode(r.SourceDescriptor())
		dstID := g.internNode(r.TargetDescriptor())
		dedupeKey, err := overheadDedupeKey(srcID, dstID, r.Overhead)
		if err == nil {
			if seen[dedupeKey] {
				continue
			}
			seen[dedupeKey] = true
		}
		edgeID := len(g.edges)
		g.edges = append(g.edges, Edge{From: srcID, To: dstID, Overhead: r.Overhead, ModulePath: r.ModulePath, RuleIndex: ruleIdx})
		g.out[srcID] = append(g.out[srcID], edgeID)
		g.in[dstID] = append(g.in[dstID], edgeID)
	}
	return g
}

var (
	once    sync.Once
	cached  *Graph
	buildLog = discardLogger()
)

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(discardWriter{})
	return l
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// SetLogger replaces the package's build-event logger.
func SetLogger(l *logrus.Logger) { buildLog = l }

// Get returns the process-wide reduction graph, building it from the
// current registry snapshot on first call and caching it thereafter
// (spec.md §4.6, §5). sync.Once is the spec's own "standard
// single-initialization primitive" — see SPEC_FULL.md §5 for why no
// third-party coalescing primitive replaces it here.
func Get() *Graph {
	once.Do(func() {
		rules := registry.Rules()
		cached = build(rules)
		buildLog.WithFields(logrus.Fields{
			"event": "graph_built",
			"nodes": len(cached.nodes),
			"edges": len(cached.edges),
		}).Info("reduction graph built")
	})
	return cached
}

// ResetForTest is a test-only escape hatch letting tests rebuild the
// graph after registering test-only rules (e.g. an isolated problem used
// to exercise NoReductionPath, spec.md §8 scenario 5). Production code
// never calls it.
func ResetForTest() {
	once = sync.Once{}
	cached = nil
}

// sortedKeys is a small helper used by overheadDedupeKey to keep field
// ordering deterministic regardless of slice input order.
func sortedKeys(fields []registry.OverheadField) []registry.OverheadField {
	out := make([]registry.OverheadField, len(fields))
	copy(out, fields)
	sort.Slice(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}
