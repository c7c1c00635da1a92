// Package introspect exposes read-only exploration of the materialised
// reduction graph (spec.md §4.9): bounded k-hop neighbourhoods and a
// deterministic JSON export, for documentation and debugging tooling
// that wants a picture of "what reduces to what" without driving the
// planner or executor.
//
// KHop is adapted from bfs/bfs.go's queueItem/walker shape: a plain
// slice-backed FIFO, a visited set, and a depth bound — generalised here
// to optionally follow in-edges, out-edges, or both.
package introspect

import (
	"sort"

	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/reductiongraph"
	"github.com/bits-and-blooms/bitset"
)

// Direction selects which edges KHop follows from each frontier node.
type Direction int

const (
	// Out follows only outgoing (source -> target) edges.
	Out Direction = iota
	// In follows only incoming edges.
	In
	// Both follows edges in either direction.
	Both
)

// queueItem pairs a frontier node with its hop distance from the root.
type queueItem struct {
	id    reductiongraph.NodeID
	depth int
}

// Neighbourhood is the bounded subgraph KHop discovers: every node
// reached within maxHops, plus the edges followed out of nodes closer
// than maxHops. Edges leaving nodes at exactly maxHops are not included,
// even when both their endpoints were reached.
type Neighbourhood struct {
	Root  problem.Descriptor
	Nodes []problem.Descriptor
	Edges []reductiongraph.Edge
}

// KHop explores outward from root for up to maxHops steps, following
// edges in dir, and returns every node reached (root included) together
// with the edges it followed (see Neighbourhood). maxHops < 0 is treated as 0 (root only).
func KHop(g *reductiongraph.Graph, root problem.Descriptor, maxHops int, dir Direction) (Neighbourhood, bool) {
	if maxHops < 0 {
		maxHops = 0
	}
	rootID, ok := g.NodeID(root)
	if !ok {
		return Neighbourhood{}, false
	}

	visited := bitset.New(uint(g.NumNodes()))
	visited.Set(uint(rootID))
	queue := []queueItem{{id: rootID, depth: 0}}
	edgeSeen := bitset.New(uint(len(g.Edges())))
	var edges []reductiongraph.Edge

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		if item.depth >= maxHops {
			continue
		}
		for _, e := range frontierEdges(g, item.id, dir) {
			key := uint(edgeKey(e))
			if !edgeSeen.Test(key) {
				edgeSeen.Set(key)
				edges = append(edges, e)
			}
			other := otherEnd(e, item.id)
			if !visited.Test(uint(other)) {
				visited.Set(uint(other))
				queue = append(queue, queueItem{id: other, depth: item.depth + 1})
			}
		}
	}

	nodes := make([]problem.Descriptor, 0, visited.Count())
	for id, ok := visited.NextSet(0); ok; id, ok = visited.NextSet(id + 1) {
		nodes = append(nodes, g.Descriptor(reductiongraph.NodeID(id)))
	}
	problem.SortDescriptors(nodes)
	sort.Slice(edges, func(i, j int) bool {
		di, dj := g.Descriptor(edges[i].From), g.Descriptor(edges[j].From)
		if !di.Equal(dj) {
			return di.Less(dj)
		}
		return g.Descriptor(edges[i].To).Less(g.Descriptor(edges[j].To))
	})

	return Neighbourhood{Root: root, Nodes: nodes, Edges: edges}, true
}

func frontierEdges(g *reductiongraph.Graph, id reductiongraph.NodeID, dir Direction) []reductiongraph.Edge {
	switch dir {
	case Out:
		return g.OutEdges(id)
	case In:
		return g.InEdges(id)
	default:
		return append(g.OutEdges(id), g.InEdges(id)...)
	}
}

func otherEnd(e reductiongraph.Edge, from reductiongraph.NodeID) reductiongraph.NodeID {
	if e.From == from {
		return e.To
	}
	return e.From
}

// edgeKey identifies an edge for the dedup set; RuleIndex is unique per
// registered rule, which is exactly the multigraph's identity of an edge.
func edgeKey(e reductiongraph.Edge) int { return e.RuleIndex }
