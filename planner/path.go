package planner

import (
	"container/heap"
	"fmt"

	"github.com/CodingThrust/problem-reductions-sub000/coreerr"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/profile"
	"github.com/CodingThrust/problem-reductions-sub000/reductiongraph"
	"github.com/CodingThrust/problem-reductions-sub000/registry"
)

// ErrNoReductionPath is the sentinel wrapped by coreerr.KindNoReductionPath.
var ErrNoReductionPath = fmt.Errorf("planner: no reduction path found")

// Hop is one edge of a found Path, decorated with the descriptors at
// each end, the edge's overhead, and its module path for documentation
// export (spec.md §4.7).
type Hop struct {
	From, To   problem.Descriptor
	Overhead   []registry.OverheadField
	ModulePath string
}

// Path is a sequence of hops from a source descriptor to a target
// descriptor, together with its total cost and the size profile at the
// final node.
type Path struct {
	Source       problem.Descriptor
	Target       problem.Descriptor
	Hops         []Hop
	Cost         float64
	InitialProfile profile.SizeProfile
	FinalProfile profile.SizeProfile
}

// Descriptors returns every node visited by p, source first.
func (p Path) Descriptors() []problem.Descriptor {
	out := make([]problem.Descriptor, 0, len(p.Hops)+1)
	out = append(out, p.Source)
	for _, h := range p.Hops {
		out = append(out, h.To)
	}
	return out
}

// propagate evaluates every overhead field's polynomial against current
// and returns the resulting next-node profile (spec.md §3: "each edge
// rewrites each listed output size-variable ... rounded to nearest
// integer, clamped at 0").
func propagate(current profile.SizeProfile, overhead []registry.OverheadField) profile.SizeProfile {
	next := current
	for _, f := range overhead {
		v := f.Poly.Evaluate(current)
		next = next.Set(f.Field, roundToSize(v))
	}
	return next
}

func roundToSize(v float64) uint64 {
	if v <= 0 {
		return 0
	}
	return uint64(v + 0.5)
}

func profileSum(p profile.SizeProfile) uint64 {
	var sum uint64
	for _, pair := range p.Pairs() {
		sum += pair.Value
	}
	return sum
}

// Applicable reports whether the rule whose recorded source descriptor
// is ruleSource can fire from a walk currently sitting at node
// descriptor (spec.md §4.7): same problem name, and for every category
// the rule's source variant names, node's value in that category is a
// descendant-or-equal of the rule's value (the subtyping walk is
// entirely the variant lattice's — see package variant). Exported so
// executor can resolve a hop's reducer the same subtype-aware way
// neighbour enumeration found the hop in the first place, rather than
// requiring an exact descriptor match that a subtyped walk will never
// produce.
func Applicable(node, ruleSource problem.Descriptor) bool {
	if node.Name != ruleSource.Name {
		return false
	}
	for _, want := range ruleSource.Variant {
		have, ok := node.Variant.Get(want.Category)
		if !ok {
			return false
		}
		if !isSubtype(want.Category, have, want.Value) {
			return false
		}
	}
	return true
}

// candidateEdges groups the materialised graph's edges by source problem
// name, so neighbour enumeration does not rescan every edge at every
// step of every search.
type candidateEdges struct {
	byName map[string][]reductiongraph.Edge
	g      *reductiongraph.Graph
}

func buildCandidateIndex() *candidateEdges {
	g := reductiongraph.Get()
	idx := &candidateEdges{byName: map[string][]reductiongraph.Edge{}, g: g}
	for _, e := range g.Edges() {
		name := g.Descriptor(e.From).Name
		idx.byName[name] = append(idx.byName[name], e)
	}
	return idx
}

func (idx *candidateEdges) neighbours(at problem.Descriptor) []reductiongraph.Edge {
	var out []reductiongraph.Edge
	for _, e := range idx.byName[at.Name] {
		if Applicable(at, idx.g.Descriptor(e.From)) {
			out = append(out, e)
		}
	}
	return out
}

// FindCheapestPath searches for a minimum-cost path from source to
// target under cost, starting from initial (typically the source
// instance's own size profile). It returns (Path{}, err) wrapping
// coreerr.KindNoReductionPath when target is unreachable, and a
// zero-hop Path when source equals target (spec.md §8).
func FindCheapestPath(source, target problem.Descriptor, initial profile.SizeProfile, cost CostFunction) (Path, error) {
	source = source.Normalised()
	target = target.Normalised()
	if source.Equal(target) {
		return Path{Source: source, Target: target, InitialProfile: initial, FinalProfile: initial}, nil
	}

	idx := buildCandidateIndex()
	best := map[string]*settled{}
	pq := make(planPQ, 0, 16)
	heap.Init(&pq)
	heap.Push(&pq, &planItem{descriptor: source, cost: 0, profile: initial})

	for pq.Len() > 0 {
		cur := heap.Pop(&pq).(*planItem)
		key := cur.descriptor.Key()
		if s, ok := best[key]; ok && s.settled {
			continue // stale heap entry superseded by an earlier, cheaper settle
		}
		best[key] = &settled{cost: cur.cost, profile: cur.profile, pred: cur.pred, settled: true}

		if cur.descriptor.Equal(target) {
			return reconstruct(source, target, initial, best, key), nil
		}

		for _, e := range idx.neighbours(cur.descriptor) {
			edgeCost := cost.EdgeCost(e.Overhead, cur.profile)
			if edgeCost < 0 {
				edgeCost = 0 // undefined per spec.md §9; clamp rather than corrupt the heap invariant
			}
			nextProfile := propagate(cur.profile, e.Overhead)
			nextDescriptor := idx.g.Descriptor(e.To)
			nextKey := nextDescriptor.Key()
			if s, ok := best[nextKey]; ok && s.settled {
				continue
			}
			totalCost := cur.cost + edgeCost
			heap.Push(&pq, &planItem{
				descriptor: nextDescriptor,
				cost:       totalCost,
				profile:    nextProfile,
				pred: &predEdge{
					from:       cur.descriptor,
					to:         nextDescriptor,
					overhead:   e.Overhead,
					modulePath: e.ModulePath,
					prevKey:    key,
				},
			})
		}
	}
	return Path{}, coreerr.New(coreerr.KindNoReductionPath, fmt.Errorf("%w: %s -> %s", ErrNoReductionPath, source, target))
}

type predEdge struct {
	from, to   problem.Descriptor
	overhead   []registry.OverheadField
	modulePath string
	prevKey    string
}

type settled struct {
	cost    float64
	profile profile.SizeProfile
	pred    *predEdge
	settled bool
}

func reconstruct(source, target problem.Descriptor, initial profile.SizeProfile, best map[string]*settled, finalKey string) Path {
	var hops []Hop
	key := finalKey
	for {
		s := best[key]
		if s.pred == nil {
			break
		}
		hops = append([]Hop{{From: s.pred.from, To: s.pred.to, Overhead: s.pred.overhead, ModulePath: s.pred.modulePath}}, hops...)
		key = s.pred.prevKey
	}
	final := best[finalKey]
	return Path{
		Source:         source,
		Target:         target,
		Hops:           hops,
		Cost:           final.cost,
		InitialProfile: initial,
		FinalProfile:   final.profile,
	}
}

// planItem is one priority-queue entry: a candidate (not yet settled)
// best-known path to descriptor, adapted from dijkstra/dijkstra.go's
// nodeItem.
type planItem struct {
	descriptor problem.Descriptor
	cost       float64
	profile    profile.SizeProfile
	pred       *predEdge
}

// planPQ is a min-heap of *planItem ordered by cost, tie-broken by
// smaller profile sum (spec.md §4.7: "prefer the profile with smaller
// sum of values"), adapted from dijkstra/dijkstra.go's nodePQ. Stale
// entries (superseded by an earlier, cheaper settle of the same node)
// are left in place and skipped on Pop, the same lazy-decrease-key
// strategy the teacher documents.
type planPQ []*planItem

func (pq planPQ) Len() int { return len(pq) }
func (pq planPQ) Less(i, j int) bool {
	if pq[i].cost != pq[j].cost {
		return pq[i].cost < pq[j].cost
	}
	return profileSum(pq[i].profile) < profileSum(pq[j].profile)
}
func (pq planPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }
func (pq *planPQ) Push(x interface{}) { *pq = append(*pq, x.(*planItem)) }
func (pq *planPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
