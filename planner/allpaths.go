package planner

import (
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/profile"
)

// allPathsWalker enumerates every simple (no repeated node) path from a
// fixed source to a fixed target, adapted from dfs/dfs.go's recursive
// pre-order walker: same "visit, recurse over filtered neighbours,
// unwind" shape, generalised to collect a path at every successful
// reach of target instead of a single traversal order, and bounded by
// maxHops/maxPaths since the reduction graph is a registry a caller
// could grow arbitrarily large (spec.md §4.7: "bounded enumeration").
type allPathsWalker struct {
	idx      *candidateEdges
	target   problem.Descriptor
	maxHops  int
	maxPaths int
	visiting map[string]bool
	trail    []Hop
	out      []Path
}

// AllSimplePaths enumerates every simple path from source to target whose
// hop count does not exceed maxHops, stopping early once maxPaths paths
// have been collected. A maxHops or maxPaths of 0 or less is treated as
// "unbounded" only in the trivial sense of "use the default" — callers
// wanting true exhaustive search on a large graph should pick a generous
// explicit bound instead (spec.md §9: enumeration is the caller's
// responsibility to bound).
func AllSimplePaths(source, target problem.Descriptor, initial profile.SizeProfile, maxHops, maxPaths int) []Path {
	source = source.Normalised()
	target = target.Normalised()
	if maxHops <= 0 {
		maxHops = 16
	}
	if maxPaths <= 0 {
		maxPaths = 64
	}
	w := &allPathsWalker{
		idx:      buildCandidateIndex(),
		target:   target,
		maxHops:  maxHops,
		maxPaths: maxPaths,
		visiting: map[string]bool{source.Key(): true},
	}
	w.walk(source, initial)
	return w.out
}

func (w *allPathsWalker) walk(at problem.Descriptor, current profile.SizeProfile) {
	if len(w.out) >= w.maxPaths {
		return
	}
	if at.Equal(w.target) {
		w.out = append(w.out, w.snapshot(current))
		return
	}
	if len(w.trail) >= w.maxHops {
		return
	}
	for _, e := range w.idx.neighbours(at) {
		next := w.idx.g.Descriptor(e.To)
		key := next.Key()
		if w.visiting[key] {
			continue // simple paths only: never revisit a node on the current trail
		}
		w.visiting[key] = true
		w.trail = append(w.trail, Hop{From: at, To: next, Overhead: e.Overhead, ModulePath: e.ModulePath})

		w.walk(next, propagate(current, e.Overhead))

		w.trail = w.trail[:len(w.trail)-1]
		delete(w.visiting, key)

		if len(w.out) >= w.maxPaths {
			return
		}
	}
}

func (w *allPathsWalker) snapshot(final profile.SizeProfile) Path {
	hops := make([]Hop, len(w.trail))
	copy(hops, w.trail)
	var source problem.Descriptor
	if len(hops) > 0 {
		source = hops[0].From
	} else {
		source = w.target
	}
	// AllSimplePaths reports hop-count as Cost; callers needing a
	// CostFunction-weighted total post-process Hops themselves, since a
	// fixed cost function is not part of this entry point's contract.
	cost := float64(len(hops))
	return Path{Source: source, Target: w.target, Hops: hops, Cost: cost, FinalProfile: final}
}
