package executor

import (
	"fmt"

	"github.com/CodingThrust/problem-reductions-sub000/coreerr"
	"github.com/CodingThrust/problem-reductions-sub000/planner"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/profile"
	"github.com/CodingThrust/problem-reductions-sub000/registry"
)

// ErrDescriptorMismatch is wrapped by coreerr.KindDescriptorMismatch.
var ErrDescriptorMismatch = fmt.Errorf("executor: instance descriptor does not match path hop")

// ErrMissingReducer is wrapped by coreerr.KindMissingReducer.
var ErrMissingReducer = fmt.Errorf("executor: no reducer or cast available for hop")

// step is one executed hop: the instance produced and the back-map that
// recovers the previous instance's assignment from this instance's.
type step struct {
	instance problem.Problem
	backMap  registry.BackMap // nil for a cast step, which never needs one (assignments pass through unchanged)
}

// Chain is the result of executing a planner.Path against a concrete
// source instance: every intermediate instance, in order, plus the
// means to push a target assignment all the way back to the source.
type Chain struct {
	source problem.Problem
	path   planner.Path
	steps  []step
}

// TargetInstance returns the final instance of the chain (the one a
// solver would actually run against).
func (c *Chain) TargetInstance() problem.Problem {
	if len(c.steps) == 0 {
		return c.source
	}
	return c.steps[len(c.steps)-1].instance
}

// SourceSizeProfile returns the originating instance's size profile.
func (c *Chain) SourceSizeProfile() profile.SizeProfile {
	return c.source.SizeProfile()
}

// TargetSizeProfile returns the final instance's size profile.
func (c *Chain) TargetSizeProfile() profile.SizeProfile {
	return c.TargetInstance().SizeProfile()
}

// ExtractSolution pushes an assignment on the target instance back
// through every hop's back-map, in reverse order, producing an
// assignment valid against the original source instance (spec.md §4.8).
func (c *Chain) ExtractSolution(targetAssignment problem.Assignment) problem.Assignment {
	a := targetAssignment
	for i := len(c.steps) - 1; i >= 0; i-- {
		if bm := c.steps[i].backMap; bm != nil {
			a = bm(a)
		}
	}
	return a
}

// findRule locates the registered rule whose target descriptor exactly
// matches the requested hop's To (the graph interns target nodes
// verbatim from the rule that produced them) and whose source
// descriptor the hop's actual From is a subtype-or-equal of, via
// planner.Applicable — the same subtyping check neighbour enumeration
// used to find this hop in the first place (spec.md §4.3/§9: a rule
// registered against a general variant, e.g. GraphColoring at k:KN,
// must fire for a concrete walk sitting at a more specific one, e.g.
// k:K3). Requiring Descriptor.Equal on From here would reject exactly
// that case and misroute it into castStep.
func findRule(rules []registry.Rule, from, to problem.Descriptor) (registry.Rule, bool) {
	for _, r := range rules {
		if planner.Applicable(from, r.SourceDescriptor()) && r.TargetDescriptor().Equal(to) {
			return r, true
		}
	}
	return registry.Rule{}, false
}

// Execute walks path starting from source, applying one registered
// reducer per hop. When a hop's rule cannot be found (this only happens
// for a hop the planner synthesised purely via subtyping, with no
// direct rule — i.e. a cast), the current instance at that hop must
// implement problem.Castable
// and successfully cast toward the hop's target category; any other
// failure surfaces coreerr.KindMissingReducer.
func Execute(source problem.Problem, path planner.Path) (*Chain, error) {
	current := source
	currentDescriptor := problem.DescriptorOf(source).Normalised()
	if !currentDescriptor.Equal(path.Source) {
		return nil, coreerr.New(coreerr.KindDescriptorMismatch,
			fmt.Errorf("%w: instance is %s, path starts at %s", ErrDescriptorMismatch, currentDescriptor, path.Source))
	}

	rules := registry.Rules()
	chain := &Chain{source: source}

	for _, hop := range path.Hops {
		if !problem.DescriptorOf(current).Normalised().Equal(hop.From) {
			return nil, coreerr.New(coreerr.KindDescriptorMismatch,
				fmt.Errorf("%w: at %s, hop expects %s", ErrDescriptorMismatch, problem.DescriptorOf(current), hop.From))
		}

		if r, ok := findRule(rules, hop.From, hop.To); ok {
			next, backMap, err := r.Reduce(current)
			if err != nil {
				return nil, err
			}
			chain.steps = append(chain.steps, step{instance: next, backMap: backMap})
			current = next
			continue
		}

		next, err := castStep(current, hop.From, hop.To)
		if err != nil {
			return nil, err
		}
		chain.steps = append(chain.steps, step{instance: next, backMap: nil})
		current = next
	}

	return chain, nil
}

// castStep performs the one category-upcast that turns an instance at
// from into an instance at to, used when the planner's hop has no
// directly registered rule (spec.md §4.6: cast edges are synthesised at
// lookup time, never materialised as rules).
func castStep(current problem.Problem, from, to problem.Descriptor) (problem.Problem, error) {
	castable, ok := current.(problem.Castable)
	if !ok {
		return nil, coreerr.New(coreerr.KindMissingReducer,
			fmt.Errorf("%w: %s -> %s (instance does not implement Castable)", ErrMissingReducer, from, to))
	}
	for _, entry := range from.Variant {
		target, has := to.Variant.Get(entry.Category)
		if !has || target == entry.Value {
			continue
		}
		parent, ok := castable.CastToParent(entry.Category)
		if !ok {
			return nil, coreerr.New(coreerr.KindMissingReducer,
				fmt.Errorf("%w: %s -> %s (CastToParent(%q) declined)", ErrMissingReducer, from, to, entry.Category))
		}
		return parent, nil
	}
	return nil, coreerr.New(coreerr.KindMissingReducer,
		fmt.Errorf("%w: %s -> %s (no differing category to cast)", ErrMissingReducer, from, to))
}
