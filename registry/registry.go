package registry

import (
	"sync"

	"github.com/CodingThrust/problem-reductions-sub000/polynomial"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/sirupsen/logrus"
)

// OverheadField is one (output size-variable, polynomial-in-input-size-
// variables) entry of a rule's overhead (spec.md §3).
type OverheadField struct {
	Field string
	Poly  polynomial.Polynomial
}

// BackMap turns an assignment on a reduction's target instance into an
// assignment on its source instance.
type BackMap func(problem.Assignment) problem.Assignment

// Reducer invokes a registered reduction against a concrete source
// instance, producing a concrete target instance and a back-map
// (spec.md §4.5). The reducer owns no state across calls; every
// invocation is independent.
type Reducer func(source problem.Problem) (target problem.Problem, backMap BackMap, err error)

// Rule is one statically registered reduction-inventory entry (spec.md §3).
type Rule struct {
	SourceName    string
	SourceVariant func() problem.VariantTuple
	TargetName    string
	TargetVariant func() problem.VariantTuple
	Overhead      []OverheadField
	ModulePath    string
	Reduce        Reducer
}

// SourceDescriptor evaluates r's source thunk into a descriptor.
func (r Rule) SourceDescriptor() problem.Descriptor {
	return problem.Descriptor{Name: r.SourceName, Variant: r.SourceVariant()}.Normalised()
}

// TargetDescriptor evaluates r's target thunk into a descriptor.
func (r Rule) TargetDescriptor() problem.Descriptor {
	return problem.Descriptor{Name: r.TargetName, Variant: r.TargetVariant()}.Normalised()
}

var (
	mu    sync.RWMutex
	rules []Rule
	log   = newDiscardLogger()
)

func newDiscardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(discardWriter{})
	return l
}

type discardWriter struct{}

func (discardWriter) Write(p []byte) (int, error) { return len(p), nil }

// SetLogger replaces the package's logger (spec.md §7: the core never
// writes to stdout/stderr on its own; callers that want to observe
// registration events opt in explicitly).
func SetLogger(l *logrus.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// Register appends r to the inventory. Duplicate (source, target,
// overhead) entries are permitted (spec.md §4.5) — reductiongraph, not
// this package, is responsible for suppressing identical-overhead
// multi-edges at build time.
func Register(r Rule) {
	mu.Lock()
	defer mu.Unlock()
	rules = append(rules, r)
	log.WithFields(logrus.Fields{
		"event":  "rule_registered",
		"source": r.SourceName,
		"target": r.TargetName,
		"module": r.ModulePath,
	}).Debug("reduction rule registered")
}

// Rules returns a snapshot of every registered rule. Safe to call
// concurrently with Register (readers never observe a torn slice because
// Register only ever appends under the lock and this returns a copy).
func Rules() []Rule {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}
