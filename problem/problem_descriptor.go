package problem

import (
	"fmt"
	"sort"
	"strings"
)

// VariantEntry is one (category, value) pair of a variant tuple.
type VariantEntry struct {
	Category string
	Value    string
}

// VariantTuple is an ordered list of (category, value) pairs describing
// how a problem is parameterised. Order matters: two tuples are equal
// iff element-wise equal (spec.md §3).
type VariantTuple []VariantEntry

// Equal reports element-wise equality.
func (vt VariantTuple) Equal(other VariantTuple) bool {
	if len(vt) != len(other) {
		return false
	}
	for i := range vt {
		if vt[i] != other[i] {
			return false
		}
	}
	return true
}

// Get returns the value registered for category, if the tuple carries
// one (a problem may use a category at most zero or one times, except
// that the tuple format does not itself forbid repeats — callers that
// need a specific category look up the first match).
func (vt VariantTuple) Get(category string) (string, bool) {
	for _, e := range vt {
		if e.Category == category {
			return e.Value, true
		}
	}
	return "", false
}

// normalised rewrites a ("graph", "") entry to
// ("graph", "SimpleGraph"), the historical-compatibility convention from
// spec.md §4.6 point 2. It never mutates vt.
func (vt VariantTuple) normalised() VariantTuple {
	out := make(VariantTuple, len(vt))
	for i, e := range vt {
		if e.Category == "graph" && e.Value == "" {
			e.Value = "SimpleGraph"
		}
		out[i] = e
	}
	return out
}

// String renders the tuple deterministically, e.g. "graph=SimpleGraph,weight=One".
func (vt VariantTuple) String() string {
	parts := make([]string, len(vt))
	for i, e := range vt {
		parts[i] = e.Category + "=" + e.Value
	}
	return strings.Join(parts, ",")
}

// Descriptor is the (problem name, variant tuple) pair that uniquely
// identifies a reduction-graph node (spec.md §3).
type Descriptor struct {
	Name    string
	Variant VariantTuple
}

// Normalised returns d with its variant tuple's historical-compatibility
// rewrite applied (spec.md §4.6 point 2).
func (d Descriptor) Normalised() Descriptor {
	return Descriptor{Name: d.Name, Variant: d.Variant.normalised()}
}

// Equal reports whether d and other name the same node.
func (d Descriptor) Equal(other Descriptor) bool {
	return d.Name == other.Name && d.Variant.Equal(other.Variant)
}

// Key renders d as a stable string suitable for map-keying and for the
// deterministic total order spec.md §9 requires of observable iteration
// (lexicographic by problem name, then by variant tuple).
func (d Descriptor) Key() string {
	return d.Name + "|" + d.Variant.String()
}

// Less implements the deterministic total order: lexicographic by name,
// then by variant tuple string.
func (d Descriptor) Less(other Descriptor) bool {
	if d.Name != other.Name {
		return d.Name < other.Name
	}
	return d.Variant.String() < other.Variant.String()
}

func (d Descriptor) String() string {
	return fmt.Sprintf("%s(%s)", d.Name, d.Variant.String())
}

// SortDescriptors sorts a slice of descriptors in place using the
// deterministic total order.
func SortDescriptors(ds []Descriptor) {
	sort.Slice(ds, func(i, j int) bool { return ds[i].Less(ds[j]) })
}
