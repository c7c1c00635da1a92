// Package profile implements SizeProfile (spec.md §4.2), the
// insertion-ordered mapping from size-variable name to a non-negative
// integer that flows through polynomial evaluation and reduction-path
// planning.
//
// The insertion-order-preserving map+slice idiom is the same one the
// teacher uses for adjacency bookkeeping in core/adjacency_list.go: a
// slice holds display/iteration order, a map holds O(1) lookup, and the
// two are always mutated together.
package profile

// Pair is one (size-variable, value) entry.
type Pair struct {
	Name  string
	Value uint64
}

// SizeProfile is an insertion-ordered mapping from size-variable name to
// usize. Looking up an absent variable returns 0. SizeProfile is a value
// type: New and Set never mutate a caller's slice, and the zero value is
// a valid empty profile.
type SizeProfile struct {
	order []string
	index map[string]int // name -> position in order/values
	value map[string]uint64
}

// New builds a SizeProfile from an ordered list of pairs. Later pairs
// for the same name overwrite earlier ones but keep the first
// occurrence's position, matching Set's overwrite semantics.
func New(pairs ...Pair) SizeProfile {
	sp := SizeProfile{}
	for _, p := range pairs {
		sp = sp.Set(p.Name, p.Value)
	}
	return sp
}

// Get returns the value associated with name, or 0 if name has never
// been set.
func (sp SizeProfile) Get(name string) uint64 {
	if sp.value == nil {
		return 0
	}
	return sp.value[name]
}

// Has reports whether name has an explicit entry (as opposed to
// defaulting to 0 because it was never set).
func (sp SizeProfile) Has(name string) bool {
	if sp.index == nil {
		return false
	}
	_, ok := sp.index[name]
	return ok
}

// Set returns a copy of sp with name bound to value, overwriting any
// prior value for name. Set never mutates sp; SizeProfile is a value
// type and every profile along a reduction path is a distinct snapshot.
func (sp SizeProfile) Set(name string, value uint64) SizeProfile {
	next := SizeProfile{
		order: append([]string(nil), sp.order...),
		index: make(map[string]int, len(sp.index)+1),
		value: make(map[string]uint64, len(sp.value)+1),
	}
	for k, v := range sp.index {
		next.index[k] = v
	}
	for k, v := range sp.value {
		next.value[k] = v
	}
	if _, exists := next.index[name]; !exists {
		next.index[name] = len(next.order)
		next.order = append(next.order, name)
	}
	next.value[name] = value
	return next
}

// Pairs returns the profile's entries in insertion order.
func (sp SizeProfile) Pairs() []Pair {
	out := make([]Pair, len(sp.order))
	for i, name := range sp.order {
		out[i] = Pair{Name: name, Value: sp.value[name]}
	}
	return out
}

// Equal reports whether sp and other agree on the value of every
// variable named in either profile (insertion order is irrelevant to
// equality, only to display — spec.md §4.2).
func (sp SizeProfile) Equal(other SizeProfile) bool {
	seen := make(map[string]bool, len(sp.order)+len(other.order))
	for _, name := range sp.order {
		seen[name] = true
	}
	for _, name := range other.order {
		seen[name] = true
	}
	for name := range seen {
		if sp.Get(name) != other.Get(name) {
			return false
		}
	}
	return true
}
