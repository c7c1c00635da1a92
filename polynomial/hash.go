package polynomial

import (
	"github.com/mitchellh/hashstructure/v2"
)

// hashable is the structural shape hashstructure walks: the canonical
// monomial list, already normalised, so two mathematically-equal
// polynomials always hash identically regardless of construction order.
type hashable struct {
	Coeffs []float64
	Keys   []string
}

// Hash returns a structural hash of the normalised polynomial, stable
// across processes and suitable for the identical-overhead duplicate-rule
// check in reductiongraph (spec.md §4.6 point 4).
func (p Polynomial) Hash() (uint64, error) {
	h := hashable{Coeffs: make([]float64, len(p.monomials)), Keys: make([]string, len(p.monomials))}
	for i, m := range p.monomials {
		h.Coeffs[i] = m.coeff
		h.Keys[i] = m.powers.key()
	}
	return hashstructure.Hash(h, hashstructure.FormatV2, nil)
}
