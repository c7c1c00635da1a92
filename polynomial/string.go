package polynomial

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// RoundToSize applies the rounding policy for size-profile updates
// (spec.md §4.1): round to nearest, half away from zero, clamp at 0.
func RoundToSize(x float64) uint64 {
	if x <= 0 {
		return 0
	}
	r := math.Floor(x + 0.5)
	if r < 0 {
		return 0
	}
	return uint64(r)
}

// String renders p as a stable, human-readable expression such as
// "3 * num_vertices ^ 2 + num_edges". The format is observable by tests
// and the reduction-graph JSON export (spec.md §4.9's "formula" field)
// but is not intended to be parsed back into a Polynomial.
func (p Polynomial) String() string {
	if len(p.monomials) == 0 {
		return "0"
	}
	// Higher total degree first; terms of equal degree keep canonical order.
	terms := append([]monomial(nil), p.monomials...)
	deg := func(m monomial) (d uint) {
		for _, pw := range m.powers {
			d += pw.exp
		}
		return d
	}
	sort.SliceStable(terms, func(i, j int) bool { return deg(terms[i]) > deg(terms[j]) })
	parts := make([]string, len(terms))
	for i, m := range terms {
		parts[i] = monomialString(m)
	}
	return strings.Join(parts, " + ")
}

func monomialString(m monomial) string {
	if len(m.powers) == 0 {
		return formatCoeff(m.coeff)
	}
	factors := make([]string, len(m.powers))
	for i, pw := range m.powers {
		if pw.exp == 1 {
			factors[i] = pw.name
		} else {
			factors[i] = fmt.Sprintf("%s ^ %d", pw.name, pw.exp)
		}
	}
	body := strings.Join(factors, " * ")
	if m.coeff == 1 {
		return body
	}
	return formatCoeff(m.coeff) + " * " + body
}

func formatCoeff(c float64) string {
	return strconv.FormatFloat(c, 'g', -1, 64)
}
