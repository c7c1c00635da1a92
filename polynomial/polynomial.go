package polynomial

import (
	"sort"
)

// Var returns the polynomial "1 * name^1".
func Var(name string) Polynomial {
	return VarPow(name, 1)
}

// VarPow returns the polynomial "1 * name^k" for k >= 0. VarPow(name, 0)
// is the constant polynomial 1.
func VarPow(name string, k uint) Polynomial {
	if k == 0 {
		return Constant(1)
	}
	return Polynomial{monomials: []monomial{{coeff: 1, powers: powerSet{{name, k}}}}}
}

// Constant returns the constant polynomial c.
func Constant(c float64) Polynomial {
	if c == 0 {
		return Polynomial{}
	}
	return Polynomial{monomials: []monomial{{coeff: c, powers: nil}}}
}

// Zero is the additive identity, the empty polynomial.
func Zero() Polynomial {
	return Polynomial{}
}

// powerPair is one (variable, exponent) pair inside a monomial.
type powerPair struct {
	name string
	exp  uint
}

// powerSet is the multiset of (variable, exponent) pairs of a monomial,
// kept sorted by variable name so two power sets compare structurally
// equal with reflect-free, allocation-free comparisons.
type powerSet []powerPair

// key renders the power set as a canonical string, used both as a map
// key when combining like terms and as part of String's output.
func (ps powerSet) key() string {
	var b []byte
	for _, p := range ps {
		b = append(b, p.name...)
		b = append(b, '^')
		b = appendUint(b, uint64(p.exp))
		b = append(b, ';')
	}
	return string(b)
}

func appendUint(b []byte, v uint64) []byte {
	if v == 0 {
		return append(b, '0')
	}
	var digits [20]byte
	i := len(digits)
	for v > 0 {
		i--
		digits[i] = byte('0' + v%10)
		v /= 10
	}
	return append(b, digits[i:]...)
}

// mulPowers multiplies two power sets (adds exponents of shared
// variables) and returns the normalised, sorted result.
func mulPowers(a, b powerSet) powerSet {
	merged := make(map[string]uint, len(a)+len(b))
	for _, p := range a {
		merged[p.name] += p.exp
	}
	for _, p := range b {
		merged[p.name] += p.exp
	}
	out := make(powerSet, 0, len(merged))
	for name, exp := range merged {
		if exp == 0 {
			continue
		}
		out = append(out, powerPair{name, exp})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// monomial is one term: a coefficient times a power set.
type monomial struct {
	coeff  float64
	powers powerSet
}

// Polynomial is a normalised multivariate polynomial over named size
// variables. The zero value is the zero polynomial. Polynomial is a
// value type: copying it is always safe, and Equal compares by
// structural equality after normalisation, never by pointer identity.
type Polynomial struct {
	monomials []monomial // canonically sorted by powers.key(); no duplicate keys; no zero coefficients
}

// normalise combines like monomials, drops zero-coefficient terms, and
// sorts the result into canonical order. It is the single choke point
// every constructor and operation routes through, which is what makes
// Equal a plain structural comparison.
func normalise(terms []monomial) Polynomial {
	byKey := make(map[string]*monomial, len(terms))
	order := make([]string, 0, len(terms))
	for _, t := range terms {
		k := t.powers.key()
		if existing, ok := byKey[k]; ok {
			existing.coeff += t.coeff
			continue
		}
		cp := t
		byKey[k] = &cp
		order = append(order, k)
	}
	sort.Strings(order)
	out := make([]monomial, 0, len(order))
	for _, k := range order {
		m := byKey[k]
		if m.coeff == 0 {
			continue
		}
		out = append(out, *m)
	}
	return Polynomial{monomials: out}
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	terms := make([]monomial, 0, len(p.monomials)+len(q.monomials))
	terms = append(terms, p.monomials...)
	terms = append(terms, q.monomials...)
	return normalise(terms)
}

// Mul returns p * q.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	terms := make([]monomial, 0, len(p.monomials)*len(q.monomials))
	for _, a := range p.monomials {
		for _, b := range q.monomials {
			terms = append(terms, monomial{coeff: a.coeff * b.coeff, powers: mulPowers(a.powers, b.powers)})
		}
	}
	return normalise(terms)
}

// Scale returns c * p.
func (p Polynomial) Scale(c float64) Polynomial {
	if c == 0 {
		return Zero()
	}
	terms := make([]monomial, len(p.monomials))
	for i, m := range p.monomials {
		terms[i] = monomial{coeff: m.coeff * c, powers: m.powers}
	}
	return normalise(terms)
}

// ProfileLike is anything that can answer "what value does this size
// variable hold", matching profile.SizeProfile's Get method without
// importing that package (which would create an import cycle, since
// profile evaluation is defined in terms of polynomials, not the other
// way around).
type ProfileLike interface {
	Get(name string) uint64
}

// Evaluate substitutes each size variable with its value from profile
// (0 if absent) and evaluates the result in float64.
func (p Polynomial) Evaluate(profile ProfileLike) float64 {
	var total float64
	for _, m := range p.monomials {
		term := m.coeff
		for _, pow := range m.powers {
			v := float64(profile.Get(pow.name))
			term *= ipow(v, pow.exp)
		}
		total += term
	}
	return total
}

func ipow(base float64, exp uint) float64 {
	result := 1.0
	for ; exp > 0; exp-- {
		result *= base
	}
	return result
}

// Equal reports whether p and q are the same polynomial after
// normalisation (exact equality on the rational coefficients produced by
// the constructors in this package; no floating-point tolerance is
// applied here — callers comparing evaluated results should use their
// own epsilon).
func (p Polynomial) Equal(q Polynomial) bool {
	if len(p.monomials) != len(q.monomials) {
		return false
	}
	for i := range p.monomials {
		a, b := p.monomials[i], q.monomials[i]
		if a.coeff != b.coeff || a.powers.key() != b.powers.key() {
			return false
		}
	}
	return true
}

// IsZero reports whether p normalises to the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.monomials) == 0
}
