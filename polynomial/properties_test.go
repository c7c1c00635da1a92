package polynomial_test

import (
	"testing"

	"github.com/CodingThrust/problem-reductions-sub000/polynomial"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// buildPoly turns three floats into a fixed-shape polynomial over
// variables "n" and "m", exercising Scale/Add/Mul together.
func buildPoly(a, b, c float64) polynomial.Polynomial {
	return polynomial.Var("n").Scale(a).Add(polynomial.Var("m").Scale(b)).Add(polynomial.Constant(c))
}

func TestPolynomialProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	coeff := gen.Float64Range(-100, 100)

	properties.Property("commutativity of addition", prop.ForAll(
		func(a, b, c, d, e, f float64) bool {
			p, q := buildPoly(a, b, c), buildPoly(d, e, f)
			return p.Add(q).Equal(q.Add(p))
		},
		coeff, coeff, coeff, coeff, coeff, coeff,
	))

	properties.Property("commutativity of multiplication", prop.ForAll(
		func(a, b, c, d, e, f float64) bool {
			p, q := buildPoly(a, b, c), buildPoly(d, e, f)
			return p.Mul(q).Equal(q.Mul(p))
		},
		coeff, coeff, coeff, coeff, coeff, coeff,
	))

	properties.Property("distributivity", prop.ForAll(
		func(a, b, c, d, e, f, g, h, i float64) bool {
			p, q, r := buildPoly(a, b, c), buildPoly(d, e, f), buildPoly(g, h, i)
			return p.Mul(q.Add(r)).Equal(p.Mul(q).Add(p.Mul(r)))
		},
		coeff, coeff, coeff, coeff, coeff, coeff, coeff, coeff, coeff,
	))

	properties.Property("additive identity", prop.ForAll(
		func(a, b, c float64) bool {
			p := buildPoly(a, b, c)
			return p.Add(polynomial.Zero()).Equal(p)
		},
		coeff, coeff, coeff,
	))

	properties.Property("evaluation consistency", prop.ForAll(
		func(a, b, c, d, e, f float64, n, m uint64) bool {
			p, q := buildPoly(a, b, c), buildPoly(d, e, f)
			prof := fakeProfile{"n": n, "m": m}
			sum := p.Add(q)
			got := sum.Evaluate(prof)
			want := p.Evaluate(prof) + q.Evaluate(prof)
			diff := got - want
			if diff < 0 {
				diff = -diff
			}
			return diff < 1e-6*(1+want*want)
		},
		coeff, coeff, coeff, coeff, coeff, coeff, gen.UInt64Range(0, 1000), gen.UInt64Range(0, 1000),
	))

	properties.TestingRun(t)
}
