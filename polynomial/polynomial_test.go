package polynomial_test

import (
	"testing"

	"github.com/CodingThrust/problem-reductions-sub000/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProfile adapts a plain map to polynomial.ProfileLike.
type fakeProfile map[string]uint64

func (f fakeProfile) Get(name string) uint64 { return f[name] }

func TestPolynomial_AdditiveIdentity(t *testing.T) {
	p := polynomial.Var("n").Scale(3).Add(polynomial.Constant(2))
	assert.True(t, p.Add(polynomial.Zero()).Equal(p))
}

func TestPolynomial_Commutativity(t *testing.T) {
	p := polynomial.Var("n").Scale(2)
	q := polynomial.Var("m").Add(polynomial.Constant(5))

	assert.True(t, p.Add(q).Equal(q.Add(p)))
	assert.True(t, p.Mul(q).Equal(q.Mul(p)))
}

func TestPolynomial_Distributivity(t *testing.T) {
	p := polynomial.Var("n")
	q := polynomial.Var("m")
	r := polynomial.Constant(4)

	lhs := p.Mul(q.Add(r))
	rhs := p.Mul(q).Add(p.Mul(r))
	assert.True(t, lhs.Equal(rhs))
}

func TestPolynomial_EvaluationConsistency(t *testing.T) {
	p := polynomial.Var("n").Scale(2)
	q := polynomial.VarPow("n", 2).Add(polynomial.Constant(1))
	prof := fakeProfile{"n": 5}

	sum := p.Add(q)
	require.InDelta(t, p.Evaluate(prof)+q.Evaluate(prof), sum.Evaluate(prof), 1e-9)
}

func TestPolynomial_NormalisationCollectsLikeTerms(t *testing.T) {
	a := polynomial.Var("n").Add(polynomial.Var("n"))
	b := polynomial.Var("n").Scale(2)
	assert.True(t, a.Equal(b))

	// Built via a different sequence of operations, still equal.
	c := polynomial.Var("n").Mul(polynomial.Constant(1)).Add(polynomial.Var("n"))
	assert.True(t, a.Equal(c))
}

func TestPolynomial_ScaleByZeroIsZero(t *testing.T) {
	p := polynomial.Var("n").Scale(0)
	assert.True(t, p.IsZero())
}

func TestPolynomial_VarPowZeroIsOne(t *testing.T) {
	p := polynomial.VarPow("n", 0)
	assert.True(t, p.Equal(polynomial.Constant(1)))
}

func TestPolynomial_Evaluate(t *testing.T) {
	// 2*n^2 + 3*m - 1
	p := polynomial.VarPow("n", 2).Scale(2).Add(polynomial.Var("m").Scale(3)).Add(polynomial.Constant(-1))
	got := p.Evaluate(fakeProfile{"n": 3, "m": 4})
	require.InDelta(t, 2*9+3*4-1, got, 1e-9)
}

func TestPolynomial_EvaluateMissingVariableIsZero(t *testing.T) {
	p := polynomial.Var("absent")
	require.InDelta(t, 0, p.Evaluate(fakeProfile{}), 1e-9)
}

func TestPolynomial_Hash_StableAcrossConstructionOrder(t *testing.T) {
	a := polynomial.Var("n").Add(polynomial.Var("m"))
	b := polynomial.Var("m").Add(polynomial.Var("n"))

	ha, err := a.Hash()
	require.NoError(t, err)
	hb, err := b.Hash()
	require.NoError(t, err)
	assert.Equal(t, ha, hb)
}

func TestPolynomial_String(t *testing.T) {
	p := polynomial.VarPow("n", 2).Scale(3).Add(polynomial.Var("m"))
	assert.Equal(t, "3 * n ^ 2 + m", p.String())
}

func TestRoundToSize(t *testing.T) {
	cases := map[float64]uint64{
		-5.0: 0,
		0.0:  0,
		0.49: 0,
		0.5:  1,
		2.4:  2,
		2.5:  3,
	}
	for in, want := range cases {
		assert.Equal(t, want, polynomial.RoundToSize(in), "input %v", in)
	}
}
