package reductions

import (
	"github.com/CodingThrust/problem-reductions-sub000/polynomial"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/problems"
	"github.com/CodingThrust/problem-reductions-sub000/registry"
)

// circuitBuilder accumulates wires and gates for a bit-multiplication
// gadget, one gate at a time, so the resulting CircuitSAT instance's
// Gates slice is already in a valid evaluation order (every gate only
// reads wires defined by an earlier gate or an input).
type circuitBuilder struct {
	numInputs int
	nextWire  int
	gates     []problems.Gate
}

func newCircuitBuilder(numInputs int) *circuitBuilder {
	return &circuitBuilder{numInputs: numInputs, nextWire: numInputs}
}

func (b *circuitBuilder) gate(op problems.GateOp, inputs ...int) int {
	out := b.nextWire
	b.nextWire++
	b.gates = append(b.gates, problems.Gate{Op: op, Inputs: inputs, Output: out})
	return out
}

func (b *circuitBuilder) and(a, c int) int { return b.gate(problems.GateAnd, a, c) }
func (b *circuitBuilder) or(a, c int) int  { return b.gate(problems.GateOr, a, c) }
func (b *circuitBuilder) xor(a, c int) int { return b.gate(problems.GateXor, a, c) }
func (b *circuitBuilder) not(a int) int    { return b.gate(problems.GateNot, a) }

// zero returns a wire that evaluates to 0 regardless of w's value.
func (b *circuitBuilder) zero(w int) int { return b.and(w, b.not(w)) }

// fullAdder returns (sum, carryOut) wires for a+c+cin.
func (b *circuitBuilder) fullAdder(a, c, cin int) (int, int) {
	axc := b.xor(a, c)
	sum := b.xor(axc, cin)
	carry := b.or(b.and(a, c), b.and(cin, axc))
	return sum, carry
}

// factoringCircuit builds the CircuitSAT instance whose satisfying
// assignments are exactly the (p, q) bit pairs with p*q == target:
// schoolbook shift-and-add multiplication (one ripple-carry addition per
// bit of p), then a bitwise equality check against target's bits folded
// through a single multi-input AND gate (spec.md §4.13 item 5).
func factoringCircuit(f problems.Factoring) problems.CircuitSAT {
	width := f.BitsP + f.BitsQ
	b := newCircuitBuilder(f.NumVariables())
	pWire := func(i int) int { return i }
	qWire := func(j int) int { return f.BitsP + j }

	zero := b.zero(0)
	acc := make([]int, width)
	for i := range acc {
		acc[i] = zero
	}

	for i := 0; i < f.BitsP; i++ {
		addend := make([]int, width)
		for pos := range addend {
			addend[pos] = zero
		}
		for j := 0; j < f.BitsQ; j++ {
			addend[i+j] = b.and(pWire(i), qWire(j))
		}
		cin := zero
		next := make([]int, width)
		for pos := 0; pos < width; pos++ {
			s, c := b.fullAdder(acc[pos], addend[pos], cin)
			next[pos] = s
			cin = c
		}
		acc = next
	}

	var checks []int
	for bit := 0; bit < width; bit++ {
		wantOne := (f.Target>>uint(bit))&1 == 1
		if wantOne {
			checks = append(checks, acc[bit])
		} else {
			checks = append(checks, b.not(acc[bit]))
		}
	}
	if f.Target>>uint(width) != 0 {
		// target has a bit set beyond what width bits can represent: no
		// assignment can ever satisfy it, so force an always-false check.
		checks = append(checks, b.zero(0))
	}

	output := checks[0]
	for _, c := range checks[1:] {
		output = b.and(output, c)
	}

	return problems.CircuitSAT{
		NumInputs:  f.NumVariables(),
		NumWires:   b.nextWire,
		Gates:      b.gates,
		OutputWire: output,
	}
}

func init() {
	registry.Register(registry.Rule{
		SourceName:    problems.NameFactoring,
		SourceVariant: problems.Factoring{}.Variant,
		TargetName:    problems.NameCircuitSAT,
		TargetVariant: problems.CircuitSAT{}.Variant,
		Overhead: []registry.OverheadField{
			{Field: "num_vars", Poly: polynomial.Var("bits_p").Add(polynomial.Var("bits_q"))},
			{Field: "num_gates", Poly: polynomial.Var("bits_p").Mul(polynomial.Var("bits_q")).Scale(6)},
		},
		ModulePath: "reductions.FactoringToCircuitSAT",
		Reduce: func(source problem.Problem) (problem.Problem, registry.BackMap, error) {
			f := source.(problems.Factoring)
			return factoringCircuit(f), identityBackMap, nil
		},
	})
}
