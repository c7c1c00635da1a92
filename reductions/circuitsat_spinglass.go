package reductions

import (
	"github.com/CodingThrust/problem-reductions-sub000/polynomial"
	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/problems"
	"github.com/CodingThrust/problem-reductions-sub000/registry"
)

// gateQUBO accumulates a growing QUBO matrix q over a fixed set of wire
// variables plus whatever ancillas individual gate gadgets allocate, one
// gate at a time.
type gateQUBO struct {
	q [][]float64
}

func newGateQUBO(n int) *gateQUBO {
	g := &gateQUBO{q: make([][]float64, n)}
	for i := range g.q {
		g.q[i] = make([]float64, n)
	}
	return g
}

func (g *gateQUBO) grow(n int) {
	for len(g.q) < n {
		g.q = append(g.q, make([]float64, n))
	}
	for i := range g.q {
		for len(g.q[i]) < n {
			g.q[i] = append(g.q[i], 0)
		}
	}
}

func (g *gateQUBO) add(i, j int, v float64) { g.q[i][j] += v }

// andGadget adds the standard pairwise penalty enforcing z == a AND b
// (Boros-Hammer linearisation): zero at every satisfying assignment,
// strictly positive otherwise.
func (g *gateQUBO) andGadget(a, b, z int) {
	g.add(a, b, 1)
	g.add(a, z, -2)
	g.add(b, z, -2)
	g.add(z, z, 3)
}

// orGadget adds the pairwise penalty enforcing z == a OR b.
func (g *gateQUBO) orGadget(a, b, z int) {
	g.add(a, a, 1)
	g.add(b, b, 1)
	g.add(z, z, 1)
	g.add(a, b, 1)
	g.add(a, z, -2)
	g.add(b, z, -2)
}

// notGadget adds the pairwise penalty enforcing z == NOT a.
func (g *gateQUBO) notGadget(a, z int) {
	g.add(a, a, -1)
	g.add(z, z, -1)
	g.add(a, z, 2)
}

// xorGadget enforces z == a XOR b == a+b-2*(a AND b). Pure quadratic
// penalties cannot express XOR directly (the correct encoding is cubic
// in a, b, z), so an ancilla w stands in for a AND b via andGadget, and
// a second, purely quadratic penalty then enforces z == a+b-2w.
func (g *gateQUBO) xorGadget(a, b, z, w int) {
	g.andGadget(a, b, w)
	g.add(z, z, 1)
	g.add(a, a, 1)
	g.add(b, b, 1)
	g.add(w, w, 4)
	g.add(z, a, -2)
	g.add(z, b, -2)
	g.add(z, w, 4)
	g.add(a, b, 2)
	g.add(a, w, -4)
	g.add(b, w, -4)
}

// circuitToGateQUBO compiles a CircuitSAT instance into an equivalent
// QUBO matrix over one variable per circuit wire plus one ancilla per
// XOR gate, with a large linear reward for the output wire so the
// global minimum is achieved only by a consistent, satisfying wire
// assignment (spec.md §4.13 item 6).
func circuitToGateQUBO(c problems.CircuitSAT) [][]float64 {
	nextWire := c.NumWires
	g := newGateQUBO(c.NumWires)
	for _, gate := range c.Gates {
		switch gate.Op {
		case problems.GateNot:
			g.notGadget(gate.Inputs[0], gate.Output)
		case problems.GateAnd:
			applyChained(g, gate.Inputs, gate.Output, &nextWire, (*gateQUBO).andGadget)
		case problems.GateOr:
			applyChained(g, gate.Inputs, gate.Output, &nextWire, (*gateQUBO).orGadget)
		case problems.GateXor:
			applyChainedXor(g, gate.Inputs, gate.Output, &nextWire)
		}
	}
	g.grow(nextWire)
	bigReward := float64(len(c.Gates)*4 + 10)
	g.add(c.OutputWire, c.OutputWire, -bigReward)
	return g.q
}

// applyChained folds a multi-input AND/OR gate into a chain of 2-input
// gadgets, the same left-to-right fold Gate.eval itself performs,
// allocating one ancilla wire per intermediate result.
func applyChained(g *gateQUBO, inputs []int, output int, nextWire *int, gadget func(*gateQUBO, int, int, int)) {
	acc := inputs[0]
	for i := 1; i < len(inputs); i++ {
		target := output
		if i < len(inputs)-1 {
			target = *nextWire
			*nextWire++
			g.grow(*nextWire)
		}
		gadget(g, acc, inputs[i], target)
		acc = target
	}
}

func applyChainedXor(g *gateQUBO, inputs []int, output int, nextWire *int) {
	acc := inputs[0]
	for i := 1; i < len(inputs); i++ {
		target := output
		if i < len(inputs)-1 {
			target = *nextWire
			*nextWire++
		}
		w := *nextWire
		*nextWire++
		g.grow(*nextWire)
		g.xorGadget(acc, inputs[i], target, w)
		acc = target
	}
}

func init() {
	registry.Register(registry.Rule{
		SourceName:    problems.NameCircuitSAT,
		SourceVariant: problems.CircuitSAT{}.Variant,
		TargetName:    problems.NameSpinGlass,
		TargetVariant: problems.SpinGlass{}.Variant,
		Overhead: []registry.OverheadField{
			{Field: "num_spins", Poly: polynomial.Var("num_vars").Add(polynomial.Var("num_gates").Scale(2))},
		},
		ModulePath: "reductions.CircuitSATToSpinGlass",
		Reduce: func(source problem.Problem) (problem.Problem, registry.BackMap, error) {
			c := source.(problems.CircuitSAT)
			q := circuitToGateQUBO(c)
			couplings, fields := quboToIsing(q)
			target := problems.SpinGlass{Couplings: couplings, Fields: fields}
			backMap := func(a problem.Assignment) problem.Assignment {
				// only the first NumInputs spins correspond to CircuitSAT's
				// variables; every ancilla/gate-output spin is dropped.
				out := make(problem.Assignment, c.NumInputs)
				copy(out, a[:c.NumInputs])
				return out
			}
			return target, backMap, nil
		},
	})
}
