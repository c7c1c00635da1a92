package problems

import (
	"encoding/json"

	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/profile"
)

// NameCircuitSAT is the registered problem name.
const NameCircuitSAT = "CircuitSAT"

// GateOp is a boolean gate kind.
type GateOp string

const (
	GateAnd GateOp = "AND"
	GateOr  GateOp = "OR"
	GateNot GateOp = "NOT"
	GateXor GateOp = "XOR"
)

// Gate computes wire Output from the values on wire indices Inputs. NOT
// takes exactly one input; AND/OR/XOR fold left-to-right over two or
// more.
type Gate struct {
	Op     GateOp
	Inputs []int
	Output int
}

func (g Gate) eval(wires []int) int {
	switch g.Op {
	case GateNot:
		return 1 - wires[g.Inputs[0]]
	case GateAnd:
		v := 1
		for _, in := range g.Inputs {
			v &= wires[in]
		}
		return v
	case GateOr:
		v := 0
		for _, in := range g.Inputs {
			v |= wires[in]
		}
		return v
	case GateXor:
		v := 0
		for _, in := range g.Inputs {
			v ^= wires[in]
		}
		return v
	default:
		return 0
	}
}

// CircuitSAT asks whether some assignment of the first NumInputs wires
// makes the circuit's designated OutputWire evaluate to 1. Wires
// NumInputs..NumWires-1 are gate outputs, computed by evaluating Gates
// in order (each gate may only read wires already defined — its own
// inputs and earlier gates' outputs).
type CircuitSAT struct {
	NumInputs  int
	NumWires   int
	Gates      []Gate
	OutputWire int
}

func (CircuitSAT) Name() string { return NameCircuitSAT }

func (CircuitSAT) Variant() problem.VariantTuple { return nil }

func (p CircuitSAT) SizeProfile() profile.SizeProfile {
	return profile.New(
		profile.Pair{Name: "num_vars", Value: uint64(p.NumInputs)},
		profile.Pair{Name: "num_gates", Value: uint64(len(p.Gates))},
	)
}

func (p CircuitSAT) NumVariables() int { return p.NumInputs }
func (CircuitSAT) NumFlavors() int      { return 2 }

func (p CircuitSAT) Evaluate(a problem.Assignment) problem.Evaluation {
	if !a.Validate(p.NumVariables(), p.NumFlavors()) {
		return problem.Infeasible
	}
	wires := make([]int, p.NumWires)
	copy(wires, a)
	for _, g := range p.Gates {
		wires[g.Output] = g.eval(wires)
	}
	if wires[p.OutputWire] != 1 {
		return problem.Infeasible
	}
	return problem.Evaluation{Feasible: true, Objective: 0, Direction: problem.Minimize}
}

type gateData struct {
	Op     GateOp `json:"op"`
	Inputs []int  `json:"inputs"`
	Output int    `json:"output"`
}

type circuitSATData struct {
	NumInputs  int        `json:"num_inputs"`
	NumWires   int        `json:"num_wires"`
	Gates      []gateData `json:"gates"`
	OutputWire int        `json:"output_wire"`
}

func (p CircuitSAT) MarshalData() (json.RawMessage, error) {
	gates := make([]gateData, len(p.Gates))
	for i, g := range p.Gates {
		gates[i] = gateData{Op: g.Op, Inputs: g.Inputs, Output: g.Output}
	}
	return json.Marshal(circuitSATData{NumInputs: p.NumInputs, NumWires: p.NumWires, Gates: gates, OutputWire: p.OutputWire})
}

func decodeCircuitSAT(_ problem.VariantTuple, data json.RawMessage) (problem.Problem, error) {
	var d circuitSATData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	gates := make([]Gate, len(d.Gates))
	for i, g := range d.Gates {
		gates[i] = Gate{Op: g.Op, Inputs: g.Inputs, Output: g.Output}
	}
	return CircuitSAT{NumInputs: d.NumInputs, NumWires: d.NumWires, Gates: gates, OutputWire: d.OutputWire}, nil
}

func init() {
	problem.RegisterSchema(NameCircuitSAT, decodeCircuitSAT)
	problem.RegisterCategory(NameCircuitSAT, "satisfiability")
	problem.RegisterDocPath(NameCircuitSAT, "problems.CircuitSAT")
}
