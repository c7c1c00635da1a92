package problems

import (
	"encoding/json"

	"github.com/CodingThrust/problem-reductions-sub000/problem"
	"github.com/CodingThrust/problem-reductions-sub000/profile"
	"github.com/CodingThrust/problem-reductions-sub000/variant"
)

// NameFactoring is the registered problem name.
const NameFactoring = "Factoring"

// Factoring asks for two factors p (BitsP bits) and q (BitsQ bits), in
// little-endian binary, whose product equals Target. The assignment's
// first BitsP flavors give p's bits, the remaining BitsQ give q's.
type Factoring struct {
	BitsP  int
	BitsQ  int
	Target int64
}

func (Factoring) Name() string { return NameFactoring }

func (Factoring) Variant() problem.VariantTuple {
	return problem.VariantTuple{{Category: variant.CategoryK, Value: variant.KN}}
}

func (p Factoring) SizeProfile() profile.SizeProfile {
	return profile.New(
		profile.Pair{Name: "bits_p", Value: uint64(p.BitsP)},
		profile.Pair{Name: "bits_q", Value: uint64(p.BitsQ)},
	)
}

func (p Factoring) NumVariables() int { return p.BitsP + p.BitsQ }
func (Factoring) NumFlavors() int      { return 2 }

func bitsToInt(bits []int) int64 {
	var v int64
	for i, b := range bits {
		if b == 1 {
			v |= 1 << uint(i)
		}
	}
	return v
}

func (p Factoring) Evaluate(a problem.Assignment) problem.Evaluation {
	if !a.Validate(p.NumVariables(), p.NumFlavors()) {
		return problem.Infeasible
	}
	pVal := bitsToInt(a[:p.BitsP])
	qVal := bitsToInt(a[p.BitsP:])
	if pVal*qVal != p.Target {
		return problem.Infeasible
	}
	return problem.Evaluation{Feasible: true, Objective: 0, Direction: problem.Minimize}
}

type factoringData struct {
	BitsP  int   `json:"bits_p"`
	BitsQ  int   `json:"bits_q"`
	Target int64 `json:"target"`
}

func (p Factoring) MarshalData() (json.RawMessage, error) {
	return json.Marshal(factoringData{BitsP: p.BitsP, BitsQ: p.BitsQ, Target: p.Target})
}

func decodeFactoring(_ problem.VariantTuple, data json.RawMessage) (problem.Problem, error) {
	var d factoringData
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return Factoring{BitsP: d.BitsP, BitsQ: d.BitsQ, Target: d.Target}, nil
}

func init() {
	problem.RegisterSchema(NameFactoring, decodeFactoring)
	problem.RegisterCategory(NameFactoring, "specialized")
	problem.RegisterDocPath(NameFactoring, "problems.Factoring")
}
