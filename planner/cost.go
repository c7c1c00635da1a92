package planner

import (
	"github.com/CodingThrust/problem-reductions-sub000/profile"
	"github.com/CodingThrust/problem-reductions-sub000/registry"
)

// CostFunction assigns a non-negative real cost to traversing one edge,
// given the edge's overhead and the size profile accumulated so far
// along the walk (spec.md §4.7). Built-in cost functions below cover
// the documented set; CustomCost wraps an arbitrary closure.
//
// Cost functions that can return negative values make Dijkstra's
// correctness undefined; this package does not detect that case
// (spec.md §9).
type CostFunction interface {
	EdgeCost(overhead []registry.OverheadField, current profile.SizeProfile) float64
}

// CostFunc adapts a plain function to CostFunction.
type CostFunc func(overhead []registry.OverheadField, current profile.SizeProfile) float64

// EdgeCost implements CostFunction.
func (f CostFunc) EdgeCost(overhead []registry.OverheadField, current profile.SizeProfile) float64 {
	return f(overhead, current)
}

// outputValue evaluates the overhead field named name against current,
// or 0 if overhead has no entry for that field.
func outputValue(overhead []registry.OverheadField, current profile.SizeProfile, name string) float64 {
	for _, f := range overhead {
		if f.Field == name {
			return f.Poly.Evaluate(current)
		}
	}
	return 0
}

// MinimizeSteps assigns every edge a cost of 1, so the cheapest path is
// the one with fewest hops.
func MinimizeSteps() CostFunction {
	return CostFunc(func(overhead []registry.OverheadField, current profile.SizeProfile) float64 {
		return 1
	})
}

// Minimize assigns an edge the evaluated value of its named output
// field (0 if the edge's overhead does not mention that field).
func Minimize(field string) CostFunction {
	return CostFunc(func(overhead []registry.OverheadField, current profile.SizeProfile) float64 {
		return outputValue(overhead, current, field)
	})
}

// FieldWeight is one (field, weight) pair for MinimizeWeighted.
type FieldWeight struct {
	Field  string
	Weight float64
}

// MinimizeWeighted assigns an edge the weighted sum of its output
// fields.
func MinimizeWeighted(fields []FieldWeight) CostFunction {
	return CostFunc(func(overhead []registry.OverheadField, current profile.SizeProfile) float64 {
		var total float64
		for _, fw := range fields {
			total += fw.Weight * outputValue(overhead, current, fw.Field)
		}
		return total
	})
}

// MinimizeMax assigns an edge the maximum of the named output fields.
func MinimizeMax(fields []string) CostFunction {
	return CostFunc(func(overhead []registry.OverheadField, current profile.SizeProfile) float64 {
		var max float64
		for i, f := range fields {
			v := outputValue(overhead, current, f)
			if i == 0 || v > max {
				max = v
			}
		}
		return max
	})
}

// lexicographicScale is the per-field decade shrink factor: field i
// contributes at scale 10^(-10*i), so fields strictly dominate in order
// "up to 10 decades of magnitude" (spec.md §4.7).
const lexicographicScale = 1e-10

// MinimizeLexicographic folds the named fields as
// f_0 + 10^-10 * f_1 + 10^-20 * f_2 + ... so earlier fields strictly
// dominate later ones within the representable range.
func MinimizeLexicographic(fields []string) CostFunction {
	return CostFunc(func(overhead []registry.OverheadField, current profile.SizeProfile) float64 {
		var total, scale float64 = 0, 1
		for _, f := range fields {
			total += scale * outputValue(overhead, current, f)
			scale *= lexicographicScale
		}
		return total
	})
}

// CustomCost wraps a user-supplied closure as a CostFunction.
func CustomCost(f func(overhead []registry.OverheadField, current profile.SizeProfile) float64) CostFunction {
	return CostFunc(f)
}
