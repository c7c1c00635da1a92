package planner

import "github.com/CodingThrust/problem-reductions-sub000/variant"

// isSubtype thinly wraps variant.IsSubtype so path.go need not import the
// variant package itself at every call site; kept as its own file because
// allpaths.go shares it. Descriptors are normalised (problem.Descriptor.
// Normalised) before reaching here, so category values are never empty.
func isSubtype(category, child, ancestor string) bool {
	if child == ancestor {
		return true
	}
	return variant.IsSubtype(category, child, ancestor)
}
