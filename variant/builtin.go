package variant

// Built-in category names shared by the bundled problems in the
// problems/ package. The set of categories is open — any problem may
// register its own — but these three are common enough to live in the
// core so reductions can refer to them without each importing a
// problem-specific constants file.
const (
	CategoryGraph  = "graph"
	CategoryWeight = "weight"
	CategoryK      = "k"
)

// Graph-kind values (spec.md §8: "SimpleGraph ≺ HyperGraph" and
// "UnitDiskGraph ≺ SimpleGraph" — HyperGraph is the most general, the
// root of this category's tree).
const (
	HyperGraph    = "HyperGraph"
	SimpleGraph   = "SimpleGraph"
	UnitDiskGraph = "UnitDiskGraph"
)

// Weight-kind values (spec.md §8: "One ≺ i32 ≺ f64" — f64 is the root).
const (
	WeightF64 = "f64"
	WeightI32 = "i32"
	WeightOne = "One"
)

// K-value names (spec.md §8: "K1 ≺ K2 ≺ K3 ≺ K4 ≺ KN" — KN, unbounded,
// is the root).
const (
	KN = "KN"
	K1 = "K1"
	K2 = "K2"
	K3 = "K3"
	K4 = "K4"
)

func intPtr(v int) *int { return &v }

func init() {
	// graph category: HyperGraph is the root; SimpleGraph's parent is
	// HyperGraph; UnitDiskGraph's parent is SimpleGraph.
	Register(CategoryGraph, HyperGraph, "", false)
	Register(CategoryGraph, SimpleGraph, HyperGraph, true)
	Register(CategoryGraph, UnitDiskGraph, SimpleGraph, true)

	// weight category: f64 is the root; i32's parent is f64; One's
	// parent is i32.
	Register(CategoryWeight, WeightF64, "", false)
	Register(CategoryWeight, WeightI32, WeightF64, true)
	Register(CategoryWeight, WeightOne, WeightI32, true)

	// k category: KN (unbounded) is the root; K4's parent is KN; K3's
	// parent is K4; K2's parent is K3; K1's parent is K2.
	RegisterK(KN, "", false, nil)
	RegisterK(K4, KN, true, intPtr(4))
	RegisterK(K3, K4, true, intPtr(3))
	RegisterK(K2, K3, true, intPtr(2))
	RegisterK(K1, K2, true, intPtr(1))
}
