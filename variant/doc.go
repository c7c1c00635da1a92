// Package variant implements the variant lattice (spec.md §4.3): a
// global, append-only registry of variant-parameter values, grouped into
// categories, each category forming a forest ordered by a parent
// relation. is_subtype queries the reflexive-transitive closure of that
// relation.
//
// Registration is static (every category is populated by an init()
// somewhere before the first planner query, mirroring the teacher's own
// "all rules referenced by any code path are discoverable by start of
// main" discipline) and is never undone — there is no Deregister.
package variant
