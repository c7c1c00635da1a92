// Package registry is the process-global, append-only inventory of
// reduction rules (spec.md §4.5); the problem-category classification
// map lives in package problem (RegisterCategory/CategoryOf). Registration happens exclusively in concrete
// problem/reduction packages' init() functions, mirroring the teacher's
// static-configuration idiom (builder's Constructor values, core's
// GraphOption values) generalised to a process-wide bag instead of a
// per-call options slice.
package registry
