// Package polynomial implements the symbolic overhead algebra that
// reduction rules use to describe how a target instance's size variables
// grow out of a source instance's size variables.
//
// A Polynomial is a multivariate polynomial over named size variables
// with float64 coefficients, represented as a normalised, canonically
// ordered set of monomials: like terms are always combined and
// zero-coefficient terms are always dropped, so two polynomials built by
// any sequence of algebraic operations compare equal with Equal iff they
// are mathematically equal.
//
// Complexity: Add/Mul/Scale are O(m+n) / O(m*n) in the number of
// monomials of their operands (plus an O(k log k) re-sort). Evaluate is
// O(m) in the number of monomials.
package polynomial
