// Package problem defines the descriptor, variant tuple, Problem
// interface, Evaluation type, and Assignment type shared by every
// concrete combinatorial problem in this module (spec.md §4.4, §4.10).
//
// Everything here is a contract: the core never implements a concrete
// problem's internal algorithm (that lives in problems/), it only
// consumes the handful of methods a type needs to participate as a node
// in the reduction graph.
package problem
