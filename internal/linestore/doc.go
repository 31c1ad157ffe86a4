// Package linestore provides the ordered, line-addressed text store at the
// bottom of the editing engine. Three interchangeable backends satisfy the
// same LineStore interface with identical observable semantics and differing
// asymptotic profiles: Vector (dynamic array), Gap (gap buffer with a
// block-indexed line table), and Rope (an AVL tree of line-vector leaves).
//
// Every backend enforces the same invariant at its public boundary: a
// LineStore never reports zero lines. Init with an empty slice, or erasing
// the last remaining line, re-seeds a single empty line.
package linestore
