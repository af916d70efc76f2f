// Copyright (c) 2026 the robdd authors
//
// MIT License

package robdd

import "fmt"

// Eval walks the diagram rooted at n, at each decision node following the
// branch selected by the assignment, and returns the value of the terminal
// it reaches. Variables that the walk never meets do not need a value; a
// reachable variable missing from the assignment yields an error wrapping
// ErrMissingAssignment.
func (b *BDD) Eval(n Node, assignment map[string]bool) (bool, error) {
	if err := b.checknode(n); err != nil {
		return false, fmt.Errorf("wrong node in call to Eval: %w", err)
	}
	for n > 1 {
		name := b.vars[b.level(n)]
		v, ok := assignment[name]
		if !ok {
			return false, fmt.Errorf("%w: no value for %q", ErrMissingAssignment, name)
		}
		if v {
			n = b.high(n)
		} else {
			n = b.low(n)
		}
	}
	return n == bddone, nil
}
