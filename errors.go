// Copyright (c) 2026 the robdd authors
//
// MIT License

package robdd

import "errors"

// Recoverable error conditions reported by the library. Errors returned by
// the methods of a BDD wrap one of these sentinels, together with the
// offending variable or node, and can be tested with errors.Is.
//
// Ordering violations inside the store are a different beast: they can only
// come from a bug in the library itself, and makenode panics on them.
var (
	// ErrBadOrdering is reported by New when the variable ordering is
	// empty, or contains a blank or duplicated name.
	ErrBadOrdering = errors.New("invalid variable ordering")

	// ErrUndefinedVariable is reported when an expression or a call refers
	// to a variable that is not part of the ordering.
	ErrUndefinedVariable = errors.New("undefined variable")

	// ErrMissingAssignment is reported by Eval when a variable reachable
	// from the evaluated node has no value in the assignment.
	ErrMissingAssignment = errors.New("missing assignment")

	// ErrNodeLimit is reported when creating a node would exceed the limit
	// set with Maxnodesize. The store stays consistent: nodes created
	// before the error remain valid.
	ErrNodeLimit = errors.New("node limit exceeded")

	// ErrInvalidNode is reported when a node handle is outside the arena.
	ErrInvalidNode = errors.New("invalid node")

	// ErrWrongOperator is reported by Apply for operators outside the
	// binary range.
	ErrWrongOperator = errors.New("operator not supported in apply")
)
