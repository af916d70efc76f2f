// Copyright (c) 2026 the robdd authors
//
// MIT License

package robdd

import (
	"fmt"

	"github.com/fvsynth/robdd/expr"
)

// binop maps expression connectives to apply operators.
var binop = map[expr.Op]Operator{
	expr.And: OPand,
	expr.Or:  OPor,
	expr.Xor: OPxor,
	expr.Imp: OPimp,
	expr.Iff: OPbiimp,
}

// Build returns the canonical diagram of a Boolean expression. The diagram
// of each literal is combined with Apply following the shape of the tree,
// which yields the same node as a direct Shannon expansion over the
// ordering, by canonicity. The error wraps ErrUndefinedVariable if the
// expression uses a variable outside the ordering.
func (b *BDD) Build(e expr.Expr) (Node, error) {
	switch e := e.(type) {
	case expr.Const:
		return b.From(bool(e)), nil
	case expr.Var:
		return b.Var(string(e))
	case expr.Not:
		n, err := b.Build(e.X)
		if err != nil {
			return bddzero, err
		}
		return b.Not(n)
	case expr.Bin:
		op, ok := binop[e.Op]
		if !ok {
			return bddzero, fmt.Errorf("%w: %s", ErrWrongOperator, e.Op)
		}
		left, err := b.Build(e.X)
		if err != nil {
			return bddzero, err
		}
		right, err := b.Build(e.Y)
		if err != nil {
			return bddzero, err
		}
		return b.Apply(left, right, op)
	}
	return bddzero, fmt.Errorf("unknown expression type %T", e)
}
