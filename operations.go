// Copyright (c) 2026 the robdd authors
//
// MIT License

package robdd

import "fmt"

// applyKey identifies one memoized apply computation. The memo table is
// created for each call to Apply and dropped when it returns: correctness
// only needs intra-call memoization to bound the work to one visit per pair
// of operand nodes.
type applyKey struct {
	op          Operator
	left, right Node
}

// Apply performs the basic BDD operations with two operands, such as
// AND, OR etc. Left and right are the operands and op is the requested
// operation and must be one of the following:
//
//	Identifier    Description          Truth table
//
//	OPand         logical and          [0,0,0,1]
//	OPxor         logical xor          [0,1,1,0]
//	OPor          logical or           [0,1,1,1]
//	OPnand        logical not-and      [1,1,1,0]
//	OPnor         logical not-or       [1,0,0,0]
//	OPimp         implication          [1,1,0,1]
//	OPbiimp       equivalence          [1,0,0,1]
//	OPdiff        set difference       [0,0,1,0]
//
// The result is canonical: applying the same operator to the same operands
// always returns the same handle.
func (b *BDD) Apply(left, right Node, op Operator) (Node, error) {
	if op < OPand || op > OPdiff {
		return bddzero, fmt.Errorf("%w: %s", ErrWrongOperator, op)
	}
	if err := b.checknode(left); err != nil {
		return bddzero, fmt.Errorf("wrong operand in call to Apply %s: %w", op, err)
	}
	if err := b.checknode(right); err != nil {
		return bddzero, fmt.Errorf("wrong operand in call to Apply %s: %w", op, err)
	}
	memo := make(map[applyKey]Node)
	res, err := b.apply(left, right, op, memo)
	if err != nil {
		return bddzero, err
	}
	b.log.V(2).Info("apply", "op", op.String(), "visited", len(memo), "size", len(b.nodes))
	return res, nil
}

func (b *BDD) apply(left, right Node, op Operator, memo map[applyKey]Node) (Node, error) {
	// Terminal rules specific to each operator. They are shortcuts: the
	// general recursion below computes the same results through opres.
	switch op {
	case OPand:
		if left == right {
			return left, nil
		}
		if left == bddzero || right == bddzero {
			return bddzero, nil
		}
		if left == bddone {
			return right, nil
		}
		if right == bddone {
			return left, nil
		}
	case OPor:
		if left == right {
			return left, nil
		}
		if left == bddone || right == bddone {
			return bddone, nil
		}
		if left == bddzero {
			return right, nil
		}
		if right == bddzero {
			return left, nil
		}
	case OPxor:
		if left == right {
			return bddzero, nil
		}
		if left == bddzero {
			return right, nil
		}
		if right == bddzero {
			return left, nil
		}
	case OPnand:
		if left == bddzero || right == bddzero {
			return bddone, nil
		}
	case OPnor:
		if left == bddone || right == bddone {
			return bddzero, nil
		}
	case OPimp:
		if left == bddzero {
			return bddone, nil
		}
		if left == bddone {
			return right, nil
		}
		if right == bddone {
			return bddone, nil
		}
		if left == right {
			return bddone, nil
		}
	case OPbiimp:
		if left == right {
			return bddone, nil
		}
		if left == bddone {
			return right, nil
		}
		if right == bddone {
			return left, nil
		}
	case OPdiff:
		if left == right {
			return bddzero, nil
		}
		if right == bddone {
			return bddzero, nil
		}
		if left == bddzero {
			return bddzero, nil
		}
	}

	if left < 2 && right < 2 {
		return opres[op][left][right], nil
	}
	key := applyKey{op, left, right}
	if res, ok := memo[key]; ok {
		return res, nil
	}
	// Split on the lesser of the two levels; the constants carry the
	// maximal level so a decision node always wins against a constant.
	leftlvl := b.level(left)
	rightlvl := b.level(right)
	var level int32
	ll, lh := left, left
	rl, rh := right, right
	switch {
	case leftlvl == rightlvl:
		level = leftlvl
		ll, lh = b.low(left), b.high(left)
		rl, rh = b.low(right), b.high(right)
	case leftlvl < rightlvl:
		level = leftlvl
		ll, lh = b.low(left), b.high(left)
	default:
		level = rightlvl
		rl, rh = b.low(right), b.high(right)
	}
	low, err := b.apply(ll, rl, op, memo)
	if err != nil {
		return bddzero, err
	}
	high, err := b.apply(lh, rh, op, memo)
	if err != nil {
		return bddzero, err
	}
	res, err := b.makenode(level, low, high)
	if err != nil {
		return bddzero, err
	}
	memo[key] = res
	return res, nil
}

// Not returns the negation of the expression corresponding to node n. It
// negates a BDD by exchanging all references to the zero-terminal with
// references to the one-terminal and vice versa, preserving the structure
// of the diagram.
func (b *BDD) Not(n Node) (Node, error) {
	if err := b.checknode(n); err != nil {
		return bddzero, fmt.Errorf("wrong operand in call to Not: %w", err)
	}
	return b.not(n, make(map[Node]Node))
}

func (b *BDD) not(n Node, memo map[Node]Node) (Node, error) {
	if n == bddzero {
		return bddone, nil
	}
	if n == bddone {
		return bddzero, nil
	}
	if res, ok := memo[n]; ok {
		return res, nil
	}
	low, err := b.not(b.low(n), memo)
	if err != nil {
		return bddzero, err
	}
	high, err := b.not(b.high(n), memo)
	if err != nil {
		return bddzero, err
	}
	res, err := b.makenode(b.level(n), low, high)
	if err != nil {
		return bddzero, err
	}
	memo[n] = res
	return res, nil
}

// iteKey identifies one memoized if-then-else computation.
type iteKey struct {
	f, g, h Node
}

// Ite, short for if-then-else operator, computes the BDD for the expression
// [(f & g) | (!f & h)] more efficiently than doing the three operations
// separately.
func (b *BDD) Ite(f, g, h Node) (Node, error) {
	for _, n := range []Node{f, g, h} {
		if err := b.checknode(n); err != nil {
			return bddzero, fmt.Errorf("wrong operand in call to Ite: %w", err)
		}
	}
	return b.ite(f, g, h, make(map[iteKey]Node))
}

// itebranch returns n untouched when p is strictly above q or r, otherwise
// the requested branch of n. We always follow the smallest level(s).
func (b *BDD) itebranch(p, q, r int32, n Node, high bool) Node {
	if p > q || p > r {
		return n
	}
	if high {
		return b.high(n)
	}
	return b.low(n)
}

// min3 returns the smallest value between p, q and r.
func min3(p, q, r int32) int32 {
	if p <= q {
		if p <= r { // p <= q && p <= r
			return p
		}
		return r // r < p <= q
	}
	if q <= r { // q < p && q <= r
		return q
	}
	return r // r < q < p
}

func (b *BDD) ite(f, g, h Node, memo map[iteKey]Node) (Node, error) {
	switch {
	case f == bddone:
		return g, nil
	case f == bddzero:
		return h, nil
	case g == h:
		return g, nil
	case g == bddone && h == bddzero:
		return f, nil
	case g == bddzero && h == bddone:
		return b.Not(f)
	}
	key := iteKey{f, g, h}
	if res, ok := memo[key]; ok {
		return res, nil
	}
	p := b.level(f)
	q := b.level(g)
	r := b.level(h)
	low, err := b.ite(b.itebranch(p, q, r, f, false), b.itebranch(q, p, r, g, false), b.itebranch(r, p, q, h, false), memo)
	if err != nil {
		return bddzero, err
	}
	high, err := b.ite(b.itebranch(p, q, r, f, true), b.itebranch(q, p, r, g, true), b.itebranch(r, p, q, h, true), memo)
	if err != nil {
		return bddzero, err
	}
	res, err := b.makenode(min3(p, q, r), low, high)
	if err != nil {
		return bddzero, err
	}
	memo[key] = res
	return res, nil
}

// And returns the logical 'and' of a sequence of nodes.
func (b *BDD) And(n ...Node) (Node, error) {
	if len(n) == 0 {
		return bddone, nil
	}
	res := n[0]
	for _, m := range n[1:] {
		var err error
		if res, err = b.Apply(res, m, OPand); err != nil {
			return bddzero, err
		}
	}
	return res, nil
}

// Or returns the logical 'or' of a sequence of nodes.
func (b *BDD) Or(n ...Node) (Node, error) {
	if len(n) == 0 {
		return bddzero, nil
	}
	res := n[0]
	for _, m := range n[1:] {
		var err error
		if res, err = b.Apply(res, m, OPor); err != nil {
			return bddzero, err
		}
	}
	return res, nil
}

// Xor returns the exclusive or of two nodes.
func (b *BDD) Xor(n1, n2 Node) (Node, error) {
	return b.Apply(n1, n2, OPxor)
}

// Imp returns the logical 'implication' between two nodes.
func (b *BDD) Imp(n1, n2 Node) (Node, error) {
	return b.Apply(n1, n2, OPimp)
}

// Equiv returns the logical 'bi-implication' between two nodes.
func (b *BDD) Equiv(n1, n2 Node) (Node, error) {
	return b.Apply(n1, n2, OPbiimp)
}
