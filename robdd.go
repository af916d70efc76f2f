// Copyright (c) 2026 the robdd authors
//
// MIT License

package robdd

import (
	"fmt"

	"github.com/go-logr/logr"
	"go.uber.org/multierr"
)

// _MAXVAR is the maximal number of levels in a BDD. Levels are stored on
// int32 so we keep the same bound as BuDDy.
const _MAXVAR int32 = 0x1FFFFF

// BDD is a store of Reduced Ordered Binary Decision Diagram nodes over a
// fixed variable ordering. All the nodes of all the diagrams built with a
// given store live in its arena; diagrams are Node handles into it and two
// equal handles always denote the same Boolean function.
//
// A BDD is not safe for concurrent use: node creation is a check-then-create
// sequence over the unicity table. Use one store per goroutine, or protect
// every operation with a mutex.
type BDD struct {
	vars   []string         // variable ordering, fixed at creation
	levels map[string]int32 // level of each variable name
	nodes  []node           // arena; the constants are at slots 0 and 1
	unique map[triple]Node  // unicity table
	varset [][2]Node        // prebuilt positive and negative diagram of each variable

	maxnodesize int // maximum total number of nodes (0 if no limit)
	log         logr.Logger
}

// New returns an empty store over the given variable ordering. The position
// of a name in the slice is its level: names earlier in the slice appear
// higher in the diagrams. Names must be distinct and non-empty; we report
// every offending name, wrapping ErrBadOrdering.
func New(ordering []string, options ...Option) (*BDD, error) {
	if len(ordering) == 0 {
		return nil, fmt.Errorf("%w: empty ordering", ErrBadOrdering)
	}
	if len(ordering) > int(_MAXVAR) {
		return nil, fmt.Errorf("%w: too many variables (%d)", ErrBadOrdering, len(ordering))
	}
	var err error
	levels := make(map[string]int32, len(ordering))
	for k, name := range ordering {
		if name == "" {
			err = multierr.Append(err, fmt.Errorf("%w: empty name at position %d", ErrBadOrdering, k))
			continue
		}
		if _, ok := levels[name]; ok {
			err = multierr.Append(err, fmt.Errorf("%w: duplicate variable %q", ErrBadOrdering, name))
			continue
		}
		levels[name] = int32(k)
	}
	if err != nil {
		return nil, err
	}
	c := &configs{nodesize: 2*len(ordering) + 2, log: logr.Discard()}
	for _, opt := range options {
		opt(c)
	}
	varnum := int32(len(ordering))
	b := &BDD{
		vars:        append([]string(nil), ordering...),
		levels:      levels,
		nodes:       make([]node, 2, c.nodesize),
		unique:      make(map[triple]Node, c.nodesize),
		varset:      make([][2]Node, varnum),
		maxnodesize: c.maxnodesize,
		log:         c.log,
	}
	// The constants carry the maximal level and point to themselves.
	b.nodes[bddzero] = node{level: varnum, low: bddzero, high: bddzero}
	b.nodes[bddone] = node{level: varnum, low: bddone, high: bddone}
	for k := int32(0); k < varnum; k++ {
		v0, err := b.makenode(k, bddzero, bddone)
		if err != nil {
			return nil, fmt.Errorf("cannot allocate variable %q: %w", ordering[k], err)
		}
		v1, err := b.makenode(k, bddone, bddzero)
		if err != nil {
			return nil, fmt.Errorf("cannot allocate variable %q: %w", ordering[k], err)
		}
		b.varset[k] = [2]Node{v0, v1}
	}
	b.log.V(1).Info("created BDD store", "varnum", varnum, "nodesize", cap(b.nodes))
	return b, nil
}

// makenode returns the handle of the decision node (level, low, high),
// creating it only when it exists nowhere in the store. This is the only
// node creation path and it enforces the two reduction rules: a node with
// equal children is never materialized, and the unicity table guarantees
// that isomorphic nodes are shared.
//
// Callers must request nodes in decreasing-rank order; a level at or below
// one of its children breaks the ordering invariant and is a bug, so we
// panic instead of returning an error.
func (b *BDD) makenode(level int32, low, high Node) (Node, error) {
	if level >= b.level(low) || level >= b.level(high) {
		panic(fmt.Sprintf("ordering violation: level %d not above children (levels %d, %d)",
			level, b.level(low), b.level(high)))
	}
	if low == high {
		return low, nil
	}
	if n, ok := b.unique[triple{level, low, high}]; ok {
		return n, nil
	}
	if b.maxnodesize > 0 && len(b.nodes) >= b.maxnodesize {
		return bddzero, fmt.Errorf("%w (%d nodes)", ErrNodeLimit, len(b.nodes))
	}
	if len(b.nodes) == cap(b.nodes) {
		b.log.V(1).Info("growing node arena", "size", len(b.nodes))
	}
	n := Node(len(b.nodes))
	b.nodes = append(b.nodes, node{level: level, low: low, high: high})
	b.unique[triple{level, low, high}] = n
	return n, nil
}

// checknode guards the public entry points against stale or foreign
// handles.
func (b *BDD) checknode(n Node) error {
	if n < 0 || int(n) >= len(b.nodes) {
		return fmt.Errorf("%w: %d", ErrInvalidNode, n)
	}
	return nil
}

// True returns the constant true diagram.
func (b *BDD) True() Node { return bddone }

// False returns the constant false diagram.
func (b *BDD) False() Node { return bddzero }

// From returns the constant diagram for a Boolean value.
func (b *BDD) From(v bool) Node {
	if v {
		return bddone
	}
	return bddzero
}

// Var returns the diagram that is true exactly when the named variable is
// true. The error wraps ErrUndefinedVariable if the name is not part of the
// ordering.
func (b *BDD) Var(name string) (Node, error) {
	level, ok := b.levels[name]
	if !ok {
		return bddzero, fmt.Errorf("%w: %q not in ordering %v", ErrUndefinedVariable, name, b.vars)
	}
	return b.varset[level][0], nil
}

// NVar returns the diagram for the negation of the named variable. See Var
// for possible errors.
func (b *BDD) NVar(name string) (Node, error) {
	level, ok := b.levels[name]
	if !ok {
		return bddzero, fmt.Errorf("%w: %q not in ordering %v", ErrUndefinedVariable, name, b.vars)
	}
	return b.varset[level][1], nil
}

// Varnum returns the number of variables in the ordering.
func (b *BDD) Varnum() int { return len(b.vars) }

// Order returns a copy of the variable ordering.
func (b *BDD) Order() []string { return append([]string(nil), b.vars...) }

// Size returns the total number of allocated nodes, constants included.
func (b *BDD) Size() int { return len(b.nodes) }

// IsConst reports whether n is one of the two constant nodes.
func (b *BDD) IsConst(n Node) bool { return n == bddzero || n == bddone }

// Value returns the Boolean value of a constant node. It is only
// meaningful when IsConst(n) is true.
func (b *BDD) Value(n Node) bool { return n == bddone }

// Label returns the variable name tested by node n, or the empty string for
// constants and invalid handles.
func (b *BDD) Label(n Node) string {
	if b.checknode(n) != nil || n < 2 {
		return ""
	}
	return b.vars[b.level(n)]
}

// Low returns the false branch of a decision node. Constants are their own
// branches.
func (b *BDD) Low(n Node) (Node, error) {
	if err := b.checknode(n); err != nil {
		return bddzero, err
	}
	return b.low(n), nil
}

// High returns the true branch of a decision node. Constants are their own
// branches.
func (b *BDD) High(n Node) (Node, error) {
	if err := b.checknode(n); err != nil {
		return bddzero, err
	}
	return b.high(n), nil
}

// Allnodes calls f once for every node reachable from one of the roots,
// following low and high branches, or once for every allocated node when no
// root is given. The visit order is unspecified. We stop and return the
// error of f if it fails at some point.
func (b *BDD) Allnodes(f func(n Node) error, roots ...Node) error {
	for _, n := range roots {
		if err := b.checknode(n); err != nil {
			return err
		}
	}
	if len(roots) == 0 {
		for k := range b.nodes {
			if err := f(Node(k)); err != nil {
				return err
			}
		}
		return nil
	}
	seen := make(map[Node]bool)
	var visit func(n Node) error
	visit = func(n Node) error {
		if seen[n] {
			return nil
		}
		seen[n] = true
		if err := f(n); err != nil {
			return err
		}
		if n < 2 {
			return nil
		}
		if err := visit(b.low(n)); err != nil {
			return err
		}
		return visit(b.high(n))
	}
	for _, n := range roots {
		if err := visit(n); err != nil {
			return err
		}
	}
	return nil
}
