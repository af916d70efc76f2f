// Copyright (c) 2026 the robdd authors
//
// MIT License

package robdd

// Node is a reference to an element of a BDD. It is the atomic unit of
// interactions and computations over a diagram. Two nodes of the same BDD
// denote the same Boolean function exactly when their handles are equal.
type Node int

// The two constant nodes always sit at slots 0 and 1 of the arena.
const (
	bddzero Node = 0
	bddone  Node = 1
)

// node is one slot in the arena. The constants occupy slots 0 and 1 and
// carry the maximal level (the number of variables), so that the level of a
// constant is always greater than the level of any decision node.
type node struct {
	level int32 // order of the variable in the BDD
	low   Node  // reference to the false branch
	high  Node  // reference to the true branch
}

// triple is the key of the unicity table: one entry per distinct
// (level, low, high) combination in the arena.
type triple struct {
	level int32
	low   Node
	high  Node
}

func (b *BDD) level(n Node) int32 {
	return b.nodes[n].level
}

func (b *BDD) low(n Node) Node {
	return b.nodes[n].low
}

func (b *BDD) high(n Node) Node {
	return b.nodes[n].high
}
