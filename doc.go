// Copyright (c) 2026 the robdd authors
//
// MIT License

/*
Package robdd implements Reduced Ordered Binary Decision Diagrams (ROBDD),
a canonical graph representation of Boolean functions over a fixed variable
ordering.

# Basics

A BDD store is created with New from an ordering, the list of variable
names from highest to lowest; the position of a name in the list is its
level. Every diagram built with a store is a Node, an integer handle into
the store's arena, with the convention that 1 (respectively 0) is the
handle of the constant function True (respectively False).

Diagrams are reduced and shared as they are built: a decision node with
equal branches is never materialized, and a unicity table guarantees that
no two nodes with the same variable and branches coexist. As a consequence
the representation is canonical, and two nodes of the same store denote the
same Boolean function exactly when their handles are equal. Checking that a
formula is a tautology amounts to comparing its diagram with True().

Diagrams are built either from an expression tree (Build, over the trees of
the companion package expr) or by combining existing diagrams with the
operations Apply, Not, Ite and their derived forms And, Or, Xor, Imp and
Equiv. Apply uses memoized recursive descent, visiting each pair of operand
nodes at most once; its memoization table lives for a single call. Eval
computes the value of a diagram under an assignment of the variables.

# Memory

Nodes are immutable and are never reclaimed during the life of a store: the
store grows monotonically and is released as a whole when it becomes
unreachable. The Maxnodesize option puts a ceiling on the number of nodes;
an operation that would exceed it fails with ErrNodeLimit.
*/
package robdd
