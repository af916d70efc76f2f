// Copyright (c) 2026 the robdd authors
//
// MIT License

// Package expr defines an abstract syntax tree for Boolean expressions over
// named variables, and a parser for the usual infix syntax. The robdd
// package consumes the tree through a type switch; it never depends on the
// parser.
package expr

import "fmt"

// Expr is a Boolean expression tree. The concrete types are Const, Var,
// Not and Bin.
type Expr interface {
	fmt.Stringer
	expr() // restricts implementations to this package
}

// Const is a Boolean literal.
type Const bool

// Var is a reference to a named variable.
type Var string

// Not is the negation of an expression.
type Not struct {
	X Expr
}

// Bin is the combination of two expressions under a binary connective.
type Bin struct {
	Op   Op
	X, Y Expr
}

// Op enumerates the binary connectives.
type Op int

const (
	And Op = iota // conjunction, "&"
	Or            // disjunction, "|"
	Xor           // exclusive or, "^"
	Imp           // implication, "->"
	Iff           // bi-implication, "<->"
)

var opsyms = [5]string{
	And: "&",
	Or:  "|",
	Xor: "^",
	Imp: "->",
	Iff: "<->",
}

func (op Op) String() string {
	if op < And || op > Iff {
		return "?"
	}
	return opsyms[op]
}

func (Const) expr() {}
func (Var) expr()   {}
func (Not) expr()   {}
func (Bin) expr()   {}

func (e Const) String() string {
	if e {
		return "true"
	}
	return "false"
}

func (e Var) String() string { return string(e) }

func (e Not) String() string { return "~" + paren(e.X) }

func (e Bin) String() string {
	return paren(e.X) + " " + e.Op.String() + " " + paren(e.Y)
}

// paren wraps compound subexpressions so that String output is unambiguous
// without tracking precedence.
func paren(e Expr) string {
	if b, ok := e.(Bin); ok {
		return "(" + b.String() + ")"
	}
	return e.String()
}
