// Copyright (c) 2026 the robdd authors
//
// MIT License

package robdd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fvsynth/robdd/expr"
)

// opfuncs are the Boolean counterparts of the apply operators, used to
// check apply results against plain evaluation.
var opfuncs = map[Operator]func(x, y bool) bool{
	OPand:   func(x, y bool) bool { return x && y },
	OPxor:   func(x, y bool) bool { return x != y },
	OPor:    func(x, y bool) bool { return x || y },
	OPnand:  func(x, y bool) bool { return !(x && y) },
	OPnor:   func(x, y bool) bool { return !(x || y) },
	OPimp:   func(x, y bool) bool { return !x || y },
	OPbiimp: func(x, y bool) bool { return x == y },
	OPdiff:  func(x, y bool) bool { return x && !y },
}

func mustBuild(t *testing.T, b *BDD, formula string) Node {
	t.Helper()
	e, err := expr.Parse(formula)
	require.NoError(t, err, "parse %q", formula)
	n, err := b.Build(e)
	require.NoError(t, err, "build %q", formula)
	return n
}

// allAssignments enumerates the 2^n assignments of the given variables.
func allAssignments(vars []string) []map[string]bool {
	res := make([]map[string]bool, 0, 1<<len(vars))
	for bits := 0; bits < 1<<len(vars); bits++ {
		asn := make(map[string]bool, len(vars))
		for k, v := range vars {
			asn[v] = bits&(1<<k) != 0
		}
		res = append(res, asn)
	}
	return res
}

// evalExpr evaluates an expression tree directly, without diagrams.
func evalExpr(t *testing.T, e expr.Expr, asn map[string]bool) bool {
	t.Helper()
	switch e := e.(type) {
	case expr.Const:
		return bool(e)
	case expr.Var:
		v, ok := asn[string(e)]
		require.True(t, ok, "no value for %q", string(e))
		return v
	case expr.Not:
		return !evalExpr(t, e.X, asn)
	case expr.Bin:
		x := evalExpr(t, e.X, asn)
		y := evalExpr(t, e.Y, asn)
		switch e.Op {
		case expr.And:
			return x && y
		case expr.Or:
			return x || y
		case expr.Xor:
			return x != y
		case expr.Imp:
			return !x || y
		case expr.Iff:
			return x == y
		}
	}
	t.Fatalf("unknown expression %v", e)
	return false
}

// TestApplyCorrectness checks, exhaustively over all assignments, that the
// diagram computed by Apply evaluates to the operator applied to the
// evaluations of its operands.
func TestApplyCorrectness(t *testing.T) {
	order := []string{"v1", "v2", "v3", "v4", "v5"}
	b, err := New(order)
	require.NoError(t, err)

	formulas := []string{
		"v1",
		"v2 & v3",
		"v1 | ~v4",
		"v2 ^ v5",
		"v1 -> (v3 & v4)",
		"(v1 <-> v2) | v5",
		"~(v2 | v4) & v3",
		"true",
		"false",
	}
	operands := make([]Node, len(formulas))
	for k, f := range formulas {
		operands[k] = mustBuild(t, b, f)
	}

	assignments := allAssignments(order)
	for i, left := range operands {
		for j, right := range operands {
			for op := OPand; op <= OPdiff; op++ {
				res, err := b.Apply(left, right, op)
				require.NoError(t, err)
				for _, asn := range assignments {
					x, err := b.Eval(left, asn)
					require.NoError(t, err)
					y, err := b.Eval(right, asn)
					require.NoError(t, err)
					v, err := b.Eval(res, asn)
					require.NoError(t, err)
					if v != opfuncs[op](x, y) {
						t.Fatalf("apply %s(%q, %q) wrong under %v: expected %t, actual %t",
							op, formulas[i], formulas[j], asn, opfuncs[op](x, y), v)
					}
				}
			}
		}
	}
}

func TestNotIsXorWithTrue(t *testing.T) {
	b, err := New([]string{"a", "b", "c"})
	require.NoError(t, err)
	for _, f := range []string{"a", "a & b", "(a | b) ^ c", "a -> c", "true"} {
		n := mustBuild(t, b, f)
		neg, err := b.Not(n)
		require.NoError(t, err)
		xored, err := b.Apply(n, b.True(), OPxor)
		require.NoError(t, err)
		assert.Equal(t, neg, xored, "Not(%q) differs from %q xor true", f, f)
	}
}

func TestNotVariable(t *testing.T) {
	b, err := New([]string{"a", "b"})
	require.NoError(t, err)
	a, err := b.Var("a")
	require.NoError(t, err)
	na, err := b.NVar("a")
	require.NoError(t, err)
	got, err := b.Not(a)
	require.NoError(t, err)
	assert.Equal(t, na, got)

	back, err := b.Not(got)
	require.NoError(t, err)
	assert.Equal(t, a, back, "double negation must give back the same handle")
}

func TestIte(t *testing.T) {
	b, err := New([]string{"a", "b", "c", "d"})
	require.NoError(t, err)
	f := mustBuild(t, b, "a & c")
	g := mustBuild(t, b, "b | d")
	h := mustBuild(t, b, "a ^ d")

	ite, err := b.Ite(f, g, h)
	require.NoError(t, err)

	nf, err := b.Not(f)
	require.NoError(t, err)
	fg, err := b.And(f, g)
	require.NoError(t, err)
	nfh, err := b.And(nf, h)
	require.NoError(t, err)
	direct, err := b.Or(fg, nfh)
	require.NoError(t, err)

	assert.Equal(t, direct, ite, "ite(f,g,h) must equal (f & g) | (~f & h)")
}

func TestVariadicAndOr(t *testing.T) {
	b, err := New([]string{"a", "b", "c"})
	require.NoError(t, err)
	a, _ := b.Var("a")
	c, _ := b.Var("c")

	empty, err := b.And()
	require.NoError(t, err)
	assert.Equal(t, b.True(), empty)
	empty, err = b.Or()
	require.NoError(t, err)
	assert.Equal(t, b.False(), empty)

	single, err := b.And(a)
	require.NoError(t, err)
	assert.Equal(t, a, single)

	both, err := b.And(a, c)
	require.NoError(t, err)
	assert.Equal(t, mustBuild(t, b, "a & c"), both)

	either, err := b.Or(a, c)
	require.NoError(t, err)
	assert.Equal(t, mustBuild(t, b, "a | c"), either)
}

func TestApplyErrors(t *testing.T) {
	b, err := New([]string{"a"})
	require.NoError(t, err)
	a, _ := b.Var("a")

	_, err = b.Apply(a, a, Operator(42))
	assert.ErrorIs(t, err, ErrWrongOperator)

	_, err = b.Apply(a, Node(999), OPand)
	assert.ErrorIs(t, err, ErrInvalidNode)

	_, err = b.Not(Node(-1))
	assert.ErrorIs(t, err, ErrInvalidNode)

	_, err = b.Ite(a, Node(1000), a)
	assert.ErrorIs(t, err, ErrInvalidNode)
}

// TestApplyMemoScope checks that results do not depend on earlier calls:
// the same combination run on a fresh store gives a diagram with the same
// shape.
func TestApplyMemoScope(t *testing.T) {
	shape := func(warmup bool) string {
		b, err := New([]string{"a", "b", "c"})
		require.NoError(t, err)
		if warmup {
			mustBuild(t, b, "(a | b) & c")
			mustBuild(t, b, "a ^ b ^ c")
		}
		n := mustBuild(t, b, "(a -> b) & (b -> c)")
		var res string
		b.Allnodes(func(m Node) error {
			if !b.IsConst(m) {
				low, _ := b.Low(m)
				high, _ := b.High(m)
				res += fmt.Sprintf("%s(%s,%s);", b.Label(m), b.Label(low), b.Label(high))
			}
			return nil
		}, n)
		return res
	}
	assert.Equal(t, shape(false), shape(true))
}
