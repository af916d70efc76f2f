// Copyright (c) 2026 the robdd authors
//
// MIT License

package robdd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fvsynth/robdd/expr"
)

func TestBuildUndefinedVariable(t *testing.T) {
	b, err := New([]string{"a", "b"})
	require.NoError(t, err)
	e, err := expr.Parse("a & z")
	require.NoError(t, err)
	_, err = b.Build(e)
	require.ErrorIs(t, err, ErrUndefinedVariable)
	assert.Contains(t, err.Error(), `"z"`)
}

// TestFormulaXor checks (a & ~c) | (b ^ d) over [a,b,c,d]: it must hold
// exactly when a=1,c=0 or b != d.
func TestFormulaXor(t *testing.T) {
	order := []string{"a", "b", "c", "d"}
	b, err := New(order)
	require.NoError(t, err)
	n := mustBuild(t, b, "(a & ~c) | (b ^ d)")

	for _, asn := range allAssignments(order) {
		expected := (asn["a"] && !asn["c"]) || (asn["b"] != asn["d"])
		actual, err := b.Eval(n, asn)
		require.NoError(t, err)
		assert.Equal(t, expected, actual, "wrong value under %v", asn)
	}
}

// TestAtLeast3Of5 builds the threshold function "at least 3 of 5 variables
// true" as a disjunction of minterms.
func TestAtLeast3Of5(t *testing.T) {
	const formula = "(x1 & x2 & x3 & ~x4 & ~x5) |" +
		"(x1 & x2 & ~x3 & x4 & ~x5) |" +
		"(x1 & x2 & ~x3 & ~x4 & x5) |" +
		"(x1 & ~x2 & x3 & x4 & ~x5) |" +
		"(x1 & ~x2 & x3 & ~x4 & x5) |" +
		"(x1 & ~x2 & ~x3 & x4 & x5) |" +
		"(~x1 & x2 & x3 & x4 & ~x5) |" +
		"(~x1 & x2 & x3 & ~x4 & x5) |" +
		"(~x1 & x2 & ~x3 & x4 & x5) |" +
		"(~x1 & ~x2 & x3 & x4 & x5) |" +
		"(x1 & x2 & x3 & x4 & ~x5) |" +
		"(x1 & x2 & x3 & ~x4 & x5) |" +
		"(x1 & x2 & ~x3 & x4 & x5) |" +
		"(x1 & ~x2 & x3 & x4 & x5) |" +
		"(~x1 & x2 & x3 & x4 & x5) |" +
		"(x1 & x2 & x3 & x4 & x5)"

	order := []string{"x1", "x2", "x3", "x4", "x5"}
	b, err := New(order)
	require.NoError(t, err)
	n := mustBuild(t, b, formula)

	v, err := b.Eval(n, map[string]bool{"x1": true, "x2": true, "x3": true, "x4": false, "x5": false})
	require.NoError(t, err)
	assert.True(t, v, "3 of 5 true must satisfy the threshold")

	v, err = b.Eval(n, map[string]bool{"x1": true, "x2": true, "x3": false, "x4": false, "x5": false})
	require.NoError(t, err)
	assert.False(t, v, "2 of 5 true must not satisfy the threshold")

	for _, asn := range allAssignments(order) {
		count := 0
		for _, v := range asn {
			if v {
				count++
			}
		}
		actual, err := b.Eval(n, asn)
		require.NoError(t, err)
		assert.Equal(t, count >= 3, actual, "wrong value under %v", asn)
	}
}

// TestTransitivityTautology checks that ((a->b) & (b->c)) -> (a->c)
// reduces to the single 1-terminal, whatever the variable ordering.
func TestTransitivityTautology(t *testing.T) {
	for _, order := range [][]string{
		{"a", "b", "c"},
		{"c", "b", "a"},
		{"b", "a", "c"},
	} {
		b, err := New(order)
		require.NoError(t, err)
		n := mustBuild(t, b, "((a -> b) & (b -> c)) -> (a -> c)")
		assert.Equal(t, b.True(), n, "not a tautology under ordering %v", order)
	}
}

func TestContradiction(t *testing.T) {
	b, err := New([]string{"a"})
	require.NoError(t, err)
	n := mustBuild(t, b, "a & ~a")
	assert.Equal(t, b.False(), n)
}

// TestComparison checks the 3-bit unsigned comparison x > y, with x1/y1
// the most significant bits.
func TestComparison(t *testing.T) {
	const formula = "(x1 & ~y1) |" +
		"((~(x1 ^ y1)) & x2 & ~y2) |" +
		"((~(x1 ^ y1)) & (~(x2 ^ y2)) & x3 & ~y3)"

	order := []string{"x1", "y1", "x2", "y2", "x3", "y3"}
	b, err := New(order)
	require.NoError(t, err)
	n := mustBuild(t, b, formula)

	bit := func(v bool) int {
		if v {
			return 1
		}
		return 0
	}
	for _, asn := range allAssignments(order) {
		x := bit(asn["x1"])<<2 | bit(asn["x2"])<<1 | bit(asn["x3"])
		y := bit(asn["y1"])<<2 | bit(asn["y2"])<<1 | bit(asn["y3"])
		actual, err := b.Eval(n, asn)
		require.NoError(t, err)
		assert.Equal(t, x > y, actual, "wrong comparison for x=%d y=%d", x, y)
	}
}

func TestBuildConstants(t *testing.T) {
	b, err := New([]string{"a"})
	require.NoError(t, err)
	assert.Equal(t, b.True(), mustBuild(t, b, "true"))
	assert.Equal(t, b.False(), mustBuild(t, b, "false"))
	assert.Equal(t, b.False(), mustBuild(t, b, "a & false"))
	assert.Equal(t, b.True(), mustBuild(t, b, "a | true"))
}
