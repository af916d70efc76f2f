// Copyright (c) 2026 the robdd authors
//
// MIT License

package robdd

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"
)

// Stats returns information about the store.
func (b *BDD) Stats() string {
	res := fmt.Sprintf("Varnum:     %d\n", len(b.vars))
	res += fmt.Sprintf("Allocated:  %d\n", len(b.nodes))
	res += fmt.Sprintf("Produced:   %d\n", len(b.nodes)-2)
	res += fmt.Sprintf("Unique:     %d", len(b.unique))
	return res
}

// reachable returns the sorted list of nodes reachable from n, constants
// included.
func (b *BDD) reachable(n Node) []int {
	nodes := []int{}
	b.Allnodes(func(m Node) error {
		nodes = append(nodes, int(m))
		return nil
	}, n)
	sort.Ints(nodes)
	return nodes
}

// Print writes a textual description of the diagram rooted at n: the
// variable ordering, the root handle, then one line per reachable decision
// node in the form "id [var] ? low : high". A constant diagram prints as
// just "True" or "False".
func (b *BDD) Print(w io.Writer, n Node) error {
	if err := b.checknode(n); err != nil {
		return err
	}
	if n == bddzero {
		_, err := fmt.Fprintln(w, "False")
		return err
	}
	if n == bddone {
		_, err := fmt.Fprintln(w, "True")
		return err
	}
	fmt.Fprintf(w, "order:")
	for _, v := range b.vars {
		fmt.Fprintf(w, " %s", v)
	}
	fmt.Fprintf(w, "\nroot: %d\n", n)
	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	for _, k := range b.reachable(n) {
		if k > 1 {
			fmt.Fprintf(tw, "%d\t[%s] ? %d : %d\n", k, b.vars[b.level(Node(k))], b.low(Node(k)), b.high(Node(k)))
		}
	}
	return tw.Flush()
}

// Dot writes a graph description of the diagram rooted at n in Graphviz DOT
// format. Low branches are drawn as dashed red arcs labeled 0, high
// branches as solid blue arcs labeled 1.
func (b *BDD) Dot(w io.Writer, n Node) error {
	if err := b.checknode(n); err != nil {
		return err
	}
	fmt.Fprintln(w, "digraph BDD {")
	fmt.Fprintln(w, "rankdir=TB;")
	fmt.Fprintln(w, "node [shape=circle];")
	fmt.Fprintln(w, `0 [label="0", shape=box, style=filled, fillcolor="#ffcccc"];`)
	fmt.Fprintln(w, `1 [label="1", shape=box, style=filled, fillcolor="#ccffcc"];`)
	for _, k := range b.reachable(n) {
		if k > 1 {
			fmt.Fprintf(w, "%d [label=%q];\n", k, b.vars[b.level(Node(k))])
			fmt.Fprintf(w, "%d -> %d [style=dashed, color=red, label=\"0\"];\n", k, b.low(Node(k)))
			fmt.Fprintf(w, "%d -> %d [style=solid, color=blue, label=\"1\"];\n", k, b.high(Node(k)))
		}
	}
	_, err := fmt.Fprintln(w, "}")
	return err
}
