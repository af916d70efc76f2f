// Copyright (c) 2026 the robdd authors
//
// MIT License

// Command robdd builds the Reduced Ordered Binary Decision Diagram of a
// Boolean formula over a given variable ordering, and prints it as a node
// listing or a Graphviz DOT graph, or evaluates it under an assignment.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
