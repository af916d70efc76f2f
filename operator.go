// Copyright (c) 2026 the robdd authors
//
// MIT License

package robdd

// Operator describes the binary operations available in a call to Apply.
type Operator int

const (
	OPand   Operator = iota // Boolean conjunction
	OPxor                   // Exclusive or
	OPor                    // Disjunction
	OPnand                  // Negation of and
	OPnor                   // Negation of or
	OPimp                   // Implication
	OPbiimp                 // Equivalence
	OPdiff                  // Difference
)

var opnames = [8]string{
	OPand:   "and",
	OPxor:   "xor",
	OPor:    "or",
	OPnand:  "nand",
	OPnor:   "nor",
	OPimp:   "imp",
	OPbiimp: "biimp",
	OPdiff:  "diff",
}

func (op Operator) String() string {
	if op < OPand || op > OPdiff {
		return "unknown"
	}
	return opnames[op]
}

// opres gives the result of each operator when both operands are constants.
var opres = [8][2][2]Node{
	//                            00    01                     10    11
	OPand:   {0: [2]Node{0: 0, 1: 0}, 1: [2]Node{0: 0, 1: 1}}, // 0001
	OPxor:   {0: [2]Node{0: 0, 1: 1}, 1: [2]Node{0: 1, 1: 0}}, // 0110
	OPor:    {0: [2]Node{0: 0, 1: 1}, 1: [2]Node{0: 1, 1: 1}}, // 0111
	OPnand:  {0: [2]Node{0: 1, 1: 1}, 1: [2]Node{0: 1, 1: 0}}, // 1110
	OPnor:   {0: [2]Node{0: 1, 1: 0}, 1: [2]Node{0: 0, 1: 0}}, // 1000
	OPimp:   {0: [2]Node{0: 1, 1: 1}, 1: [2]Node{0: 0, 1: 1}}, // 1101
	OPbiimp: {0: [2]Node{0: 1, 1: 0}, 1: [2]Node{0: 0, 1: 1}}, // 1001
	OPdiff:  {0: [2]Node{0: 0, 1: 0}, 1: [2]Node{0: 1, 1: 0}}, // 0010
}
