// Copyright (c) 2026 the robdd authors
//
// MIT License

package robdd

import "github.com/go-logr/logr"

// configs stores the values of the different parameters of a BDD.
type configs struct {
	nodesize    int // initial number of slots in the node arena
	maxnodesize int // maximum total number of nodes (0 if no limit)
	log         logr.Logger
}

// Option is a configuration function that can be passed to New.
type Option func(*configs)

// Nodesize sets a preferred initial capacity for the node arena. The arena
// grows during computation; the default capacity is just large enough for
// the two constants and the variables of the ordering.
func Nodesize(size int) Option {
	return func(c *configs) {
		if size > c.nodesize {
			c.nodesize = size
		}
	}
}

// Maxnodesize sets a limit on the total number of nodes in the BDD. An
// operation trying to allocate a node above this limit fails with an error
// wrapping ErrNodeLimit. The default value (0) means there is no limit.
func Maxnodesize(size int) Option {
	return func(c *configs) {
		c.maxnodesize = size
	}
}

// WithLogger sets the logger used for debug output. The default discards
// everything. Table growth is reported at verbosity 1, per-operation
// statistics at verbosity 2.
func WithLogger(log logr.Logger) Option {
	return func(c *configs) {
		c.log = log
	}
}
