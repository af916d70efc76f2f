// Copyright (c) 2026 the robdd authors
//
// MIT License

package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fvsynth/robdd"
	"github.com/fvsynth/robdd/expr"
)

// rootOptions holds the flags shared by all commands.
type rootOptions struct {
	order []string // variable ordering, highest first
	out   string   // output file, stdout if empty
	limit int      // node ceiling, 0 if none
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "robdd",
		Short:         "Build and inspect Reduced Ordered Binary Decision Diagrams",
		Long: `robdd builds the canonical decision diagram of a Boolean formula over a
fixed variable ordering. Formulas use ~ & | ^ -> <-> with the usual
precedence, e.g. "(a & ~c) | (b ^ d)".`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	cmd.PersistentFlags().StringSliceVarP(&opts.order, "order", "o", nil, "variable ordering, highest first (e.g. -o a,b,c,d)")
	cmd.PersistentFlags().StringVar(&opts.out, "out", "", "write to file instead of stdout")
	cmd.PersistentFlags().IntVar(&opts.limit, "max-nodes", 0, "abort when the diagram exceeds this many nodes (0 = no limit)")
	cmd.MarkPersistentFlagRequired("order")

	cmd.AddCommand(newBuildCommand(opts))
	cmd.AddCommand(newDotCommand(opts))
	cmd.AddCommand(newEvalCommand(opts))

	return cmd
}

// build parses the formula and constructs its diagram over the ordering of
// the options.
func (o *rootOptions) build(formula string) (*robdd.BDD, robdd.Node, error) {
	e, err := expr.Parse(formula)
	if err != nil {
		return nil, 0, err
	}
	var options []robdd.Option
	if o.limit > 0 {
		options = append(options, robdd.Maxnodesize(o.limit))
	}
	b, err := robdd.New(o.order, options...)
	if err != nil {
		return nil, 0, err
	}
	n, err := b.Build(e)
	if err != nil {
		return nil, 0, err
	}
	return b, n, nil
}

// output returns the destination selected with --out.
func (o *rootOptions) output() (io.Writer, func() error, error) {
	if o.out == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(o.out)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
