// Copyright (c) 2026 the robdd authors
//
// MIT License

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBuildCommand(opts *rootOptions) *cobra.Command {
	var stats bool

	cmd := &cobra.Command{
		Use:   "build <formula>",
		Short: "Build a diagram and print its node listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, n, err := opts.build(args[0])
			if err != nil {
				return err
			}
			w, close, err := opts.output()
			if err != nil {
				return err
			}
			if err := b.Print(w, n); err != nil {
				close()
				return err
			}
			switch n {
			case b.True():
				fmt.Fprintln(cmd.ErrOrStderr(), "result: tautology")
			case b.False():
				fmt.Fprintln(cmd.ErrOrStderr(), "result: contradiction")
			}
			if stats {
				fmt.Fprintln(cmd.ErrOrStderr(), b.Stats())
			}
			return close()
		},
	}

	cmd.Flags().BoolVar(&stats, "stats", false, "print store statistics to stderr")

	return cmd
}

func newDotCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dot <formula>",
		Short: "Build a diagram and print it in Graphviz DOT format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, n, err := opts.build(args[0])
			if err != nil {
				return err
			}
			w, close, err := opts.output()
			if err != nil {
				return err
			}
			if err := b.Dot(w, n); err != nil {
				close()
				return err
			}
			return close()
		},
	}
}
