// Copyright (c) 2026 the robdd authors
//
// MIT License

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newEvalCommand(opts *rootOptions) *cobra.Command {
	var set []string

	cmd := &cobra.Command{
		Use:   "eval <formula>",
		Short: "Build a diagram and evaluate it under an assignment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			assignment, err := parseAssignment(set)
			if err != nil {
				return err
			}
			b, n, err := opts.build(args[0])
			if err != nil {
				return err
			}
			v, err := b.Eval(n, assignment)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&set, "set", nil, "variable values (e.g. --set a=1,b=0,c=true)")

	return cmd
}

func parseAssignment(set []string) (map[string]bool, error) {
	assignment := make(map[string]bool, len(set))
	for _, kv := range set {
		name, value, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, fmt.Errorf("malformed assignment %q, expected name=value", kv)
		}
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("malformed assignment %q: %v", kv, err)
		}
		assignment[name] = v
	}
	return assignment, nil
}
