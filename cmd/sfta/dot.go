// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfta-go/sfta/automaton"
	"github.com/sfta-go/sfta/mtbdd"
)

func newDotCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "dot <file>",
		Short: "write a Graphviz DOT rendering of an automaton's transition MTBDDs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := newSink()
			u := automaton.NewUniverse(alphabetWidth)
			a, _, err := parseFile(args[0], u, sink)
			if err != nil {
				return err
			}

			states := a.States()
			roots := make([]*mtbdd.Ref[automaton.RHSSet], len(states))
			labels := make(map[int]string, len(states))
			for i, q := range states {
				root := a.Root(q)
				roots[i] = root
				labels[root.ID()] = a.StateLabel(q)
			}

			return u.Engine.FWriteDot(out, roots, mtbdd.DotOptions{
				RootLabels: labels,
				LeafString: func(v interface{}) string { return fmt.Sprint(u.Members(v.(automaton.RHSSet)).ToSlice()) },
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "-", "output file, \"-\" for standard output")
	return cmd
}
