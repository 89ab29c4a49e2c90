// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/sfta-go/sfta/automaton"
	"github.com/sfta-go/sfta/timbuk"
)

func newIntersectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intersect <file1> <file2>",
		Short: "print the Timbuk intersection of two automata",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := newSink()
			u := automaton.NewUniverse(alphabetWidth)
			a1, _, err := parseFile(args[0], u, sink)
			if err != nil {
				return err
			}
			a2, _, err := parseFile(args[1], u, sink)
			if err != nil {
				return err
			}

			product, err := automaton.Intersection(a1, a2)
			if err != nil {
				return err
			}
			return timbuk.Write(os.Stdout, product, "Intersection")
		},
	}
}
