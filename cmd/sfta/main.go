// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Command sfta is a thin CLI front end: it reads Timbuk files, drives the
// automaton/inclusion packages, and prints Timbuk or a verdict back out.
package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose       bool
	bottomUp      bool
	alphabetWidth int
)

func main() {
	root := &cobra.Command{
		Use:           "sfta",
		Short:         "symbolic finite tree automata over a shared MTBDD engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().BoolVar(&bottomUp, "bottom-up", false, "read Timbuk transitions as a bottom-up automaton (default top-down)")
	root.PersistentFlags().IntVar(&alphabetWidth, "width", 16, "bits used to encode the ranked alphabet")

	root.AddCommand(newUnionCmd(), newIntersectCmd(), newInclCmd(), newDotCmd())

	if err := root.Execute(); err != nil {
		die(err)
	}
}
