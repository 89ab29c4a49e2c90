// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sfta-go/sfta/automaton"
	"github.com/sfta-go/sfta/inclusion"
)

// errNotIncluded is returned by the incl verb's RunE when the check comes
// back false, so main's die maps it to exit 1 without this package ever
// calling os.Exit outside of main itself.
var errNotIncluded = errors.New("inclusion does not hold")

func newInclCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "incl <file1> <file2>",
		Short: "check L(file1) <= L(file2), exit 0 if included, 1 otherwise",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sink := newSink()
			u := automaton.NewUniverse(alphabetWidth)
			as, _, err := parseFile(args[0], u, sink)
			if err != nil {
				return err
			}
			ab, _, err := parseFile(args[1], u, sink)
			if err != nil {
				return err
			}

			chk, err := inclusion.NewChecker(as, ab, inclusion.IdentityPreorder{}, inclusion.IdentityPreorder{})
			if err != nil {
				return err
			}
			ok, err := chk.Check()
			if err != nil {
				return err
			}
			if ok {
				fmt.Println("true")
				return nil
			}
			fmt.Println("false")
			return errNotIncluded
		},
	}
}
