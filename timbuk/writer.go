// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package timbuk

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/sfta-go/sfta/automaton"
)

// Write prints a on w in Timbuk format under the given name: Ops, Automaton,
// States, Final States, Transitions, in the layout Parse reads. State labels
// are written verbatim, so the output parses back only when every label is
// a Timbuk identifier; Intersection's "(p,q)" product labels are not.
func Write(w io.Writer, a *automaton.Automaton, name string) error {
	bw := bufio.NewWriter(w)
	if err := write(bw, a, name); err != nil {
		return err
	}
	return bw.Flush()
}

// FWrite writes a to filename ("-" meaning standard output), matching the
// teacher's FPrintAut/FPrintAllAut convention in stdio.go.
func FWrite(filename string, a *automaton.Automaton, name string) error {
	if filename == "-" {
		return Write(os.Stdout, a, name)
	}
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer out.Close()
	return Write(out, a, name)
}

func write(w *bufio.Writer, a *automaton.Automaton, name string) error {
	u := a.Universe()

	fmt.Fprint(w, "Ops")
	for _, sym := range u.Alphabet.Symbols() {
		fmt.Fprintf(w, " %s:%d", sym.Name, sym.Arity)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Automaton %s\n\n", name)

	states := a.States()
	fmt.Fprint(w, "States")
	for _, q := range states {
		fmt.Fprintf(w, " %s", a.StateLabel(q))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	initials := a.Initials()
	sort.Ints(initials)
	fmt.Fprint(w, "Final States")
	for _, q := range initials {
		fmt.Fprintf(w, " %s", a.StateLabel(q))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Transitions")
	for _, q := range states {
		rules := collectRules(a, q)
		for _, rule := range rules {
			fmt.Fprintln(w, rule)
		}
	}
	return nil
}

func collectRules(a *automaton.Automaton, q int) []string {
	var rules []string
	a.Transitions(q, func(sym *automaton.Symbol, rhs automaton.RHS) {
		var b []byte
		b = append(b, sym.Name...)
		children := rhs.States()
		if sym.Arity > 0 {
			b = append(b, '(')
			for i, c := range children {
				if i > 0 {
					b = append(b, ',')
				}
				b = append(b, a.StateLabel(c)...)
			}
			b = append(b, ')')
		}
		b = append(b, " -> "...)
		b = append(b, a.StateLabel(q)...)
		rules = append(rules, string(b))
	})
	sort.Strings(rules)
	return rules
}
