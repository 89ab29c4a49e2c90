// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package inclusion

import (
	"testing"

	"github.com/sfta-go/sfta/automaton"
)

// inclusion(A,B) ∧ inclusion(B,C) ⇒ inclusion(A,C), tested on a generated
// triple of single-state automata each accepting a strict superset of the
// nullary symbols the previous one does.
func TestInclusionTransitivity(t *testing.T) {
	u := automaton.NewUniverse(3)
	symA := mustSymbol(t, u.Alphabet, "a", 0)
	symB := mustSymbol(t, u.Alphabet, "b", 0)
	symC := mustSymbol(t, u.Alphabet, "c", 0)

	build := func(syms ...*automaton.Symbol) *automaton.Automaton {
		a := automaton.NewTopDown(u)
		q := a.AddState("q")
		for _, sym := range syms {
			mustTrans(t, a, sym, nil, []int{q})
		}
		mustOK(t, a.SetInitial(q))
		return a
	}

	a := build(symA)
	b := build(symA, symB)
	c := build(symA, symB, symC)

	check := func(lhs, rhs *automaton.Automaton) bool {
		chk, err := NewChecker(lhs, rhs, IdentityPreorder{}, IdentityPreorder{})
		if err != nil {
			t.Fatalf("NewChecker: %v", err)
		}
		ok, err := chk.Check()
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		return ok
	}

	if !check(a, b) {
		t.Fatalf("expected A included in B")
	}
	if !check(b, c) {
		t.Fatalf("expected B included in C")
	}
	if !check(a, c) {
		t.Fatalf("expected A included in C (transitivity)")
	}
	if check(c, a) {
		t.Fatalf("expected C not included in A")
	}
}
