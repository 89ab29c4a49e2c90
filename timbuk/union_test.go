// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package timbuk

import (
	"strings"
	"testing"

	"github.com/sfta-go/sfta/automaton"
	"github.com/sfta-go/sfta/inclusion"
)

// TestUnionSerializeReparse builds A1 and A2, unions them, checks the
// resulting shape (2 states, 3 transitions, 2 initials), then serializes
// and re-parses and checks the re-parsed automaton accepts the same
// language as the one that was written.
func TestUnionSerializeReparse(t *testing.T) {
	u := automaton.NewUniverse(3)
	symA := mustSymbol(t, u.Alphabet, "a", 0)
	symB := mustSymbol(t, u.Alphabet, "b", 1)
	symC := mustSymbol(t, u.Alphabet, "c", 0)

	a1 := automaton.NewTopDown(u)
	q := a1.AddState("q")
	mustOK(t, a1.AddTransition(symA, nil, []int{q}))
	mustOK(t, a1.AddTransition(symB, []int{q}, []int{q}))
	mustOK(t, a1.SetInitial(q))

	a2 := automaton.NewTopDown(u)
	r := a2.AddState("r")
	mustOK(t, a2.AddTransition(symC, nil, []int{r}))
	mustOK(t, a2.SetInitial(r))

	unioned, err := automaton.Union(a1, a2)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if got := len(unioned.States()); got != 2 {
		t.Fatalf("expected 2 states in the union, got %d", got)
	}
	if got := len(unioned.Initials()); got != 2 {
		t.Fatalf("expected 2 initial states in the union, got %d", got)
	}
	transitionCount := 0
	for _, s := range unioned.States() {
		unioned.Transitions(s, func(*automaton.Symbol, automaton.RHS) { transitionCount++ })
	}
	if transitionCount != 3 {
		t.Fatalf("expected 3 transitions in the union, got %d", transitionCount)
	}

	var out strings.Builder
	if err := Write(&out, unioned, "Union"); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// Re-parse on the same Universe (Ops re-declaration is idempotent) so the
	// result is directly comparable to the original unioned automaton, and
	// check language equivalence both ways -- the spec's round-trip law.
	reparsed, _, err := Parse(strings.NewReader(out.String()), u, automaton.TopDown)
	if err != nil {
		t.Fatalf("re-Parse: %v\n%s", err, out.String())
	}

	if !checkIncluded(t, unioned, reparsed) {
		t.Fatalf("expected L(unioned) <= L(reparsed)")
	}
	if !checkIncluded(t, reparsed, unioned) {
		t.Fatalf("expected L(reparsed) <= L(unioned)")
	}
}

func mustSymbol(t *testing.T, a *automaton.Alphabet, name string, arity int) *automaton.Symbol {
	t.Helper()
	s, err := a.Symbol(name, arity)
	if err != nil {
		t.Fatalf("Symbol(%s,%d): %v", name, arity, err)
	}
	return s
}

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func checkIncluded(t *testing.T, lhs, rhs *automaton.Automaton) bool {
	t.Helper()
	chk, err := inclusion.NewChecker(lhs, rhs, inclusion.IdentityPreorder{}, inclusion.IdentityPreorder{})
	if err != nil {
		t.Fatalf("NewChecker: %v", err)
	}
	ok, err := chk.Check()
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	return ok
}
