// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package automaton

import "testing"

func TestAddTransitionAndRead(t *testing.T) {
	u := NewUniverse(2)
	a := NewTopDown(u)
	q := a.AddState("q")

	symA, err := u.Alphabet.Symbol("a", 0)
	if err != nil {
		t.Fatalf("Symbol: %v", err)
	}
	symB, err := u.Alphabet.Symbol("b", 1)
	if err != nil {
		t.Fatalf("Symbol: %v", err)
	}
	if err := a.AddTransition(symA, nil, []int{q}); err != nil {
		t.Fatalf("add a -> q: %v", err)
	}
	if err := a.AddTransition(symB, []int{q}, []int{q}); err != nil {
		t.Fatalf("add b(q) -> q: %v", err)
	}

	seen := map[string][]RHS{}
	a.Transitions(q, func(sym *Symbol, r RHS) {
		seen[sym.Name] = append(seen[sym.Name], r)
	})
	if len(seen["a"]) != 1 || seen["a"][0].Arity() != 0 {
		t.Fatalf("expected one nullary rhs for a, got %v", seen["a"])
	}
	if len(seen["b"]) != 1 || seen["b"][0].Arity() != 1 {
		t.Fatalf("expected one unary rhs for b, got %v", seen["b"])
	}
	if got := seen["b"][0].States()[0]; got != q {
		t.Fatalf("expected b(q) -> q to carry child %d, got %d", q, got)
	}
}

func TestAddTransitionArityMismatch(t *testing.T) {
	u := NewUniverse(2)
	a := NewTopDown(u)
	q := a.AddState("q")
	sym, _ := u.Alphabet.Symbol("f", 2)
	if err := a.AddTransition(sym, []int{q}, []int{q}); err == nil {
		t.Fatalf("expected an arity-mismatch misuse error")
	}
}

func TestUnionDisjointStates(t *testing.T) {
	u := NewUniverse(2)
	a1 := NewTopDown(u)
	q := a1.AddState("q")
	symA, _ := u.Alphabet.Symbol("a", 0)
	symB, _ := u.Alphabet.Symbol("b", 1)
	mustOK(t, a1.AddTransition(symA, nil, []int{q}))
	mustOK(t, a1.AddTransition(symB, []int{q}, []int{q}))
	mustOK(t, a1.SetInitial(q))

	a2 := NewTopDown(u)
	r := a2.AddState("r")
	symC, _ := u.Alphabet.Symbol("c", 0)
	mustOK(t, a2.AddTransition(symC, nil, []int{r}))
	mustOK(t, a2.SetInitial(r))

	out, err := Union(a1, a2)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if len(out.States()) != 2 {
		t.Fatalf("expected 2 states, got %d", len(out.States()))
	}
	if len(out.Initials()) != 2 {
		t.Fatalf("expected 2 initial states, got %d", len(out.Initials()))
	}
	total := 0
	for _, s := range out.States() {
		cnt := 0
		out.Transitions(s, func(*Symbol, RHS) { cnt++ })
		total += cnt
	}
	if total != 3 {
		t.Fatalf("expected 3 transitions across the union, got %d", total)
	}
}

func mustOK(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
