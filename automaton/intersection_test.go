// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package automaton

import "testing"

// TestIntersectionProduct builds two single-state automata accepting the
// same nullary symbol and one binary symbol, and checks the product
// automaton keeps exactly the expected transitions: each new state is a
// pair, and tuple_pair_product pairs children position-wise. There is no
// upstream reference implementation to check this against, so this test
// stands in for one.
func TestIntersectionProduct(t *testing.T) {
	u := NewUniverse(2)

	a1 := NewTopDown(u)
	p := a1.AddState("p")
	symA, _ := u.Alphabet.Symbol("a", 0)
	symF, _ := u.Alphabet.Symbol("f", 2)
	mustOK(t, a1.AddTransition(symA, nil, []int{p}))
	mustOK(t, a1.AddTransition(symF, []int{p, p}, []int{p}))
	mustOK(t, a1.SetInitial(p))

	a2 := NewTopDown(u)
	r := a2.AddState("r")
	mustOK(t, a2.AddTransition(symA, nil, []int{r}))
	mustOK(t, a2.AddTransition(symF, []int{r, r}, []int{r}))
	mustOK(t, a2.SetInitial(r))

	out, err := Intersection(a1, a2)
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}
	if len(out.States()) != 1 {
		t.Fatalf("expected exactly one product state (p,r), got %d", len(out.States()))
	}
	pr := out.States()[0]
	if !out.IsInitial(pr) {
		t.Fatalf("expected (p,r) to be initial")
	}
	var gotA, gotF bool
	out.Transitions(pr, func(sym *Symbol, rhs RHS) {
		switch sym.Name {
		case "a":
			gotA = true
			if rhs.Arity() != 0 {
				t.Fatalf("expected a -> (p,r) to be nullary")
			}
		case "f":
			gotF = true
			states := rhs.States()
			if len(states) != 2 || states[0] != pr || states[1] != pr {
				t.Fatalf("expected f((p,r),(p,r)) -> (p,r), got %v", states)
			}
		}
	})
	if !gotA || !gotF {
		t.Fatalf("expected both a and f transitions on the product state, got a=%v f=%v", gotA, gotF)
	}
}

// TestIntersectionArityMismatch exercises the misuse path: two automata
// define the same symbol name at different arities (a malformed setup a
// caller could still construct without the alphabet catching it, since a
// symbol lookup is keyed by (name, arity) pair, not name alone).
func TestIntersectionArityMismatch(t *testing.T) {
	u1 := NewUniverse(2)
	a1 := NewTopDown(u1)
	p := a1.AddState("p")
	sym1, _ := u1.Alphabet.Symbol("f", 1)
	mustOK(t, a1.AddTransition(sym1, []int{p}, []int{p}))

	a2 := NewTopDown(u1)
	r := a2.AddState("r")
	sym2, _ := u1.Alphabet.Symbol("f", 2)
	mustOK(t, a2.AddTransition(sym2, []int{r, r}, []int{r}))

	// Force a tuple_pair_product call on mismatched-arity leaves by writing
	// both symbols' codes onto a shared cube directly through SetOnCube, an
	// artificial but deterministic way to exercise the arity check without
	// relying on the alphabet ever producing colliding codes for distinct
	// symbols.
	leaf1 := u1.registry.Singleton(Tuple(p))
	leaf2 := u1.registry.Singleton(Tuple(r, r))
	root1 := u1.Engine.SetOnCube(a1.table.root(p), sym1.Cube(), leaf1, u1.registry.Union)
	root2 := u1.Engine.SetOnCube(a2.table.root(r), sym1.Cube(), leaf2, u1.registry.Union)
	a1.table.roots[p].Release()
	a1.table.roots[p] = root1
	a2.table.roots[r].Release()
	a2.table.roots[r] = root2

	if _, err := Intersection(a1, a2); err == nil {
		t.Fatalf("expected an arity-mismatch misuse error")
	}
}
