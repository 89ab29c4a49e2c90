// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package automaton

import "github.com/sfta-go/sfta/mtbdd"

// opRHSUnion is the fixed ID of the leaf operator "(A, B) -> A ∪ B"; it is
// stable across every automaton built on a given Universe, so it can be a
// small package constant rather than allocated per call, unlike the
// union-construction remap operators in automaton.go.
const opRHSUnion = 1

// transitionTable holds the per-state root map R(q): each state's root is an
// MTBDD over the symbol variables whose leaves are sets of right-hand sides.
type transitionTable struct {
	engine   *mtbdd.Engine[RHSSet]
	registry *rhsRegistry
	roots    map[int]*mtbdd.Ref[RHSSet]
	unionOp  mtbdd.BinaryOp[RHSSet]
}

func newTransitionTable(engine *mtbdd.Engine[RHSSet], registry *rhsRegistry) *transitionTable {
	return &transitionTable{
		engine:   engine,
		registry: registry,
		roots:    make(map[int]*mtbdd.Ref[RHSSet]),
		unionOp:  mtbdd.BinaryOp[RHSSet]{ID: opRHSUnion, Apply: registry.Union},
	}
}

// root returns R(q), allocating the background root if q has no transitions
// yet.
func (t *transitionTable) root(q int) *mtbdd.Ref[RHSSet] {
	if r, ok := t.roots[q]; ok {
		return r
	}
	r := t.engine.Background()
	t.roots[q] = r
	return r
}

func (t *transitionTable) addState(q int) {
	if _, ok := t.roots[q]; !ok {
		t.roots[q] = t.engine.Background()
	}
}

// set writes tuple at every minterm of cube for state q, unioning with
// whatever was already there.
func (t *transitionTable) set(q int, cube mtbdd.Assignment, tuple RHS) {
	old := t.root(q)
	leaf := t.registry.Singleton(tuple)
	updated := t.engine.SetOnCube(old, cube, leaf, t.registry.Union)
	old.Release()
	t.roots[q] = updated
}

// union folds src into q's root using the shared union leaf operator. It
// merges roots that must end up denoting the same state; Automaton.Union
// builds a disjoint union and does not call it.
func (t *transitionTable) union(q int, src *mtbdd.Ref[RHSSet]) {
	old := t.root(q)
	merged := t.engine.ApplyBinary(old, src, t.unionOp)
	old.Release()
	t.roots[q] = merged
}

// transitions enumerates (cube, leaf) pairs with a non-empty leaf for q, in
// minterm enumeration order. The cube returned may be compacted (carrying
// Any at positions the MTBDD doesn't branch on)
// and so is not guaranteed to decode to a single Symbol; callers that need
// symbol-precise transitions should use bySymbol instead.
func (t *transitionTable) transitions(q int, visit func(mtbdd.Assignment, RHSSet)) {
	root, ok := t.roots[q]
	if !ok {
		return
	}
	t.engine.Minterms(root, func(a mtbdd.Assignment, v RHSSet) {
		cube := make(mtbdd.Assignment, len(a))
		copy(cube, a)
		visit(cube, v)
	})
}

// bySymbol evaluates R(q) at exactly sym's code, side-stepping any ambiguity
// from cube compaction merging several symbols' minterms together.
func (t *transitionTable) bySymbol(q int, sym *Symbol) RHSSet {
	root := t.root(q)
	return t.engine.Eval(root, sym.Cube())
}

func (t *transitionTable) release() {
	for _, r := range t.roots {
		r.Release()
	}
}
