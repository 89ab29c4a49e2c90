// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package inclusion

import "sort"

// Preorder exposes, for a state q, the sorted set of states that simulate
// it. Computing a simulation preorder is explicitly out of
// scope: this package only consumes one.
type Preorder interface {
	Simulators(q int) []int
}

// IdentityPreorder is the trivial preorder where every state only simulates
// itself; it is what the round-trip law `inclusion(A, A, sim_id, sim_id) ==
// true` is checked against.
type IdentityPreorder struct{}

// Simulators returns {q}.
func (IdentityPreorder) Simulators(q int) []int { return []int{q} }

// TablePreorder is built from an explicit list of (simulated, simulator)
// pairs; every state simulates itself by reflexivity. It is a trivial
// adapter for testability, not a simulation-computing algorithm; computing
// a simulation preorder from an automaton is left to a future, separate
// component.
type TablePreorder struct {
	sims map[int][]int
}

// NewTablePreorder builds a TablePreorder over size states, reflexive by
// default, augmented with pairs[i] = [simulated, simulator] meaning
// "simulated is simulated by simulator".
func NewTablePreorder(size int, pairs [][2]int) *TablePreorder {
	t := &TablePreorder{sims: make(map[int][]int, size)}
	for q := 0; q < size; q++ {
		t.sims[q] = []int{q}
	}
	for _, p := range pairs {
		simulated, simulator := p[0], p[1]
		t.sims[simulated] = insertSorted(t.sims[simulated], simulator)
	}
	return t
}

// Simulators returns the sorted set of states simulating q.
func (t *TablePreorder) Simulators(q int) []int { return t.sims[q] }

func insertSorted(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	if i < len(s) && s[i] == v {
		return s
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
