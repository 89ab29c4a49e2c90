// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package inclusion

import (
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/sfta-go/sfta/automaton"
	"github.com/sfta-go/sfta/mtbdd"
)

// Checker decides L(As) ⊆ L(Ab) for two top-down automata sharing a
// Universe, given a simulation preorder over each. Computing
// the preorders themselves is out of scope; Checker only consumes them.
//
// Only simB participates in the ⊑ subsumption test used for cache/workset
// lookups. simS is accepted as an input but this implementation does not
// otherwise consult it -- see DESIGN.md for the reasoning.
type Checker struct {
	as, ab      *automaton.Automaton
	simS, simB  Preorder
	included    *cache
	notIncluded *cache
	ws          *workset
	unionOp     mtbdd.BinaryOp[automaton.RHSSet]
	visited     int
}

// NewChecker builds a Checker for as ⊆ ab. Both automata must be top-down
// and share a Universe.
func NewChecker(as, ab *automaton.Automaton, simS, simB Preorder) (*Checker, error) {
	if as.Universe() != ab.Universe() {
		return nil, fmt.Errorf("inclusion: automata must share a universe: %w", automaton.ErrMisuse)
	}
	if as.Reading() != automaton.TopDown || ab.Reading() != automaton.TopDown {
		return nil, fmt.Errorf("inclusion: both automata must be top-down: %w", automaton.ErrMisuse)
	}
	u := as.Universe()
	return &Checker{
		as: as, ab: ab, simS: simS, simB: simB,
		included:    newCache(),
		notIncluded: newCache(),
		ws:          newWorkset(),
		unionOp:     mtbdd.BinaryOp[automaton.RHSSet]{ID: u.NextOperatorID(), Apply: u.UnionSets},
	}, nil
}

// Visited returns how many distinct disjuncts have been expanded so far,
// a diagnostic for capping work on large inputs.
func (c *Checker) Visited() int { return c.visited }

// Check requires every (s0, I_b) pair to hold, s0 ranging over As's
// initials and I_b the whole set of Ab's initials. An As with no initial
// state holds vacuously.
func (c *Checker) Check() (bool, error) {
	ib := sortedSet(c.ab.Initials())
	for _, s0 := range c.as.Initials() {
		ok, err := c.expand(s0, ib)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// expand decides whether disjunct (p, s) holds.
func (c *Checker) expand(p int, s []int) (bool, error) {
	s = sortedSet(s)
	if c.included.dominatesIncluded(c.simB, p, s) {
		return true, nil
	}
	if c.notIncluded.dominatesNotIncluded(c.simB, p, s) {
		return false, nil
	}
	if c.ws.contains(c.simB, p, s) {
		return true, nil
	}

	c.visited++
	c.ws.add(p, s)

	u := c.as.Universe()
	union := c.unionRoots(u, s)
	ok, err := c.childrenCollector(p, union)
	union.Release()
	if err != nil {
		c.ws.remove(p, s)
		return false, err
	}
	c.ws.remove(p, s)
	if !ok {
		c.notIncluded.insertNotIncluded(c.simB, p, s)
		return false, nil
	}
	c.included.insertIncluded(c.simB, p, s)
	return true, nil
}

// unionRoots computes U = ⊔_{q∈s} R_b(q) via repeated binary Apply with a
// set-union leaf operator.
func (c *Checker) unionRoots(u *automaton.Universe, s []int) *mtbdd.Ref[automaton.RHSSet] {
	if len(s) == 0 {
		return u.Engine.Background()
	}
	union := c.ab.Root(s[0]).Dup()
	for _, q := range s[1:] {
		merged := u.Engine.ApplyBinary(union, c.ab.Root(q), c.unionOp)
		union.Release()
		union = merged
	}
	return union
}

// childrenCollector walks R_s(p) and the union root together: for each
// symbol region with non-empty smaller-leaf Ls, the bigger-leaf Lr must
// also be non-empty (fail fast otherwise), and every tuple of Ls must be
// coverable by some choice function splitting Lr across its positions.
func (c *Checker) childrenCollector(p int, union *mtbdd.Ref[automaton.RHSSet]) (bool, error) {
	u := c.as.Universe()
	ok := true
	var failErr error
	u.Engine.Walk2(c.as.Root(p), union, func(_ mtbdd.Assignment, ls, lr automaton.RHSSet) bool {
		lsMembers := u.Members(ls)
		if lsMembers.Cardinality() == 0 {
			return true
		}
		lrMembers := u.Members(lr)
		if lrMembers.Cardinality() == 0 {
			ok = false
			return false
		}
		sortedLr := sortedRHS(lrMembers)
		lsMembers.Each(func(t automaton.RHS) bool {
			holds, err := c.tupleHolds(t, sortedLr)
			if err != nil {
				failErr = err
				return true
			}
			if !holds {
				ok = false
				return true
			}
			return false
		})
		return failErr == nil && ok
	})
	if failErr != nil {
		return false, failErr
	}
	return ok, nil
}

// tupleHolds decides whether tuple t (from Ls) is covered by some choice
// function splitting lr (Lr's members, sorted for deterministic indexing)
// across t's positions: AND over non-empty buckets that the recursive
// disjunct holds, tried for every choice function until one succeeds.
func (c *Checker) tupleHolds(t automaton.RHS, lr []automaton.RHS) (bool, error) {
	n := t.Arity()
	for _, u := range lr {
		if u.Arity() != n {
			return false, fmt.Errorf("inclusion: mismatched arity %d vs %d at a shared leaf: %w", u.Arity(), n, automaton.ErrMisuse)
		}
	}
	if n == 0 {
		// Arity-0 enumeration yields exactly one disjunction (empty): the
		// leaf-compatibility check above already confirms the nullary
		// rule is matched, with no further children to recurse on.
		return true, nil
	}
	tStates := t.States()
	it := NewChoiceIter(len(lr), n)
	for it.Next() {
		choice := it.Choice()
		satisfied := true
		for i := 0; i < n; i++ {
			bucket := bucketFor(lr, choice, i)
			if len(bucket) == 0 {
				continue
			}
			ok, err := c.expand(tStates[i], bucket)
			if err != nil {
				return false, err
			}
			if !ok {
				satisfied = false
				break
			}
		}
		if satisfied {
			return true, nil
		}
	}
	return false, nil
}

func bucketFor(lr []automaton.RHS, choice []int, i int) []int {
	var out []int
	for j, v := range choice {
		if v == i {
			out = append(out, lr[j].States()[i])
		}
	}
	return out
}

func sortedRHS(members mapset.Set[automaton.RHS]) []automaton.RHS {
	items := members.ToSlice()
	sort.Slice(items, func(i, j int) bool { return automaton.Compare(items[i], items[j]) < 0 })
	return items
}
