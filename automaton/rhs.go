// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package automaton

import (
	"sort"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// RHS is the "element-or-tuple" sum type: a transition leaf carries either
// a single state (an element; Union's and Intersection's state remapping
// handle it, but AddTransition only ever stores tuples) or a tuple of states
// (a right-hand side read off the automaton itself). Total order: elements
// precede tuples, lexicographic within each kind.
//
// Go generics require the MTBDD leaf type to be strictly comparable (usable
// as a map key with ==), which rules out embedding a []int slice directly.
// We instead canonicalize a tuple into a comma-joined string, the same way
// the rest of this package interns sets of RHS into a single comparable
// handle (see RHSSet) -- a plain, if slightly unusual, way to make a
// variable-arity value hashable without reaching for reflection or an
// external interning library.
type RHS struct {
	isTuple  bool
	elem     int
	tupleKey string
}

// Elem returns the RHS denoting the single state q.
func Elem(q int) RHS { return RHS{elem: q} }

// Tuple returns the RHS denoting the tuple of states qs, in order. An empty
// tuple is valid: it is the right-hand side of a nullary transition.
func Tuple(qs ...int) RHS {
	parts := make([]string, len(qs))
	for i, q := range qs {
		parts[i] = strconv.Itoa(q)
	}
	return RHS{isTuple: true, tupleKey: strings.Join(parts, ",")}
}

// IsTuple reports whether r is a tuple (as opposed to a bare element).
func (r RHS) IsTuple() bool { return r.isTuple }

// State returns the state r denotes, valid only when !r.IsTuple().
func (r RHS) State() int { return r.elem }

// States decodes r's tuple, valid only when r.IsTuple().
func (r RHS) States() []int {
	if r.tupleKey == "" {
		return nil
	}
	parts := strings.Split(r.tupleKey, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, _ := strconv.Atoi(p)
		out[i] = v
	}
	return out
}

// Arity returns len(r.States()) for a tuple, or 1 for a bare element.
func (r RHS) Arity() int {
	if !r.isTuple {
		return 1
	}
	if r.tupleKey == "" {
		return 0
	}
	return strings.Count(r.tupleKey, ",") + 1
}

// Compare implements the total order on RHS: elements precede tuples,
// lexicographic within each kind.
func Compare(a, b RHS) int {
	if a.isTuple != b.isTuple {
		if !a.isTuple {
			return -1
		}
		return 1
	}
	if !a.isTuple {
		switch {
		case a.elem < b.elem:
			return -1
		case a.elem > b.elem:
			return 1
		default:
			return 0
		}
	}
	as, bs := a.States(), b.States()
	for i := 0; i < len(as) && i < len(bs); i++ {
		if as[i] != bs[i] {
			if as[i] < bs[i] {
				return -1
			}
			return 1
		}
	}
	return len(as) - len(bs)
}

func (r RHS) String() string {
	if !r.isTuple {
		return strconv.Itoa(r.elem)
	}
	return "(" + r.tupleKey + ")"
}

// ************************************************************

// RHSSet is a comparable handle denoting a canonicalized, immutable set of
// RHS values; it is what actually sits at the leaves of a transition MTBDD
// (mtbdd.Engine requires a comparable leaf type). The real membership test
// and set algebra is delegated to a rhsRegistry backed by
// github.com/deckarep/golang-set/v2, the same set library suleei-DINT reaches
// for when it wraps a rudd.BDD.
type RHSSet struct {
	key string
}

type rhsRegistry struct {
	members map[string]mapset.Set[RHS]
}

func newRHSRegistry() *rhsRegistry {
	r := &rhsRegistry{members: make(map[string]mapset.Set[RHS])}
	r.members[""] = mapset.NewThreadUnsafeSet[RHS]()
	return r
}

func canonicalKey(s mapset.Set[RHS]) string {
	items := s.ToSlice()
	sort.Slice(items, func(i, j int) bool { return Compare(items[i], items[j]) < 0 })
	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = it.String()
	}
	return strings.Join(parts, "|")
}

// intern canonicalizes s and returns the RHSSet handle for it, reusing an
// existing entry when an equal set has been interned before.
func (r *rhsRegistry) intern(s mapset.Set[RHS]) RHSSet {
	key := canonicalKey(s)
	if _, ok := r.members[key]; !ok {
		r.members[key] = s.Clone()
	}
	return RHSSet{key: key}
}

// Empty returns the canonical empty RHSSet, used as the MTBDD background.
func (r *rhsRegistry) Empty() RHSSet { return RHSSet{key: ""} }

// Singleton interns the one-element set {t}.
func (r *rhsRegistry) Singleton(t RHS) RHSSet {
	s := mapset.NewThreadUnsafeSet[RHS](t)
	return r.intern(s)
}

// Members returns the actual set of RHS backing handle s.
func (r *rhsRegistry) Members(s RHSSet) mapset.Set[RHS] {
	if m, ok := r.members[s.key]; ok {
		return m
	}
	return mapset.NewThreadUnsafeSet[RHS]()
}

// Union returns the interned union of a and b, the leaf operator
// "(A, B) -> A ∪ B".
func (r *rhsRegistry) Union(a, b RHSSet) RHSSet {
	if a.key == b.key {
		return a
	}
	merged := r.Members(a).Clone()
	merged = merged.Union(r.Members(b))
	return r.intern(merged)
}

// IsEmpty reports whether s is the canonical empty set.
func (s RHSSet) IsEmpty() bool { return s.key == "" }
