// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package automaton

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/sfta-go/sfta/internal/logging"
	"github.com/sfta-go/sfta/mtbdd"
)

// ErrMisuse is the sentinel wrapped into every fatal misuse error this
// package reports: mismatched engines, unknown states, inconsistent
// arities.
var ErrMisuse = errors.New("automaton: misuse")

// Reading tags whether an Automaton interprets its transition roots
// top-down (root read on the parent state) or bottom-up (root read on the
// derived state).
type Reading int

const (
	TopDown Reading = iota
	BottomUp
)

func (r Reading) String() string {
	if r == TopDown {
		return "top-down"
	}
	return "bottom-up"
}

// Universe bundles the shared engine, alphabet and right-hand-side-set
// registry that every Automaton built on top of it has in common: the
// unique/computed tables, and by extension any leaf-value bookkeeping, are
// engine-local state shared by every automaton registered against it.
type Universe struct {
	Engine   *mtbdd.Engine[RHSSet]
	Alphabet *Alphabet
	registry *rhsRegistry
	opSeq    int
}

// NewUniverse allocates an engine with width Boolean variables (the symbol
// encoding space) and a matching Alphabet.
func NewUniverse(width int, opts ...mtbdd.Option) *Universe {
	engine := mtbdd.New[RHSSet](opts...)
	for i := 0; i < width; i++ {
		engine.CreateVariable()
	}
	registry := newRHSRegistry()
	engine.SetBackground(registry.Empty())
	return &Universe{
		Engine:   engine,
		Alphabet: NewAlphabet(width),
		registry: registry,
		opSeq:    100,
	}
}

// NextOperatorID allocates an operator ID distinct from every previously
// allocated one. Exported for collaborators outside this package (the
// inclusion checker) that build their own per-call Apply operators over
// RHSSet leaves and must not collide with this package's own operator IDs.
func (u *Universe) NextOperatorID() int { return u.nextOpID() }

// Members returns the actual RHS members backing the set handle s.
func (u *Universe) Members(s RHSSet) mapset.Set[RHS] { return u.registry.Members(s) }

// UnionSets returns the interned union of a and b.
func (u *Universe) UnionSets(a, b RHSSet) RHSSet { return u.registry.Union(a, b) }

// EmptySet returns the canonical empty RHSSet.
func (u *Universe) EmptySet() RHSSet { return u.registry.Empty() }

// nextOpID allocates an operator ID distinct from every previously
// allocated one, for use by Apply operators whose function is specific to
// one call (e.g. Union's per-call state remapping) and must therefore never
// collide with a computed-table entry left behind by an earlier call with a
// different remap.
func (u *Universe) nextOpID() int {
	u.opSeq++
	return u.opSeq
}

// Automaton is a top-down or bottom-up tree automaton over a Universe: a
// triple (Q, I, R) -- a set of states, an initial/root set, and the
// per-state transition root map.
type Automaton struct {
	universe *Universe
	states   *StateTranslator
	table    *transitionTable
	initial  map[int]bool
	reading  Reading
	sink     logging.Sink
}

// Option configures an Automaton at construction time.
type Option func(*Automaton)

// WithSink attaches a logging sink (defaults to logging.NullSink{}).
func WithSink(s logging.Sink) Option {
	return func(a *Automaton) { a.sink = s }
}

func newAutomaton(u *Universe, reading Reading, opts ...Option) *Automaton {
	a := &Automaton{
		universe: u,
		states:   newStateTranslator(),
		table:    newTransitionTable(u.Engine, u.registry),
		initial:  make(map[int]bool),
		reading:  reading,
		sink:     logging.NullSink{},
	}
	for _, o := range opts {
		o(a)
	}
	return a
}

// NewTopDown creates an empty top-down automaton on u.
func NewTopDown(u *Universe, opts ...Option) *Automaton { return newAutomaton(u, TopDown, opts...) }

// NewBottomUp creates an empty bottom-up automaton on u.
func NewBottomUp(u *Universe, opts ...Option) *Automaton { return newAutomaton(u, BottomUp, opts...) }

// Reading reports whether a is a top-down or bottom-up automaton.
func (a *Automaton) Reading() Reading { return a.reading }

// Universe returns the Universe a is built on.
func (a *Automaton) Universe() *Universe { return a.universe }

// AddState allocates (or returns the existing) ID for label.
func (a *Automaton) AddState(label string) int {
	id := a.states.Intern(label)
	a.table.addState(id)
	return id
}

// StateLabel returns the label for a state ID, or "" if unknown.
func (a *Automaton) StateLabel(id int) string { return a.states.Label(id) }

// LookupState returns the ID for label without allocating a new one.
func (a *Automaton) LookupState(label string) (int, bool) { return a.states.ID(label) }

// States returns every state ID allocated so far.
func (a *Automaton) States() []int {
	out := make([]int, a.states.Len())
	for i := range out {
		out[i] = i
	}
	return out
}

// SetInitial marks q as an initial/root state.
func (a *Automaton) SetInitial(q int) error {
	if q < 0 || q >= a.states.Len() {
		return fmt.Errorf("set_initial: unknown state %d: %w", q, ErrMisuse)
	}
	a.initial[q] = true
	return nil
}

// IsInitial reports whether q is an initial state.
func (a *Automaton) IsInitial(q int) bool { return a.initial[q] }

// Initials returns every initial state ID.
func (a *Automaton) Initials() []int {
	out := make([]int, 0, len(a.initial))
	for q := range a.initial {
		out = append(out, q)
	}
	return out
}

// AddTransition records a -> sym(children) -> targets: for each q in
// targets, the tuple `children` is unioned into R(q) at sym's cube.
func (a *Automaton) AddTransition(sym *Symbol, children []int, targets []int) error {
	if sym.Arity != len(children) {
		return fmt.Errorf("add_transition: symbol %s has arity %d, got %d children: %w", sym.Name, sym.Arity, len(children), ErrMisuse)
	}
	for _, q := range children {
		if q < 0 || q >= a.states.Len() {
			return fmt.Errorf("add_transition: unknown child state %d: %w", q, ErrMisuse)
		}
	}
	for _, q := range targets {
		if q < 0 || q >= a.states.Len() {
			return fmt.Errorf("add_transition: unknown target state %d: %w", q, ErrMisuse)
		}
	}
	tuple := Tuple(children...)
	for _, q := range targets {
		a.table.set(q, sym.Cube(), tuple)
	}
	return nil
}

// Root returns a Ref to R(q), the transition root for state q.
func (a *Automaton) Root(q int) *mtbdd.Ref[RHSSet] { return a.table.root(q) }

// Transitions calls visit once per (symbol, right-hand-side) pair defined
// for q: every allocated alphabet symbol is evaluated at its own code
// against R(q), side-stepping cube-compaction ambiguity.
func (a *Automaton) Transitions(q int, visit func(*Symbol, RHS)) {
	for _, sym := range a.universe.Alphabet.Symbols() {
		leaf := a.table.bySymbol(q, sym)
		if leaf.IsEmpty() {
			continue
		}
		a.universe.registry.Members(leaf).Each(func(r RHS) bool {
			visit(sym, r)
			return false
		})
	}
}

// Release drops every root this automaton holds.
func (a *Automaton) Release() { a.table.release() }

// ************************************************************
// Union

// Union returns a new automaton whose state set is the disjoint union of
// A1 and A2's state IDs (re-allocated to avoid collision) and whose root
// map is the merge of their translated roots. A1 and A2 must share a
// Universe and a Reading.
func Union(a1, a2 *Automaton) (*Automaton, error) {
	if a1.universe != a2.universe {
		return nil, fmt.Errorf("union: automata must share a universe: %w", ErrMisuse)
	}
	if a1.reading != a2.reading {
		return nil, fmt.Errorf("union: automata must share a reading: %w", ErrMisuse)
	}
	out := newAutomaton(a1.universe, a1.reading)
	importStates(out, a1, "1")
	importStates(out, a2, "2")
	return out, nil
}

// importStates copies every state of src into dst under a disambiguated
// label (original-label "_" tag, guaranteeing no collision with any other
// import into the same dst, and still a Timbuk identifier whenever the
// original label is one), remapping the state IDs embedded inside every
// right-hand side it carries.
func importStates(dst, src *Automaton, tag string) map[int]int {
	remap := make(map[int]int, src.states.Len())
	for id := 0; id < src.states.Len(); id++ {
		remap[id] = dst.AddState(src.states.Label(id) + "_" + tag)
	}
	remapOp := mtbdd.MonadicOp[RHSSet]{
		ID:    dst.universe.nextOpID(),
		Apply: remapRHSSet(dst.universe.registry, remap),
	}
	for id := 0; id < src.states.Len(); id++ {
		newID := remap[id]
		root := src.table.root(id)
		remapped := dst.universe.Engine.ApplyMonadic(root, remapOp)
		old := dst.table.roots[newID]
		dst.table.roots[newID] = remapped
		if old != nil {
			old.Release()
		}
		if src.IsInitial(id) {
			dst.SetInitial(newID)
		}
	}
	return remap
}

func remapRHSSet(registry *rhsRegistry, remap map[int]int) func(RHSSet) RHSSet {
	return func(s RHSSet) RHSSet {
		if s.IsEmpty() {
			return s
		}
		out := mapset.NewThreadUnsafeSet[RHS]()
		registry.Members(s).Each(func(r RHS) bool {
			out.Add(remapRHS(r, remap))
			return false
		})
		return registry.intern(out)
	}
}

func remapRHS(r RHS, remap map[int]int) RHS {
	if !r.IsTuple() {
		return Elem(remap[r.State()])
	}
	states := r.States()
	out := make([]int, len(states))
	for i, s := range states {
		out[i] = remap[s]
	}
	return Tuple(out...)
}

// ************************************************************
// Intersection

// opTuplePairProduct is not referenced by Intersection: its product operator
// depends on per-call state numbering and takes a fresh ID from nextOpID.
const opTuplePairProduct = 2

// Intersection returns the product automaton of a1 and a2: for every pair
// (p, q) of states, R(p,q) = apply_binary(R1(p), R2(q), tuple_pair_product),
// where tuple_pair_product pairs same-length tuples component-wise and
// reports a mismatched arity as misuse. New state (p, q) is initial iff
// both p and q are.
func Intersection(a1, a2 *Automaton) (*Automaton, error) {
	if a1.universe != a2.universe {
		return nil, fmt.Errorf("intersection: automata must share a universe: %w", ErrMisuse)
	}
	if a1.reading != a2.reading {
		return nil, fmt.Errorf("intersection: automata must share a reading: %w", ErrMisuse)
	}
	out := newAutomaton(a1.universe, a1.reading)
	registry := out.universe.registry

	pairID := make(map[[2]int]int, a1.states.Len()*a2.states.Len())
	for p := 0; p < a1.states.Len(); p++ {
		for q := 0; q < a2.states.Len(); q++ {
			label := fmt.Sprintf("(%s,%s)", a1.states.Label(p), a2.states.Label(q))
			pairID[[2]int{p, q}] = out.AddState(label)
		}
	}

	var opErr error
	// The product operator maps component pairs through this call's pairID
	// numbering, so (like Union's remap operator) it gets a fresh operator ID:
	// a computed-table entry left by an earlier call is never reused.
	product := mtbdd.BinaryOp[RHSSet]{
		ID: out.universe.nextOpID(),
		Apply: func(lp, lq RHSSet) RHSSet {
			if opErr != nil || lp.IsEmpty() || lq.IsEmpty() {
				return registry.Empty()
			}
			out := mapset.NewThreadUnsafeSet[RHS]()
			registry.Members(lp).Each(func(tp RHS) bool {
				registry.Members(lq).Each(func(tq RHS) bool {
					t, err := pairProduct(tp, tq, pairID)
					if err != nil {
						opErr = err
						return true
					}
					out.Add(t)
					return false
				})
				return opErr != nil
			})
			return registry.intern(out)
		},
	}

	for p := 0; p < a1.states.Len(); p++ {
		for q := 0; q < a2.states.Len(); q++ {
			root := out.universe.Engine.ApplyBinary(a1.table.root(p), a2.table.root(q), product)
			if opErr != nil {
				root.Release()
				return nil, opErr
			}
			newID := pairID[[2]int{p, q}]
			old := out.table.roots[newID]
			out.table.roots[newID] = root
			if old != nil {
				old.Release()
			}
			if a1.IsInitial(p) && a2.IsInitial(q) {
				out.SetInitial(newID)
			}
		}
	}
	return out, nil
}

// pairProduct forms {((p'_i, q'_i))_i} for one pair of same-arity tuples,
// mapping each resulting pair of component states to its product-state ID.
func pairProduct(tp, tq RHS, pairID map[[2]int]int) (RHS, error) {
	if tp.Arity() != tq.Arity() {
		return RHS{}, fmt.Errorf("intersection: mismatched arity %d vs %d: %w", tp.Arity(), tq.Arity(), ErrMisuse)
	}
	if !tp.IsTuple() && !tq.IsTuple() {
		id, ok := pairID[[2]int{tp.State(), tq.State()}]
		if !ok {
			return RHS{}, fmt.Errorf("intersection: unknown state pair (%d,%d): %w", tp.State(), tq.State(), ErrMisuse)
		}
		return Elem(id), nil
	}
	ps, qs := tp.States(), tq.States()
	out := make([]int, len(ps))
	for i := range ps {
		id, ok := pairID[[2]int{ps[i], qs[i]}]
		if !ok {
			return RHS{}, fmt.Errorf("intersection: unknown state pair (%d,%d): %w", ps[i], qs[i], ErrMisuse)
		}
		out[i] = id
	}
	return Tuple(out...), nil
}
