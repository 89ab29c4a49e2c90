// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtbdd

import (
	"fmt"

	"github.com/sfta-go/sfta/internal/logging"
)

// Engine is a shared, content-addressed MTBDD engine over a fixed but
// growable set of Boolean variables, with terminal leaves of type L
// (Component C). All operations on a given Engine must happen from a single
// logical thread of control; the engine keeps no internal locking.
type Engine[L comparable] struct {
	varnum int32 // number of variables currently allocated

	nodes   []node         // node table; slots 0 and 1 are never used, terminals live wherever internNode places them
	unique  map[nodeKey]int // unicity table (Component B, first half)
	leaves  *leafStore[L]   // leaf-value store
	cache   *computedTable  // computed table (Component B, second half)

	freepos int // first free slot in nodes, or 0 if none
	freenum int // number of free slots

	produced int // total nodes ever created, for Stats

	refstack []int // protects in-flight recursive results from GC

	backgroundLeaf int // leaf index of the background value
	backgroundNode int // interned node id for constant(background)

	// variable-set marking used by Project, mirrors the teacher's
	// quantset/quantsetID trick: instead of clearing an array on every
	// call we stamp it with a monotonic id.
	projMark []int32
	projID   int32
	projLast int32

	configs
	err error

	allocated int // not maintained: AllocatedNodes reads len(nodes) and Shutdown scans the node table
}

// New creates an Engine with no variables yet allocated. Variables are added
// with CreateVariable. L is the leaf type; L's zero value is used as the
// initial background value unless WithBackground-equivalent is used after
// creation via SetBackground.
func New[L comparable](opts ...Option) *Engine[L] {
	c := makeconfigs(0)
	for _, o := range opts {
		o(c)
	}
	if c.nodesize < 2 {
		c.nodesize = 2
	}
	e := &Engine[L]{
		configs: *c,
		leaves:  newLeafStore[L](),
		cache:   newComputedTable(),
	}
	e.nodes = make([]node, c.nodesize)
	for k := range e.nodes {
		e.nodes[k] = node{low: -1, high: k + 1}
	}
	e.nodes[len(e.nodes)-1].high = 0
	e.freepos = 0
	e.freenum = c.nodesize
	e.unique = make(map[nodeKey]int, c.nodesize)

	var zero L
	e.backgroundLeaf = e.leaves.intern(zero)
	e.backgroundNode = e.internNode(node{level: leafLevel, low: e.backgroundLeaf, high: e.backgroundLeaf, refcou: 0})
	e.refNode(e.backgroundNode)

	return e
}

// Varnum returns the number of variables currently allocated.
func (e *Engine[L]) Varnum() int { return int(e.varnum) }

// Error returns the error status of the engine, or the empty string.
func (e *Engine[L]) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

// Errored reports whether the engine has a pending error.
func (e *Engine[L]) Errored() bool { return e.err != nil }

func (e *Engine[L]) seterror(format string, a ...interface{}) {
	msg := fmt.Sprintf(format, a...)
	if e.err != nil {
		msg = msg + "; " + e.err.Error()
	}
	e.err = fmt.Errorf("%s: %w", msg, ErrMisuse)
	e.configs.sink.Log(logging.Error, logging.CategoryEngine, msg, nil)
}

// CreateVariable allocates a new topmost variable, placed at the bottom of
// the current order (its level is the previous Varnum()), and returns its
// index.
func (e *Engine[L]) CreateVariable() int {
	level := e.varnum
	e.varnum++
	e.projMark = append(e.projMark, 0)
	return int(level)
}

// SetBackground sets the distinguished leaf value meaning "undefined"; every
// cofactor that would otherwise be empty evaluates to it.
func (e *Engine[L]) SetBackground(v L) {
	e.backgroundLeaf = e.leaves.intern(v)
	bg := e.internNode(node{level: leafLevel, low: e.backgroundLeaf, high: e.backgroundLeaf})
	e.refNode(bg)
	e.backgroundNode = bg
}

// GetBackground returns the current background value.
func (e *Engine[L]) GetBackground() L {
	return e.leaves.value(e.backgroundLeaf)
}

// Background returns a Ref to the background constant.
func (e *Engine[L]) Background() *Ref[L] {
	return e.newRef(e.backgroundNode)
}

// ************************************************************
// node table plumbing

func (e *Engine[L]) level(n int) int32 { return e.nodes[n].level }
func (e *Engine[L]) low(n int) int     { return e.nodes[n].low }
func (e *Engine[L]) high(n int) int    { return e.nodes[n].high }

// checkptr reports whether id is a live, known node.
func (e *Engine[L]) checkptr(id int) bool {
	if id < 0 || id >= len(e.nodes) {
		return false
	}
	return e.nodes[id].low != -1 || id == e.backgroundNode
}

// internNode is the unicity-table lookup/insert used by every node
// constructor: the reduction rule low==high is applied first, then an
// existing structurally-equal node is reused if one exists.
func (e *Engine[L]) internNode(n node) int {
	if n.low == n.high && n.level != leafLevel {
		return n.low
	}
	key := nodeKey{level: n.level, low: n.low, high: n.high}
	if id, ok := e.unique[key]; ok {
		return id
	}
	if e.freepos == 0 {
		e.gc()
		if (e.freenum*100)/len(e.nodes) <= e.configs.minfreenodes {
			if err := e.resize(); err != nil {
				e.seterror("cannot grow node table: %v", err)
				return -1
			}
		}
		if e.freepos == 0 {
			e.seterror("node table exhausted")
			return -1
		}
	}
	id := e.freepos
	e.freepos = e.nodes[id].high
	e.freenum--
	e.produced++
	e.nodes[id] = n
	e.unique[key] = id
	return id
}

// makenode is the internal-node constructor used by Apply/Project/etc. It
// does not touch the refstack: the caller must have pushed low and high
// (or have them reachable from a protected node) before calling it, and
// pushes the returned node itself if it needs it to survive a later gc.
func (e *Engine[L]) makenode(level int32, low, high int) int {
	return e.internNode(node{level: level, low: low, high: high})
}

func (e *Engine[L]) constantNode(v L) int {
	idx := e.leaves.intern(v)
	return e.internNode(node{level: leafLevel, low: idx, high: idx})
}

func (e *Engine[L]) leafValue(n int) L {
	return e.leaves.value(e.nodes[n].low)
}

// ************************************************************
// refstack: transient protection used while a recursive operation is
// in-flight, before any of its intermediate results have an external Ref.

func (e *Engine[L]) initref() { e.refstack = e.refstack[:0] }

func (e *Engine[L]) pushref(n int) int {
	e.refstack = append(e.refstack, n)
	return n
}

func (e *Engine[L]) popref(k int) {
	e.refstack = e.refstack[:len(e.refstack)-k]
}

// ************************************************************
// external reference counting

func (e *Engine[L]) refNode(id int) {
	if id < 0 || id >= len(e.nodes) {
		return
	}
	e.nodes[id].refcou++
}

func (e *Engine[L]) derefNode(id int) {
	if id < 0 || id >= len(e.nodes) || e.nodes[id].low == -1 {
		return
	}
	if e.nodes[id].refcou > 0 {
		e.nodes[id].refcou--
	}
}
