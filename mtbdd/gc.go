// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtbdd

import "github.com/sfta-go/sfta/internal/logging"

// gc is the mark-and-sweep collector, run from internNode when the free
// list is exhausted. A node survives if it is reachable from a node with a
// positive external reference count or from the in-flight refstack; every
// other node is reclaimed, its unicity-table entry dropped, and the
// computed table is invalidated since it may hold entries mentioning
// reclaimed ids.
//
// We implement release as reachability analysis rather than eager per-edge
// decrement: the teacher's own gbc takes exactly this shape (mark from
// refcou>0 roots, sweep the rest), and doing per-edge recursive decrement
// would require tracking a reference count per *edge* instead of per
// *node*, which the unicity table's structural sharing makes expensive to
// maintain incrementally. See DESIGN.md.
func (e *Engine[L]) gc() {
	e.configs.sink.Log(logging.Debug, logging.CategoryGC, "starting gc", logging.Fields{
		"nodes": len(e.nodes), "free": e.freenum,
	})
	for _, r := range e.refstack {
		e.markrec(r)
	}
	for k := range e.nodes {
		if e.nodes[k].refcou > 0 {
			e.markrec(k)
		}
	}
	e.markrec(e.backgroundNode)

	e.unique = make(map[nodeKey]int, len(e.nodes))
	e.freepos = 0
	e.freenum = 0
	for n := len(e.nodes) - 1; n >= 2; n-- {
		if e.nodes[n].low == -1 {
			e.nodes[n].high = e.freepos
			e.freepos = n
			e.freenum++
			continue
		}
		if e.nodes[n].ismarked() {
			e.nodes[n].unmarknode()
			e.unique[nodeKey{e.nodes[n].level, e.nodes[n].low, e.nodes[n].high}] = n
		} else {
			e.nodes[n].low = -1
			e.nodes[n].high = e.freepos
			e.freepos = n
			e.freenum++
		}
	}
	// re-seed the low indices (0, 1 slots are unused by this generic
	// engine, unlike the teacher's fixed False/True constants: our
	// terminals live wherever the unicity table places them).
	e.cache.reset()
	e.configs.sink.Log(logging.Debug, logging.CategoryGC, "gc done", logging.Fields{
		"nodes": len(e.nodes), "free": e.freenum,
	})
}

func (e *Engine[L]) markrec(n int) {
	if n < 0 || n >= len(e.nodes) || e.nodes[n].ismarked() || e.nodes[n].low == -1 {
		return
	}
	e.nodes[n].marknode()
	nd := e.nodes[n]
	if nd.level == leafLevel {
		return
	}
	e.markrec(nd.low)
	e.markrec(nd.high)
}

// resize grows the node table, doubling it (bounded by maxnodeincrease and
// maxnodesize), and rebuilds the unicity table and free list.
func (e *Engine[L]) resize() error {
	oldsize := len(e.nodes)
	if e.configs.maxnodesize > 0 && oldsize >= e.configs.maxnodesize {
		return ErrMemory
	}
	newsize := oldsize * 2
	if e.configs.maxnodeincrease > 0 && newsize > oldsize+e.configs.maxnodeincrease {
		newsize = oldsize + e.configs.maxnodeincrease
	}
	if e.configs.maxnodesize > 0 && newsize > e.configs.maxnodesize {
		newsize = e.configs.maxnodesize
	}
	if newsize <= oldsize {
		return ErrMemory
	}
	e.configs.sink.Log(logging.Info, logging.CategoryGC, "resizing node table", logging.Fields{
		"from": oldsize, "to": newsize,
	})
	grown := make([]node, newsize)
	copy(grown, e.nodes)
	for k := oldsize; k < newsize; k++ {
		grown[k] = node{low: -1, high: k + 1}
	}
	grown[newsize-1].high = e.freepos
	e.freepos = oldsize
	e.freenum += newsize - oldsize
	e.nodes = grown
	return nil
}

// Shutdown releases the engine's resources and reports, through the
// configured sink, the number of nodes that still carried a positive
// external reference count (a caller-side leak). It does not otherwise
// change behavior: this Engine is a plain Go value and will be collected by
// the Go runtime once unreferenced regardless of Shutdown being called.
func (e *Engine[L]) Shutdown() {
	leaked := 0
	for k := range e.nodes {
		if e.nodes[k].low != -1 && e.nodes[k].refcou > 0 && k != e.backgroundNode {
			leaked++
		}
	}
	if leaked > 0 {
		e.configs.sink.Log(logging.Warn, logging.CategoryEngine, "leaked references at shutdown", logging.Fields{
			"unreferenced": leaked,
		})
	}
}

// CountZeroRef returns the number of node-table slots that are currently
// free (refcou==0 and unreachable), used by tests to check the reference
// accounting invariant.
func (e *Engine[L]) CountZeroRef() int {
	return e.freenum
}

// AllocatedNodes returns the total capacity of the node table.
func (e *Engine[L]) AllocatedNodes() int { return len(e.nodes) }
