// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtbdd

// Ref is an opaque, externally visible handle pinning one node of an Engine
// against reclamation. Its construction increments the node's reference
// count; Release decrements it. Multiple Refs may alias the
// same node; the underlying node is only eligible for collection once every
// alias has been released.
//
// A zero Ref (nil) is never returned by a successful operation; engine
// failures are reported through Engine.Errored/Error instead, matching the
// "the engine never silently swallows a failure" propagation policy.
type Ref[L comparable] struct {
	engine *Engine[L]
	id     int
}

// newRef wraps id, incrementing its reference count. id may be -1 to signal
// that the operation that produced it failed; in that case Release is a
// no-op and ID returns -1.
func (e *Engine[L]) newRef(id int) *Ref[L] {
	if id >= 0 {
		e.refNode(id)
	}
	return &Ref[L]{engine: e, id: id}
}

// ID returns the internal node id backing r. It is stable for the lifetime
// of r and equal for any two Refs denoting the same function (the canonicity
// invariant).
func (r *Ref[L]) ID() int { return r.id }

// Valid reports whether r denotes a real node (as opposed to a failed
// operation's placeholder).
func (r *Ref[L]) Valid() bool { return r.id >= 0 }

// Release decrements the reference count of the node backing r. Every code
// path that obtains a Ref must eventually call Release exactly once.
func (r *Ref[L]) Release() {
	if r == nil || r.id < 0 || r.engine == nil {
		return
	}
	r.engine.derefNode(r.id)
	r.engine = nil
}

// Dup increments the reference count and returns a new, independent Ref
// aliasing the same node.
func (r *Ref[L]) Dup() *Ref[L] {
	return r.engine.newRef(r.id)
}

// SameNode reports whether a and b denote the same node, i.e. the same
// Boolean/leaf function (the canonicity invariant: equal function implies
// equal node id).
func SameNode[L comparable](a, b *Ref[L]) bool {
	return a.engine == b.engine && a.id == b.id
}

// IsTerminal reports whether r is a terminal node, and if so its leaf value.
func (r *Ref[L]) IsTerminal() (L, bool) {
	var zero L
	if !r.Valid() {
		return zero, false
	}
	n := r.engine.nodes[r.id]
	if n.isTerminal() {
		return r.engine.leaves.value(n.low), true
	}
	return zero, false
}

// Var returns the top decision variable of r, or -1 if r is terminal.
func (r *Ref[L]) Var() int {
	if !r.Valid() {
		return -1
	}
	n := r.engine.nodes[r.id]
	if n.isTerminal() {
		return -1
	}
	return int(n.level)
}

// Low returns the false-branch child of r, or r itself if r is terminal
// (the function is independent of every remaining variable below a leaf).
func (r *Ref[L]) Low() *Ref[L] {
	if !r.Valid() {
		return r
	}
	n := r.engine.nodes[r.id]
	if n.isTerminal() {
		return r
	}
	return r.engine.newRef(n.low)
}

// High returns the true-branch child of r.
func (r *Ref[L]) High() *Ref[L] {
	if !r.Valid() {
		return r
	}
	n := r.engine.nodes[r.id]
	if n.isTerminal() {
		return r
	}
	return r.engine.newRef(n.high)
}
