// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtbdd

import "math"

// leafLevel is the sentinel variable level carried by every terminal node.
// It is larger than any real variable level, so the variable-order invariant
// (parent.level < child.level) holds trivially for edges into a terminal,
// regardless of how many variables the engine later grows to.
const leafLevel int32 = math.MaxInt32

// node is either an internal node, deciding on variable level with children
// low (level=0) and high (level=1), or a terminal, in which case low and
// high both hold the same leaf index (leaves[low] is the value) and level is
// leafLevel. Folding terminals into the same representation lets a single
// unicity table cover both kinds of node, exactly like the teacher's
// constant nodes 0 and 1, which also store low==high==self.
type node struct {
	level  int32
	low    int
	high   int
	refcou int32 // external reference count; 0 means reclaimable
}

func (n node) isTerminal() bool { return n.level == leafLevel }

// nodeKey is the unicity-table lookup key. Using a plain comparable struct
// as a Go map key is a direct generalization of the teacher's byte-packed
// hudd.huddhash: the engine here is generic over the leaf type, so terminal
// identity is carried through the leaf index rather than through the leaf
// value itself, and a struct key keeps the table implementation leaf-type
// agnostic.
type nodeKey struct {
	level int32
	low   int
	high  int
}

// ismarked / marknode / unmarknode implement mark bits used by the
// mark-and-sweep collector (gc.go). We steal the sign bit of refcou, which
// is otherwise never negative.
func (n *node) ismarked() bool   { return n.refcou < 0 }
func (n *node) marknode()        { n.refcou = -n.refcou - 1 }
func (n *node) unmarknode()      { n.refcou = -n.refcou - 1 }
