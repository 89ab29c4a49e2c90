// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtbdd

// BinaryOp is a caller-supplied leaf operator for ApplyBinary and Project.
// ID distinguishes operators in the computed table: two BinaryOp values with
// the same ID are assumed, by the caller, to compute the same function (the
// computed table's "cache hits require operator equality" rule, generalized
// from a fixed enum of truth tables to an arbitrary leaf type). Callers
// should allocate IDs from a small package-private enum, the same way the
// teacher's Operator type does for its fixed Boolean ops.
type BinaryOp[L comparable] struct {
	ID    int
	Apply func(a, b L) L
}

// MonadicOp is a caller-supplied unary leaf operator for ApplyMonadic.
type MonadicOp[L comparable] struct {
	ID    int
	Apply func(a L) L
}

// Constant returns a Ref for the terminal with leaf value v.
func (e *Engine[L]) Constant(v L) *Ref[L] {
	return e.newRef(e.constantNode(v))
}

// IthVar returns a Ref for the internal node deciding on variable i, with
// trueLeaf on the high branch and falseLeaf on the low branch. i must be in
// [0, Varnum). This generalizes the Boolean Ithvar to an arbitrary leaf type
// by requiring the caller to name the two leaves.
func (e *Engine[L]) IthVar(i int, trueLeaf, falseLeaf L) *Ref[L] {
	if i < 0 || int32(i) >= e.varnum {
		e.seterror("variable %d out of range [0,%d)", i, e.varnum)
		return e.newRef(-1)
	}
	e.initref()
	lo := e.pushref(e.constantNode(falseLeaf))
	hi := e.pushref(e.constantNode(trueLeaf))
	res := e.makenode(int32(i), lo, hi)
	e.popref(2)
	return e.newRef(res)
}
