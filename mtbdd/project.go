// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtbdd

// Project existentially (or additively; the combiner decides) abstracts the
// variables in vars from f, folding both cofactors at each abstracted
// variable together with op. op must be commutative and associative. This
// mirrors the teacher's quant/quantset2cache: rather than clearing a
// per-variable membership array before every call, each call stamps the
// variables it cares about with a fresh generation id.
func (e *Engine[L]) Project(f *Ref[L], vars []int, op BinaryOp[L]) *Ref[L] {
	if !e.checkptr(f.id) || f.engine != e {
		e.seterror("Project: operand %d not known to this engine", f.id)
		return e.newRef(-1)
	}
	if len(vars) == 0 {
		return f.Dup()
	}
	e.projID++
	if e.projID == 0 { // wrapped around; extremely unlikely but handled like the teacher does
		e.projMark = make([]int32, e.varnum)
		e.projID = 1
	}
	e.projLast = 0
	for _, v := range vars {
		if v < 0 || int32(v) >= e.varnum {
			e.seterror("Project: variable %d out of range", v)
			return e.newRef(-1)
		}
		e.projMark[v] = e.projID
		if int32(v) > e.projLast {
			e.projLast = int32(v)
		}
	}
	setID := projectSetID(vars, op.ID)
	e.initref()
	e.pushref(f.id)
	res := e.project(f.id, op, setID)
	e.popref(1)
	if res < 0 {
		return e.newRef(-1)
	}
	return e.newRef(res)
}

// projectSetID folds a variable set and an operator id into a single int
// used only to distinguish computed-table entries; it need not be perfectly
// collision free since a false cache hit is impossible (the table is also
// keyed by the node id f, and the projMark/projID generation check below
// guards correctness independent of this key).
func projectSetID(vars []int, opID int) int {
	h := opID*1000003 + len(vars)
	for _, v := range vars {
		h = h*1000003 + v + 1
	}
	return h
}

func (e *Engine[L]) project(n int, op BinaryOp[L], setID int) int {
	nd := e.nodes[n]
	if nd.isTerminal() || nd.level > e.projLast {
		return n
	}
	key := projectKey{op: op.ID, f: n, vars: setID}
	if res, ok := e.cache.project[key]; ok {
		return res
	}
	low := e.pushref(e.project(nd.low, op, setID))
	high := e.pushref(e.project(nd.high, op, setID))
	var res int
	if e.projMark[nd.level] == e.projID {
		res = e.applyBinary(low, high, op)
	} else {
		res = e.makenode(nd.level, low, high)
	}
	e.popref(2)
	if e.err == nil {
		e.cache.project[key] = res
	}
	return res
}
