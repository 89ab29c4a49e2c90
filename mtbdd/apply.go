// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtbdd

// ApplyBinary computes the MTBDD for λx. op(f(x), g(x)). Recursion descends
// on the smaller of the top variables of f and g; when both cofactors reach
// a terminal simultaneously the result is the terminal op(val(f), val(g)).
// f and g must belong to this engine.
func (e *Engine[L]) ApplyBinary(f, g *Ref[L], op BinaryOp[L]) *Ref[L] {
	if !e.checkptr(f.id) || f.engine != e {
		e.seterror("ApplyBinary: left operand %d not known to this engine", f.id)
		return e.newRef(-1)
	}
	if !e.checkptr(g.id) || g.engine != e {
		e.seterror("ApplyBinary: right operand %d not known to this engine", g.id)
		return e.newRef(-1)
	}
	e.initref()
	e.pushref(f.id)
	e.pushref(g.id)
	res := e.applyBinary(f.id, g.id, op)
	e.popref(2)
	if res < 0 {
		return e.newRef(-1)
	}
	return e.newRef(res)
}

func (e *Engine[L]) applyBinary(f, g int, op BinaryOp[L]) int {
	nf, ng := e.nodes[f], e.nodes[g]
	if nf.isTerminal() && ng.isTerminal() {
		return e.constantNode(op.Apply(e.leaves.value(nf.low), e.leaves.value(ng.low)))
	}
	if e.err != nil {
		return -1
	}
	key := binaryKey{op: op.ID, f: f, g: g}
	if res, ok := e.cache.binary[key]; ok {
		return res
	}
	var top int32
	switch {
	case nf.isTerminal():
		top = ng.level
	case ng.isTerminal():
		top = nf.level
	case nf.level <= ng.level:
		top = nf.level
	default:
		top = ng.level
	}
	flow, fhigh := e.cofactor(f, top)
	glow, ghigh := e.cofactor(g, top)
	low := e.pushref(e.applyBinary(flow, glow, op))
	high := e.pushref(e.applyBinary(fhigh, ghigh, op))
	res := e.makenode(top, low, high)
	e.popref(2)
	if e.err == nil {
		e.cache.binary[key] = res
	}
	return res
}

// ApplyMonadic computes the MTBDD for λx. op(f(x)).
func (e *Engine[L]) ApplyMonadic(f *Ref[L], op MonadicOp[L]) *Ref[L] {
	if !e.checkptr(f.id) || f.engine != e {
		e.seterror("ApplyMonadic: operand %d not known to this engine", f.id)
		return e.newRef(-1)
	}
	e.initref()
	e.pushref(f.id)
	res := e.applyMonadic(f.id, op)
	e.popref(1)
	if res < 0 {
		return e.newRef(-1)
	}
	return e.newRef(res)
}

func (e *Engine[L]) applyMonadic(f int, op MonadicOp[L]) int {
	nf := e.nodes[f]
	if nf.isTerminal() {
		return e.constantNode(op.Apply(e.leaves.value(nf.low)))
	}
	if e.err != nil {
		return -1
	}
	key := monadicKey{op: op.ID, f: f}
	if res, ok := e.cache.monadic[key]; ok {
		return res
	}
	low := e.pushref(e.applyMonadic(nf.low, op))
	high := e.pushref(e.applyMonadic(nf.high, op))
	res := e.makenode(nf.level, low, high)
	e.popref(2)
	if e.err == nil {
		e.cache.monadic[key] = res
	}
	return res
}

// cofactor returns the (low, high) children of n as if n were restricted at
// variable level top: if n genuinely branches on top, its own children are
// returned; otherwise n is independent of top and both cofactors are n
// itself.
func (e *Engine[L]) cofactor(n int, top int32) (int, int) {
	nd := e.nodes[n]
	if nd.isTerminal() || nd.level != top {
		return n, n
	}
	return nd.low, nd.high
}
