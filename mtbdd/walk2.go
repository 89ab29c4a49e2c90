// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtbdd

// Walk2 descends f and g together, cofactor by cofactor exactly like
// ApplyBinary, and calls visit once for every region where both reach a
// terminal simultaneously, with the partial cube built up along the way and
// both leaf values. Unlike ApplyBinary it builds no new nodes: it is a
// read-only joint refinement, for callers (the inclusion checker's
// children collector) that need to inspect a pair of leaves together
// rather than combine them into a single new MTBDD. visit returns false to
// abort the walk early.
func (e *Engine[L]) Walk2(f, g *Ref[L], visit func(cube Assignment, lf, lg L) bool) {
	if !f.Valid() || !g.Valid() {
		return
	}
	cube := NewCube(int(e.varnum))
	e.walk2(f.id, g.id, cube, visit)
}

func (e *Engine[L]) walk2(f, g int, partial Assignment, visit func(Assignment, L, L) bool) bool {
	nf, ng := e.nodes[f], e.nodes[g]
	if nf.isTerminal() && ng.isTerminal() {
		return visit(partial, e.leaves.value(nf.low), e.leaves.value(ng.low))
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
	partial[top] = Zero
	if !e.walk2(flow, glow, partial, visit) {
		partial[top] = Any
		return false
	}
	partial[top] = One
	if !e.walk2(fhigh, ghigh, partial, visit) {
		partial[top] = Any
		return false
	}
	partial[top] = Any
	return true
}
