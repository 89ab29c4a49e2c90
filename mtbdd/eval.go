// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtbdd

// Eval follows a fully-specified assignment down from f's root and returns
// the leaf value reached. It is the point-evaluation complement to
// Minterms/SetOnCube: callers that already know the exact minterm they care
// about (e.g. decoding one particular alphabet symbol back out of a
// transition root) get it without paying for a full minterm walk and
// without risking the ambiguity of a compacted cube spanning more than one
// concrete symbol. Positions of a beyond f's reach, or marked Any, are
// treated as Zero.
func (e *Engine[L]) Eval(f *Ref[L], a Assignment) L {
	n := f.id
	for !e.nodes[n].isTerminal() {
		lvl := e.nodes[n].level
		lit := Zero
		if int(lvl) < len(a) {
			lit = a[lvl]
		}
		if lit == One {
			n = e.nodes[n].high
		} else {
			n = e.nodes[n].low
		}
	}
	return e.leaves.value(e.nodes[n].low)
}
