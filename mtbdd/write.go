// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtbdd

// SetOnCube assigns value at every minterm consistent with cube, combining
// with whatever leaf value was already there using combine. A cube shorter
// than Varnum() is implicitly padded with Any on the right.
//
// We implement this as a direct cube-restrict-and-rebuild recursion rather
// than literally through ApplyBinary against an indicator MTBDD, because
// building that indicator would itself cost one MTBDD per write; walking the
// cube positions directly against f's own structure reuses exactly the
// subtrees f does not touch, which is the cheaper and more direct rendering
// of the same "rewrite along a cube" idea.
func (e *Engine[L]) SetOnCube(f *Ref[L], cube Assignment, value L, combine func(old, new L) L) *Ref[L] {
	if !e.checkptr(f.id) || f.engine != e {
		e.seterror("SetOnCube: operand %d not known to this engine", f.id)
		return e.newRef(-1)
	}
	e.initref()
	e.pushref(f.id)
	res := e.setOnCube(f.id, 0, cube, value, combine)
	e.popref(1)
	if res < 0 {
		return e.newRef(-1)
	}
	return e.newRef(res)
}

func (e *Engine[L]) setOnCube(n int, level int32, cube Assignment, value L, combine func(old, new L) L) int {
	if level >= e.varnum {
		old := e.leafValue(n)
		return e.constantNode(combine(old, value))
	}
	lit := Any
	if int(level) < len(cube) {
		lit = cube[level]
	}
	lo, hi := e.cofactor(n, level)
	switch lit {
	case Zero:
		newlo := e.pushref(e.setOnCube(lo, level+1, cube, value, combine))
		res := e.makenode(level, newlo, hi)
		e.popref(1)
		return res
	case One:
		newhi := e.pushref(e.setOnCube(hi, level+1, cube, value, combine))
		res := e.makenode(level, lo, newhi)
		e.popref(1)
		return res
	default:
		newlo := e.pushref(e.setOnCube(lo, level+1, cube, value, combine))
		newhi := e.pushref(e.setOnCube(hi, level+1, cube, value, combine))
		res := e.makenode(level, newlo, newhi)
		e.popref(2)
		return res
	}
}

// Minterms calls visit once for every path of f that ends at a leaf different
// from the engine's current background value, with that path's cube: the
// variables the path tests are Zero or One and every other position is Any,
// so one call can cover several minterms. Paths are visited low branch
// before high, in ascending variable order.
func (e *Engine[L]) Minterms(f *Ref[L], visit func(Assignment, L)) {
	if !f.Valid() {
		return
	}
	cube := NewCube(int(e.varnum))
	e.walkMinterms(f.id, cube, visit)
}

func (e *Engine[L]) walkMinterms(n int, partial Assignment, visit func(Assignment, L)) {
	nd := e.nodes[n]
	if nd.isTerminal() {
		v := e.leaves.value(nd.low)
		if nd.low != e.backgroundLeafIndexUnsafe() {
			visit(partial, v)
		}
		return
	}
	partial[nd.level] = Zero
	e.walkMinterms(nd.low, partial, visit)
	partial[nd.level] = One
	e.walkMinterms(nd.high, partial, visit)
	partial[nd.level] = Any
}

func (e *Engine[L]) backgroundLeafIndexUnsafe() int { return e.backgroundLeaf }
