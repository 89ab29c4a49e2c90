// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtbdd

import (
	"testing"

	"github.com/sfta-go/sfta/internal/logging"
)

func boolAnd() BinaryOp[bool] {
	return BinaryOp[bool]{ID: 0, Apply: func(a, b bool) bool { return a && b }}
}
func boolOr() BinaryOp[bool] {
	return BinaryOp[bool]{ID: 1, Apply: func(a, b bool) bool { return a || b }}
}
func boolMin() BinaryOp[bool] {
	return BinaryOp[bool]{ID: 2, Apply: func(a, b bool) bool { return a && b }}
}
func boolMax() BinaryOp[bool] {
	return BinaryOp[bool]{ID: 3, Apply: func(a, b bool) bool { return a || b }}
}

func newBoolEngine(varnum int) *Engine[bool] {
	e := New[bool]()
	for i := 0; i < varnum; i++ {
		e.CreateVariable()
	}
	return e
}

// S1: apply(f, g, min) == f, apply(f, g, max) == g, for f = x0 /\ x1, g = x0 \/ x1.
func TestApplyMinMax(t *testing.T) {
	e := newBoolEngine(2)
	x0 := e.IthVar(0, true, false)
	x1 := e.IthVar(1, true, false)
	f := e.ApplyBinary(x0, x1, boolAnd())
	g := e.ApplyBinary(x0, x1, boolOr())

	min := e.ApplyBinary(f, g, boolMin())
	max := e.ApplyBinary(f, g, boolMax())

	if !SameNode(min, f) {
		t.Fatalf("apply(f,g,min) should canonicalize to f")
	}
	if !SameNode(max, g) {
		t.Fatalf("apply(f,g,max) should canonicalize to g")
	}
}

// apply_binary(constant(a), constant(b), op) == constant(op(a,b))
func TestApplyConstants(t *testing.T) {
	e := New[int]()
	add := BinaryOp[int]{ID: 0, Apply: func(a, b int) int { return a + b }}
	a := e.Constant(3)
	b := e.Constant(4)
	res := e.ApplyBinary(a, b, add)
	v, ok := res.IsTerminal()
	if !ok || v != 7 {
		t.Fatalf("expected constant 7, got %v (terminal=%v)", v, ok)
	}
}

// apply_binary(f, background_root, union_op) == f
func TestApplyBackgroundIdentity(t *testing.T) {
	e := New[int]()
	e.SetBackground(0)
	union := BinaryOp[int]{ID: 0, Apply: func(a, b int) int { return a | b }}
	e.CreateVariable()
	f := e.IthVar(0, 7, 0)
	bg := e.Background()
	res := e.ApplyBinary(f, bg, union)
	if !SameNode(res, f) {
		t.Fatalf("apply(f, background, union) should equal f")
	}
}

// Canonicity: two Refs with the same semantic function share the same id.
func TestCanonicity(t *testing.T) {
	e := newBoolEngine(2)
	x0a := e.IthVar(0, true, false)
	x0b := e.IthVar(0, true, false)
	if x0a.ID() != x0b.ID() {
		t.Fatalf("two constructions of the same variable should share a node id")
	}
}

// After dropping every root a test creates, all nodes should become free on
// the next GC.
func TestReferenceAccounting(t *testing.T) {
	e := newBoolEngine(4)
	var roots []*Ref[bool]
	for i := 0; i < 4; i++ {
		roots = append(roots, e.IthVar(i, true, false))
	}
	combo := e.ApplyBinary(roots[0], roots[1], boolAnd())
	roots = append(roots, combo)
	for _, r := range roots {
		r.Release()
	}
	e.gc()
	// Only the background node keeps a permanent reference; every node this
	// test built should have been swept.
	if e.freenum != len(e.nodes)-1 {
		t.Fatalf("expected all but the background node to be free, got %d free of %d", e.freenum, len(e.nodes))
	}
}

// S6-style leak detection: create N roots, drop N-1, Shutdown should warn
// with exactly one leaked reference.
type countingSink struct {
	warnings int
	leaked   int
}

func (s *countingSink) Log(level logging.Level, category logging.Category, msg string, fields logging.Fields) {
	if level == logging.Warn {
		s.warnings++
		if n, ok := fields["unreferenced"].(int); ok {
			s.leaked = n
		}
	}
}

func TestLeakDetection(t *testing.T) {
	sink := &countingSink{}
	e := New[int](WithSink(sink))
	for i := 0; i < 10; i++ {
		e.CreateVariable()
	}
	var roots []*Ref[int]
	for i := 0; i < 10; i++ {
		roots = append(roots, e.IthVar(i%10, i, 0))
	}
	for i := 0; i < len(roots)-1; i++ {
		roots[i].Release()
	}
	e.Shutdown()
	if sink.warnings != 1 {
		t.Fatalf("expected exactly one leak warning, got %d", sink.warnings)
	}
	if sink.leaked != 1 {
		t.Fatalf("expected 1 leaked reference, got %d", sink.leaked)
	}
}

func TestSetOnCubeAndMinterms(t *testing.T) {
	e := New[int]()
	for i := 0; i < 2; i++ {
		e.CreateVariable()
	}
	bg := e.Background()
	union := func(old, v int) int { return old | v }
	cube := Assignment{One, Any} // x0=1, x1=*
	f := e.SetOnCube(bg, cube, 5, union)

	seen := map[string]int{}
	e.Minterms(f, func(a Assignment, v int) {
		key := ""
		for _, l := range a {
			switch l {
			case Zero:
				key += "0"
			case One:
				key += "1"
			default:
				key += "*"
			}
		}
		seen[key] = v
	})
	if v, ok := seen["1*"]; !ok || v != 5 {
		t.Fatalf("expected cube 1* -> 5, got %v (seen=%v)", v, seen)
	}
}
