// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtbdd

// computedTable memoizes the results of binary and monadic Apply, and of
// Project, keyed by operator identity plus operand node ids (Component B,
// second half). It is a pure, soft cache: every entry can be dropped at any
// time without changing the semantics of any operation, which is exactly
// what happens on every garbage collection (reset, called from gc, which
// also runs before any resize).
type computedTable struct {
	binary  map[binaryKey]int
	monadic map[monadicKey]int
	project map[projectKey]int
}

type binaryKey struct {
	op   int
	f, g int
}

type monadicKey struct {
	op int
	f  int
}

type projectKey struct {
	op   int
	f    int
	vars int // id of the interned variable set being projected away
}

func newComputedTable() *computedTable {
	return &computedTable{
		binary:  make(map[binaryKey]int),
		monadic: make(map[monadicKey]int),
		project: make(map[projectKey]int),
	}
}

func (c *computedTable) reset() {
	c.binary = make(map[binaryKey]int)
	c.monadic = make(map[monadicKey]int)
	c.project = make(map[projectKey]int)
}
