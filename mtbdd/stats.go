// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtbdd

import (
	"fmt"
	"math/big"
)

// Stats returns a short human-readable summary of the engine's node table,
// mirroring the teacher's own Stats()/PrintStats output.
func (e *Engine[L]) Stats() string {
	free := e.freenum
	total := len(e.nodes)
	used := total - free
	ratio := 0.0
	if total > 0 {
		ratio = float64(free) / float64(total) * 100
	}
	return fmt.Sprintf(
		"Varnum:    %d\nAllocated: %d\nProduced:  %d\nFree:      %d (%.3g%%)\nUsed:      %d (%.3g%%)\nLeaves:    %d\n",
		e.varnum, total, e.produced, free, ratio, used, 100-ratio, len(e.leaves.values))
}

// PathCount computes the number of minterms at which f takes a leaf value
// different from the background, using arbitrary-precision arithmetic.
// Adapted nearly verbatim from the teacher's Satcount/satcount: the teacher
// counts satisfying assignments of a Boolean function; we count minterms
// reaching any non-background terminal, which specializes to the same
// computation when the leaf type is bool and background is false.
func (e *Engine[L]) PathCount(f *Ref[L]) *big.Int {
	if !f.Valid() {
		return big.NewInt(0)
	}
	memo := make(map[int]*big.Int)
	count := e.pathcount(f.id, memo)
	factor := new(big.Int).Lsh(big.NewInt(1), uint(e.effectiveLevel(f.id)))
	return factor.Mul(factor, count)
}

// effectiveLevel treats a terminal as sitting at level Varnum(), i.e. below
// every real variable, so the gap arithmetic below counts the don't-care
// variables between a node and the terminal it reaches the same way it
// counts the gap between two internal nodes.
func (e *Engine[L]) effectiveLevel(n int) int32 {
	if e.nodes[n].isTerminal() {
		return e.varnum
	}
	return e.nodes[n].level
}

func (e *Engine[L]) pathcount(n int, memo map[int]*big.Int) *big.Int {
	nd := e.nodes[n]
	if nd.isTerminal() {
		if nd.low == e.backgroundLeaf {
			return big.NewInt(0)
		}
		return big.NewInt(1)
	}
	if res, ok := memo[n]; ok {
		return res
	}
	gap := func(child int) *big.Int {
		g := big.NewInt(0)
		g.SetBit(g, int(e.effectiveLevel(child)-nd.level-1), 1)
		return g
	}
	lowCount := new(big.Int).Mul(gap(nd.low), e.pathcount(nd.low, memo))
	highCount := new(big.Int).Mul(gap(nd.high), e.pathcount(nd.high, memo))
	res := new(big.Int).Add(lowCount, highCount)
	memo[n] = res
	return res
}
