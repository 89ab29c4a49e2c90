// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtbdd

// Lit is one position of a partial Boolean valuation (Component A).
type Lit int8

const (
	Zero Lit = 0
	One  Lit = 1
	Any  Lit = -1 // don't care
)

// Assignment is a partial valuation over a variable range, one Lit per
// variable, ordered by increasing variable index. A fully-specified
// Assignment (no Any) is a minterm; one with k Any positions is a cube
// denoting 2^k minterms.
type Assignment []Lit

// NewCube returns an all-Any Assignment of width w, i.e. the "universal
// symbol" meaning "for every symbol value".
func NewCube(w int) Assignment {
	a := make(Assignment, w)
	for i := range a {
		a[i] = Any
	}
	return a
}

// IsUniversal reports whether a has no fixed positions.
func (a Assignment) IsUniversal() bool {
	for _, l := range a {
		if l != Any {
			return false
		}
	}
	return true
}

// MintermIter enumerates the minterms consistent with a cube, depth-first on
// the don't-care positions, lexicographic on variable index ascending, low
// branch before high. Enumeration is exactly 2^k for k don't-cares and is
// restartable: construct a fresh MintermIter from the same cube to
// enumerate again.
type MintermIter struct {
	result    Assignment
	dontcares []int
	counter   uint64
	total     uint64
}

// NewMintermIter builds an iterator over the minterms of cube. cube is not
// mutated; the iterator owns its own working copy.
func NewMintermIter(cube Assignment) *MintermIter {
	result := make(Assignment, len(cube))
	copy(result, cube)
	var dontcares []int
	for i, l := range cube {
		if l == Any {
			dontcares = append(dontcares, i)
		}
	}
	return &MintermIter{
		result:    result,
		dontcares: dontcares,
		total:     uint64(1) << uint(len(dontcares)),
	}
}

// Next advances the iterator and reports whether a minterm is available. The
// Assignment returned by Minterm is only valid until the next call to Next.
func (it *MintermIter) Next() bool {
	if it.counter >= it.total {
		return false
	}
	k := len(it.dontcares)
	for i, pos := range it.dontcares {
		bit := (it.counter >> uint(k-1-i)) & 1
		if bit == 1 {
			it.result[pos] = One
		} else {
			it.result[pos] = Zero
		}
	}
	it.counter++
	return true
}

// Minterm returns the current minterm. Valid only after a call to Next that
// returned true.
func (it *MintermIter) Minterm() Assignment { return it.result }

// Remaining returns how many minterms this iterator has not yet produced,
// including the current one if Next has not been called since construction.
func (it *MintermIter) Remaining() uint64 { return it.total - it.counter }
