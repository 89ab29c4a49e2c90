// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package automaton

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sfta-go/sfta/mtbdd"
)

// Symbol is a ranked alphabet letter encoded as a fixed-width bit-vector,
// most-significant-variable-first.
type Symbol struct {
	Name  string
	Arity int
	code  mtbdd.Assignment
}

// Cube returns the fully-specified variable assignment denoting s.
func (s *Symbol) Cube() mtbdd.Assignment { return s.code }

func (s *Symbol) String() string { return fmt.Sprintf("%s:%d", s.Name, s.Arity) }

// Alphabet assigns every (name, arity) pair a fresh bit-vector code of a
// fixed width W, in allocation order, and can decode a concrete code back
// to the Symbol that produced it.
type Alphabet struct {
	width   int
	symbols map[string]*Symbol
	byCode  map[string]*Symbol
	order   []*Symbol
	next    uint64
}

// NewAlphabet creates an Alphabet able to encode up to 2^width symbols.
func NewAlphabet(width int) *Alphabet {
	return &Alphabet{
		width:   width,
		symbols: make(map[string]*Symbol),
		byCode:  make(map[string]*Symbol),
	}
}

// Width returns W, the number of variables a symbol occupies.
func (a *Alphabet) Width() int { return a.width }

// Universal returns the all-don't-care cube of width W, the "universal
// symbol" meaning "for every symbol value".
func (a *Alphabet) Universal() mtbdd.Assignment { return mtbdd.NewCube(a.width) }

func rankedKey(name string, arity int) string { return name + "/" + strconv.Itoa(arity) }

// Symbol returns the Symbol for (name, arity), allocating a fresh code the
// first time this pair is seen.
func (a *Alphabet) Symbol(name string, arity int) (*Symbol, error) {
	k := rankedKey(name, arity)
	if s, ok := a.symbols[k]; ok {
		return s, nil
	}
	if a.next >= uint64(1)<<uint(a.width) {
		return nil, fmt.Errorf("alphabet: width %d exhausted, cannot encode a %dth symbol: %w", a.width, a.next+1, mtbdd.ErrMemory)
	}
	code := encodeSymbol(a.next, a.width)
	s := &Symbol{Name: name, Arity: arity, code: code}
	a.symbols[k] = s
	a.byCode[cubeKey(code)] = s
	a.order = append(a.order, s)
	a.next++
	return s, nil
}

// Lookup returns the Symbol for (name, arity) without allocating one.
func (a *Alphabet) Lookup(name string, arity int) (*Symbol, bool) {
	s, ok := a.symbols[rankedKey(name, arity)]
	return s, ok
}

// Decode returns the Symbol whose code exactly matches cube, if any.
func (a *Alphabet) Decode(cube mtbdd.Assignment) (*Symbol, bool) {
	s, ok := a.byCode[cubeKey(cube)]
	return s, ok
}

// Symbols returns every symbol allocated so far, in allocation order.
func (a *Alphabet) Symbols() []*Symbol {
	out := make([]*Symbol, len(a.order))
	copy(out, a.order)
	return out
}

func encodeSymbol(v uint64, width int) mtbdd.Assignment {
	a := make(mtbdd.Assignment, width)
	for i := 0; i < width; i++ {
		bit := (v >> uint(width-1-i)) & 1
		if bit == 1 {
			a[i] = mtbdd.One
		} else {
			a[i] = mtbdd.Zero
		}
	}
	return a
}

func cubeKey(a mtbdd.Assignment) string {
	var b strings.Builder
	for _, l := range a {
		switch l {
		case mtbdd.Zero:
			b.WriteByte('0')
		case mtbdd.One:
			b.WriteByte('1')
		default:
			b.WriteByte('*')
		}
	}
	return b.String()
}
