// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package inclusion implements the antichain-based downward
// language-inclusion algorithm over two automaton.Automaton
// values sharing a Universe: a Checker consumes two simulation preorders
// (Preorder) and decides L(As) ⊆ L(Ab) by repeatedly expanding disjuncts
// (p, S), caching included/not-included antichains and a workset for the
// co-inductive cut.
package inclusion
