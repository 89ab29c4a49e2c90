// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package timbuk is a textual Timbuk-format collaborator: a thin reader
// (Parse) and writer (Write/FWrite) sitting entirely outside the automaton
// core, talking to it only through automaton.Automaton's public methods
// (AddState/LookupState/SetInitial/AddTransition to read;
// States/StateLabel/Initials/Transitions to write) and the Universe's
// Alphabet. A source
// file declares a ranked alphabet (Ops), an automaton name, a state set, an
// optional final-state subset, and a list of transition rules
// `sym(q1,...,qn) -> q`; arity is checked against the Ops declaration as
// each rule is read.
package timbuk
