// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

// Package automaton implements symbolic finite tree automata on top of a
// shared mtbdd.Engine: states are dense integers, symbols are fixed-width
// bit-vectors (Alphabet), and each state owns one transition root R(q)
// whose MTBDD maps a symbol to the set of right-hand sides it can fire
// (RHS/RHSSet).
//
// A Universe bundles the engine, alphabet and right-hand-side registry
// several automata need to share in order to be unioned, intersected or
// compared for language inclusion. NewTopDown and NewBottomUp build empty
// automata on a Universe; AddState/AddTransition/SetInitial populate one.
package automaton
