// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

/*
Package mtbdd implements a shared, content-addressed Multi-Terminal Binary
Decision Diagram (MTBDD) engine: a reduced, ordered DAG over a fixed set of
Boolean variables whose leaves carry values of an arbitrary comparable type
instead of just {0,1}.

Basics

An Engine has a fixed variable order, grown on demand with CreateVariable.
Every operation returns a Ref, a scoped handle that pins one node of the DAG
against reclamation for as long as it is held; dropping the last Ref to a
node makes it eligible for garbage collection. Two Refs with structurally
identical functions always resolve to the same underlying node (the
hash-consing, or "unicity", invariant).

The engine supports the same shape of operations as a classical shared BDD
package (apply, existential quantification, node iteration) generalized to
multi-terminal leaves: ApplyBinary and ApplyMonadic take a caller-supplied
leaf operator instead of a fixed Boolean truth table, and Project existentially
or additively abstracts a set of variables using a caller-supplied, assumed
commutative and associative, leaf combiner.

Like dalzilio/rudd, on which this package's kernel is modeled, we do our own
memory management instead of leaning on CGo: node creation goes through a
single unicity table, apply results are memoized in a computed table, and
garbage collection is a mark-and-sweep pass triggered when the node table runs
out of free slots.
*/
package mtbdd
