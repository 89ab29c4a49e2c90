// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtbdd

import "errors"

// ErrMemory is returned when the engine cannot grow the node table or the
// leaf store any further. It is fatal: the engine is left in a consistent
// but unusable state, per spec.
var ErrMemory = errors.New("mtbdd: unable to free memory or resize the node table")

// ErrMisuse wraps every fatal misuse condition: dereferencing a node the
// engine does not know about, mixing nodes from two different engines,
// asking for a tuple out of an element variant, or arity mismatches between
// tuples the caller expects to be comparable.
var ErrMisuse = errors.New("mtbdd: misuse")

// errResize and errReset name the two node-table events, a garbage
// collection followed by a resize (errResize) and a garbage collection alone
// (errReset). The engine neither returns nor logs them; gc and resize log
// their own plain messages.
var errResize = errors.New("mtbdd: cache reset after resize")
var errReset = errors.New("mtbdd: cache reset after gc")
