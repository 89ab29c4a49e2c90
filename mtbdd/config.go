// Copyright (c) 2021 Silvano DAL ZILIO
//
// MIT License

package mtbdd

import "github.com/sfta-go/sfta/internal/logging"

// _MINFREENODES is the minimal number of nodes (%) that has to be left after
// a garbage collect unless a resize should be done.
const _MINFREENODES int = 20

// _DEFAULTMAXNODEINC is the default value for the maximal increase in the
// number of nodes during a resize.
const _DEFAULTMAXNODEINC int = 1 << 20

// configs stores the configurable parameters of an Engine.
type configs struct {
	varnum          int // number of variables known at creation time
	nodesize        int // initial number of nodes in the table
	cachesize       int // initial size of the computed table
	cacheratio      int // ratio (%) between cache size and node table size on resize, 0 if fixed
	maxnodesize     int // maximum total number of nodes, 0 if unbounded
	maxnodeincrease int // maximum increase in node count per resize, 0 if unbounded
	minfreenodes    int // minimum free-node percentage to keep after a GC before resizing
	sink            logging.Sink
}

func makeconfigs(varnum int) *configs {
	c := &configs{varnum: varnum}
	c.minfreenodes = _MINFREENODES
	c.maxnodeincrease = _DEFAULTMAXNODEINC
	c.nodesize = 2*varnum + 2
	c.sink = logging.NullSink{}
	return c
}

// Option configures an Engine at creation time.
type Option func(*configs)

// Nodesize sets a preferred initial size for the node table.
func Nodesize(size int) Option {
	return func(c *configs) {
		if size >= 2*c.varnum+2 {
			c.nodesize = size
		}
	}
}

// Maxnodesize bounds the total number of nodes the engine may ever allocate.
// Zero (the default) means unbounded.
func Maxnodesize(size int) Option {
	return func(c *configs) { c.maxnodesize = size }
}

// Maxnodeincrease bounds how many nodes a single resize may add. Zero means
// unbounded.
func Maxnodeincrease(size int) Option {
	return func(c *configs) { c.maxnodeincrease = size }
}

// Minfreenodes sets the percentage of free nodes that must remain after a
// garbage collection before the engine resizes the node table.
func Minfreenodes(ratio int) Option {
	return func(c *configs) { c.minfreenodes = ratio }
}

// Cachesize records a preferred initial number of entries for the computed
// table. The computed table is a set of Go maps that grow on demand and are
// not pre-sized from this value.
func Cachesize(size int) Option {
	return func(c *configs) { c.cachesize = size }
}

// Cacheratio records a ratio (%) of computed-table entries per node-table
// slot. The engine does not read it: the computed table is not resized
// when the node table is.
func Cacheratio(ratio int) Option {
	return func(c *configs) { c.cacheratio = ratio }
}

// WithSink attaches a structured logging sink to the engine. The default
// sink discards every event.
func WithSink(sink logging.Sink) Option {
	return func(c *configs) {
		if sink != nil {
			c.sink = sink
		}
	}
}
