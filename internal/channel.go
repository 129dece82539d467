package internal

import "go.uber.org/zap"

type ChannelKind int

const (
	KindSource ChannelKind = iota
	KindDerived
)

// edge is one outgoing connection: the downstream channel, the connector
// labeling the edge, and the input position this edge feeds downstream.
type edge struct {
	to   *Channel
	conn Connector
	pos  int
}

// Channel is a node in the reactive graph. Sources and derived channels
// share this header and dispatch on kind.
type Channel struct {
	runtime *Runtime
	id      int
	kind    ChannelKind

	cache    any
	hasCache bool
	dirty    Index
	edges    []edge
	eager    bool

	// runtime clock at the last mutation or recompute, for log correlation
	version int

	// source
	value any

	// derived
	inputs    []*Channel
	compute   func(vals []any) any
	computeAt func(vals []any, cache any, key Key) any
}

// ReadAny is Read under the interface the unravel visitor tests for.
func (c *Channel) ReadAny() any { return c.Read() }

// MarkDirty merges region into the channel's dirty set and propagates the
// change downstream in edge insertion order. Eager channels force their own
// materialization after every downstream has been notified.
func (c *Channel) MarkDirty(region Index) {
	c.dirty = Merge(c.dirty, region)

	c.runtime.logger.Debug("mark dirty",
		zap.Int("channel", c.id),
		zap.Stringer("region", region),
		zap.Stringer("dirty", c.dirty))

	c.propagate(Dirty(region))
}

// propagate walks the outgoing edges in insertion order. Each connector
// translates op into the downstream effect; the mutator reshapes the
// downstream cache before the downstream merges its dirty region and
// recurses. The eager read comes last so every descendant already carries
// its dirty flag when forced.
func (c *Channel) propagate(op Operation) {
	for _, e := range c.edges {
		mutate, region := e.conn(e.pos, op)
		e.to.applyMutation(mutate)
		e.to.MarkDirty(region)
	}

	if c.eager {
		c.runtime.logger.Debug("eager read", zap.Int("channel", c.id))
		c.Read()
	}
}

// applyMutation reshapes the cache ahead of the dirty merge. A channel that
// never materialized has nothing to reshape.
func (c *Channel) applyMutation(m Mutator) {
	if m == nil || !c.hasCache {
		return
	}

	c.cache = m(c.cache)
}
