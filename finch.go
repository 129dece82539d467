// Package finch is a lazy, push/pull, fine-grained reactive dataflow
// engine. Channels form an acyclic graph: sources hold writable values,
// derived channels recompute on demand. Updates carry an index specifier
// describing which portion of a collection changed, so downstream
// recomputation can be restricted to the affected keys.
package finch

import (
	"go.uber.org/zap"

	"github.com/finchkit/finch/internal"
)

func as[T any](v any) T {
	if v == nil {
		var zero T
		return zero
	}

	return v.(T)
}

// Key identifies a slot in a collection-valued channel: an int index or a
// string name.
type Key = internal.Key

// Index describes which region of a channel's value a change touches.
type Index = internal.Index

// Operation describes a structural or invalidation change on a channel.
type Operation = internal.Operation

// Mutator patches a downstream cache ahead of a dirty merge.
type Mutator = internal.Mutator

// Connector labels an edge, translating upstream operations into the
// downstream cache mutation and dirty region.
type Connector = internal.Connector

// ErrNoIncomingChannels is returned when deriving from zero inputs.
var ErrNoIncomingChannels = internal.ErrNoIncomingChannels

func All() Index             { return internal.All() }
func None() Index            { return internal.None() }
func Keys(keys ...Key) Index { return internal.Keys(keys...) }
func Merge(a, b Index) Index { return internal.Merge(a, b) }

func Clear(region Index) Operation { return internal.Clear(region) }
func Dirty(region Index) Operation { return internal.Dirty(region) }

func Splice(start, deleted, inserted int) Operation {
	return internal.Splice(start, deleted, inserted)
}

func Swap(i, j int) Operation     { return internal.Swap(i, j) }
func Move(from, to int) Operation { return internal.Move(from, to) }

// PassAll is the default connector: any upstream change invalidates the
// whole downstream value.
func PassAll(pos int, op Operation) (Mutator, Index) {
	return internal.PassAll(pos, op)
}

// Identity returns the connector for one-to-one collection derivations.
func Identity(ch AnyChannel) Connector {
	return internal.Identity(ch.raw())
}

// AnyChannel is the untyped view of a channel, usable as a derived
// channel's input regardless of element type.
type AnyChannel interface {
	// ReadAny returns the channel's current value untyped.
	ReadAny() any

	raw() *internal.Channel
}

// Option configures a channel at construction.
type Option func(*internal.DerivedConfig)

// WithEager marks the channel eager: every dirty propagation forces its
// materialization before the originating mutation returns.
func WithEager() Option {
	return func(cfg *internal.DerivedConfig) { cfg.Eager = true }
}

// WithConnectors labels the input edges in position order. Missing or nil
// positions keep the default all-region connector.
func WithConnectors(conns ...Connector) Option {
	return func(cfg *internal.DerivedConfig) { cfg.Connectors = conns }
}

// WithComputeAt installs a per-key patch function, enabling index-level
// recompute when the dirty set is a finite key list. T must match the
// derived channel's value type.
func WithComputeAt[T any](fn func(vals []any, cache T, key Key) T) Option {
	return func(cfg *internal.DerivedConfig) {
		cfg.ComputeAt = func(vals []any, cache any, key Key) any {
			return fn(vals, as[T](cache), key)
		}
	}
}

type Source[T any] struct {
	ch *internal.Channel
}

// NewSource creates a writable scalar channel holding initial.
func NewSource[T any](initial T, opts ...Option) *Source[T] {
	return &Source[T]{newSource(initial, opts)}
}

// Read returns the most recently written value.
func (s *Source[T]) Read() T {
	return as[T](s.ch.Read())
}

// Write replaces the value and invalidates every downstream channel.
func (s *Source[T]) Write(v T) {
	s.ch.Write(v)
}

func (s *Source[T]) ReadAny() any           { return s.ch.Read() }
func (s *Source[T]) raw() *internal.Channel { return s.ch }

type Derived[T any] struct {
	ch *internal.Channel
}

// Derive constructs a lazy channel computing over inputs. compute receives
// the input values in position order; its first invocation happens on the
// first read. Deriving from zero inputs returns ErrNoIncomingChannels.
func Derive[T any](inputs []AnyChannel, compute func(vals []any) T, opts ...Option) (*Derived[T], error) {
	cfg := internal.DerivedConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	raws := make([]*internal.Channel, len(inputs))
	for i, in := range inputs {
		raws[i] = in.raw()
	}

	ch, err := internal.GetRuntime().NewDerived(raws, func(vals []any) any {
		return compute(vals)
	}, cfg)
	if err != nil {
		return nil, err
	}

	return &Derived[T]{ch}, nil
}

// MustDerive is Derive for fixed topologies known to be non-empty.
func MustDerive[T any](inputs []AnyChannel, compute func(vals []any) T, opts ...Option) *Derived[T] {
	d, err := Derive(inputs, compute, opts...)
	if err != nil {
		panic(err)
	}

	return d
}

// Read returns the channel's value, recomputing if any region is dirty.
func (d *Derived[T]) Read() T {
	return as[T](d.ch.Read())
}

func (d *Derived[T]) ReadAny() any           { return d.ch.Read() }
func (d *Derived[T]) raw() *internal.Channel { return d.ch }

// SetLogger installs a logger on the calling goroutine's runtime. Graph
// events (channel creation, dirty propagation, recompute mode, eager
// forcing) are reported at debug level. Pass nil to silence them again.
func SetLogger(l *zap.Logger) {
	internal.GetRuntime().SetLogger(l)
}

func newSource(initial any, opts []Option) *internal.Channel {
	cfg := internal.DerivedConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return internal.GetRuntime().NewSource(initial, cfg.Eager)
}
