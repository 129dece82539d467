package finch

import "github.com/finchkit/finch/internal"

// Sequence is an ordered, writable collection source. Structural operations
// emit precise index specifiers so identity-connected derivations recompute
// only the touched slots.
type Sequence[T any] struct {
	ch *internal.Channel
}

func NewSequence[T any](initial []T, opts ...Option) *Sequence[T] {
	items := make([]any, len(initial))
	for i, v := range initial {
		items[i] = v
	}

	return &Sequence[T]{newSource(items, opts)}
}

func (s *Sequence[T]) Read() []T {
	items := s.ch.Read().([]any)

	out := make([]T, len(items))
	for i, v := range items {
		out[i] = as[T](v)
	}

	return out
}

// Write replaces the whole sequence, invalidating every downstream region.
func (s *Sequence[T]) Write(items []T) {
	replaced := make([]any, len(items))
	for i, v := range items {
		replaced[i] = v
	}

	s.ch.Write(replaced)
}

// SetItem replaces the element at index i, dirtying only that index
// downstream.
func (s *Sequence[T]) SetItem(i int, v T) {
	s.ch.SetItem(i, v)
}

// Push appends v, dirtying only the new last index downstream.
func (s *Sequence[T]) Push(v T) {
	s.ch.Push(v)
}

// Insert splices v in at index i. Every element at or after i shifts one
// slot, so indices i through the new end are dirtied downstream.
func (s *Sequence[T]) Insert(i int, v T) {
	s.ch.Insert(i, v)
}

// Swap exchanges the elements at i and j, dirtying exactly those two
// indices downstream.
func (s *Sequence[T]) Swap(i, j int) {
	s.ch.SwapItems(i, j)
}

// Move relocates the element at from to index to, dirtying the shifted span
// downstream.
func (s *Sequence[T]) Move(from, to int) {
	s.ch.MoveItem(from, to)
}

func (s *Sequence[T]) Len() int {
	return len(s.ch.Read().([]any))
}

func (s *Sequence[T]) ReadAny() any           { return s.ch.Read() }
func (s *Sequence[T]) raw() *internal.Channel { return s.ch }

// DerivedSequence is the identity-connected image of a sequence. Its cache
// is patched per index when upstream changes are fine-grained.
type DerivedSequence[T any] struct {
	ch *internal.Channel
}

// MapSequence derives the element-wise image of s under fn. After an
// upstream SetItem, only the touched index is recomputed on the next read.
func MapSequence[T, U any](s *Sequence[T], fn func(T) U) *DerivedSequence[U] {
	return &DerivedSequence[U]{internal.MapSequence(s.ch, func(v any) any {
		return fn(as[T](v))
	})}
}

func (d *DerivedSequence[T]) Read() []T {
	items := d.ch.Read().([]any)

	out := make([]T, len(items))
	for i, v := range items {
		out[i] = as[T](v)
	}

	return out
}

func (d *DerivedSequence[T]) ReadAny() any           { return d.ch.Read() }
func (d *DerivedSequence[T]) raw() *internal.Channel { return d.ch }
