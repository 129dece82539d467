package finch

import "github.com/finchkit/finch/internal"

// Mapping is a keyed, writable collection source. Key writes emit the
// touched key so identity-connected derivations patch only that entry.
type Mapping[V any] struct {
	ch *internal.Channel
}

// Entry is one key/value pair of a mapping.
type Entry[V any] struct {
	Key   Key
	Value V
}

func NewMapping[V any](initial map[Key]V, opts ...Option) *Mapping[V] {
	entries := make(map[Key]any, len(initial))
	for k, v := range initial {
		entries[k] = v
	}

	return &Mapping[V]{newSource(entries, opts)}
}

func (m *Mapping[V]) Read() map[Key]V {
	entries := m.ch.Read().(map[Key]any)

	out := make(map[Key]V, len(entries))
	for k, v := range entries {
		out[k] = as[V](v)
	}

	return out
}

// Write replaces the whole mapping, invalidating every downstream region.
func (m *Mapping[V]) Write(entries map[Key]V) {
	replaced := make(map[Key]any, len(entries))
	for k, v := range entries {
		replaced[k] = v
	}

	m.ch.Write(replaced)
}

// SetAt replaces the value at k, dirtying only that key downstream.
func (m *Mapping[V]) SetAt(k Key, v V) {
	m.ch.SetAt(k, v)
}

// Delete removes k. The key set changes shape, so the whole downstream
// region is invalidated.
func (m *Mapping[V]) Delete(k Key) {
	m.ch.Delete(k)
}

// Keys derives the key list in deterministic order: int keys numerically
// first, then string keys lexicographically.
func (m *Mapping[V]) Keys() *Derived[[]Key] {
	ch, _ := internal.GetRuntime().NewDerived([]*internal.Channel{m.ch}, func(vals []any) any {
		return internal.SortedKeys(vals[0].(map[Key]any))
	}, internal.DerivedConfig{})

	return &Derived[[]Key]{ch}
}

// Values derives the value list, ordered like Keys.
func (m *Mapping[V]) Values() *Derived[[]V] {
	ch, _ := internal.GetRuntime().NewDerived([]*internal.Channel{m.ch}, func(vals []any) any {
		entries := vals[0].(map[Key]any)

		out := make([]V, 0, len(entries))
		for _, k := range internal.SortedKeys(entries) {
			out = append(out, as[V](entries[k]))
		}
		return out
	}, internal.DerivedConfig{})

	return &Derived[[]V]{ch}
}

// Entries derives the key/value pairs, ordered like Keys.
func (m *Mapping[V]) Entries() *Derived[[]Entry[V]] {
	ch, _ := internal.GetRuntime().NewDerived([]*internal.Channel{m.ch}, func(vals []any) any {
		entries := vals[0].(map[Key]any)

		out := make([]Entry[V], 0, len(entries))
		for _, k := range internal.SortedKeys(entries) {
			out = append(out, Entry[V]{Key: k, Value: as[V](entries[k])})
		}
		return out
	}, internal.DerivedConfig{})

	return &Derived[[]Entry[V]]{ch}
}

func (m *Mapping[V]) ReadAny() any           { return m.ch.Read() }
func (m *Mapping[V]) raw() *internal.Channel { return m.ch }

// DerivedMapping is the identity-connected image of a mapping. Its cache is
// patched per key when upstream changes are fine-grained.
type DerivedMapping[V any] struct {
	ch *internal.Channel
}

// MapMapping derives the value-wise image of m under fn. After an upstream
// SetAt, only the touched key is recomputed on the next read.
func MapMapping[V, U any](m *Mapping[V], fn func(V) U) *DerivedMapping[U] {
	return &DerivedMapping[U]{internal.MapMapping(m.ch, func(v any) any {
		return fn(as[V](v))
	})}
}

func (d *DerivedMapping[V]) Read() map[Key]V {
	entries := d.ch.Read().(map[Key]any)

	out := make(map[Key]V, len(entries))
	for k, v := range entries {
		out[k] = as[V](v)
	}

	return out
}

func (d *DerivedMapping[V]) ReadAny() any           { return d.ch.Read() }
func (d *DerivedMapping[V]) raw() *internal.Channel { return d.ch }
