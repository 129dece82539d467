package internal

import (
	"fmt"
	"slices"
)

// Key identifies a slot in a collection-valued channel.
// Sequences use int indices, mappings use int or string keys.
type Key = any

type IndexKind int

const (
	IndexNone IndexKind = iota
	IndexAll
	IndexKeys
)

// Index describes which region of a channel's value a change touches:
// everything, nothing, or a finite list of keys.
type Index struct {
	kind IndexKind
	keys []Key
}

func None() Index { return Index{kind: IndexNone} }
func All() Index  { return Index{kind: IndexAll} }

// Keys builds a finite region, deduplicated preserving first occurrence.
func Keys(keys ...Key) Index {
	deduped := make([]Key, 0, len(keys))
	for _, k := range keys {
		if !slices.Contains(deduped, k) {
			deduped = append(deduped, k)
		}
	}

	return Index{kind: IndexKeys, keys: deduped}
}

// KeyRange builds Keys(from, from+1, ..., to-1).
func KeyRange(from, to int) Index {
	keys := make([]Key, 0, max(0, to-from))
	for i := from; i < to; i++ {
		keys = append(keys, i)
	}

	return Keys(keys...)
}

func (ix Index) Kind() IndexKind { return ix.kind }

// Keys returns the finite key list. Empty unless Kind is IndexKeys.
func (ix Index) Keys() []Key { return ix.keys }

func (ix Index) Empty() bool {
	return ix.kind == IndexNone || (ix.kind == IndexKeys && len(ix.keys) == 0)
}

func (ix Index) Has(k Key) bool {
	switch ix.kind {
	case IndexAll:
		return true
	case IndexNone:
		return false
	}

	return slices.Contains(ix.keys, k)
}

// Normalize collapses an empty key list to None.
func (ix Index) Normalize() Index {
	if ix.Empty() {
		return None()
	}

	return ix
}

func (ix Index) String() string {
	switch ix.kind {
	case IndexAll:
		return "all"
	case IndexKeys:
		return fmt.Sprintf("keys%v", ix.keys)
	}

	return "none"
}

// Merge unions two regions. All absorbs, None is the identity, finite lists
// concatenate keeping first-occurrence order.
func Merge(a, b Index) Index {
	if a.kind == IndexAll || b.kind == IndexAll {
		return All()
	}

	a, b = a.Normalize(), b.Normalize()
	if a.kind == IndexNone {
		return b
	}
	if b.kind == IndexNone {
		return a
	}

	keys := slices.Clone(a.keys)
	for _, k := range b.keys {
		if !slices.Contains(keys, k) {
			keys = append(keys, k)
		}
	}

	return Index{kind: IndexKeys, keys: keys}.Normalize()
}
