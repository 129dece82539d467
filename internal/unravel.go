package internal

import (
	"reflect"
	"slices"
)

// AnyReader is the untyped read surface every channel exposes. The unravel
// visitor tests for it at each node.
type AnyReader interface {
	ReadAny() any
}

// Unravel recursively replaces every channel inside v with its current read
// value. Sequences become []any, mappings become map[Key]any, recursion
// stops at scalars.
func Unravel(v any) any {
	if r, ok := v.(AnyReader); ok {
		return Unravel(r.ReadAny())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Unravel(rv.Index(i).Interface())
		}
		return out
	case reflect.Map:
		out := make(map[Key]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().Interface()] = Unravel(iter.Value().Interface())
		}
		return out
	}

	return v
}

// SortedKeys returns a mapping's keys in deterministic order: int keys
// numerically first, then string keys lexicographically. Go's map iteration
// order is useless for reproducible derivations.
func SortedKeys(entries map[Key]any) []Key {
	ints := make([]int, 0, len(entries))
	strs := make([]string, 0, len(entries))

	for k := range entries {
		switch k := k.(type) {
		case int:
			ints = append(ints, k)
		case string:
			strs = append(strs, k)
		}
	}

	slices.Sort(ints)
	slices.Sort(strs)

	keys := make([]Key, 0, len(ints)+len(strs))
	for _, k := range ints {
		keys = append(keys, k)
	}
	for _, k := range strs {
		keys = append(keys, k)
	}

	return keys
}
