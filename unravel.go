package finch

import "github.com/finchkit/finch/internal"

// Unravel recursively replaces every channel inside v with its current read
// value. Sequences become []any, mappings become map[Key]any, recursion
// stops at scalars.
func Unravel(v any) any {
	return internal.Unravel(v)
}
