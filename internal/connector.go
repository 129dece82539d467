package internal

import "slices"

// Mutator patches a downstream cache before the downstream is marked dirty,
// keeping its structural shape aligned with the new region. It returns the
// (possibly reallocated) cache.
type Mutator func(cache any) any

// Connector labels an edge: it translates an operation on input position pos
// into the downstream effect, an optional cache mutator plus the downstream
// region to mark dirty.
type Connector func(pos int, op Operation) (Mutator, Index)

// PassAll is the default connector: any upstream change invalidates the
// whole downstream value.
func PassAll(pos int, op Operation) (Mutator, Index) {
	return nil, All()
}

// Identity returns the connector for one-to-one collection derivations: the
// upstream key set equals the downstream region, and structural operations
// reshape the downstream cache the same way the upstream was reshaped. The
// upstream channel is captured to size regions of length-changing splices.
func Identity(up *Channel) Connector {
	return func(pos int, op Operation) (Mutator, Index) {
		switch op.Kind {
		case OpClear, OpDirty:
			return nil, op.Region
		case OpSplice:
			return spliceMutator(op), op.regionOn(up.seqLen())
		case OpSwap:
			return swapMutator(op), op.regionOn(up.seqLen())
		case OpMove:
			return moveMutator(op), op.regionOn(up.seqLen())
		}

		return nil, All()
	}
}

func spliceMutator(op Operation) Mutator {
	return func(cache any) any {
		items, ok := cache.([]any)
		if !ok || op.Start+op.Deleted > len(items) {
			return cache
		}

		patched := make([]any, 0, len(items)-op.Deleted+op.Inserted)
		patched = append(patched, items[:op.Start]...)
		patched = append(patched, make([]any, op.Inserted)...)
		patched = append(patched, items[op.Start+op.Deleted:]...)

		return patched
	}
}

func swapMutator(op Operation) Mutator {
	return func(cache any) any {
		items, ok := cache.([]any)
		if !ok || op.I >= len(items) || op.J >= len(items) {
			return cache
		}

		items[op.I], items[op.J] = items[op.J], items[op.I]
		return items
	}
}

func moveMutator(op Operation) Mutator {
	return func(cache any) any {
		items, ok := cache.([]any)
		if !ok || op.From >= len(items) || op.To >= len(items) {
			return cache
		}

		v := items[op.From]
		items = slices.Delete(items, op.From, op.From+1)
		items = slices.Insert(items, op.To, v)

		return items
	}
}
