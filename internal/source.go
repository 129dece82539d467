package internal

import (
	"slices"

	"go.uber.org/zap"
)

// NewSource creates a channel owning an authoritative value. Sequence
// sources hold []any, mapping sources hold map[Key]any.
func (r *Runtime) NewSource(initial any, eager bool) *Channel {
	c := &Channel{
		runtime: r,
		id:      r.nextID(),
		kind:    KindSource,
		dirty:   None(),
		eager:   eager,
		value:   initial,
	}

	r.logger.Debug("channel created", zap.Int("channel", c.id), zap.String("kind", "source"))

	return c
}

// emit pushes a structural or invalidation operation through the outgoing
// edges. The source's own dirty set is maintained only to signal what
// changed; sources never recompute.
func (c *Channel) emit(op Operation) {
	region := op.regionOn(c.seqLen())

	c.version = c.runtime.tick()
	c.dirty = Merge(c.dirty, region)

	c.runtime.logger.Debug("emit",
		zap.Int("channel", c.id),
		zap.Int("version", c.version),
		zap.Stringer("region", region))

	c.propagate(op)
}

// Write replaces the source's value and invalidates every downstream region.
func (c *Channel) Write(v any) {
	c.value = v
	c.emit(Clear(All()))
}

// SetAt replaces the value at key on a mapping source.
func (c *Channel) SetAt(k Key, v any) {
	c.value.(map[Key]any)[k] = v
	c.emit(Clear(Keys(k)))
}

// Delete removes key from a mapping source. The key set changes shape, so
// whole-map derivations have to rebuild.
func (c *Channel) Delete(k Key) {
	delete(c.value.(map[Key]any), k)
	c.emit(Clear(All()))
}

// SetItem replaces the element at index i on a sequence source.
func (c *Channel) SetItem(i int, v any) {
	c.value.([]any)[i] = v
	c.emit(Clear(Keys(i)))
}

// Push appends to a sequence source.
func (c *Channel) Push(v any) {
	items := c.value.([]any)
	c.value = append(items, v)
	c.emit(Splice(len(items), 0, 1))
}

// Insert splices v in at index i. Every element at or after i shifts one
// slot, so their mapped outputs are invalidated too.
func (c *Channel) Insert(i int, v any) {
	c.value = slices.Insert(c.value.([]any), i, v)
	c.emit(Splice(i, 0, 1))
}

// SwapItems exchanges the elements at i and j on a sequence source.
func (c *Channel) SwapItems(i, j int) {
	items := c.value.([]any)
	items[i], items[j] = items[j], items[i]
	c.emit(Swap(i, j))
}

// MoveItem relocates the element at from to index to. Everything between
// the two slots shifts by one.
func (c *Channel) MoveItem(from, to int) {
	items := c.value.([]any)
	v := items[from]
	items = slices.Delete(items, from, from+1)
	c.value = slices.Insert(items, to, v)
	c.emit(Move(from, to))
}

func (c *Channel) seqLen() int {
	if items, ok := c.value.([]any); ok {
		return len(items)
	}

	return 0
}
