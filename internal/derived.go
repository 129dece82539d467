package internal

import "go.uber.org/zap"

// DerivedConfig carries the optional pieces of a derived channel.
type DerivedConfig struct {
	// Connectors labels the input edges in position order. Missing or nil
	// positions get PassAll.
	Connectors []Connector

	// ComputeAt patches the cache at one key, enabling index-level
	// recompute when the dirty set is a finite key list.
	ComputeAt func(vals []any, cache any, key Key) any

	// Eager forces materialization on every incoming dirty propagation.
	Eager bool
}

// NewDerived creates a lazy channel computing over inputs. The edges from
// each input are appended here and never removed.
func (r *Runtime) NewDerived(inputs []*Channel, compute func(vals []any) any, cfg DerivedConfig) (*Channel, error) {
	if len(inputs) == 0 {
		return nil, ErrNoIncomingChannels
	}

	c := &Channel{
		runtime:   r,
		id:        r.nextID(),
		kind:      KindDerived,
		dirty:     All(),
		eager:     cfg.Eager,
		inputs:    inputs,
		compute:   compute,
		computeAt: cfg.ComputeAt,
	}

	for pos, in := range inputs {
		var conn Connector = PassAll
		if pos < len(cfg.Connectors) && cfg.Connectors[pos] != nil {
			conn = cfg.Connectors[pos]
		}
		in.edges = append(in.edges, edge{to: c, conn: conn, pos: pos})
	}

	r.logger.Debug("channel created",
		zap.Int("channel", c.id),
		zap.String("kind", "derived"),
		zap.Int("inputs", len(inputs)))

	// eager channels materialize immediately so side-effecting consumers
	// see the initial value without an explicit read
	if c.eager {
		c.Read()
	}

	return c, nil
}

// Read returns the channel's current value. Sources answer from their
// authoritative value; derived channels recompute when any region is dirty,
// patching per key when the dirty set is finite and a ComputeAt exists.
// A panic in user code leaves the dirty set untouched so a later read
// retries.
func (c *Channel) Read() any {
	if c.kind == KindSource {
		return c.value
	}

	if c.dirty.Empty() {
		return c.cache
	}

	vals := make([]any, len(c.inputs))
	for i, in := range c.inputs {
		vals[i] = in.Read()
	}

	if keys := c.dirty; keys.Kind() == IndexKeys && c.computeAt != nil {
		c.runtime.logger.Debug("recompute",
			zap.Int("channel", c.id),
			zap.String("mode", "per-key"),
			zap.Int("keys", len(keys.Keys())))

		for _, k := range keys.Keys() {
			c.cache = c.computeAt(vals, c.cache, k)
		}
	} else {
		c.runtime.logger.Debug("recompute",
			zap.Int("channel", c.id),
			zap.String("mode", "full"))

		c.cache = c.compute(vals)
	}

	c.hasCache = true
	c.dirty = None()
	c.version = c.runtime.now()

	return c.cache
}

// MapSequence builds the identity-connected element-wise derivation of a
// sequence channel.
func MapSequence(up *Channel, fn func(any) any) *Channel {
	c, _ := up.runtime.NewDerived([]*Channel{up}, func(vals []any) any {
		items := vals[0].([]any)
		out := make([]any, len(items))
		for i, v := range items {
			out[i] = fn(v)
		}
		return out
	}, DerivedConfig{
		Connectors: []Connector{Identity(up)},
		ComputeAt: func(vals []any, cache any, key Key) any {
			items := vals[0].([]any)
			out := cache.([]any)
			i := key.(int)
			out[i] = fn(items[i])
			return out
		},
	})

	return c
}

// MapMapping builds the identity-connected value-wise derivation of a
// mapping channel.
func MapMapping(up *Channel, fn func(any) any) *Channel {
	c, _ := up.runtime.NewDerived([]*Channel{up}, func(vals []any) any {
		entries := vals[0].(map[Key]any)
		out := make(map[Key]any, len(entries))
		for k, v := range entries {
			out[k] = fn(v)
		}
		return out
	}, DerivedConfig{
		Connectors: []Connector{Identity(up)},
		ComputeAt: func(vals []any, cache any, key Key) any {
			entries := vals[0].(map[Key]any)
			out := cache.(map[Key]any)
			out[key] = fn(entries[key])
			return out
		},
	})

	return c
}
