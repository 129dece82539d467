package finch

import "github.com/finchkit/finch/internal"

// Adapter is an eager channel whose computation is a targeted side effect
// on an external sink, e.g. a DOM tree. Because it is eager, the sink sees
// every source mutation synchronously, in program order, before the mutating
// call returns.
type Adapter struct {
	ch *internal.Channel
}

// NewAdapter binds a side-effecting consumer to input. render rebuilds the
// sink from the whole value and runs once immediately; renderAt, if given,
// patches one slot of the sink and is used whenever the dirty region is a
// finite key list.
func NewAdapter(input AnyChannel, render func(v any), renderAt func(v any, key Key)) *Adapter {
	up := input.raw()

	cfg := internal.DerivedConfig{
		Eager:      true,
		Connectors: []internal.Connector{internal.Identity(up)},
	}
	if renderAt != nil {
		cfg.ComputeAt = func(vals []any, cache any, key Key) any {
			renderAt(vals[0], key)
			return vals[0]
		}
	}

	ch, _ := internal.GetRuntime().NewDerived([]*internal.Channel{up}, func(vals []any) any {
		render(vals[0])
		return vals[0]
	}, cfg)

	return &Adapter{ch}
}

func (a *Adapter) ReadAny() any           { return a.ch.Read() }
func (a *Adapter) raw() *internal.Channel { return a.ch }
