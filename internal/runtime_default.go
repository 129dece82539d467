//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// Each goroutine gets its own runtime, so channel ids and the mutation
// clock stay deterministic for the graph built on it. Graphs are
// single-threaded; sharing one across goroutines is not supported.
var byGoroutine sync.Map // goroutine id -> *Runtime

func GetRuntime() *Runtime {
	gid := goid.Get()

	r, ok := byGoroutine.Load(gid)
	if !ok {
		r, _ = byGoroutine.LoadOrStore(gid, NewRuntime())
	}

	return r.(*Runtime)
}
