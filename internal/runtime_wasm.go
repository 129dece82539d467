//go:build wasm

package internal

import "sync"

// wasm builds drive the whole graph from the browser's event loop on a
// single goroutine, so one shared runtime replaces the per-goroutine
// registry and keeps channel ids and clock stamps globally ordered.
var (
	wasmOnce    sync.Once
	wasmRuntime *Runtime
)

func GetRuntime() *Runtime {
	wasmOnce.Do(func() {
		wasmRuntime = NewRuntime()
	})

	return wasmRuntime
}
