package internal

import (
	"sync"

	"go.uber.org/zap"
)

// Runtime holds the per-goroutine graph bookkeeping: channel id allocation,
// the mutation clock, and the logger channels report events to.
type Runtime struct {
	mu sync.Mutex

	lastID int
	clock  int

	logger *zap.Logger
}

func NewRuntime() *Runtime {
	return &Runtime{
		logger: zap.NewNop(),
	}
}

func (r *Runtime) nextID() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	return r.lastID
}

// tick advances the mutation clock. Each source mutation gets a distinct
// stamp so log lines order causally.
func (r *Runtime) tick() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clock++
	return r.clock
}

func (r *Runtime) now() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.clock
}

// SetLogger installs the logger graph events are reported to. A nil logger
// silences reporting again.
func (r *Runtime) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}

	r.logger = l
}
