// File: internal/permit/permit.go
// Package permit implements the capacity gate behind the pool's rent protocol.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package permit

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/semaphore"
)

// ErrGateClosed is returned by Acquire once the gate has been closed.
var ErrGateClosed = errors.New("permit: gate is closed")

// Gate is a counting permit set. It starts with Size permits; Acquire takes
// one and blocks while none are available, Release puts one back. There is
// no acquire timeout: a blocked Acquire returns only when a permit frees up
// or the gate is closed.
type Gate struct {
	sem  *semaphore.Weighted
	size int64

	// ctx is cancelled by Close to wake blocked acquirers. The context is
	// internal; callers cannot cancel an Acquire themselves.
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

// New creates a gate holding n permits. n must be positive.
func New(n int64) *Gate {
	ctx, cancel := context.WithCancel(context.Background())
	return &Gate{
		sem:    semaphore.NewWeighted(n),
		size:   n,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Acquire blocks until one permit is available, then takes it.
// It fails only when the gate is (or becomes) closed.
func (g *Gate) Acquire() error {
	if err := g.sem.Acquire(g.ctx, 1); err != nil {
		return ErrGateClosed
	}
	return nil
}

// TryAcquire takes a permit without blocking. It reports false when no
// permit is available or the gate is closed.
func (g *Gate) TryAcquire() bool {
	if g.Closed() {
		return false
	}
	return g.sem.TryAcquire(1)
}

// Release puts one permit back. It must be matched to a successful Acquire
// or TryAcquire; over-releasing corrupts the gate and panics.
func (g *Gate) Release() {
	g.sem.Release(1)
}

// Close shuts the gate: every blocked Acquire is woken with ErrGateClosed
// and further Acquire calls fail immediately. Close is idempotent.
func (g *Gate) Close() {
	g.once.Do(g.cancel)
}

// Closed reports whether Close has been called.
func (g *Gate) Closed() bool {
	return g.ctx.Err() != nil
}

// Size reports the total number of permits the gate was created with.
func (g *Gate) Size() int64 {
	return g.size
}
