// File: pool/fifo.go
// Package pool implements the access-order variants and the gated pool.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"errors"
	"sync"

	"github.com/eapache/queue"
	"github.com/momentics/hioload-pool/api"
)

// FIFO is the queue-backed access order: the oldest-returned idle instance
// is handed out first. The idle queue, the outstanding rental count and the
// closed flag are guarded by one mutex, so Rent and Return always act on a
// consistent view of the pool state.
type FIFO[T api.Resource] struct {
	mu          sync.Mutex
	idle        *queue.Queue // elements are T
	outstanding int
	closed      bool

	capacity int
	factory  api.Factory[T]
}

var _ api.AccessOrder[api.Resource] = (*FIFO[api.Resource])(nil)

// NewFIFO builds a FIFO access order and seeds it by invoking the factory
// exactly capacity times. On a mid-bootstrap factory failure the instances
// manufactured so far are closed again and the failure is returned.
// Capacity zero is legal: the order then manufactures on every Rent and
// disposes on every Return.
func NewFIFO[T api.Resource](capacity int, factory api.Factory[T]) (*FIFO[T], error) {
	if capacity < 0 {
		return nil, api.WrapError(api.ErrCodeInvalidArgument, "negative capacity", api.ErrInvalidArgument).
			WithContext("capacity", capacity)
	}
	if factory == nil {
		return nil, api.WrapError(api.ErrCodeInvalidArgument, "nil factory", api.ErrInvalidArgument)
	}
	f := &FIFO[T]{
		idle:     queue.New(),
		capacity: capacity,
		factory:  factory,
	}
	for i := 0; i < capacity; i++ {
		item, err := factory()
		if err != nil {
			return nil, f.abortBootstrap(i, err)
		}
		f.idle.Add(item)
	}
	return f, nil
}

// abortBootstrap closes the instances seeded before the failing factory call.
func (f *FIFO[T]) abortBootstrap(seeded int, cause error) error {
	errs := []error{api.WrapError(api.ErrCodeFactory, "bootstrap manufacture failed", cause).
		WithContext("seeded", seeded)}
	for f.idle.Length() > 0 {
		if err := f.idle.Remove().(T).Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Rent hands out the head of the idle queue. With the queue empty the rental
// is overflow: a fresh instance is manufactured without touching the queue.
func (f *FIFO[T]) Rent() (T, error) {
	var zero T
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return zero, api.ErrClosed
	}
	f.outstanding++
	if f.idle.Length() > 0 {
		item := f.idle.Remove().(T)
		f.mu.Unlock()
		return item, nil
	}
	f.mu.Unlock()

	// Overflow manufacture happens outside the lock: the factory may block,
	// and a blocked factory must not stall concurrent Return calls.
	item, err := f.factory()
	if err != nil {
		f.mu.Lock()
		f.outstanding--
		f.mu.Unlock()
		return zero, api.WrapError(api.ErrCodeFactory, "overflow manufacture failed", err)
	}
	return item, nil
}

// Return hands an instance back. Below capacity it is enqueued at the tail;
// with the queue already full the instance is overflow and is closed instead
// of stored. A Return with no rental outstanding reports ErrNoRental and
// leaves the instance with the caller.
func (f *FIFO[T]) Return(item T) error {
	f.mu.Lock()
	if f.outstanding == 0 {
		f.mu.Unlock()
		return api.ErrNoRental
	}
	f.outstanding--
	if f.closed || f.idle.Length() >= f.capacity {
		f.mu.Unlock()
		return item.Close()
	}
	f.idle.Add(item)
	f.mu.Unlock()
	return nil
}

// Drain closes every idle instance and marks the order closed, holding the
// same mutex Rent and Return use so teardown cannot interleave with them.
// Close failures are joined into the returned error. Drain is idempotent.
func (f *FIFO[T]) Drain() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true
	var errs []error
	for f.idle.Length() > 0 {
		if err := f.idle.Remove().(T).Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Len reports the number of idle instances currently queued.
func (f *FIFO[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.idle.Length()
}

// Cap reports the configured capacity.
func (f *FIFO[T]) Cap() int { return f.capacity }
