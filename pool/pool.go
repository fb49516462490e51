// File: pool/pool.go
// Package pool implements the capacity-gated rent/return protocol.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"errors"
	"sync"

	"github.com/momentics/hioload-pool/api"
	"github.com/momentics/hioload-pool/internal/permit"
)

// Pool hands out reusable instances to concurrent callers and recycles them
// on return. A counting permit gate bounds the number of simultaneously
// outstanding rentals to the configured capacity; the access order decides
// which idle instance a rental receives. The pool owns its access order for
// life.
type Pool[T api.Resource] struct {
	order api.AccessOrder[T]
	gate  *permit.Gate

	closeOnce sync.Once
	closeErr  error
}

// New builds a pool over the access order selected by kind, seeds it with
// capacity instances and arms a gate of capacity permits. Construction fails
// fast on an unrecognized kind, a capacity below one, a nil factory, or a
// factory failure during bootstrap; in the last case the instances
// manufactured so far are closed again before the error is returned.
func New[T api.Resource](kind api.Order, capacity int, factory api.Factory[T]) (*Pool[T], error) {
	if capacity < 1 {
		return nil, api.WrapError(api.ErrCodeInvalidArgument, "pool capacity must be positive", api.ErrInvalidArgument).
			WithContext("capacity", capacity)
	}
	if factory == nil {
		return nil, api.WrapError(api.ErrCodeInvalidArgument, "pool factory must not be nil", api.ErrInvalidArgument)
	}
	order, err := NewOrder(kind, capacity, factory)
	if err != nil {
		return nil, err
	}
	return &Pool[T]{
		order: order,
		gate:  permit.New(int64(capacity)),
	}, nil
}

// Rent blocks until a permit is available, then hands out an instance from
// the access order. There is no timeout and no cancellation: a caller blocks
// for as long as the pool stays exhausted. Once the pool is closed Rent
// fails with ErrClosed, and waiters blocked at close time are woken with the
// same error.
func (p *Pool[T]) Rent() (T, error) {
	var zero T
	if err := p.gate.Acquire(); err != nil {
		return zero, api.ErrClosed
	}
	item, err := p.order.Rent()
	if err != nil {
		p.gate.Release()
		return zero, err
	}
	return item, nil
}

// TryRent is the non-blocking variant of Rent. ok reports whether a rental
// was handed out; ok false with a nil error means the pool was merely
// exhausted at that instant.
func (p *Pool[T]) TryRent() (T, bool, error) {
	var zero T
	if !p.gate.TryAcquire() {
		if p.gate.Closed() {
			return zero, false, api.ErrClosed
		}
		return zero, false, nil
	}
	item, err := p.order.Rent()
	if err != nil {
		p.gate.Release()
		return zero, false, err
	}
	return item, true, nil
}

// Return hands a rented instance back and frees its permit. It must be
// called exactly once per successful Rent. A Return with no rental
// outstanding is reported with ErrNoRental and frees no permit, so a
// misbehaving caller cannot widen the gate. When the instance is overflow,
// or the pool is already closed, the access order closes it instead of
// recycling; a close failure is propagated after the permit is freed,
// because the rental itself has ended.
func (p *Pool[T]) Return(item T) error {
	err := p.order.Return(item)
	if errors.Is(err, api.ErrNoRental) {
		return err
	}
	p.gate.Release()
	return err
}

// Close tears the pool down: the gate is shut, waking every blocked Rent
// with ErrClosed, then every idle instance is closed under the access
// order's critical section. Close failures are joined into the returned
// error. Close is idempotent; repeated calls report the first outcome.
// Instances still rented out are not tracked down; each is closed by its
// eventual Return.
func (p *Pool[T]) Close() error {
	p.closeOnce.Do(func() {
		p.gate.Close()
		p.closeErr = p.order.Drain()
	})
	return p.closeErr
}

// Cap reports the configured capacity.
func (p *Pool[T]) Cap() int { return p.order.Cap() }

// Idle reports how many instances sit idle in the pool right now.
func (p *Pool[T]) Idle() int { return p.order.Len() }
