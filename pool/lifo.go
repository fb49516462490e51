// File: pool/lifo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"errors"
	"sync"

	"github.com/momentics/hioload-pool/api"
)

// LIFO is the stack-backed access order: the most-recently-returned idle
// instance is handed out first, keeping the hottest instance in circulation.
// Same locking contract as FIFO: container, outstanding count and closed
// flag share one mutex.
type LIFO[T api.Resource] struct {
	mu          sync.Mutex
	idle        []T
	outstanding int
	closed      bool

	capacity int
	factory  api.Factory[T]
}

var _ api.AccessOrder[api.Resource] = (*LIFO[api.Resource])(nil)

// NewLIFO builds a LIFO access order and seeds it by invoking the factory
// exactly capacity times. Bootstrap failure semantics match NewFIFO: the
// instances manufactured so far are closed and the failure is returned.
func NewLIFO[T api.Resource](capacity int, factory api.Factory[T]) (*LIFO[T], error) {
	if capacity < 0 {
		return nil, api.WrapError(api.ErrCodeInvalidArgument, "negative capacity", api.ErrInvalidArgument).
			WithContext("capacity", capacity)
	}
	if factory == nil {
		return nil, api.WrapError(api.ErrCodeInvalidArgument, "nil factory", api.ErrInvalidArgument)
	}
	l := &LIFO[T]{
		idle:     make([]T, 0, capacity),
		capacity: capacity,
		factory:  factory,
	}
	for i := 0; i < capacity; i++ {
		item, err := factory()
		if err != nil {
			return nil, l.abortBootstrap(i, err)
		}
		l.idle = append(l.idle, item)
	}
	return l, nil
}

// abortBootstrap closes the instances seeded before the failing factory call.
func (l *LIFO[T]) abortBootstrap(seeded int, cause error) error {
	errs := []error{api.WrapError(api.ErrCodeFactory, "bootstrap manufacture failed", cause).
		WithContext("seeded", seeded)}
	for _, item := range l.idle {
		if err := item.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	l.idle = nil
	return errors.Join(errs...)
}

// Rent hands out the top of the idle stack. With the stack empty the rental
// is overflow: a fresh instance is manufactured without touching the stack.
func (l *LIFO[T]) Rent() (T, error) {
	var zero T
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return zero, api.ErrClosed
	}
	l.outstanding++
	if n := len(l.idle); n > 0 {
		item := l.idle[n-1]
		l.idle[n-1] = zero // drop the stack's reference
		l.idle = l.idle[:n-1]
		l.mu.Unlock()
		return item, nil
	}
	l.mu.Unlock()

	item, err := l.factory()
	if err != nil {
		l.mu.Lock()
		l.outstanding--
		l.mu.Unlock()
		return zero, api.WrapError(api.ErrCodeFactory, "overflow manufacture failed", err)
	}
	return item, nil
}

// Return hands an instance back. Below capacity it is pushed on top of the
// stack; with the stack already full the instance is overflow and is closed
// instead of stored. A Return with no rental outstanding reports ErrNoRental
// and leaves the instance with the caller.
func (l *LIFO[T]) Return(item T) error {
	l.mu.Lock()
	if l.outstanding == 0 {
		l.mu.Unlock()
		return api.ErrNoRental
	}
	l.outstanding--
	if l.closed || len(l.idle) >= l.capacity {
		l.mu.Unlock()
		return item.Close()
	}
	l.idle = append(l.idle, item)
	l.mu.Unlock()
	return nil
}

// Drain closes every idle instance and marks the order closed under the
// Rent/Return mutex. Idempotent.
func (l *LIFO[T]) Drain() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return nil
	}
	l.closed = true
	var errs []error
	for _, item := range l.idle {
		if err := item.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	l.idle = nil
	return errors.Join(errs...)
}

// Len reports the number of idle instances currently stacked.
func (l *LIFO[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.idle)
}

// Cap reports the configured capacity.
func (l *LIFO[T]) Cap() int { return l.capacity }
