// Package fake
// Author: momentics <momentics@gmail.com>
//
// Fake resource and factory implementations for testing.

package fake

import (
	"fmt"
	"sync"

	"github.com/momentics/hioload-pool/api"
)

// Resource is a labeled fake implementation of api.Resource. Closing twice
// is reported as an error so tests catch double-dispose bugs.
type Resource struct {
	mu       sync.Mutex
	id       int
	closes   int
	closeErr error
}

var _ api.Resource = (*Resource)(nil)

// ID returns the manufacture sequence number, starting at 1.
func (r *Resource) ID() int { return r.id }

// Close marks the resource closed.
func (r *Resource) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closes++
	if r.closes > 1 {
		return fmt.Errorf("fake: resource %d closed %d times", r.id, r.closes)
	}
	return r.closeErr
}

// Closed reports whether the resource has been closed at least once.
func (r *Resource) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closes > 0
}

// FailClose makes subsequent Close calls return err.
func (r *Resource) FailClose(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closeErr = err
}

// Factory manufactures sequence-labeled fake resources and remembers every
// one of them for later inspection. Its New method satisfies
// api.Factory[*Resource].
type Factory struct {
	mu     sync.Mutex
	failAt int
	made   []*Resource
}

// NewFactory creates a fake resource factory.
func NewFactory() *Factory {
	return &Factory{}
}

// New manufactures the next resource.
func (f *Factory) New() (*Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAt > 0 && len(f.made)+1 == f.failAt {
		return nil, fmt.Errorf("fake: manufacture %d failed", f.failAt)
	}
	r := &Resource{id: len(f.made) + 1}
	f.made = append(f.made, r)
	return r, nil
}

// FailAt arranges for the n-th manufacture (1-based) to fail.
func (f *Factory) FailAt(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failAt = n
}

// Created reports how many resources the factory has manufactured.
func (f *Factory) Created() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.made)
}

// Closed reports how many manufactured resources have been closed.
func (f *Factory) Closed() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, r := range f.made {
		if r.Closed() {
			n++
		}
	}
	return n
}

// Made returns every manufactured resource in manufacture order.
func (f *Factory) Made() []*Resource {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*Resource, len(f.made))
	copy(out, f.made)
	return out
}
