// File: api/resource.go
// Author: momentics <momentics@gmail.com>
//
// Core resource contracts: the dispose capability required of every pooled
// instance, and the factory that manufactures instances on demand.

package api

// Resource is the capability every pooled instance must provide.
// The pool never inspects or validates instance state; Close is invoked at
// the points where an instance leaves pool ownership for good: overflow
// return and teardown.
type Resource interface {
	// Close releases the instance. After Close the instance must not be
	// used again.
	Close() error
}

// Factory manufactures one new instance. It is supplied by the caller and
// invoked by the pool during bootstrap and for overflow creation.
type Factory[T Resource] func() (T, error)
