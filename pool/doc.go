// Package pool
// Author: momentics <momentics@gmail.com>
//
// Capacity-bounded blocking object pooling for hioload-pool.
// Implements the FIFO and LIFO access orders over a mutex-guarded idle
// container, and the Pool type that wraps an access order with a counting
// permit gate to turn an unbounded factory into a strictly capacity-limited
// rent/return protocol.
// See fifo.go, lifo.go and pool.go for implementation details.
package pool
