// File: api/order.go
// Author: momentics <momentics@gmail.com>
//
// Access-order contract: the policy that decides which idle instance is
// handed out next, plus the closed set of recognized orderings.

package api

// Order selects the retrieval discipline of an access order.
type Order int

const (
	// OrderFIFO hands out the oldest-returned idle instance first (queue).
	OrderFIFO Order = iota
	// OrderLIFO hands out the most-recently-returned idle instance first (stack).
	OrderLIFO
)

func (o Order) String() string {
	switch o {
	case OrderFIFO:
		return "fifo"
	case OrderLIFO:
		return "lifo"
	default:
		return "unknown"
	}
}

// AccessOrder maintains the set of currently idle instances and decides
// retrieval order. Implementations are safe for concurrent use: the idle
// container, the outstanding rental count and the closed flag are all
// mutated inside one critical section, so Rent and Return are linearizable.
type AccessOrder[T Resource] interface {
	// Rent removes and returns the idle head per the variant's discipline.
	// When no idle instance is available, Rent manufactures a fresh
	// overflow instance instead. Fails once the order has been drained.
	Rent() (T, error)

	// Return hands an instance back. While the idle container is below
	// capacity the instance is recycled at the variant's insert position;
	// when the container is already full the instance is overflow and is
	// closed instead of stored. A Return with no rental outstanding is a
	// caller contract violation and is reported without touching the
	// instance.
	Return(item T) error

	// Drain closes every idle instance and marks the order closed.
	// Subsequent Rent calls fail; subsequent Return calls still close the
	// instance they were handed so nothing leaks. Drain is idempotent.
	Drain() error

	// Len reports the number of idle instances currently held.
	Len() int

	// Cap reports the configured capacity.
	Cap() int
}
