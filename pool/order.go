// File: pool/order.go
// Author: momentics <momentics@gmail.com>
//
// Maps an api.Order kind to its access-order implementation. The mapping
// happens exactly once, at construction; afterwards callers hold a concrete
// implementation and no further dispatch takes place.

package pool

import "github.com/momentics/hioload-pool/api"

// NewOrder builds the access order selected by kind. The kind set is closed:
// anything but OrderFIFO and OrderLIFO fails with ErrUnknownOrder.
func NewOrder[T api.Resource](kind api.Order, capacity int, factory api.Factory[T]) (api.AccessOrder[T], error) {
	switch kind {
	case api.OrderFIFO:
		return NewFIFO(capacity, factory)
	case api.OrderLIFO:
		return NewLIFO(capacity, factory)
	default:
		return nil, api.WrapError(api.ErrCodeUnknownOrder, "no such access order", api.ErrUnknownOrder).
			WithContext("order", int(kind))
	}
}
