// File: internal/permit/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Counting permit gate for hioload-pool. A Gate hands out up to N permits
// and blocks further acquirers until a permit is released; closing the gate
// wakes every blocked acquirer. The gate is the sole mechanism bounding the
// number of simultaneously outstanding rentals.
package permit
