// File: api/doc.go
// Author: momentics <momentics@gmail.com>
//
// Public contracts of hioload-pool: the Resource dispose capability, the
// Factory that manufactures instances, the closed set of access-order kinds,
// the AccessOrder abstraction and the library error taxonomy.
//
// The package carries no dependencies so contracts can be imported freely;
// implementations live in package pool.
package api
