// Package datablock exposes the CosmoSIS datablock, the string-keyed,
// sectioned key/value store that pipeline stages use to exchange parameters
// and results, as a typed Go API over the native C library.
//
// A DataBlock owns an opaque native handle. Values are read and written
// under a (section, name) key with one method per supported kind: int, bool,
// double, complex, string, 1-D arrays of the numeric kinds, and row-major
// 2-D grids. Put is insert-only and fails with ErrAlreadyExists on an
// existing key; Replace overwrites an existing entry of the same kind.
//
// Every native status code is translated to a typed error at this boundary;
// see the Err* sentinels and the Error type. All data crossing the boundary
// is copied, so no returned value aliases native memory.
//
// A DataBlock is not safe for concurrent use. Callers sharing one across
// goroutines must synchronize externally.
package datablock
