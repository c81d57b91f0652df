// Package alloc is the allocation layer of the demonstrations.
//
// Every buffer the demonstrations touch comes from here, so the single
// failure mode of the whole program (a request that cannot be satisfied)
// surfaces in exactly one place as ErrOutOfMemory. Callers never retry;
// the binary maps the error to a fatal exit.
package alloc

import (
	"errors"

	"github.com/bytedance/gopkg/lang/dirtmake"
	"github.com/bytedance/gopkg/lang/mcache"
)

// ErrOutOfMemory is returned when an allocation request cannot be satisfied.
var ErrOutOfMemory = errors.New("out of memory")

// Limit is the largest single request Acquire or AcquireDirty will serve.
// Requests above it fail with ErrOutOfMemory. The default matches the
// hard cap common to pooled allocators; tests lower it to force the
// failure path.
var Limit = 128 << 30 // 128GB

// Acquire returns a buffer with len(buf) == size from the pool.
// An optional second argument asks for a larger capacity, so a caller may
// declare a buffer shorter than the bytes it actually owns. That slack is
// what lets an overlaid view run past the declared length without ever
// leaving the allocation.
func Acquire(size int, capacity ...int) ([]byte, error) {
	c := size
	if len(capacity) > 0 && capacity[0] > size {
		c = capacity[0]
	}
	if size < 0 || c > Limit {
		return nil, ErrOutOfMemory
	}
	return mcache.Malloc(size, c), nil
}

// AcquireDirty returns an exact-size block straight from the heap,
// bypassing the pool, with contents left as-is. A pooled block carries
// slack capacity that would quietly absorb writes past its end; an
// exact-size block has real neighbors.
func AcquireDirty(size int) ([]byte, error) {
	if size < 0 || size > Limit {
		return nil, ErrOutOfMemory
	}
	return dirtmake.Bytes(size, size), nil
}

// Release returns buf to the pool. Exact-size blocks from AcquireDirty are
// accepted too; ones the pool cannot reuse are simply dropped to the GC.
// The buffer must not be used after Release.
func Release(buf []byte) {
	mcache.Free(buf)
}
