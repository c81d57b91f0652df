// Package view reinterprets byte ranges as fixed-layout records.
//
// A view never owns memory: it is a typed window onto bytes that belong to
// exactly one buffer, and two views over overlapping ranges observe each
// other's writes. That aliasing is the subject of the demonstrations, not
// an accident, so nothing here checks that the viewed range fits inside
// the buffer's declared length.
package view

import "unsafe"

// Pair is a record of two 4-byte fields. Hex constants written into the
// fields read back unchanged, which keeps the demonstration output legible.
type Pair struct {
	Field1 uint32
	Field2 uint32
}

// PairSize is the byte size of a Pair.
const PairSize = int(unsafe.Sizeof(Pair{}))

// PairAt imposes a Pair on buf starting at byte offset off.
// The caller must guarantee that the 8 bytes at off sit inside the
// allocation backing buf; len(buf) is not consulted.
func PairAt(buf []byte, off int) *Pair {
	return (*Pair)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(buf)), off))
}

// Giant is a record of twenty 8-byte fields, 160 bytes in all.
type Giant struct {
	Field01, Field02, Field03, Field04, Field05 uint64
	Field06, Field07, Field08, Field09, Field10 uint64
	Field11, Field12, Field13, Field14, Field15 uint64
	Field16, Field17, Field18, Field19, Field20 uint64
}

const (
	// GiantFields is the number of fields in a Giant.
	GiantFields = 20
	// GiantSize is the byte size of a Giant.
	GiantSize = int(unsafe.Sizeof(Giant{}))
)

// GiantAt imposes a Giant at the start of buf. When buf is shorter than
// GiantSize the view spans past the allocation: writing such fields is out
// of bounds and may corrupt unrelated memory or kill the process. This is
// the one deliberately unchecked boundary in the program.
func GiantAt(buf []byte) *Giant {
	return (*Giant)(unsafe.Pointer(unsafe.SliceData(buf)))
}

// Set writes v to the i'th field, counting from zero in declared order.
func (g *Giant) Set(i int, v uint64) {
	*(*uint64)(unsafe.Add(unsafe.Pointer(g), uintptr(i)*unsafe.Sizeof(uint64(0)))) = v
}

// Get reads the i'th field, counting from zero in declared order.
func (g *Giant) Get(i int) uint64 {
	return *(*uint64)(unsafe.Add(unsafe.Pointer(g), uintptr(i)*unsafe.Sizeof(uint64(0))))
}

// Start returns the address of the first byte of b.
func Start(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// End returns the address one past the last byte of b's declared length.
func End(b []byte) uintptr {
	return Start(b) + uintptr(len(b))
}
