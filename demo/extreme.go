package demo

import (
	"fmt"
	"io"

	"github.com/memdemo/undersized/alloc"
	"github.com/memdemo/undersized/view"
)

// extremeAllocSize is the declared allocation for the Giant view: two
// bytes against a 160-byte record.
const extremeAllocSize = 2

// Extreme allocates a two-byte block and writes all twenty 8-byte fields
// of a Giant view imposed on it. Every field past the first lands outside
// the allocation. The process may corrupt its own heap silently, crash at
// an unpredictable field, or appear to finish cleanly; whichever happens
// is the lesson. Callers must only invoke this when explicitly asked to.
func Extreme(w io.Writer) error {
	fmt.Fprintf(w, "Let's get greedy: a %d-byte allocation for a %d-byte struct\n",
		extremeAllocSize, view.GiantSize)
	fmt.Fprintf(w, "with %d fields of 8 bytes each. We'll write every field in order\n",
		view.GiantFields)
	fmt.Fprintln(w, "and see how far we get.")

	buf, err := alloc.AcquireDirty(extremeAllocSize)
	if err != nil {
		return err
	}
	defer alloc.Release(buf)

	writeAllFields(w, buf)

	fmt.Fprintf(w, "Still alive after all %d writes. The corruption was silent.\n",
		view.GiantFields)
	return nil
}

// writeAllFields imposes a Giant on buf and writes a distinct constant to
// each field in declared order, announcing each write first so the last
// line tells where a crash happened.
func writeAllFields(w io.Writer, buf []byte) {
	g := view.GiantAt(buf)
	for i := 0; i < view.GiantFields; i++ {
		v := extremeFieldValue(i)
		fmt.Fprintf(w, "Setting Field%02d to %#x...\n", i+1, v)
		g.Set(i, v)
	}
}

// extremeFieldValue is the constant written to the i'th field (0-based).
func extremeFieldValue(i int) uint64 {
	return 0xC0DE0000 + uint64(i) + 1
}
