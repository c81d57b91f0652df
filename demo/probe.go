// Package demo holds the three undersized-allocation demonstrations.
//
// Each demonstration allocates through package alloc, narrates what it is
// doing on the given writer, and returns an error only when an allocation
// cannot be satisfied. Everything else that goes wrong in here, field
// overlap included, is the point of the exercise and is printed rather
// than handled.
package demo

import (
	"fmt"
	"io"

	"github.com/memdemo/undersized/alloc"
	"github.com/memdemo/undersized/view"
)

// Probe requests two independent one-byte allocations and reports whether
// the second one starts where the first one ends. Where the allocator puts
// them is implementation defined, so the verdict is advisory output only
// and never drives a control branch. The other demonstrations sidestep the
// question entirely by carving overlapping views out of one contiguous
// block.
func Probe(w io.Writer) error {
	fmt.Fprintln(w, "Let's try to allocate just one byte for integers.")

	p1, err := alloc.Acquire(1)
	if err != nil {
		return err
	}
	defer alloc.Release(p1)

	p2, err := alloc.Acquire(1)
	if err != nil {
		return err
	}
	defer alloc.Release(p2)

	fmt.Fprintf(w, "Address of p1: %#x\n", view.Start(p1))
	fmt.Fprintf(w, "Address of p2: %#x\n", view.Start(p2))

	if view.End(p1) == view.Start(p2) {
		fmt.Fprintln(w, "p1 and p2 magically landed next to each other!")
	} else {
		fmt.Fprintln(w, "p1 and p2 are not immediately next to each other.")
	}
	return nil
}
