package demo

import (
	"fmt"
	"io"

	"github.com/memdemo/undersized/alloc"
	"github.com/memdemo/undersized/view"
)

// Overlap allocates one buffer sized for a single Pair, splits it into two
// views half a record apart, and walks through writes showing that the
// views observe each other. The buffer's capacity covers the extra half
// record, so p2's trailing field stays inside the allocation even though
// it runs past the declared length.
func Overlap(w io.Writer) error {
	fmt.Fprintln(w, "Let's try allocating the wrong size when using")
	fmt.Fprintln(w, "a struct, guaranteeing that the objects are next")
	fmt.Fprintln(w, "to each other in memory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Let's \"fake it 'till we make it\". We'll first allocate a buffer")
	fmt.Fprintln(w, "with enough space to store an entire Pair (and a half). This is")
	fmt.Fprintln(w, "completely legal. But then we'll split this in half to simulate")
	fmt.Fprintln(w, "what it'd be like if we only allocated half the space necessary")
	fmt.Fprintln(w, "for the entire struct.")

	fmt.Fprintf(w, "We'll allocate %d bytes for the buffer.\n", view.PairSize)
	buf, err := alloc.Acquire(view.PairSize, view.PairSize+view.PairSize/2)
	if err != nil {
		return err
	}
	defer alloc.Release(buf)

	fmt.Fprintln(w, "Now that we have enough space for an entire object, let's break it in half.")
	p1 := view.PairAt(buf, 0)
	p2 := view.PairAt(buf, view.PairSize/2)

	fmt.Fprintf(w, "Address of p1: %#x\n", view.Start(buf))
	fmt.Fprintf(w, "Address of p2: %#x\n", view.Start(buf)+uintptr(view.PairSize/2))

	fmt.Fprintln(w, "Initialize fields on p1:")
	fmt.Fprintln(w, " > p1.Field1: 0x12341234")
	fmt.Fprintln(w, " > p1.Field2: 0x56785678")
	p1.Field1 = 0x12341234
	p1.Field2 = 0x56785678

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Inspect values of p1:")
	fmt.Fprintf(w, " > p1.Field1: %#x\n", p1.Field1)
	fmt.Fprintf(w, " > p1.Field2: %#x\n", p1.Field2)

	fmt.Fprintln(w, "Now for the dangerous part: we'll poke the fields on p2.")
	fmt.Fprintln(w, "Initialize fields on p2:")
	fmt.Fprintln(w, " > p2.Field1: 0xdeadbeef")
	fmt.Fprintln(w, " > p2.Field2: 0x8badf00d")
	p2.Field1 = 0xDEADBEEF
	p2.Field2 = 0x8BADF00D

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Inspect values of p2:")
	fmt.Fprintf(w, " > p2.Field1: %#x\n", p2.Field1)
	fmt.Fprintf(w, " > p2.Field2: %#x\n", p2.Field2)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Great, looks like everything on p2 is set properly.")
	fmt.Fprintln(w, "Let's double-check everything to make sure everything's in order.")
	fmt.Fprintf(w, " > p1.Field1: %#x\n", p1.Field1)
	fmt.Fprintf(w, " > p1.Field2: %#x\n", p1.Field2)
	fmt.Fprintf(w, " > p2.Field1: %#x\n", p2.Field1)
	fmt.Fprintf(w, " > p2.Field2: %#x\n", p2.Field2)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Well that can't be right...")
	fmt.Fprintln(w, "Let's poke p1 again...")
	fmt.Fprintln(w, " > Set p1.Field2 to 0xfeedc0de")
	p1.Field2 = 0xFEEDC0DE

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Now let's look again...")
	fmt.Fprintf(w, " > p1.Field1: %#x\n", p1.Field1)
	fmt.Fprintf(w, " > p1.Field2: %#x\n", p1.Field2)
	fmt.Fprintf(w, " > p2.Field1: %#x\n", p2.Field1)
	fmt.Fprintf(w, " > p2.Field2: %#x\n", p2.Field2)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Let's look at a memory layout (using dummy addresses).")
	fmt.Fprint(w, layoutDiagram)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "In this diagram, p1 and p2 are laid on top of each other.")
	fmt.Fprintln(w, "Let's look at where each field is.")
	fmt.Fprint(w, fieldDiagram)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "p1.Field2 and p2.Field1 share the same memory.")
	fmt.Fprintln(w, "Any changes to p1.Field2 are reflected in p2.Field1 and vice versa.")
	return nil
}

const layoutDiagram = `/-----|-----|-----|-----|-----|-----|-----|-----|-----|-----|-----|-----\
| 0x1 | 0x2 | 0x3 | 0x4 | 0x5 | 0x6 | 0x7 | 0x8 | 0x9 | 0xA | 0xB | 0xC |
|-----|-----|-----|-----|-----|-----|-----|-----|-----|-----|-----|-----|
|                  <--  p1  -->                 |                       |
|                       |                  <--  p2  -->                 |
\-----|-----|-----|-----|-----|-----|-----|-----|-----|-----|-----|-----/
`

const fieldDiagram = `/-----|-----|-----|-----|-----|-----|-----|-----|-----|-----|-----|-----\
| 0x1 | 0x2 | 0x3 | 0x4 | 0x5 | 0x6 | 0x7 | 0x8 | 0x9 | 0xA | 0xB | 0xC |
|-----|-----|-----|-----|-----|-----|-----|-----|-----|-----|-----|-----|
|      p1.Field1        |      p1.Field2        |                       |
|                       |      p2.Field1        |      p2.Field2        |
\-----|-----|-----|-----|-----|-----|-----|-----|-----|-----|-----|-----/
`
