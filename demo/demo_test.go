package demo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/memdemo/undersized/alloc"
	"github.com/memdemo/undersized/view"
)

func TestProbe(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Probe(&out))

	s := out.String()
	assert.Contains(t, s, "Address of p1: 0x")
	assert.Contains(t, s, "Address of p2: 0x")
	// one verdict line, either way
	adjacent := strings.Contains(s, "magically landed next to each other")
	apart := strings.Contains(s, "not immediately next to each other")
	assert.True(t, adjacent != apart, "exactly one verdict expected:\n%s", s)
}

func TestOverlap(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Overlap(&out))
	s := out.String()

	// the double-check after writing p2 shows the aliased field
	i := strings.Index(s, "double-check")
	require.GreaterOrEqual(t, i, 0)
	assert.Contains(t, s[i:], " > p1.Field1: 0x12341234")
	assert.Contains(t, s[i:], " > p1.Field2: 0xdeadbeef")

	// and the final look shows the overwrite flowing the other way
	j := strings.Index(s, "look again")
	require.Greater(t, j, i)
	assert.Contains(t, s[j:], " > p1.Field2: 0xfeedc0de")
	assert.Contains(t, s[j:], " > p2.Field1: 0xfeedc0de")
	assert.Contains(t, s[j:], " > p2.Field2: 0x8badf00d")
}

// The real Extreme run writes out of bounds on purpose, so the scripted
// write sequence is exercised over a buffer that actually fits the view.
func TestExtremeWriteSequence(t *testing.T) {
	var out bytes.Buffer
	buf := make([]byte, view.GiantSize)
	writeAllFields(&out, buf)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, view.GiantFields)
	assert.Contains(t, lines[0], "Setting Field01 to 0xc0de0001")
	assert.Contains(t, lines[view.GiantFields-1], "Setting Field20 to 0xc0de0014")

	g := view.GiantAt(buf)
	for i := 0; i < view.GiantFields; i++ {
		assert.Equal(t, extremeFieldValue(i), g.Get(i), "field %d", i+1)
	}
}

func TestAllocationFailurePropagates(t *testing.T) {
	old := alloc.Limit
	alloc.Limit = 0
	defer func() { alloc.Limit = old }()

	var out bytes.Buffer
	assert.ErrorIs(t, Probe(&out), alloc.ErrOutOfMemory)
	assert.ErrorIs(t, Overlap(&out), alloc.ErrOutOfMemory)
	assert.ErrorIs(t, Extreme(&out), alloc.ErrOutOfMemory)
}
