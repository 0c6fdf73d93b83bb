package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryAppendAndQuery(t *testing.T) {
	h := NewMemory(0)
	h.Append("git commit -m 'init'")
	h.Append("git push origin main")

	assert.Equal(t, 2, h.Len())

	e, ok := h.EntryAt(0)
	assert.True(t, ok)
	assert.Equal(t, "git commit -m 'init'", e)

	e, ok = h.EntryAt(1)
	assert.True(t, ok)
	assert.Equal(t, "git push origin main", e)

	_, ok = h.EntryAt(2)
	assert.False(t, ok, "out of range lookups report ok=false")
}

func TestMemoryBound(t *testing.T) {
	h := NewMemory(2)
	h.Append("a")
	h.Append("b")
	h.Append("c")

	assert.Equal(t, []string{"b", "c"}, h.Entries(), "oldest entry dropped once bound exceeded")
}

func TestMemoryDedupeMovesRepeatToEnd(t *testing.T) {
	h := NewMemory(0)
	h.Dedupe = true
	h.Append("a")
	h.Append("b")
	h.Append("a")

	assert.Equal(t, []string{"b", "a"}, h.Entries())
	assert.Equal(t, 2, h.Len())
}

func TestMemoryDedupeInteractsWithBound(t *testing.T) {
	h := NewMemory(2)
	h.Dedupe = true
	h.Append("a")
	h.Append("b")
	h.Append("a")
	h.Append("c")

	assert.Equal(t, []string{"a", "c"}, h.Entries())
}
