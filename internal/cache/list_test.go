package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecencyListEmpty(t *testing.T) {
	l := newRecencyList[string, int](4)

	assert.Equal(t, noHandle, l.front())
	assert.Equal(t, noHandle, l.back())

	// Sentinels must form a closed two-node cycle when empty.
	assert.Equal(t, tailSentinel, l.nodes[headSentinel].next)
	assert.Equal(t, headSentinel, l.nodes[tailSentinel].prev)
}

func TestRecencyListAllocOrder(t *testing.T) {
	l := newRecencyList[string, int](3)

	a := l.alloc("a", 1)
	b := l.alloc("b", 2)
	c := l.alloc("c", 3)

	// Most recent allocation sits at the front.
	assert.Equal(t, c, l.front())
	assert.Equal(t, a, l.back())
	assert.Equal(t, b, l.nodes[c].next)
	assert.Equal(t, b, l.nodes[a].prev)
}

func TestRecencyListMoveToFront(t *testing.T) {
	l := newRecencyList[string, int](3)

	a := l.alloc("a", 1)
	b := l.alloc("b", 2)
	c := l.alloc("c", 3)

	l.moveToFront(a)
	assert.Equal(t, a, l.front())
	assert.Equal(t, b, l.back())

	// Moving the front entry must be a no-op, not a relink.
	l.moveToFront(a)
	assert.Equal(t, a, l.front())
	assert.Equal(t, c, l.nodes[a].next)
}

func TestRecencyListSlotReuse(t *testing.T) {
	l := newRecencyList[string, int](2)

	a := l.alloc("a", 1)
	b := l.alloc("b", 2)
	require.Equal(t, noHandle, l.free, "arena should be fully allocated")

	l.release(a)
	require.Equal(t, a, l.free, "released slot should head the free chain")

	// Releasing must zero the slot so stale key/value references are gone.
	assert.Zero(t, l.nodes[a].key)
	assert.Zero(t, l.nodes[a].value)

	// The recycled slot comes back with fresh contents and handles stay
	// valid for entries that never moved.
	c := l.alloc("c", 3)
	assert.Equal(t, a, c)
	assert.Equal(t, "c", l.nodes[c].key)
	assert.Equal(t, "b", l.nodes[b].key)
	assert.Equal(t, c, l.front())
	assert.Equal(t, b, l.back())
}

func TestRecencyListReleaseBack(t *testing.T) {
	l := newRecencyList[int, int](3)

	l.alloc(1, 1)
	b := l.alloc(2, 2)
	l.alloc(3, 3)

	l.release(l.back())
	assert.Equal(t, b, l.back())

	l.release(l.back())
	l.release(l.back())
	assert.Equal(t, noHandle, l.back())
	assert.Equal(t, noHandle, l.front())
}
