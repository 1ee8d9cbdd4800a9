package cache

// handle addresses a slot in the recency list's arena. Handles stay valid
// for the life of the cache; freed slots are recycled through a free chain,
// so a handle held by the index always points at the entry it was issued for.
type handle int32

// noHandle marks the absence of a slot (empty list, exhausted free chain).
const noHandle handle = -1

// The two sentinel slots occupy fixed arena positions. head.next is the
// most-recently-used entry, tail.prev the least-recently-used. Sentinels
// never hold data; they exist so splicing at either end needs no nil checks.
const (
	headSentinel  handle = 0
	tailSentinel  handle = 1
	sentinelSlots        = 2
)

// node is one arena slot: either a live entry linked between the sentinels,
// or a free slot threaded onto the free chain via next.
type node[K comparable, V any] struct {
	key   K
	value V
	prev  handle
	next  handle
}

// recencyList orders live entries from most-recently-used (just after the
// head sentinel) to least-recently-used (just before the tail sentinel).
//
// Entries live by value inside the arena; the list links and the cache index
// refer to them only through handles. The arena is the sole owner of entry
// lifetime, so there is nothing to dangle when a slot is recycled.
type recencyList[K comparable, V any] struct {
	nodes []node[K, V]
	free  handle
}

// newRecencyList allocates an arena with the given number of entry slots
// plus the two sentinels. The arena never grows afterwards.
func newRecencyList[K comparable, V any](slots int) *recencyList[K, V] {
	l := &recencyList[K, V]{
		nodes: make([]node[K, V], sentinelSlots+slots),
		free:  noHandle,
	}
	l.nodes[headSentinel] = node[K, V]{prev: noHandle, next: tailSentinel}
	l.nodes[tailSentinel] = node[K, V]{prev: headSentinel, next: noHandle}
	for i := len(l.nodes) - 1; i >= sentinelSlots; i-- {
		l.pushFree(handle(i))
	}
	return l
}

// alloc takes a slot off the free chain, fills it, and links it at the
// most-recently-used position. The caller guarantees a free slot exists;
// the arena is sized for the worst-case insert-then-evict overshoot.
func (l *recencyList[K, V]) alloc(key K, value V) handle {
	h := l.free
	l.free = l.nodes[h].next
	l.nodes[h].key = key
	l.nodes[h].value = value
	l.linkFront(h)
	return h
}

// release unlinks a live slot and returns it to the free chain.
func (l *recencyList[K, V]) release(h handle) {
	l.unlink(h)
	l.pushFree(h)
}

// pushFree threads a slot onto the free chain. The slot is zeroed so the
// arena drops its references to the old key and value.
func (l *recencyList[K, V]) pushFree(h handle) {
	l.nodes[h] = node[K, V]{prev: noHandle, next: l.free}
	l.free = h
}

// unlink splices h out of the list through its own prev/next links.
// No traversal: three handle reads, two handle writes.
func (l *recencyList[K, V]) unlink(h handle) {
	n := l.nodes[h]
	l.nodes[n.prev].next = n.next
	l.nodes[n.next].prev = n.prev
}

// linkFront inserts h immediately after the head sentinel.
func (l *recencyList[K, V]) linkFront(h handle) {
	first := l.nodes[headSentinel].next
	l.nodes[h].prev = headSentinel
	l.nodes[h].next = first
	l.nodes[first].prev = h
	l.nodes[headSentinel].next = h
}

// moveToFront marks an already-linked slot as most recently used.
func (l *recencyList[K, V]) moveToFront(h handle) {
	if l.nodes[headSentinel].next == h {
		return
	}
	l.unlink(h)
	l.linkFront(h)
}

// front returns the most-recently-used slot, or noHandle when empty.
func (l *recencyList[K, V]) front() handle {
	h := l.nodes[headSentinel].next
	if h == tailSentinel {
		return noHandle
	}
	return h
}

// back returns the least-recently-used slot, or noHandle when empty.
func (l *recencyList[K, V]) back() handle {
	h := l.nodes[tailSentinel].prev
	if h == headSentinel {
		return noHandle
	}
	return h
}
