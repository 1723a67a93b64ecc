package hintmap

import "github.com/pkg/errors"

// none marks the absence of a link: the prev of the head and the next of the tail.
const none = -1

type slot[K, V any] struct {
	key   K
	value V
	prev  int
	next  int
	gen   uint64
	live  bool
}

// arena stores entries in a growable slice. Indices never move once
// allocated; freed indices are reused in LIFO order.
type arena[K, V any] struct {
	slots []slot[K, V]
	free  []int
}

func newArena[K, V any](capacity int) arena[K, V] {
	return arena[K, V]{slots: make([]slot[K, V], 0, capacity)}
}

// alloc returns a live, unlinked slot index holding key and value.
func (a *arena[K, V]) alloc(key K, value V) int {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.key, s.value = key, value
		s.prev, s.next = none, none
		s.live = true
		return idx
	}

	a.slots = append(a.slots, slot[K, V]{
		key:   key,
		value: value,
		prev:  none,
		next:  none,
		gen:   1,
		live:  true,
	})
	return len(a.slots) - 1
}

// release marks the slot dead and bumps its generation so that
// handles pointing at it stop resolving.
func (a *arena[K, V]) release(idx int) {
	s := &a.slots[idx]
	s.key = getZero[K]()
	s.value = getZero[V]()
	s.prev, s.next = none, none
	s.live = false
	s.gen++
	a.free = append(a.free, idx)
}

// lookup resolves a handle to its slot.
func (a *arena[K, V]) lookup(pos Position) (*slot[K, V], error) {
	if pos.gen == 0 || pos.idx < 0 || pos.idx >= len(a.slots) {
		return nil, errors.Wrapf(ErrStaleHandle, "slot %d is out of range", pos.idx)
	}

	s := &a.slots[pos.idx]
	if !s.live || s.gen != pos.gen {
		return nil, errors.Wrapf(ErrStaleHandle, "slot %d generation %d", pos.idx, pos.gen)
	}

	return s, nil
}

func (a *arena[K, V]) position(idx int) Position {
	if idx == none {
		return Position{}
	}
	return Position{idx: idx, gen: a.slots[idx].gen}
}

// reset releases every live slot. Slots are kept so their generations
// keep growing and handles taken before the reset stay stale.
func (a *arena[K, V]) reset() {
	for idx := len(a.slots) - 1; idx >= 0; idx-- {
		if a.slots[idx].live {
			a.release(idx)
		}
	}
}
