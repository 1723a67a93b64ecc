package hintmap

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// IsSorted reports whether no entry sorts before its predecessor.
// Only ReplaceKey can make it false.
func (m *Map[K, V]) IsSorted() bool {
	for idx := m.head; idx != none; {
		s := &m.nodes.slots[idx]
		if s.next != none && m.less(m.nodes.slots[s.next].key, s.key) {
			return false
		}
		idx = s.next
	}
	return true
}

// Sort relinks the entries in comparator order. Entries that compare
// equivalent keep their relative order. Positions stay valid.
func (m *Map[K, V]) Sort() {
	if m.size < 2 {
		return
	}

	order := make([]int, 0, m.size)
	for idx := m.head; idx != none; idx = m.nodes.slots[idx].next {
		order = append(order, idx)
	}

	slices.SortStableFunc(order, func(a, b int) int {
		ka, kb := m.nodes.slots[a].key, m.nodes.slots[b].key
		switch {
		case m.less(ka, kb):
			return -1
		case m.less(kb, ka):
			return 1
		default:
			return 0
		}
	})

	prev := none
	for _, idx := range order {
		s := &m.nodes.slots[idx]
		s.prev = prev
		s.next = none
		if prev != none {
			m.nodes.slots[prev].next = idx
		}
		prev = idx
	}
	m.head = order[0]
	m.tail = order[len(order)-1]
}

// Validate walks the list in both directions and checks that the links agree.
func (m *Map[K, V]) Validate() error {
	if (m.head == none) != (m.tail == none) {
		return errors.Wrapf(ErrCorrupted, "head %d and tail %d disagree", m.head, m.tail)
	}

	count := 0
	prev := none
	for idx := m.head; idx != none; idx = m.nodes.slots[idx].next {
		s := &m.nodes.slots[idx]
		if !s.live {
			return errors.Wrapf(ErrCorrupted, "slot %d is linked but not live", idx)
		}
		if s.prev != prev {
			return errors.Wrapf(ErrCorrupted, "slot %d points back to %d instead of %d", idx, s.prev, prev)
		}
		if count++; count > m.size {
			return errors.Wrapf(ErrCorrupted, "more than %d entries are linked", m.size)
		}
		prev = idx
	}

	if prev != m.tail {
		return errors.Wrapf(ErrCorrupted, "forward walk ends at %d, tail is %d", prev, m.tail)
	}
	if count != m.size {
		return errors.Wrapf(ErrCorrupted, "%d entries linked, size is %d", count, m.size)
	}

	return nil
}
