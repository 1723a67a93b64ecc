package hintmap

import (
	"context"
	"iter"

	"github.com/samber/lo"
)

// All iterates from the head to the tail.
//
// The successor of an entry is read before the entry is yielded, so the
// loop body may remove the current entry. If the successor itself is
// removed inside the body, iteration stops there. An entry inserted by the
// body directly after the current one is not visited, since the step
// already points past it; entries inserted beyond the captured successor
// are visited when the walk reaches them.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.walk(m.head, forward)
}

// Backward iterates from the tail to the head with the same guarantees as
// All, mirrored: an entry inserted directly before the current one is skipped.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return m.walk(m.tail, backward)
}

// Positions iterates over the positions of the entries from head to tail.
func (m *Map[K, V]) Positions() iter.Seq[Position] {
	return func(yield func(Position) bool) {
		for pos := range m.steps(m.head, forward) {
			if !yield(pos) {
				return
			}
		}
	}
}

func (m *Map[K, V]) walk(from int, dir direction) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for pos := range m.steps(from, dir) {
			s := &m.nodes.slots[pos.idx]
			if !yield(s.key, s.value) {
				return
			}
		}
	}
}

func (m *Map[K, V]) steps(from int, dir direction) iter.Seq[Position] {
	return func(yield func(Position) bool) {
		pos := m.nodes.position(from)
		for pos.IsValid() {
			s, err := m.nodes.lookup(pos)
			if err != nil {
				return
			}

			link := s.next
			if dir == backward {
				link = s.prev
			}
			following := m.nodes.position(link)

			if !yield(pos) {
				return
			}
			pos = following
		}
	}
}

// Pairs streams a snapshot of the entries in order. The channel is closed
// once every pair is delivered or ctx is done.
func (m *Map[K, V]) Pairs(ctx context.Context) <-chan Pair[K, V] {
	pairs := m.Collect()
	resultCh := make(chan Pair[K, V])

	go func() {
		defer close(resultCh)
		for _, p := range pairs {
			select {
			case <-ctx.Done():
				return
			case resultCh <- p:
			}
		}
	}()

	return resultCh
}

// Collect returns the entries in order.
func (m *Map[K, V]) Collect() []Pair[K, V] {
	result := make([]Pair[K, V], 0, m.size)
	for k, v := range m.All() {
		result = append(result, Pair[K, V]{Key: k, Value: v})
	}
	return result
}

func (m *Map[K, V]) Keys() []K {
	return lo.Map(m.Collect(), func(p Pair[K, V], _ int) K {
		return p.Key
	})
}

func (m *Map[K, V]) Values() []V {
	return lo.Map(m.Collect(), func(p Pair[K, V], _ int) V {
		return p.Value
	})
}
