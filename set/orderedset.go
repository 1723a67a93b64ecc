package set

import (
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"

	"github.com/denismitr/hintmap"
)

// OrderedSet keeps items unique under a comparator and iterates them in
// comparator order. Inserting an item equivalent to a present one is a no-op.
type OrderedSet[T any] struct {
	items *hintmap.Map[T, struct{}]
	// last remembers where the previous insert landed and serves as the
	// hint for the next one, which keeps sorted input cheap to insert.
	last hintmap.Position
}

var _ Set[int] = (*OrderedSet[int])(nil)

func NewOrderedSet[T any](less hintmap.Less[T]) *OrderedSet[T] {
	return &OrderedSet[T]{
		items: hintmap.New[T, struct{}](less),
	}
}

func NewOrdered[T constraints.Ordered]() *OrderedSet[T] {
	return &OrderedSet[T]{
		items: hintmap.NewOrdered[T, struct{}](),
	}
}

func (s *OrderedSet[T]) Insert(item T) (modified bool) {
	s.last, modified = s.items.InsertWithHint(s.last, item, struct{}{})
	return modified
}

func (s *OrderedSet[T]) Clear() {
	s.items.Clear()
	s.last = hintmap.Position{}
}

func (s *OrderedSet[T]) Remove(item T) bool {
	pos, found := s.items.FindFrom(s.last, item)
	if !found {
		return false
	}

	_, _, err := s.items.Remove(pos)
	return err == nil
}

func (s *OrderedSet[T]) Items() []T {
	return s.items.Keys()
}

func (s *OrderedSet[T]) Has(item T) bool {
	_, found := s.items.FindFrom(s.last, item)
	return found
}

func (s *OrderedSet[T]) InsertSet(sourceSet Set[T]) (modified bool) {
	return s.InsertSlice(sourceSet.Items())
}

func (s *OrderedSet[T]) InsertSlice(sourceSlice []T) (modified bool) {
	lo.ForEach(sourceSlice, func(item T, _ int) {
		if s.Insert(item) {
			modified = true
		}
	})

	return modified
}

func (s *OrderedSet[T]) Len() int {
	return s.items.Len()
}

// Min returns the smallest item.
func (s *OrderedSet[T]) Min() (T, bool) {
	pos, ok := s.items.Front()
	if !ok {
		var zero T
		return zero, false
	}
	item, _, _ := s.items.Get(pos)
	return item, true
}

// Max returns the largest item.
func (s *OrderedSet[T]) Max() (T, bool) {
	pos, ok := s.items.Back()
	if !ok {
		var zero T
		return zero, false
	}
	item, _, _ := s.items.Get(pos)
	return item, true
}
