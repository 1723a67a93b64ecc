package hintmap

import (
	"context"

	"github.com/pkg/errors"
)

type (
	FilterFn[K, V any]       func(key K, value V, order int) bool
	ForEachFn[K, V any]      func(key K, value V, order int)
	ForEachUntilFn[K, V any] func(key K, value V, order int) bool
	TransformerFn[K, V any]  func(key K, value V, order int) V

	// IteratorContext is called for every entry by ForEachContext.
	// Returning an error stops the iteration.
	IteratorContext[K, V any] func(ctx context.Context, key K, value V) error

	// Reducer takes a carry from previous iteration with a key and a value
	// and returns a new version of carry
	Reducer[K, V, R any] func(carry R, key K, value V) R
)

func (m *Map[K, V]) ForEach(f ForEachFn[K, V]) {
	order := 0
	for k, v := range m.All() {
		f(k, v, order)
		order++
	}
}

func (m *Map[K, V]) ForEachUntil(f ForEachUntilFn[K, V]) *Map[K, V] {
	order := 0
	for k, v := range m.All() {
		if !f(k, v, order) {
			break
		}
		order++
	}

	return m
}

// ForEachContext calls f for each entry until f fails or ctx is done.
func (m *Map[K, V]) ForEachContext(ctx context.Context, f IteratorContext[K, V]) error {
	for k, v := range m.All() {
		if ctx.Err() != nil {
			return errors.Wrap(ctx.Err(), "iteration interrupted")
		}

		if err := f(ctx, k, v); err != nil {
			return err
		}
	}

	return nil
}

// Filter returns a new map with the same comparator holding the entries
// for which f returns true. The entries keep their current order, including
// any disorder left behind by ReplaceKey.
func (m *Map[K, V]) Filter(f FilterFn[K, V]) *Map[K, V] {
	result := m.empty()

	order := 0
	for k, v := range m.All() {
		if f(k, v, order) {
			result.appendUnchecked(k, v)
		}
		order++
	}

	return result
}

// Transform returns a new map with every value replaced by the result of f.
// The entries keep their current order, including any disorder left behind
// by ReplaceKey.
func (m *Map[K, V]) Transform(f TransformerFn[K, V]) *Map[K, V] {
	result := m.empty()

	order := 0
	for k, v := range m.All() {
		result.appendUnchecked(k, f(k, v, order))
		order++
	}

	return result
}

// Clone copies the entries in their current order, including any disorder
// left behind by ReplaceKey. Positions of m do not apply to the clone.
func (m *Map[K, V]) Clone() *Map[K, V] {
	result := m.empty()
	for k, v := range m.All() {
		result.appendUnchecked(k, v)
	}
	return result
}

// Reduce folds the entries of m in order.
func Reduce[K, V, R any](m *Map[K, V], initial R, reducer Reducer[K, V, R]) R {
	carry := initial
	for k, v := range m.All() {
		carry = reducer(carry, k, v)
	}
	return carry
}

func (m *Map[K, V]) empty() *Map[K, V] {
	return New[K, V](m.less, WithCapacity(m.size))
}

// appendUnchecked links a new entry at the tail regardless of order.
func (m *Map[K, V]) appendUnchecked(key K, value V) {
	m.pushBack(key, value)
}
