package hintmap

import "github.com/pkg/errors"

// Cursor is a movable position in a Map, in the spirit of a std::map
// iterator. Moving past either end leaves the cursor out of bounds, where
// Valid returns false and accessors fail with ErrStaleHandle.
type Cursor[K, V any] struct {
	m   *Map[K, V]
	pos Position
}

// Cursor returns a cursor placed at the head.
func (m *Map[K, V]) Cursor() *Cursor[K, V] {
	return &Cursor[K, V]{m: m, pos: m.nodes.position(m.head)}
}

// CursorAt returns a cursor placed at pos.
func (m *Map[K, V]) CursorAt(pos Position) *Cursor[K, V] {
	return &Cursor[K, V]{m: m, pos: pos}
}

// LowerBoundCursor returns a cursor at LowerBound(key), out of bounds if there is none.
func (m *Map[K, V]) LowerBoundCursor(key K) *Cursor[K, V] {
	pos, _ := m.LowerBound(key)
	return &Cursor[K, V]{m: m, pos: pos}
}

func (c *Cursor[K, V]) Position() Position {
	return c.pos
}

// Valid reports whether the cursor points at a live entry.
func (c *Cursor[K, V]) Valid() bool {
	return c.m.Has(c.pos)
}

func (c *Cursor[K, V]) IsAtHead() bool {
	return c.Valid() && c.pos.idx == c.m.head
}

func (c *Cursor[K, V]) IsAtTail() bool {
	return c.Valid() && c.pos.idx == c.m.tail
}

func (c *Cursor[K, V]) MoveToHead() {
	c.pos = c.m.nodes.position(c.m.head)
}

func (c *Cursor[K, V]) MoveToTail() {
	c.pos = c.m.nodes.position(c.m.tail)
}

// Next moves one step towards the tail.
func (c *Cursor[K, V]) Next() error {
	s, err := c.m.nodes.lookup(c.pos)
	if err != nil {
		return errors.Wrap(err, "cursor next")
	}
	c.pos = c.m.nodes.position(s.next)
	return nil
}

// Prev moves one step towards the head.
func (c *Cursor[K, V]) Prev() error {
	s, err := c.m.nodes.lookup(c.pos)
	if err != nil {
		return errors.Wrap(err, "cursor prev")
	}
	c.pos = c.m.nodes.position(s.prev)
	return nil
}

func (c *Cursor[K, V]) Key() (K, error) {
	return c.m.Key(c.pos)
}

func (c *Cursor[K, V]) Value() (V, error) {
	return c.m.Value(c.pos)
}

func (c *Cursor[K, V]) SetValue(value V) error {
	return c.m.SetValue(c.pos, value)
}

// ReplaceKey replaces the key under the cursor without moving the entry.
func (c *Cursor[K, V]) ReplaceKey(key K) error {
	return c.m.ReplaceKey(c.pos, key)
}

// Remove deletes the entry under the cursor and moves to its former
// predecessor, or to its former successor when it was the head.
func (c *Cursor[K, V]) Remove() (K, V, error) {
	s, err := c.m.nodes.lookup(c.pos)
	if err != nil {
		return getZero[K](), getZero[V](), errors.Wrap(err, "cursor remove")
	}

	prev, next := s.prev, s.next
	key, value, err := c.m.Remove(c.pos)
	if err != nil {
		return key, value, err
	}

	if prev != none {
		c.pos = c.m.nodes.position(prev)
	} else {
		c.pos = c.m.nodes.position(next)
	}

	return key, value, nil
}
