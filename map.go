// Package hintmap implements an ordered key/value list that mimics the
// observable behaviour of a C++ std::map together with its iterators.
//
// Entries live in a doubly linked list kept in comparator order. Lookups are
// sequential. Insertion can start from a caller supplied hint, which matters
// when keys are not strictly transitive: searching from the head or from the
// tail may settle on different positions. The key of an inserted entry can be
// replaced without moving the entry.
//
// A Map is not safe for concurrent use.
package hintmap

import (
	"golang.org/x/exp/constraints"
)

type (
	// Less reports whether a sorts before b. It must be irreflexive and asymmetric.
	Less[K any] func(a, b K) bool

	// Position is a handle to an entry of a Map. The zero Position refers to nothing.
	// A Position stays valid until its entry is removed or the map is cleared;
	// replacing the key or value of the entry does not invalidate it.
	// A Position only has meaning on the map that returned it; passing it to
	// another map may resolve to an unrelated entry of that map.
	Position struct {
		idx int
		gen uint64
	}

	Map[K, V any] struct {
		less  Less[K]
		nodes arena[K, V]
		head  int
		tail  int
		size  int
	}

	config struct {
		capacity int
	}

	Option func(c *config)
)

// WithCapacity preallocates room for n entries.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// New creates an empty map ordered by less.
func New[K, V any](less Less[K], options ...Option) *Map[K, V] {
	if less == nil {
		panic("hintmap: nil comparator")
	}

	cfg := config{}
	for _, o := range options {
		o(&cfg)
	}

	return &Map[K, V]{
		less:  less,
		nodes: newArena[K, V](cfg.capacity),
		head:  none,
		tail:  none,
	}
}

// NewOrdered creates an empty map ordered by the < operator of K.
func NewOrdered[K constraints.Ordered, V any](options ...Option) *Map[K, V] {
	return New[K, V](func(a, b K) bool { return a < b }, options...)
}

// IsValid reports whether p was produced by a map. It does not tell
// whether the entry is still alive, use Map.Has for that.
func (p Position) IsValid() bool {
	return p.gen != 0
}

func (m *Map[K, V]) equivalent(a, b K) bool {
	return !m.less(a, b) && !m.less(b, a)
}

func (m *Map[K, V]) Len() int {
	return m.size
}

func (m *Map[K, V]) IsEmpty() bool {
	return m.size == 0
}

// Clear removes all entries. Every Position taken before is invalidated.
func (m *Map[K, V]) Clear() {
	m.nodes.reset()
	m.head = none
	m.tail = none
	m.size = 0
}

// Has reports whether pos refers to a live entry.
func (m *Map[K, V]) Has(pos Position) bool {
	_, err := m.nodes.lookup(pos)
	return err == nil
}

// Front returns the position of the first entry.
func (m *Map[K, V]) Front() (Position, bool) {
	if m.head == none {
		return Position{}, false
	}
	return m.nodes.position(m.head), true
}

// Back returns the position of the last entry.
func (m *Map[K, V]) Back() (Position, bool) {
	if m.tail == none {
		return Position{}, false
	}
	return m.nodes.position(m.tail), true
}

// Next returns the position following pos.
func (m *Map[K, V]) Next(pos Position) (Position, bool) {
	s, err := m.nodes.lookup(pos)
	if err != nil || s.next == none {
		return Position{}, false
	}
	return m.nodes.position(s.next), true
}

// Prev returns the position preceding pos.
func (m *Map[K, V]) Prev(pos Position) (Position, bool) {
	s, err := m.nodes.lookup(pos)
	if err != nil || s.prev == none {
		return Position{}, false
	}
	return m.nodes.position(s.prev), true
}

// Get returns the key and value stored at pos.
func (m *Map[K, V]) Get(pos Position) (K, V, error) {
	s, err := m.nodes.lookup(pos)
	if err != nil {
		return getZero[K](), getZero[V](), err
	}
	return s.key, s.value, nil
}

func (m *Map[K, V]) Key(pos Position) (K, error) {
	s, err := m.nodes.lookup(pos)
	if err != nil {
		return getZero[K](), err
	}
	return s.key, nil
}

func (m *Map[K, V]) Value(pos Position) (V, error) {
	s, err := m.nodes.lookup(pos)
	if err != nil {
		return getZero[V](), err
	}
	return s.value, nil
}

// Lookup returns the value stored under an entry equivalent to key.
func (m *Map[K, V]) Lookup(key K) (V, bool) {
	pos, found := m.Find(key)
	if !found {
		return getZero[V](), false
	}
	return m.nodes.slots[pos.idx].value, true
}

// Contains reports whether an entry equivalent to key exists.
func (m *Map[K, V]) Contains(key K) bool {
	_, found := m.Find(key)
	return found
}

// Find scans from the head and returns the first entry whose key is
// equivalent to key under the comparator.
func (m *Map[K, V]) Find(key K) (Position, bool) {
	idx := m.scan(m.head, forward, key)
	if idx == none {
		return Position{}, false
	}
	return m.nodes.position(idx), true
}

// FindFrom looks for an entry equivalent to key starting at start. The scan
// goes towards the tail unless key sorts before the key at start, in which
// case it goes towards the head. When that direction is exhausted, the rest
// of the list is scanned the other way. The entry found therefore depends on
// start when several entries are equivalent to key.
//
// A start that does not refer to a live entry falls back to Find.
func (m *Map[K, V]) FindFrom(start Position, key K) (Position, bool) {
	s, err := m.nodes.lookup(start)
	if err != nil {
		return m.Find(key)
	}

	idx := m.findFrom(start.idx, s, key)
	if idx == none {
		return Position{}, false
	}
	return m.nodes.position(idx), true
}

func (m *Map[K, V]) findFrom(startIdx int, start *slot[K, V], key K) int {
	if m.less(key, start.key) {
		if idx := m.scan(startIdx, backward, key); idx != none {
			return idx
		}
		return m.scan(start.next, forward, key)
	}

	if idx := m.scan(startIdx, forward, key); idx != none {
		return idx
	}
	return m.scan(start.prev, backward, key)
}

// scan walks from idx in direction dir and returns the first equivalent entry.
func (m *Map[K, V]) scan(idx int, dir direction, key K) int {
	for idx != none {
		s := &m.nodes.slots[idx]
		if m.equivalent(s.key, key) {
			return idx
		}
		if dir == forward {
			idx = s.next
		} else {
			idx = s.prev
		}
	}
	return none
}

// LowerBound returns the first entry whose key does not sort before key.
// The search runs from the tail towards the head and stops at the first
// entry that sorts before key.
func (m *Map[K, V]) LowerBound(key K) (Position, bool) {
	match := none
	for idx := m.tail; idx != none; {
		s := &m.nodes.slots[idx]
		if m.less(s.key, key) {
			break
		}
		match = idx
		idx = s.prev
	}

	if match == none {
		return Position{}, false
	}
	return m.nodes.position(match), true
}

// Insert is InsertWithHint with the head as hint.
func (m *Map[K, V]) Insert(key K, value V) (Position, bool) {
	return m.InsertWithHint(Position{}, key, value)
}

// InsertWithHint adds key and value unless an entry equivalent to key already
// exists. In that case nothing changes, the value is discarded and the
// position of the existing entry is returned together with false.
//
// The hint is where the search for the existing entry and for the insertion
// point begins. It does not need to be exact; a hint that does not refer to a
// live entry is treated as the head.
func (m *Map[K, V]) InsertWithHint(hint Position, key K, value V) (Position, bool) {
	startIdx := m.head
	if _, err := m.nodes.lookup(hint); err == nil {
		startIdx = hint.idx
	}

	if startIdx == none {
		return m.nodes.position(m.pushBack(key, value)), true
	}

	if idx := m.findFrom(startIdx, &m.nodes.slots[startIdx], key); idx != none {
		return m.nodes.position(idx), false
	}

	return m.nodes.position(m.insertOrdered(startIdx, key, value)), true
}

// Set stores value under key. An existing equivalent entry keeps its key and
// position and only has its value overwritten; otherwise a new entry is
// inserted in order.
func (m *Map[K, V]) Set(key K, value V) Position {
	if idx := m.scan(m.head, forward, key); idx != none {
		m.nodes.slots[idx].value = value
		return m.nodes.position(idx)
	}

	if m.head == none {
		return m.nodes.position(m.pushBack(key, value))
	}
	return m.nodes.position(m.insertOrdered(m.head, key, value))
}

// SetValue overwrites the value at pos.
func (m *Map[K, V]) SetValue(pos Position, value V) error {
	s, err := m.nodes.lookup(pos)
	if err != nil {
		return err
	}
	s.value = value
	return nil
}

// ReplaceKey overwrites the key at pos without moving the entry. If the new
// key does not sort to the same place the list is left out of order; see
// IsSorted and Sort.
func (m *Map[K, V]) ReplaceKey(pos Position, key K) error {
	s, err := m.nodes.lookup(pos)
	if err != nil {
		return err
	}
	s.key = key
	return nil
}

// Remove unlinks the entry at pos and returns its key and value.
func (m *Map[K, V]) Remove(pos Position) (K, V, error) {
	s, err := m.nodes.lookup(pos)
	if err != nil {
		return getZero[K](), getZero[V](), err
	}

	key, value := s.key, s.value
	m.unlink(pos.idx)
	m.nodes.release(pos.idx)
	m.size--

	return key, value, nil
}

func (m *Map[K, V]) PopFront() (K, V, bool) {
	if m.head == none {
		return getZero[K](), getZero[V](), false
	}
	key, value, _ := m.Remove(m.nodes.position(m.head))
	return key, value, true
}

func (m *Map[K, V]) PopBack() (K, V, bool) {
	if m.tail == none {
		return getZero[K](), getZero[V](), false
	}
	key, value, _ := m.Remove(m.nodes.position(m.tail))
	return key, value, true
}

// insertOrdered links a new entry relative to startIdx: forward to the first
// entry that key sorts before when key does not sort before the start entry,
// backward past every entry key sorts before otherwise.
func (m *Map[K, V]) insertOrdered(startIdx int, key K, value V) int {
	before := none
	idx := startIdx

	if !m.less(key, m.nodes.slots[startIdx].key) {
		for idx != none {
			s := &m.nodes.slots[idx]
			if m.less(key, s.key) {
				before = idx
				break
			}
			idx = s.next
		}
	} else {
		for idx != none {
			s := &m.nodes.slots[idx]
			if !m.less(key, s.key) {
				break
			}
			before = idx
			idx = s.prev
		}
	}

	if before == none {
		return m.pushBack(key, value)
	}
	return m.insertBefore(before, key, value)
}

func (m *Map[K, V]) pushBack(key K, value V) int {
	idx := m.nodes.alloc(key, value)
	s := &m.nodes.slots[idx]
	s.prev = m.tail
	if m.tail != none {
		m.nodes.slots[m.tail].next = idx
	} else {
		m.head = idx
	}
	m.tail = idx
	m.size++
	return idx
}

func (m *Map[K, V]) insertBefore(at int, key K, value V) int {
	idx := m.nodes.alloc(key, value)
	s := &m.nodes.slots[idx]
	next := &m.nodes.slots[at]

	s.next = at
	s.prev = next.prev
	if next.prev != none {
		m.nodes.slots[next.prev].next = idx
	} else {
		m.head = idx
	}
	next.prev = idx
	m.size++
	return idx
}

func (m *Map[K, V]) unlink(idx int) {
	s := &m.nodes.slots[idx]
	if s.prev != none {
		m.nodes.slots[s.prev].next = s.next
	} else {
		m.head = s.next
	}
	if s.next != none {
		m.nodes.slots[s.next].prev = s.prev
	} else {
		m.tail = s.prev
	}
	s.prev, s.next = none, none
}
