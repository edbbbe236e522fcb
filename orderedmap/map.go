// Package orderedmap implements an in-memory ordered map backed by a
// red-black tree.
//
// Both insertion and deletion rebalance top-down in a single pass from the
// root, so nodes carry no parent pointers. Besides exact lookups the map
// answers nearest-key queries (Floor, Ceiling) and iterates in ascending
// key order.
//
// A Map is not safe for concurrent use.
package orderedmap

import (
	"cmp"
	"iter"
)

// Entry is a key-value pair stored in a Map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// Map is an ordered map from K to V.
type Map[K, V any] struct {
	root  *node[K, V]
	count int
	cmp   func(a, b K) int
}

// New returns an empty Map ordered by K's natural ordering.
func New[K cmp.Ordered, V any]() *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K])
}

// NewFunc returns an empty Map ordered by compare, which must define a
// total order and return a negative number, zero or a positive number when
// a < b, a == b or a > b respectively.
func NewFunc[K, V any](compare func(a, b K) int) *Map[K, V] {
	return &Map[K, V]{cmp: compare}
}

// Count returns the number of entries in the map.
func (m *Map[K, V]) Count() int {
	return m.count
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.count == 0
}

// Clear removes all entries.
func (m *Map[K, V]) Clear() {
	m.root = nil
	m.count = 0
}

// Put inserts key with value, or overwrites the value if key is already
// present. It reports whether a new entry was created.
func (m *Map[K, V]) Put(key K, value V) bool {
	if m.root == nil {
		m.root = &node[K, V]{key: key, value: value}
		m.count = 1
		return true
	}

	var (
		head     node[K, V] // false root
		g, p     *node[K, V]
		t        = &head
		q        = m.root
		dir      = left
		last     = left
		inserted bool
	)
	t.link[right] = m.root

	for {
		if q == nil {
			q = &node[K, V]{key: key, value: value, red: true}
			p.link[dir] = q
			m.count++
			inserted = true
		} else if isRed(q.link[left]) && isRed(q.link[right]) {
			q.red = true
			q.link[left].red = false
			q.link[right].red = false
		}

		// Two reds in a row: rotate at the grandparent.
		if isRed(q) && isRed(p) {
			dir2 := left
			if t.link[right] == g {
				dir2 = right
			}
			if q == p.link[last] {
				t.link[dir2] = rotateSingle(g, 1-last)
			} else {
				t.link[dir2] = rotateDouble(g, 1-last)
			}
		}

		if inserted {
			break
		}

		c := m.cmp(q.key, key)
		if c == 0 {
			q.value = value
			break
		}

		last = dir
		dir = left
		if c < 0 {
			dir = right
		}

		if g != nil {
			t = g
		}
		g, p = p, q
		q = q.link[dir]
	}

	m.root = head.link[right]
	m.root.red = false
	return inserted
}

// Delete removes key from the map and returns the removed entry. The
// boolean is false if key was not present.
func (m *Map[K, V]) Delete(key K) (Entry[K, V], bool) {
	if m.root == nil {
		return Entry[K, V]{}, false
	}

	var (
		head  node[K, V] // false root
		g, p  *node[K, V]
		found *node[K, V]
		q     = &head
		dir   = right
	)
	q.link[right] = m.root

	// Walk down to the in-order predecessor of key (or to key itself when
	// it has no left subtree), pushing a red node down along the way so
	// the node finally unlinked is never black.
	for q.link[dir] != nil {
		last := dir

		g, p = p, q
		q = q.link[dir]

		c := m.cmp(q.key, key)
		dir = left
		if c < 0 {
			dir = right
		}
		if c == 0 {
			found = q
		}

		if isRed(q) || isRed(q.link[dir]) {
			continue
		}
		if isRed(q.link[1-dir]) {
			p.link[last] = rotateSingle(q, dir)
			p = p.link[last]
			continue
		}

		s := p.link[1-last]
		if s == nil {
			continue
		}
		if !isRed(s.link[left]) && !isRed(s.link[right]) {
			// Color flip.
			p.red = false
			s.red = true
			q.red = true
			continue
		}

		dir2 := left
		if g.link[right] == p {
			dir2 = right
		}
		if isRed(s.link[last]) {
			g.link[dir2] = rotateDouble(p, last)
		} else if isRed(s.link[1-last]) {
			g.link[dir2] = rotateSingle(p, last)
		}

		q.red = true
		g.link[dir2].red = true
		g.link[dir2].link[left].red = false
		g.link[dir2].link[right].red = false
	}

	var (
		removed Entry[K, V]
		ok      bool
	)
	if found != nil {
		swapPayload(found, q)
		removed, ok = q.entry(), true

		child := q.link[left]
		if child == nil {
			child = q.link[right]
		}
		if p.link[right] == q {
			p.link[right] = child
		} else {
			p.link[left] = child
		}
		q.link = [2]*node[K, V]{}
		m.count--
	}

	m.root = head.link[right]
	if m.root != nil {
		m.root.red = false
	}
	return removed, ok
}

func (m *Map[K, V]) find(key K) *node[K, V] {
	n := m.root
	for n != nil {
		c := m.cmp(key, n.key)
		if c == 0 {
			return n
		}
		if c < 0 {
			n = n.link[left]
		} else {
			n = n.link[right]
		}
	}
	return nil
}

// Get returns the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if n := m.find(key); n != nil {
		return n.value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	return m.find(key) != nil
}

// Min returns the entry with the smallest key.
func (m *Map[K, V]) Min() (Entry[K, V], bool) {
	return m.extreme(left)
}

// Max returns the entry with the largest key.
func (m *Map[K, V]) Max() (Entry[K, V], bool) {
	return m.extreme(right)
}

func (m *Map[K, V]) extreme(dir int) (Entry[K, V], bool) {
	n := m.root
	if n == nil {
		return Entry[K, V]{}, false
	}
	for n.link[dir] != nil {
		n = n.link[dir]
	}
	return n.entry(), true
}

// Floor returns the entry with the greatest key less than or equal to key.
func (m *Map[K, V]) Floor(key K) (Entry[K, V], bool) {
	if n := m.floor(m.root, key); n != nil {
		return n.entry(), true
	}
	return Entry[K, V]{}, false
}

func (m *Map[K, V]) floor(n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}
	c := m.cmp(key, n.key)
	if c == 0 {
		return n
	}
	if c < 0 {
		return m.floor(n.link[left], key)
	}
	if t := m.floor(n.link[right], key); t != nil {
		return t
	}
	return n
}

// Ceiling returns the entry with the smallest key greater than or equal to
// key.
func (m *Map[K, V]) Ceiling(key K) (Entry[K, V], bool) {
	if n := m.ceiling(m.root, key); n != nil {
		return n.entry(), true
	}
	return Entry[K, V]{}, false
}

func (m *Map[K, V]) ceiling(n *node[K, V], key K) *node[K, V] {
	if n == nil {
		return nil
	}
	c := m.cmp(key, n.key)
	if c == 0 {
		return n
	}
	if c > 0 {
		return m.ceiling(n.link[right], key)
	}
	if t := m.ceiling(n.link[left], key); t != nil {
		return t
	}
	return n
}

// All returns an iterator over the entries in ascending key order. Each
// call starts a fresh traversal. The map must not be modified while the
// iteration is in progress.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var stack []*node[K, V]
		n := m.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.link[left]
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.key, n.value) {
				return
			}
			n = n.link[right]
		}
	}
}

// Keys returns an iterator over the keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}
