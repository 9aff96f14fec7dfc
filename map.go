// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yielding

import "iter"

// Map is an immutable association of keys to values.
// Keys match under [Equal].
//
// Iteration order is the order in which keys were first inserted.
// Storing a value under an existing key replaces the value in place and
// keeps the key's position. Maps are never mutated once built, so a
// suspended traversal may hold one across any number of Resumes.
type Map struct {
	keys  []Term
	vals  []Term
	index map[Term]int
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Get returns the value stored under k.
func (m *Map) Get(k Term) (Term, bool) {
	if m == nil || !isKey(k) {
		return nil, false
	}
	i, ok := m.index[indexKey(k)]
	if !ok {
		return nil, false
	}
	return m.vals[i], true
}

// Put returns a copy of m with k bound to v.
// Panics if k is not a valid key.
func (m *Map) Put(k, v Term) *Map {
	if !isKey(k) {
		panic("yielding: invalid map key")
	}
	var b mapBuilder
	b.grow(m.Len() + 1)
	for i := range m.Len() {
		b.put(m.keys[i], m.vals[i])
	}
	b.put(k, v)
	return b.finish()
}

// Keys returns the keys in iteration order.
func (m *Map) Keys() []Term {
	if m == nil {
		return nil
	}
	return append([]Term(nil), m.keys...)
}

// Values returns the values in iteration order.
func (m *Map) Values() []Term {
	if m == nil {
		return nil
	}
	return append([]Term(nil), m.vals...)
}

// All iterates over the entries in iteration order.
func (m *Map) All() iter.Seq2[Term, Term] {
	return func(yield func(Term, Term) bool) {
		for i := range m.Len() {
			if !yield(m.keys[i], m.vals[i]) {
				return
			}
		}
	}
}

// Equal reports whether m and o hold the same entries in the same order.
func (m *Map) Equal(o *Map) bool {
	if m.Len() != o.Len() {
		return false
	}
	for i := range m.Len() {
		if !Equal(m.keys[i], o.keys[i]) || !Equal(m.vals[i], o.vals[i]) {
			return false
		}
	}
	return true
}

// entry returns the i-th entry in iteration order.
func (m *Map) entry(i int) (Term, Term) {
	return m.keys[i], m.vals[i]
}

// mapBuilder accumulates entries for a Map under construction.
// The index doubles as the last-write-wins bookkeeping for duplicate keys.
type mapBuilder struct {
	keys  []Term
	vals  []Term
	index map[Term]int
}

func (b *mapBuilder) grow(n int) {
	if b.index == nil {
		b.index = make(map[Term]int, n)
	}
}

// put binds k to v and reports whether k is new.
func (b *mapBuilder) put(k, v Term) bool {
	if b.index == nil {
		b.index = make(map[Term]int)
	}
	ik := indexKey(k)
	if i, ok := b.index[ik]; ok {
		b.vals[i] = v
		return false
	}
	b.index[ik] = len(b.keys)
	b.keys = append(b.keys, k)
	b.vals = append(b.vals, v)
	return true
}

func (b *mapBuilder) len() int { return len(b.keys) }

// finish hands the accumulated entries to a new Map and resets b.
func (b *mapBuilder) finish() *Map {
	m := &Map{keys: b.keys, vals: b.vals, index: b.index}
	if m.index == nil {
		m.index = map[Term]int{}
	}
	*b = mapBuilder{}
	return m
}

// reset drops the accumulated entries.
func (b *mapBuilder) reset() {
	clear(b.index)
	*b = mapBuilder{}
}
