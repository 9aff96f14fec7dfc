// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yielding

import (
	"slices"
	"sync"
)

// Table is a set-semantics tuple store shared by many processes.
//
// Every stored object is a [Tuple] whose key lives at the table's 1-based
// key position. At most one object exists per key, with keys matched
// under [Equal]; inserting an object with an existing key replaces it in
// place. All locking is internal to the table.
type Table struct {
	mu      sync.RWMutex
	keypos  int
	index   map[Term]int
	objects []Tuple
}

// NewTable creates an empty table keyed by element keypos (1-based).
// Panics if keypos < 1.
func NewTable(keypos int) *Table {
	if keypos < 1 {
		panic("yielding: table key position must be positive")
	}
	return &Table{keypos: keypos, index: make(map[Term]int)}
}

// KeyPos returns the 1-based key position.
func (t *Table) KeyPos() int { return t.keypos }

// keyOf returns the index form of obj's key, or false if obj does not fit
// the table.
func (t *Table) keyOf(obj Term) (Term, bool) {
	tup, ok := obj.(Tuple)
	if !ok || len(tup) < t.keypos {
		return nil, false
	}
	k := tup[t.keypos-1]
	if !isKey(k) {
		return nil, false
	}
	return indexKey(k), true
}

// Insert stores obj, replacing any object with the same key.
func (t *Table) Insert(obj Tuple) error {
	k, ok := t.keyOf(obj)
	if !ok {
		return &ArgError{Op: OpInsertList, Index: -1, Reason: "object does not fit table"}
	}
	t.put(k, obj)
	return nil
}

// InsertNew stores obj only if its key is absent.
// Returns [ErrKeyExists] otherwise.
func (t *Table) InsertNew(obj Tuple) error {
	k, ok := t.keyOf(obj)
	if !ok {
		return &ArgError{Op: OpInsertList, Index: -1, Reason: "object does not fit table"}
	}
	if !t.putNew(k, obj, false) {
		return ErrKeyExists
	}
	return nil
}

func (t *Table) put(k Term, obj Tuple) {
	t.mu.Lock()
	t.store(k, obj)
	t.mu.Unlock()
}

// putNew stores obj under k if k is absent, or if overwrite is set.
// Reports whether obj was stored.
func (t *Table) putNew(k Term, obj Tuple, overwrite bool) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, exists := t.index[k]; exists && !overwrite {
		return false
	}
	t.store(k, obj)
	return true
}

// store requires t.mu held for writing.
func (t *Table) store(k Term, obj Tuple) {
	if i, ok := t.index[k]; ok {
		t.objects[i] = obj
		return
	}
	t.index[k] = len(t.objects)
	t.objects = append(t.objects, obj)
}

func (t *Table) has(k Term) bool {
	t.mu.RLock()
	_, ok := t.index[k]
	t.mu.RUnlock()
	return ok
}

// Lookup returns the object stored under key.
func (t *Table) Lookup(key Term) (Tuple, bool) {
	if !isKey(key) {
		return nil, false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	i, ok := t.index[indexKey(key)]
	if !ok {
		return nil, false
	}
	return t.objects[i], true
}

// Len returns the number of stored objects.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.objects)
}

// Snapshot returns the stored objects in the order their keys were first
// inserted.
func (t *Table) Snapshot() []Tuple {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return slices.Clone(t.objects)
}
