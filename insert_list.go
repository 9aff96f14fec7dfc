// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yielding

import "unsafe"

// insertListState inserts the tuples of a list into a table, one cell per
// unit. Under InsertNew it remembers the keys it wrote itself, so a key
// repeated inside the list overwrites its own earlier object instead of
// tripping the key-exists check.
type insertListState struct {
	tab     *Table
	mode    InsertMode
	cur     Term
	idx     int
	written map[Term]struct{}
}

func newInsertList(tab *Table, list Term, mode InsertMode) *insertListState {
	s := &insertListState{tab: tab, mode: mode, cur: list}
	if mode == InsertNew {
		s.written = make(map[Term]struct{})
	}
	return s
}

func (s *insertListState) done() bool { return atEnd(s.cur) }

func (s *insertListState) check() error {
	c, err := listCell(OpInsertList, s.cur, s.idx)
	if err != nil {
		return err
	}
	k, ok := s.tab.keyOf(c.Head)
	if !ok {
		return badArg(OpInsertList, s.idx, "element is not a tuple with a valid key")
	}
	if s.mode == InsertNew {
		if _, mine := s.written[k]; !mine && s.tab.has(k) {
			return s.keyExists()
		}
	}
	return nil
}

func (s *insertListState) keyExists() error {
	return &ArgError{Op: OpInsertList, Index: s.idx, Reason: "key already exists", Err: ErrKeyExists}
}

func (s *insertListState) advance() error {
	c := s.cur.(*Cons)
	obj := c.Head.(Tuple)
	k, _ := s.tab.keyOf(obj)
	if s.mode == InsertNew {
		_, mine := s.written[k]
		if !s.tab.putNew(k, obj, mine) {
			return s.keyExists()
		}
		s.written[k] = struct{}{}
	} else {
		s.tab.put(k, obj)
	}
	s.cur = c.Tail
	s.idx++
	return nil
}

func (s *insertListState) result() Term { return True }

func (s *insertListState) footprint() int {
	return int(unsafe.Sizeof(*s)) + len(s.written)*keySize
}

func (s *insertListState) release() {
	clear(s.written)
	*s = insertListState{}
}
