// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yielding

import "unsafe"

// mapFromListState builds a map from a list of {Key, Value} pairs.
// A key seen again keeps its first position and takes the later value.
type mapFromListState struct {
	cur Term
	idx int
	acc mapBuilder
}

func newMapFromList(list Term) *mapFromListState {
	return &mapFromListState{cur: list}
}

func (s *mapFromListState) done() bool { return atEnd(s.cur) }

func (s *mapFromListState) check() error {
	c, err := listCell(OpMapFromList, s.cur, s.idx)
	if err != nil {
		return err
	}
	pair, ok := c.Head.(Tuple)
	if !ok || len(pair) != 2 {
		return badArg(OpMapFromList, s.idx, "element is not a {Key, Value} pair")
	}
	if !isKey(pair[0]) {
		return badArg(OpMapFromList, s.idx, "invalid key type")
	}
	return nil
}

func (s *mapFromListState) advance() error {
	c := s.cur.(*Cons)
	pair := c.Head.(Tuple)
	s.acc.put(pair[0], pair[1])
	s.cur = c.Tail
	s.idx++
	return nil
}

func (s *mapFromListState) result() Term { return s.acc.finish() }

func (s *mapFromListState) footprint() int {
	return int(unsafe.Sizeof(*s)) + s.acc.len()*entrySize
}

func (s *mapFromListState) release() {
	s.acc.reset()
	*s = mapFromListState{}
}

// mapFromKeysState builds a map binding every key of a list to one value.
// Repeated keys collapse onto their first position.
type mapFromKeysState struct {
	cur   Term
	idx   int
	value Term
	acc   mapBuilder
}

func newMapFromKeys(keys, value Term) *mapFromKeysState {
	return &mapFromKeysState{cur: keys, value: value}
}

func (s *mapFromKeysState) done() bool { return atEnd(s.cur) }

func (s *mapFromKeysState) check() error {
	c, err := listCell(OpMapFromKeys, s.cur, s.idx)
	if err != nil {
		return err
	}
	if !isKey(c.Head) {
		return badArg(OpMapFromKeys, s.idx, "invalid key type")
	}
	return nil
}

func (s *mapFromKeysState) advance() error {
	c := s.cur.(*Cons)
	s.acc.put(c.Head, s.value)
	s.cur = c.Tail
	s.idx++
	return nil
}

func (s *mapFromKeysState) result() Term { return s.acc.finish() }

func (s *mapFromKeysState) footprint() int {
	return int(unsafe.Sizeof(*s)) + s.acc.len()*entrySize
}

func (s *mapFromKeysState) release() {
	s.acc.reset()
	*s = mapFromKeysState{}
}

// mapTraversalState extracts the keys or the values of a map into a list,
// following the map's iteration order.
type mapTraversalState struct {
	op  Op
	src *Map
	i   int
	out listBuilder
}

func newMapTraversal(op Op, src *Map) *mapTraversalState {
	return &mapTraversalState{op: op, src: src}
}

func (s *mapTraversalState) done() bool { return s.i >= s.src.Len() }

func (s *mapTraversalState) check() error { return nil }

func (s *mapTraversalState) advance() error {
	k, v := s.src.entry(s.i)
	if s.op == OpMapKeys {
		s.out.push(k)
	} else {
		s.out.push(v)
	}
	s.i++
	return nil
}

func (s *mapTraversalState) result() Term { return s.out.finish() }

func (s *mapTraversalState) footprint() int {
	return int(unsafe.Sizeof(*s)) + s.out.n*consSize
}

func (s *mapTraversalState) release() {
	*s = mapTraversalState{}
}
