// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yielding

import "unsafe"

// machine is the explicit state of one operation family: a cursor into
// the input, the partial result, and any bookkeeping needed to reproduce
// the run-to-completion semantics exactly.
//
// A traversal unit is checked, then advanced. check must not change any
// state; advance consumes exactly one unit.
type machine interface {
	done() bool
	check() error
	advance() error
	result() Term
	footprint() int
	release()
}

// Approximate per-unit footprints used for allocator accounting.
const (
	termSize  = int(unsafe.Sizeof(Term(nil)))
	consSize  = int(unsafe.Sizeof(Cons{}))
	entrySize = 3*termSize + int(unsafe.Sizeof(int(0)))
	keySize   = 2 * termSize
)

// listCell returns the cell under cursor, or a bad argument error if the
// cursor is neither a cell nor the end of a proper list.
func listCell(op Op, cur Term, idx int) (*Cons, error) {
	c, ok := cur.(*Cons)
	if !ok {
		return nil, badArg(op, idx, "not a proper list")
	}
	return c, nil
}

func atEnd(cur Term) bool {
	_, ok := cur.(NilList)
	return ok
}

// listBuilder appends cells to a proper list in order.
type listBuilder struct {
	head *Cons
	last *Cons
	n    int
}

func (l *listBuilder) push(t Term) {
	c := &Cons{Head: t, Tail: Nil}
	if l.last == nil {
		l.head = c
	} else {
		l.last.Tail = c
	}
	l.last = c
	l.n++
}

func (l *listBuilder) finish() Term {
	if l.head == nil {
		return Nil
	}
	h := l.head
	*l = listBuilder{}
	return h
}
