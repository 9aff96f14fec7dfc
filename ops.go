// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yielding

// Config selects the behaviour of an [Ops] instance.
// The zero Config uses [DefaultMode], [DefaultCosts] and no allocator
// accounting.
type Config struct {
	Mode      Mode
	Costs     Costs
	Allocator Allocator
}

// Ops runs the built-in operations under one configuration.
// An Ops is immutable and safe for concurrent use; each call and each
// continuation it returns is owned by its caller. Every call takes a
// non-nil budget; a nil budget fails with [ErrBadArg].
type Ops struct {
	mode  Mode
	costs Costs
	alloc Allocator
}

// New returns an Ops configured by cfg.
func New(cfg Config) *Ops {
	o := &Ops{mode: cfg.Mode.resolve(), costs: cfg.Costs, alloc: cfg.Allocator}
	if o.costs == (Costs{}) {
		o.costs = DefaultCosts
	}
	if o.alloc == nil {
		o.alloc = heapAllocator{}
	}
	return o
}

// Mode returns the resolved mode.
func (o *Ops) Mode() Mode { return o.mode }

// Cost returns the reductions charged per traversal unit of op.
func (o *Ops) Cost(op Op) int64 { return o.costs.of(op) }

// InsertList inserts every tuple of list into tab.
//
// Each element must be a [Tuple] long enough to hold a valid key at the
// table's key position. Under [InsertNew] the operation fails with
// [ErrKeyExists] at the first element whose key is already in the table.
//
// A failure ends the whole operation but does not roll it back: elements
// before the failing one, including those inserted by earlier calls of a
// split run, stay in the table. Callers needing all-or-nothing insertion
// must check the keys first or insert into a scratch table. Completes
// with [True].
func (o *Ops) InsertList(b *Budget, tab *Table, list Term, mode InsertMode) (Term, *Continuation, error) {
	if tab == nil {
		return nil, nil, badArg(OpInsertList, -1, "no table")
	}
	if mode != Insert && mode != InsertNew {
		return nil, nil, badArg(OpInsertList, -1, "unknown insert mode")
	}
	return o.start(OpInsertList, newInsertList(tab, list, mode), b)
}

// MapFromList builds a [*Map] from a list of {Key, Value} pairs.
// When a key repeats, the value of its last occurrence wins.
func (o *Ops) MapFromList(b *Budget, list Term) (Term, *Continuation, error) {
	return o.start(OpMapFromList, newMapFromList(list), b)
}

// MapFromKeys builds a [*Map] binding every key in keys to value.
func (o *Ops) MapFromKeys(b *Budget, keys, value Term) (Term, *Continuation, error) {
	return o.start(OpMapFromKeys, newMapFromKeys(keys, value), b)
}

// MapKeys returns the keys of m as a list, in m's iteration order.
func (o *Ops) MapKeys(b *Budget, m Term) (Term, *Continuation, error) {
	src, ok := m.(*Map)
	if !ok {
		return nil, nil, badArg(OpMapKeys, -1, "not a map")
	}
	return o.start(OpMapKeys, newMapTraversal(OpMapKeys, src), b)
}

// MapValues returns the values of m as a list, in m's iteration order.
func (o *Ops) MapValues(b *Budget, m Term) (Term, *Continuation, error) {
	src, ok := m.(*Map)
	if !ok {
		return nil, nil, badArg(OpMapValues, -1, "not a map")
	}
	return o.start(OpMapValues, newMapTraversal(OpMapValues, src), b)
}

// start runs a fresh state machine. A continuation is created only when
// the first call traps; a call that completes or fails never allocates one.
func (o *Ops) start(op Op, m machine, b *Budget) (Term, *Continuation, error) {
	if b == nil {
		m.release()
		return nil, nil, badArg(op, -1, "nil budget")
	}
	cost := o.costs.of(op)
	if o.mode == ModeOneShot {
		v, err := complete(m, b, cost)
		m.release()
		return v, nil, err
	}
	v, n, done, err := drive(m, b, cost)
	if err != nil || done {
		m.release()
		return v, nil, err
	}
	c := acquireContinuation(op, m, cost, o.alloc)
	c.units = n
	if err := c.reserve(); err != nil {
		c.free()
		return nil, nil, err
	}
	return nil, c, nil
}

var std = New(Config{})

// InsertList runs [Ops.InsertList] with the default configuration.
func InsertList(b *Budget, tab *Table, list Term, mode InsertMode) (Term, *Continuation, error) {
	return std.InsertList(b, tab, list, mode)
}

// MapFromList runs [Ops.MapFromList] with the default configuration.
func MapFromList(b *Budget, list Term) (Term, *Continuation, error) {
	return std.MapFromList(b, list)
}

// MapFromKeys runs [Ops.MapFromKeys] with the default configuration.
func MapFromKeys(b *Budget, keys, value Term) (Term, *Continuation, error) {
	return std.MapFromKeys(b, keys, value)
}

// MapKeys runs [Ops.MapKeys] with the default configuration.
func MapKeys(b *Budget, m Term) (Term, *Continuation, error) {
	return std.MapKeys(b, m)
}

// MapValues runs [Ops.MapValues] with the default configuration.
func MapValues(b *Budget, m Term) (Term, *Continuation, error) {
	return std.MapValues(b, m)
}
