// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yielding

import (
	"sync/atomic"
	"unsafe"
)

// Continuation is the suspended state of a built-in operation.
//
// A Continuation is returned in place of a result when the operation runs
// out of budget (a trap). It is owned by exactly one holder at a time and
// enforces affine use: Resume or Destroy may be called at most once per
// trap. A Resume that traps again hands back the same record, re-armed for
// one more use. Completion and Destroy both release the record, after
// which the holder must drop every reference to it.
type Continuation struct {
	used  atomic.Uintptr
	op    Op
	m     machine
	cost  int64
	units int
	held  int
	alloc Allocator
}

// Op returns the operation the continuation belongs to.
func (c *Continuation) Op() Op { return c.op }

// Units returns the traversal units completed so far.
func (c *Continuation) Units() int { return c.units }

// Reserved returns the bytes reserved from the allocator.
func (c *Continuation) Reserved() int { return c.held }

// Resume continues the operation with a fresh budget.
// Returns the final result with a nil continuation on completion, or a nil
// result with the continuation when the budget runs out again. A nil
// budget is a bad argument; c is handed back unused and stays owned by
// the caller.
// Panics if the continuation has already been resumed or destroyed.
func (c *Continuation) Resume(b *Budget) (Term, *Continuation, error) {
	if b == nil {
		return nil, c, badArg(c.op, -1, "nil budget")
	}
	if c.used.Add(1) != 1 {
		panic("yielding: continuation resumed twice")
	}
	return c.resume(b)
}

// TryResume is the non-panicking variant of Resume.
// Reports false, without running anything, if the continuation was
// already consumed or b is nil.
func (c *Continuation) TryResume(b *Budget) (Term, *Continuation, bool, error) {
	if b == nil {
		return nil, c, false, badArg(c.op, -1, "nil budget")
	}
	if c.used.Add(1) != 1 {
		return nil, nil, false, nil
	}
	v, next, err := c.resume(b)
	return v, next, true, err
}

// Destroy abandons the operation and releases everything it holds
// without performing further steps.
// Panics if the continuation has already been resumed or destroyed.
func (c *Continuation) Destroy() {
	if c.used.Add(1) != 1 {
		panic("yielding: continuation destroyed after use")
	}
	c.free()
}

// TryDestroy is the non-panicking variant of Destroy.
func (c *Continuation) TryDestroy() bool {
	if c.used.Add(1) != 1 {
		return false
	}
	c.free()
	return true
}

func (c *Continuation) resume(b *Budget) (Term, *Continuation, error) {
	v, n, done, err := drive(c.m, b, c.cost)
	c.units += n
	if err != nil {
		c.free()
		return nil, nil, err
	}
	if done {
		c.free()
		return v, nil, nil
	}
	if err := c.reserve(); err != nil {
		c.free()
		return nil, nil, err
	}
	c.used.Store(0)
	return nil, c, nil
}

// recordSize is the footprint of the continuation record itself.
const recordSize = int(unsafe.Sizeof(Continuation{}))

// reserve brings the allocator reservation in line with the current
// footprint of the state machine.
func (c *Continuation) reserve() error {
	want := recordSize + c.m.footprint()
	switch {
	case want > c.held:
		if err := c.alloc.Alloc(want - c.held); err != nil {
			return ErrNoMemory
		}
	case want < c.held:
		c.alloc.Free(c.held - want)
	default:
		return nil
	}
	c.held = want
	return nil
}

// free releases the state machine, the reservation and the record.
func (c *Continuation) free() {
	if c.m != nil {
		c.m.release()
	}
	if c.held > 0 {
		c.alloc.Free(c.held)
	}
	releaseContinuation(c)
}

// drive runs m until it completes, fails, or the budget no longer covers
// one more unit. Every unit is validated before the budget is consulted,
// so a malformed unit is reported by the call that reaches it rather than
// after a trap. Returns the number of units consumed.
func drive(m machine, b *Budget, cost int64) (Term, int, bool, error) {
	n := 0
	for !m.done() {
		if err := m.check(); err != nil {
			return nil, n, false, err
		}
		if !b.Allows(cost) {
			return nil, n, false, nil
		}
		if err := m.advance(); err != nil {
			return nil, n, false, err
		}
		b.Charge(cost)
		n++
	}
	return m.result(), n, true, nil
}

// complete runs m to the end regardless of the budget, charging it for
// the work done.
func complete(m machine, b *Budget, cost int64) (Term, error) {
	for !m.done() {
		if err := m.check(); err != nil {
			return nil, err
		}
		if err := m.advance(); err != nil {
			return nil, err
		}
		b.Charge(cost)
	}
	return m.result(), nil
}
