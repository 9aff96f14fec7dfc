// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yielding

import "sync"

// Continuation records are recycled once completed or destroyed.
// A released record stays marked as used until it is handed out again,
// so a stale Resume or Destroy on it panics instead of running.

var continuationPool = sync.Pool{New: func() any { return new(Continuation) }}

func acquireContinuation(op Op, m machine, cost int64, alloc Allocator) *Continuation {
	c := continuationPool.Get().(*Continuation)
	c.op = op
	c.m = m
	c.cost = cost
	c.alloc = alloc
	c.used.Store(0)
	return c
}

// releaseContinuation zeroes c and returns it to the pool.
func releaseContinuation(c *Continuation) {
	c.used.Store(1)
	c.op = 0
	c.m = nil
	c.cost = 0
	c.units = 0
	c.held = 0
	c.alloc = nil
	continuationPool.Put(c)
}
