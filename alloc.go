// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yielding

import "sync/atomic"

// Allocator accounts for the memory held by suspended continuations.
//
// A continuation reserves bytes for its record and for its partial result
// each time it suspends, and frees the whole reservation when it completes
// or is destroyed. Alloc returning an error aborts the operation with
// [ErrNoMemory].
type Allocator interface {
	Alloc(n int) error
	Free(n int)
}

// heapAllocator leaves all accounting to the Go heap.
type heapAllocator struct{}

func (heapAllocator) Alloc(int) error { return nil }
func (heapAllocator) Free(int)        {}

// Meter is an [Allocator] that counts live bytes.
// A positive Limit caps the live bytes; Alloc fails beyond it.
type Meter struct {
	Limit int64

	live   atomic.Int64
	peak   atomic.Int64
	allocs atomic.Int64
	frees  atomic.Int64
}

// Alloc implements [Allocator].
func (m *Meter) Alloc(n int) error {
	live := m.live.Add(int64(n))
	if m.Limit > 0 && live > m.Limit {
		m.live.Add(-int64(n))
		return ErrNoMemory
	}
	m.allocs.Add(1)
	for {
		p := m.peak.Load()
		if live <= p || m.peak.CompareAndSwap(p, live) {
			break
		}
	}
	return nil
}

// Free implements [Allocator].
func (m *Meter) Free(n int) {
	m.live.Add(-int64(n))
	m.frees.Add(1)
}

// Live returns the bytes currently reserved.
func (m *Meter) Live() int64 { return m.live.Load() }

// Peak returns the highest reservation seen.
func (m *Meter) Peak() int64 { return m.peak.Load() }

// Allocs returns the number of successful Alloc calls.
func (m *Meter) Allocs() int64 { return m.allocs.Load() }

// Frees returns the number of Free calls.
func (m *Meter) Frees() int64 { return m.frees.Load() }
