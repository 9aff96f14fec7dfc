// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yielding

import "math"

// Reductions are the unit of per-process scheduling work.
//
// A Budget is owned by the calling frame for the duration of one yielding
// or resume call. It only ever decreases; the scheduler supplies a fresh
// Budget on every Resume.
type Budget struct {
	left int64
	used int64
}

// Unlimited is a reduction count no operation can exhaust.
const Unlimited int64 = math.MaxInt64

// NewBudget returns a budget of n reductions.
func NewBudget(n int64) *Budget {
	if n < 0 {
		n = 0
	}
	return &Budget{left: n}
}

// UnlimitedBudget returns a budget that is never exhausted.
func UnlimitedBudget() *Budget {
	return &Budget{left: Unlimited}
}

// Allows reports whether a unit of the given cost may run.
// The check happens before the unit consumes any input.
func (b *Budget) Allows(cost int64) bool {
	return b.left >= cost
}

// Charge consumes n reductions. Charging never lets the budget grow.
func (b *Budget) Charge(n int64) {
	if n <= 0 {
		return
	}
	if b.left != Unlimited {
		b.left -= n
	}
	b.used += n
}

// Exhausted reports whether no reductions remain.
func (b *Budget) Exhausted() bool {
	return b.left <= 0
}

// Left returns the remaining reductions.
func (b *Budget) Left() int64 { return b.left }

// Used returns the reductions charged so far.
func (b *Budget) Used() int64 { return b.used }
