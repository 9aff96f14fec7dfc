// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package yielding runs long built-in operations in bounded steps against
// a reduction budget, so that no single call blocks a cooperative
// scheduler for more than a constant amount of work.
//
// Each operation either completes, or traps: it returns a [*Continuation]
// holding exactly the cursor and partial result needed to carry on. The
// scheduler later resumes the continuation with a fresh [Budget], or
// destroys it if the owning process dies.
//
// # Protocol
//
//	v, k, err := yielding.MapFromList(yielding.NewBudget(4000), list)
//	for err == nil && k != nil {
//	    // reschedule; later, with a new quantum:
//	    v, k, err = k.Resume(yielding.NewBudget(4000))
//	}
//
// Returns (value, nil, nil) on completion, (nil, continuation, nil) on a
// trap and (nil, nil, err) on failure. The outcome is independent of how
// the total work is split across budgets: any sequence of traps and
// resumes ends in the same value as one unlimited call.
//
// # Budget
//
//   - [Budget]: Per-call reduction counter, only ever decreasing
//   - [Budget.Allows]: Checked before each traversal unit (one list cell or one map entry)
//   - [Budget.Charge]: Applied after the unit, by its [Costs] entry
//   - [Budget.Used]: Work actually performed, reported to the scheduler
//
// A unit is never split: a budget smaller than one unit traps without
// progress, and a budget equal to the cost of the last unit completes
// without a further trap. Empty input completes at once, charges nothing
// and never creates a continuation.
//
// # Continuations
//
// [Continuation] enforces affine ownership:
//
//   - [Continuation.Resume]: Continue with a fresh budget (panics on reuse)
//   - [Continuation.TryResume]: Non-panicking variant
//   - [Continuation.Destroy]: Abandon and release without stepping (panics on reuse)
//   - [Continuation.TryDestroy]: Non-panicking variant
//
// A trap during Resume hands back the same record, re-armed for one more
// use. Completion and Destroy release the record; the holder must drop it.
//
// # Operations
//
//   - [InsertList]: Insert a list of tuples into a [Table] ([Insert] or [InsertNew])
//   - [MapFromList]: Build a [*Map] from {Key, Value} pairs, last occurrence wins
//   - [MapFromKeys]: Build a [*Map] binding every key to one value
//   - [MapKeys], [MapValues]: Extract keys or values in map iteration order
//
// [Ops] runs the same operations under a [Config]: mode, per-unit
// [Costs] and an [Allocator] that accounts for suspended state.
//
// # Modes
//
// [ModeYielding] runs bounded steps; [ModeOneShot] ignores the budget and
// always completes. Both share one call signature. [DefaultMode] is
// [ModeYielding] unless the module is built with the yielding_oneshot tag.
//
// # Errors
//
//   - [ErrBadArg]: Malformed list, wrong element shape or invalid key, via [*ArgError]
//   - [ErrKeyExists]: Key already present under [InsertNew]; also matches [ErrBadArg]
//   - [ErrNoMemory]: The allocator refused to extend a continuation
//
// Every unit is validated before the budget is consulted, so a failure is
// reported by the call that reaches the offending unit, never after a
// trap. On any failure the continuation is released before returning.
package yielding
