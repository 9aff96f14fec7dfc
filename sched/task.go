// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sched

import "code.hybscloud.com/yielding"

// InsertList returns a task inserting list into tab.
func InsertList(tab *yielding.Table, list yielding.Term, mode yielding.InsertMode) Task {
	return func(ops *yielding.Ops, b *yielding.Budget) (yielding.Term, *yielding.Continuation, error) {
		return ops.InsertList(b, tab, list, mode)
	}
}

// MapFromList returns a task building a map from list.
func MapFromList(list yielding.Term) Task {
	return func(ops *yielding.Ops, b *yielding.Budget) (yielding.Term, *yielding.Continuation, error) {
		return ops.MapFromList(b, list)
	}
}

// MapFromKeys returns a task binding every key to value.
func MapFromKeys(keys, value yielding.Term) Task {
	return func(ops *yielding.Ops, b *yielding.Budget) (yielding.Term, *yielding.Continuation, error) {
		return ops.MapFromKeys(b, keys, value)
	}
}

// MapKeys returns a task listing the keys of m.
func MapKeys(m yielding.Term) Task {
	return func(ops *yielding.Ops, b *yielding.Budget) (yielding.Term, *yielding.Continuation, error) {
		return ops.MapKeys(b, m)
	}
}

// MapValues returns a task listing the values of m.
func MapValues(m yielding.Term) Task {
	return func(ops *yielding.Ops, b *yielding.Budget) (yielding.Term, *yielding.Continuation, error) {
		return ops.MapValues(b, m)
	}
}
