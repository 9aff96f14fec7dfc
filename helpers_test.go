// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yielding_test

import (
	"testing"

	"github.com/samber/lo"

	"code.hybscloud.com/yielding"
)

// yieldingOps runs in yielding mode under every build tag.
var yieldingOps = yielding.New(yielding.Config{Mode: yielding.ModeYielding})

// finish resumes k with budgets from next until the operation completes.
// Returns the result and the number of traps seen.
func finish(t *testing.T, v yielding.Term, k *yielding.Continuation, err error, next func() int64) (yielding.Term, int) {
	t.Helper()
	traps := 0
	for err == nil && k != nil {
		traps++
		if traps > 1_000_000 {
			t.Fatal("operation makes no progress")
		}
		v, k, err = k.Resume(yielding.NewBudget(next()))
	}
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return v, traps
}

func fixed(n int64) func() int64 { return func() int64 { return n } }

func pair(k, v yielding.Term) yielding.Tuple { return yielding.Tuple{k, v} }

// pairs returns the list [{0, 0}, {1, 10}, ..., {n-1, 10(n-1)}].
func pairs(n int) yielding.Term {
	return yielding.ListFromSlice(lo.Map(lo.Range(n), func(i int, _ int) yielding.Term {
		return pair(int64(i), int64(i*10))
	}))
}

// mapOf builds a map from alternating keys and values.
func mapOf(t *testing.T, kv ...yielding.Term) *yielding.Map {
	t.Helper()
	var elems []yielding.Term
	for i := 0; i+1 < len(kv); i += 2 {
		elems = append(elems, pair(kv[i], kv[i+1]))
	}
	v, k, err := yielding.MapFromList(yielding.UnlimitedBudget(), yielding.ListFromSlice(elems))
	if err != nil || k != nil {
		t.Fatalf("mapOf: k=%v err=%v", k, err)
	}
	return v.(*yielding.Map)
}

func mustSlice(t *testing.T, l yielding.Term) []yielding.Term {
	t.Helper()
	s, ok := yielding.ListToSlice(l)
	if !ok {
		t.Fatalf("not a proper list: %v", l)
	}
	return s
}
