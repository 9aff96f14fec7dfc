// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yielding_test

import (
	"errors"
	"math"
	"testing"

	"code.hybscloud.com/yielding"
)

// --- Map ---

func TestMapPutKeepsPosition(t *testing.T) {
	m := mapOf(t, yielding.Atom("a"), int64(1), yielding.Atom("b"), int64(2))
	m2 := m.Put(yielding.Atom("a"), int64(9))
	if got, _ := m.Get(yielding.Atom("a")); got != int64(1) {
		t.Fatal("Put mutated the original map")
	}
	if !yielding.Equal(yielding.ListFromSlice(m2.Keys()), yielding.List(yielding.Atom("a"), yielding.Atom("b"))) {
		t.Fatalf("keys=%v", m2.Keys())
	}
	if !yielding.Equal(yielding.ListFromSlice(m2.Values()), yielding.List(int64(9), int64(2))) {
		t.Fatalf("values=%v", m2.Values())
	}
	m3 := m2.Put(yielding.Binary("c"), yielding.Nil)
	if m3.Len() != 3 || m2.Len() != 2 {
		t.Fatalf("len=%d/%d", m3.Len(), m2.Len())
	}
}

func TestMapInvalidKeys(t *testing.T) {
	m := mapOf(t, int64(1), int64(1))
	if _, ok := m.Get(yielding.Tuple{}); ok {
		t.Fatal("tuple key found")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on NaN key")
		}
	}()
	m.Put(math.NaN(), int64(0))
}

func TestMapAll(t *testing.T) {
	m := mapOf(t, int64(3), yielding.Atom("c"), int64(1), yielding.Atom("a"))
	var keys []yielding.Term
	for k, v := range m.All() {
		keys = append(keys, k)
		if k == int64(1) && v != yielding.Atom("a") {
			t.Fatalf("value of 1 = %v", v)
		}
		break
	}
	if len(keys) != 1 || keys[0] != int64(3) {
		t.Fatalf("keys=%v", keys)
	}
	var nilMap *yielding.Map
	if nilMap.Len() != 0 || nilMap.Keys() != nil {
		t.Fatal("nil map must be empty")
	}
}

func TestNumericKeysDistinct(t *testing.T) {
	m := mapOf(t, int64(1), yielding.Atom("int"), 1.0, yielding.Atom("float"))
	if m.Len() != 2 {
		t.Fatalf("1 and 1.0 collapsed: len=%d", m.Len())
	}
}

func TestSignedZeroKeysDistinct(t *testing.T) {
	negZero := math.Copysign(0, -1)
	list := yielding.List(pair(0.0, yielding.Atom("pos")), pair(negZero, yielding.Atom("neg")))
	v, k, err := yieldingOps.MapFromList(yielding.NewBudget(0), list)
	got, _ := finish(t, v, k, err, fixed(yieldingOps.Cost(yielding.OpMapFromList)))
	m := got.(*yielding.Map)
	if m.Len() != 2 {
		t.Fatalf("0.0 and -0.0 collapsed: len=%d", m.Len())
	}
	if x, _ := m.Get(negZero); x != yielding.Atom("neg") {
		t.Fatalf("Get(-0.0)=%v", x)
	}
	if x, _ := m.Get(0.0); x != yielding.Atom("pos") {
		t.Fatalf("Get(0.0)=%v", x)
	}
	if yielding.Equal(0.0, negZero) || !yielding.Equal(negZero, math.Copysign(0, -1)) {
		t.Fatal("float equality must follow the bit pattern")
	}

	tab := yielding.NewTable(1)
	if err := tab.InsertNew(yielding.Tuple{0.0}); err != nil {
		t.Fatal(err)
	}
	if err := tab.InsertNew(yielding.Tuple{negZero}); err != nil {
		t.Fatalf("-0.0 clashed with 0.0: %v", err)
	}
	if obj, ok := tab.Lookup(negZero); !ok || !math.Signbit(obj[0].(float64)) || tab.Len() != 2 {
		t.Fatalf("lookup -0.0: %v %v len=%d", obj, ok, tab.Len())
	}
}

// --- MapFromList ---

func TestMapFromListDuplicatePolicy(t *testing.T) {
	list := yielding.List(
		pair(yielding.Atom("a"), int64(1)),
		pair(yielding.Atom("b"), int64(2)),
		pair(yielding.Atom("a"), int64(3)),
		pair(yielding.Atom("c"), int64(4)),
		pair(yielding.Atom("b"), int64(5)),
		pair(yielding.Atom("a"), int64(6)),
	)
	want, k, err := yieldingOps.MapFromList(yielding.UnlimitedBudget(), list)
	if err != nil || k != nil {
		t.Fatalf("k=%v err=%v", k, err)
	}

	ops := yielding.New(yielding.Config{Mode: yielding.ModeYielding})
	onePair := ops.Cost(yielding.OpMapFromList)
	v, k, err := ops.MapFromList(yielding.NewBudget(onePair), list)
	got, traps := finish(t, v, k, err, fixed(onePair))
	if traps != 5 {
		t.Fatalf("traps=%d, want 5", traps)
	}
	if !yielding.Equal(got, want) {
		t.Fatal("split result differs from unlimited result")
	}
	m := got.(*yielding.Map)
	for k, v := range map[yielding.Atom]int64{"a": 6, "b": 5, "c": 4} {
		if x, _ := m.Get(k); x != v {
			t.Fatalf("%s=%v, want %d", k, x, v)
		}
	}
}

func TestMapFromListValidation(t *testing.T) {
	cases := []struct {
		name  string
		list  yielding.Term
		index int
	}{
		{"not a list", int64(1), 0},
		{"triple", yielding.List(yielding.Tuple{int64(1), int64(2), int64(3)}), 0},
		{"not a tuple", yielding.List(pair(int64(1), int64(1)), yielding.Atom("x")), 1},
		{"invalid key", yielding.List(pair(yielding.List(int64(1)), int64(1))), 0},
		{"nan key", yielding.List(pair(math.NaN(), int64(1))), 0},
		{"improper", &yielding.Cons{Head: pair(int64(1), int64(1)), Tail: yielding.Atom("t")}, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			meter := &yielding.Meter{}
			ops := yielding.New(yielding.Config{Mode: yielding.ModeYielding, Allocator: meter})
			v, k, err := ops.MapFromList(yielding.NewBudget(0), c.list)
			for err == nil && k != nil {
				v, k, err = k.Resume(yielding.NewBudget(ops.Cost(yielding.OpMapFromList)))
			}
			var ae *yielding.ArgError
			if v != nil || !errors.As(err, &ae) || ae.Index != c.index || ae.Op != yielding.OpMapFromList {
				t.Fatalf("v=%v err=%v", v, err)
			}
			if meter.Live() != 0 {
				t.Fatalf("live=%d after failure", meter.Live())
			}
		})
	}
}

// --- MapFromKeys ---

func TestMapFromKeys(t *testing.T) {
	keys := yielding.List(int64(2), yielding.Atom("x"), int64(2), yielding.Binary("b"), yielding.Atom("x"))
	v, k, err := yieldingOps.MapFromKeys(yielding.NewBudget(1), keys, yielding.Atom("v"))
	got, _ := finish(t, v, k, err, fixed(1))
	m := got.(*yielding.Map)
	if m.Len() != 3 {
		t.Fatalf("len=%d, want 3", m.Len())
	}
	if !yielding.Equal(yielding.ListFromSlice(m.Keys()), yielding.List(int64(2), yielding.Atom("x"), yielding.Binary("b"))) {
		t.Fatalf("keys=%v", m.Keys())
	}
	for _, v := range m.Values() {
		if v != yielding.Atom("v") {
			t.Fatalf("value=%v", v)
		}
	}
}

func TestMapFromKeysInvalidKey(t *testing.T) {
	_, k, err := yieldingOps.MapFromKeys(yielding.NewBudget(100), yielding.List(int64(1), yielding.Tuple{int64(1)}), int64(0))
	var ae *yielding.ArgError
	if k != nil || !errors.As(err, &ae) || ae.Index != 1 || ae.Op != yielding.OpMapFromKeys {
		t.Fatalf("k=%v err=%v", k, err)
	}
}

// --- MapKeys / MapValues ---

func TestMapKeysValuesOrder(t *testing.T) {
	m := mapOf(t,
		yielding.Atom("z"), int64(26),
		int64(5), int64(5),
		yielding.Binary("m"), yielding.Tuple{int64(1)},
		2.5, yielding.Nil,
	)
	for _, budget := range []int64{1, 2, 3, 100} {
		v, k, err := yieldingOps.MapKeys(yielding.NewBudget(budget), m)
		keys, _ := finish(t, v, k, err, fixed(budget))
		if !yielding.Equal(yielding.ListFromSlice(mustSlice(t, keys)), yielding.ListFromSlice(m.Keys())) {
			t.Fatalf("budget %d: keys=%v", budget, keys)
		}
		v, k, err = yieldingOps.MapValues(yielding.NewBudget(budget), m)
		values, _ := finish(t, v, k, err, fixed(budget))
		if !yielding.Equal(values, yielding.ListFromSlice(m.Values())) {
			t.Fatalf("budget %d: values=%v", budget, values)
		}
	}
}

func TestMapKeysNotAMap(t *testing.T) {
	if _, _, err := yielding.MapKeys(yielding.NewBudget(10), yielding.List(int64(1))); !errors.Is(err, yielding.ErrBadArg) {
		t.Fatalf("err=%v", err)
	}
	if _, _, err := yielding.MapValues(yielding.NewBudget(10), yielding.Atom("m")); !errors.Is(err, yielding.ErrBadArg) {
		t.Fatalf("err=%v", err)
	}
}

// --- Terms ---

func TestListToSlice(t *testing.T) {
	s, ok := yielding.ListToSlice(yielding.List(int64(1), int64(2)))
	if !ok || len(s) != 2 {
		t.Fatalf("s=%v ok=%v", s, ok)
	}
	if _, ok := yielding.ListToSlice(&yielding.Cons{Head: int64(1), Tail: int64(2)}); ok {
		t.Fatal("improper list accepted")
	}
	if s, ok := yielding.ListToSlice(yielding.Nil); !ok || len(s) != 0 {
		t.Fatal("empty list rejected")
	}
}

func TestEqual(t *testing.T) {
	cases := []struct {
		a, b yielding.Term
		want bool
	}{
		{int64(1), int64(1), true},
		{int64(1), 1.0, false},
		{yielding.Atom("a"), yielding.Binary("a"), false},
		{yielding.Tuple{int64(1), yielding.Atom("x")}, yielding.Tuple{int64(1), yielding.Atom("x")}, true},
		{yielding.Tuple{int64(1)}, yielding.Tuple{int64(1), int64(2)}, false},
		{yielding.List(int64(1), int64(2)), yielding.List(int64(1), int64(2)), true},
		{yielding.List(int64(1), int64(2)), yielding.List(int64(1)), false},
		{&yielding.Cons{Head: int64(1), Tail: int64(2)}, &yielding.Cons{Head: int64(1), Tail: int64(2)}, true},
		{yielding.Nil, yielding.Nil, true},
		{yielding.Nil, yielding.List(int64(1)), false},
	}
	for i, c := range cases {
		if got := yielding.Equal(c.a, c.b); got != c.want {
			t.Errorf("case %d: Equal(%v, %v) = %v, want %v", i, c.a, c.b, got, c.want)
		}
	}
}
