// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package preload

import (
	"errors"
	"testing"
)

func TestMinimalIsEmpty(t *testing.T) {
	n, err := Load(Minimal, func(Module) error {
		t.Fatal("minimal table registered a module")
		return nil
	})
	if n != 0 || err != nil {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if len(Minimal) != 1 || !Minimal[0].IsSentinel() {
		t.Fatal("minimal table must hold only the sentinel")
	}
}

func TestLoadStopsAtSentinel(t *testing.T) {
	table := []Module{
		{Name: "init", Size: 2, Code: []byte{1, 2}},
		{Name: "prim", Size: 1, Code: []byte{3}},
		{},
		{Name: "after", Size: 0, Code: []byte{}},
	}
	var names []string
	n, err := Load(table, func(m Module) error {
		names = append(names, m.Name)
		return nil
	})
	if err != nil || n != 2 || len(names) != 2 || names[0] != "init" || names[1] != "prim" {
		t.Fatalf("n=%d names=%v err=%v", n, names, err)
	}
}

func TestLoadValidates(t *testing.T) {
	if _, err := Load([]Module{{Name: "bad", Size: 3, Code: []byte{1}}}, func(Module) error { return nil }); err == nil {
		t.Fatal("size mismatch accepted")
	}
	if _, err := Load([]Module{{Size: 1, Code: []byte{1}}}, func(Module) error { return nil }); err == nil {
		t.Fatal("nameless module accepted")
	}
	boom := errors.New("boom")
	n, err := Load([]Module{{Name: "a", Size: 0, Code: []byte{}}, {Name: "b", Size: 0, Code: []byte{}}}, func(m Module) error {
		if m.Name == "b" {
			return boom
		}
		return nil
	})
	if n != 1 || !errors.Is(err, boom) {
		t.Fatalf("n=%d err=%v", n, err)
	}
}
