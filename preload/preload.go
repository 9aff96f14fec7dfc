// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package preload holds the modules bundled into the runtime image.
//
// The table is an ordered, read-only sequence terminated by an all-zero
// sentinel entry. It is read once at startup.
package preload

import (
	"fmt"
	"iter"
)

// Module is one bundled module: its name, byte size and code.
type Module struct {
	Name string
	Size int
	Code []byte
}

// IsSentinel reports whether m is the terminating all-zero entry.
func (m Module) IsSentinel() bool {
	return m.Name == "" && m.Size == 0 && m.Code == nil
}

// Minimal is the table of a minimal build: no modules, only the sentinel.
var Minimal = []Module{
	{}, // terminator
}

// Modules iterates over the entries of table up to the sentinel.
// A table without a sentinel is read to its end.
func Modules(table []Module) iter.Seq[Module] {
	return func(yield func(Module) bool) {
		for _, m := range table {
			if m.IsSentinel() || !yield(m) {
				return
			}
		}
	}
}

// Load validates each module of table and passes it to register, in
// order. Returns the number of modules registered.
func Load(table []Module, register func(Module) error) (int, error) {
	n := 0
	for m := range Modules(table) {
		if m.Name == "" {
			return n, fmt.Errorf("preload: entry %d has no name", n)
		}
		if m.Size != len(m.Code) {
			return n, fmt.Errorf("preload: %s: size %d does not match %d code bytes", m.Name, m.Size, len(m.Code))
		}
		if err := register(m); err != nil {
			return n, fmt.Errorf("preload: %s: %w", m.Name, err)
		}
		n++
	}
	return n, nil
}
