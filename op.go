// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yielding

// Op identifies the built-in operation a continuation belongs to.
type Op uint8

const (
	OpInsertList Op = iota + 1
	OpMapFromList
	OpMapFromKeys
	OpMapKeys
	OpMapValues
)

func (op Op) String() string {
	switch op {
	case OpInsertList:
		return "insert_list"
	case OpMapFromList:
		return "map_from_list"
	case OpMapFromKeys:
		return "map_from_keys"
	case OpMapKeys:
		return "map_keys"
	case OpMapValues:
		return "map_values"
	default:
		return "unknown"
	}
}

// InsertMode selects between overwriting and key-exclusive insertion.
type InsertMode uint8

const (
	// Insert replaces objects with the same key.
	Insert InsertMode = iota
	// InsertNew fails with [ErrKeyExists] on a key already in the table.
	InsertNew
)

// Costs are the reductions charged per traversal unit (one list cell or
// one map entry) for each operation family.
type Costs struct {
	Insert   int64
	FromList int64
	FromKeys int64
	Keys     int64
	Values   int64
}

// DefaultCosts keeps the per-unit work of the five families within a
// factor of two of each other. Insertion and pair accumulation do a hash
// write plus a shape check, so they cost twice a plain traversal step.
var DefaultCosts = Costs{
	Insert:   2,
	FromList: 2,
	FromKeys: 1,
	Keys:     1,
	Values:   1,
}

func (c Costs) of(op Op) int64 {
	var n int64
	switch op {
	case OpInsertList:
		n = c.Insert
	case OpMapFromList:
		n = c.FromList
	case OpMapFromKeys:
		n = c.FromKeys
	case OpMapKeys:
		n = c.Keys
	case OpMapValues:
		n = c.Values
	}
	return max(n, 1)
}
