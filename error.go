// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yielding

import (
	"errors"
	"strconv"
)

// Error classes reported by the built-in operations.
//
// Validation failures are detected inside the step that consumes the
// offending unit and are returned from that same call; they never surface
// on a later Resume. Resource exhaustion is a runtime failure, distinct
// from bad arguments.
var (
	// ErrBadArg is the class of all input validation failures.
	ErrBadArg = errors.New("yielding: bad argument")

	// ErrKeyExists reports an insert-new of a key already in the table.
	// It is a validation failure: errors.Is(ErrKeyExists, ErrBadArg) holds.
	ErrKeyExists error = keyExistsError{}

	// ErrNoMemory reports that a continuation or accumulator could not
	// be extended.
	ErrNoMemory = errors.New("yielding: cannot allocate continuation state")
)

type keyExistsError struct{}

func (keyExistsError) Error() string        { return "yielding: key already exists" }
func (keyExistsError) Is(target error) bool { return target == ErrBadArg }

// ArgError describes a validation failure at a position of the input.
type ArgError struct {
	Op     Op
	Index  int // position of the offending unit, -1 if not positional
	Reason string
	Err    error // underlying class; ErrBadArg when nil
}

func (e *ArgError) Error() string {
	s := "yielding: " + e.Op.String() + ": " + e.Reason
	if e.Index >= 0 {
		s += " at element " + strconv.Itoa(e.Index)
	}
	return s
}

func (e *ArgError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrBadArg
}

func badArg(op Op, index int, reason string) error {
	return &ArgError{Op: op, Index: index, Reason: reason}
}
