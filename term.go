// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yielding

import (
	"math"
	"slices"
)

// Term is a dynamically typed value handled by the built-in operations.
//
// Supported kinds are int64, float64, [Atom], [Binary], [Tuple], [*Cons],
// [Nil] and [*Map]. Operations validate the shape of every term they
// consume, so a Term of any other kind is reported as a bad argument.
type Term = any

// Atom is a symbolic constant.
type Atom string

// Binary is an immutable byte string.
type Binary string

// Tuple is a fixed-size sequence of terms.
type Tuple []Term

// Cons is a list cell. A proper list is a chain of cells whose last Tail
// is [Nil]; any other tail makes the list improper.
type Cons struct {
	Head Term
	Tail Term
}

// NilList is the type of the empty list.
type NilList struct{}

// Nil is the empty list.
var Nil = NilList{}

// True and False are the boolean atoms.
const (
	True  Atom = "true"
	False Atom = "false"
)

// List builds a proper list from its arguments.
func List(elems ...Term) Term {
	return ListFromSlice(elems)
}

// ListFromSlice builds a proper list holding the elements of s in order.
func ListFromSlice(s []Term) Term {
	var l Term = Nil
	for i := len(s) - 1; i >= 0; i-- {
		l = &Cons{Head: s[i], Tail: l}
	}
	return l
}

// ListToSlice flattens a proper list. It reports false if l is not a
// proper list.
func ListToSlice(l Term) ([]Term, bool) {
	var out []Term
	for {
		switch c := l.(type) {
		case NilList:
			return out, true
		case *Cons:
			out = append(out, c.Head)
			l = c.Tail
		default:
			return nil, false
		}
	}
}

// isKey reports whether t may be used as a map or table key.
// Keys must be hashable scalars; NaN never compares equal to itself.
func isKey(t Term) bool {
	switch v := t.(type) {
	case int64, Atom, Binary:
		return true
	case float64:
		return !math.IsNaN(v)
	default:
		return false
	}
}

// floatKey is the index form of a float64 key. 0.0 and -0.0 are
// distinct keys.
type floatKey uint64

// indexKey returns the form of a valid key used to index Go maps.
func indexKey(k Term) Term {
	if f, ok := k.(float64); ok {
		return floatKey(math.Float64bits(f))
	}
	return k
}

// Equal reports whether two terms are exactly equal.
// Numbers of different kinds are never equal (1 and 1.0 differ), and
// floats compare by bit pattern, so 0.0 and -0.0 differ.
func Equal(a, b Term) bool {
	switch x := a.(type) {
	case float64:
		y, ok := b.(float64)
		return ok && math.Float64bits(x) == math.Float64bits(y)
	case int64, Atom, Binary, NilList:
		return a == b
	case Tuple:
		y, ok := b.(Tuple)
		return ok && slices.EqualFunc(x, y, Equal)
	case *Cons:
		y, ok := b.(*Cons)
		if !ok {
			return false
		}
		for x != nil && y != nil {
			if !Equal(x.Head, y.Head) {
				return false
			}
			xt, xok := x.Tail.(*Cons)
			yt, yok := y.Tail.(*Cons)
			if !xok || !yok {
				return xok == yok && Equal(x.Tail, y.Tail)
			}
			x, y = xt, yt
		}
		return false
	case *Map:
		y, ok := b.(*Map)
		return ok && x.Equal(y)
	default:
		return false
	}
}
