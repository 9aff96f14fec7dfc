// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package compat

import "runtime/debug"

// Param names an allocator tuning knob.
type Param int

const (
	// ParamMmapMax caps the number of mmap-backed chunks. The Go
	// allocator has no such knob.
	ParamMmapMax Param = iota + 1
	// ParamTrimThreshold sets the free-memory trim threshold. The Go
	// allocator has no such knob.
	ParamTrimThreshold
	// ParamGCPercent sets the garbage collection target percentage.
	ParamGCPercent
	// ParamMemoryLimit sets the soft memory limit in bytes.
	ParamMemoryLimit
)

// SetAllocatorParam applies a tuning knob. Knobs the Go runtime does not
// have are accepted and ignored; the result is false for them, as for an
// allocator without tuning support.
func SetAllocatorParam(p Param, value int) bool {
	switch p {
	case ParamGCPercent:
		debug.SetGCPercent(value)
		return true
	case ParamMemoryLimit:
		debug.SetMemoryLimit(int64(value))
		return true
	default:
		return false
	}
}
