// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package compat papers over platform differences met at runtime startup
// and shutdown: bulk descriptor close, versioned symbol lookup with an
// unversioned fallback, and allocator tuning that degrades to a no-op.
//
// None of these are used by the budgeted operations themselves.
package compat

import "github.com/reusee/e5"

var wrap = e5.Wrap.With(e5.WrapStacktrace)
