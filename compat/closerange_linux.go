// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package compat

import (
	"math"

	"golang.org/x/sys/unix"
)

func closeRange(lowfd int) error {
	return unix.CloseRange(uint(lowfd), math.MaxUint32, 0)
}
