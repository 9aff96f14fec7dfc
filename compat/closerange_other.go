// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix && !linux

package compat

import "golang.org/x/sys/unix"

func closeRange(int) error { return unix.ENOSYS }
