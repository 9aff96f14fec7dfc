// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !unix

package compat

import "errors"

// CloseFrom is not supported outside unix.
func CloseFrom(int) error {
	return wrap(errors.ErrUnsupported)
}
