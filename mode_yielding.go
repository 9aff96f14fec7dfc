// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !yielding_oneshot

package yielding

// DefaultMode is the mode used when [Config.Mode] is [ModeDefault].
// Build with the yielding_oneshot tag to select [ModeOneShot].
const DefaultMode = ModeYielding
