// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package yielding

// Mode selects how the built-in operations honour the reduction budget.
type Mode uint8

const (
	// ModeDefault resolves to [DefaultMode], fixed at build time.
	ModeDefault Mode = iota
	// ModeYielding runs bounded steps and traps when the budget runs out.
	ModeYielding
	// ModeOneShot ignores the budget and always runs to completion.
	// Work done is still charged, so the caller sees the true cost.
	ModeOneShot
)

func (m Mode) String() string {
	switch m {
	case ModeDefault:
		return "default"
	case ModeYielding:
		return "yielding"
	case ModeOneShot:
		return "one-shot"
	default:
		return "unknown"
	}
}

func (m Mode) resolve() Mode {
	if m == ModeDefault {
		return DefaultMode
	}
	return m
}
