// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package termcap holds the terminal capability configuration used by the
// interactive shell, and detects what the controlling terminal offers.
package termcap

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"
)

// Config describes how terminal capabilities are looked up.
type Config struct {
	// TerminfoDirs are searched in order for compiled terminfo entries.
	TerminfoDirs []string
	// Termcap enables the termcap compatibility layer.
	Termcap bool
	// WideChar enables wide character support.
	WideChar bool
	// ExtFuncs, ExtColors and Extended enable the extension APIs.
	ExtFuncs  bool
	ExtColors bool
	Extended  bool
}

// Minimal is the configuration of a minimal build: the system terminfo
// database, termcap compatibility on and wide characters off.
func Minimal() Config {
	return Config{
		TerminfoDirs: []string{"/usr/share/terminfo"},
		Termcap:      true,
		ExtFuncs:     true,
		ExtColors:    true,
		Extended:     true,
	}
}

// Locate returns the path of the compiled terminfo entry for name.
// Entries live under a directory named by the first letter of the name,
// or by its hex code on case-insensitive filesystems.
func (c Config) Locate(name string) (string, bool) {
	if name == "" || strings.ContainsAny(name, "/\x00") {
		return "", false
	}
	for _, dir := range c.TerminfoDirs {
		for _, sub := range []string{name[:1], fmt.Sprintf("%02x", name[0])} {
			p := filepath.Join(dir, sub, name)
			if st, err := os.Stat(p); err == nil && st.Mode().IsRegular() {
				return p, true
			}
		}
	}
	return "", false
}

// Caps is what a terminal offers.
type Caps struct {
	Terminal bool
	Name     string
	Width    int
	Height   int
	Terminfo string
}

// Detect inspects fd and the TERM environment variable.
func Detect(fd int, cfg Config) Caps {
	caps := Caps{Name: os.Getenv("TERM")}
	if !term.IsTerminal(fd) {
		return caps
	}
	caps.Terminal = true
	if w, h, err := term.GetSize(fd); err == nil {
		caps.Width, caps.Height = w, h
	}
	if p, ok := cfg.Locate(caps.Name); ok {
		caps.Terminfo = p
	}
	return caps
}
