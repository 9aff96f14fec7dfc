// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build unix

package compat

import (
	"os"
	"strconv"

	"golang.org/x/sys/unix"
)

// fdDirs list the open descriptors of the calling process.
var fdDirs = []string{"/proc/self/fd", "/dev/fd"}

// fallbackMaxFD bounds the close loop when RLIMIT_NOFILE is unavailable.
const fallbackMaxFD = 1024

// CloseFrom closes every file descriptor >= lowfd. Negative lowfd is
// treated as 0.
//
// The Go runtime owns descriptors of its own, so this is meant for the
// moment a process image starts or is about to exec.
func CloseFrom(lowfd int) error {
	lowfd = max(lowfd, 0)
	if err := closeRange(lowfd); err == nil {
		return nil
	}
	for _, dir := range fdDirs {
		if closeListed(dir, lowfd) {
			return nil
		}
	}
	return closeLoop(lowfd)
}

// closeListed closes the descriptors named in dir. Reports false if dir
// cannot be read.
func closeListed(dir string, lowfd int) bool {
	f, err := os.Open(dir)
	if err != nil {
		return false
	}
	self := int(f.Fd())
	names, err := f.Readdirnames(-1)
	f.Close()
	if err != nil {
		return false
	}
	for _, name := range names {
		fd, err := strconv.Atoi(name)
		if err != nil || fd < lowfd || fd == self {
			continue
		}
		unix.Close(fd)
	}
	return true
}

func closeLoop(lowfd int) error {
	maxFD := fallbackMaxFD
	var rlim unix.Rlimit
	if err := unix.Getrlimit(unix.RLIMIT_NOFILE, &rlim); err != nil {
		return wrap(err)
	} else if rlim.Cur != unix.RLIM_INFINITY {
		maxFD = int(rlim.Cur)
	}
	for fd := lowfd; fd < maxFD; fd++ {
		unix.Close(fd)
	}
	return nil
}
