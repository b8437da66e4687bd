//go:build darwin || freebsd || netbsd || openbsd || dragonfly

package termraw

import "golang.org/x/sys/unix"

const (
	ioctlGetAttr = unix.TIOCGETA
	ioctlSetAttr = unix.TIOCSETA
)
