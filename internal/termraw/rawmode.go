package termraw

import (
	"fmt"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// RawMode holds the terminal state needed to restore a file descriptor
// to its original mode.
type RawMode struct {
	fd       int
	saved    *term.State
	restored bool
}

// The termios ioctl request names differ by OS (TCGETS/TCSETS on Linux,
// TIOCGETA/TIOCSETA on Darwin and the BSDs); ioctl_linux.go and
// ioctl_bsd.go define ioctlGetAttr/ioctlSetAttr for each, so this file
// needs no build constraints of its own.

// Enable places fd (typically os.Stdin.Fd()) into raw mode per §4.3:
// canonical mode, echo, ISIG, and IXON off, CRNL translation off,
// VMIN=1, VTIME=1. Returns a RawMode that must be Restore()d, ideally
// via defer, on every exit path.
func Enable(fd int) (*RawMode, error) {
	saved, err := term.GetState(fd)
	if err != nil {
		return nil, fmt.Errorf("termraw: save terminal state: %w", err)
	}

	raw, err := unix.IoctlGetTermios(fd, ioctlGetAttr)
	if err != nil {
		return nil, fmt.Errorf("termraw: read termios: %w", err)
	}

	r := *raw
	r.Lflag &^= unix.ICANON | unix.ECHO | unix.ISIG
	r.Iflag &^= unix.IXON | unix.ICRNL
	r.Cc[unix.VMIN] = 1
	r.Cc[unix.VTIME] = 1 // 100ms inter-byte timeout; load-bearing for ESC parsing

	if err := unix.IoctlSetTermios(fd, ioctlSetAttr, &r); err != nil {
		return nil, fmt.Errorf("termraw: apply raw mode: %w", err)
	}

	return &RawMode{fd: fd, saved: saved}, nil
}

// Restore returns the terminal to the state it was in before Enable.
// Safe to call more than once; the second call is a no-op.
func (m *RawMode) Restore() error {
	if m == nil || m.restored {
		return nil
	}
	m.restored = true
	if err := term.Restore(m.fd, m.saved); err != nil {
		return fmt.Errorf("termraw: restore terminal state: %w", err)
	}
	return nil
}
