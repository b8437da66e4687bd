package termraw

import (
	"fmt"
	"io"

	"golang.org/x/sys/unix"
)

// probeQuery is Device Status Report (DSR): a harmless query every
// ANSI-compatible terminal answers with a cursor-position report, used
// only to confirm something is listening on the other end of stdin.
const probeQuery = "\x1b[6n"

// Probe sends a harmless terminal query and reports whether anything
// answered within the timeout window, for classifying terminals that
// env-signature matching left unrecognized. fd must already be in raw
// mode (see Enable). Termios is restored to its pre-probe state on
// every exit path, including a timeout — probing must never leave the
// terminal in a half-configured state.
//
// Termios VTIME is specified in deciseconds, so sub-100ms windows are
// not representable; the probe uses one decisecond (100ms) as its
// floor regardless of a finer-grained caller request.
func Probe(fd int, w io.Writer, r io.Reader) (responded bool, err error) {
	original, err := unix.IoctlGetTermios(fd, ioctlGetAttr)
	if err != nil {
		return false, fmt.Errorf("termraw: read termios for probe: %w", err)
	}

	probeState := *original
	probeState.Cc[unix.VMIN] = 0
	probeState.Cc[unix.VTIME] = 1 // 100ms

	if err := unix.IoctlSetTermios(fd, ioctlSetAttr, &probeState); err != nil {
		return false, fmt.Errorf("termraw: apply probe termios: %w", err)
	}
	defer func() {
		// Always restore, even if the write/read below failed or timed out.
		_ = unix.IoctlSetTermios(fd, ioctlSetAttr, original)
	}()

	if _, werr := io.WriteString(w, probeQuery); werr != nil {
		return false, fmt.Errorf("termraw: write probe query: %w", werr)
	}

	buf := make([]byte, 32)
	n, rerr := r.Read(buf)
	if rerr != nil && rerr != io.EOF {
		return false, nil
	}
	return n > 0, nil
}
