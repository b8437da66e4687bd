// Package termraw places a terminal in raw mode for byte-at-a-time
// input and classifies its capabilities (color depth, cursor
// positioning, mouse, bracketed paste, Unicode, and an identified
// terminal signature).
//
// Raw mode is configured with canonical mode, echo, ISIG, and IXON all
// off, CRNL translation off, and VMIN=1/VTIME=1 — block for the first
// byte, then a 100ms inter-byte timeout. That specific VMIN/VTIME pair
// is load-bearing: it is what lets the input decoder (decode.go in package lle)
// tell a lone ESC keypress from the first byte of a longer escape
// sequence.
//
// Capability classification first matches environment-variable
// signatures (TERM_PROGRAM, TERM, COLORTERM, and tool-specific
// variables); for unrecognized terminals it falls back to an optional
// runtime probe that is guaranteed to restore termios on every exit
// path, including a timeout.
package termraw
