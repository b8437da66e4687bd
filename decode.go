package lle

import (
	"errors"
	"io"
	"unicode/utf8"

	key "github.com/dshills/lle/internal/keyevent"
)

// ErrReadTimeout is returned by decoder reads that hit the terminal's
// inter-byte timeout (VTIME) rather than end of stream. Distinct from
// io.EOF per the error taxonomy's I/O-failure kind.
var ErrReadTimeout = errors.New("lle: read timeout")

// decoder turns the raw byte stream from a terminal in raw mode
// (canonical/echo/ISIG off, VMIN=1, VTIME=1) into key.Event values,
// implementing the byte-to-event state machine: control codes, the
// ESC/CSI escape-sequence path with standalone-Escape-on-timeout, and
// UTF-8 continuation-byte assembly for printable runes.
type decoder struct {
	r io.Reader
}

func newDecoder(r io.Reader) *decoder { return &decoder{r: r} }

// readByte blocks for exactly one byte, the terminal's VMIN=1
// behavior for the first byte of any keystroke.
func (d *decoder) readByte() (byte, error) {
	var buf [1]byte
	n, err := d.r.Read(buf[:])
	if n == 1 {
		return buf[0], nil
	}
	if err != nil {
		return 0, err
	}
	return 0, io.EOF
}

// readByteTimeout attempts one more byte, treating a zero-length,
// error-free read as the terminal's VTIME inter-byte timeout expiring
// rather than as end of stream.
func (d *decoder) readByteTimeout() (byte, error) {
	var buf [1]byte
	n, err := d.r.Read(buf[:])
	if n == 1 {
		return buf[0], nil
	}
	if err != nil {
		return 0, err
	}
	return 0, ErrReadTimeout
}

// Next decodes one key.Event from the stream, per the five-step
// byte-to-event parser: control codes, ESC/CSI sequences (with
// standalone Escape on inter-byte timeout), UTF-8 continuation
// assembly, and plain ASCII.
func (d *decoder) Next() (key.Event, error) {
	b, err := d.readByte()
	if err != nil {
		return key.Event{}, err
	}

	switch {
	case b == 0x1b:
		return d.decodeEscape()
	case b == 0x09:
		return key.NewSpecialEvent(key.KeyTab, key.ModNone), nil
	case b == 0x0d || b == 0x0a:
		return key.NewSpecialEvent(key.KeyEnter, key.ModNone), nil
	case b == 0x7f || b == 0x08:
		return key.NewSpecialEvent(key.KeyBackspace, key.ModNone), nil
	case b < 0x20:
		return decodeControl(b), nil
	case b >= 0x80:
		return d.decodeUTF8(b)
	default:
		return key.NewRuneEvent(rune(b), key.ModNone), nil
	}
}

// decodeControl maps a C0 control byte (1-26, excluding the
// specially-named keys handled in Next) to Ctrl+letter.
func decodeControl(b byte) key.Event {
	if b == 0 {
		return key.NewRuneEvent(' ', key.ModCtrl)
	}
	r := rune('a' + int(b) - 1)
	return key.NewRuneEvent(r, key.ModCtrl)
}

// decodeEscape handles the byte after ESC: a timeout means standalone
// Escape, '[' starts a CSI sequence, anything else is a Meta-prefixed
// key (Alt+<key>).
func (d *decoder) decodeEscape() (key.Event, error) {
	b, err := d.readByteTimeout()
	if errors.Is(err, ErrReadTimeout) {
		return key.NewSpecialEvent(key.KeyEscape, key.ModNone), nil
	}
	if err != nil {
		return key.Event{}, err
	}

	if b == '[' {
		return d.decodeCSI()
	}

	inner, err := d.decodeNonEscapeByte(b)
	if err != nil {
		return key.Event{}, err
	}
	return inner.WithModifier(key.ModAlt), nil
}

// decodeNonEscapeByte decodes a single already-read byte using the
// same classification Next uses for the first byte of a keystroke, so
// Meta-prefixed control/printable keys share one code path.
func (d *decoder) decodeNonEscapeByte(b byte) (key.Event, error) {
	switch {
	case b == 0x09:
		return key.NewSpecialEvent(key.KeyTab, key.ModNone), nil
	case b == 0x0d || b == 0x0a:
		return key.NewSpecialEvent(key.KeyEnter, key.ModNone), nil
	case b == 0x7f || b == 0x08:
		return key.NewSpecialEvent(key.KeyBackspace, key.ModNone), nil
	case b < 0x20:
		return decodeControl(b), nil
	case b >= 0x80:
		return d.decodeUTF8(b)
	default:
		return key.NewRuneEvent(rune(b), key.ModNone), nil
	}
}

// decodeCSI consumes a CSI sequence (ESC '[' params... final) and
// maps it to a symbolic key, per §4.3's parameter table.
func (d *decoder) decodeCSI() (key.Event, error) {
	var params []byte
	for {
		b, err := d.readByteTimeout()
		if err != nil {
			return key.Event{}, err
		}
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') {
			return csiToEvent(params, b), nil
		}
		params = append(params, b)
	}
}

func csiToEvent(params []byte, final byte) key.Event {
	switch final {
	case 'A':
		return key.NewSpecialEvent(key.KeyUp, key.ModNone)
	case 'B':
		return key.NewSpecialEvent(key.KeyDown, key.ModNone)
	case 'C':
		return key.NewSpecialEvent(key.KeyRight, key.ModNone)
	case 'D':
		return key.NewSpecialEvent(key.KeyLeft, key.ModNone)
	case 'H':
		return key.NewSpecialEvent(key.KeyHome, key.ModNone)
	case 'F':
		return key.NewSpecialEvent(key.KeyEnd, key.ModNone)
	case '~':
		return tildeEvent(params)
	default:
		return key.NewSpecialEvent(key.KeyNone, key.ModNone)
	}
}

// tildeEvent maps the numeric parameter of a CSI ... ~ sequence (the
// vt220-style encoding used for Delete/Insert/PageUp/PageDown/Home/End
// on most terminals) to a symbolic key.
func tildeEvent(params []byte) key.Event {
	n := 0
	for _, p := range params {
		if p < '0' || p > '9' {
			break
		}
		n = n*10 + int(p-'0')
	}
	switch n {
	case 1, 7:
		return key.NewSpecialEvent(key.KeyHome, key.ModNone)
	case 2:
		return key.NewSpecialEvent(key.KeyInsert, key.ModNone)
	case 3:
		return key.NewSpecialEvent(key.KeyDelete, key.ModNone)
	case 4, 8:
		return key.NewSpecialEvent(key.KeyEnd, key.ModNone)
	case 5:
		return key.NewSpecialEvent(key.KeyPageUp, key.ModNone)
	case 6:
		return key.NewSpecialEvent(key.KeyPageDown, key.ModNone)
	default:
		return key.NewSpecialEvent(key.KeyNone, key.ModNone)
	}
}

// decodeUTF8 assembles the continuation bytes of a multi-byte rune
// that started with lead byte b, blocking for each continuation byte
// the way terminal input always delivers a full codepoint's bytes
// back-to-back.
func (d *decoder) decodeUTF8(b byte) (key.Event, error) {
	n := utf8SeqLen(b)
	if n <= 1 {
		return key.NewRuneEvent(utf8.RuneError, key.ModNone), nil
	}

	buf := make([]byte, n)
	buf[0] = b
	for i := 1; i < n; i++ {
		cb, err := d.readByte()
		if err != nil {
			return key.Event{}, err
		}
		buf[i] = cb
	}

	r, size := utf8.DecodeRune(buf)
	if r == utf8.RuneError && size <= 1 {
		return key.NewRuneEvent(utf8.RuneError, key.ModNone), nil
	}
	return key.NewRuneEvent(r, key.ModNone), nil
}

func utf8SeqLen(b byte) int {
	switch {
	case b&0xe0 == 0xc0:
		return 2
	case b&0xf0 == 0xe0:
		return 3
	case b&0xf8 == 0xf0:
		return 4
	default:
		return 1
	}
}
