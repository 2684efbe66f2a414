package input

import (
	"bufio"
	"io"
	"time"
)

// keyHoldDuration is how long a key counts as held after its last byte.
// Terminals report only presses, so a held key is a run of autorepeat bytes
// and this must outlast the gap between two of them.
const keyHoldDuration = 50 * time.Millisecond

// escTimeout is how long a trailing ESC waits for the rest of an arrow
// sequence before it counts as the quit key.
const escTimeout = 25 * time.Millisecond

// Input is the control state for one frame.
type Input struct {
	Quit    bool
	Left    bool
	Right   bool
	Fire    bool
	Special bool
	Restart bool
	Closed  bool   // The reader hit EOF or an error
	Pressed []byte // Raw bytes read this frame
}

type action int

const (
	actNone action = iota
	actQuit
	actLeft
	actRight
	actFire
	actSpecial
	actRestart
	actionCount
)

// keyActions maps single bytes to actions. Ctrl-C arrives as 0x03 in raw mode.
var keyActions = [256]action{
	'q': actQuit, 'Q': actQuit, '\x1b': actQuit, '\x03': actQuit,
	'a': actLeft, 'A': actLeft, 'h': actLeft, 'H': actLeft,
	'd': actRight, 'D': actRight, 'l': actRight, 'L': actRight,
	' ': actFire, 'w': actFire, 'W': actFire,
	'x': actSpecial, 'X': actSpecial, 'b': actSpecial, 'B': actSpecial,
	'r': actRestart, 'R': actRestart,
}

// arrowActions maps the final byte of ESC [ x and ESC O x arrow sequences.
var arrowActions = map[byte]action{
	'A': actFire,
	'B': actSpecial,
	'C': actRight,
	'D': actLeft,
}

// Stream turns a byte reader into per-frame Input. A background goroutine
// does the blocking reads; ReadInput never blocks.
type Stream struct {
	ch     chan byte
	last   [actionCount]time.Time // Last press per action
	closed bool
	now    func() time.Time

	pending  []byte    // Unfinished escape sequence from an earlier read
	escSince time.Time // When pending started waiting
}

// StartStream starts reading r in the background.
func StartStream(r io.Reader) *Stream {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = bufio.NewReader(r)
	}

	s := &Stream{
		ch:  make(chan byte, 128),
		now: time.Now,
	}
	go func() {
		defer close(s.ch)
		for {
			b, err := br.ReadByte()
			if err != nil {
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ResetKeyInput forgets every held key, so the key that left one screen
// does not act on the next.
func ResetKeyInput(s *Stream) {
	s.last = [actionCount]time.Time{}
}

// ReadInput takes every byte that has arrived since the last call and
// reports which actions are held at this instant.
func ReadInput(s *Stream) Input {
	now := s.now()
	buf := append(s.pending, s.drain()...)
	s.pending = nil

	if n := partialEscape(buf); n > 0 && !s.closed {
		if s.escSince.IsZero() {
			s.escSince = now
		}
		if now.Sub(s.escSince) < escTimeout {
			s.pending = append([]byte(nil), buf[len(buf)-n:]...)
			buf = buf[:len(buf)-n]
		}
	}
	if s.pending == nil {
		s.escSince = time.Time{}
	}

	for i := 0; i < len(buf); i++ {
		if buf[i] == '\x1b' && i+2 < len(buf) && (buf[i+1] == '[' || buf[i+1] == 'O') {
			if act, ok := arrowActions[buf[i+2]]; ok {
				s.last[act] = now
				i += 2
				continue
			}
		}
		if act := keyActions[buf[i]]; act != actNone {
			s.last[act] = now
		}
	}

	held := func(a action) bool { return now.Sub(s.last[a]) < keyHoldDuration }
	return Input{
		Quit:    s.closed || held(actQuit),
		Left:    held(actLeft),
		Right:   held(actRight),
		Fire:    held(actFire),
		Special: held(actSpecial),
		Restart: held(actRestart),
		Closed:  s.closed,
		Pressed: buf,
	}
}

// partialEscape returns the length of an escape sequence cut off at the
// end of buf: a lone ESC, or ESC followed by its CSI/SS3 introducer.
func partialEscape(buf []byte) int {
	n := len(buf)
	switch {
	case n >= 1 && buf[n-1] == '\x1b':
		return 1
	case n >= 2 && buf[n-2] == '\x1b' && (buf[n-1] == '[' || buf[n-1] == 'O'):
		return 2
	}
	return 0
}

// drain collects the buffered bytes without waiting for more.
func (s *Stream) drain() []byte {
	var buf []byte
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				return buf
			}
			buf = append(buf, b)
		default:
			return buf
		}
	}
	return buf
}
