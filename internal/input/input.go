// Package input turns raw terminal bytes into game key events.
package input

import "bufio"

// Event is a single decoded key press.
type Event int

const (
	EventNone Event = iota
	EventUp
	EventDown
	EventLeft
	EventRight
	EventPause
	EventRestart
	EventToggleObstacles
	EventToggleWrap
	EventToggleInvincible
	EventQuit
)

// Stream delivers decoded key events via a channel. A goroutine owns the
// reader; closing the underlying connection ends the stream with a final
// EventQuit, so SSH disconnects unwind the game loop.
type Stream struct {
	ch chan Event
}

// StartStream spawns a goroutine that reads from r, decodes key presses
// and delivers them on the stream. Events that arrive faster than the
// consumer drains them are dropped rather than blocking the reader.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan Event, 32)}
	go func() {
		defer close(s.ch)
		for {
			b, err := r.ReadByte()
			if err != nil {
				s.send(EventQuit)
				return
			}

			if b == '\x1b' {
				// CSI sequence: ESC [ <code>. Anything else after a bare
				// escape is ignored.
				next, err := r.ReadByte()
				if err != nil {
					s.send(EventQuit)
					return
				}
				if next != '[' {
					continue
				}
				code, err := r.ReadByte()
				if err != nil {
					s.send(EventQuit)
					return
				}
				s.send(decodeCSI(code))
				continue
			}

			s.send(decodeByte(b))
		}
	}()
	return s
}

// Events returns the channel key events arrive on. The channel is closed
// when the reader ends.
func (s *Stream) Events() <-chan Event {
	return s.ch
}

func (s *Stream) send(ev Event) {
	if ev == EventNone {
		return
	}
	select {
	case s.ch <- ev:
	default:
	}
}

// decodeCSI maps arrow-key CSI codes to direction events.
func decodeCSI(code byte) Event {
	switch code {
	case 'A':
		return EventUp
	case 'B':
		return EventDown
	case 'C':
		return EventRight
	case 'D':
		return EventLeft
	}
	return EventNone
}

// decodeByte maps plain key presses: WASD and vi movement keys, pause,
// restart, rule toggles and quit (q or ctrl-c).
func decodeByte(b byte) Event {
	switch b {
	case 'w', 'W', 'k', 'K':
		return EventUp
	case 's', 'S', 'j', 'J':
		return EventDown
	case 'a', 'A', 'h', 'H':
		return EventLeft
	case 'd', 'D', 'l', 'L':
		return EventRight
	case ' ', 'p', 'P':
		return EventPause
	case '\r', '\n', 'r', 'R':
		return EventRestart
	case '1':
		return EventToggleObstacles
	case '2':
		return EventToggleWrap
	case '3':
		return EventToggleInvincible
	case 'q', 'Q', '\x03':
		return EventQuit
	}
	return EventNone
}
