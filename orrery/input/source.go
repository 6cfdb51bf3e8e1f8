package input

import "orrery/hal"

// HALSource drains a hal.Keyboard without blocking. hal.KeyQuit becomes EventQuit.
type HALSource struct {
	events <-chan hal.KeyEvent
}

func NewHALSource(in hal.Input) *HALSource {
	s := &HALSource{}
	if in == nil {
		return s
	}
	if kbd := in.Keyboard(); kbd != nil {
		s.events = kbd.Events()
	}
	return s
}

func (s *HALSource) Poll(dst []Event) []Event {
	if s.events == nil {
		return dst
	}
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.events = nil
				return append(dst, Event{Kind: EventQuit})
			}
			dst = append(dst, fromKey(ev))
		default:
			return dst
		}
	}
}

func fromKey(ev hal.KeyEvent) Event {
	if ev.Code == hal.KeyQuit {
		return Event{Kind: EventQuit, Press: true}
	}
	return Event{Kind: EventKey, Key: ev.Code, Rune: ev.Rune, Press: ev.Press}
}

// QueueSource is an in-memory Source.
type QueueSource struct {
	pending []Event
}

func (q *QueueSource) Push(evs ...Event) { q.pending = append(q.pending, evs...) }

// PushKey queues a key press.
func (q *QueueSource) PushKey(code hal.KeyCode, r rune) {
	q.Push(Event{Kind: EventKey, Key: code, Rune: r, Press: true})
}

func (q *QueueSource) Poll(dst []Event) []Event {
	dst = append(dst, q.pending...)
	q.pending = q.pending[:0]
	return dst
}
