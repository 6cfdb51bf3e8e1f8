package input

import "orrery/hal"

type EventKind uint8

const (
	EventKey EventKind = iota
	EventQuit
)

// Event is one raw input event, in backend queue order.
type Event struct {
	Kind  EventKind
	Key   hal.KeyCode
	Rune  rune
	Press bool
}

// Source delivers the events queued since the previous poll. Poll must not block.
type Source interface {
	Poll(dst []Event) []Event
}

type Command uint8

const (
	CmdNone Command = iota
	CmdQuit
	CmdToggleHelp
	CmdSpeedUp
	CmdSpeedDown
	CmdTogglePause
)

func (c Command) String() string {
	switch c {
	case CmdQuit:
		return "quit"
	case CmdToggleHelp:
		return "toggle-help"
	case CmdSpeedUp:
		return "speed-up"
	case CmdSpeedDown:
		return "speed-down"
	case CmdTogglePause:
		return "toggle-pause"
	default:
		return "none"
	}
}

// Controller turns raw events into commands.
type Controller struct {
	src    Source
	events []Event
	cmds   []Command
}

func NewController(src Source) *Controller {
	return &Controller{
		src:    src,
		events: make([]Event, 0, 16),
		cmds:   make([]Command, 0, 16),
	}
}

// Poll drains the source and returns every recognized command in event
// order. The returned slice is reused by the next call.
func (c *Controller) Poll() []Command {
	c.cmds = c.cmds[:0]
	if c.src == nil {
		return c.cmds
	}
	c.events = c.src.Poll(c.events[:0])
	for _, ev := range c.events {
		if cmd := Translate(ev); cmd != CmdNone {
			c.cmds = append(c.cmds, cmd)
		}
	}
	return c.cmds
}

// Translate maps one event to a command. Releases and unbound keys map to CmdNone.
func Translate(ev Event) Command {
	if ev.Kind == EventQuit {
		return CmdQuit
	}
	if !ev.Press {
		return CmdNone
	}
	switch ev.Key {
	case hal.KeyEscape:
		return CmdQuit
	case hal.KeyUp:
		return CmdSpeedUp
	case hal.KeyDown:
		return CmdSpeedDown
	case hal.KeySpace:
		return CmdTogglePause
	}
	switch ev.Rune {
	case 'h', 'H':
		return CmdToggleHelp
	case ' ':
		return CmdTogglePause
	}
	return CmdNone
}
