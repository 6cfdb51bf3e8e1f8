// Package loop is the frame loop of the visualizer.
//
// Each Step drains every queued input command, waits for the frame
// clock, advances simulated time, and renders and presents one frame, in
// that order. A quit command stops the loop after the current frame.
package loop

import (
	"context"
	"fmt"
	"time"

	"orrery/hal"
	"orrery/orrery/clock"
	"orrery/orrery/input"
	"orrery/orrery/model"
	"orrery/orrery/render"
	"orrery/orrery/sim"
)

type Status uint8

const (
	Running Status = iota
	Stopped
)

func (s Status) String() string {
	if s == Stopped {
		return "stopped"
	}
	return "running"
}

// Clock paces frames. Tick blocks until the next frame boundary and
// returns the elapsed wall time.
type Clock interface {
	Tick() time.Duration
	FPS() float64
}

type Option func(*Loop)

func WithClock(c Clock) Option { return func(l *Loop) { l.clock = c } }

func WithLogger(lg hal.Logger) Option { return func(l *Loop) { l.log = lg } }

// WithMaxFrames stops the loop after n frames. 0 means no limit.
func WithMaxFrames(n uint64) Option { return func(l *Loop) { l.maxFrames = n } }

type Loop struct {
	cfg      *model.Config
	surface  render.Surface
	ctrl     *input.Controller
	state    *sim.State
	renderer *render.Renderer
	clock    Clock
	log      hal.Logger

	status    Status
	showHelp  bool
	frames    uint64
	maxFrames uint64
}

// New builds a loop over a validated config. surface and src are owned
// by the caller.
func New(cfg *model.Config, surface render.Surface, src input.Source, opts ...Option) *Loop {
	l := &Loop{
		cfg:      cfg,
		surface:  surface,
		ctrl:     input.NewController(src),
		state:    sim.New(cfg.Speed),
		renderer: render.New(cfg),
		showHelp: true,
	}
	for _, o := range opts {
		o(l)
	}
	if l.clock == nil {
		l.clock = clock.New(cfg.FPS)
	}
	return l
}

func (l *Loop) Status() Status    { return l.status }
func (l *Loop) State() *sim.State { return l.state }
func (l *Loop) Frames() uint64    { return l.frames }
func (l *Loop) ShowHelp() bool    { return l.showHelp }

// Stop marks the loop stopped; later Steps do nothing.
func (l *Loop) Stop() { l.status = Stopped }

// Step runs one frame. It is a no-op once the loop has stopped.
func (l *Loop) Step() error {
	if l.status == Stopped {
		return nil
	}

	for _, cmd := range l.ctrl.Poll() {
		l.apply(cmd)
	}

	dt := l.clock.Tick()
	l.state.Advance(dt.Seconds())

	err := l.renderer.Draw(l.surface, render.Frame{
		Time:     l.state.Time(),
		Speed:    l.state.Multiplier(),
		FPS:      l.clock.FPS(),
		ShowHelp: l.showHelp,
	})
	l.frames++
	if err != nil {
		l.status = Stopped
		return fmt.Errorf("frame %d: present: %w", l.frames, err)
	}
	if l.maxFrames > 0 && l.frames >= l.maxFrames {
		l.status = Stopped
	}
	return nil
}

func (l *Loop) apply(cmd input.Command) {
	switch cmd {
	case input.CmdQuit:
		l.status = Stopped
	case input.CmdToggleHelp:
		l.showHelp = !l.showHelp
	case input.CmdSpeedUp:
		l.state.IncreaseSpeed()
	case input.CmdSpeedDown:
		l.state.DecreaseSpeed()
	case input.CmdTogglePause:
		l.state.TogglePause()
	}
}

// Run steps until the loop stops or ctx is done. Cancellation counts as
// a quit request and is not reported as an error.
func (l *Loop) Run(ctx context.Context) error {
	l.logf("orrery: loop start %dx%d @%d fps", l.cfg.Width, l.cfg.Height, l.cfg.FPS)
	var err error
	for l.status == Running {
		if ctx.Err() != nil {
			l.status = Stopped
			break
		}
		if err = l.Step(); err != nil {
			break
		}
	}
	l.logf("orrery: loop stop frames=%d time=%.2fs speed=%.1fx", l.frames, l.state.Time(), l.state.Multiplier())
	return err
}

func (l *Loop) logf(format string, args ...any) {
	if l.log == nil {
		return
	}
	l.log.WriteLineString(fmt.Sprintf(format, args...))
}
