package app

import (
	"context"
	"errors"
	"fmt"

	"orrery/hal"
	"orrery/internal/buildinfo"
	"orrery/orrery/input"
	"orrery/orrery/loop"
	"orrery/orrery/model"
	"orrery/orrery/raster"
	"orrery/orrery/render"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

var (
	ErrNoFramebuffer   = errors.New("no usable framebuffer")
	ErrFontUnavailable = errors.New("font unavailable")
)

type Config struct {
	// Frames stops the loop after N frames; 0 runs until quit.
	Frames uint64

	// Model overrides model.Default().
	Model *model.Config

	// SmallFont and LargeFont override the built-in freemono faces.
	SmallFont tinyfont.Fonter
	LargeFont tinyfont.Fonter

	// Clock overrides the 60 fps frame limiter.
	Clock loop.Clock
}

// New returns the program a host backend drives. Startup failures are
// returned before the first frame; a panic inside a frame is reported on
// screen and returned as an error.
func New(cfg Config) hal.Runner {
	return func(ctx context.Context, h hal.HAL) error {
		return run(ctx, h, cfg)
	}
}

func run(ctx context.Context, h hal.HAL, cfg Config) (err error) {
	mc := model.Default()
	if cfg.Model != nil {
		mc = *cfg.Model
	}
	if err := mc.Validate(); err != nil {
		return err
	}

	fb, err := framebuffer(h, &mc)
	if err != nil {
		return err
	}
	small, err := face(cfg.SmallFont, &freemono.Regular9pt7b, "small")
	if err != nil {
		return err
	}
	large, err := face(cfg.LargeFont, &freemono.Regular12pt7b, "large")
	if err != nil {
		return err
	}
	surface, err := render.NewFramebufferSurface(fb, small, large)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoFramebuffer, err)
	}

	logger := h.Logger()
	opts := []loop.Option{
		loop.WithLogger(logger),
		loop.WithMaxFrames(cfg.Frames),
	}
	if cfg.Clock != nil {
		opts = append(opts, loop.WithClock(cfg.Clock))
	}
	l := loop.New(&mc, surface, input.NewHALSource(h.Input()), opts...)

	if logger != nil {
		logger.WriteLineString("orrery " + buildinfo.Short())
	}

	defer recoverFrame(h, small, &err)
	return l.Run(ctx)
}

func framebuffer(h hal.HAL, mc *model.Config) (hal.Framebuffer, error) {
	disp := h.Display()
	if disp == nil {
		return nil, ErrNoFramebuffer
	}
	fb := disp.Framebuffer()
	if fb == nil {
		return nil, ErrNoFramebuffer
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, fmt.Errorf("%w: pixel format %d", ErrNoFramebuffer, fb.Format())
	}
	if fb.Width() != mc.Width || fb.Height() != mc.Height {
		return nil, fmt.Errorf("%w: %dx%d, want %dx%d", ErrNoFramebuffer, fb.Width(), fb.Height(), mc.Width, mc.Height)
	}
	return fb, nil
}

func face(font, fallback tinyfont.Fonter, name string) (*raster.Face, error) {
	if font == nil {
		font = fallback
	}
	f, err := raster.NewFace(font)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrFontUnavailable, name, err)
	}
	return f, nil
}
