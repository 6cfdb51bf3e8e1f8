// Package render turns one frame of simulation state into draw calls.
//
// A Renderer records each frame into a display list of Commands and
// replays it on a Surface.
package render

import (
	"fmt"
	"image"
	"image/color"

	"orrery/orrery/model"
	"orrery/orrery/orbit"
	"orrery/orrery/raster"
)

const (
	statusX     = 10
	speedY      = 10
	fpsY        = 40
	tiltY       = 65
	lineStep    = 20
	helpMargin  = 30
	helpBottom  = 10
	hintBottom  = 30
	highlightUp = 50
)

// Frame is the per-frame input of the renderer.
type Frame struct {
	Time     float64 // simulated seconds
	Speed    float64
	FPS      float64
	ShowHelp bool
}

type Renderer struct {
	cfg *model.Config

	primaryPath   *orbit.Path
	satellitePath *orbit.Path
	glow          []color.RGBA
	help          []string
	tilt          string

	list List
	vbuf []orbit.Vec2
	pbuf []image.Point
}

func New(cfg *model.Config) *Renderer {
	return &Renderer{
		cfg:           cfg,
		primaryPath:   orbit.NewPath(cfg.PathSegments, cfg.Primary.TiltDeg),
		satellitePath: orbit.NewPath(cfg.PathSegments, cfg.Satellite.TiltDeg),
		glow:          model.GlowRamp(cfg.Palette.GlowEdge, cfg.Star.Color, cfg.GlowRings),
		help:          HelpLines(cfg),
		tilt:          fmt.Sprintf("%s orbit tilt: %g deg", cfg.Satellite.Name, cfg.Satellite.TiltDeg),
	}
}

// HelpLines returns the help block; the first line is its header.
func HelpLines(cfg *model.Config) []string {
	return []string{
		"Controls:",
		"UP/DOWN - Change speed",
		"SPACE - Pause/Resume",
		"H - Toggle help",
		"ESC - Exit",
		"",
		"Features:",
		fmt.Sprintf("- %s orbits %s (XZ plane)", cfg.Primary.Name, cfg.Star.Name),
		fmt.Sprintf("- %s orbits %s (tilted %g deg)", cfg.Satellite.Name, cfg.Primary.Name, cfg.Satellite.TiltDeg),
		"- Different orbital speeds",
	}
}

// Draw renders f onto s and presents it.
func (r *Renderer) Draw(s Surface, f Frame) error {
	r.Record(s, f)
	r.list.Replay(s)
	return s.Present()
}

// Record builds the display list for f. s is only used to measure text.
// The returned list is reused by the next call.
func (r *Renderer) Record(s Surface, f Frame) *List {
	cfg := r.cfg
	pal := &cfg.Palette
	l := &r.list
	l.Reset()

	pos := orbit.At(cfg, f.Time)
	l.Clear(pal.Background)

	// The star is stationary and has no path.
	r.vbuf = r.primaryPath.Points(r.vbuf, pos.Star, cfg.Primary.OrbitRadius*cfg.View.Scale)
	r.polyline(pal.Orbit)

	pc := orbit.Vec2{X: float64(raster.Pixel(pos.Primary.X)), Y: float64(raster.Pixel(pos.Primary.Y))}
	r.vbuf = r.satellitePath.Points(r.vbuf, pc, cfg.Satellite.OrbitRadius*cfg.View.Scale)
	r.polyline(pal.Orbit)

	sx, sy := pixel(pos.Star)
	base := int(cfg.Star.Radius)
	for i, c := range r.glow {
		k := len(r.glow) - i
		l.StrokeCircle(sx, sy, base+k*5, k*2, c)
	}
	r.body(&cfg.Star, pos.Star)

	r.body(&cfg.Primary, pos.Primary)
	fx, fy := pixel(pos.IndicatorFrom)
	tx, ty := pixel(pos.IndicatorTo)
	l.Line(fx, fy, tx, ty, cfg.IndicatorWidth, pal.Indicator)

	r.body(&cfg.Satellite, pos.Satellite)

	r.overlay(s, f)
	return l
}

func (r *Renderer) polyline(c color.RGBA) {
	r.pbuf = r.pbuf[:0]
	for _, v := range r.vbuf {
		x, y := pixel(v)
		r.pbuf = append(r.pbuf, image.Point{X: x, Y: y})
	}
	r.list.Polyline(r.pbuf, true, 1, c)
}

// body draws a filled disc with a brighter highlight up and left of centre.
func (r *Renderer) body(b *model.Body, p orbit.Vec2) {
	x, y := pixel(p)
	rad := int(b.Radius)
	r.list.FillCircle(x, y, rad, b.Color)
	off := rad / 4
	r.list.FillCircle(x-off, y-off, rad/3, model.Brighten(b.Color, highlightUp))
}

func (r *Renderer) overlay(s Surface, f Frame) {
	cfg := r.cfg
	pal := &cfg.Palette
	l := &r.list

	l.Text(statusX, speedY, TextLarge, fmt.Sprintf("Speed: %.1fx", f.Speed), pal.Speed)
	l.Text(statusX, fpsY, TextSmall, fmt.Sprintf("FPS: %d", int(f.FPS)), pal.FPS)
	l.Text(statusX, tiltY, TextSmall, r.tilt, pal.Tilt)

	if !f.ShowHelp {
		const hint = "Press H for help"
		w, _ := s.MeasureText(TextSmall, hint)
		l.Text(cfg.Width-helpMargin-w, cfg.Height-hintBottom, TextSmall, hint, pal.Hint)
		return
	}

	maxW := 0
	for _, line := range r.help {
		if w, _ := s.MeasureText(TextSmall, line); w > maxW {
			maxW = w
		}
	}
	x := cfg.Width - helpMargin - maxW
	y := cfg.Height - lineStep*len(r.help) - helpBottom
	for i, line := range r.help {
		if line == "" {
			continue
		}
		c := pal.Help
		if i == 0 {
			c = pal.HelpHeader
		}
		l.Text(x, y+i*lineStep, TextSmall, line, c)
	}
}

func pixel(v orbit.Vec2) (x, y int) { return raster.Pixel(v.X), raster.Pixel(v.Y) }
