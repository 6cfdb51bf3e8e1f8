package render

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"orrery/hal"
	"orrery/orrery/model"
	"orrery/orrery/orbit"
	"orrery/orrery/raster"

	"tinygo.org/x/tinyfont/freemono"
)

// recorder is a Surface that remembers every call.
type recorder struct {
	w, h     int
	calls    []Command
	points   [][]image.Point
	presents int
}

func (r *recorder) Size() (int, int) { return r.w, r.h }

func (r *recorder) Clear(c color.RGBA) {
	r.calls = append(r.calls, Command{Kind: KindClear, Color: c})
}

func (r *recorder) FillCircle(x, y, rad int, c color.RGBA) {
	r.calls = append(r.calls, Command{Kind: KindFillCircle, X: x, Y: y, R: rad, Color: c})
}

func (r *recorder) StrokeCircle(x, y, rad, width int, c color.RGBA) {
	r.calls = append(r.calls, Command{Kind: KindStrokeCircle, X: x, Y: y, R: rad, Width: width, Color: c})
}

func (r *recorder) Polyline(pts []image.Point, closed bool, width int, c color.RGBA) {
	r.calls = append(r.calls, Command{Kind: KindPolyline, Closed: closed, Width: width, Color: c})
	r.points = append(r.points, append([]image.Point(nil), pts...))
}

func (r *recorder) Line(x0, y0, x1, y1, width int, c color.RGBA) {
	r.calls = append(r.calls, Command{Kind: KindLine, X: x0, Y: y0, X1: x1, Y1: y1, Width: width, Color: c})
}

func (r *recorder) Text(x, y int, size TextSize, s string, c color.RGBA) {
	r.calls = append(r.calls, Command{Kind: KindText, X: x, Y: y, Size: size, Text: s, Color: c})
}

func (r *recorder) MeasureText(size TextSize, s string) (int, int) { return len(s) * 8, 14 }

func (r *recorder) Present() error {
	r.presents++
	return nil
}

func (r *recorder) kinds() []Kind {
	out := make([]Kind, len(r.calls))
	for i, c := range r.calls {
		out[i] = c.Kind
	}
	return out
}

func (r *recorder) texts() []Command {
	var out []Command
	for _, c := range r.calls {
		if c.Kind == KindText {
			out = append(out, c)
		}
	}
	return out
}

func drawFrame(t *testing.T, f Frame) (*model.Config, *recorder) {
	t.Helper()
	cfg := model.Default()
	rec := &recorder{w: cfg.Width, h: cfg.Height}
	if err := New(&cfg).Draw(rec, f); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	return &cfg, rec
}

func TestDrawOrder(t *testing.T) {
	_, rec := drawFrame(t, Frame{Time: 3, Speed: 1, FPS: 60, ShowHelp: false})

	want := []Kind{
		KindClear,
		KindPolyline, KindPolyline,
		KindStrokeCircle, KindStrokeCircle, KindStrokeCircle,
		KindFillCircle, KindFillCircle,
		KindFillCircle, KindFillCircle,
		KindLine,
		KindFillCircle, KindFillCircle,
		KindText, KindText, KindText, KindText,
	}
	got := rec.kinds()
	if len(got) != len(want) {
		t.Fatalf("got %d calls %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d = %s, want %s (all: %v)", i, got[i], want[i], got)
		}
	}
	if rec.presents != 1 {
		t.Fatalf("presents = %d", rec.presents)
	}
}

func TestOrbitPaths(t *testing.T) {
	cfg, rec := drawFrame(t, Frame{Time: 3, Speed: 1})

	if len(rec.points) != 2 {
		t.Fatalf("polylines = %d", len(rec.points))
	}
	for i, pts := range rec.points {
		if len(pts) != cfg.PathSegments+1 {
			t.Fatalf("path %d has %d points", i, len(pts))
		}
		if pts[0] != pts[len(pts)-1] {
			t.Fatalf("path %d not closed: %v .. %v", i, pts[0], pts[len(pts)-1])
		}
		if c := rec.calls[1+i]; !c.Closed || c.Width != 1 || c.Color != cfg.Palette.Orbit {
			t.Fatalf("path %d style = %+v", i, c)
		}
	}

	if got := rec.points[0][0]; got != (image.Point{X: 640 + 300, Y: 360}) {
		t.Fatalf("primary path start = %v", got)
	}

	p := orbit.PrimaryPosition(cfg, 3)
	want := image.Point{X: raster.Pixel(p.X) + 60, Y: raster.Pixel(p.Y)}
	if got := rec.points[1][0]; got != want {
		t.Fatalf("satellite path start = %v, want %v", got, want)
	}
}

func TestStarGlowAndHighlight(t *testing.T) {
	cfg, rec := drawFrame(t, Frame{})

	radii := []int{45, 40, 35}
	widths := []int{6, 4, 2}
	colors := []color.RGBA{{255, 140, 20, 255}, {255, 170, 30, 255}, {255, 200, 40, 255}}
	for i := 0; i < 3; i++ {
		c := rec.calls[3+i]
		if c.X != 640 || c.Y != 360 || c.R != radii[i] || c.Width != widths[i] || c.Color != colors[i] {
			t.Fatalf("glow ring %d = %+v", i, c)
		}
	}

	star, hl := rec.calls[6], rec.calls[7]
	if star.R != 30 || star.Color != cfg.Star.Color {
		t.Fatalf("star = %+v", star)
	}
	if hl.X != 640-7 || hl.Y != 360-7 || hl.R != 10 || hl.Color != (color.RGBA{255, 255, 100, 255}) {
		t.Fatalf("star highlight = %+v", hl)
	}

	moonHL := rec.calls[12]
	moon := rec.calls[11]
	if moon.R != 5 || moonHL.R != 1 || moonHL.X != moon.X-1 || moonHL.Y != moon.Y-1 {
		t.Fatalf("satellite = %+v highlight = %+v", moon, moonHL)
	}
	if moonHL.Color != (color.RGBA{230, 230, 230, 255}) {
		t.Fatalf("satellite highlight colour = %+v", moonHL.Color)
	}
}

func TestRotationIndicator(t *testing.T) {
	cfg, rec := drawFrame(t, Frame{Time: 1})
	line := rec.calls[10]
	p := orbit.PrimaryPosition(cfg, 1)
	_, to := orbit.RotationIndicator(cfg, p, 1)
	if line.X != raster.Pixel(p.X) || line.Y != raster.Pixel(p.Y) ||
		line.X1 != raster.Pixel(to.X) || line.Y1 != raster.Pixel(to.Y) {
		t.Fatalf("indicator = %+v", line)
	}
	if line.Width != 2 || line.Color != cfg.Palette.Indicator {
		t.Fatalf("indicator style = %+v", line)
	}
}

func TestStatusText(t *testing.T) {
	_, rec := drawFrame(t, Frame{Speed: 1.2, FPS: 59.7})
	texts := rec.texts()
	if texts[0].Text != "Speed: 1.2x" || texts[0].X != 10 || texts[0].Y != 10 || texts[0].Size != TextLarge {
		t.Fatalf("speed = %+v", texts[0])
	}
	if texts[1].Text != "FPS: 59" || texts[1].Y != 40 {
		t.Fatalf("fps = %+v", texts[1])
	}
	if texts[2].Text != "Moon orbit tilt: 15 deg" || texts[2].Y != 65 {
		t.Fatalf("tilt = %+v", texts[2])
	}

	_, rec = drawFrame(t, Frame{Speed: 0})
	if got := rec.texts()[0].Text; got != "Speed: 0.0x" {
		t.Fatalf("paused speed = %q", got)
	}
}

func TestHelpBlock(t *testing.T) {
	cfg, rec := drawFrame(t, Frame{ShowHelp: true})
	texts := rec.texts()[3:]
	lines := HelpLines(cfg)

	// One blank line is skipped.
	if len(texts) != len(lines)-1 {
		t.Fatalf("help texts = %d", len(texts))
	}

	maxW := 0
	for _, l := range lines {
		if w := len(l) * 8; w > maxW {
			maxW = w
		}
	}
	top := 720 - 20*len(lines) - 10
	for _, tx := range texts {
		if tx.X != 1280-30-maxW {
			t.Fatalf("%q x = %d", tx.Text, tx.X)
		}
		if (tx.Y-top)%20 != 0 {
			t.Fatalf("%q y = %d not on the 20px grid", tx.Text, tx.Y)
		}
	}
	if texts[0].Text != "Controls:" || texts[0].Y != top || texts[0].Color != cfg.Palette.HelpHeader {
		t.Fatalf("header = %+v", texts[0])
	}
	if texts[1].Color != cfg.Palette.Help {
		t.Fatalf("help line colour = %+v", texts[1].Color)
	}
	last := texts[len(texts)-1]
	if last.Y != 720-30 {
		t.Fatalf("last line y = %d", last.Y)
	}
	for _, tx := range texts {
		if strings.Contains(tx.Text, "Press H") {
			t.Fatal("hint drawn with help")
		}
	}
}

func TestHint(t *testing.T) {
	cfg, rec := drawFrame(t, Frame{ShowHelp: false})
	texts := rec.texts()
	hint := texts[len(texts)-1]
	if hint.Text != "Press H for help" || hint.Color != cfg.Palette.Hint {
		t.Fatalf("hint = %+v", hint)
	}
	if hint.X != 1280-30-len(hint.Text)*8 || hint.Y != 720-30 {
		t.Fatalf("hint at (%d,%d)", hint.X, hint.Y)
	}
}

func TestRecordReusesList(t *testing.T) {
	cfg := model.Default()
	r := New(&cfg)
	rec := &recorder{}
	n := r.Record(rec, Frame{Time: 1}).Len()
	l := r.Record(rec, Frame{Time: 2})
	if l.Len() != n {
		t.Fatalf("second frame has %d commands, want %d", l.Len(), n)
	}
	poly := l.Commands()[1]
	if got := len(l.Points(poly)); got != cfg.PathSegments+1 {
		t.Fatalf("points = %d", got)
	}
	if l.Points(l.Commands()[0]) != nil {
		t.Fatal("non-polyline command has points")
	}
}

func TestFramebufferSurface(t *testing.T) {
	small, err := raster.NewFace(&freemono.Regular9pt7b)
	if err != nil {
		t.Fatal(err)
	}
	large, err := raster.NewFace(&freemono.Regular12pt7b)
	if err != nil {
		t.Fatal(err)
	}

	cfg := model.Default()
	fb := hal.New(cfg.Width, cfg.Height).Display().Framebuffer()
	s, err := NewFramebufferSurface(fb, small, large)
	if err != nil {
		t.Fatalf("NewFramebufferSurface: %v", err)
	}
	if w, h := s.Size(); w != 1280 || h != 720 {
		t.Fatalf("size = %dx%d", w, h)
	}
	if err := New(&cfg).Draw(s, Frame{ShowHelp: true}); err != nil {
		t.Fatalf("Draw: %v", err)
	}

	at := func(x, y int) uint16 {
		buf := fb.Buffer()
		off := y*fb.StrideBytes() + x*2
		return uint16(buf[off]) | uint16(buf[off+1])<<8
	}
	if got := at(640+25, 360); got != raster.RGB565(cfg.Star.Color) {
		t.Fatalf("star pixel = %#04x", got)
	}
	if got := at(1279, 0); got != raster.RGB565(cfg.Palette.Background) {
		t.Fatalf("background pixel = %#04x", got)
	}

	if sw, _ := s.MeasureText(TextSmall, "Controls:"); sw <= 0 {
		t.Fatal("MeasureText returned no width")
	}
	lw, _ := s.MeasureText(TextLarge, "Speed")
	sw, _ := s.MeasureText(TextSmall, "Speed")
	if lw <= sw {
		t.Fatalf("large %d <= small %d", lw, sw)
	}
}

func TestFramebufferSurfaceRejectsMissingParts(t *testing.T) {
	if _, err := NewFramebufferSurface(nil, nil, nil); err == nil {
		t.Fatal("nil framebuffer accepted")
	}
	fb := hal.New(8, 8).Display().Framebuffer()
	if _, err := NewFramebufferSurface(fb, nil, nil); err != raster.ErrEmptyFont {
		t.Fatalf("err = %v", err)
	}
}
