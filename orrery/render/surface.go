package render

import (
	"errors"
	"image"
	"image/color"

	"orrery/hal"
	"orrery/orrery/raster"
)

var ErrUnsupportedFormat = errors.New("framebuffer pixel format not supported")

// Surface is the drawing capability the renderer needs from a backend.
// Coordinates are integer pixels; drawing outside the surface is clipped.
type Surface interface {
	Size() (w, h int)
	Clear(c color.RGBA)
	FillCircle(x, y, r int, c color.RGBA)
	// StrokeCircle draws a ring of the given width inside radius r.
	StrokeCircle(x, y, r, width int, c color.RGBA)
	Polyline(pts []image.Point, closed bool, width int, c color.RGBA)
	Line(x0, y0, x1, y1, width int, c color.RGBA)
	// Text draws s with its line box's top-left corner at (x, y).
	Text(x, y int, size TextSize, s string, c color.RGBA)
	MeasureText(size TextSize, s string) (w, h int)
	Present() error
}

// FramebufferSurface rasterizes into the back buffer of a hal.Framebuffer.
type FramebufferSurface struct {
	fb    hal.Framebuffer
	small *raster.Face
	large *raster.Face
	t     raster.RGB565Target
}

func NewFramebufferSurface(fb hal.Framebuffer, small, large *raster.Face) (*FramebufferSurface, error) {
	if fb == nil {
		return nil, errors.New("render: nil framebuffer")
	}
	if fb.Format() != hal.PixelFormatRGB565 {
		return nil, ErrUnsupportedFormat
	}
	if small == nil || large == nil {
		return nil, raster.ErrEmptyFont
	}
	s := &FramebufferSurface{fb: fb, small: small, large: large}
	s.sync()
	return s, nil
}

// sync refreshes the raster target from the framebuffer's current back buffer.
func (s *FramebufferSurface) sync() {
	s.t = raster.RGB565Target{
		Buf:    s.fb.Buffer(),
		Stride: s.fb.StrideBytes(),
		W:      s.fb.Width(),
		H:      s.fb.Height(),
	}
}

func (s *FramebufferSurface) face(size TextSize) *raster.Face {
	if size == TextLarge {
		return s.large
	}
	return s.small
}

func (s *FramebufferSurface) Size() (w, h int) { return s.fb.Width(), s.fb.Height() }

func (s *FramebufferSurface) Clear(c color.RGBA) {
	s.sync()
	s.t.Clear(c)
}

func (s *FramebufferSurface) FillCircle(x, y, r int, c color.RGBA) {
	raster.FillCircle(&s.t, x, y, r, c)
}

func (s *FramebufferSurface) StrokeCircle(x, y, r, width int, c color.RGBA) {
	raster.StrokeCircle(&s.t, x, y, r, width, c)
}

func (s *FramebufferSurface) Polyline(pts []image.Point, closed bool, width int, c color.RGBA) {
	raster.Polyline(&s.t, pts, closed, width, c)
}

func (s *FramebufferSurface) Line(x0, y0, x1, y1, width int, c color.RGBA) {
	raster.Line(&s.t, x0, y0, x1, y1, width, c)
}

func (s *FramebufferSurface) Text(x, y int, size TextSize, str string, c color.RGBA) {
	s.face(size).Draw(&s.t, x, y, str, c)
}

func (s *FramebufferSurface) MeasureText(size TextSize, str string) (w, h int) {
	return s.face(size).Measure(str)
}

func (s *FramebufferSurface) Present() error { return s.fb.Present() }
