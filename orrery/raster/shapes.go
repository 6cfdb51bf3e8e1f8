package raster

import (
	"image"
	"image/color"
	"math"
)

// FillCircle fills the disc of radius r around (cx, cy).
func FillCircle(t Target, cx, cy, r int, c color.RGBA) {
	if r < 0 {
		return
	}
	for y := -r; y <= r; y++ {
		dx := halfChord(r, y)
		t.FillSpan(cx-dx, cx+dx, cy+y, c)
	}
}

// StrokeCircle draws a ring whose outer edge is radius r and which extends
// width pixels inward. width <= 0 or width >= r fills the disc.
func StrokeCircle(t Target, cx, cy, r, width int, c color.RGBA) {
	if r < 0 {
		return
	}
	if width <= 0 || width >= r {
		FillCircle(t, cx, cy, r, c)
		return
	}
	inner := r - width
	for y := -r; y <= r; y++ {
		outer := halfChord(r, y)
		if y <= -inner || y >= inner {
			t.FillSpan(cx-outer, cx+outer, cy+y, c)
			continue
		}
		in := halfChord(inner, y)
		if in >= outer {
			in = outer - 1
		}
		t.FillSpan(cx-outer, cx-in-1, cy+y, c)
		t.FillSpan(cx+in+1, cx+outer, cy+y, c)
	}
}

// Line draws a segment with a square brush of the given width.
func Line(t Target, x0, y0, x1, y1, width int, c color.RGBA) {
	if width < 1 {
		width = 1
	}
	lo := -(width - 1) / 2
	hi := lo + width - 1
	plot := func(x, y int) {
		if width == 1 {
			t.SetPixel(x, y, c)
			return
		}
		for yy := y + lo; yy <= y+hi; yy++ {
			t.FillSpan(x+lo, x+hi, yy, c)
		}
	}

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Polyline connects consecutive points; closed also joins the last point to the first.
func Polyline(t Target, pts []image.Point, closed bool, width int, c color.RGBA) {
	switch len(pts) {
	case 0:
		return
	case 1:
		Line(t, pts[0].X, pts[0].Y, pts[0].X, pts[0].Y, width, c)
		return
	}
	for i := 1; i < len(pts); i++ {
		Line(t, pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, width, c)
	}
	if closed {
		last := pts[len(pts)-1]
		Line(t, last.X, last.Y, pts[0].X, pts[0].Y, width, c)
	}
}

// Pixel snaps a float coordinate to the nearest pixel.
func Pixel(v float64) int { return int(math.Round(v)) }

func halfChord(r, y int) int {
	return int(math.Sqrt(float64(r*r - y*y)))
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
