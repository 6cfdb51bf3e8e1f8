// Package raster draws 2D primitives into a pixel target.
//
// Primitives take integer pixel coordinates and clip silently; nothing in
// this package returns an error. RGB565Target is the only built-in target
// and matches hal.Framebuffer's layout.
package raster

import "image/color"

// Target is a minimal pixel target.
//
// Implementations must clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c color.RGBA)
	// FillSpan fills pixels x0..x1 inclusive on row y.
	FillSpan(x0, x1, y int, c color.RGBA)
	Clear(c color.RGBA)
}

// RGB565Target renders into an RGB565 buffer with the given layout.
type RGB565Target struct {
	Buf    []byte
	Stride int // bytes per row
	W      int
	H      int
}

func (t *RGB565Target) Size() (w, h int) { return t.W, t.H }

func (t *RGB565Target) valid() bool {
	return t != nil && t.Buf != nil && t.Stride > 0 && t.W > 0 && t.H > 0
}

func (t *RGB565Target) Clear(c color.RGBA) {
	if !t.valid() {
		return
	}
	for y := 0; y < t.H; y++ {
		t.FillSpan(0, t.W-1, y, c)
	}
}

func (t *RGB565Target) SetPixel(x, y int, c color.RGBA) {
	if !t.valid() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return
	}
	off := y*t.Stride + x*2
	if off < 0 || off+1 >= len(t.Buf) {
		return
	}
	p := RGB565(c)
	t.Buf[off] = byte(p)
	t.Buf[off+1] = byte(p >> 8)
}

func (t *RGB565Target) FillSpan(x0, x1, y int, c color.RGBA) {
	if !t.valid() || y < 0 || y >= t.H {
		return
	}
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= t.W {
		x1 = t.W - 1
	}
	if x0 > x1 {
		return
	}

	p := RGB565(c)
	lo := byte(p)
	hi := byte(p >> 8)
	row := y * t.Stride
	for x := x0; x <= x1; x++ {
		off := row + x*2
		if off < 0 || off+1 >= len(t.Buf) {
			return
		}
		t.Buf[off] = lo
		t.Buf[off+1] = hi
	}
}

// At returns the colour stored at (x, y), expanded back to 8 bits per channel.
func (t *RGB565Target) At(x, y int) color.RGBA {
	if !t.valid() || x < 0 || y < 0 || x >= t.W || y >= t.H {
		return color.RGBA{}
	}
	off := y*t.Stride + x*2
	if off+1 >= len(t.Buf) {
		return color.RGBA{}
	}
	p := uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8
	r := uint8(p>>11) & 0x1F
	g := uint8(p>>5) & 0x3F
	b := uint8(p) & 0x1F
	return color.RGBA{R: r<<3 | r>>2, G: g<<2 | g>>4, B: b<<3 | b>>2, A: 0xFF}
}

// RGB565 packs c into 16 bits, dropping alpha.
func RGB565(c color.RGBA) uint16 {
	return uint16((uint16(c.R>>3)&0x1F)<<11 | (uint16(c.G>>2)&0x3F)<<5 | (uint16(c.B>>3) & 0x1F))
}
