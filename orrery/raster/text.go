package raster

import (
	"errors"
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var ErrEmptyFont = errors.New("font has no measurable glyphs")

// Face draws single-line text with a tinyfont font. Positions are the
// top-left corner of the line box.
type Face struct {
	font       tinyfont.Fonter
	ascent     int16
	lineHeight int
}

// NewFace checks that font can render ASCII text.
func NewFace(font tinyfont.Fonter) (*Face, error) {
	if font == nil {
		return nil, ErrEmptyFont
	}
	_, outbox := tinyfont.LineWidth(font, "M")
	if outbox == 0 {
		return nil, ErrEmptyFont
	}
	var ascent int16
	for r := rune(0x21); r < 0x7F; r++ {
		if a := -int16(font.GetGlyph(r).Info().YOffset); a > ascent {
			ascent = a
		}
	}
	if ascent <= 0 {
		return nil, ErrEmptyFont
	}
	lh := int(font.GetYAdvance())
	if lh <= 0 {
		lh = int(ascent)
	}
	return &Face{font: font, ascent: ascent, lineHeight: lh}, nil
}

func (f *Face) LineHeight() int { return f.lineHeight }

// Measure returns the rendered size of s.
func (f *Face) Measure(s string) (w, h int) {
	_, outbox := tinyfont.LineWidth(f.font, s)
	return int(outbox), f.lineHeight
}

// Draw renders s with its line box's top-left corner at (x, y).
func (f *Face) Draw(t Target, x, y int, s string, c color.RGBA) {
	tinyfont.WriteLine(displayer{t: t}, f.font, int16(x), int16(y)+f.ascent, s, c)
}

// displayer adapts a Target to the display contract tinyfont draws through.
type displayer struct {
	t Target
}

var _ drivers.Displayer = displayer{}

func (d displayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d displayer) SetPixel(x, y int16, c color.RGBA) { d.t.SetPixel(int(x), int(y), c) }

func (d displayer) Display() error { return nil }
