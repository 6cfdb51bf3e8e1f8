package model

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

type Palette struct {
	Background color.RGBA
	Orbit      color.RGBA

	Star      color.RGBA
	Primary   color.RGBA
	Satellite color.RGBA

	// GlowEdge is the colour of the outermost star glow ring; inner rings
	// blend from it toward the star colour.
	GlowEdge  color.RGBA
	Indicator color.RGBA

	Speed      color.RGBA
	FPS        color.RGBA
	Tilt       color.RGBA
	HelpHeader color.RGBA
	Help       color.RGBA
	Hint       color.RGBA
}

func DefaultPalette() Palette {
	return Palette{
		Background: MustHex("#0a0a14"),
		Orbit:      MustHex("#28283c"),
		Star:       MustHex("#ffe632"),
		Primary:    MustHex("#3264c8"),
		Satellite:  MustHex("#b4b4b4"),
		GlowEdge:   MustHex("#ff8c14"),
		Indicator:  MustHex("#6496ff"),
		Speed:      MustHex("#ffffff"),
		FPS:        MustHex("#969696"),
		Tilt:       MustHex("#96c896"),
		HelpHeader: MustHex("#ffff64"),
		Help:       MustHex("#c8c8c8"),
		Hint:       MustHex("#646464"),
	}
}

// Hex parses a "#rrggbb" colour.
func Hex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return toRGBA(c), nil
}

// MustHex is like Hex but panics on malformed input. It is meant for literals.
func MustHex(s string) color.RGBA {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// GlowRamp returns the colours of n glow rings ordered outer to inner.
// Ring k (n..1) is edge blended toward base by (n-k)/n.
func GlowRamp(edge, base color.RGBA, n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	from, _ := colorful.MakeColor(edge)
	to, _ := colorful.MakeColor(base)

	out := make([]color.RGBA, 0, n)
	for k := n; k >= 1; k-- {
		t := float64(n-k) / float64(n)
		out = append(out, toRGBA(from.BlendRgb(to, t)))
	}
	return out
}

// Brighten adds d to every channel, saturating at 255.
func Brighten(c color.RGBA, d uint8) color.RGBA {
	add := func(v uint8) uint8 {
		if s := int(v) + int(d); s < 0xFF {
			return uint8(s)
		}
		return 0xFF
	}
	return color.RGBA{R: add(c.R), G: add(c.G), B: add(c.B), A: c.A}
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
