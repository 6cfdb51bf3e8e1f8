package orbit

import "math"

// OrbitPath appends segments+1 points of the closed, tilt-attenuated orbit
// around center to dst[:0]. The last point repeats the first.
func OrbitPath(dst []Vec2, segments int, center Vec2, radius, tiltDeg float64) []Vec2 {
	dst = dst[:0]
	att := Attenuation(tiltDeg)
	for i := 0; i <= segments; i++ {
		dst = append(dst, place(unitPoint(i, segments, att), center, radius))
	}
	return dst
}

// Path is an orbit path whose shape is sampled once. Points only
// translates and scales the cached samples and returns exactly what
// OrbitPath would.
type Path struct {
	segments int
	tiltDeg  float64
	unit     []Vec2
}

func NewPath(segments int, tiltDeg float64) *Path {
	if segments < 1 {
		segments = 1
	}
	p := &Path{segments: segments, tiltDeg: tiltDeg, unit: make([]Vec2, segments+1)}
	att := Attenuation(tiltDeg)
	for i := range p.unit {
		p.unit[i] = unitPoint(i, segments, att)
	}
	return p
}

func (p *Path) Segments() int    { return p.segments }
func (p *Path) TiltDeg() float64 { return p.tiltDeg }

// Points appends the path around center with the given pixel radius to dst[:0].
func (p *Path) Points(dst []Vec2, center Vec2, radius float64) []Vec2 {
	dst = dst[:0]
	for _, u := range p.unit {
		dst = append(dst, place(u, center, radius))
	}
	return dst
}

func unitPoint(i, segments int, att float64) Vec2 {
	a := float64(i) / float64(segments) * 2 * math.Pi
	return Vec2{X: math.Cos(a), Y: math.Sin(a) * att}
}

func place(u, center Vec2, radius float64) Vec2 {
	return Vec2{X: center.X + radius*u.X, Y: center.Y + radius*u.Y}
}
