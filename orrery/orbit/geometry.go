// Package orbit maps simulated time to screen-space positions.
//
// All functions are pure: the same time and Config always produce
// bit-identical results. Tilt is approximated by attenuating the
// perpendicular (screen y) axis by cos(tilt); there is no depth.
package orbit

import (
	"math"

	"orrery/orrery/model"
)

// Vec2 is a screen-space point in pixels.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2     { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2     { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Len() float64        { return math.Hypot(v.X, v.Y) }
func (v Vec2) Dist(o Vec2) float64 { return v.Sub(o).Len() }

// Center returns the fixed screen centre of the view transform.
func Center(view model.View) Vec2 { return Vec2{view.CenterX, view.CenterY} }

// Angle is the phase of a uniform rotation at time t.
func Angle(t, speed float64) float64 { return t * speed }

// Attenuation returns the perpendicular-axis factor for a tilt in degrees.
func Attenuation(tiltDeg float64) float64 {
	return math.Cos(tiltDeg * math.Pi / 180)
}

// PrimaryPosition returns the primary body's position: a circular orbit
// around the view centre.
func PrimaryPosition(cfg *model.Config, t float64) Vec2 {
	b := &cfg.Primary
	a := Angle(t, b.AngularSpeed)
	return Vec2{
		X: cfg.View.CenterX + b.OrbitRadius*math.Cos(a)*cfg.View.Scale,
		Y: cfg.View.CenterY + b.OrbitRadius*math.Sin(a)*cfg.View.Scale,
	}
}

// SatellitePosition returns the satellite's position relative to the
// primary's position at the same time.
func SatellitePosition(cfg *model.Config, primary Vec2, t float64) Vec2 {
	b := &cfg.Satellite
	a := Angle(t, b.AngularSpeed)
	localX := b.OrbitRadius * math.Cos(a)
	localY := b.OrbitRadius * math.Sin(a) * Attenuation(b.TiltDeg)
	return Vec2{
		X: primary.X + localX*cfg.View.Scale,
		Y: primary.Y + localY*cfg.View.Scale,
	}
}

// RotationIndicator returns the self-rotation segment of the primary body.
// It is cosmetic and feeds nothing else.
func RotationIndicator(cfg *model.Config, primary Vec2, t float64) (from, to Vec2) {
	b := &cfg.Primary
	a := Angle(t, b.RotationSpeed)
	l := b.Radius * cfg.IndicatorLength
	return primary, Vec2{
		X: primary.X + l*math.Cos(a),
		Y: primary.Y + l*math.Sin(a),
	}
}

// Positions is the per-frame geometry of the system.
type Positions struct {
	Star      Vec2
	Primary   Vec2
	Satellite Vec2

	IndicatorFrom Vec2
	IndicatorTo   Vec2
}

// At computes every body position for simulated time t.
func At(cfg *model.Config, t float64) Positions {
	p := PrimaryPosition(cfg, t)
	from, to := RotationIndicator(cfg, p, t)
	return Positions{
		Star:          Center(cfg.View),
		Primary:       p,
		Satellite:     SatellitePosition(cfg, p, t),
		IndicatorFrom: from,
		IndicatorTo:   to,
	}
}
