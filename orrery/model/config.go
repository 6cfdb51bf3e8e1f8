// Package model holds the immutable configuration of the visualizer.
//
// A Config is built once at startup (normally by Default), validated, and
// then shared read-only by the loop, the geometry functions and the renderer.
package model

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

var ErrInvalidConfig = errors.New("invalid config")

// Body describes one celestial body. Radii and speeds are fixed at startup.
type Body struct {
	Name   string
	Radius float64 // visual radius, px
	Color  color.RGBA

	OrbitRadius   float64 // simulation units; 0 for a stationary body
	AngularSpeed  float64 // orbital speed, rad/s
	TiltDeg       float64 // orbit tilt, degrees
	RotationSpeed float64 // self-rotation speed, rad/s
}

// View maps simulation coordinates to screen pixels.
type View struct {
	Scale   float64
	CenterX float64
	CenterY float64
}

// Speed bounds the interactive speed multiplier.
type Speed struct {
	Min  float64
	Max  float64
	Step float64
}

type Config struct {
	Width  int
	Height int
	FPS    int

	View  View
	Speed Speed

	Star      Body
	Primary   Body
	Satellite Body

	// PathSegments is the number of segments of a sampled orbit path; the
	// path has PathSegments+1 points and ends where it starts.
	PathSegments int
	// GlowRings is the number of concentric star glow rings.
	GlowRings int
	// IndicatorLength is the self-rotation indicator length relative to the body radius.
	IndicatorLength float64
	IndicatorWidth  int

	Palette Palette
}

// Default returns the configuration of the star / primary / satellite system.
func Default() Config {
	pal := DefaultPalette()
	return Config{
		Width:  1280,
		Height: 720,
		FPS:    60,
		View: View{
			Scale:   1.5,
			CenterX: 640,
			CenterY: 360,
		},
		Speed: Speed{Min: 0.1, Max: 5.0, Step: 0.1},
		Star: Body{
			Name:   "Sun",
			Radius: 30,
			Color:  pal.Star,
		},
		Primary: Body{
			Name:          "Earth",
			Radius:        12,
			Color:         pal.Primary,
			OrbitRadius:   200,
			AngularSpeed:  0.3,
			RotationSpeed: 2.0,
		},
		Satellite: Body{
			Name:         "Moon",
			Radius:       5,
			Color:        pal.Satellite,
			OrbitRadius:  40,
			AngularSpeed: 1.2,
			TiltDeg:      15,
		},
		PathSegments:    100,
		GlowRings:       3,
		IndicatorLength: 0.8,
		IndicatorWidth:  2,
		Palette:         pal,
	}
}

// Validate reports every invalid field, wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	addf := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Width <= 0 || c.Height <= 0 {
		addf("surface %dx%d must be positive", c.Width, c.Height)
	}
	if c.FPS <= 0 {
		addf("fps %d must be positive", c.FPS)
	}
	if !(c.View.Scale > 0) {
		addf("view scale %v must be positive", c.View.Scale)
	}
	if !(c.Speed.Step > 0) {
		addf("speed step %v must be positive", c.Speed.Step)
	} else if steps := c.Speed.Min / c.Speed.Step; math.Abs(steps-math.Round(steps)) > 1e-9 {
		addf("speed min %v is not a multiple of step %v", c.Speed.Min, c.Speed.Step)
	}
	if !(c.Speed.Min > 0) || c.Speed.Min > c.Speed.Max {
		addf("speed bounds [%v, %v] invalid", c.Speed.Min, c.Speed.Max)
	}
	if c.PathSegments < 1 {
		addf("path segments %d must be at least 1", c.PathSegments)
	}
	if c.GlowRings < 0 {
		addf("glow rings %d must not be negative", c.GlowRings)
	}
	if c.IndicatorLength < 0 || c.IndicatorWidth < 1 {
		addf("rotation indicator %vx%d invalid", c.IndicatorLength, c.IndicatorWidth)
	}
	for _, b := range []*Body{&c.Star, &c.Primary, &c.Satellite} {
		if err := b.validate(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}

func (b *Body) validate() error {
	switch {
	case b.Radius < 0, b.OrbitRadius < 0:
		return fmt.Errorf("%s: radii must not be negative", b.Name)
	case b.AngularSpeed < 0, b.RotationSpeed < 0:
		return fmt.Errorf("%s: angular speeds must not be negative", b.Name)
	case math.IsNaN(b.TiltDeg) || math.IsInf(b.TiltDeg, 0):
		return fmt.Errorf("%s: tilt must be finite", b.Name)
	}
	return nil
}
