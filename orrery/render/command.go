package render

import (
	"image"
	"image/color"
)

type Kind uint8

const (
	KindClear Kind = iota
	KindFillCircle
	KindStrokeCircle
	KindPolyline
	KindLine
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindClear:
		return "clear"
	case KindFillCircle:
		return "fill-circle"
	case KindStrokeCircle:
		return "stroke-circle"
	case KindPolyline:
		return "polyline"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

type TextSize uint8

const (
	TextSmall TextSize = iota
	TextLarge
)

// Command is one entry of a frame's display list.
//
// Field use depends on Kind: circles use X, Y, R (and Width for strokes),
// lines use X, Y, X1, Y1 and Width, text uses X, Y, Size and Text.
// Polyline points live in the owning List; see List.Points.
type Command struct {
	Kind  Kind
	Color color.RGBA

	X, Y   int
	X1, Y1 int
	R      int
	Width  int

	Closed     bool
	start, end int

	Size TextSize
	Text string
}

// List is a reusable display list. Everything it returns is invalid after
// the next Reset.
type List struct {
	cmds []Command
	pts  []image.Point
}

func (l *List) Reset() {
	l.cmds = l.cmds[:0]
	l.pts = l.pts[:0]
}

func (l *List) Len() int { return len(l.cmds) }

func (l *List) Commands() []Command { return l.cmds }

// Points returns the vertices of a polyline command.
func (l *List) Points(c Command) []image.Point {
	if c.Kind != KindPolyline {
		return nil
	}
	return l.pts[c.start:c.end:c.end]
}

func (l *List) Clear(c color.RGBA) {
	l.cmds = append(l.cmds, Command{Kind: KindClear, Color: c})
}

func (l *List) FillCircle(x, y, r int, c color.RGBA) {
	l.cmds = append(l.cmds, Command{Kind: KindFillCircle, Color: c, X: x, Y: y, R: r})
}

func (l *List) StrokeCircle(x, y, r, width int, c color.RGBA) {
	l.cmds = append(l.cmds, Command{Kind: KindStrokeCircle, Color: c, X: x, Y: y, R: r, Width: width})
}

func (l *List) Line(x0, y0, x1, y1, width int, c color.RGBA) {
	l.cmds = append(l.cmds, Command{Kind: KindLine, Color: c, X: x0, Y: y0, X1: x1, Y1: y1, Width: width})
}

// Polyline copies pts into the list.
func (l *List) Polyline(pts []image.Point, closed bool, width int, c color.RGBA) {
	start := len(l.pts)
	l.pts = append(l.pts, pts...)
	l.cmds = append(l.cmds, Command{
		Kind:   KindPolyline,
		Color:  c,
		Width:  width,
		Closed: closed,
		start:  start,
		end:    len(l.pts),
	})
}

func (l *List) Text(x, y int, size TextSize, s string, c color.RGBA) {
	l.cmds = append(l.cmds, Command{Kind: KindText, Color: c, X: x, Y: y, Size: size, Text: s})
}

// Replay issues every command on s in order. It does not present.
func (l *List) Replay(s Surface) {
	for _, c := range l.cmds {
		switch c.Kind {
		case KindClear:
			s.Clear(c.Color)
		case KindFillCircle:
			s.FillCircle(c.X, c.Y, c.R, c.Color)
		case KindStrokeCircle:
			s.StrokeCircle(c.X, c.Y, c.R, c.Width, c.Color)
		case KindPolyline:
			s.Polyline(l.Points(c), c.Closed, c.Width, c.Color)
		case KindLine:
			s.Line(c.X, c.Y, c.X1, c.Y1, c.Width, c.Color)
		case KindText:
			s.Text(c.X, c.Y, c.Size, c.Text, c.Color)
		}
	}
}
