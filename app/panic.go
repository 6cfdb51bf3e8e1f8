package app

import (
	"fmt"
	"image/color"
	"runtime/debug"
	"strings"
	"unicode/utf8"

	"orrery/hal"
	"orrery/orrery/raster"
)

// recoverFrame turns a panic in the frame loop into a logged stack, a
// panic screen and an error. It must be deferred directly.
func recoverFrame(h hal.HAL, face *raster.Face, errp *error) {
	r := recover()
	if r == nil {
		return
	}
	stack := debug.Stack()

	if l := h.Logger(); l != nil {
		l.WriteLineString(fmt.Sprintf("orrery panic: %v", r))
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			l.WriteLineString(line)
		}
	}

	if disp := h.Display(); disp != nil {
		if fb := disp.Framebuffer(); fb != nil {
			drawPanicScreen(fb, face, r, stack)
		}
	}

	*errp = fmt.Errorf("panic in frame loop: %v", r)
}

func drawPanicScreen(fb hal.Framebuffer, face *raster.Face, value any, stack []byte) {
	if fb.Format() != hal.PixelFormatRGB565 {
		return
	}
	fb.ClearRGB(255, 255, 255)
	defer fb.Present()

	if face == nil {
		return
	}
	charW, _ := face.Measure("0")
	lineH := face.LineHeight()
	if charW <= 0 || lineH <= 0 {
		return
	}

	t := &raster.RGB565Target{Buf: fb.Buffer(), Stride: fb.StrideBytes(), W: fb.Width(), H: fb.Height()}
	lines := []string{
		"Orrery Panic:",
		fmt.Sprintf("panic: %v", value),
	}
	if len(stack) > 0 {
		lines = append(lines, "stack:")
		for _, line := range strings.Split(string(stack), "\n") {
			if line == "" {
				continue
			}
			lines = append(lines, strings.ReplaceAll(line, "\t", "  "))
		}
	} else {
		lines = append(lines, "stack: unavailable")
	}

	fg := color.RGBA{A: 255}
	cols := t.W / charW
	if cols <= 0 {
		cols = 1
	}

	y := 0
	for _, line := range lines {
		for len(line) > 0 {
			if y+lineH > t.H {
				return
			}
			chunk, rest := takeRunes(line, cols)
			face.Draw(t, 0, y, chunk, fg)
			y += lineH
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	var i, count int
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		if size <= 0 {
			break
		}
		i += size
		count++
	}
	if i >= len(s) {
		return s, ""
	}
	return s[:i], s[i:]
}
