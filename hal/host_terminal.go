package hal

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

// RunTerminal runs the program with a tcell terminal preview instead of a window.
//
// Every presented frame is downsampled into half-block cells. Log lines are
// held back until the terminal is restored and then written to stderr.
func RunTerminal(ctx context.Context, run Runner) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	screen.HideCursor()

	var logs bytes.Buffer
	h := newHost(DefaultWidth, DefaultHeight, &logs)

	tp := &termPresenter{screen: screen, fb: h.fb}
	h.fb.setPresentHook(tp.present)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				h.kbd.forwardTerminalKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}
		}
	}()

	err = run(ctx, h)

	screen.Fini()
	h.logger.setOutput(os.Stderr)
	os.Stderr.Write(logs.Bytes())
	return err
}

func (k *hostKeyboard) forwardTerminalKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		k.emitQuit()
	case tcell.KeyEscape:
		k.emit(KeyEvent{Code: KeyEscape, Press: true})
	case tcell.KeyUp:
		k.emit(KeyEvent{Code: KeyUp, Press: true})
	case tcell.KeyDown:
		k.emit(KeyEvent{Code: KeyDown, Press: true})
	case tcell.KeyLeft:
		k.emit(KeyEvent{Code: KeyLeft, Press: true})
	case tcell.KeyRight:
		k.emit(KeyEvent{Code: KeyRight, Press: true})
	case tcell.KeyEnter:
		k.emit(KeyEvent{Code: KeyEnter, Press: true})
	case tcell.KeyRune:
		r := ev.Rune()
		if r == ' ' {
			k.emit(KeyEvent{Code: KeySpace, Press: true, Rune: r})
			return
		}
		k.emit(KeyEvent{Press: true, Rune: r})
	}
}

type termPresenter struct {
	screen  tcell.Screen
	fb      *hostFramebuffer
	scratch []byte
}

func (p *termPresenter) present() {
	if len(p.scratch) != len(p.fb.buf) {
		p.scratch = make([]byte, len(p.fb.buf))
	}
	p.fb.snapshotRGB565(p.scratch)

	cols, rows := p.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			top := p.sample(cx, 2*cy, cols, 2*rows)
			bottom := p.sample(cx, 2*cy+1, cols, 2*rows)
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			p.screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	p.screen.Show()
}

// sample returns the brightest pixel of the block that maps to sub-cell (cx, sy),
// so one pixel wide orbit lines and text survive the downsampling.
func (p *termPresenter) sample(cx, sy, cols, subRows int) tcell.Color {
	w, h := p.fb.width, p.fb.height
	x0, x1 := cx*w/cols, (cx+1)*w/cols
	y0, y1 := sy*h/subRows, (sy+1)*h/subRows
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	var best uint16
	bestLum := -1
	for y := y0; y < y1 && y < h; y++ {
		row := y * p.fb.stride
		for x := x0; x < x1 && x < w; x++ {
			off := row + x*2
			px := uint16(p.scratch[off]) | uint16(p.scratch[off+1])<<8
			r, g, b := rgb888From565(px)
			if lum := int(r) + int(g) + int(b); lum > bestLum {
				bestLum = lum
				best = px
			}
		}
	}
	r, g, b := rgb888From565(best)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
