//go:build cgo

package hal

import (
	"context"
	"errors"
	"image"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunWindow opens a desktop window that displays the presented framebuffer and
// forwards keyboard input. run owns its own goroutine; closing the window
// delivers KeyQuit and cancels its context. It blocks until run returns.
func RunWindow(title string, run Runner) error {
	h := newHost(DefaultWidth, DefaultHeight, os.Stdout)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	g := &hostGame{h: h, done: make(chan struct{})}
	go func() {
		defer close(g.done)
		g.err = run(ctx, h)
	}()

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(h.fb.width, h.fb.height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)

	cancel()
	<-g.done
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return g.err
}

type hostGame struct {
	h       *hostHAL
	img     *image.RGBA
	fbImg   *ebiten.Image
	scratch []byte

	closing bool
	done    chan struct{}
	err     error
}

func (g *hostGame) Update() error {
	if ebiten.IsWindowBeingClosed() && !g.closing {
		g.closing = true
		g.h.kbd.emitQuit()
	}
	g.h.kbd.poll()

	select {
	case <-g.done:
		return ebiten.Termination
	default:
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	g.img, g.scratch = fb.snapshotRGBA(g.img, g.scratch)
	if g.fbImg == nil {
		g.fbImg = ebiten.NewImage(fb.width, fb.height)
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.width, g.h.fb.height
}
