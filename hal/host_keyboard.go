//go:build cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var windowKeys = [...]struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
}

// poll forwards this tick's window input. It must run on the ebiten goroutine.
func (k *hostKeyboard) poll() {
	// Space arrives through the text stream; report it as a key so it is
	// delivered exactly once.
	for _, r := range ebiten.AppendInputChars(nil) {
		if r == ' ' {
			k.emit(KeyEvent{Code: KeySpace, Press: true, Rune: r})
			continue
		}
		k.emit(KeyEvent{Press: true, Rune: r})
	}

	for _, m := range windowKeys {
		if inpututil.IsKeyJustPressed(m.key) {
			k.emit(KeyEvent{Code: m.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(m.key) {
			k.emit(KeyEvent{Code: m.code, Press: false})
		}
	}
}
