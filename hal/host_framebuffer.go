package hal

import (
	"image"
	"sync"
)

type hostFramebuffer struct {
	width  int
	height int
	stride int
	buf    []byte

	mu        sync.Mutex
	front     []byte
	presented uint64
	onPresent func()
}

func newHostFramebuffer(width, height int) *hostFramebuffer {
	stride := width * 2
	return &hostFramebuffer{
		width:  width,
		height: height,
		stride: stride,
		buf:    make([]byte, stride*height),
		front:  make([]byte, stride*height),
	}
}

func (f *hostFramebuffer) Width() int          { return f.width }
func (f *hostFramebuffer) Height() int         { return f.height }
func (f *hostFramebuffer) Format() PixelFormat { return PixelFormatRGB565 }
func (f *hostFramebuffer) StrideBytes() int    { return f.stride }
func (f *hostFramebuffer) Buffer() []byte      { return f.buf }

func (f *hostFramebuffer) ClearRGB(r, g, b uint8) {
	pixel := rgb565(r, g, b)
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	for i := 0; i+1 < len(f.buf); i += 2 {
		f.buf[i] = lo
		f.buf[i+1] = hi
	}
}

func (f *hostFramebuffer) Present() error {
	f.mu.Lock()
	copy(f.front, f.buf)
	f.presented++
	hook := f.onPresent
	f.mu.Unlock()

	if hook != nil {
		hook()
	}
	return nil
}

// setPresentHook installs fn to run after every Present, on the presenting goroutine.
func (f *hostFramebuffer) setPresentHook(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.onPresent = fn
}

// snapshotRGB565 copies the last presented frame and reports how many frames were presented.
func (f *hostFramebuffer) snapshotRGB565(dst []byte) uint64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(dst, f.front)
	return f.presented
}

// snapshotRGBA converts the last presented frame into dst, reallocating it on size change.
func (f *hostFramebuffer) snapshotRGBA(dst *image.RGBA, scratch []byte) (*image.RGBA, []byte) {
	if dst == nil || dst.Bounds().Dx() != f.width || dst.Bounds().Dy() != f.height {
		dst = image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	}
	if len(scratch) != len(f.front) {
		scratch = make([]byte, len(f.front))
	}
	f.snapshotRGB565(scratch)

	pix := dst.Pix
	for i := 0; i+1 < len(scratch) && i/2*4+3 < len(pix); i += 2 {
		r, g, b := rgb888From565(uint16(scratch[i]) | uint16(scratch[i+1])<<8)
		j := (i / 2) * 4
		pix[j+0] = r
		pix[j+1] = g
		pix[j+2] = b
		pix[j+3] = 0xFF
	}
	return dst, scratch
}
