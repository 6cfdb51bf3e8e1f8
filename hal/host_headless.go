package hal

import (
	"context"
	"fmt"
	"image/png"
	"os"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Enabled bool
	Width   int
	Height  int

	// Snapshot, if set, receives the last presented frame as PNG when run returns.
	Snapshot string
}

// RunHeadless runs the program on the calling goroutine without opening a window.
func RunHeadless(ctx context.Context, cfg HeadlessConfig, run Runner) error {
	if cfg.Width <= 0 {
		cfg.Width = DefaultWidth
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultHeight
	}

	h := newHost(cfg.Width, cfg.Height, os.Stdout)
	err := run(ctx, h)

	if cfg.Snapshot != "" {
		if serr := writeSnapshot(h.fb, cfg.Snapshot); serr != nil && err == nil {
			err = serr
		}
	}
	return err
}

func writeSnapshot(fb *hostFramebuffer, path string) error {
	img, _ := fb.snapshotRGBA(nil, nil)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return nil
}
