package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"orrery/app"
	"orrery/hal"
	"orrery/internal/buildinfo"
)

func main() {
	var cfg hal.HeadlessConfig
	var term, version bool
	var frames uint64
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.StringVar(&cfg.Snapshot, "snapshot", "", "Write the last frame as PNG (headless only).")
	flag.BoolVar(&term, "term", false, "Preview in the terminal instead of a window.")
	flag.Uint64Var(&frames, "frames", 0, "Stop after N frames (0 = run until quit).")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}
	if cfg.Snapshot != "" && !cfg.Enabled {
		fmt.Fprintln(os.Stderr, "-snapshot requires -headless")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	run := app.New(app.Config{Frames: frames})

	var err error
	switch {
	case cfg.Enabled:
		err = hal.RunHeadless(ctx, cfg, run)
	case term:
		err = hal.RunTerminal(ctx, run)
	default:
		err = hal.RunWindow(buildinfo.Title(), func(wctx context.Context, h hal.HAL) error {
			wctx, cancel := context.WithCancel(wctx)
			defer cancel()
			defer context.AfterFunc(ctx, cancel)()
			return run(wctx, h)
		})
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
