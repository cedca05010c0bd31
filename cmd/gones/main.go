// Package main implements the gones-core emulator executable.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"gones-core/internal/bus"
	"gones-core/internal/cartridge"
	"gones-core/internal/config"
	"gones-core/internal/cpu"
	"gones-core/internal/emulator"
	"gones-core/internal/video"
)

func main() {
	var (
		romFile    = flag.String("rom", "", "path to an iNES (.nes) ROM file")
		configFile = flag.String("config", "./config/gones.json", "path to configuration file")
		nogui      = flag.Bool("nogui", false, "run without a window, printing frame counts to stdout")
	)
	flag.Parse()

	if *romFile == "" {
		fmt.Fprintln(os.Stderr, "usage: gones -rom <file.nes> [-config path] [-nogui]")
		os.Exit(2)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("gones: load config: %v", err)
	}

	cart, err := cartridge.LoadFile(*romFile)
	if err != nil {
		log.Fatalf("gones: load ROM: %v", err)
	}

	b := bus.New(cart)
	c := cpu.New(b, b.PPU())
	frames := video.New()

	if *nogui {
		runHeadless(c)
		return
	}

	em := emulator.New(c, nil)

	game := video.NewGame(frames, "gones")
	ebiten.SetWindowTitle("gones")
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.Window.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	em.Start()
	defer em.Stop()

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("gones: run game: %v", err)
	}
}

// runHeadless drives the CPU for a fixed number of frames as fast as
// possible, with no 60Hz pacing and no window, for scripted smoke tests.
func runHeadless(c *cpu.CPU) {
	const frames = 120
	c.Reset()
	for i := 0; i < frames; i++ {
		c.RunFrame()
	}
	fmt.Printf("gones: ran %d frames headless\n", frames)
}
