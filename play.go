package main

import (
	"fmt"

	driver "github.com/minikomi/rtmididrv"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/minikomi/keynote/internal/config"
	"github.com/minikomi/keynote/internal/keyboard"
	"github.com/minikomi/keynote/internal/midiout"
)

var winTitle string = "🎹"
var winWidth, winHeight int32 = 800, 140

func play(cfg *config.Config) error {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return fmt.Errorf("init sdl: %w", err)
	}
	defer sdl.Quit()

	if err := checkKeymap(cfg.Keymap); err != nil {
		return err
	}

	window, err := sdl.CreateWindow(winTitle, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		winWidth, winHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	defer renderer.Destroy()

	var font *ttf.Font
	if cfg.Font != "" {
		if err := ttf.Init(); err != nil {
			return fmt.Errorf("init ttf: %w", err)
		}
		defer ttf.Quit()
		font, err = ttf.OpenFont(cfg.Font, 12)
		if err != nil {
			return fmt.Errorf("open font: %w", err)
		}
		defer font.Close()
	}

	// midi
	drv, err := driver.New()
	if err != nil {
		return fmt.Errorf("open midi driver: %w", err)
	}
	defer drv.Close()

	outs, err := drv.Outs()
	if err != nil {
		return err
	}
	if cfg.Port >= len(outs) {
		return fmt.Errorf("midi out port %d not found, %d available", cfg.Port, len(outs))
	}
	out := outs[cfg.Port]
	if err := out.Open(); err != nil {
		return fmt.Errorf("open %s: %w", out, err)
	}
	defer out.Close()
	wr := midiout.To(out, midiout.WithChannel(uint8(cfg.Channel)))
	player, err := keyboard.New(cfg, wr)
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"port":   out.String(),
		"octave": player.Octave(),
	}).Info("ready")

	Draw(renderer, font, player)
	running := true
	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch ev := event.(type) {
			case *sdl.KeyboardEvent:
				HandleKeyEvent(ev, player)
				Draw(renderer, font, player)
			case *sdl.QuitEvent:
				log.Info("quit")
				running = false
			}
		}
		sdl.Delay(5)
	}
	if err := player.ReleaseAll(); err != nil {
		log.WithError(err).Warn("release")
	}
	return nil
}
