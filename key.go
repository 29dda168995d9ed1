package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/minikomi/keynote/internal/config"
	"github.com/minikomi/keynote/internal/keyboard"
)

// checkKeymap rejects key names SDL does not know.
func checkKeymap(bindings []config.Binding) error {
	for _, b := range bindings {
		if sdl.GetKeyFromName(b.Key) == sdl.K_UNKNOWN {
			return fmt.Errorf("keymap: unknown key %q", b.Key)
		}
	}
	return nil
}

var keyToCommand = map[sdl.Keycode]string{
	sdl.K_COMMA:  "octave down",
	sdl.K_PERIOD: "octave up",
}

func logKeyEvent(ev *sdl.KeyboardEvent) {
	log.WithFields(log.Fields{
		"ts":     ev.Timestamp,
		"type":   ev.Type,
		"sym":    sdl.GetKeyName(ev.Keysym.Sym),
		"mod":    ev.Keysym.Mod,
		"state":  ev.State,
		"repeat": ev.Repeat,
	}).Debug("keyboard")
}

func HandleKeyEvent(ev *sdl.KeyboardEvent, player *keyboard.Player) {
	logKeyEvent(ev)
	kc := ev.Keysym.Sym
	key := sdl.GetKeyName(kc)

	if command, ok := keyToCommand[kc]; ok {
		if ev.State == sdl.PRESSED && ev.Repeat == 0 {
			if command == "octave down" {
				player.OctaveDown()
			} else {
				player.OctaveUp()
			}
			log.WithField("octave", player.Octave()).Info(command)
		}
		return
	}
	if !player.Bound(key) {
		return
	}

	// first keydown = ev.State = 1, ev.Repeat = 0
	switch {
	case ev.State == sdl.PRESSED && ev.Repeat == 0:
		n, err := player.Press(key)
		if err != nil {
			log.WithError(err).WithField("key", key).Warn("no note for key")
			return
		}
		log.WithFields(log.Fields{
			"note": n.MusicalDescription(),
			"midi": n.MIDIValue(),
			"hz":   fmt.Sprintf("%.2f", n.Frequency()),
		}).Info("pressed")
	case ev.State == sdl.RELEASED:
		n, ok, err := player.Release(key)
		if err != nil {
			log.WithError(err).Warn("note off")
		}
		if ok {
			log.WithField("note", n.MusicalDescription()).Info("released")
		}
	}
}
