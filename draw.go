package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/minikomi/keynote/internal/keyboard"
	"github.com/minikomi/keynote/internal/note"
)

var red sdl.Color = sdl.Color{R: 225, G: 30, B: 30, A: 225}
var gray sdl.Color = sdl.Color{R: 180, G: 180, B: 180, A: 225}
var dark sdl.Color = sdl.Color{R: 50, G: 50, B: 50, A: 255}

const octaveWidth = 70

// x offset of the pressed marker within an octave
var whiteOffsets = map[note.Pitch]int32{
	note.C: 2, note.D: 12, note.E: 22, note.F: 32, note.G: 42, note.A: 52, note.B: 62,
}

var blackOffsets = map[note.Pitch]int32{
	note.CSharp: 8, note.DSharp: 18, note.FSharp: 38, note.GSharp: 48, note.ASharp: 58,
}

func getKeyboardColor(o note.OctaveNumber) (uint8, uint8, uint8) {
	if o%2 == 0 {
		return 245, 245, 240
	}
	return 230, 230, 220
}

func octaveLeft(o note.OctaveNumber) int32 {
	return 10 + octaveWidth*int32(o-note.MinOctave)
}

func drawText(renderer *sdl.Renderer, font *ttf.Font, text string, x, y int32, color sdl.Color) {
	if font == nil {
		return
	}
	solid, err := font.RenderUTF8Solid(text, color)
	if err != nil {
		log.WithError(err).Debug("render text")
		return
	}
	defer solid.Free()
	texture, err := renderer.CreateTextureFromSurface(solid)
	if err != nil {
		log.WithError(err).Debug("create texture")
		return
	}
	defer texture.Destroy()
	rect := sdl.Rect{X: x, Y: y, W: solid.W, H: solid.H}
	renderer.Copy(texture, nil, &rect)
}

func Draw(renderer *sdl.Renderer, font *ttf.Font, player *keyboard.Player) {
	renderer.SetDrawColor(225, 225, 225, 255)
	renderer.Clear()

	// draw keyboard
	for o := note.MinOctave; o <= note.MaxOctave; o++ {
		left := octaveLeft(o)

		// text
		color := gray
		if o == player.Octave() {
			color = red
		}
		drawText(renderer, font, strconv.Itoa(o.Number()), left, 0, color)

		// bg
		r, g, b := getKeyboardColor(o)
		renderer.SetDrawColor(r, g, b, 255)
		rect := sdl.Rect{X: left, Y: 12, W: octaveWidth, H: 40}
		renderer.FillRect(&rect)

		// keys
		renderer.SetDrawColor(dark.R, dark.G, dark.B, dark.A)
		for j := int32(0); j < 7; j++ {
			rect = sdl.Rect{X: left + j*10, Y: 12, W: 10, H: 40}
			renderer.DrawRect(&rect)
		}

		// black keys
		for _, j := range []int32{0, 1, 3, 4, 5} {
			rect = sdl.Rect{X: left + 5 + j*10 + 2, Y: 12, W: 6, H: 20}
			renderer.FillRect(&rect)
		}

		// active marker, spans the high keys of the next octave
		if o == player.Octave() {
			renderer.SetDrawColor(255, 30, 30, 255)
			w := int32(octaveWidth + 20)
			if o == note.MaxOctave {
				w = octaveWidth
			}
			rect = sdl.Rect{X: left, Y: 52, W: w, H: 2}
			renderer.FillRect(&rect)
		}
	}

	// draw pressed keys
	renderer.SetDrawColor(255, 30, 30, 255)
	for _, n := range player.Active() {
		p := note.Pitches[n.Pitch().SemitoneOffset()]
		left := octaveLeft(note.OctaveNumber(n.Octave().Number()))

		var rect sdl.Rect
		if off, isBlack := blackOffsets[p]; isBlack {
			rect = sdl.Rect{X: left + off, Y: 12, W: 4, H: 8}
		} else {
			rect = sdl.Rect{X: left + whiteOffsets[p], Y: 40, W: 6, H: 8}
		}
		renderer.FillRect(&rect)
	}

	// last note
	if n, ok := player.Last(); ok {
		drawText(renderer, font, n.MusicalDescription(), 10, 70, red)
		drawText(renderer, font, n.EnglishDescription(), 80, 70, dark)
		drawText(renderer, font, fmt.Sprintf("MIDI %d", n.MIDIValue()), 200, 70, dark)
		drawText(renderer, font, fmt.Sprintf("%.2f Hz", n.Frequency()), 280, 70, dark)
	}

	renderer.Present()
}
