// Package keyboard tracks which keys are held, which octave they play in,
// and forwards the resulting notes to a MIDI sender.
package keyboard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/minikomi/keynote/internal/config"
	"github.com/minikomi/keynote/internal/note"
)

var ErrUnbound = errors.New("key not bound")

// Sender receives the notes a Player produces. *midiout.Writer is one.
type Sender interface {
	NoteOn(n note.Note, velocity uint8) error
	NoteOff(n note.Note) error
}

type Binding struct {
	Pitch note.Pitch
	Shift note.OctaveNumber
}

// Player is not safe for concurrent use.
type Player struct {
	out      Sender
	octave   note.OctaveNumber
	velocity uint8
	keymap   map[string]Binding
	active   map[string]note.Note
	last     note.Note
}

// NormalizeKey folds key names so "A" and "a" bind the same key.
func NormalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func New(cfg *config.Config, out Sender) (*Player, error) {
	p := &Player{
		out:      out,
		octave:   note.OctaveNumber(cfg.Octave),
		velocity: uint8(cfg.Velocity),
		keymap:   make(map[string]Binding, len(cfg.Keymap)),
		active:   map[string]note.Note{},
	}
	for _, b := range cfg.Keymap {
		pitch, err := note.ParsePitch(b.Pitch)
		if err != nil {
			return nil, fmt.Errorf("keymap: %w", err)
		}
		p.keymap[NormalizeKey(b.Key)] = Binding{Pitch: pitch, Shift: note.OctaveNumber(b.Shift)}
	}
	return p, nil
}

func (p *Player) Octave() note.OctaveNumber { return p.octave }

func (p *Player) Bound(key string) bool {
	_, ok := p.keymap[NormalizeKey(key)]
	return ok
}

func (p *Player) OctaveUp() note.OctaveNumber {
	if p.octave < note.MaxOctave {
		p.octave++
	}
	return p.octave
}

func (p *Player) OctaveDown() note.OctaveNumber {
	if p.octave > note.MinOctave {
		p.octave--
	}
	return p.octave
}

// Resolve returns the note key plays in the current octave.
func (p *Player) Resolve(key string) (note.Note, error) {
	b, ok := p.keymap[NormalizeKey(key)]
	if !ok {
		return note.Note{}, fmt.Errorf("%q: %w", key, ErrUnbound)
	}
	return note.New(b.Pitch, p.octave+b.Shift)
}

// Press sends a note on for key. Nothing is sent when the key is unbound
// or its note is out of range.
func (p *Player) Press(key string) (note.Note, error) {
	n, err := p.Resolve(key)
	if err != nil {
		return note.Note{}, err
	}
	if err := p.out.NoteOn(n, p.velocity); err != nil {
		return note.Note{}, err
	}
	p.active[NormalizeKey(key)] = n
	p.last = n
	return n, nil
}

// Release sends a note off for the note key pressed, whatever the octave
// is now. ok is false when key was not held.
func (p *Player) Release(key string) (n note.Note, ok bool, err error) {
	k := NormalizeKey(key)
	n, ok = p.active[k]
	if !ok {
		return note.Note{}, false, nil
	}
	delete(p.active, k)
	return n, true, p.out.NoteOff(n)
}

// ReleaseAll sends a note off for every held key.
func (p *Player) ReleaseAll() error {
	var errs []error
	for k, n := range p.active {
		delete(p.active, k)
		if err := p.out.NoteOff(n); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (p *Player) Active() []note.Note {
	notes := make([]note.Note, 0, len(p.active))
	for _, n := range p.active {
		notes = append(notes, n)
	}
	return notes
}

// Last returns the most recently pressed note.
func (p *Player) Last() (note.Note, bool) {
	return p.last, p.last.Pitch() != nil
}
