package note

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// PitchClass is a note name independent of octave.
type PitchClass interface {
	// SemitoneOffset is the position within the octave, 0 to 11.
	SemitoneOffset() int
	EnglishName() string
	MusicalName() string
}

// Pitch is one of the twelve pitch classes of the chromatic scale.
type Pitch uint8

const (
	C = Pitch(iota)
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// Pitches lists the twelve pitch classes in ascending order.
var Pitches = [12]Pitch{C, CSharp, D, DSharp, E, F, FSharp, G, GSharp, A, ASharp, B}

var englishNames = [12]string{
	"C", "C sharp", "D", "D sharp", "E", "F",
	"F sharp", "G", "G sharp", "A", "A sharp", "B",
}

var musicalNames = [12]string{
	"C", "C♯", "D", "D♯", "E", "F",
	"F♯", "G", "G♯", "A", "A♯", "B",
}

func (p Pitch) SemitoneOffset() int { return int(p) % 12 }
func (p Pitch) EnglishName() string { return englishNames[p%12] }
func (p Pitch) MusicalName() string { return musicalNames[p%12] }
func (p Pitch) String() string      { return p.MusicalName() }

// IsSharp reports whether p sits on a black key.
func (p Pitch) IsSharp() bool {
	switch p % 12 {
	case CSharp, DSharp, FSharp, GSharp, ASharp:
		return true
	}
	return false
}

var naturals = map[byte]Pitch{'c': C, 'd': D, 'e': E, 'f': F, 'g': G, 'a': A, 'b': B}

// ParsePitch reads a pitch spelling such as "C", "f#", "G♯", "Bb" or "Cs".
// Flats resolve to their enharmonic sharp. Spellings that cross into the
// neighbouring octave ("Cb", "B#") are rejected.
func ParsePitch(s string) (Pitch, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("parse pitch: empty")
	}
	p, ok := naturals[strings.ToLower(s[:1])[0]]
	if !ok {
		return 0, fmt.Errorf("parse pitch %q: invalid letter", s)
	}
	rest := s[1:]
	if rest == "" {
		return p, nil
	}
	acc, size := utf8.DecodeRuneInString(rest)
	if size != len(rest) {
		return 0, fmt.Errorf("parse pitch %q: trailing characters", s)
	}
	switch acc {
	case '#', '♯', 's', 'S':
		if p == B {
			return 0, fmt.Errorf("parse pitch %q: leaves the octave", s)
		}
		return p + 1, nil
	case 'b', '♭':
		if p == C {
			return 0, fmt.Errorf("parse pitch %q: leaves the octave", s)
		}
		return p - 1, nil
	}
	return 0, fmt.Errorf("parse pitch %q: invalid accidental %q", s, acc)
}
