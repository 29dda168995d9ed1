// Package note derives the MIDI value, equal-tempered frequency and
// descriptions of a musical note from its pitch class and octave.
package note

import (
	"math"
	"strconv"
)

const (
	MinMIDIValue = 0
	MaxMIDIValue = 127

	// ConcertPitch is the frequency of ConcertPitchMIDIValue in Hz.
	ConcertPitch          = 440.0
	ConcertPitchMIDIValue = 69
)

// Note is an immutable note. The zero value is not a valid Note; use New.
type Note struct {
	pitch   PitchClass
	octave  Octave
	midi    int
	freq    float64
	english string
	musical string
}

// New derives a Note from p and o. It returns an *OutOfRangeError when the
// resulting MIDI value falls outside [MinMIDIValue, MaxMIDIValue].
func New(p PitchClass, o Octave) (Note, error) {
	v := MIDIValue(p, o)
	if v < MinMIDIValue || v > MaxMIDIValue {
		return Note{}, &OutOfRangeError{Value: v}
	}
	return Note{
		pitch:   p,
		octave:  o,
		midi:    v,
		freq:    Frequency(v),
		english: EnglishDescription(p, o),
		musical: MusicalDescription(p, o),
	}, nil
}

// FromMIDIValue builds the Note for v using the standard Pitch enumeration.
func FromMIDIValue(v int) (Note, error) {
	if v < MinMIDIValue || v > MaxMIDIValue {
		return Note{}, &OutOfRangeError{Value: v}
	}
	return New(Pitches[v%12], OctaveNumber(v/12))
}

func (n Note) Pitch() PitchClass          { return n.pitch }
func (n Note) Octave() Octave             { return n.octave }
func (n Note) MIDIValue() int             { return n.midi }
func (n Note) Frequency() float64         { return n.freq }
func (n Note) EnglishDescription() string { return n.english }
func (n Note) MusicalDescription() string { return n.musical }
func (n Note) String() string             { return n.musical }

// MIDIValue returns o*12 + p's semitone offset without checking the range.
func MIDIValue(p PitchClass, o Octave) int {
	return o.Number()*12 + p.SemitoneOffset()
}

// Frequency returns the equal-tempered frequency of midi in Hz. It is defined
// for any integer, including values outside the MIDI range.
func Frequency(midi int) float64 {
	return ConcertPitch * math.Pow(2, float64(midi-ConcertPitchMIDIValue)/12.0)
}

// MIDIValueFromFrequency returns 12*log2(hz/440)+69 truncated toward zero,
// so a frequency just under a note's pitch maps to the note below.
func MIDIValueFromFrequency(hz float64) (int, error) {
	x, err := semitones(hz)
	if err != nil {
		return 0, err
	}
	return int(x), nil
}

// NearestMIDIValue is MIDIValueFromFrequency rounded to the nearest note.
func NearestMIDIValue(hz float64) (int, error) {
	x, err := semitones(hz)
	if err != nil {
		return 0, err
	}
	return int(math.Round(x)), nil
}

func semitones(hz float64) (float64, error) {
	if !(hz > 0) || math.IsInf(hz, 1) {
		return 0, &InvalidArgumentError{Frequency: hz}
	}
	return 12*math.Log2(hz/ConcertPitch) + ConcertPitchMIDIValue, nil
}

func EnglishDescription(p PitchClass, o Octave) string {
	return p.EnglishName() + " " + strconv.Itoa(o.Number())
}

func MusicalDescription(p PitchClass, o Octave) string {
	return p.MusicalName() + strconv.Itoa(o.Number())
}
