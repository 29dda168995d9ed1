package note

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedPitch struct {
	offset           int
	english, musical string
}

func (p fixedPitch) SemitoneOffset() int { return p.offset }
func (p fixedPitch) EnglishName() string { return p.english }
func (p fixedPitch) MusicalName() string { return p.musical }

func TestNewDescriptions(t *testing.T) {
	n, err := New(fixedPitch{0, "C", "C"}, OctaveNumber(4))
	require.NoError(t, err)
	assert.Equal(t, "C 4", n.EnglishDescription())
	assert.Equal(t, "C4", n.MusicalDescription())
	assert.Equal(t, 48, n.MIDIValue())
}

func TestNewStandardPitches(t *testing.T) {
	for _, tc := range []struct {
		pitch   Pitch
		octave  OctaveNumber
		midi    int
		english string
		musical string
	}{
		{C, 0, 0, "C 0", "C0"},
		{CSharp, 5, 61, "C sharp 5", "C♯5"},
		{FSharp, 3, 42, "F sharp 3", "F♯3"},
		{A, 5, 69, "A 5", "A5"},
		{G, 10, 127, "G 10", "G10"},
	} {
		n, err := New(tc.pitch, tc.octave)
		require.NoError(t, err)
		assert.Equal(t, tc.midi, n.MIDIValue())
		assert.Equal(t, tc.english, n.EnglishDescription())
		assert.Equal(t, tc.musical, n.MusicalDescription())
		assert.Equal(t, tc.musical, n.String())
		assert.Equal(t, tc.pitch, n.Pitch())
		assert.Equal(t, tc.octave, n.Octave())
	}
}

func TestNewMIDIValueMatchesSum(t *testing.T) {
	for o := OctaveNumber(-2); o <= 12; o++ {
		for _, p := range Pitches {
			sum := o.Number()*12 + p.SemitoneOffset()
			n, err := New(p, o)
			if sum < MinMIDIValue || sum > MaxMIDIValue {
				assert.Error(t, err, "%s%d", p, o)
				continue
			}
			require.NoError(t, err)
			assert.Equal(t, sum, n.MIDIValue())
			assert.Equal(t, Frequency(sum), n.Frequency())
		}
	}
}

func TestNewOutOfRange(t *testing.T) {
	for _, tc := range []struct {
		pitch  Pitch
		octave OctaveNumber
		value  int
	}{
		{B, -1, -1},
		{GSharp, 10, 128},
		{C, -5, -60},
	} {
		n, err := New(tc.pitch, tc.octave)
		require.Error(t, err)
		var oor *OutOfRangeError
		require.True(t, errors.As(err, &oor))
		assert.Equal(t, tc.value, oor.Value)
		assert.True(t, errors.Is(err, ErrOutOfRange))
		assert.Equal(t, Note{}, n)
	}
}

func TestFromMIDIValue(t *testing.T) {
	n, err := FromMIDIValue(61)
	require.NoError(t, err)
	assert.Equal(t, CSharp, n.Pitch())
	assert.Equal(t, OctaveNumber(5), n.Octave())
	assert.Equal(t, "C♯5", n.MusicalDescription())

	for v := MinMIDIValue; v <= MaxMIDIValue; v++ {
		n, err := FromMIDIValue(v)
		require.NoError(t, err)
		assert.Equal(t, v, n.MIDIValue())
	}

	_, err = FromMIDIValue(128)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = FromMIDIValue(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestFrequency(t *testing.T) {
	assert.Equal(t, 440.0, Frequency(69))
	assert.Equal(t, 880.0, Frequency(81))
	assert.Equal(t, 220.0, Frequency(57))
	assert.InDelta(t, 8.1758, Frequency(0), 1e-3)
	assert.InDelta(t, 12543.85, Frequency(127), 1e-2)

	// defined outside the MIDI range too
	assert.InDelta(t, Frequency(0)/2, Frequency(-12), 1e-9)
	assert.Greater(t, Frequency(-1000), 0.0)
}

func TestFrequencyStrictlyIncreasing(t *testing.T) {
	prev, err := FromMIDIValue(MinMIDIValue)
	require.NoError(t, err)
	for v := MinMIDIValue + 1; v <= MaxMIDIValue; v++ {
		n, err := FromMIDIValue(v)
		require.NoError(t, err)
		assert.Greater(t, n.Frequency(), prev.Frequency(), "midi %d", v)
		prev = n
	}
}

func TestMIDIValueFromFrequency(t *testing.T) {
	for _, tc := range []struct {
		hz   float64
		want int
	}{
		{440, 69},
		{880, 81},
		{220, 57},
		{Frequency(60) - 0.5, 59},
		{Frequency(60) + 0.5, 60},
		// truncation toward zero, not floor
		{1, -36},
	} {
		got, err := MIDIValueFromFrequency(tc.hz)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%v Hz", tc.hz)
	}
}

func TestNearestMIDIValue(t *testing.T) {
	for v := MinMIDIValue; v <= MaxMIDIValue; v++ {
		got, err := NearestMIDIValue(Frequency(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	got, err := NearestMIDIValue(Frequency(60) - 0.5)
	require.NoError(t, err)
	assert.Equal(t, 60, got)
}

func TestFrequencyInvalidArgument(t *testing.T) {
	for _, hz := range []float64{0, -5, math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := MIDIValueFromFrequency(hz)
		require.Error(t, err)
		var iae *InvalidArgumentError
		assert.True(t, errors.As(err, &iae))
		assert.ErrorIs(t, err, ErrInvalidArgument)

		_, err = NearestMIDIValue(hz)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
}
