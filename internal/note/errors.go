package note

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrOutOfRange      = errors.New("midi value out of range")
	ErrInvalidArgument = errors.New("invalid argument")
)

// OutOfRangeError is returned when a pitch and octave give a MIDI value
// outside [MinMIDIValue, MaxMIDIValue].
type OutOfRangeError struct {
	Value int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("midi value %d out of range [%d, %d]", e.Value, MinMIDIValue, MaxMIDIValue)
}

func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }

// InvalidArgumentError is returned for a frequency that has no MIDI value.
type InvalidArgumentError struct {
	Frequency float64
}

func (e *InvalidArgumentError) Error() string {
	return "invalid frequency " + strconv.FormatFloat(e.Frequency, 'g', -1, 64) + " Hz: must be positive and finite"
}

func (e *InvalidArgumentError) Is(target error) bool { return target == ErrInvalidArgument }
