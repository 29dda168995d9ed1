package note

import (
	"fmt"
	"strconv"
	"strings"
)

// Octave groups twelve consecutive pitch classes.
type Octave interface {
	Number() int
}

// OctaveNumber is an Octave identified by its integer number.
type OctaveNumber int

// MinOctave and MaxOctave bound the octaves holding at least one valid Note.
const (
	MinOctave = OctaveNumber(0)
	MaxOctave = OctaveNumber(10)
)

func (o OctaveNumber) Number() int { return int(o) }

func (o OctaveNumber) String() string { return strconv.Itoa(int(o)) }

// ParseOctave reads a decimal octave number.
func ParseOctave(s string) (OctaveNumber, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parse octave %q: %w", s, err)
	}
	return OctaveNumber(n), nil
}
