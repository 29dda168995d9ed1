// Package commands holds the keynote subcommands that need neither SDL nor a
// MIDI driver.
package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/minikomi/keynote/internal/note"
)

// NewDescribeCmd returns the describe command. Flag parsing is off so a
// negative octave is read as an argument.
func NewDescribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <pitch> <octave>",
		Short: "Print the MIDI value, frequency and names of a note",
		Example: `  keynote describe C 4
  keynote describe F# 3
  keynote describe B -1`,
		Args:               cobra.ExactArgs(2),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Describe(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

// NewFreqCmd returns the freq command. Flag parsing is off so "-5" reaches
// the conversion and fails there.
func NewFreqCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "freq <hz>",
		Short: "Convert a frequency to a MIDI value",
		Long: `Convert a frequency to a MIDI value.

The MIDI value is truncated toward zero, so a frequency slightly below a
note's pitch maps to the note below. The nearest MIDI value is printed too.`,
		Args:               cobra.ExactArgs(1),
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return Freq(cmd.OutOrStdout(), args[0])
		},
	}
}

func Describe(w io.Writer, pitch, octave string) error {
	p, err := note.ParsePitch(pitch)
	if err != nil {
		return err
	}
	o, err := note.ParseOctave(octave)
	if err != nil {
		return err
	}
	n, err := note.New(p, o)
	if err != nil {
		return err
	}
	PrintNote(w, n)
	return nil
}

// Freq prints the truncated and nearest MIDI values of hz, followed by the
// note of the truncated value when it is in range.
func Freq(w io.Writer, hz string) error {
	f, err := strconv.ParseFloat(hz, 64)
	if err != nil {
		return fmt.Errorf("parse frequency %q: %w", hz, err)
	}
	v, err := note.MIDIValueFromFrequency(f)
	if err != nil {
		return err
	}
	nearest, err := note.NearestMIDIValue(f)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "truncated %d\n", v)
	fmt.Fprintf(w, "nearest   %d\n", nearest)
	if n, err := note.FromMIDIValue(v); err == nil {
		PrintNote(w, n)
	}
	return nil
}

func PrintNote(w io.Writer, n note.Note) {
	fmt.Fprintf(w, "note      %s\n", n.MusicalDescription())
	fmt.Fprintf(w, "english   %s\n", n.EnglishDescription())
	fmt.Fprintf(w, "midi      %d\n", n.MIDIValue())
	fmt.Fprintf(w, "frequency %.3f Hz\n", n.Frequency())
}
