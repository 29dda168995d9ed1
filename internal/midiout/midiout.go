// Package midiout writes notes to a MIDI output while keeping note on and
// note off messages balanced.
package midiout

import (
	"errors"
	"fmt"
	"io"

	"github.com/gomidi/connect"
	"github.com/gomidi/midi"
	"github.com/gomidi/midi/midimessage/channel"
	"github.com/gomidi/midi/midiwriter"
	log "github.com/sirupsen/logrus"

	"github.com/minikomi/keynote/internal/note"
)

var channels = [16]channel.Channel{
	channel.Channel0, channel.Channel1, channel.Channel2, channel.Channel3,
	channel.Channel4, channel.Channel5, channel.Channel6, channel.Channel7,
	channel.Channel8, channel.Channel9, channel.Channel10, channel.Channel11,
	channel.Channel12, channel.Channel13, channel.Channel14, channel.Channel15,
}

type Option func(*Writer)

// WithChannel sends notes on channel n (0-15).
func WithChannel(n uint8) Option {
	return func(w *Writer) {
		w.chn = n & 0x0f
		w.ch = channels[w.chn]
	}
}

// WithoutConsolidation writes every message, even unbalanced ones.
func WithoutConsolidation() Option {
	return func(w *Writer) {
		w.noConsolidation = true
	}
}

type Writer struct {
	wr              midi.Writer
	ch              channel.Channel
	chn             uint8
	noteState       [16][128]bool
	noConsolidation bool
}

func NewWriter(dest io.Writer, opts ...Option) *Writer {
	w := &Writer{
		wr: midiwriter.New(dest, midiwriter.NoRunningStatus()),
		ch: channel.Channel0,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

type outWriter struct {
	out connect.Out
}

func (w *outWriter) Write(b []byte) (int, error) {
	return len(b), w.out.Send(b)
}

// To returns a Writer sending to an open output port.
func To(out connect.Out, opts ...Option) *Writer {
	return NewWriter(&outWriter{out}, opts...)
}

func (w *Writer) NoteOn(n note.Note, velocity uint8) error {
	return w.Write(w.ch.NoteOn(uint8(n.MIDIValue()), velocity))
}

func (w *Writer) NoteOff(n note.Note) error {
	return w.Write(w.ch.NoteOff(uint8(n.MIDIValue())))
}

// Running reports whether n is sounding on the writer's channel.
func (w *Writer) Running(n note.Note) bool {
	return w.noteState[w.chn][n.MIDIValue()]
}

var (
	ErrAlreadyRunning = errors.New("note already running")
	ErrNotRunning     = errors.New("note is not running")
)

// balance records a note on or off for key, refusing one that would leave
// the note state unbalanced.
func (w *Writer) balance(ch, key uint8, on bool) error {
	running := w.noteState[ch][key]
	switch {
	case on && running:
		return ErrAlreadyRunning
	case !on && !running:
		return ErrNotRunning
	}
	w.noteState[ch][key] = on
	return nil
}

func (w *Writer) Write(msg midi.Message) error {
	if !w.noConsolidation {
		var err error
		switch m := msg.(type) {
		case channel.NoteOn:
			err = w.balance(m.Channel(), m.Key(), m.Velocity() > 0)
		case channel.NoteOff:
			err = w.balance(m.Channel(), m.Key(), false)
		case channel.NoteOffVelocity:
			err = w.balance(m.Channel(), m.Key(), false)
		}
		if err != nil {
			return fmt.Errorf("can't write %s: %w", msg, err)
		}
	}
	return w.write(msg)
}

func (w *Writer) write(msg midi.Message) error {
	log.WithField("msg", msg.String()).Debug("midi write")
	return w.wr.Write(msg)
}

func printPort(w io.Writer, port connect.Port) {
	fmt.Fprintf(w, "[%v] %s\n", port.Number(), port.String())
}

// ListPorts prints the available MIDI in and out ports.
func ListPorts(w io.Writer, ins []connect.In, outs []connect.Out) {
	fmt.Fprintf(w, "MIDI IN Ports\n")
	for _, port := range ins {
		printPort(w, port)
	}
	fmt.Fprintf(w, "\n\nMIDI OUT Ports\n")
	for _, port := range outs {
		printPort(w, port)
	}
	fmt.Fprintf(w, "\n\n")
}
