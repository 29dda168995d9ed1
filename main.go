// Command keynote turns the computer keyboard into a MIDI keyboard and
// describes the notes it plays.
//
// Usage:
//
//	keynote [play]               open the keyboard window
//	keynote describe C# 4        print a note's MIDI value, frequency and names
//	keynote freq 440             convert a frequency to a MIDI value
//	keynote list                 list MIDI ports
package main

import (
	"fmt"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/minikomi/keynote/internal/commands"
	"github.com/minikomi/keynote/internal/config"
)

var (
	cfgPath string
	verbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "keynote",
	Short: "Play and describe notes from the computer keyboard",
	Long: `keynote - a computer keyboard MIDI controller.

The home row plays the white keys of the current octave, the row above plays
the sharps. ',' and '.' move the octave down and up. Every pressed key is sent
as a note on message to the configured MIDI out port.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
		var err error
		cfg, err = config.Load(cfgPath)
		return err
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return play(cfg)
	},
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the keyboard window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return play(cfg)
	},
}

func init() {
	// SDL must stay on the main thread
	runtime.LockOSThread()

	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "config file (YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(playCmd, commands.NewDescribeCmd(), commands.NewFreqCmd(), listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
