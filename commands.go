package main

import (
	"fmt"
	"os"

	driver "github.com/minikomi/rtmididrv"
	"github.com/spf13/cobra"

	"github.com/minikomi/keynote/internal/midiout"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List MIDI in and out ports",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		drv, err := driver.New()
		if err != nil {
			return fmt.Errorf("open midi driver: %w", err)
		}
		defer drv.Close()

		ins, err := drv.Ins()
		if err != nil {
			return err
		}
		outs, err := drv.Outs()
		if err != nil {
			return err
		}
		midiout.ListPorts(os.Stdout, ins, outs)
		return nil
	},
}
