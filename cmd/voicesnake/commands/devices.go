package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/battlesnakeio/voicesnake/audio/microphone"
	"github.com/spf13/cobra"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "lists the audio input devices, use the index with play --device",
	RunE: func(*cobra.Command, []string) error {
		devices, err := microphone.ListDevices()
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "INDEX\tNAME\tHOST API\tCHANNELS\tSAMPLE RATE")
		for _, d := range devices {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%.0f\n",
				d.Index, d.Name, d.HostAPI, d.MaxInputChannels, d.DefaultSampleRate)
		}
		return w.Flush()
	},
}
