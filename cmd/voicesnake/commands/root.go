package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/voicesnake/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "voicesnake",
	Short:   "voicesnake is a snake game steered by saying up, down, left or right",
	Version: version.Version,
	RunE: func(c *cobra.Command, args []string) error {
		return playCmd.RunE(c, args)
	},
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(devicesCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
