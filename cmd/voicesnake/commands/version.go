package commands

import (
	"fmt"

	"github.com/battlesnakeio/voicesnake/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "prints the version",
	Run: func(*cobra.Command, []string) {
		fmt.Println(version.Version)
	},
}
