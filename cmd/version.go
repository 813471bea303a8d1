package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bridgediag",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bridgediag v%s\n", version.Version)
		fmt.Println("Bridge Girder SFD/BMD Diagram Generator")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
