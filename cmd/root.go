package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/version"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "bridgediag",
	Short: "Bridge Girder SFD/BMD Diagram Generator",
	Long: `bridgediag - Bridge Girder Shear Force and Bending Moment Diagrams

A CLI tool that turns a structural-analysis result set (per-element
internal forces on a node/element topology) into diagrams for a bridge
girder structure.

This tool produces:
  - 2D shear force and bending moment diagrams for the central girder
  - A 3D multi-girder diagram scene with per-girder visibility controls
  - Terminal previews of the 2D diagram curves

Values are plotted exactly as stored in the result set: no unit
conversion, no sign normalization, no smoothing of discontinuities.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   bridgediag v%-44s║\n", version.Version)
		fmt.Println("  ║   Bridge Girder SFD/BMD Diagram Generator                 ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for shear-force and bending-moment diagrams of")
		fmt.Println("  bridge girder structures.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • 2D SFD and BMD of the central longitudinal girder")
		fmt.Println("    • 3D MIDAS-style multi-girder diagrams with visibility toggles")
		fmt.Println("    • JSON and XLSX result models, TOML girder definitions")
		fmt.Println()
		fmt.Println("  Use 'bridgediag --help' to see available commands.")
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// logger builds the CLI logger. Debug level when --verbose is set.
func logger() *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}
