package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/girder"
)

var (
	infoModelFile  string
	infoConfigFile string
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Inspect a result model and the configured girders",
	Long: `Print the node, element and force-record counts of a result model and
check every configured girder against it: chain continuity, path length
and force-record coverage.

Examples:
  bridgediag info --model results.json
  bridgediag info -m results.xlsx --girders girders.toml`,
	Run: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&infoModelFile, "model", "m", "", "Path to result model (.json or .xlsx) [required]")
	infoCmd.MarkFlagRequired("model")

	infoCmd.Flags().StringVarP(&infoConfigFile, "girders", "g", "", "Path to girder definitions TOML (default: built-in bridge girders)")
}

func runInfo(cmd *cobra.Command, args []string) {
	logg := logger()

	m, set, err := loadInputs(infoModelFile, infoConfigFile)
	if err != nil {
		logg.Error("loading inputs", "err", err)
		return
	}

	fmt.Println()
	fmt.Println("MODEL:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nodes:\t%d\n", len(m.Nodes))
	fmt.Fprintf(w, "  Elements:\t%d\n", len(m.Elements))
	fmt.Fprintf(w, "  Force records:\t%d\n", len(m.Forces))
	w.Flush()
	fmt.Println()

	fmt.Println("GIRDERS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Name\tElements\tNodes\tLength (m)\tStatus\n")
	fmt.Fprintf(w, "  ────\t────────\t─────\t──────────\t──────\n")
	for _, g := range set.Girders {
		marker := ""
		if g.Name == set.Central {
			marker = " (central)"
		}
		path, err := girder.Resolve(g, m)
		if err != nil {
			fmt.Fprintf(w, "  %s%s\t%d\t-\t-\t%v\n", g.Name, marker, len(g.Elements), err)
			continue
		}
		fmt.Fprintf(w, "  %s%s\t%d\t%d\t%.2f\tOK\n",
			g.Name, marker, len(g.Elements), len(path.Nodes), path.Length())
	}
	w.Flush()
	fmt.Println()
}
