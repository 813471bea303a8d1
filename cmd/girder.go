package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/diagram"
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/girder"
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/model"
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/plot"
)

var (
	girderModelFile  string
	girderConfigFile string
	girderName       string
	girderOutputDir  string
	girderFormat     string
	girderPreview    bool
)

var girderCmd = &cobra.Command{
	Use:   "girder",
	Short: "2D shear and moment diagrams for one longitudinal girder",
	Long: `Generate the 2D shear force diagram (SFD) and bending moment diagram
(BMD) of one longitudinal girder, plotted over arc-length along the
girder axis.

By default the configured central girder is used. The diagram curve
passes through the stored endpoint values of every element; a jump
between two adjacent elements at a shared node is displayed as stored,
never averaged.

Examples:
  # Central girder diagrams from a JSON result model
  bridgediag girder --model results.json

  # A specific girder from an XLSX workbook, with terminal preview
  bridgediag girder -m results.xlsx --girder "Girder 1" --preview

  # Custom girder definitions, SVG output
  bridgediag girder -m results.json --girders girders.toml --format svg`,
	Run: runGirder,
}

func init() {
	rootCmd.AddCommand(girderCmd)

	girderCmd.Flags().StringVarP(&girderModelFile, "model", "m", "", "Path to result model (.json or .xlsx) [required]")
	girderCmd.MarkFlagRequired("model")

	girderCmd.Flags().StringVarP(&girderConfigFile, "girders", "g", "", "Path to girder definitions TOML (default: built-in bridge girders)")
	girderCmd.Flags().StringVar(&girderName, "girder", "", "Girder to plot (default: the configured central girder)")
	girderCmd.Flags().StringVarP(&girderOutputDir, "output-dir", "o", ".", "Directory for the exported diagram images")
	girderCmd.Flags().StringVar(&girderFormat, "format", "png", "Image format: png, svg or pdf")
	girderCmd.Flags().BoolVar(&girderPreview, "preview", false, "Print ASCII previews of the diagram curves")
}

func runGirder(cmd *cobra.Command, args []string) {
	logg := logger()

	m, set, err := loadInputs(girderModelFile, girderConfigFile)
	if err != nil {
		logg.Error("loading inputs", "err", err)
		return
	}
	logg.Debug("model loaded", "nodes", len(m.Nodes), "elements", len(m.Elements), "records", len(m.Forces))

	g, err := selectGirder(set, girderName)
	if err != nil {
		logg.Error("selecting girder", "err", err)
		return
	}

	// Errors in the central-girder path are fatal for the run: only one
	// girder is processed here.
	path, err := girder.Resolve(g, m)
	if err != nil {
		logg.Error("resolving girder", "girder", g.Name, "err", err)
		return
	}

	bmd, err := diagram.BuildCurve(path, model.MomentMz, m.Forces)
	if err != nil {
		logg.Error("building BMD curve", "girder", g.Name, "err", err)
		return
	}
	sfd, err := diagram.BuildCurve(path, model.ShearVy, m.Forces)
	if err != nil {
		logg.Error("building SFD curve", "girder", g.Name, "err", err)
		return
	}

	printGirderSummary(g, path, m)

	if girderPreview {
		fmt.Println(plot.Sketch(bmd, 72, 12))
		fmt.Println()
		fmt.Println(plot.Sketch(sfd, 72, 12))
		fmt.Println()
	}

	for _, c := range []*diagram.Curve{bmd, sfd} {
		name := "bmd." + girderFormat
		if c.Quantity == model.ShearVy {
			name = "sfd." + girderFormat
		}
		out := filepath.Join(girderOutputDir, name)
		if err := plot.ExportCurve(c, out); err != nil {
			logg.Error("exporting diagram", "file", out, "err", err)
			return
		}
		fmt.Printf("Diagram exported to: %s\n", out)
	}
}

// loadInputs loads the result model and the girder definitions. An empty
// configPath selects the built-in girder set.
func loadInputs(modelPath, configPath string) (*model.Model, *girder.Set, error) {
	m, err := model.LoadFile(modelPath)
	if err != nil {
		return nil, nil, err
	}
	set := girder.DefaultSet()
	if configPath != "" {
		set, err = girder.LoadSet(configPath)
		if err != nil {
			return nil, nil, err
		}
	}
	return m, set, nil
}

func selectGirder(set *girder.Set, name string) (girder.Girder, error) {
	if name == "" {
		return set.CentralGirder()
	}
	g, ok := set.Girder(name)
	if !ok {
		return girder.Girder{}, fmt.Errorf("girder %q is not defined", name)
	}
	return g, nil
}

func printGirderSummary(g girder.Girder, path *girder.Path, m *model.Model) {
	arc := path.ArcLengths()

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     GIRDER DIAGRAM VALUES - %s\n", g.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("ELEMENT VALUES (as stored in the result set):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Element\tNodes\tSpan (m)\tVy_i\tVy_j\tMz_i\tMz_j\n")
	fmt.Fprintf(w, "  ───────\t─────\t────────\t────\t────\t────\t────\n")
	for k, eid := range path.Elements {
		vy, _ := m.Forces.Lookup(eid, model.ShearVy)
		mz, _ := m.Forces.Lookup(eid, model.MomentMz)
		fmt.Fprintf(w, "  %d\t%d → %d\t%.2f – %.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			eid, path.Nodes[k], path.Nodes[k+1], arc[k], arc[k+1],
			vy.I, vy.J, mz.I, mz.J)
	}
	w.Flush()
	fmt.Println()

	fmt.Printf("  Girder length: %.2f m (%d elements, %d nodes)\n",
		path.Length(), len(path.Elements), len(path.Nodes))
	fmt.Println()
}
