package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/diagram"
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/model"
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/plotly"
)

var (
	bridgeModelFile  string
	bridgeConfigFile string
	bridgeOutputDir  string
	bridgeQuantity   string
	bridgeSegments   int
	bridgeScale      float64
)

var bridgeCmd = &cobra.Command{
	Use:   "bridge",
	Short: "3D multi-girder diagram scene with visibility controls",
	Long: `Generate the 3D diagram scene covering every longitudinal girder:
the quantity is plotted as a solid extrusion above the true girder axis,
MIDAS style, and each girder can be shown or hidden independently in the
exported interactive HTML.

A girder whose definition cannot be resolved against the model is
skipped with a warning; the remaining girders are still rendered.

Examples:
  # BMD and SFD scenes from a JSON result model
  bridgediag bridge --model results.json

  # Only the shear diagram, with a fixed displacement scale
  bridgediag bridge -m results.xlsx --quantity sfd --scale 0.005`,
	Run: runBridge,
}

func init() {
	rootCmd.AddCommand(bridgeCmd)

	bridgeCmd.Flags().StringVarP(&bridgeModelFile, "model", "m", "", "Path to result model (.json or .xlsx) [required]")
	bridgeCmd.MarkFlagRequired("model")

	bridgeCmd.Flags().StringVarP(&bridgeConfigFile, "girders", "g", "", "Path to girder definitions TOML (default: built-in bridge girders)")
	bridgeCmd.Flags().StringVarP(&bridgeOutputDir, "output-dir", "o", ".", "Directory for the exported HTML scenes")
	bridgeCmd.Flags().StringVar(&bridgeQuantity, "quantity", "both", "Quantity to plot: bmd, sfd or both")
	bridgeCmd.Flags().IntVar(&bridgeSegments, "segments", diagram.DefaultSegments, "Interpolation segments per element")
	bridgeCmd.Flags().Float64Var(&bridgeScale, "scale", 0, "Displacement per unit value (0 = auto from model extremes)")
}

func runBridge(cmd *cobra.Command, args []string) {
	logg := logger()

	m, set, err := loadInputs(bridgeModelFile, bridgeConfigFile)
	if err != nil {
		logg.Error("loading inputs", "err", err)
		return
	}
	logg.Debug("model loaded", "nodes", len(m.Nodes), "elements", len(m.Elements), "records", len(m.Forces))

	var quantities []model.Quantity
	switch strings.ToLower(bridgeQuantity) {
	case "bmd":
		quantities = []model.Quantity{model.MomentMz}
	case "sfd":
		quantities = []model.Quantity{model.ShearVy}
	case "both":
		quantities = []model.Quantity{model.MomentMz, model.ShearVy}
	default:
		logg.Error("unknown quantity", "quantity", bridgeQuantity)
		return
	}

	groups := set.ElementNames()

	for _, q := range quantities {
		scale := bridgeScale
		if scale == 0 {
			scale = autoScale(m, q)
			logg.Debug("auto scale", "quantity", q, "scale", scale)
		}

		opts := diagram.Options{Up: model.Point3{Y: 1}, Scale: scale}
		scene := diagram.Assemble(set, q, m, opts)

		// Failures are isolated per girder: report and render the rest.
		for _, sk := range scene.Skipped {
			logg.Warn("skipping girder", "girder", sk.Girder, "err", sk.Err)
		}
		if len(scene.Ribbons) == 0 {
			logg.Error("no girder could be resolved", "quantity", q)
			return
		}

		fig := plotly.BuildFigure(scene, m, groups, bridgeSegments)

		name := "bmd_3d.html"
		title := "3D Bending Moment Diagram (BMD)"
		if q == model.ShearVy {
			name = "sfd_3d.html"
			title = "3D Shear Force Diagram (SFD)"
		}
		out := filepath.Join(bridgeOutputDir, name)
		if err := plotly.WriteHTML(fig, title, out); err != nil {
			logg.Error("writing scene", "file", out, "err", err)
			return
		}
		fmt.Printf("Scene exported to: %s (%d girders, %d skipped)\n",
			out, len(scene.Ribbons), len(scene.Skipped))
	}
}

// autoScale derives a display scale so the largest diagram ordinate spans
// about 1.8 m. Shear values are small relative to moments on a bridge deck,
// so the shear diagram gets an extra factor to stay visible.
func autoScale(m *model.Model, q model.Quantity) float64 {
	maxVal := m.Forces.MaxAbs(q)
	if maxVal == 0 {
		return 1
	}
	scale := 1.8 / maxVal
	if q == model.ShearVy {
		scale *= 3
	}
	return scale
}
