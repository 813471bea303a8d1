package plotly

import (
	"fmt"
	"math"

	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/diagram"
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/model"
)

// OtherGroup is the visibility group for elements that belong to no
// longitudinal girder (transverse members).
const OtherGroup = diagram.OtherElements

// Pastel colorscale, low to high intensity.
var pastelScale = [][]any{
	{0.0, "rgb(100, 149, 237)"},
	{0.25, "rgb(127, 255, 212)"},
	{0.5, "rgb(144, 238, 144)"},
	{0.75, "rgb(255, 218, 120)"},
	{1.0, "rgb(240, 128, 128)"},
}

// Boundary edge widths per element: start edge, end edge, top edge.
var edgeWidths = [3]float64{4, 2, 1.5}

// BuildFigure composes the multi-girder 3D diagram figure: black
// centerlines for every model element, one colored extrusion mesh strip
// with boundary edges per element, girder and transverse alike, and
// visibility buttons that toggle each girder's traces independently.
// Hiding one girder never touches another girder's traces; every trace is
// tagged with its girder group, transverse members under OtherGroup.
func BuildFigure(scene *diagram.Scene, m *model.Model, groups map[model.ElementID]string, segments int) *Figure {
	fig := &Figure{}
	traceGroups := make(map[string][]int)
	order := []string{}

	addTrace := func(group string, trace any) {
		if _, seen := traceGroups[group]; !seen {
			order = append(order, group)
		}
		traceGroups[group] = append(traceGroups[group], len(fig.Data))
		fig.Data = append(fig.Data, trace)
	}

	// Structure centerlines for every element, girder or not.
	for _, eid := range m.ElementIDs() {
		c := m.Elements[eid]
		a, b := m.Nodes[c.I], m.Nodes[c.J]
		group, ok := groups[eid]
		if !ok {
			group = OtherGroup
		}
		addTrace(group, &Scatter3D{
			Type:        "scatter3d",
			X:           []float64{a.X, b.X},
			Y:           []float64{a.Y, b.Y},
			Z:           []float64{a.Z, b.Z},
			Mode:        "lines",
			Line:        &Line{Color: "rgba(20, 20, 20, 1.0)", Width: 6},
			Name:        group,
			LegendGroup: group,
			ShowLegend:  Bool(false),
			HoverInfo:   "skip",
		})
	}

	cmin, cmax := intensityRange(scene)
	firstMesh := true
	shownLegend := make(map[string]bool)

	addRibbon := func(r *diagram.Ribbon) {
		meshes := r.Meshes(segments)
		edges := r.Edges()

		for k, mesh := range meshes {
			rec := r.Records[k]
			tr := &Mesh3D{
				Type:        "mesh3d",
				X:           mesh.X,
				Y:           mesh.Y,
				Z:           mesh.Z,
				I:           mesh.I,
				J:           mesh.J,
				K:           mesh.K,
				Name:        r.Girder,
				LegendGroup: r.Girder,
				ShowLegend:  Bool(!shownLegend[r.Girder]),
				Intensity:   mesh.Value,
				ColorScale:  pastelScale,
				CMin:        Float(cmin),
				CMax:        Float(cmax),
				Opacity:     0.75,
				ShowScale:   Bool(firstMesh),
				HoverTemplate: fmt.Sprintf(
					"<b>%s - Element %d</b><br>Nodes: %d → %d<br>%s: %.3f %s<br>%s: %.3f %s<extra></extra>",
					r.Girder, mesh.Element, r.Nodes[k], r.Nodes[k+1],
					scene.Quantity.ComponentI(), rec.I, scene.Quantity.Unit(),
					scene.Quantity.ComponentJ(), rec.J, scene.Quantity.Unit(),
				),
				FlatShading:   Bool(false),
				Lighting:      &Lighting{Ambient: 0.7, Diffuse: 0.8, Specular: 0.3, Roughness: 0.5, Fresnel: 0.2},
				LightPosition: &Vec3{X: 1000, Y: 1000, Z: 1000},
			}
			shownLegend[r.Girder] = true
			if firstMesh {
				tr.ColorBar = &ColorBar{
					Title:     fmt.Sprintf("%s (%s)", scene.Quantity.Label(), scene.Quantity.Unit()),
					Thickness: 20,
					Len:       0.7,
					X:         1.02,
				}
				firstMesh = false
			}
			addTrace(r.Girder, tr)
		}

		for k, e := range edges {
			addTrace(r.Girder, &Scatter3D{
				Type:        "scatter3d",
				X:           e.X,
				Y:           e.Y,
				Z:           e.Z,
				Mode:        "lines",
				Line:        &Line{Color: "rgba(0, 0, 0, 0.9)", Width: edgeWidths[k%3]},
				Name:        r.Girder,
				LegendGroup: r.Girder,
				ShowLegend:  Bool(false),
				HoverInfo:   "skip",
			})
		}
	}

	for _, r := range scene.Ribbons {
		addRibbon(r)
	}
	for _, r := range scene.Others {
		addRibbon(r)
	}

	fig.Layout = sceneLayout(scene.Quantity)
	fig.Layout.UpdateMenus = visibilityMenus(len(fig.Data), order, traceGroups)
	return fig
}

// intensityRange returns the absolute-value intensity range over every
// ribbon record in the scene, transverse elements included. All meshes
// share this range so colors are comparable across girders.
func intensityRange(scene *diagram.Scene) (cmin, cmax float64) {
	cmin = math.Inf(1)
	for _, rs := range [2][]*diagram.Ribbon{scene.Ribbons, scene.Others} {
		for _, r := range rs {
			for _, rec := range r.Records {
				for _, v := range [2]float64{math.Abs(rec.I), math.Abs(rec.J)} {
					cmin = math.Min(cmin, v)
					cmax = math.Max(cmax, v)
				}
			}
		}
	}
	if math.IsInf(cmin, 1) {
		cmin = 0
	}
	return cmin, cmax
}

// visibilityMenus builds the girder toggle buttons: show everything, one
// girder alone, or the transverse members alone. The girder buttons come
// first and "Transverse Only" always closes the list. Each button only
// flips the visible flags; no geometry is recomputed.
func visibilityMenus(total int, order []string, traceGroups map[string][]int) []UpdateMenu {
	buttons := []Button{{
		Label:  "All Girders",
		Method: "update",
		Args:   []any{map[string]any{"visible": allVisible(total)}},
	}}

	groupButton := func(group, label string) Button {
		visible := make([]bool, total)
		for _, idx := range traceGroups[group] {
			visible[idx] = true
		}
		return Button{
			Label:  label,
			Method: "update",
			Args:   []any{map[string]any{"visible": visible}},
		}
	}

	for _, group := range order {
		if group == OtherGroup {
			continue
		}
		buttons = append(buttons, groupButton(group, group))
	}
	if _, ok := traceGroups[OtherGroup]; ok {
		buttons = append(buttons, groupButton(OtherGroup, "Transverse Only"))
	}

	return []UpdateMenu{{
		Type:        "buttons",
		Direction:   "down",
		Buttons:     buttons,
		X:           0.01,
		Y:           0.99,
		XAnchor:     "left",
		YAnchor:     "top",
		ShowActive:  Bool(true),
		BGColor:     "rgba(255, 255, 255, 0.9)",
		BorderColor: "rgba(0, 0, 0, 0.3)",
		BorderWidth: 1,
	}}
}

func allVisible(n int) []bool {
	v := make([]bool, n)
	for i := range v {
		v[i] = true
	}
	return v
}

// sceneLayout applies the MIDAS-style presentation: CAD grids, pastel
// background, fixed camera and aspect ratio.
func sceneLayout(q model.Quantity) *Layout {
	title := "3D Bending Moment Diagram (BMD)"
	if q == model.ShearVy {
		title = "3D Shear Force Diagram (SFD)"
	}

	axis := func(text string, dtick float64) *Axis {
		return &Axis{
			Title:           &Title{Text: text, Font: &Font{Size: 14, Color: "#34495e"}},
			GridColor:       "rgb(180, 180, 180)",
			GridWidth:       2,
			ShowGrid:        Bool(true),
			ZeroLine:        Bool(true),
			ZeroLineColor:   "rgb(100, 100, 100)",
			ZeroLineWidth:   3,
			ShowBackground:  Bool(true),
			BackgroundColor: "rgb(245, 245, 250)",
			ShowSpikes:      Bool(false),
			DTick:           dtick,
			TickFont:        &Font{Size: 11},
		}
	}

	return &Layout{
		Title: &Title{
			Text:    title,
			X:       0.5,
			XAnchor: "center",
			Font:    &Font{Size: 20, Color: "#2c3e50", Family: "Arial, sans-serif"},
		},
		Scene: &SceneLayout{
			XAxis:       axis("X (m)", 2.5),
			YAxis:       axis(fmt.Sprintf("%s (%s)", q.Label(), q.Unit()), 0),
			ZAxis:       axis("Z (m)", 2.0),
			AspectRatio: &Vec3{X: 2, Y: 1, Z: 1},
			Camera: &SceneCamera{
				Eye:    &Vec3{X: 1.8, Y: 1.5, Z: 1.2},
				Center: &Vec3{},
				Up:     &Vec3{Y: 1},
			},
			BGColor: "rgb(250, 250, 252)",
		},
		Width:        1600,
		Height:       900,
		Margin:       &Margin{L: 0, R: 100, B: 0, T: 80},
		PaperBGColor: "rgb(255, 255, 255)",
		Font:         &Font{Family: "Arial, sans-serif", Size: 12, Color: "#2c3e50"},
		HoverMode:    "closest",
	}
}
