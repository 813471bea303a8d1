package plotly

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/diagram"
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/girder"
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/model"
)

// testScene builds a two-girder model with one transverse element and
// assembles its moment scene.
func testScene(t *testing.T) (*diagram.Scene, *model.Model, *girder.Set) {
	t.Helper()

	m := &model.Model{
		Nodes: model.CoordinateTable{
			1: {X: 0}, 2: {X: 5}, 3: {X: 10},
			4: {X: 0, Z: 3}, 5: {X: 5, Z: 3},
			6: {X: 0, Z: 6},
		},
		Elements: model.ConnectivityTable{
			10: {I: 1, J: 2},
			11: {I: 2, J: 3},
			20: {I: 4, J: 5},
			5:  {I: 1, J: 4}, // transverse, sorts before the girder elements
		},
		Forces: model.ForceSet{
			10: {model.MomentMz: {I: 0, J: 300}, model.ShearVy: {I: 60, J: 60}},
			11: {model.MomentMz: {I: 300, J: 0}, model.ShearVy: {I: -60, J: -60}},
			20: {model.MomentMz: {I: 0, J: 100}, model.ShearVy: {I: 20, J: 20}},
			5:  {model.MomentMz: {I: 400, J: 400}, model.ShearVy: {I: 80, J: 80}},
		},
	}
	set := &girder.Set{
		Central: "G1",
		Girders: []girder.Girder{
			{Name: "G1", Elements: []model.ElementID{10, 11}},
			{Name: "G2", Elements: []model.ElementID{20}},
		},
	}

	scene := diagram.Assemble(set, model.MomentMz, m, diagram.Options{Scale: 0.005})
	require.Empty(t, scene.Skipped)
	return scene, m, set
}

func TestBuildFigureTraceGroups(t *testing.T) {
	scene, m, set := testScene(t)
	fig := BuildFigure(scene, m, set.ElementNames(), 2)

	// 4 centerlines + meshes (2+1+1) + edges (3 per element: 12).
	assert.Len(t, fig.Data, 4+4+12)

	groups := map[string]int{}
	for _, tr := range fig.Data {
		switch v := tr.(type) {
		case *Scatter3D:
			groups[v.LegendGroup]++
		case *Mesh3D:
			groups[v.LegendGroup]++
		default:
			t.Fatalf("unexpected trace type %T", tr)
		}
	}
	assert.Equal(t, 2+2+6, groups["G1"], "centerlines + meshes + edges")
	assert.Equal(t, 1+1+3, groups["G2"])
	assert.Equal(t, 1+1+3, groups[OtherGroup], "transverse members are extruded too")
}

func TestBuildFigureTransverseExtrusion(t *testing.T) {
	scene, m, set := testScene(t)
	fig := BuildFigure(scene, m, set.ElementNames(), 2)

	meshesByGroup := map[string]int{}
	for _, tr := range fig.Data {
		mesh, ok := tr.(*Mesh3D)
		if !ok {
			continue
		}
		meshesByGroup[mesh.LegendGroup]++

		// The colorscale range spans every rendered element, so the
		// transverse member's 400 kN·m sets the upper bound everywhere.
		require.NotNil(t, mesh.CMin)
		require.NotNil(t, mesh.CMax)
		assert.Equal(t, 0.0, *mesh.CMin)
		assert.Equal(t, 400.0, *mesh.CMax)
	}
	assert.Equal(t, map[string]int{"G1": 2, "G2": 1, OtherGroup: 1}, meshesByGroup)
}

func TestBuildFigureEdgeWidths(t *testing.T) {
	scene, m, set := testScene(t)
	fig := BuildFigure(scene, m, set.ElementNames(), 2)

	// Boundary edges repeat start/end/top widths per element; centerlines
	// stay at width 6.
	var widths []float64
	for _, tr := range fig.Data {
		sc, ok := tr.(*Scatter3D)
		if !ok || sc.Line.Width == 6 {
			continue
		}
		widths = append(widths, sc.Line.Width)
	}
	require.Len(t, widths, 12)
	for k, w := range widths {
		assert.Equal(t, [3]float64{4, 2, 1.5}[k%3], w, "edge %d", k)
	}
}

func TestBuildFigureVisibilityButtons(t *testing.T) {
	scene, m, set := testScene(t)
	fig := BuildFigure(scene, m, set.ElementNames(), 2)

	require.Len(t, fig.Layout.UpdateMenus, 1)
	buttons := fig.Layout.UpdateMenus[0].Buttons
	require.Len(t, buttons, 4)
	assert.Equal(t, "All Girders", buttons[0].Label)
	assert.Equal(t, "G1", buttons[1].Label)
	assert.Equal(t, "G2", buttons[2].Label)
	// Last even though the transverse element's ID sorts first.
	assert.Equal(t, "Transverse Only", buttons[3].Label)

	visible := func(b Button) []bool {
		arg := b.Args[0].(map[string]any)
		return arg["visible"].([]bool)
	}

	for _, b := range buttons {
		assert.Equal(t, "update", b.Method)
		assert.Len(t, visible(b), len(fig.Data))
	}

	// Hiding one girder only flips visibility flags; the union of the
	// per-group buttons covers every trace exactly once.
	count := make([]int, len(fig.Data))
	for _, b := range buttons[1:] {
		for i, v := range visible(b) {
			if v {
				count[i]++
			}
		}
	}
	for i, c := range count {
		assert.Equal(t, 1, c, "trace %d", i)
	}
}

func TestBuildFigureColorbarOnce(t *testing.T) {
	scene, m, set := testScene(t)
	fig := BuildFigure(scene, m, set.ElementNames(), 2)

	var withScale int
	for _, tr := range fig.Data {
		mesh, ok := tr.(*Mesh3D)
		if !ok {
			continue
		}
		if mesh.ShowScale != nil && *mesh.ShowScale {
			withScale++
			assert.NotNil(t, mesh.ColorBar)
		}
	}
	assert.Equal(t, 1, withScale)
}

func TestBuildFigureMarshals(t *testing.T) {
	scene, m, set := testScene(t)
	fig := BuildFigure(scene, m, set.ElementNames(), 2)

	raw, err := json.Marshal(fig)
	require.NoError(t, err)

	var decoded struct {
		Data   []map[string]any `json:"data"`
		Layout map[string]any   `json:"layout"`
	}
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "scatter3d", decoded.Data[0]["type"])
	assert.Contains(t, decoded.Layout, "updatemenus")
	assert.Contains(t, decoded.Layout, "scene")
}
