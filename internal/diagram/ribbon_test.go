package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/girder"
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/model"
)

func TestBuildRibbonVertexCounts(t *testing.T) {
	m := testModel()
	path, err := girder.Resolve(centralGirder(), m)
	require.NoError(t, err)

	r, err := BuildRibbon(path, model.MomentMz, m.Forces, Options{Scale: 0.01})
	require.NoError(t, err)

	// One axis vertex and one offset vertex per node.
	n := len(path.Nodes)
	assert.Len(t, r.Axis, n)
	assert.Len(t, r.Offset, n)
	assert.Len(t, r.Values, n)
	assert.Len(t, r.Records, len(path.Elements))
}

func TestBuildRibbonOffsets(t *testing.T) {
	m := testModel()
	path, err := girder.Resolve(centralGirder(), m)
	require.NoError(t, err)

	const scale = 0.01
	r, err := BuildRibbon(path, model.MomentMz, m.Forces, Options{Up: model.Point3{Y: 1}, Scale: scale})
	require.NoError(t, err)

	// Interior node k uses value_i of its outgoing element; the ends use
	// their single boundary value.
	assert.Equal(t, r.Records[0].I, r.Values[0])
	for k := 1; k < len(r.Values)-1; k++ {
		assert.Equal(t, r.Records[k].I, r.Values[k], "node %d", k)
	}
	last := len(r.Values) - 1
	assert.Equal(t, r.Records[len(r.Records)-1].J, r.Values[last])

	for k := range r.Axis {
		assert.Equal(t, r.Axis[k].X, r.Offset[k].X)
		assert.Equal(t, r.Axis[k].Z, r.Offset[k].Z)
		assert.InDelta(t, r.Axis[k].Y+r.Values[k]*scale, r.Offset[k].Y, 1e-12)
	}
}

func TestBuildRibbonDefaultUp(t *testing.T) {
	m := testModel()
	path, err := girder.Resolve(sideGirder(), m)
	require.NoError(t, err)

	r, err := BuildRibbon(path, model.ShearVy, m.Forces, Options{Scale: 1})
	require.NoError(t, err)

	// Zero Up falls back to +Y.
	assert.InDelta(t, r.Axis[0].Y+r.Values[0], r.Offset[0].Y, 1e-12)
}

func TestRibbonMeshes(t *testing.T) {
	m := testModel()
	path, err := girder.Resolve(centralGirder(), m)
	require.NoError(t, err)

	r, err := BuildRibbon(path, model.ShearVy, m.Forces, Options{Scale: 0.1})
	require.NoError(t, err)

	const segments = 4
	meshes := r.Meshes(segments)
	require.Len(t, meshes, len(r.Records))

	for k, mesh := range meshes {
		assert.Equal(t, path.Elements[k], mesh.Element)
		assert.Len(t, mesh.X, 2*(segments+1))
		assert.Len(t, mesh.I, 2*segments)
		assert.Len(t, mesh.J, 2*segments)
		assert.Len(t, mesh.K, 2*segments)
	}
}

func TestRibbonMeshSignChangePassesThroughEndpoints(t *testing.T) {
	// An element whose endpoint values disagree in sign still passes
	// through both stored values exactly.
	m := testModel()
	m.Forces[15][model.ShearVy] = model.Endpoints{I: 40, J: -40}

	path, err := girder.Resolve(centralGirder(), m)
	require.NoError(t, err)

	const scale = 0.1
	r, err := BuildRibbon(path, model.ShearVy, m.Forces, Options{Up: model.Point3{Y: 1}, Scale: scale})
	require.NoError(t, err)

	mesh := r.Meshes(2)[0]
	// Vertices alternate base, top. First top vertex carries value_i,
	// last top vertex carries value_j.
	first := 1
	last := len(mesh.Y) - 1
	assert.InDelta(t, 40*scale, mesh.Y[first], 1e-12)
	assert.InDelta(t, -40*scale, mesh.Y[last], 1e-12)
}

func TestRibbonMeshJumpBetweenElements(t *testing.T) {
	// A discontinuity at a shared node survives triangulation: element 15
	// ends at its own value_j, element 24 starts at its own value_i.
	m := testModel()
	m.Forces[15][model.ShearVy] = model.Endpoints{I: 100, J: 100}
	m.Forces[24][model.ShearVy] = model.Endpoints{I: -50, J: -50}

	path, err := girder.Resolve(centralGirder(), m)
	require.NoError(t, err)

	r, err := BuildRibbon(path, model.ShearVy, m.Forces, Options{Up: model.Point3{Y: 1}, Scale: 1})
	require.NoError(t, err)

	meshes := r.Meshes(2)
	endOf15 := meshes[0].Y[len(meshes[0].Y)-1]
	startOf24 := meshes[1].Y[1]
	assert.InDelta(t, 100, endOf15, 1e-12)
	assert.InDelta(t, -50, startOf24, 1e-12)
}

func TestRibbonEdges(t *testing.T) {
	m := testModel()
	path, err := girder.Resolve(sideGirder(), m)
	require.NoError(t, err)

	r, err := BuildRibbon(path, model.MomentMz, m.Forces, Options{Scale: 0.01})
	require.NoError(t, err)

	// Three edges per element: start vertical, end vertical, top.
	edges := r.Edges()
	assert.Len(t, edges, 3*len(r.Records))
	for _, e := range edges {
		assert.Len(t, e.X, 2)
		assert.Len(t, e.Y, 2)
		assert.Len(t, e.Z, 2)
	}
}
