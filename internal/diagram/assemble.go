package diagram

import (
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/girder"
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/model"
)

// OtherElements tags scene geometry for elements that belong to no
// longitudinal girder (transverse members).
const OtherElements = "Other Elements"

// Scene is the combined 3D diagram for every longitudinal girder: one
// ribbon per girder, tagged with the girder name so a renderer can toggle
// visibility per girder without recomputing anything. Girders whose
// topology, coordinates or force records could not be resolved appear in
// Skipped instead of Ribbons. Elements outside every girder are extruded
// too, one single-element ribbon each, collected in Others under the
// OtherElements tag.
type Scene struct {
	Quantity model.Quantity
	Ribbons  []*Ribbon
	Others   []*Ribbon
	Skipped  []SkippedGirder
}

// SkippedGirder records a girder that was omitted from the scene and why.
type SkippedGirder struct {
	Girder string
	Err    error
}

// Assemble builds the multi-girder 3D scene. Each girder is processed
// independently from its own topology, sampling and path results; a failure
// in one girder is isolated to it and the remaining girders still appear in
// the scene. The caller decides how to report the skipped girders.
//
// Elements that belong to no girder get a single-element ribbon each in
// Others; an element without a force record for the quantity is left out.
func Assemble(set *girder.Set, q model.Quantity, m *model.Model, opts Options) *Scene {
	scene := &Scene{Quantity: q}

	for _, g := range set.Girders {
		path, err := girder.Resolve(g, m)
		if err != nil {
			scene.Skipped = append(scene.Skipped, SkippedGirder{Girder: g.Name, Err: err})
			continue
		}
		ribbon, err := BuildRibbon(path, q, m.Forces, opts)
		if err != nil {
			scene.Skipped = append(scene.Skipped, SkippedGirder{Girder: g.Name, Err: err})
			continue
		}
		scene.Ribbons = append(scene.Ribbons, ribbon)
	}

	names := set.ElementNames()
	for _, eid := range m.ElementIDs() {
		if _, ok := names[eid]; ok {
			continue
		}
		c := m.Elements[eid]
		path := &girder.Path{
			Girder:   OtherElements,
			Elements: []model.ElementID{eid},
			Nodes:    []model.NodeID{c.I, c.J},
			Coords:   []model.Point3{m.Nodes[c.I], m.Nodes[c.J]},
		}
		ribbon, err := BuildRibbon(path, q, m.Forces, opts)
		if err != nil {
			continue
		}
		scene.Others = append(scene.Others, ribbon)
	}

	return scene
}

// Ribbon returns the scene ribbon tagged with the girder name.
func (s *Scene) Ribbon(name string) (*Ribbon, bool) {
	for _, r := range s.Ribbons {
		if r.Girder == name {
			return r, true
		}
	}
	return nil, false
}
