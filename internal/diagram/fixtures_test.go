package diagram

import (
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/girder"
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/model"
)

// testModel builds a two-girder deck: the central girder's nine elements on
// one line, a parallel three-element girder on another, spans of 2.5 m.
func testModel() *model.Model {
	m := &model.Model{
		Nodes:    model.CoordinateTable{},
		Elements: model.ConnectivityTable{},
		Forces:   model.ForceSet{},
	}

	// Central girder: nodes 3,13,18,23,28,33,38,43,48,8 along X at y=z=0.
	centralNodes := []model.NodeID{3, 13, 18, 23, 28, 33, 38, 43, 48, 8}
	centralElems := []model.ElementID{15, 24, 33, 42, 51, 60, 69, 78, 83}
	for k, id := range centralNodes {
		m.Nodes[id] = model.Point3{X: 2.5 * float64(k)}
	}
	for k, eid := range centralElems {
		m.Elements[eid] = model.Connectivity{I: centralNodes[k], J: centralNodes[k+1]}
		m.Forces[eid] = map[model.Quantity]model.Endpoints{
			model.ShearVy:  {I: 10 * float64(k+1), J: -10 * float64(k+1)},
			model.MomentMz: {I: 100 * float64(k+1), J: 100 * float64(k+2)},
		}
	}

	// Side girder: nodes 101..104 along X at z=3.
	sideNodes := []model.NodeID{101, 102, 103, 104}
	sideElems := []model.ElementID{201, 202, 203}
	for k, id := range sideNodes {
		m.Nodes[id] = model.Point3{X: 2.5 * float64(k), Z: 3}
	}
	for k, eid := range sideElems {
		m.Elements[eid] = model.Connectivity{I: sideNodes[k], J: sideNodes[k+1]}
		m.Forces[eid] = map[model.Quantity]model.Endpoints{
			model.ShearVy:  {I: 5, J: 5},
			model.MomentMz: {I: 50, J: 60},
		}
	}

	return m
}

func centralGirder() girder.Girder {
	return girder.Girder{Name: "Girder 3", Elements: []model.ElementID{15, 24, 33, 42, 51, 60, 69, 78, 83}}
}

func sideGirder() girder.Girder {
	return girder.Girder{Name: "Side", Elements: []model.ElementID{201, 202, 203}}
}

func testSet() *girder.Set {
	return &girder.Set{
		Central: "Girder 3",
		Girders: []girder.Girder{centralGirder(), sideGirder()},
	}
}
