package model

import (
	"fmt"
	"math"
	"sort"
)

// NodeID identifies a node in the analysis model.
type NodeID int

// ElementID identifies a frame element in the analysis model.
type ElementID int

// Point3 is a 3D coordinate in meters.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Connectivity holds the ordered endpoint nodes of an element.
// The stored order defines the element orientation: endpoint quantities
// suffixed "_i" belong to node I, "_j" to node J.
type Connectivity struct {
	I NodeID `json:"i"`
	J NodeID `json:"j"`
}

// Quantity is an internal-force component plotted along a girder.
type Quantity string

const (
	// ShearVy is the transverse shear force component (kN).
	ShearVy Quantity = "Vy"
	// MomentMz is the bending moment component (kN·m).
	MomentMz Quantity = "Mz"
)

// Label returns the display name of the quantity.
func (q Quantity) Label() string {
	switch q {
	case ShearVy:
		return "Shear Force"
	case MomentMz:
		return "Bending Moment"
	}
	return string(q)
}

// Unit returns the display unit of the quantity.
func (q Quantity) Unit() string {
	switch q {
	case ShearVy:
		return "kN"
	case MomentMz:
		return "kN·m"
	}
	return ""
}

// ComponentI and ComponentJ return the dataset component names for the
// element endpoints, e.g. "Vy_i" / "Vy_j".
func (q Quantity) ComponentI() string { return string(q) + "_i" }

func (q Quantity) ComponentJ() string { return string(q) + "_j" }

// Endpoints is a (value_i, value_j) pair taken verbatim from the result
// dataset. Values are never transformed, recomputed or sign-flipped.
type Endpoints struct {
	I float64 `json:"i"`
	J float64 `json:"j"`
}

// CoordinateTable maps node identifiers to their 3D coordinates.
type CoordinateTable map[NodeID]Point3

// Coordinate looks up the coordinate of a node.
func (t CoordinateTable) Coordinate(id NodeID) (Point3, error) {
	p, ok := t[id]
	if !ok {
		return Point3{}, &MissingTopologyError{Kind: "node", ID: int(id)}
	}
	return p, nil
}

// ConnectivityTable maps element identifiers to their endpoint nodes.
type ConnectivityTable map[ElementID]Connectivity

// Connectivity looks up the endpoint nodes of an element.
func (t ConnectivityTable) Connectivity(id ElementID) (Connectivity, error) {
	c, ok := t[id]
	if !ok {
		return Connectivity{}, &MissingTopologyError{Kind: "element", ID: int(id)}
	}
	return c, nil
}

// ForceSet holds the per-element endpoint values of each result quantity.
type ForceSet map[ElementID]map[Quantity]Endpoints

// Lookup returns the stored endpoint pair for an element and quantity.
// The returned values are bit-identical to the dataset contents.
func (fs ForceSet) Lookup(id ElementID, q Quantity) (Endpoints, error) {
	rec, ok := fs[id]
	if ok {
		ep, ok := rec[q]
		if ok {
			return ep, nil
		}
	}
	return Endpoints{}, &MissingQuantityError{Element: id, Quantity: q}
}

// MaxAbs returns the largest absolute endpoint value of q across all
// elements in the set. Used by the renderer to derive a display scale.
func (fs ForceSet) MaxAbs(q Quantity) float64 {
	var maxVal float64
	for _, rec := range fs {
		ep, ok := rec[q]
		if !ok {
			continue
		}
		maxVal = math.Max(maxVal, math.Max(math.Abs(ep.I), math.Abs(ep.J)))
	}
	return maxVal
}

// Model is the read-only analysis result set: node coordinates, element
// connectivity and per-element internal forces, loaded once per run.
type Model struct {
	Nodes    CoordinateTable
	Elements ConnectivityTable
	Forces   ForceSet
}

// ElementIDs returns all element identifiers in ascending order.
func (m *Model) ElementIDs() []ElementID {
	ids := make([]ElementID, 0, len(m.Elements))
	for id := range m.Elements {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	return ids
}

// Validate checks referential integrity of the model: every element endpoint
// must exist in the coordinate table and no stored force value may be NaN.
func (m *Model) Validate() error {
	for id, c := range m.Elements {
		if _, ok := m.Nodes[c.I]; !ok {
			return fmt.Errorf("element %d references unknown node %d", id, c.I)
		}
		if _, ok := m.Nodes[c.J]; !ok {
			return fmt.Errorf("element %d references unknown node %d", id, c.J)
		}
	}
	for id, rec := range m.Forces {
		for q, ep := range rec {
			if math.IsNaN(ep.I) || math.IsNaN(ep.J) {
				return fmt.Errorf("element %d has NaN %s value", id, q)
			}
		}
	}
	return nil
}
