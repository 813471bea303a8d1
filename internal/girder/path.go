package girder

import (
	"math"

	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/model"
)

// Path is the resolved spatial form of one girder: the ordered node chain,
// the matching 3D coordinates and the element list that produced them.
// Invariant: len(Nodes) == len(Coords) == len(Elements)+1.
type Path struct {
	Girder   string
	Elements []model.ElementID
	Nodes    []model.NodeID
	Coords   []model.Point3
}

// Resolve chains the girder's elements into a node sequence and looks up
// the node coordinates, producing the girder's spatial path.
func Resolve(g Girder, m *model.Model) (*Path, error) {
	nodes, err := ResolveNodes(g, m.Elements)
	if err != nil {
		return nil, err
	}
	coords, err := BuildPath(nodes, m.Nodes)
	if err != nil {
		return nil, err
	}
	return &Path{
		Girder:   g.Name,
		Elements: g.Elements,
		Nodes:    nodes,
		Coords:   coords,
	}, nil
}

// BuildPath maps an ordered node sequence onto 3D coordinates. Pure lookup;
// a node absent from the coordinate table is fatal and names the node.
func BuildPath(nodes []model.NodeID, coords model.CoordinateTable) ([]model.Point3, error) {
	pts := make([]model.Point3, len(nodes))
	for k, id := range nodes {
		p, err := coords.Coordinate(id)
		if err != nil {
			return nil, err
		}
		pts[k] = p
	}
	return pts, nil
}

// ArcLengths returns the cumulative chord length at every node of the path,
// starting at zero. Chord length approximates arc length, which holds for
// the straight segments of a bridge girder.
func (p *Path) ArcLengths() []float64 {
	s := make([]float64, len(p.Coords))
	for k := 1; k < len(p.Coords); k++ {
		a, b := p.Coords[k-1], p.Coords[k]
		dx, dy, dz := b.X-a.X, b.Y-a.Y, b.Z-a.Z
		s[k] = s[k-1] + math.Sqrt(dx*dx+dy*dy+dz*dz)
	}
	return s
}

// Length returns the total chord length of the path.
func (p *Path) Length() float64 {
	s := p.ArcLengths()
	return s[len(s)-1]
}
