package diagram

import (
	"math"

	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/girder"
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/model"
)

// Options configure the 3D diagram geometry. Direction and scale are fixed
// display constants; they are never derived from the dataset by the
// geometry generator itself.
type Options struct {
	// Up is the displacement direction for quantity offsets. Need not be
	// normalized; a zero vector falls back to +Y.
	Up model.Point3
	// Scale converts a quantity value into a displacement distance (m per
	// kN or kN·m).
	Scale float64
}

// DefaultSegments is the default mesh interpolation resolution per element.
const DefaultSegments = 50

func (o Options) up() model.Point3 {
	u := o.Up
	n := math.Sqrt(u.X*u.X + u.Y*u.Y + u.Z*u.Z)
	if n == 0 {
		return model.Point3{Y: 1}
	}
	return model.Point3{X: u.X / n, Y: u.Y / n, Z: u.Z / n}
}

// Ribbon is the 3D diagram geometry for one girder and quantity: one axis
// point and one offset point per node of the girder path, so the ribbon has
// exactly twice as many vertices as the path has nodes. Interior nodes use
// value_i of the outgoing element; the two path ends use the single
// boundary value. Records keeps the verbatim per-element endpoint pairs so
// the renderer can show jumps that the per-node sampling flattens.
type Ribbon struct {
	Girder   string
	Quantity model.Quantity
	Elements []model.ElementID
	Nodes    []model.NodeID
	Axis     []model.Point3
	Offset   []model.Point3
	Values   []float64
	Records  []model.Endpoints

	up    model.Point3
	scale float64
}

// BuildRibbon generates the ribbon geometry for one girder path.
func BuildRibbon(p *girder.Path, q model.Quantity, forces model.ForceSet, opts Options) (*Ribbon, error) {
	records, err := girder.SampleQuantity(girder.Girder{Name: p.Girder, Elements: p.Elements}, q, forces)
	if err != nil {
		return nil, err
	}

	up := opts.up()
	n := len(p.Coords)
	r := &Ribbon{
		Girder:   p.Girder,
		Quantity: q,
		Elements: p.Elements,
		Nodes:    p.Nodes,
		Axis:     make([]model.Point3, n),
		Offset:   make([]model.Point3, n),
		Values:   make([]float64, n),
		Records:  records,
		up:       up,
		scale:    opts.Scale,
	}

	for k := 0; k < n; k++ {
		var v float64
		switch {
		case k < len(records):
			v = records[k].I // outgoing element at interior nodes and the start
		default:
			v = records[len(records)-1].J // far end of the path
		}
		r.Axis[k] = p.Coords[k]
		r.Offset[k] = displace(p.Coords[k], up, v*opts.Scale)
		r.Values[k] = v
	}

	return r, nil
}

func displace(p, dir model.Point3, d float64) model.Point3 {
	return model.Point3{X: p.X + dir.X*d, Y: p.Y + dir.Y*d, Z: p.Z + dir.Z*d}
}

// Mesh is one element's triangulated extrusion strip: vertex coordinates,
// triangle indices and per-vertex intensity (absolute quantity value).
type Mesh struct {
	Element model.ElementID
	X, Y, Z []float64
	I, J, K []int
	Value   []float64
}

// Meshes triangulates the ribbon element by element, interpolating linearly
// between the element's own endpoint values. Because element k ends at its
// stored value_j while element k+1 starts at its stored value_i, a dataset
// discontinuity at the shared node survives as a step between the two
// strips; nothing is averaged or smoothed.
func (r *Ribbon) Meshes(segments int) []Mesh {
	if segments < 1 {
		segments = 1
	}
	meshes := make([]Mesh, 0, len(r.Records))

	for k, rec := range r.Records {
		a, b := r.Axis[k], r.Axis[k+1]
		m := Mesh{
			Element: r.Elements[k],
			X:       make([]float64, 0, 2*(segments+1)),
			Y:       make([]float64, 0, 2*(segments+1)),
			Z:       make([]float64, 0, 2*(segments+1)),
			Value:   make([]float64, 0, 2*(segments+1)),
		}

		for s := 0; s <= segments; s++ {
			t := float64(s) / float64(segments)
			base := model.Point3{
				X: a.X + t*(b.X-a.X),
				Y: a.Y + t*(b.Y-a.Y),
				Z: a.Z + t*(b.Z-a.Z),
			}
			v := rec.I + t*(rec.J-rec.I)
			top := displace(base, r.up, v*r.scale)

			m.X = append(m.X, base.X, top.X)
			m.Y = append(m.Y, base.Y, top.Y)
			m.Z = append(m.Z, base.Z, top.Z)
			m.Value = append(m.Value, math.Abs(v), math.Abs(v))
		}

		for s := 0; s < segments; s++ {
			b0 := 2 * s
			m.I = append(m.I, b0, b0+1)
			m.J = append(m.J, b0+1, b0+3)
			m.K = append(m.K, b0+2, b0+2)
		}

		meshes = append(meshes, m)
	}

	return meshes
}

// Edge is a boundary polyline of the ribbon, drawn on top of the meshes.
type Edge struct {
	X, Y, Z []float64
}

// Edges returns the ribbon's boundary edges per element: a vertical edge at
// each element end and a top edge joining the two displaced peaks.
func (r *Ribbon) Edges() []Edge {
	edges := make([]Edge, 0, 3*len(r.Records))
	for k, rec := range r.Records {
		a, b := r.Axis[k], r.Axis[k+1]
		topI := displace(a, r.up, rec.I*r.scale)
		topJ := displace(b, r.up, rec.J*r.scale)

		edges = append(edges,
			Edge{X: []float64{a.X, topI.X}, Y: []float64{a.Y, topI.Y}, Z: []float64{a.Z, topI.Z}},
			Edge{X: []float64{b.X, topJ.X}, Y: []float64{b.Y, topJ.Y}, Z: []float64{b.Z, topJ.Z}},
			Edge{X: []float64{topI.X, topJ.X}, Y: []float64{topI.Y, topJ.Y}, Z: []float64{topI.Z, topJ.Z}},
		)
	}
	return edges
}
