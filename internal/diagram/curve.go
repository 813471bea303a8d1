// Package diagram turns sampled girder quantities into renderable geometry:
// 2D force/moment curves over arc-length and 3D ribbon extrusions offset
// from the girder axis.
package diagram

import (
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/girder"
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/model"
)

// Sample is one point of a 2D diagram curve: position along the girder axis
// (m) and the quantity value at that position.
type Sample struct {
	S float64
	V float64
}

// Curve is the 2D diagram geometry for one girder and quantity: a piecewise
// linear curve through exactly two samples per element, (s_start, value_i)
// and (s_end, value_j). Where adjacent elements store different values at
// their shared node the curve contains two samples at the same position and
// renders the jump verbatim.
type Curve struct {
	Girder   string
	Quantity model.Quantity
	Points   []Sample
}

// BuildCurve samples the quantity along the girder path and emits the 2D
// curve geometry over cumulative arc-length.
func BuildCurve(p *girder.Path, q model.Quantity, forces model.ForceSet) (*Curve, error) {
	records, err := girder.SampleQuantity(girder.Girder{Name: p.Girder, Elements: p.Elements}, q, forces)
	if err != nil {
		return nil, err
	}

	arc := p.ArcLengths()
	points := make([]Sample, 0, 2*len(records))
	for k, rec := range records {
		points = append(points,
			Sample{S: arc[k], V: rec.I},
			Sample{S: arc[k+1], V: rec.J},
		)
	}

	return &Curve{Girder: p.Girder, Quantity: q, Points: points}, nil
}

// Extrema returns the minimum and maximum values of the curve.
func (c *Curve) Extrema() (minV, maxV float64) {
	if len(c.Points) == 0 {
		return 0, 0
	}
	minV, maxV = c.Points[0].V, c.Points[0].V
	for _, p := range c.Points[1:] {
		if p.V < minV {
			minV = p.V
		}
		if p.V > maxV {
			maxV = p.V
		}
	}
	return minV, maxV
}

// ValueAt linearly interpolates the curve value at position s within the
// element that covers s. At a shared node with a jump, the value at the end
// of the earlier element is returned.
func (c *Curve) ValueAt(s float64) float64 {
	if len(c.Points) == 0 {
		return 0
	}
	if s <= c.Points[0].S {
		return c.Points[0].V
	}
	for k := 0; k+1 < len(c.Points); k += 2 {
		s0, s1 := c.Points[k].S, c.Points[k+1].S
		if s > s1 {
			continue
		}
		if s1 == s0 {
			return c.Points[k+1].V
		}
		t := (s - s0) / (s1 - s0)
		return c.Points[k].V + t*(c.Points[k+1].V-c.Points[k].V)
	}
	return c.Points[len(c.Points)-1].V
}
