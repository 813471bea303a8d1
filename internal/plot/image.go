// Package plot renders diagram geometry to 2D images and terminal previews.
package plot

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/diagram"
	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/model"
)

// curveColor returns the line and fill colors for a quantity. The fill is a
// translucent version of the line color.
func curveColor(q model.Quantity) (line, fill color.RGBA) {
	switch q {
	case model.ShearVy:
		line = color.RGBA{R: 196, G: 118, B: 202, A: 255}
	default:
		line = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	}
	fill = line
	fill.A = 77
	return line, fill
}

// ExportCurve exports a 2D diagram curve to an image file. The format
// follows the file extension (png, svg, pdf); anything else gets ".png"
// appended. The curve is drawn exactly through its samples: jumps at shared
// nodes appear as vertical steps, never smoothed.
func ExportCurve(c *diagram.Curve, filename string) error {
	if len(c.Points) == 0 {
		return fmt.Errorf("curve for %s has no samples", c.Girder)
	}

	p := plot.New()
	title := "Bending Moment Diagram (BMD)"
	if c.Quantity == model.ShearVy {
		title = "Shear Force Diagram (SFD)"
	}
	p.Title.Text = fmt.Sprintf("%s\n%s", title, c.Girder)
	p.X.Label.Text = "Position along Girder (m)"
	p.Y.Label.Text = fmt.Sprintf("%s (%s)", c.Quantity.Label(), c.Quantity.Unit())

	lineColor, fillColor := curveColor(c.Quantity)

	p.Add(plotter.NewGrid())

	// Filled area between the curve and the zero axis.
	area := make(plotter.XYs, 0, len(c.Points)+2)
	area = append(area, plotter.XY{X: c.Points[0].S, Y: 0})
	for _, s := range c.Points {
		area = append(area, plotter.XY{X: s.S, Y: s.V})
	}
	area = append(area, plotter.XY{X: c.Points[len(c.Points)-1].S, Y: 0})
	fillPoly, err := plotter.NewPolygon(area)
	if err != nil {
		return err
	}
	fillPoly.Color = fillColor
	fillPoly.LineStyle.Color = color.Transparent
	p.Add(fillPoly)

	// Diagram curve through every sample in path order.
	pts := make(plotter.XYs, len(c.Points))
	for i, s := range c.Points {
		pts[i] = plotter.XY{X: s.S, Y: s.V}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2.5)
	line.LineStyle.Color = lineColor
	p.Add(line)

	markers, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	markers.GlyphStyle.Color = lineColor
	markers.GlyphStyle.Radius = vg.Points(3)
	markers.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(markers)

	// Zero axis reference line.
	zeroLine, err := plotter.NewLine(plotter.XYs{
		{X: c.Points[0].S, Y: 0},
		{X: c.Points[len(c.Points)-1].S, Y: 0},
	})
	if err != nil {
		return err
	}
	zeroLine.LineStyle.Width = vg.Points(1.2)
	zeroLine.LineStyle.Color = color.Gray{Y: 64}
	p.Add(zeroLine)

	width := 14 * vg.Inch
	height := 5 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
