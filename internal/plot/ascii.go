package plot

import (
	"fmt"

	"github.com/guptarohit/asciigraph"

	"github.com/DigitalDetectiv/sfd-bmd-central-girder/internal/diagram"
)

// Sketch renders a terminal preview of a diagram curve. The curve is
// resampled at width evenly spaced positions along the girder; the exported
// image, not the preview, is the faithful rendering of jumps.
func Sketch(c *diagram.Curve, width, height int) string {
	if len(c.Points) < 2 {
		return ""
	}
	if width < 2 {
		width = 60
	}
	if height < 2 {
		height = 10
	}

	start := c.Points[0].S
	span := c.Points[len(c.Points)-1].S - start
	series := make([]float64, width)
	for i := range series {
		s := start + span*float64(i)/float64(width-1)
		series[i] = c.ValueAt(s)
	}

	caption := fmt.Sprintf("%s (%s), %s", c.Quantity.Label(), c.Quantity.Unit(), c.Girder)
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}
