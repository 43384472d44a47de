package export

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"wireroute/core"
)

var (
	boxColor   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	routeColor = color.RGBA{R: 0, G: 110, B: 190, A: 255}
	pinColor   = color.RGBA{R: 200, G: 30, B: 30, A: 255}
)

// toPlot converts sheet nanometres to plot millimetres. The sheet y axis points
// down, so it is flipped to keep the picture the right way up.
func toPlot(p core.Position) plotter.XY {
	mm := float64(core.Millimeter)
	return plotter.XY{X: float64(p.X) / mm, Y: -float64(p.Y) / mm}
}

// PlotRoute draws the component boxes, the route and its end pins and saves the
// plot to file. The image format follows the file extension.
func PlotRoute(route core.RoutingPath, boxes []core.BoundingBox, file string, width, height vg.Length) error {
	format, err := FormatFromPath(file)
	if err != nil {
		return err
	}
	if !format.IsPlot() {
		return fmt.Errorf("cannot save a plot as %s", format)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s route, %.2f mm", route.Mode, route.TotalLength/float64(core.Millimeter))
	p.X.Label.Text = "X (mm)"
	p.Y.Label.Text = "Y (mm)"
	p.Add(plotter.NewGrid())

	if len(boxes) > 0 {
		labels := plotter.XYLabels{}
		for _, box := range boxes {
			corners := plotter.XYs{
				toPlot(box.TopLeft),
				toPlot(core.Position{X: box.BottomRight.X, Y: box.TopLeft.Y}),
				toPlot(box.BottomRight),
				toPlot(core.Position{X: box.TopLeft.X, Y: box.BottomRight.Y}),
			}
			poly, err := plotter.NewPolygon(corners)
			if err != nil {
				return fmt.Errorf("plotting box %s: %w", box.OwnerID, err)
			}
			poly.Color = boxColor
			poly.LineStyle.Width = vg.Points(0.5)
			p.Add(poly)

			labels.XYs = append(labels.XYs, toPlot(box.Center()))
			labels.Labels = append(labels.Labels, box.OwnerID)
		}
		l, err := plotter.NewLabels(labels)
		if err != nil {
			return fmt.Errorf("plotting labels: %w", err)
		}
		p.Add(l)
	}

	if points := route.Points(); len(points) > 0 {
		xys := make(plotter.XYs, len(points))
		for i, pt := range points {
			xys[i] = toPlot(pt)
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("plotting route: %w", err)
		}
		line.Color = routeColor
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add("route", line)

		pins, err := plotter.NewScatter(plotter.XYs{xys[0], xys[len(xys)-1]})
		if err != nil {
			return fmt.Errorf("plotting pins: %w", err)
		}
		pins.GlyphStyle.Shape = draw.CircleGlyph{}
		pins.GlyphStyle.Radius = vg.Points(3)
		pins.GlyphStyle.Color = pinColor
		p.Add(pins)
		p.Legend.Add("pins", pins)
	}

	p.Legend.Top = true
	if err := p.Save(width, height, file); err != nil {
		return fmt.Errorf("saving plot: %w", err)
	}
	return nil
}
