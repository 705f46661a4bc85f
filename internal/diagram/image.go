package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gocoiler/internal/winding"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// maxDrawnPipes caps the number of pipe outlines in an exported image
const maxDrawnPipes = 6000

// ExportCrossSection exports the winding cross-section to an image file.
// The format follows the extension: .png, .svg or .pdf (default .png).
func ExportCrossSection(data WindingDiagramData, filename string) error {
	if len(data.Layers) == 0 {
		return fmt.Errorf("nothing to draw: no layers")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Winding Cross-Section - %s", data.Pattern.Label())
	p.X.Label.Text = "Axial position (mm)"
	p.Y.Label.Text = "Radius (mm)"

	nd := data.PipeDiameter
	core := data.InnerDiameter / 2
	top := data.Layers[len(data.Layers)-1].Diameter/2 + nd/2
	if data.OuterDiameter > 0 {
		top = math.Max(top, data.OuterDiameter/2)
	}

	// Drum core
	coreLine, err := plotter.NewLine(plotter.XYs{
		{X: -nd, Y: core},
		{X: data.BundleWidth + nd, Y: core},
	})
	if err != nil {
		return err
	}
	coreLine.LineStyle.Width = vg.Points(3)
	coreLine.LineStyle.Color = color.Black
	p.Add(coreLine)

	// Flanges
	for _, x := range []float64{0, data.BundleWidth} {
		flange, err := plotter.NewLine(plotter.XYs{{X: x, Y: core}, {X: x, Y: top}})
		if err != nil {
			return err
		}
		flange.LineStyle.Width = vg.Points(1.5)
		flange.LineStyle.Color = color.Gray{Y: 96}
		p.Add(flange)
	}

	// Outer diameter limit
	if data.OuterDiameter > 0 {
		limit, err := plotter.NewLine(plotter.XYs{
			{X: -nd, Y: data.OuterDiameter / 2},
			{X: data.BundleWidth + nd, Y: data.OuterDiameter / 2},
		})
		if err != nil {
			return err
		}
		limit.LineStyle.Width = vg.Points(1.5)
		limit.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		limit.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(limit)
	}

	// Pipes
	drawn := 0
	for _, l := range data.Layers {
		for _, x := range PipeCenters(l, nd) {
			if drawn >= maxDrawnPipes {
				break
			}
			pipe, err := plotter.NewPolygon(circle(x, l.Diameter/2, nd/2, 16))
			if err != nil {
				return err
			}
			pipe.Color = color.RGBA{R: 100, G: 149, B: 237, A: 150}
			pipe.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
			pipe.LineStyle.Width = vg.Points(0.5)
			p.Add(pipe)
			drawn++
		}
	}

	// Annotations
	last := data.Layers[len(data.Layers)-1]
	labels := []struct {
		x, y float64
		text string
	}{
		{data.BundleWidth + nd, core, fmt.Sprintf("ID=%.0fmm", data.InnerDiameter)},
		{data.BundleWidth + nd, last.Diameter/2 + nd/2, fmt.Sprintf("%d layers", last.Index)},
	}
	if data.OuterDiameter > 0 {
		labels = append(labels, struct {
			x, y float64
			text string
		}{-nd, data.OuterDiameter / 2, fmt.Sprintf("OD=%.0fmm", data.OuterDiameter)})
	}

	for _, lbl := range labels {
		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: lbl.x, Y: lbl.y}},
			Labels: []string{lbl.text},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	width := 10 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}

// PipeCenters returns the axial centre positions (mm) of the pipes laid on a
// layer, measured from the left flange. Even layers nest half a pipe in.
func PipeCenters(l winding.Layer, pipeDiameter float64) []float64 {
	n := int(math.Ceil(l.Pipes))
	if n <= 0 {
		return nil
	}

	offset := pipeDiameter / 2
	if l.Index%2 == 0 {
		offset += pipeDiameter / 2
	}

	centres := make([]float64, n)
	for k := range centres {
		centres[k] = offset + float64(k)*pipeDiameter
	}
	return centres
}

func circle(cx, cy, r float64, segments int) plotter.XYs {
	pts := make(plotter.XYs, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(segments)
		pts[i] = plotter.XY{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)}
	}
	return pts
}
