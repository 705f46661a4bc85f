// Package report writes winding calculations to spreadsheets and PDF files.
package report

import (
	"fmt"
	"math"
	"time"

	"github.com/alexiusacademia/gocoiler/internal/winding"
	"gonum.org/v1/gonum/floats"
)

// Report is a single calculation with its per-layer breakdown
type Report struct {
	Title     string
	Request   winding.Request
	Result    winding.Result
	Layers    []winding.Layer
	Generated time.Time
}

// Row is one labelled value of a summary table
type Row struct {
	Label string
	Value string
	Unit  string
}

// Inputs lists the request parameters relevant to its mode
func (r Report) Inputs() []Row {
	req := r.Request
	rows := []Row{
		{"Mode", req.Mode.String(), ""},
		{"Pattern", req.Pattern.Label(), ""},
		{"Pipe diameter (ND)", fmt.Sprintf("%.1f", req.PipeDiameter), "mm"},
		{"Inner diameter (ID)", fmt.Sprintf("%.0f", req.InnerDiameter), "mm"},
	}
	if req.Mode == winding.CoilLength {
		rows = append(rows, Row{"Outer diameter (OD)", fmt.Sprintf("%.0f", req.OuterDiameter), "mm"})
	}
	rows = append(rows, Row{"Bundle width (W)", fmt.Sprintf("%.0f", req.BundleWidth), "mm"})
	if req.Mode == winding.EndPosition {
		rows = append(rows, Row{"Pipe length (L)", fmt.Sprintf("%.3f", req.PipeLength), "m"})
	}
	return rows
}

// Outputs lists the result values
func (r Report) Outputs() []Row {
	switch {
	case r.Result.CoilLength != nil:
		c := r.Result.CoilLength
		return []Row{
			{"Coil length", fmt.Sprintf("%.3f", c.CoilLength), "m"},
			{"Realized outer diameter", fmt.Sprintf("%.0f", c.RealizedOuterDiameter), "mm"},
			{"Realized bundle width", fmt.Sprintf("%.0f", c.RealizedBundleWidth), "mm"},
			{"Layers", fmt.Sprintf("%d", c.Layers), ""},
		}
	case r.Result.EndPosition != nil:
		e := r.Result.EndPosition
		return []Row{
			{"Outer diameter", fmt.Sprintf("%.0f", e.OuterDiameter), "mm"},
			{"Bundle width", fmt.Sprintf("%.0f", e.BundleWidth), "mm"},
			{"Bundle height", fmt.Sprintf("%.0f", e.BundleHeight), "mm"},
			{"Number of layers", fmt.Sprintf("%d", e.NumberOfLayers), ""},
			{"Pipes on last layer", fmt.Sprintf("%.2f / %d", e.PipesOnLastLayer, e.LastLayerCapacity), ""},
			{"Number of rotations", fmt.Sprintf("%.2f", e.NumberOfRotations), ""},
		}
	}
	return nil
}

// LayerStats summarizes a layer breakdown
type LayerStats struct {
	Layers      int
	Pipes       float64 // total pipe turns
	Length      float64 // total length (m)
	MaxDiameter float64 // largest centerline diameter (mm)
}

// Stats computes totals over the layer breakdown
func Stats(layers []winding.Layer) LayerStats {
	if len(layers) == 0 {
		return LayerStats{}
	}

	lengths := make([]float64, len(layers))
	pipes := make([]float64, len(layers))
	diameters := make([]float64, len(layers))
	for i, l := range layers {
		lengths[i] = l.Length
		pipes[i] = l.Pipes
		diameters[i] = l.Diameter
	}

	return LayerStats{
		Layers:      len(layers),
		Pipes:       floats.Sum(pipes),
		Length:      floats.Sum(lengths) / 1000,
		MaxDiameter: floats.Max(diameters),
	}
}

// BatchRow is one job of a batch run. Err is set instead of Result when the
// job failed.
type BatchRow struct {
	Name    string
	Request winding.Request
	Result  winding.Result
	Err     error

	// RawMode and RawPattern are the names as written in the job file. They
	// are set when no Request could be built from them.
	RawMode    string
	RawPattern string
}

// Labels returns the mode and pattern names to display for the row
func (b BatchRow) Labels() (mode, pattern string) {
	if b.RawMode != "" || b.RawPattern != "" {
		return orDash(b.RawMode), orDash(b.RawPattern)
	}
	return b.Request.Mode.String(), b.Request.Pattern.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func round(v float64, digits int) float64 {
	p := math.Pow(10, float64(digits))
	return math.Round(v*p) / p
}
