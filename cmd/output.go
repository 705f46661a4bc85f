package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/alexiusacademia/gocoiler/internal/diagram"
	"github.com/alexiusacademia/gocoiler/internal/report"
	"github.com/alexiusacademia/gocoiler/internal/winding"
	"github.com/spf13/pflag"
)

// outputFlags are the presentation options shared by length and position
type outputFlags struct {
	layers  bool
	diagram bool
	chart   bool
	image   string
	xlsx    string
	pdf     string
}

func (o *outputFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&o.layers, "layers", false, "Show the per-layer table")
	fs.BoolVar(&o.diagram, "diagram", false, "Show ASCII cross-section of the bundle")
	fs.BoolVar(&o.chart, "chart", false, "Show cumulative length chart")
	fs.StringVar(&o.image, "output", "", "Export cross-section to file (png, svg, pdf)")
	fs.StringVar(&o.xlsx, "xlsx", "", "Write an Excel report")
	fs.StringVar(&o.pdf, "pdf", "", "Write a PDF report")
}

// resolvePattern applies the --pattern flag over the configured default
func resolvePattern(flag string) (winding.Pattern, error) {
	if flag == "" {
		return cfg.Pattern, nil
	}
	return winding.ParsePattern(flag)
}

// solveCollecting runs the engine and keeps the layer breakdown
func solveCollecting(req winding.Request, opts winding.Options) (winding.Result, []winding.Layer, error) {
	var layers []winding.Layer
	opts.OnLayer = func(l winding.Layer) {
		layers = append(layers, l)
	}
	res, err := winding.Solve(req, opts)
	return res, layers, err
}

func printLayers(w io.Writer, layers []winding.Layer) {
	printSection(w, "LAYERS")
	tw := newTable(w)
	fmt.Fprintln(tw, "  Layer\tDiameter (mm)\tPipes\tTurn (mm)\tLayer (m)\tTotal (m)")
	for _, l := range layers {
		fmt.Fprintf(tw, "  %d\t%s\t%s/%d\t%s\t%s\t%s\n",
			l.Index,
			formatValue(l.Diameter, 1),
			formatValue(l.Pipes, 2), l.Capacity,
			formatValue(l.PipeLength, 1),
			formatValue(l.Length/1000, 3),
			formatValue(l.Cumulative/1000, 3))
	}
	tw.Flush()
	fmt.Fprintln(w)
}

// renderExtras prints and writes everything requested through outputFlags
func renderExtras(w io.Writer, o outputFlags, title string, req winding.Request, res winding.Result, layers []winding.Layer) error {
	data := diagram.WindingDiagramData{
		InnerDiameter: req.InnerDiameter,
		PipeDiameter:  req.PipeDiameter,
		Pattern:       req.Pattern,
		Layers:        layers,
	}
	switch {
	case res.CoilLength != nil:
		data.OuterDiameter = req.OuterDiameter
		data.BundleWidth = res.CoilLength.RealizedBundleWidth
	case res.EndPosition != nil:
		data.BundleWidth = res.EndPosition.BundleWidth
	}

	if o.layers {
		printLayers(w, layers)
	}
	if o.diagram {
		fmt.Fprintln(w, diagram.DrawASCIICrossSection(data))
	}
	if o.chart {
		fmt.Fprintln(w, diagram.LengthChart(layers, chartWidth()))
		fmt.Fprintln(w)
	}

	if o.image != "" {
		if err := diagram.ExportCrossSection(data, o.image); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(w, "Diagram exported to: %s\n", o.image)
	}

	rep := report.Report{
		Title:     title,
		Request:   req,
		Result:    res,
		Layers:    layers,
		Generated: time.Now(),
	}
	if o.xlsx != "" {
		if err := report.WriteXLSX(rep, o.xlsx); err != nil {
			return err
		}
		fmt.Fprintf(w, "Excel report written to: %s\n", o.xlsx)
	}
	if o.pdf != "" {
		if err := report.WritePDF(rep, o.pdf); err != nil {
			return err
		}
		fmt.Fprintf(w, "PDF report written to: %s\n", o.pdf)
	}
	return nil
}
