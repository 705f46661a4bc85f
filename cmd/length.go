package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocoiler/internal/winding"
	"github.com/spf13/cobra"
)

var (
	// Drum and pipe (mm)
	lengthPipe    float64
	lengthInner   float64
	lengthOuter   float64
	lengthWidth   float64
	lengthPattern string

	lengthOutput outputFlags
)

var lengthCmd = &cobra.Command{
	Use:   "length",
	Short: "Calculate the pipe length that fits a drum",
	Long: `Calculate how much pipe can be wound onto a drum of known inner
diameter, outer diameter limit and bundle width.

Layers are added while the next layer still fits inside the outer
diameter limit. The first layer is always counted.

Patterns:
  uneven (bb1)    - odd layers hold floor(W/ND) pipes, even layers one less
  offset (bb0.5)  - every layer holds floor(W/ND - 0.5) pipes

Examples:
  # 20 mm pipe on a 500 mm core, 800 mm flange, 2000 mm between flanges
  gocoiler length -p 20 -i 500 -o 800 -w 2000

  # Offset pattern with the layer table and a drawing
  gocoiler length -p 20 -i 500 -o 800 -w 2000 --pattern bb0.5 --layers --output coil.png`,
	RunE: runLength,
}

func init() {
	rootCmd.AddCommand(lengthCmd)

	lengthCmd.Flags().Float64VarP(&lengthPipe, "pipe-diameter", "p", 0, "Pipe outer diameter ND (mm) [required]")
	lengthCmd.Flags().Float64VarP(&lengthInner, "inner-diameter", "i", 0, "Drum inner diameter ID (mm) [required]")
	lengthCmd.Flags().Float64VarP(&lengthOuter, "outer-diameter", "o", 0, "Drum outer diameter limit OD (mm) [required]")
	lengthCmd.Flags().Float64VarP(&lengthWidth, "width", "w", 0, "Bundle width W (mm) [required]")
	lengthCmd.Flags().StringVar(&lengthPattern, "pattern", "", "Winding pattern: uneven|bb1 or offset|bb0.5 (default from COILER_PATTERN, else uneven)")

	lengthCmd.MarkFlagRequired("pipe-diameter")
	lengthCmd.MarkFlagRequired("inner-diameter")
	lengthCmd.MarkFlagRequired("outer-diameter")
	lengthCmd.MarkFlagRequired("width")

	lengthOutput.register(lengthCmd.Flags())
}

func runLength(cmd *cobra.Command, args []string) error {
	pattern, err := resolvePattern(lengthPattern)
	if err != nil {
		return err
	}

	req := winding.Request{
		PipeDiameter:  lengthPipe,
		InnerDiameter: lengthInner,
		OuterDiameter: lengthOuter,
		BundleWidth:   lengthWidth,
		Pattern:       pattern,
		Mode:          winding.CoilLength,
	}
	res, layers, err := solveCollecting(req, cfg.Options())
	if err != nil {
		return err
	}
	c := res.CoilLength

	w := cmd.OutOrStdout()
	printHeader(w, "COIL LENGTH - "+pattern.Label())

	printSection(w, "INPUT DATA")
	tw := newTable(w)
	fmt.Fprintf(tw, "  Pipe Diameter (ND):\t%s mm\n", formatValue(req.PipeDiameter, 1))
	fmt.Fprintf(tw, "  Inner Diameter (ID):\t%s mm\n", formatValue(req.InnerDiameter, 0))
	fmt.Fprintf(tw, "  Outer Diameter Limit (OD):\t%s mm\n", formatValue(req.OuterDiameter, 0))
	fmt.Fprintf(tw, "  Bundle Width (W):\t%s mm\n", formatValue(req.BundleWidth, 0))
	fmt.Fprintf(tw, "  Layer Pitch (ND·√3/2):\t%s mm\n", formatValue(winding.HexPitch(req.PipeDiameter), 2))
	tw.Flush()
	fmt.Fprintln(w)

	printSection(w, "RESULT")
	fmt.Fprintln(w, resultBox(fmt.Sprintf("COIL LENGTH = %s m", formatValue(c.CoilLength, 3))))
	fmt.Fprintln(w)
	tw = newTable(w)
	fmt.Fprintf(tw, "  Realized Outer Diameter:\t%s mm\n", formatValue(c.RealizedOuterDiameter, 0))
	fmt.Fprintf(tw, "  Realized Bundle Width:\t%s mm\n", formatValue(c.RealizedBundleWidth, 0))
	fmt.Fprintf(tw, "  Layers:\t%d\n", c.Layers)
	tw.Flush()
	fmt.Fprintln(w)

	if c.RealizedOuterDiameter > req.OuterDiameter {
		fmt.Fprintln(w, "  Note: a single layer already exceeds the outer diameter limit.")
		fmt.Fprintln(w)
	}

	return renderExtras(w, lengthOutput, "Coil Length", req, res, layers)
}
