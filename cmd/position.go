package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gocoiler/internal/winding"
	"github.com/spf13/cobra"
)

var (
	positionPipe    float64
	positionInner   float64
	positionWidth   float64
	positionLength  float64 // m
	positionSafety  float64
	positionPattern string

	positionOutput outputFlags
)

var positionCmd = &cobra.Command{
	Use:   "position",
	Short: "Calculate where a known pipe length ends on the drum",
	Long: `Calculate the outer diameter, bundle height and layer count
reached when winding a known length of pipe onto a drum.

Pipes are laid a quarter turn at a time, so the last layer is reported
with quarter-pipe precision.

A safety factor G scales the pipe length before winding (L × G).

Examples:
  # 500 m of 20 mm pipe on a 500 mm core, 2000 mm bundle width
  gocoiler position -p 20 -i 500 -w 2000 -l 500

  # With a 5% allowance and the offset pattern
  gocoiler position -p 20 -i 500 -w 2000 -l 500 --safety 1.05 --pattern offset`,
	RunE: runPosition,
}

func init() {
	rootCmd.AddCommand(positionCmd)

	positionCmd.Flags().Float64VarP(&positionPipe, "pipe-diameter", "p", 0, "Pipe outer diameter ND (mm) [required]")
	positionCmd.Flags().Float64VarP(&positionInner, "inner-diameter", "i", 0, "Drum inner diameter ID (mm) [required]")
	positionCmd.Flags().Float64VarP(&positionWidth, "width", "w", 0, "Bundle width W (mm) [required]")
	positionCmd.Flags().Float64VarP(&positionLength, "length", "l", 0, "Pipe length L (m) [required]")
	positionCmd.Flags().Float64Var(&positionSafety, "safety", 0, "Safety factor G applied to L (default from COILER_SAFETY_FACTOR, else 1)")
	positionCmd.Flags().StringVar(&positionPattern, "pattern", "", "Winding pattern: uneven|bb1 or offset|bb0.5 (default from COILER_PATTERN, else uneven)")

	positionCmd.MarkFlagRequired("pipe-diameter")
	positionCmd.MarkFlagRequired("inner-diameter")
	positionCmd.MarkFlagRequired("width")
	positionCmd.MarkFlagRequired("length")

	positionOutput.register(positionCmd.Flags())
}

func runPosition(cmd *cobra.Command, args []string) error {
	pattern, err := resolvePattern(positionPattern)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	if cmd.Flags().Changed("safety") {
		if !(positionSafety > 0) {
			return fmt.Errorf("--safety must be greater than 0")
		}
		opts.SafetyFactor = positionSafety
	}

	req := winding.Request{
		PipeDiameter:  positionPipe,
		InnerDiameter: positionInner,
		BundleWidth:   positionWidth,
		PipeLength:    positionLength,
		Pattern:       pattern,
		Mode:          winding.EndPosition,
	}
	res, layers, err := solveCollecting(req, opts)
	if err != nil {
		return err
	}
	e := res.EndPosition

	w := cmd.OutOrStdout()
	printHeader(w, "END POSITION - "+pattern.Label())

	printSection(w, "INPUT DATA")
	tw := newTable(w)
	fmt.Fprintf(tw, "  Pipe Diameter (ND):\t%s mm\n", formatValue(req.PipeDiameter, 1))
	fmt.Fprintf(tw, "  Inner Diameter (ID):\t%s mm\n", formatValue(req.InnerDiameter, 0))
	fmt.Fprintf(tw, "  Bundle Width (W):\t%s mm\n", formatValue(req.BundleWidth, 0))
	fmt.Fprintf(tw, "  Pipe Length (L):\t%s m\n", formatValue(req.PipeLength, 3))
	if opts.SafetyFactor != 0 && opts.SafetyFactor != 1 {
		fmt.Fprintf(tw, "  Safety Factor (G):\t%s\n", formatValue(opts.SafetyFactor, 3))
		fmt.Fprintf(tw, "  Wound Length (L×G):\t%s m\n", formatValue(req.PipeLength*opts.SafetyFactor, 3))
	}
	tw.Flush()
	fmt.Fprintln(w)

	printSection(w, "RESULT")
	fmt.Fprintln(w, resultBox(
		fmt.Sprintf("OUTER DIAMETER = %s mm", formatValue(e.OuterDiameter, 0)),
		fmt.Sprintf("BUNDLE HEIGHT  = %s mm", formatValue(e.BundleHeight, 0)),
	))
	fmt.Fprintln(w)
	tw = newTable(w)
	fmt.Fprintf(tw, "  Bundle Width:\t%s mm\n", formatValue(e.BundleWidth, 0))
	fmt.Fprintf(tw, "  Number of Layers:\t%d\n", e.NumberOfLayers)
	fmt.Fprintf(tw, "  Pipes on Last Layer:\t%s of %d\n", formatValue(e.PipesOnLastLayer, 2), e.LastLayerCapacity)
	fmt.Fprintf(tw, "  Number of Rotations:\t%s\n", formatValue(e.NumberOfRotations, 2))
	tw.Flush()
	fmt.Fprintln(w)

	return renderExtras(w, positionOutput, "End Position", req, res, layers)
}
