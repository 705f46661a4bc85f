package winding

import (
	"fmt"
	"strings"
)

// Pattern selects how pipes are laid across the bundle width
type Pattern int

const (
	// UnevenLayers alternates full and full-minus-one pipe counts ("BB1")
	UnevenLayers Pattern = iota
	// EvenLayersOffset uses a constant half-pipe-reduced count ("BB0.5")
	EvenLayersOffset
)

// String returns the short name used on the command line
func (p Pattern) String() string {
	switch p {
	case UnevenLayers:
		return "uneven"
	case EvenLayersOffset:
		return "offset"
	default:
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
}

// Label returns the trade designation of the pattern
func (p Pattern) Label() string {
	switch p {
	case UnevenLayers:
		return "BB1 (uneven layers)"
	case EvenLayersOffset:
		return "BB0.5 (even layers, offset)"
	default:
		return p.String()
	}
}

func (p Pattern) valid() bool {
	return p == UnevenLayers || p == EvenLayersOffset
}

// ParsePattern converts a command line or job file name into a Pattern
func ParsePattern(s string) (Pattern, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "uneven", "uneven_layers", "bb1":
		return UnevenLayers, nil
	case "offset", "even", "even_layers_offset", "bb0.5":
		return EvenLayersOffset, nil
	}
	return 0, fmt.Errorf("unknown winding pattern %q (use uneven/bb1 or offset/bb0.5)", s)
}

// Mode selects which quantity the engine solves for
type Mode int

const (
	// CoilLength computes the pipe length that fits a drum envelope
	CoilLength Mode = iota
	// EndPosition computes the drum envelope reached by a known pipe length
	EndPosition
)

func (m Mode) String() string {
	switch m {
	case CoilLength:
		return "coil-length"
	case EndPosition:
		return "end-position"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Request holds the winding parameters for a single calculation.
// Diameters and widths are in millimetres, PipeLength is in metres.
type Request struct {
	PipeDiameter  float64 // ND - pipe/profile outer diameter (mm)
	InnerDiameter float64 // ID - drum inner diameter (mm)
	OuterDiameter float64 // OD - drum outer diameter limit (mm), coil-length mode
	BundleWidth   float64 // W - axial width available for winding (mm)
	PipeLength    float64 // L - pipe length to wind (m), end-position mode

	Pattern Pattern
	Mode    Mode
}

// Layer describes one radial wrap of the winding.
// Layers are only handed to Options.OnLayer and never kept by the engine.
type Layer struct {
	Index      int     // 1-based layer number
	Diameter   float64 // centerline diameter ODi (mm)
	Capacity   int     // pipes the layer holds when full
	Pipes      float64 // pipes actually laid (fractional on a partial layer)
	PipeLength float64 // helix length of one pipe turn (mm)
	Length     float64 // length contributed by this layer (mm)
	Cumulative float64 // length wound up to and including this layer (mm)
}

// CoilLengthResult is the outcome of a coil-length calculation
type CoilLengthResult struct {
	CoilLength            float64 // pipe length that fits (m), rounded to the millimetre
	RealizedOuterDiameter float64 // outer diameter actually reached (mm)
	RealizedBundleWidth   float64 // width actually occupied (mm)
	Layers                int     // number of layers wound
}

// EndPositionResult is the outcome of an end-position calculation
type EndPositionResult struct {
	OuterDiameter     float64 // outer diameter of the winding (mm)
	BundleWidth       float64 // width occupied (mm)
	BundleHeight      float64 // radial height of the winding (mm)
	NumberOfLayers    int     // layer on which winding stopped
	PipesOnLastLayer  float64 // occupancy of the last layer, quarter-pipe precision
	LastLayerCapacity int     // full capacity of the last layer
	NumberOfRotations float64 // drum rotations needed for the whole length
}

// Result carries exactly one of the mode-specific results
type Result struct {
	Mode        Mode
	CoilLength  *CoilLengthResult
	EndPosition *EndPositionResult
}

// Options tunes a solve without changing its semantics
type Options struct {
	// MaxIterations bounds the solver loops. Zero means DefaultMaxIterations.
	MaxIterations int

	// SafetyFactor multiplies the target length in end-position mode.
	// Zero means 1.
	SafetyFactor float64

	// OnLayer, when set, is called once per layer as it is computed
	OnLayer func(Layer)
}

// DefaultMaxIterations is the loop guard used when Options.MaxIterations is zero
const DefaultMaxIterations = 10_000_000

func (o Options) maxIterations() int {
	if o.MaxIterations <= 0 {
		return DefaultMaxIterations
	}
	return o.MaxIterations
}

func (o Options) safetyFactor() float64 {
	if o.SafetyFactor <= 0 {
		return 1
	}
	return o.SafetyFactor
}

func (o Options) emit(l Layer) {
	if o.OnLayer != nil {
		o.OnLayer(l)
	}
}
