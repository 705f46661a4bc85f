package winding

import "math"

// HexPitch returns the radial distance between successive layer centerlines.
// Each layer nests into the grooves of the one beneath it, so the pitch is
// ND·√3/2 rather than ND.
func HexPitch(pipeDiameter float64) float64 {
	return pipeDiameter * math.Sqrt(3) / 2
}

// LayerDiameter returns the centerline diameter of layer i (1-based)
func LayerDiameter(innerDiameter, pipeDiameter float64, i int) float64 {
	return innerDiameter + pipeDiameter + 2*float64(i-1)*HexPitch(pipeDiameter)
}

// HelixLengthPerPipe returns the length of one pipe turn on a layer of the
// given centerline diameter: a helix of circumference π·D advancing one pipe
// diameter per turn.
func HelixLengthPerPipe(diameter, pipeDiameter float64) float64 {
	c := math.Pi * diameter
	return math.Sqrt(c*c + pipeDiameter*pipeDiameter)
}

// MaxLayerCapacity is the largest per-layer pipe count the solvers accept.
// Counts above it are not exact as float64 and overflow the quarter-step
// arithmetic.
const MaxLayerCapacity = 1 << 53

// layerCapacity returns the unconverted full-layer pipe count:
// floor(W/ND) for uneven layers, floor(W/ND - 0.5) for offset layers.
// It may be +Inf when ND is tiny against W.
func (p Pattern) layerCapacity(bundleWidth, pipeDiameter float64) float64 {
	if p == EvenLayersOffset {
		return math.Floor(bundleWidth/pipeDiameter - 0.5)
	}
	return math.Floor(bundleWidth / pipeDiameter)
}

// FullCapacity returns the pipe count of a full layer for the pattern.
// The count saturates at MaxLayerCapacity.
func (p Pattern) FullCapacity(bundleWidth, pipeDiameter float64) int {
	c := p.layerCapacity(bundleWidth, pipeDiameter)
	if !(c <= MaxLayerCapacity) {
		return MaxLayerCapacity
	}
	return int(c)
}

// checkCapacity fails when the full-layer count cannot be represented
func (p Pattern) checkCapacity(op string, bundleWidth, pipeDiameter float64) error {
	if c := p.layerCapacity(bundleWidth, pipeDiameter); !(c <= MaxLayerCapacity) {
		return fault(op, ErrNonFinite, "layer capacity %g out of range", c)
	}
	return nil
}

// Capacity returns the pipe count of layer i (1-based).
// Uneven layers lose one pipe on every even layer.
func (p Pattern) Capacity(i int, bundleWidth, pipeDiameter float64) int {
	n := p.FullCapacity(bundleWidth, pipeDiameter)
	if p == UnevenLayers && i%2 == 0 {
		return n - 1
	}
	return n
}

// BundleWidth returns the axial width actually occupied by the winding
func (p Pattern) BundleWidth(bundleWidth, pipeDiameter float64) float64 {
	n := float64(p.FullCapacity(bundleWidth, pipeDiameter))
	if p == EvenLayersOffset {
		return n*pipeDiameter + pipeDiameter/2
	}
	return n * pipeDiameter
}

func finite(values ...float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
