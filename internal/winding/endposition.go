package winding

import (
	"math"

	"go.uber.org/zap"
)

// quarterPipe is the fractional step used to fill a layer
const quarterPipe = 0.25

// SolveEndPosition winds PipeLength metres onto the drum and reports where the
// winding ends: layers used, occupancy of the last layer, rotations and the
// resulting envelope.
//
// Each layer fills in quarter-pipe steps until either its capacity is reached
// or the wound length meets PipeLength × SafetyFactor.
func SolveEndPosition(r Request, opts Options) (*EndPositionResult, error) {
	r.Mode = EndPosition
	if err := Validate(r); err != nil {
		return nil, err
	}

	log := Logger().With(zap.String("mode", r.Mode.String()), zap.Stringer("pattern", r.Pattern))
	maxIter := opts.maxIterations()
	nd := r.PipeDiameter
	if err := r.Pattern.checkCapacity("end position", r.BundleWidth, nd); err != nil {
		log.Warn("layer capacity out of range", zap.Float64("bundle_width_mm", r.BundleWidth), zap.Float64("pipe_diameter_mm", nd))
		return nil, err
	}
	target := r.PipeLength * 1000 * opts.safetyFactor()
	if !finite(target) {
		return nil, fault("end position", ErrNonFinite, "target length")
	}

	var wound, rotations float64
	iterations := 0
	for i := 1; ; i++ {
		d := LayerDiameter(r.InnerDiameter, nd, i)
		capacity := r.Pattern.Capacity(i, r.BundleWidth, nd)
		perPipe := HelixLengthPerPipe(d, nd)
		if !finite(d, perPipe) {
			log.Warn("non-finite layer", zap.Int("layer", i), zap.Float64("diameter_mm", d))
			return nil, fault("end position", ErrNonFinite, "layer %d", i)
		}

		start := wound
		steps := 0
		reached := false
		for float64(steps)*quarterPipe < float64(capacity) {
			iterations++
			if iterations > maxIter {
				log.Warn("iteration guard tripped", zap.Int("max_iterations", maxIter), zap.Int("layer", i))
				return nil, fault("end position", ErrNotConverged, "more than %d steps", maxIter)
			}
			steps++
			wound = start + float64(steps)*quarterPipe*perPipe
			if wound >= target {
				reached = true
				break
			}
		}

		pipes := float64(steps) * quarterPipe
		rotations += pipes
		opts.emit(Layer{
			Index:      i,
			Diameter:   d,
			Capacity:   capacity,
			Pipes:      pipes,
			PipeLength: perPipe,
			Length:     wound - start,
			Cumulative: wound,
		})
		log.Debug("layer wound",
			zap.Int("layer", i),
			zap.Float64("diameter_mm", d),
			zap.Float64("pipes", pipes),
			zap.Int("capacity", capacity),
			zap.Float64("cumulative_mm", wound))

		if reached {
			height := math.Round(nd + float64(i-1)*HexPitch(nd))
			res := &EndPositionResult{
				OuterDiameter:     math.Round(r.InnerDiameter + 2*height),
				BundleWidth:       r.Pattern.BundleWidth(r.BundleWidth, nd),
				BundleHeight:      height,
				NumberOfLayers:    i,
				PipesOnLastLayer:  pipes,
				LastLayerCapacity: capacity,
				NumberOfRotations: rotations,
			}
			if !finite(res.OuterDiameter, res.BundleHeight, res.NumberOfRotations) {
				return nil, fault("end position", ErrNonFinite, "result")
			}
			return res, nil
		}

		// empty layers (uneven pattern with a single-pipe width) still count
		iterations++
		if iterations > maxIter {
			log.Warn("iteration guard tripped", zap.Int("max_iterations", maxIter), zap.Int("layer", i))
			return nil, fault("end position", ErrNotConverged, "more than %d steps", maxIter)
		}
	}
}
