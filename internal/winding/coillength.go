package winding

import (
	"math"

	"go.uber.org/zap"
)

// SolveCoilLength computes the pipe length that fits between the inner
// diameter and the outer diameter limit of the request.
//
// Layers are added while the next layer, plus one pipe diameter, stays within
// OuterDiameter. The first layer is always counted, even when it alone
// overflows the limit, so RealizedOuterDiameter may exceed OuterDiameter for
// envelopes thinner than one layer.
func SolveCoilLength(r Request, opts Options) (*CoilLengthResult, error) {
	r.Mode = CoilLength
	if err := Validate(r); err != nil {
		return nil, err
	}

	log := Logger().With(zap.String("mode", r.Mode.String()), zap.Stringer("pattern", r.Pattern))
	maxIter := opts.maxIterations()
	nd := r.PipeDiameter
	if err := r.Pattern.checkCapacity("coil length", r.BundleWidth, nd); err != nil {
		log.Warn("layer capacity out of range", zap.Float64("bundle_width_mm", r.BundleWidth), zap.Float64("pipe_diameter_mm", nd))
		return nil, err
	}

	var total, last float64
	layers := 0
	for i := 1; ; i++ {
		if i > maxIter {
			log.Warn("iteration guard tripped", zap.Int("max_iterations", maxIter))
			return nil, fault("coil length", ErrNotConverged, "more than %d layers", maxIter)
		}

		d := LayerDiameter(r.InnerDiameter, nd, i)
		count := r.Pattern.Capacity(i, r.BundleWidth, nd)
		perPipe := HelixLengthPerPipe(d, nd)
		li := float64(count) * perPipe
		total += li
		if !finite(d, perPipe, total) {
			log.Warn("non-finite layer", zap.Int("layer", i), zap.Float64("diameter_mm", d))
			return nil, fault("coil length", ErrNonFinite, "layer %d", i)
		}

		last = d
		layers = i
		opts.emit(Layer{
			Index:      i,
			Diameter:   d,
			Capacity:   count,
			Pipes:      float64(count),
			PipeLength: perPipe,
			Length:     li,
			Cumulative: total,
		})
		log.Debug("layer wound",
			zap.Int("layer", i),
			zap.Float64("diameter_mm", d),
			zap.Int("pipes", count),
			zap.Float64("cumulative_mm", total))

		if LayerDiameter(r.InnerDiameter, nd, i+1)+nd > r.OuterDiameter {
			break
		}
	}

	res := &CoilLengthResult{
		CoilLength:            math.Round(total) / 1000,
		RealizedOuterDiameter: math.Round(last + nd),
		RealizedBundleWidth:   r.Pattern.BundleWidth(r.BundleWidth, nd),
		Layers:                layers,
	}
	if !finite(res.CoilLength, res.RealizedOuterDiameter, res.RealizedBundleWidth) {
		return nil, fault("coil length", ErrNonFinite, "result")
	}
	return res, nil
}
