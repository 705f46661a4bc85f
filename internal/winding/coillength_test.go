package winding

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryHelpers(t *testing.T) {
	assert.InDelta(t, 17.3205, HexPitch(20), 1e-4)
	assert.Equal(t, 520.0, LayerDiameter(500, 20, 1))
	assert.InDelta(t, 554.641, LayerDiameter(500, 20, 2), 1e-3)

	// a flat helix degenerates to the circumference
	assert.InDelta(t, math.Pi*100, HelixLengthPerPipe(100, 0), 1e-9)
	assert.Greater(t, HelixLengthPerPipe(100, 20), math.Pi*100)

	assert.Equal(t, 100, UnevenLayers.Capacity(1, 2000, 20))
	assert.Equal(t, 99, UnevenLayers.Capacity(2, 2000, 20))
	assert.Equal(t, 100, UnevenLayers.Capacity(3, 2000, 20))
	assert.Equal(t, 99, EvenLayersOffset.Capacity(1, 2000, 20))
	assert.Equal(t, 99, EvenLayersOffset.Capacity(2, 2000, 20))
}

func TestSolveCoilLength_Fixtures(t *testing.T) {
	tests := []struct {
		name    string
		nd, id  float64
		od, w   float64
		pattern Pattern
		length  float64
		outer   float64
		width   float64
		layers  int
	}{
		{"uneven 20mm", 20, 500, 800, 2000, UnevenLayers, 1603.425, 782, 2000, 8},
		{"offset 20mm", 20, 500, 800, 2000, EvenLayersOffset, 1595.584, 782, 1990, 8},
		{"single layer", 20, 50, 80, 200, UnevenLayers, 2.208, 90, 200, 1},
		{"uneven 8mm", 8, 500, 800, 2000, UnevenLayers, 10643.786, 793, 2000, 21},
		{"offset 8mm", 8, 500, 800, 2000, EvenLayersOffset, 10621.443, 793, 1996, 21},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := SolveCoilLength(Request{
				PipeDiameter:  tt.nd,
				InnerDiameter: tt.id,
				OuterDiameter: tt.od,
				BundleWidth:   tt.w,
				Pattern:       tt.pattern,
			}, Options{})
			require.NoError(t, err)

			assert.InDelta(t, tt.length, res.CoilLength, 0.0015)
			assert.Equal(t, tt.outer, res.RealizedOuterDiameter)
			assert.Equal(t, tt.width, res.RealizedBundleWidth)
			assert.Equal(t, tt.layers, res.Layers)
		})
	}
}

func TestSolveCoilLength_FirstLayerAlwaysCounted(t *testing.T) {
	// the envelope is thinner than one layer, but one layer is still wound
	res, err := SolveCoilLength(Request{
		PipeDiameter:  20,
		InnerDiameter: 50,
		OuterDiameter: 60,
		BundleWidth:   200,
	}, Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Layers)
	assert.Greater(t, res.RealizedOuterDiameter, 60.0)
	assert.Greater(t, res.CoilLength, 0.0)
}

func TestSolveCoilLength_Properties(t *testing.T) {
	for _, pattern := range []Pattern{UnevenLayers, EvenLayersOffset} {
		for _, nd := range []float64{4, 8, 12.5, 20, 32} {
			for _, od := range []float64{700, 800, 1000.5, 1200} {
				for _, w := range []float64{500, 1000, 2017} {
					r := Request{
						PipeDiameter:  nd,
						InnerDiameter: 500,
						OuterDiameter: od,
						BundleWidth:   w,
						Pattern:       pattern,
					}
					var last Layer
					res, err := SolveCoilLength(r, Options{OnLayer: func(l Layer) { last = l }})
					require.NoError(t, err)

					assert.Greater(t, res.CoilLength, 0.0)
					assert.LessOrEqual(t, last.Diameter+nd, od)
					assert.LessOrEqual(t, res.RealizedOuterDiameter, math.Round(od))
					assert.LessOrEqual(t, res.RealizedBundleWidth, w)
				}
			}
		}
	}
}

func TestSolveCoilLength_FractionalOuterDiameter(t *testing.T) {
	// the envelope fits under 529.9 mm but reports to the nearest millimetre
	var last Layer
	res, err := SolveCoilLength(Request{
		PipeDiameter:  8,
		InnerDiameter: 500,
		OuterDiameter: 529.9,
		BundleWidth:   400,
	}, Options{OnLayer: func(l Layer) { last = l }})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Layers)
	assert.InDelta(t, 529.856, last.Diameter+8, 1e-3)
	assert.Equal(t, 530.0, res.RealizedOuterDiameter)
}

func TestSolveCoilLength_PatternsDiffer(t *testing.T) {
	r := coilRequest()
	uneven, err := SolveCoilLength(r, Options{})
	require.NoError(t, err)

	r.Pattern = EvenLayersOffset
	offset, err := SolveCoilLength(r, Options{})
	require.NoError(t, err)

	assert.NotEqual(t, uneven.CoilLength, offset.CoilLength)
}

func TestSolveCoilLength_Idempotent(t *testing.T) {
	first, err := SolveCoilLength(coilRequest(), Options{})
	require.NoError(t, err)
	second, err := SolveCoilLength(coilRequest(), Options{})
	require.NoError(t, err)

	assert.Equal(t, *first, *second)
}

func TestSolveCoilLength_MonotonicInOuterDiameter(t *testing.T) {
	r := coilRequest()
	prev := 0.0
	for od := 510.0; od <= 1500; od += 7 {
		r.OuterDiameter = od
		res, err := SolveCoilLength(r, Options{})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.CoilLength, prev, "od=%.0f", od)
		prev = res.CoilLength
	}
}

func TestSolveCoilLength_OnLayer(t *testing.T) {
	var layers []Layer
	res, err := SolveCoilLength(coilRequest(), Options{OnLayer: func(l Layer) {
		layers = append(layers, l)
	}})
	require.NoError(t, err)
	require.Len(t, layers, res.Layers)

	for i, l := range layers {
		assert.Equal(t, i+1, l.Index)
		assert.Equal(t, float64(l.Capacity), l.Pipes)
	}
	assert.Equal(t, 100, layers[0].Capacity)
	assert.Equal(t, 99, layers[1].Capacity)

	last := layers[len(layers)-1]
	assert.InDelta(t, res.CoilLength, math.Round(last.Cumulative)/1000, 1e-9)
}

func TestSolveCoilLength_IterationGuard(t *testing.T) {
	_, err := SolveCoilLength(coilRequest(), Options{MaxIterations: 3})
	require.Error(t, err)

	assert.True(t, errors.Is(err, ErrNotConverged))
	assert.True(t, IsComputation(err))
	assert.False(t, IsValidation(err))
}

func TestSolveCoilLength_IgnoresRequestMode(t *testing.T) {
	r := coilRequest()
	r.Mode = EndPosition
	res, err := SolveCoilLength(r, Options{})
	require.NoError(t, err)
	assert.InDelta(t, 1603.425, res.CoilLength, 0.0015)
}

func TestSolveCoilLength_ComputationFaults(t *testing.T) {
	tests := []struct {
		name string
		r    Request
		msg  string
	}{
		{
			name: "helix length overflows",
			r:    Request{PipeDiameter: 1, InnerDiameter: 1e308, OuterDiameter: 1.7e308, BundleWidth: 10},
			msg:  "coil length: non-finite value: layer 1",
		},
		{
			name: "pipe diameter near zero",
			r:    Request{PipeDiameter: 1e-16, InnerDiameter: 500, OuterDiameter: 800, BundleWidth: 2000},
			msg:  "coil length: non-finite value: layer capacity 2e+19 out of range",
		},
		{
			name: "bundle width beyond any layer count",
			r:    Request{PipeDiameter: 1, InnerDiameter: 500, OuterDiameter: 800, BundleWidth: 1e300},
			msg:  "coil length: non-finite value: layer capacity 1e+300 out of range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SolveCoilLength(tt.r, Options{})
			require.Error(t, err)

			assert.True(t, errors.Is(err, ErrNonFinite))
			assert.True(t, IsComputation(err))
			assert.False(t, IsValidation(err))
			assert.EqualError(t, err, tt.msg)
		})
	}
}

func TestFullCapacity_Saturates(t *testing.T) {
	assert.Equal(t, MaxLayerCapacity, UnevenLayers.FullCapacity(1e300, 1))
	assert.Equal(t, MaxLayerCapacity, EvenLayersOffset.FullCapacity(2000, 1e-16))
	assert.Equal(t, 1_000_000_000_000, UnevenLayers.FullCapacity(1e12, 1))
}
