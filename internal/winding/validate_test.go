package winding

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coilRequest() Request {
	return Request{
		PipeDiameter:  20,
		InnerDiameter: 500,
		OuterDiameter: 800,
		BundleWidth:   2000,
		Pattern:       UnevenLayers,
		Mode:          CoilLength,
	}
}

func endRequest() Request {
	return Request{
		PipeDiameter:  20,
		InnerDiameter: 500,
		BundleWidth:   2000,
		PipeLength:    100,
		Pattern:       UnevenLayers,
		Mode:          EndPosition,
	}
}

func TestValidate_Accepts(t *testing.T) {
	assert.NoError(t, Validate(coilRequest()))
	assert.NoError(t, Validate(endRequest()))
}

func TestValidate_FirstFailure(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*Request)
		field string
		msg   string
	}{
		{
			name:  "zero pipe diameter",
			edit:  func(r *Request) { r.PipeDiameter = 0 },
			field: "pipe_diameter",
			msg:   "pipe diameter must be greater than 0",
		},
		{
			name:  "pipe diameter reported before inner diameter",
			edit:  func(r *Request) { r.PipeDiameter = -1; r.InnerDiameter = 0 },
			field: "pipe_diameter",
			msg:   "pipe diameter must be greater than 0",
		},
		{
			name:  "zero inner diameter",
			edit:  func(r *Request) { r.InnerDiameter = 0 },
			field: "inner_diameter",
			msg:   "inner diameter must be greater than 0",
		},
		{
			name:  "pipe equal to inner diameter",
			edit:  func(r *Request) { r.PipeDiameter = 500 },
			field: "pipe_diameter",
			msg:   "pipe diameter must be smaller than inner diameter",
		},
		{
			name:  "pipe larger than inner diameter",
			edit:  func(r *Request) { r.PipeDiameter = 600; r.OuterDiameter = 0 },
			field: "pipe_diameter",
			msg:   "pipe diameter must be smaller than inner diameter",
		},
		{
			name:  "outer not above inner",
			edit:  func(r *Request) { r.OuterDiameter = 500; r.BundleWidth = 0 },
			field: "outer_diameter",
			msg:   "outer diameter must be greater than inner diameter",
		},
		{
			name:  "zero width",
			edit:  func(r *Request) { r.BundleWidth = 0 },
			field: "bundle_width",
			msg:   "bundle width must be greater than 0",
		},
		{
			name:  "NaN pipe diameter",
			edit:  func(r *Request) { r.PipeDiameter = math.NaN() },
			field: "pipe_diameter",
			msg:   "pipe diameter must be greater than 0",
		},
		{
			name:  "infinite outer diameter",
			edit:  func(r *Request) { r.OuterDiameter = math.Inf(1) },
			field: "outer_diameter",
			msg:   "outer diameter must be a finite number",
		},
		{
			name:  "width narrower than one pipe",
			edit:  func(r *Request) { r.BundleWidth = 10 },
			field: "bundle_width",
			msg:   "bundle width must hold at least one pipe",
		},
		{
			name:  "offset pattern needs one and a half pipes",
			edit:  func(r *Request) { r.BundleWidth = 25; r.Pattern = EvenLayersOffset },
			field: "bundle_width",
			msg:   "bundle width must hold at least one pipe",
		},
		{
			name:  "unknown pattern",
			edit:  func(r *Request) { r.Pattern = Pattern(7) },
			field: "pattern",
			msg:   "unknown winding pattern",
		},
		{
			name:  "unknown mode",
			edit:  func(r *Request) { r.Mode = Mode(9) },
			field: "mode",
			msg:   "unknown winding mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := coilRequest()
			tt.edit(&r)

			err := Validate(r)
			require.Error(t, err)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
			assert.Equal(t, tt.msg, err.Error())
			assert.True(t, IsValidation(err))
			assert.False(t, IsComputation(err))
		})
	}
}

func TestValidate_EndPositionFields(t *testing.T) {
	r := endRequest()
	r.PipeLength = 0
	r.BundleWidth = 0
	assert.EqualError(t, Validate(r), "pipe length must be greater than 0")

	r = endRequest()
	r.BundleWidth = -5
	assert.EqualError(t, Validate(r), "bundle width must be greater than 0")

	// outer diameter is not required when winding a known length
	r = endRequest()
	r.OuterDiameter = 0
	assert.NoError(t, Validate(r))
}

func TestParsePattern(t *testing.T) {
	for _, s := range []string{"uneven", "BB1", " bb1 ", "UNEVEN_LAYERS"} {
		p, err := ParsePattern(s)
		require.NoError(t, err, s)
		assert.Equal(t, UnevenLayers, p, s)
	}
	for _, s := range []string{"offset", "even", "BB0.5", "even_layers_offset"} {
		p, err := ParsePattern(s)
		require.NoError(t, err, s)
		assert.Equal(t, EvenLayersOffset, p, s)
	}

	_, err := ParsePattern("spiral")
	assert.Error(t, err)
}
