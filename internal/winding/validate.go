package winding

import (
	"fmt"
	"math"
)

// Validate checks the request and returns the first violated constraint.
//
// The order is fixed: pipe diameter, inner diameter, pipe vs inner diameter,
// then the mode-specific fields. Messages are stable so they can be shown to
// the user and compared in tests.
func Validate(r Request) error {
	if !(r.PipeDiameter > 0) {
		return invalid("pipe_diameter", "pipe diameter must be greater than 0")
	}
	if !(r.InnerDiameter > 0) {
		return invalid("inner_diameter", "inner diameter must be greater than 0")
	}
	if !(r.PipeDiameter < r.InnerDiameter) {
		return invalid("pipe_diameter", "pipe diameter must be smaller than inner diameter")
	}

	switch r.Mode {
	case CoilLength:
		if !(r.OuterDiameter > r.InnerDiameter) {
			return invalid("outer_diameter", "outer diameter must be greater than inner diameter")
		}
		if !(r.BundleWidth > 0) {
			return invalid("bundle_width", "bundle width must be greater than 0")
		}
	case EndPosition:
		if !(r.PipeLength > 0) {
			return invalid("pipe_length", "pipe length must be greater than 0")
		}
		if !(r.BundleWidth > 0) {
			return invalid("bundle_width", "bundle width must be greater than 0")
		}
	default:
		return invalid("mode", "unknown winding mode")
	}

	if !r.Pattern.valid() {
		return invalid("pattern", "unknown winding pattern")
	}

	fields := []numericField{
		{"pipe_diameter", "pipe diameter", r.PipeDiameter},
		{"inner_diameter", "inner diameter", r.InnerDiameter},
		{"bundle_width", "bundle width", r.BundleWidth},
	}
	if r.Mode == CoilLength {
		fields = append(fields, numericField{"outer_diameter", "outer diameter", r.OuterDiameter})
	} else {
		fields = append(fields, numericField{"pipe_length", "pipe length", r.PipeLength})
	}
	for _, f := range fields {
		if math.IsInf(f.value, 0) {
			return invalid(f.key, fmt.Sprintf("%s must be a finite number", f.name))
		}
	}

	if r.Pattern.layerCapacity(r.BundleWidth, r.PipeDiameter) < 1 {
		return invalid("bundle_width", "bundle width must hold at least one pipe")
	}

	return nil
}

type numericField struct {
	key   string
	name  string
	value float64
}
