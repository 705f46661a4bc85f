// Package winding computes pipe and profile winding geometry on a drum.
//
// Pipes are wound layer by layer in a hexagonal packing: each layer nests in
// the grooves of the layer beneath, so layer centerlines grow by ND·√3/2.
// Two questions can be answered for a drum of inner diameter ID:
//
//   - CoilLength: how much pipe fits up to an outer diameter OD and width W
//   - EndPosition: which envelope a known pipe length L reaches
//
// All lengths are millimetres except the pipe length, which is metres.
// The package is pure: calls share no state and may run concurrently.
package winding

// Solve validates the request and dispatches it to the solver for its mode
func Solve(r Request, opts Options) (Result, error) {
	if err := Validate(r); err != nil {
		return Result{}, err
	}

	switch r.Mode {
	case EndPosition:
		res, err := SolveEndPosition(r, opts)
		if err != nil {
			return Result{}, err
		}
		return Result{Mode: EndPosition, EndPosition: res}, nil
	default:
		res, err := SolveCoilLength(r, opts)
		if err != nil {
			return Result{}, err
		}
		return Result{Mode: CoilLength, CoilLength: res}, nil
	}
}
