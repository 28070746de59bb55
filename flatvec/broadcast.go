package flatvec

import (
	"fmt"

	"github.com/wfugravity/spectre/tensor"
	"github.com/wfugravity/spectre/vars"
)

// Per-grid-point broadcasts: given a plain vector w of length
// GridPoints(), scale component c's value at grid point s by w[s], for
// every component. This is an outer-product-like operation, distinct
// from element-wise arithmetic: one w element touches one grid point of
// every component.

// BroadcastMul performs dst[c][s] *= w[s] in place for every component
// c and grid point s. Panics wrapping ErrGridMismatch when
// len(w) != dst.GridPoints().
func BroadcastMul[T tensor.Scalar](dst *vars.Variables[T], w []T) {
	requireGrid(dst, len(w))
	gp := dst.GridPoints()
	buf := dst.Data()
	for c := 0; c < dst.Schema().TotalComponents(); c++ {
		row := buf[c*gp : (c+1)*gp]
		for s, ws := range w {
			row[s] *= ws
		}
	}
}

// BroadcastDiv performs dst[c][s] /= w[s] in place, same contract as
// BroadcastMul.
func BroadcastDiv[T tensor.Scalar](dst *vars.Variables[T], w []T) {
	requireGrid(dst, len(w))
	gp := dst.GridPoints()
	buf := dst.Data()
	for c := 0; c < dst.Schema().TotalComponents(); c++ {
		row := buf[c*gp : (c+1)*gp]
		for s, ws := range w {
			row[s] /= ws
		}
	}
}

// BroadcastMulClone is the out-of-place form: a fresh owning copy of v
// with every component scaled per grid point.
func BroadcastMulClone[T tensor.Scalar](v *vars.Variables[T], w []T) *vars.Variables[T] {
	out := v.Clone()
	BroadcastMul(out, w)

	return out
}

// BroadcastDivClone is the out-of-place form of BroadcastDiv.
func BroadcastDivClone[T tensor.Scalar](v *vars.Variables[T], w []T) *vars.Variables[T] {
	out := v.Clone()
	BroadcastDiv(out, w)

	return out
}

func requireGrid[T tensor.Scalar](v *vars.Variables[T], n int) {
	if v.GridPoints() != n {
		panic(fmt.Errorf("%w: grid points %d, broadcast length %d", ErrGridMismatch, v.GridPoints(), n))
	}
}
