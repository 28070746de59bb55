package flatvec

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/wfugravity/spectre/tensor"
	"github.com/wfugravity/spectre/vars"
)

// MaxAbs returns the largest element magnitude over the whole flat
// buffer, 0 for an empty container. NaN elements propagate as NaN.
func MaxAbs[T tensor.Scalar](v *vars.Variables[T]) float64 {
	best := 0.0
	switch buf := any(v.Data()).(type) {
	case []float64:
		for _, x := range buf {
			if a := math.Abs(x); a > best || math.IsNaN(a) {
				best = a
			}
		}
	case []complex128:
		for _, x := range buf {
			if a := cmplx.Abs(x); a > best || math.IsNaN(a) {
				best = a
			}
		}
	}

	return best
}

// Dot returns the inner product of two real containers' flat buffers.
// Panics (via gonum) when the lengths differ.
func Dot(a, b *vars.Variables[float64]) float64 {
	return floats.Dot(a.Data(), b.Data())
}

// Norm returns the L-p norm of a real container's flat buffer.
func Norm(v *vars.Variables[float64], p float64) float64 {
	return floats.Norm(v.Data(), p)
}

// AsVecDense exposes a non-empty real container as a gonum mat.VecDense
// sharing the flat buffer (no copy), for handing the whole container to
// downstream linear algebra. The view is only valid while the container
// is alive, unresized and unmoved.
func AsVecDense(v *vars.Variables[float64]) *mat.VecDense {
	return mat.NewVecDense(v.Size(), v.Data())
}
