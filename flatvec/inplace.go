package flatvec

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/wfugravity/spectre/tensor"
	"github.com/wfugravity/spectre/vars"
)

// In-place compound operators. The float64 instantiations route through
// gonum/floats kernels; complex containers take the plain fused loop.

// AddAssign performs dst += src element-wise over the flat buffers.
// Schemas must be compatible (panics wrapping ErrIncompatibleSchemas)
// and sizes must agree (panics wrapping ErrLengthMismatch).
func AddAssign[T tensor.Scalar](dst, src *vars.Variables[T]) {
	requireCompatible(dst, src)
	d, s := dst.Data(), src.Data()
	if len(d) != len(s) {
		panic(fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(d), len(s)))
	}
	if df, ok := any(d).([]float64); ok {
		floats.Add(df, any(s).([]float64))

		return
	}
	for i := range d {
		d[i] += s[i]
	}
}

// SubAssign performs dst -= src with the same contracts as AddAssign.
func SubAssign[T tensor.Scalar](dst, src *vars.Variables[T]) {
	requireCompatible(dst, src)
	d, s := dst.Data(), src.Data()
	if len(d) != len(s) {
		panic(fmt.Errorf("%w: %d and %d", ErrLengthMismatch, len(d), len(s)))
	}
	if df, ok := any(d).([]float64); ok {
		floats.Sub(df, any(s).([]float64))

		return
	}
	for i := range d {
		d[i] -= s[i]
	}
}

// MulAssign performs dst *= c element-wise for a scalar c.
func MulAssign[T tensor.Scalar](dst *vars.Variables[T], c T) {
	d := dst.Data()
	if df, ok := any(d).([]float64); ok {
		floats.Scale(any(c).(float64), df)

		return
	}
	for i := range d {
		d[i] *= c
	}
}

// DivAssign performs dst /= c element-wise for a scalar c. Division by
// zero follows IEEE semantics.
func DivAssign[T tensor.Scalar](dst *vars.Variables[T], c T) {
	MulAssign(dst, 1/c)
}
