package flatvec_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wfugravity/spectre/flatvec"
	"github.com/wfugravity/spectre/tensor"
	"github.com/wfugravity/spectre/vars"
)

// TestMaxAbs over real and complex containers, including NaN
// propagation from diagnostic-filled storage.
func TestMaxAbs(t *testing.T) {
	schema := twoField()
	v := vars.NewFilled(schema, 2, 1.0)
	v.Data()[3] = -7.5
	require.Equal(t, 7.5, flatvec.MaxAbs(v))

	empty := vars.New[float64](schema)
	require.Zero(t, flatvec.MaxAbs(empty))

	c := vars.NewFilled(tensor.NewSchema(tensor.ScalarField("phi")), 2, complex(3, 4))
	require.InDelta(t, 5.0, flatvec.MaxAbs(c), 1e-14)

	vars.DiagnosticFill = true
	defer func() { vars.DiagnosticFill = false }()
	stale := vars.NewSized[float64](schema, 2)
	require.True(t, math.IsNaN(flatvec.MaxAbs(stale)), "uninitialized data must surface as NaN")
}

// TestDotAndNorm route through gonum kernels.
func TestDotAndNorm(t *testing.T) {
	schema := tensor.NewSchema(tensor.VectorField("v", 2))
	a := vars.NewFilled(schema, 2, 2.0)
	b := vars.NewFilled(schema, 2, 3.0)

	require.InDelta(t, 24.0, flatvec.Dot(a, b), 1e-14) // 4 elements × 6
	require.InDelta(t, 4.0, flatvec.Norm(a, 2), 1e-14) // sqrt(4×4)
	require.InDelta(t, 8.0, flatvec.Norm(a, 1), 1e-14) // 4×2
	require.InDelta(t, 2.0, flatvec.Norm(a, math.Inf(1)), 1e-14)
}

// TestAsVecDense shares the flat buffer with gonum, no copy.
func TestAsVecDense(t *testing.T) {
	schema := twoField()
	v := sequential(schema, 2)

	vec := flatvec.AsVecDense(v)
	require.Equal(t, v.Size(), vec.Len())
	require.Equal(t, 5.0, vec.AtVec(5))

	vec.SetVec(0, -9)
	require.Equal(t, -9.0, v.Data()[0], "VecDense must alias the container buffer")
}
