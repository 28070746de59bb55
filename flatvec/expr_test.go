package flatvec_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wfugravity/spectre/flatvec"
	"github.com/wfugravity/spectre/tensor"
	"github.com/wfugravity/spectre/vars"
)

// twoField is the schema most algebra tests run on: 3+1 components.
func twoField() tensor.Schema {
	return tensor.NewSchema(
		tensor.VectorField("velocity", 3),
		tensor.ScalarField("pressure"),
	)
}

func requirePanicsIs(t *testing.T, want error, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic wrapping %v", want)
		err, ok := r.(error)
		require.True(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, want)
	}()
	fn()
}

func sequential(schema tensor.Schema, n int) *vars.Variables[float64] {
	v := vars.NewSized[float64](schema, n)
	for i := range v.Data() {
		v.Data()[i] = float64(i)
	}

	return v
}

// TestAssign_FusedExpression: result = 2*x + y - z evaluates in one
// pass with the expected values and no intermediate containers.
func TestAssign_FusedExpression(t *testing.T) {
	schema := twoField()
	x := vars.NewFilled(schema, 4, 3.0)
	y := vars.NewFilled(schema, 4, 10.0)
	z := vars.NewFilled(schema, 4, 1.0)

	dst := vars.New[float64](schema)
	flatvec.Assign(dst, flatvec.Sub(flatvec.Add(flatvec.Mul(2.0, flatvec.Of(x)), flatvec.Of(y)), flatvec.Of(z)))

	require.Equal(t, 4, dst.GridPoints())
	require.True(t, dst.EqualScalarWithin(15.0, 1e-14, 1.0))
}

// TestAssign_ResizesDestination: assignment sizes the destination from
// the expression length.
func TestAssign_ResizesDestination(t *testing.T) {
	schema := twoField()
	x := vars.NewFilled(schema, 7, 2.0)

	dst := vars.NewFilled(schema, 2, 0.0) // wrong size, owning: resized
	flatvec.Assign(dst, flatvec.Neg(flatvec.Of(x)))
	require.Equal(t, 7, dst.GridPoints())
	require.True(t, dst.EqualScalarWithin(-2.0, 1e-14, 1.0))

	// A non-owning destination of the wrong size cannot be resized.
	ref := vars.NewRef(schema, make([]float64, 4))
	requirePanicsIs(t, vars.ErrResizeNonOwning, func() {
		flatvec.Assign(ref, flatvec.Of(x))
	})
}

// TestAssign_SizeContract: expression lengths must divide evenly.
func TestAssign_SizeContract(t *testing.T) {
	dst := vars.New[float64](twoField()) // 4 components
	requirePanicsIs(t, flatvec.ErrSizeNotMultiple, func() {
		flatvec.Assign(dst, flatvec.OfSlice([]float64{1, 2, 3}))
	})

	empty := vars.New[float64](tensor.NewSchema())
	flatvec.Assign(empty, flatvec.OfSlice[float64](nil)) // legal no-op
	requirePanicsIs(t, flatvec.ErrSizeNotMultiple, func() {
		flatvec.Assign(empty, flatvec.OfSlice([]float64{1}))
	})
}

// TestArithmeticClosure: (a + b) - b recovers a within round-off.
func TestArithmeticClosure(t *testing.T) {
	schema := twoField()
	a := sequential(schema, 5)
	b := vars.NewFilled(schema, 5, 0.3)

	sum := flatvec.Evaluate(schema, flatvec.AddVars(a, b))
	back := flatvec.Evaluate(schema, flatvec.SubVars(sum, b))
	require.True(t, back.EqualWithin(a, 1e-14, float64(a.Size())))
}

// TestExpr_LengthMismatch: binary expressions reject unequal lengths at
// construction.
func TestExpr_LengthMismatch(t *testing.T) {
	schema := twoField()
	a := vars.NewFilled(schema, 2, 1.0)
	b := vars.NewFilled(schema, 3, 1.0)
	requirePanicsIs(t, flatvec.ErrLengthMismatch, func() {
		flatvec.Add(flatvec.Of(a), flatvec.Of(b))
	})
}

// TestExpr_SchemaCompatibility: container-level operators require
// prefix-stripped schema agreement; prefixed twins interoperate.
func TestExpr_SchemaCompatibility(t *testing.T) {
	schema := twoField()
	a := vars.NewFilled(schema, 2, 1.0)
	prefixed := vars.NewFilled(schema.WithPrefix("flux"), 2, 2.0)
	renamed := vars.NewFilled(
		tensor.NewSchema(tensor.VectorField("momentum", 3), tensor.ScalarField("energy")), 2, 2.0)

	sum := flatvec.Evaluate(schema, flatvec.AddVars(a, prefixed))
	require.True(t, sum.EqualScalarWithin(3.0, 1e-14, 1.0))

	requirePanicsIs(t, flatvec.ErrIncompatibleSchemas, func() { flatvec.AddVars(a, renamed) })
}

// TestExpr_ScalarOps: both scalar orders of * and the / form, plus
// unary identity.
func TestExpr_ScalarOps(t *testing.T) {
	schema := twoField()
	x := vars.NewFilled(schema, 3, 6.0)

	halved := flatvec.Evaluate(schema, flatvec.Div(flatvec.Of(x), 2.0))
	require.True(t, halved.EqualScalarWithin(3.0, 1e-14, 1.0))

	tripled := flatvec.Evaluate(schema, flatvec.Mul(3.0, flatvec.Ident(flatvec.Of(x))))
	require.True(t, tripled.EqualScalarWithin(18.0, 1e-14, 1.0))
}

// TestExpr_Complex runs the generic path end to end.
func TestExpr_Complex(t *testing.T) {
	schema := tensor.NewSchema(tensor.ScalarField("phi"))
	a := vars.NewFilled(schema, 2, complex(1, 2))
	b := vars.NewFilled(schema, 2, complex(3, -1))

	sum := flatvec.Evaluate(schema, flatvec.AddVars(a, b))
	require.True(t, sum.EqualScalarWithin(complex(4, 1), 1e-14, 1.0))

	scaled := flatvec.Evaluate(schema, flatvec.Mul(complex(0, 1), flatvec.Of(a)))
	require.True(t, scaled.EqualScalarWithin(complex(-2, 1), 1e-14, 1.0))
}

// TestOf_SharesMemory: leaves reinterpret, never copy.
func TestOf_SharesMemory(t *testing.T) {
	schema := twoField()
	x := vars.NewFilled(schema, 2, 1.0)
	e := flatvec.Of(x)
	x.Data()[0] = 42.0
	require.Equal(t, 42.0, e.At(0))
	require.Equal(t, x.Size(), e.Len())
}
