package vars_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wfugravity/spectre/tensor"
)

// hydroSchema is the field list most tests run on: 1+3+6 components.
func hydroSchema() tensor.Schema {
	return tensor.NewSchema(
		tensor.ScalarField("pressure"),
		tensor.VectorField("velocity", 3),
		tensor.SymmetricRank2Field("stress", 3),
	)
}

// requirePanicsIs asserts fn panics with an error wrapping want.
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

// fillSequential stamps buf with 0,1,2,... for value tracking.
func fillSequential(buf []float64) {
	for i := range buf {
		buf[i] = float64(i)
	}
}
