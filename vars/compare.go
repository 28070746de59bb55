package vars

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Equal reports exact element-wise equality of the flat buffers. Two
// containers compare equal iff their schemas are compatible (same base
// names and shapes once prefixes are stripped), their sizes agree, and
// every element matches exactly. Any two zero-field containers are
// equal. NaN elements compare unequal, as usual.
func (v *Variables[T]) Equal(o *Variables[T]) bool {
	if !v.schema.Compatible(o.schema) || v.Size() != o.Size() {
		return false
	}
	for i, x := range v.buf {
		if x != o.buf[i] {
			return false
		}
	}

	return true
}

// EqualWithin is the tolerance-based comparator: element-wise
// |a-b| <= eps*scale over compatible schemas. Unlike Equal, comparing
// containers of different sizes is a contract violation and panics
// wrapping ErrGridMismatch.
func (v *Variables[T]) EqualWithin(o *Variables[T], eps, scale float64) bool {
	if v.Size() != o.Size() {
		panic(fmt.Errorf("%w: sizes %d and %d", ErrGridMismatch, v.Size(), o.Size()))
	}
	if !v.schema.Compatible(o.schema) {
		return false
	}
	for i, x := range v.buf {
		if !withinRoundoff(x, o.buf[i], eps, scale) {
			return false
		}
	}

	return true
}

// EqualScalarWithin reports whether every element of the buffer is
// within |x-value| <= eps*scale of a single scalar value.
func (v *Variables[T]) EqualScalarWithin(value T, eps, scale float64) bool {
	for _, x := range v.buf {
		if !withinRoundoff(x, value, eps, scale) {
			return false
		}
	}

	return true
}

// withinRoundoff is the element comparator: |a-b| <= eps*scale, with
// the complex magnitude for complex containers.
func withinRoundoff[T float64 | complex128](a, b T, eps, scale float64) bool {
	switch d := any(a - b).(type) {
	case complex128:
		return cmplx.Abs(d) <= eps*scale
	case float64:
		return math.Abs(d) <= eps*scale
	}

	return false
}
