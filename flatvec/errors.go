package flatvec

import "errors"

// Sentinel errors for algebra contract violations, raised via panic and
// matchable with errors.Is on the recovered value.
var (
	// ErrLengthMismatch indicates binary operands of different flat length.
	ErrLengthMismatch = errors.New("flatvec: operand lengths do not match")

	// ErrIncompatibleSchemas indicates containers whose field lists do not
	// agree once name prefixes are stripped.
	ErrIncompatibleSchemas = errors.New("flatvec: container schemas are not compatible")

	// ErrGridMismatch indicates a broadcast vector whose length differs
	// from the container's grid-point count.
	ErrGridMismatch = errors.New("flatvec: broadcast length must equal grid point count")

	// ErrSizeNotMultiple indicates an expression length that does not
	// divide evenly by the destination schema's component count.
	ErrSizeNotMultiple = errors.New("flatvec: expression length not a multiple of total components")
)
