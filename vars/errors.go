package vars

import "errors"

// Sentinel errors for container contract violations. All of them are
// raised via panic (these states indicate a logic error in calling code,
// not an environmental condition); match with errors.Is on the value
// recovered from the panic.
var (
	// ErrSizeNotMultiple indicates an adopted buffer length that is not an
	// exact multiple of the schema's total component count.
	ErrSizeNotMultiple = errors.New("vars: buffer length not a multiple of total components")

	// ErrResizeNonOwning indicates an attempted resize of a non-owning
	// container.
	ErrResizeNonOwning = errors.New("vars: cannot resize a non-owning container")

	// ErrPackNonOwning indicates an attempt to serialize a non-owning
	// container; its content belongs to whoever owns the real buffer.
	ErrPackNonOwning = errors.New("vars: cannot pack a non-owning container")

	// ErrSubsetNotContiguous indicates a zero-copy subset view was
	// requested for fields that are not consecutive in the schema.
	ErrSubsetNotContiguous = errors.New("vars: subset view fields must be consecutive in the schema")

	// ErrShapeMismatch indicates two schemas whose per-field shapes do not
	// line up for the requested operation.
	ErrShapeMismatch = errors.New("vars: schema shapes do not match")

	// ErrFieldNotFound indicates a field name absent from the schema.
	ErrFieldNotFound = errors.New("vars: field not found in schema")

	// ErrGridMismatch indicates two containers with different grid-point
	// counts where equal counts are required.
	ErrGridMismatch = errors.New("vars: grid point counts do not match")
)
