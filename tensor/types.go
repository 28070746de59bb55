// Package tensor: field descriptors, scalar constraint, sentinel errors.
package tensor

import (
	"errors"
	"strings"
)

// Sentinel errors for schema construction. Schema construction failures
// are programmer errors (a field list is fixed at build time), so they
// are raised via panic with values wrapping these sentinels; match with
// errors.Is on the recovered value.
var (
	// ErrEmptyFieldName indicates a Field with an empty name.
	ErrEmptyFieldName = errors.New("tensor: field name is empty")

	// ErrBadComponentCount indicates a Field with components < 1.
	ErrBadComponentCount = errors.New("tensor: field component count must be >= 1")

	// ErrDuplicateField indicates two Fields in one Schema share a name.
	ErrDuplicateField = errors.New("tensor: duplicate field name")
)

// Scalar is the single element type shared by every field of a schema
// instantiation. Parameterizing Variables and View by one Scalar makes
// mixing real- and complex-valued fields in one container a compile-time
// error rather than a runtime check.
type Scalar interface {
	float64 | complex128
}

// PrefixSeparator splits prefix tags from the base field name.
const PrefixSeparator = ":"

// Field identifies a named tensor quantity and the number of independent
// scalar components it contributes to a flat buffer.
type Field struct {
	// Name is the stable identifier of the quantity. It may carry
	// ':'-separated prefixes, e.g. "flux:velocity".
	Name string

	// Components is the number of independent scalar components,
	// e.g. 6 for a symmetric rank-2 tensor in 3D.
	Components int
}

// ScalarField describes a rank-0 quantity (one component).
func ScalarField(name string) Field {
	return Field{Name: name, Components: 1}
}

// VectorField describes a rank-1 quantity in dim spatial dimensions.
func VectorField(name string, dim int) Field {
	return Field{Name: name, Components: dim}
}

// Rank2Field describes a general (unsymmetrized) rank-2 quantity.
func Rank2Field(name string, dim int) Field {
	return Field{Name: name, Components: dim * dim}
}

// SymmetricRank2Field describes a symmetric rank-2 quantity; only the
// upper triangle is stored, dim*(dim+1)/2 components.
func SymmetricRank2Field(name string, dim int) Field {
	return Field{Name: name, Components: dim * (dim + 1) / 2}
}

// WithPrefix returns a copy of f with prefix prepended to its name.
func (f Field) WithPrefix(prefix string) Field {
	return Field{Name: prefix + PrefixSeparator + f.Name, Components: f.Components}
}

// BaseName returns f.Name with all prefixes stripped.
func (f Field) BaseName() string {
	return BaseName(f.Name)
}

// BaseName strips every ':'-separated prefix from name.
// BaseName("flux:velocity") == "velocity"; names without prefixes are
// returned unchanged.
func BaseName(name string) string {
	if i := strings.LastIndex(name, PrefixSeparator); i >= 0 {
		return name[i+len(PrefixSeparator):]
	}

	return name
}
