package vars

import (
	"fmt"

	"github.com/wfugravity/spectre/tensor"
)

// SubsetClone deep-copies the named fields into a new owning container
// over the sub-schema, in the order the names are given. Any field
// subset is legal here (contiguity only matters for zero-copy views).
// Panics wrapping ErrFieldNotFound for unknown names.
func (v *Variables[T]) SubsetClone(names ...string) *Variables[T] {
	fields := make([]tensor.Field, len(names))
	idx := make([]int, len(names))
	for k, name := range names {
		i, ok := v.schema.IndexOf(name)
		if !ok {
			panic(fmt.Errorf("%w: %q in %v", ErrFieldNotFound, name, v.schema))
		}
		fields[k] = v.schema.Field(i)
		idx[k] = i
	}
	out := NewSized[T](tensor.NewSchema(fields...), v.gridPoints)
	for k, i := range idx {
		copy(out.views[k].Data(), v.views[i].Data())
	}

	return out
}

// SubsetView returns a zero-copy non-owning container over the named
// fields, which must be consecutive in the schema and given in schema
// order; otherwise the matching sub-range of the buffer does not exist
// and the call panics wrapping ErrSubsetNotContiguous. The result views
// v's buffer and must not outlive it.
func (v *Variables[T]) SubsetView(names ...string) *Variables[T] {
	if len(names) == 0 {
		return NewRef[T](tensor.NewSchema(), nil)
	}
	first, ok := v.schema.IndexOf(names[0])
	if !ok {
		panic(fmt.Errorf("%w: %q in %v", ErrFieldNotFound, names[0], v.schema))
	}
	for k, name := range names {
		i, ok := v.schema.IndexOf(name)
		if !ok {
			panic(fmt.Errorf("%w: %q in %v", ErrFieldNotFound, name, v.schema))
		}
		if i != first+k {
			panic(fmt.Errorf("%w: %q is field %d, want %d", ErrSubsetNotContiguous, name, i, first+k))
		}
	}
	sub := v.schema.Sub(first, first+len(names))
	lo := v.schema.Offset(first) * v.gridPoints

	return NewRef[T](sub, v.buf[lo:lo+sub.TotalComponents()*v.gridPoints])
}

// Reinterpret returns a zero-copy non-owning container presenting v's
// buffer under a different schema of identical shape, e.g. the same
// fields carrying a "flux:" prefix. Panics wrapping ErrShapeMismatch
// when the per-field component counts differ. The result views v's
// buffer and must not outlive it.
func (v *Variables[T]) Reinterpret(schema tensor.Schema) *Variables[T] {
	if !v.schema.SameShape(schema) {
		panic(fmt.Errorf("%w: reinterpret %v as %v", ErrShapeMismatch, v.schema, schema))
	}

	return NewRef[T](schema, v.buf)
}

// AssignSubset copies every field of src whose base name and component
// count match a field of v; fields present in only one container are
// ignored. Grid-point counts must agree; panics wrapping ErrGridMismatch
// otherwise.
func (v *Variables[T]) AssignSubset(src *Variables[T]) {
	if v.gridPoints != src.gridPoints {
		panic(fmt.Errorf("%w: %d and %d", ErrGridMismatch, v.gridPoints, src.gridPoints))
	}
	for i := 0; i < src.schema.NumFields(); i++ {
		sf := src.schema.Field(i)
		for j := 0; j < v.schema.NumFields(); j++ {
			df := v.schema.Field(j)
			if df.BaseName() == sf.BaseName() && df.Components == sf.Components {
				copy(v.views[j].Data(), src.views[i].Data())
				break
			}
		}
	}
}
