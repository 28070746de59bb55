// Package vars provides Variables, a contiguous multi-field tensor
// storage container: one flat allocation backing every named field of a
// tensor.Schema, sampled at a runtime number of grid points.
//
// Layout is component-major: field i's components occupy the component
// slots [Offset(i), Offset(i)+Components(i)) and each component is one
// contiguous run of GridPoints scalars, so
//
//	buf[c*gridPoints+s] = component c at grid point s.
//
// Ownership comes in two modes:
//
//   - owning: the container allocated its buffer and may be resized via
//     Initialize; this is what New/NewSized/NewFilled and Clone produce.
//   - non-owning (referencing): the container views a buffer owned
//     elsewhere (NewRef, SetDataRef, SubsetView, Reinterpret) and must
//     never outlive it. Resizing a non-owning container panics.
//
// Lifetime discipline is manual, exactly as documented: field views and
// the flat buffer returned by Data are valid only while the container is
// alive and not moved-from. MoveFrom empties its source, invalidating
// every view previously published by it. Nothing here locks: concurrent
// readers are fine, any mutation needs external exclusion.
//
// Contract violations (resizing a non-owning container, adopting a
// buffer whose length is not a multiple of the schema's component count,
// packing a non-owning container) are programmer errors and panic with
// values wrapping the package sentinels; they are not recoverable
// conditions and carry the offending sizes in their messages.
package vars
