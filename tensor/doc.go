// Package tensor defines the field-descriptor surface consumed by the
// storage container in vars:
//
//   - Field: a named tensor quantity with a fixed number of independent
//     components (a symmetric rank-2 tensor in 3D contributes 6).
//   - Schema: an ordered, immutable list of Fields with precomputed
//     component offsets; fixed for the life of any container built on it.
//   - View: one field's window into a flat buffer, exposed as
//     per-component contiguous slices of length gridPoints. Views own
//     no memory and are only valid while the buffer they reference is.
//
// The container never interprets tensor index structure beyond the
// component count, a component-binding hook, and a stable name; the
// rank/symmetry constructors here are conveniences for computing the
// component counts the index engine would supply.
//
// Field names may carry ':'-separated prefixes ("flux:velocity");
// BaseName strips them. Schema compatibility for arithmetic compares
// base names and shapes, so a prefixed schema stays interoperable with
// its unprefixed twin.
package tensor
