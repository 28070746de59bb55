// Package spectre provides contiguous multi-field tensor storage for
// simulation codes that sample many named quantities on a common grid.
//
// 🚀 What is spectre?
//
//	A small, focused library that packs every tensor field of a system
//	into one flat allocation and hands out zero-copy views:
//		• tensor/  — field descriptors, schemas, per-component views
//		• vars/    — the storage container: owning/referencing buffers,
//		             subsets, reinterpretation, equality, wire format
//		• flatvec/ — bulk algebra over the whole buffer as one vector:
//		             lazy fused expressions, broadcasts, reductions
//
// ✨ Why one allocation?
//
//   - Allocations are expensive, especially under a parallel runtime;
//     a container over N fields costs exactly one.
//   - Bulk arithmetic (result = a*x + b*y) runs as a single fused loop
//     over the flat buffer, no intermediates materialized.
//   - Individual fields stay independently addressable through views
//     that reference, never copy, the shared buffer.
//
// Quick sketch:
//
//	schema := tensor.NewSchema(
//		tensor.VectorField("velocity", 3),
//		tensor.ScalarField("pressure"),
//	)
//	u := vars.NewFilled(schema, 100, 0.0) // one allocation, 400 doubles
//	v := u.FieldByName("velocity")        // zero-copy view
//	v.Set(0, 17, 4.2)                     // component 0, grid point 17
//
// Dive into the per-package docs for the ownership and lifetime rules;
// they are the heart of this library.
package spectre
