// Package flatvec presents a vars.Variables container as one flat
// mathematical vector and provides the bulk algebra over it:
//
//   - Expr, a lazy expression over the flat length. Of(v) reinterprets a
//     container without copying; Add, Sub, Neg, Mul, Div compose
//     expressions without evaluating them. Nothing is computed until
//     Assign evaluates the whole tree in a single fused pass into a
//     destination buffer, so result = a*x + b*y is one loop and zero
//     temporaries.
//   - In-place compound operators (AddAssign, SubAssign, MulAssign,
//     DivAssign) over schema-compatible containers, with gonum/floats
//     kernels on the float64 fast path.
//   - Per-grid-point broadcasts (BroadcastMul, BroadcastDiv): scale each
//     component's value at grid point s by w[s], an outer-product-like
//     operation distinct from element-wise arithmetic.
//   - Reductions (MaxAbs, Dot, Norm) and a gonum mat.VecDense interop
//     view.
//
// Expressions and views constructed here never allocate and share the
// container's memory; their lifetime must not exceed the container they
// were built from. Binary operations require operands of equal flat
// length (equal grid-point counts is the caller's contract); mismatches
// panic with the offending lengths.
package flatvec
