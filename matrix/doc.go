// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage consumed by the
// assignment solver and produced by the bipartite matrix builder.
//
// The package provides:
//
//   - Matrix, a small mutable interface (Rows, Cols, At, Set, Clone).
//   - Dense, a row-major implementation backed by a single flat slice.
//   - Validators (ValidateNotNil, ValidateSquare, ValidateFinite) that
//     return sentinel errors wrapped with a call-site tag.
//   - Negated, an element-wise negation copy used for maximisation.
//
// Numeric policy:
//
//	Dense.Set rejects NaN and ±Inf with ErrNaNInf, so a Dense built through
//	its own API is always finite. Foreign Matrix implementations are checked
//	with ValidateFinite before any algorithm reads them.
//
// Shapes:
//
//	NewDense requires r,c > 0. NewSquare and NewDenseFrom also accept the
//	empty 0×0 shape, which is a legal (trivial) assignment instance.
package matrix
