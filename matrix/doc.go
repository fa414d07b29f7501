// Package matrix offers fixed-shape matrices and vectors whose width and
// height are part of the type.
//
// The matrix package provides:
//
//   - Matrix[T, W, H]: a dense row-major W×H grid with the full operator
//     suite (Add, Sub, Neg, Scale, Div, Mul) as named methods and functions.
//   - Vector / RowVector aliases plus Dot, Cross and Length helpers, and the
//     named-field Vec2, Vec3 and Vec4 types with homogeneous projection.
//   - Gauss-Jordan inversion with partial pivoting returning the inverse and
//     the determinant (Inverse, Invert, TryInverse, Determinant).
//   - Stable-type scalars (F64, F32, Int) and the capability constraints that
//     let unit-carrying element types (a length whose square is an area) flow
//     through the same code.
//   - AllClose, CheckFinite and Format for float-viewable cells, and a YAML
//     codec checked against the static shape.
//
// Shape mismatches (adding a 2×3 to a 3×2, multiplying with a mismatched inner
// dimension, inverting a non-square matrix) are compile errors, not runtime
// errors.
//
// See the examples in this package and in units for usage patterns.
package matrix
