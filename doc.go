// Package fixmat is a small algebra kit for fixed-size matrices and vectors,
// built on Go generics.
//
// What is in the box?
//
//	• Matrices whose width and height are type parameters: shape errors fail to compile
//	• Arithmetic, transpose, identity, dot, cross and Euclidean length
//	• Gauss-Jordan inversion with partial pivoting and a determinant
//	• Element types that change type under multiplication (metres × metres = square metres)
//
// Everything is organized under three subpackages:
//
//	matrix/     - Matrix, Vector, Vec2/3/4, operators, inversion, YAML codec
//	units/      - length quantities that exercise the type-mutating paths
//	converters/ - bridges to gonum.org/v1/gonum/mat with runtime shape checks
//
// Quick example:
//
//	a := matrix.New[matrix.F64, matrix.D2, matrix.D2](1, 2, 3, 4)
//	inv, det := matrix.Invert(a) // [[-2, 1], [1.5, -0.5]], -2
//
//	go get github.com/katalvlaran/fixmat
package fixmat
