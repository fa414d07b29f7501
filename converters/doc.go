// Package converters provides two-way adapters between fixmat matrices and
// gonum.org/v1/gonum/mat:
//   - ToDense / ToVecDense export any float-viewable Matrix or Vector,
//   - FromDense / FromVecDense import a mat.Matrix / mat.Vector into a static
//     shape, checking the runtime dimensions.
//
// Use converters to hand fixed-size data to gonum's decompositions and to
// bring the results back under compile-time shapes.
package converters
