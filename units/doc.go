// Package units provides length quantities that change type under
// multiplication: Meters × Meters is SquareMeters, SquareMeters × Meters is
// CubicMeters, and PerMeter × Meters is a plain matrix.F64.
//
// They plug straight into package matrix: a Matrix[Meters, N, N] multiplies
// into areas, inverts into PerMeter cells with an area (N = 2) or volume
// (N = 3) determinant, and measures its column vectors in Meters.
package units
