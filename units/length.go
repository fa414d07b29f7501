// SPDX-License-Identifier: MIT

// Package units - length quantities.
//
// The four types form a closed family under multiplication by Meters:
//
//	PerMeter × Meters     = F64 (dimensionless)
//	Meters   × Meters     = SquareMeters
//	SquareMeters × Meters = CubicMeters
//
// Addition and subtraction stay within a type. Every type downcasts to
// matrix.F64 (its magnitude in SI base units) and lifts back from it, so F64 is
// the DownCastType for inversion and length computations.

package units

import (
	"strconv"

	"github.com/katalvlaran/fixmat/matrix"
)

// Meters is a length.
type Meters float64

// SquareMeters is an area.
type SquareMeters float64

// CubicMeters is a volume.
type CubicMeters float64

// PerMeter is an inverse length (the cell type of an inverted Meters matrix).
type PerMeter float64

// Unit suffixes used by String.
const (
	suffixMeters       = "m"
	suffixSquareMeters = "m²"
	suffixCubicMeters  = "m³"
	suffixPerMeter     = "/m"
)

// Compile-time assertions for the capabilities the matrix package asks for.
// Constraints that embed comparable cannot be variable types, hence the probes.
func probeInverse[Inv matrix.InverseElement[Inv, matrix.F64], Det matrix.Lifter[Det, matrix.F64], T matrix.Invertible[T, matrix.F64]]() {
}

func probeLength[T interface {
	matrix.Element[T]
	matrix.Downcaster[matrix.F64]
	matrix.Lifter[T, matrix.F64]
}]() {
}

var (
	_ = probeInverse[PerMeter, SquareMeters, Meters]
	_ = probeInverse[PerMeter, CubicMeters, Meters]
	_ = probeLength[Meters]

	_ matrix.Multiplier[Meters, SquareMeters] = Meters(0)
	_ matrix.Multiplier[Meters, CubicMeters]  = SquareMeters(0)
	_ matrix.Multiplier[Meters, matrix.F64]   = PerMeter(0)
	_ matrix.Divider[matrix.F64, Meters]      = Meters(0)
	_ matrix.Divider[Meters, Meters]          = SquareMeters(0)
	_ matrix.Scaler[Meters, matrix.F64]       = Meters(0)
	_ matrix.Lifter[CubicMeters, matrix.F64]  = CubicMeters(0)
	_ matrix.Float64er                        = CubicMeters(0)
)

// ---------- Meters ----------

func (a Meters) Add(b Meters) Meters       { return a + b }
func (a Meters) Sub(b Meters) Meters       { return a - b }
func (a Meters) Mul(b Meters) SquareMeters { return SquareMeters(a * b) }
func (a Meters) Div(s matrix.F64) Meters   { return a / Meters(s) }
func (a Meters) Scale(s matrix.F64) Meters { return a * Meters(s) }
func (a Meters) Down() matrix.F64          { return matrix.F64(a) }
func (Meters) Lift(v matrix.F64) Meters    { return Meters(v) }
func (a Meters) Float64() float64          { return float64(a) }
func (a Meters) String() string            { return format(float64(a), suffixMeters) }

// ---------- SquareMeters ----------

func (a SquareMeters) Add(b SquareMeters) SquareMeters { return a + b }
func (a SquareMeters) Sub(b SquareMeters) SquareMeters { return a - b }
func (a SquareMeters) Mul(b Meters) CubicMeters        { return CubicMeters(float64(a) * float64(b)) }
func (a SquareMeters) Div(b Meters) Meters             { return Meters(float64(a) / float64(b)) }
func (a SquareMeters) Scale(s matrix.F64) SquareMeters { return a * SquareMeters(s) }
func (a SquareMeters) Down() matrix.F64                { return matrix.F64(a) }
func (SquareMeters) Lift(v matrix.F64) SquareMeters    { return SquareMeters(v) }
func (a SquareMeters) Float64() float64                { return float64(a) }
func (a SquareMeters) String() string                  { return format(float64(a), suffixSquareMeters) }

// ---------- CubicMeters ----------

func (a CubicMeters) Add(b CubicMeters) CubicMeters  { return a + b }
func (a CubicMeters) Sub(b CubicMeters) CubicMeters  { return a - b }
func (a CubicMeters) Scale(s matrix.F64) CubicMeters { return a * CubicMeters(s) }
func (a CubicMeters) Down() matrix.F64               { return matrix.F64(a) }
func (CubicMeters) Lift(v matrix.F64) CubicMeters    { return CubicMeters(v) }
func (a CubicMeters) Float64() float64               { return float64(a) }
func (a CubicMeters) String() string                 { return format(float64(a), suffixCubicMeters) }

// ---------- PerMeter ----------

func (a PerMeter) Add(b PerMeter) PerMeter     { return a + b }
func (a PerMeter) Sub(b PerMeter) PerMeter     { return a - b }
func (a PerMeter) Mul(b Meters) matrix.F64     { return matrix.F64(float64(a) * float64(b)) }
func (PerMeter) One() PerMeter                 { return 1 }
func (a PerMeter) Scale(s matrix.F64) PerMeter { return a * PerMeter(s) }
func (a PerMeter) Down() matrix.F64            { return matrix.F64(a) }
func (PerMeter) Lift(v matrix.F64) PerMeter    { return PerMeter(v) }
func (a PerMeter) Float64() float64            { return float64(a) }
func (a PerMeter) String() string              { return format(float64(a), suffixPerMeter) }

// format renders the shortest exact value followed by the unit suffix.
func format(v float64, suffix string) string {
	return strconv.FormatFloat(v, 'g', -1, 64) + suffix
}
