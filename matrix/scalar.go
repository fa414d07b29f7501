// SPDX-License-Identifier: MIT

// Package matrix - stable-type scalar elements.
//
// Purpose:
//   - Give the builtin numeric kinds the method set the operator suite needs.
//   - Keep literals cheap: untyped constants convert implicitly, so
//     New[F64, D2, D2](1, 2, 3, 4) needs no casts.
//
// F64 and F32 satisfy Scalar (they are their own DownCastType). Int satisfies
// Unital, Multiplier and Divider for integer arithmetic but is not Real
// (integer division cannot drive Gauss-Jordan elimination).

package matrix

import "math"

// F64 is a float64 matrix element.
type F64 float64

// F32 is a float32 matrix element.
type F32 float32

// Int is an int64 matrix element.
type Int int64

// Compile-time assertions for capability conformance. Constraints that embed
// comparable cannot be used as variable types, hence the generic probes.
func satisfiesScalar[T Scalar[T]]() {}
func satisfiesUnital[T Unital[T]]() {}

var (
	_ = satisfiesScalar[F64]
	_ = satisfiesScalar[F32]
	_ = satisfiesUnital[Int]

	_ Multiplier[Int, Int] = Int(0)
	_ Divider[Int, Int]    = Int(0)
	_ Float64er            = F64(0)
	_ Float64er            = F32(0)
	_ Float64er            = Int(0)
)

func (a F64) Add(b F64) F64    { return a + b }
func (a F64) Sub(b F64) F64    { return a - b }
func (a F64) Mul(b F64) F64    { return a * b }
func (a F64) Div(b F64) F64    { return a / b }
func (F64) One() F64           { return 1 }
func (a F64) Abs() F64         { return F64(math.Abs(float64(a))) }
func (a F64) Less(b F64) bool  { return a < b }
func (a F64) Sqrt() F64        { return F64(math.Sqrt(float64(a))) }
func (a F64) Scale(f F64) F64  { return a * f }
func (a F64) Down() F64        { return a }
func (F64) Lift(v F64) F64     { return v }
func (a F64) Float64() float64 { return float64(a) }

func (a F32) Add(b F32) F32    { return a + b }
func (a F32) Sub(b F32) F32    { return a - b }
func (a F32) Mul(b F32) F32    { return a * b }
func (a F32) Div(b F32) F32    { return a / b }
func (F32) One() F32           { return 1 }
func (a F32) Abs() F32         { return F32(math.Abs(float64(a))) }
func (a F32) Less(b F32) bool  { return a < b }
func (a F32) Sqrt() F32        { return F32(math.Sqrt(float64(a))) }
func (a F32) Scale(f F32) F32  { return a * f }
func (a F32) Down() F32        { return a }
func (F32) Lift(v F32) F32     { return v }
func (a F32) Float64() float64 { return float64(a) }

func (a Int) Add(b Int) Int    { return a + b }
func (a Int) Sub(b Int) Int    { return a - b }
func (a Int) Mul(b Int) Int    { return a * b }
func (a Int) Div(b Int) Int    { return a / b } // truncates toward zero; panics on zero like int64
func (Int) One() Int           { return 1 }
func (a Int) Float64() float64 { return float64(a) }
