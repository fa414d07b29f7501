// SPDX-License-Identifier: MIT

// Package matrix: element capabilities.
// This file contains ONLY the constraint interfaces that describe what an
// element type can do. Operations ask for the narrowest capability they need,
// so an element type only implements what it uses.
//
// Two algebraic shapes are supported:
//   - Stable-type elements: every operator returns the same type (F64, F32, Int).
//   - Mutating-type elements: Mul/Div may return a different type (a length
//     times a length is an area). Addition and subtraction stay closed over T.
//
// Conventions shared by every capability:
//   - The zero value of an element type is its additive unit.
//   - One and Lift are called on the zero value; their receiver is ignored.
//   - A Go type owns a single Mul and a single Div method, so it has exactly one
//     multiplication partner per method. Pairs without a method use ScaleFunc
//     and MulFunc.
package matrix

// Element is the minimum every cell type satisfies: closed addition and
// subtraction, plus == for equality.
type Element[T any] interface {
	comparable
	Add(T) T
	Sub(T) T
}

// Unital is an Element with a multiplicative unit (needed by Identity).
type Unital[T any] interface {
	Element[T]
	One() T
}

// Multiplier multiplies the receiver by S, producing P (P may differ from the receiver).
type Multiplier[S, P any] interface {
	Mul(S) P
}

// Divider divides the receiver by S, producing Q.
type Divider[S, Q any] interface {
	Div(S) Q
}

// Scaler multiplies the receiver by a dimensionless factor of the DownCastType D
// and keeps the receiver's type. Row operations during inversion rely on it.
type Scaler[T, D any] interface {
	Scale(D) T
}

// Downcaster strips type information off the receiver, returning its value in
// the DownCastType D.
type Downcaster[D any] interface {
	Down() D
}

// Lifter builds a T from a DownCastType value.
type Lifter[T, D any] interface {
	Lift(D) T
}

// Real is the contract of a DownCastType: every operator returns D itself, so
// it can accumulate products of any length without drifting type.
type Real[D any] interface {
	Element[D]
	Mul(D) D
	Div(D) D
	One() D
	Abs() D
	Less(D) bool
	Sqrt() D
}

// Scalar is a stable-type element that is its own DownCastType, inverse type
// and determinant type. F64 and F32 satisfy it.
type Scalar[T any] interface {
	Real[T]
	Scaler[T, T]
	Downcaster[T]
	Lifter[T, T]
}

// Float64er exposes a float64 view of a cell, used for tolerance comparisons,
// formatting and interop with float64 libraries.
type Float64er interface {
	Float64() float64
}

// Invertible is what Inverse and Determinant need from the source cell type T:
// elimination runs on the downcast values, so T only has to strip its type.
type Invertible[T, D any] interface {
	Element[T]
	Downcaster[D]
}

// InverseElement is what Inverse needs from the produced cell type.
type InverseElement[I, D any] interface {
	Unital[I]
	Scaler[I, D]
}
