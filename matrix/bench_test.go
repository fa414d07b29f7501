// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/fixmat/matrix"
)

// sinks to defeat dead-code elimination
var (
	sink4  M44
	sink8  matrix.Matrix[F, matrix.D8, matrix.D8]
	sinkF  F
	sinkV4 matrix.Vec4[F]
)

func BenchmarkAdd4x4(b *testing.B) {
	b.ReportAllocs()
	A, B := RandomSquare[matrix.D4](1337), RandomSquare[matrix.D4](4242)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink4 = A.Add(B)
	}
}

func BenchmarkMul4x4(b *testing.B) {
	b.ReportAllocs()
	A, B := RandomSquare[matrix.D4](1), RandomSquare[matrix.D4](2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink4 = matrix.Mul[F](A, B)
	}
}

func BenchmarkMul8x8(b *testing.B) {
	b.ReportAllocs()
	A, B := RandomSquare[matrix.D8](3), RandomSquare[matrix.D8](4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink8 = matrix.Mul[F](A, B)
	}
}

func BenchmarkInvert4x4(b *testing.B) {
	b.ReportAllocs()
	A := RandomSquare[matrix.D4](5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink4, sinkF = matrix.Invert(A)
	}
}

func BenchmarkInvert8x8(b *testing.B) {
	b.ReportAllocs()
	A := RandomSquare[matrix.D8](6)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink8, sinkF = matrix.Invert(A)
	}
}

func BenchmarkDet8x8(b *testing.B) {
	b.ReportAllocs()
	A := RandomSquare[matrix.D8](7)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = matrix.Det(A)
	}
}

// BenchmarkVec4_NamedVsGeneric compares the named-field path against the
// generic column vector for the same transform-and-project step.
func BenchmarkVec4_NamedVsGeneric(b *testing.B) {
	A := RandomSquare[matrix.D4](8)
	p := matrix.V4[F](1, 2, 3, 1)

	b.Run("named", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			sinkV4 = matrix.Project(p.Add(p))
		}
	})
	b.Run("generic", func(b *testing.B) {
		b.ReportAllocs()
		v := p.Matrix()
		for i := 0; i < b.N; i++ {
			sinkV4 = matrix.Project(matrix.Vec4Of(matrix.Mul[F](A, v)))
		}
	})
}
