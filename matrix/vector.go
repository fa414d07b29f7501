// SPDX-License-Identifier: MIT

// Package matrix - generic vector helpers.
//
// A column vector is Vector[T, H] (one cell wide); a row vector is
// RowVector[T, W] (one cell tall). The helpers below only accept those shapes,
// so single-index access, dot products and cross products on a general matrix
// do not compile.
//
// The named-field fast paths for lengths 2, 3 and 4 live in small.go.

package matrix

// Elem returns row y of a column vector (single-index access).
func Elem[T Element[T], H Dim](v Vector[T, H], y int) T {
	return v.At(0, y)
}

// SetElem writes row y of a column vector.
func SetElem[T Element[T], H Dim](v *Vector[T, H], y int, val T) {
	v.Set(0, y, val)
}

// Dot returns Σ a[y]·b[y] over two column vectors of the same length.
// The sum starts at P's zero and runs y = 0..H-1.
func Dot[P Element[P], L interface {
	Element[L]
	Multiplier[R, P]
}, R Element[R], H Dim](a Vector[L, H], b Vector[R, H]) P {
	return dot[P](a.cells, b.cells, sizeOf[H]())
}

// DotRow is Dot for row vectors.
func DotRow[P Element[P], L interface {
	Element[L]
	Multiplier[R, P]
}, R Element[R], W Dim](a RowVector[L, W], b RowVector[R, W]) P {
	return dot[P](a.cells, b.cells, sizeOf[W]())
}

// dot accumulates n products over flat storage; nil storage reads as zeros.
func dot[P Element[P], L Multiplier[R, P], R any](a []L, b []R, n int) P {
	var acc P
	var zl L
	var zr R
	for i := 0; i < n; i++ {
		l, r := zl, zr
		if a != nil {
			l = a[i]
		}
		if b != nil {
			r = b[i]
		}
		acc = acc.Add(l.Mul(r))
	}

	return acc
}

// cross3 is the determinant expansion shared by the column and row forms.
func cross3[P Element[P], L Multiplier[R, P], R any](a0, a1, a2 L, b0, b1, b2 R) (P, P, P) {
	return a1.Mul(b2).Sub(a2.Mul(b1)),
		a2.Mul(b0).Sub(a0.Mul(b2)),
		a0.Mul(b1).Sub(a1.Mul(b0))
}

// Cross returns the 3-dimensional cross product a × b as a column vector.
func Cross[P Element[P], L interface {
	Element[L]
	Multiplier[R, P]
}, R Element[R]](a Vector[L, D3], b Vector[R, D3]) Vector[P, D3] {
	x, y, z := cross3[P](a.cell(0), a.cell(1), a.cell(2), b.cell(0), b.cell(1), b.cell(2))

	return New[P, D1, D3](x, y, z)
}

// Cross2 returns the scalar 2-dimensional cross product a0·b1 − a1·b0.
func Cross2[P Element[P], L interface {
	Element[L]
	Multiplier[R, P]
}, R Element[R]](a Vector[L, D2], b Vector[R, D2]) P {
	return a.cell(0).Mul(b.cell(1)).Sub(a.cell(1).Mul(b.cell(0)))
}

// CrossRow is Cross for row vectors.
func CrossRow[P Element[P], L interface {
	Element[L]
	Multiplier[R, P]
}, R Element[R]](a RowVector[L, D3], b RowVector[R, D3]) RowVector[P, D3] {
	x, y, z := cross3[P](a.cell(0), a.cell(1), a.cell(2), b.cell(0), b.cell(1), b.cell(2))

	return New[P, D3, D1](x, y, z)
}

// CrossRow2 is Cross2 for row vectors.
func CrossRow2[P Element[P], L interface {
	Element[L]
	Multiplier[R, P]
}, R Element[R]](a RowVector[L, D2], b RowVector[R, D2]) P {
	return a.cell(0).Mul(b.cell(1)).Sub(a.cell(1).Mul(b.cell(0)))
}

// Length returns the Euclidean length √(v·v) of a column vector.
// MAIN DESCRIPTION:
//   - The sum of squares is taken in the DownCastType D, so a mutating T (a
//     length whose square is an area) never has to represent T·T.
//
// Implementation:
//   - Stage 1: Σ d², d = v[y].Down(), accumulated in D.
//   - Stage 2: Sqrt in D, then Lift back into T.
//
// Complexity:
//   - Time O(H), Space O(1).
//
// AI-Hints:
//   - D is never inferred: Length[F64](v).
func Length[D Real[D], T interface {
	Element[T]
	Downcaster[D]
	Lifter[T, D]
}, H Dim](v Vector[T, H]) T {
	n := sizeOf[H]()
	var sum D
	for y := 0; y < n; y++ {
		d := v.cell(y).Down()
		sum = sum.Add(d.Mul(d))
	}
	var out T

	return out.Lift(sum.Sqrt())
}

// Norm is Length for stable-type scalars, with every type inferred.
func Norm[T Scalar[T], H Dim](v Vector[T, H]) T {
	return Length[T, T, H](v)
}
