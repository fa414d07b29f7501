// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic operator suite over fixed-shape
// matrices: unary plus/minus, addition, subtraction, scalar multiply/divide and
// matrix-matrix multiplication, plus their in-place accumulation forms.
//
// Purpose:
//   - Name every operator explicitly (Go has no operator overloading).
//   - Let the type system reject shape mismatches: Add/Sub take the receiver's
//     exact type, Mul shares the inner dimension A between its operands.
//   - Allow the product type to differ from the operand types (mutating-type
//     elements), by returning Matrix[P, ...] with P chosen by the caller.
//
// Notes:
//   - Scalar operators (Scale, ScaleLeft, Div) and the matrix product (Mul) have
//     distinct names, so a matrix operand can never bind to the scalar form.
//   - Loops run in fixed row-major order for determinism; each output cell is
//     independent of every other.

package matrix

// Pos is unary plus: it returns an independent copy of m.
func (m Matrix[T, W, H]) Pos() Matrix[T, W, H] {
	return m.Clone()
}

// Neg is unary minus, computed as Zero() - m.
// Double negation round-trips: m.Neg().Neg().Equal(m).
func (m Matrix[T, W, H]) Neg() Matrix[T, W, H] {
	return Zero[T, W, H]().Sub(m)
}

// Add computes the element-wise sum m + o and returns a fresh matrix.
// Complexity: Time O(W*H), Space O(W*H).
func (m Matrix[T, W, H]) Add(o Matrix[T, W, H]) Matrix[T, W, H] {
	out := alloc[T, W, H]()
	for i := range out.cells {
		out.cells[i] = m.cell(i).Add(o.cell(i))
	}

	return out
}

// Sub computes the element-wise difference m - o and returns a fresh matrix.
// Complexity: Time O(W*H), Space O(W*H).
func (m Matrix[T, W, H]) Sub(o Matrix[T, W, H]) Matrix[T, W, H] {
	out := alloc[T, W, H]()
	for i := range out.cells {
		out.cells[i] = m.cell(i).Sub(o.cell(i))
	}

	return out
}

// AddAssign replaces m with m + o (the += operator). m receives fresh
// storage, so plain copies taken before the call keep their values.
func (m *Matrix[T, W, H]) AddAssign(o Matrix[T, W, H]) { *m = m.Add(o) }

// SubAssign replaces m with m - o (the -= operator).
func (m *Matrix[T, W, H]) SubAssign(o Matrix[T, W, H]) { *m = m.Sub(o) }

// Scale multiplies every cell by the scalar s on the right: out(x,y) = m(x,y) * s.
// MAIN DESCRIPTION:
//   - P is the product type of T × S and may differ from T.
//
// Inputs:
//   - m: any matrix whose cell type multiplies by S.
//   - s: the scalar (never a matrix: use Mul for matrix products). A Matrix
//     cannot satisfy Multiplier for any shipped element: none of them has a
//     Mul method taking a Matrix, and Matrix is not comparable.
//
// Returns:
//   - Matrix[P, W, H]: fresh result; m is not mutated.
//
// Complexity:
//   - Time O(W*H), Space O(W*H).
//
// AI-Hints:
//   - P cannot be inferred; name it first: Scale[F64](m, F64(2)).
//   - Pass a typed scalar: an untyped constant defaults to int and will not match T's Mul.
func Scale[P Element[P], T interface {
	Element[T]
	Multiplier[S, P]
}, S any, W, H Dim](m Matrix[T, W, H], s S) Matrix[P, W, H] {
	return ScaleFunc(m, s, func(c T, s S) P { return c.Mul(s) })
}

// ScaleLeft multiplies every cell by the scalar s on the left: out(x,y) = s * m(x,y).
// It matches Scale whenever S and T commute.
func ScaleLeft[P Element[P], S Multiplier[T, P], T Element[T], W, H Dim](s S, m Matrix[T, W, H]) Matrix[P, W, H] {
	out := alloc[P, W, H]()
	for i := range out.cells {
		out.cells[i] = s.Mul(m.cell(i))
	}

	return out
}

// ScaleFunc multiplies every cell by s using an explicit product function.
// Use it for element pairs that have no Mul method between them.
func ScaleFunc[P Element[P], T Element[T], S any, W, H Dim](m Matrix[T, W, H], s S, mul func(T, S) P) Matrix[P, W, H] {
	out := alloc[P, W, H]()
	for i := range out.cells {
		out.cells[i] = mul(m.cell(i), s)
	}

	return out
}

// Div divides every cell by the scalar s: out(x,y) = m(x,y) / s.
// Q is the quotient type of T / S. Division by a zero scalar follows T's own
// Div semantics (±Inf/NaN for floats, a runtime panic for Int).
func Div[Q Element[Q], T interface {
	Element[T]
	Divider[S, Q]
}, S any, W, H Dim](m Matrix[T, W, H], s S) Matrix[Q, W, H] {
	out := alloc[Q, W, H]()
	for i := range out.cells {
		out.cells[i] = m.cell(i).Div(s)
	}

	return out
}

// ScaleAssign replaces m with m * s (the *= operator). The product type
// must be T itself. Like AddAssign, m is rebound to fresh storage.
func ScaleAssign[T interface {
	Element[T]
	Multiplier[S, T]
}, S any, W, H Dim](m *Matrix[T, W, H], s S) {
	*m = Scale[T](*m, s)
}

// DivAssign replaces m with m / s (the /= operator). The quotient type must
// be T itself.
func DivAssign[T interface {
	Element[T]
	Divider[S, T]
}, S any, W, H Dim](m *Matrix[T, W, H], s S) {
	*m = Div[T](*m, s)
}

// Mul performs standard matrix multiplication C = L × R.
// Implementation:
//   - Stage 1: the shared inner dimension A is enforced by the signature
//     (L is A wide, R is A tall); no runtime validation is needed.
//   - Stage 2: for each output cell, accumulate Σᵢ L(i,y)·R(x,i) starting from P's zero.
//
// Behavior highlights:
//   - Result width = R's width (C), result height = L's height (B).
//   - Identity-preserving: Mul(M, Identity()) equals M.
//
// Inputs:
//   - l: left operand, A wide and B tall.
//   - r: right operand, C wide and A tall.
//
// Returns:
//   - Matrix[P, C, B]: fresh result; operands are not mutated.
//
// Determinism:
//   - Fixed y→x→i loop order, so accumulation order is stable across runs.
//
// Complexity:
//   - Time O(A*B*C), Space O(B*C).
//
// AI-Hints:
//   - Name P first: Mul[F64](a, b). Everything else is inferred from the operands.
func Mul[P Element[P], L interface {
	Element[L]
	Multiplier[R, P]
}, R Element[R], A, B, C Dim](l Matrix[L, A, B], r Matrix[R, C, A]) Matrix[P, C, B] {
	return MulFunc(l, r, func(a L, b R) P { return a.Mul(b) })
}

// MulFunc is Mul with an explicit cell product function.
func MulFunc[P Element[P], L Element[L], R Element[R], A, B, C Dim](l Matrix[L, A, B], r Matrix[R, C, A], mul func(L, R) P) Matrix[P, C, B] {
	inner := sizeOf[A]()
	w, h := shape[C, B]()
	out := alloc[P, C, B]()

	var x, y, i int // loop iterators (deterministic order)
	for y = 0; y < h; y++ {
		for x = 0; x < w; x++ {
			var acc P // accumulator starts at P's zero
			for i = 0; i < inner; i++ {
				acc = acc.Add(mul(l.cell(y*inner+i), r.cell(i*w+x)))
			}
			out.cells[y*w+x] = acc
		}
	}

	return out
}

// Map applies fn to every cell and returns the results, possibly of another type.
func Map[U Element[U], T Element[T], W, H Dim](m Matrix[T, W, H], fn func(T) U) Matrix[U, W, H] {
	out := alloc[U, W, H]()
	for i := range out.cells {
		out.cells[i] = fn(m.cell(i))
	}

	return out
}
