// SPDX-License-Identifier: MIT

// Package matrix - Gauss-Jordan inversion with partial pivoting.
//
// Purpose:
//   - Invert square matrices of any element type that downcasts to a
//     dimensionless DownCastType D, including mutating types whose inverse has
//     a different type than the source (metres → per-metre).
//   - Report the determinant alongside the inverse; a zero determinant is the
//     singular-matrix signal (Inverse never returns an error, TryInverse does).
//
// Numeric policy:
//   - Pivot search, elimination factors and the running determinant live in D.
//     The working copy is M downcast cell by cell; the accumulator keeps the
//     caller-named inverse type and is only ever scaled by D factors.
//   - A zero pivot short-circuits before any division, so the elimination
//     itself never produces NaN/Inf.

package matrix

// Inverse computes M⁻¹ and det(M) by Gauss-Jordan elimination.
// MAIN DESCRIPTION:
//   - Inv is T's multiplicative-inverse type, Det is the type of T raised to the
//     N-th power, D is the DownCastType used for bookkeeping. Go cannot derive
//     Inv or Det from T, so the caller names all three.
//
// Implementation:
//   - Stage 1: result ← Identity of Inv; work ← M downcast into D; det ← one.
//   - Stage 2 (per column k): pick the row p ≥ k with the largest |work(k, p)|;
//     ties keep the lowest index. Swap rows p and k in work and result when
//     p ≠ k and negate det.
//   - Stage 3: a zero pivot means M is singular: return the accumulator as it
//     stands together with Det's zero value.
//   - Stage 4: scale row k of work and result by 1/pivot; det ← det × pivot.
//     Subtract f·row k from every lower row i (f = work(k, i)) so that column k
//     below the pivot becomes zero. Rows whose factor is already zero are skipped.
//   - Stage 5 (back-substitution, k = N-1..1): subtract work(k, i)·row k from
//     every row i < k, clearing the upper triangle.
//   - Stage 6: emit Det.Lift(det).
//
// Behavior highlights:
//   - Partial pivoting for stability; the first maximal row wins.
//   - M is never mutated.
//
// Inputs:
//   - m: square matrix of T.
//
// Returns:
//   - Matrix[Inv, N, N]: the inverse; unspecified when det is zero.
//   - Det: the determinant (zero when M is singular).
//
// Determinism:
//   - Fixed column-by-column traversal; identical inputs give identical bits.
//
// Complexity:
//   - Time O(N³), Space O(N²).
//
// AI-Hints:
//   - Check det before trusting the inverse, or call TryInverse.
//   - Stable-type scalars can use Invert(m) with everything inferred.
//   - Mutating types: Inverse[units.PerMeter, units.SquareMeters, matrix.F64](m).
func Inverse[Inv InverseElement[Inv, D], Det Lifter[Det, D], D Real[D], T Invertible[T, D], N Dim](
	m Matrix[T, N, N],
) (Matrix[Inv, N, N], Det) {
	n := sizeOf[N]()
	res := Identity[Inv, N]()
	work := Map(m, func(c T) D { return c.Down() })

	det, ok := forwardEliminate(&work, rowOps[D]{
		swap:  res.SwapRows,
		scale: func(k int, s D) { scaleRow(res.cells[k*n:(k+1)*n], s) },
		sub:   func(i, k int, f D) { subRow(res.cells[i*n:(i+1)*n], res.cells[k*n:(k+1)*n], f) },
	})
	var noDet Det
	if !ok {
		return res, noDet
	}

	// Stage 5: back-substitution, bottom to top.
	var zero D
	var i, k int
	for k = n - 1; k > 0; k-- {
		for i = 0; i < k; i++ {
			f := work.cells[i*n+k]
			if f == zero {
				continue
			}
			subRowD(work.cells[i*n:(i+1)*n], work.cells[k*n:(k+1)*n], f)
			subRow(res.cells[i*n:(i+1)*n], res.cells[k*n:(k+1)*n], f)
		}
	}

	return res, noDet.Lift(det)
}

// rowOps mirrors the elementary row operations of the forward pass onto a
// companion matrix (the inverse accumulator).
type rowOps[D any] struct {
	swap  func(r1, r2 int)
	scale func(k int, s D)
	sub   func(i, k int, f D)
}

// forwardEliminate reduces work to unit upper-triangular form in place and
// returns the determinant of the original. ok is false on a zero pivot, in
// which case work and the companion stop mid-elimination.
func forwardEliminate[D Real[D], N Dim](work *Matrix[D, N, N], ops rowOps[D]) (det D, ok bool) {
	n := sizeOf[N]()
	work.materialize()

	var zero, one D
	one = one.One()
	det = one

	var i, k int
	for k = 0; k < n; k++ {
		// Stage 2: partial pivoting over the current working copy.
		p := maxInSubColumn(*work, k, k)
		if p != k {
			work.SwapRows(k, p)
			if ops.swap != nil {
				ops.swap(k, p)
			}
			det = zero.Sub(det)
		}

		// Stage 3: singular short-circuit.
		pivot := work.cells[k*n+k]
		if pivot == zero {
			return zero, false
		}

		// Stage 4a: normalize the pivot row to a leading one.
		det = det.Mul(pivot)
		inv := one.Div(pivot)
		scaleRowD(work.cells[k*n:(k+1)*n], inv)
		if ops.scale != nil {
			ops.scale(k, inv)
		}

		// Stage 4b: clear column k below the pivot.
		for i = k + 1; i < n; i++ {
			f := work.cells[i*n+k]
			if f == zero {
				continue // nothing to clear
			}
			subRowD(work.cells[i*n:(i+1)*n], work.cells[k*n:(k+1)*n], f)
			if ops.sub != nil {
				ops.sub(i, k, f)
			}
		}
	}

	return det, true
}

// maxInSubColumn returns the row index in [startRow, N) whose cell in column
// col has the largest magnitude. Ties keep the lowest index.
func maxInSubColumn[D Real[D], N Dim](m Matrix[D, N, N], col, startRow int) int {
	n := sizeOf[N]()
	best := startRow
	bestAbs := m.cell(startRow*n + col).Abs()
	for y := startRow + 1; y < n; y++ {
		a := m.cell(y*n + col).Abs()
		if bestAbs.Less(a) { // strict: first maximum wins
			best, bestAbs = y, a
		}
	}

	return best
}

// scaleRow multiplies every cell of row by s.
func scaleRow[I Scaler[I, D], D any](row []I, s D) {
	for x := range row {
		row[x] = row[x].Scale(s)
	}
}

// subRow computes dst -= src·f.
func subRow[I interface {
	Element[I]
	Scaler[I, D]
}, D any](dst, src []I, f D) {
	for x := range dst {
		dst[x] = dst[x].Sub(src[x].Scale(f))
	}
}

func scaleRowD[D Real[D]](row []D, s D) {
	for x := range row {
		row[x] = row[x].Mul(s)
	}
}

func subRowD[D Real[D]](dst, src []D, f D) {
	for x := range dst {
		dst[x] = dst[x].Sub(src[x].Mul(f))
	}
}

// TryInverse is Inverse with the singular case reported as an error.
//
// Errors:
//   - ErrSingular (wrapped with the Inverse op tag) when the determinant is zero.
func TryInverse[Inv InverseElement[Inv, D], Det interface {
	comparable
	Lifter[Det, D]
}, D Real[D], T Invertible[T, D], N Dim](m Matrix[T, N, N]) (Matrix[Inv, N, N], Det, error) {
	inv, det := Inverse[Inv, Det, D](m)
	var zero Det
	if det == zero {
		return inv, det, matrixErrorf(opInverse, ErrSingular)
	}

	return inv, det, nil
}

// Determinant returns det(M) in the caller-named Det type. It runs only the
// forward pass of the elimination and allocates a single working copy.
func Determinant[Det Lifter[Det, D], D Real[D], T Invertible[T, D], N Dim](m Matrix[T, N, N]) Det {
	work := Map(m, func(c T) D { return c.Down() })
	var out Det
	det, ok := forwardEliminate(&work, rowOps[D]{})
	if !ok {
		return out
	}

	return out.Lift(det)
}

// Invert is Inverse for stable-type scalars: the inverse, determinant and
// DownCastType are all T.
func Invert[T Scalar[T], N Dim](m Matrix[T, N, N]) (Matrix[T, N, N], T) {
	return Inverse[T, T, T](m)
}

// Det returns the determinant of a stable-type scalar matrix.
func Det[T Scalar[T], N Dim](m Matrix[T, N, N]) T {
	return Determinant[T, T](m)
}
