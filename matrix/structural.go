// SPDX-License-Identifier: MIT

// Package matrix - structural operations: transpose, identity, row swaps.
//
// Shape predicates live in the signatures: TransposeInPlace and Identity only
// accept Matrix[T, N, N], so a non-square request does not compile.

package matrix

// Transpose returns a new matrix with rows and columns swapped (mᵀ):
// result(y, x) == m(x, y). Transpose(Transpose(m)) equals m.
//
// Determinism:
//   - Fixed y→x copy order.
//
// Complexity:
//   - Time O(W*H), Space O(W*H).
func Transpose[T Element[T], W, H Dim](m Matrix[T, W, H]) Matrix[T, H, W] {
	w, h := shape[W, H]()
	out := alloc[T, H, W]()
	// m.cells[y*w + x] → out.cells[x*h + y]
	var x, y int
	for y = 0; y < h; y++ {
		for x = 0; x < w; x++ {
			out.cells[x*h+y] = m.cell(y*w + x)
		}
	}

	return out
}

// TransposeInPlace swaps the cells of a square matrix across its diagonal
// without extra storage.
func TransposeInPlace[T Element[T], N Dim](m *Matrix[T, N, N]) {
	n := sizeOf[N]()
	m.materialize()
	var x, y int
	for x = 0; x < n; x++ {
		for y = x + 1; y < n; y++ {
			m.cells[y*n+x], m.cells[x*n+y] = m.cells[x*n+y], m.cells[y*n+x]
		}
	}
}

// Identity returns the square matrix with T's multiplicative unit on the
// diagonal and T's additive unit elsewhere.
func Identity[T Unital[T], N Dim]() Matrix[T, N, N] {
	n := sizeOf[N]()
	out := alloc[T, N, N]()
	var one T
	one = one.One()
	for i := 0; i < n; i++ {
		out.cells[i*n+i] = one
	}

	return out
}

// SwapRows exchanges rows r1 and r2 in place.
// Out-of-range rows panic with an error wrapping ErrOutOfRange.
func (m *Matrix[T, W, H]) SwapRows(r1, r2 int) {
	m.offset(opSet, 0, r1)
	m.offset(opSet, 0, r2)
	if r1 == r2 {
		return
	}
	m.materialize()
	w := sizeOf[W]()
	a, b := m.cells[r1*w:(r1+1)*w], m.cells[r2*w:(r2+1)*w]
	for x := 0; x < w; x++ {
		a[x], b[x] = b[x], a[x]
	}
}
