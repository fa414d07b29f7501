// SPDX-License-Identifier: MIT

// Package matrix - fixed-shape dense storage (row-major) & accessors.
//
// Purpose:
//   - Provide a W-wide, H-tall grid whose shape is part of its type.
//   - Keep the explicit index formula y*W + x (row-major, cache-friendly row walks).
//   - Treat the zero value as a valid all-zero matrix; storage is allocated lazily.
//
// Value semantics:
//   - Every operation returns a matrix with freshly allocated storage; operands are
//     never aliased into results.
//   - Plain assignment copies the header only (as with any slice-backed Go type);
//     use Clone for an independent copy before mutating through Set or *Assign.
//
// Complexity quicksheet:
//   - New/Zero/Clone: O(W*H); At/Set: O(1); Equal: O(W*H).

package matrix

import (
	"fmt"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Matrix is a dense W×H grid of T. x selects the column (0..W-1) and y the row
// (0..H-1).
type Matrix[T Element[T], W, H Dim] struct {
	cells []T // row-major (offset = y*W + x); nil means "all zero"
}

// Vector is a column vector: a matrix one cell wide.
type Vector[T Element[T], H Dim] = Matrix[T, D1, H]

// RowVector is a row vector: a matrix one cell tall.
type RowVector[T Element[T], W Dim] = Matrix[T, W, D1]

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Matrix[F64, D2, D2]{}

// alloc returns a matrix with zero-filled storage of the right length.
func alloc[T Element[T], W, H Dim]() Matrix[T, W, H] {
	w, h := shape[W, H]()

	return Matrix[T, W, H]{cells: make([]T, w*h)}
}

// New builds a matrix from a flat initializer consumed row by row: row 0 left to
// right, then row 1, and so on.
//
// Behavior highlights:
//   - Fewer values than cells: the remaining cells stay zero.
//   - More values than cells: the excess is silently dropped.
//
// Example:
//
//	m := New[F64, D2, D2](4, 2, 8, 1) // [[4, 2], [8, 1]]
//
// Complexity:
//   - Time O(W*H), Space O(W*H).
func New[T Element[T], W, H Dim](values ...T) Matrix[T, W, H] {
	m := alloc[T, W, H]()
	copy(m.cells, values) // copy stops at the shorter slice

	return m
}

// Zero returns the matrix whose every cell is T's additive unit.
func Zero[T Element[T], W, H Dim]() Matrix[T, W, H] {
	return alloc[T, W, H]()
}

// FromRows builds a matrix from nested rows with a runtime shape check.
// MAIN DESCRIPTION:
//   - Bridge from runtime-shaped data (decoded documents, slices) into the static shape.
//
// Returns:
//   - Matrix with rows[y][x] at (x, y).
//
// Errors:
//   - ErrDimensionMismatch when len(rows) != H or any len(rows[y]) != W.
//
// Complexity:
//   - Time O(W*H), Space O(W*H).
func FromRows[T Element[T], W, H Dim](rows [][]T) (Matrix[T, W, H], error) {
	w, h := shape[W, H]()
	if len(rows) != h {
		return Matrix[T, W, H]{}, matrixErrorf(opFromRows,
			fmt.Errorf("got %d rows, want %d: %w", len(rows), h, ErrDimensionMismatch))
	}
	m := alloc[T, W, H]()
	for y, row := range rows {
		if len(row) != w {
			return Matrix[T, W, H]{}, matrixErrorf(opFromRows,
				fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrDimensionMismatch))
		}
		copy(m.cells[y*w:(y+1)*w], row)
	}

	return m, nil
}

// Width returns the number of columns (W).
func (m Matrix[T, W, H]) Width() int { return sizeOf[W]() }

// Height returns the number of rows (H).
func (m Matrix[T, W, H]) Height() int { return sizeOf[H]() }

// Len returns the number of cells (W*H).
func (m Matrix[T, W, H]) Len() int { return sizeOf[W]() * sizeOf[H]() }

// offset validates (x, y) against the static shape and returns the flat index.
func (m Matrix[T, W, H]) offset(tag string, x, y int) int {
	w, h := shape[W, H]()
	if x < 0 || x >= w || y < 0 || y >= h {
		indexPanic(tag, x, y, w, h)
	}

	return y*w + x
}

// cell reads the flat index i, treating nil storage as all-zero.
func (m Matrix[T, W, H]) cell(i int) T {
	if m.cells == nil {
		var zero T
		return zero
	}

	return m.cells[i]
}

// At returns the cell in column x, row y.
// Out-of-range coordinates panic with an error wrapping ErrOutOfRange.
func (m Matrix[T, W, H]) At(x, y int) T {
	return m.cell(m.offset(opAt, x, y))
}

// Set writes v into column x, row y.
// Out-of-range coordinates panic with an error wrapping ErrOutOfRange.
func (m *Matrix[T, W, H]) Set(x, y int, v T) {
	i := m.offset(opSet, x, y)
	m.materialize()
	m.cells[i] = v
}

// materialize allocates storage for a zero-value matrix before the first write.
func (m *Matrix[T, W, H]) materialize() {
	if m.cells == nil {
		*m = alloc[T, W, H]()
	}
}

// Clone returns a deep copy; the result shares nothing with m.
func (m Matrix[T, W, H]) Clone() Matrix[T, W, H] {
	out := alloc[T, W, H]()
	copy(out.cells, m.cells) // nil source leaves zeros

	return out
}

// Equal reports whether every pair of corresponding cells compares equal.
// Determinism: fixed row-major scan; stops at the first difference.
func (m Matrix[T, W, H]) Equal(o Matrix[T, W, H]) bool {
	n := m.Len()
	for i := 0; i < n; i++ {
		if m.cell(i) != o.cell(i) {
			return false
		}
	}

	return true
}

// NotEqual is the negation of Equal.
func (m Matrix[T, W, H]) NotEqual(o Matrix[T, W, H]) bool { return !m.Equal(o) }

// Rows returns a nested row-major copy: Rows()[y][x] == At(x, y).
func (m Matrix[T, W, H]) Rows() [][]T {
	w, h := shape[W, H]()
	out := make([][]T, h)
	for y := 0; y < h; y++ {
		row := make([]T, w)
		for x := 0; x < w; x++ {
			row[x] = m.cell(y*w + x)
		}
		out[y] = row
	}

	return out
}

// Row extracts row y as a row vector.
func (m Matrix[T, W, H]) Row(y int) RowVector[T, W] {
	w := sizeOf[W]()
	m.offset(opAt, 0, y)
	out := alloc[T, W, D1]()
	for x := 0; x < w; x++ {
		out.cells[x] = m.cell(y*w + x)
	}

	return out
}

// Col extracts column x as a column vector.
func (m Matrix[T, W, H]) Col(x int) Vector[T, H] {
	w, h := shape[W, H]()
	m.offset(opAt, x, 0)
	out := alloc[T, D1, H]()
	for y := 0; y < h; y++ {
		out.cells[y] = m.cell(y*w + x)
	}

	return out
}

// ToScalar unwraps a 1×1 matrix into its single cell.
func ToScalar[T Element[T]](m Matrix[T, D1, D1]) T {
	return m.cell(0)
}

// String renders one bracketed row per line: "[a, b]\n[c, d]\n".
func (m Matrix[T, W, H]) String() string {
	w, h := shape[W, H]()
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(_fmtRowOpen)
		for x := 0; x < w; x++ {
			fmt.Fprintf(&b, "%v", m.cell(y*w+x))
			if x+1 < w {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
