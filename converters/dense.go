// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/fixmat/matrix"
)

var (
	// ErrShape is returned when a gonum matrix does not have the static shape of
	// the destination. It wraps matrix.ErrDimensionMismatch.
	ErrShape = fmt.Errorf("converters: %w", matrix.ErrDimensionMismatch)

	// ErrNilSource is returned when the gonum source is nil.
	ErrNilSource = errors.New("converters: nil source")
)

// floatCell is the cell constraint of every export.
type floatCell[T any] interface {
	matrix.Element[T]
	matrix.Float64er
}

// ToDense copies m into a new H×W *mat.Dense (gonum counts rows first).
// Complexity: Time O(W*H), Space O(W*H).
func ToDense[T floatCell[T], W, H matrix.Dim](m matrix.Matrix[T, W, H]) *mat.Dense {
	w, h := m.Width(), m.Height()
	data := make([]float64, 0, w*h)
	for _, row := range m.Rows() {
		for _, c := range row {
			data = append(data, c.Float64())
		}
	}

	return mat.NewDense(h, w, data)
}

// ToVecDense copies a column vector into a new *mat.VecDense.
func ToVecDense[T floatCell[T], H matrix.Dim](v matrix.Vector[T, H]) *mat.VecDense {
	n := v.Height()
	data := make([]float64, n)
	for y := 0; y < n; y++ {
		data[y] = matrix.Elem(v, y).Float64()
	}

	return mat.NewVecDense(n, data)
}

// FromDense copies any gonum matrix into Matrix[F64, W, H].
// Implementation:
//   - Stage 1: reject nil and compare d.Dims() against (H, W).
//   - Stage 2: copy cell by cell through At (works for views and transposes).
//
// Errors:
//   - ErrNilSource for a nil d, including a typed nil gonum pointer.
//   - ErrShape (errors.Is also matches matrix.ErrDimensionMismatch) on a shape mismatch.
func FromDense[W, H matrix.Dim](d mat.Matrix) (matrix.Matrix[matrix.F64, W, H], error) {
	out := matrix.Zero[matrix.F64, W, H]()
	if isNil(d) {
		return out, ErrNilSource
	}
	r, c := d.Dims()
	if r != out.Height() || c != out.Width() {
		return out, fmt.Errorf("FromDense: got %dx%d, want %dx%d: %w", r, c, out.Height(), out.Width(), ErrShape)
	}
	var x, y int
	for y = 0; y < r; y++ {
		for x = 0; x < c; x++ {
			out.Set(x, y, matrix.F64(d.At(y, x)))
		}
	}

	return out, nil
}

// FromVecDense copies a gonum vector into Vector[F64, H].
//
// Errors:
//   - ErrNilSource for a nil v, including a typed nil *mat.VecDense.
//   - ErrShape when v.Len() differs from H.
func FromVecDense[H matrix.Dim](v mat.Vector) (matrix.Vector[matrix.F64, H], error) {
	out := matrix.Zero[matrix.F64, matrix.D1, H]()
	if isNil(v) {
		return out, ErrNilSource
	}
	if v.Len() != out.Height() {
		return out, fmt.Errorf("FromVecDense: got length %d, want %d: %w", v.Len(), out.Height(), ErrShape)
	}
	for y := 0; y < v.Len(); y++ {
		matrix.SetElem(&out, y, matrix.F64(v.AtVec(y)))
	}

	return out, nil
}

// isNil reports an untyped nil interface or a nil pointer of one of gonum's
// concrete types. Dims on either would panic.
func isNil(m mat.Matrix) bool {
	switch t := m.(type) {
	case nil:
		return true
	case *mat.Dense:
		return t == nil
	case *mat.VecDense:
		return t == nil
	case *mat.SymDense:
		return t == nil
	case *mat.TriDense:
		return t == nil
	case *mat.DiagDense:
		return t == nil
	case *mat.BandDense:
		return t == nil
	}

	return false
}
