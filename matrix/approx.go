// SPDX-License-Identifier: MIT

// Package matrix - tolerant comparison, finiteness checks and fixed-precision
// rendering for float-viewable cells.
//
// Exact Equal is the algebraic equality; these helpers exist because every
// floating-point inverse or product picks up rounding error.

package matrix

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AllClose reports whether every pair of corresponding cells is within the
// configured tolerance.
// Implementation:
//   - Stage 1: resolve options (eps, absolute/relative rule).
//   - Stage 2: scan row-major; a NaN or ±Inf on either side fails immediately.
//   - Stage 3: compare |a-b| against eps (absolute) or eps·max(1,|a|,|b|) (relative).
//
// Determinism:
//   - Fixed row-major scan; early exit on the first violation.
//
// Complexity:
//   - Time O(W*H), Space O(1).
//
// AI-Hints:
//   - Use WithRelative for large-magnitude data where an absolute eps is meaningless.
func AllClose[T interface {
	Element[T]
	Float64er
}, W, H Dim](a, b Matrix[T, W, H], opts ...Option) bool {
	o := gatherOptions(opts...)
	n := a.Len()
	for i := 0; i < n; i++ {
		av, bv := a.cell(i).Float64(), b.cell(i).Float64()
		if isNonFinite(av) || isNonFinite(bv) {
			return false
		}
		tol := o.eps
		if o.relative {
			tol *= math.Max(1, math.Max(math.Abs(av), math.Abs(bv)))
		}
		if math.Abs(av-bv) > tol {
			return false
		}
	}

	return true
}

// CheckFinite returns an error wrapping ErrNonFinite naming the first NaN or
// ±Inf cell, or nil when every cell is finite. Singular inversions of float
// matrices are the usual source of such cells.
func CheckFinite[T interface {
	Element[T]
	Float64er
}, W, H Dim](m Matrix[T, W, H]) error {
	w, h := shape[W, H]()
	var x, y int
	for y = 0; y < h; y++ {
		for x = 0; x < w; x++ {
			if v := m.cell(y*w + x).Float64(); isNonFinite(v) {
				return matrixErrorf(opFinite, fmt.Errorf("cell (%d,%d) = %v: %w", x, y, v, ErrNonFinite))
			}
		}
	}

	return nil
}

// Format renders m with the String layout ("[a, b]\n" per row) using the
// configured precision for every cell.
func Format[T interface {
	Element[T]
	Float64er
}, W, H Dim](m Matrix[T, W, H], opts ...Option) string {
	o := gatherOptions(opts...)
	w, h := shape[W, H]()
	var b strings.Builder
	for y := 0; y < h; y++ {
		b.WriteString(_fmtRowOpen)
		for x := 0; x < w; x++ {
			b.WriteString(strconv.FormatFloat(m.cell(y*w+x).Float64(), 'f', o.precision, 64))
			if x+1 < w {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
