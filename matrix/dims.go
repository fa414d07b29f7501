// SPDX-License-Identifier: MIT

// Package matrix - compile-time dimensions.
//
// Purpose:
//   - Encode width and height in the TYPE of a matrix so that shape-incompatible
//     operations (A.Cols != B.Rows in Mul, Add of different shapes, Identity of a
//     non-square shape) simply do not type-check.
//
// Go has no value generics, so a dimension is a zero-size phantom type whose
// Size method reports the extent. D1..D8 cover the common cases; callers may
// declare their own:
//
//	type D12 struct{}
//	func (D12) Size() int { return 12 }
//
// Complexity: Size is O(1) and inlines to a constant.

package matrix

import "fmt"

// Dim is a compile-time extent (width or height) of a Matrix.
// Implementations must be value types whose zero value reports the extent.
type Dim interface {
	Size() int
}

// Predeclared dimensions.
type (
	D1 struct{}
	D2 struct{}
	D3 struct{}
	D4 struct{}
	D5 struct{}
	D6 struct{}
	D7 struct{}
	D8 struct{}
)

func (D1) Size() int { return 1 }
func (D2) Size() int { return 2 }
func (D3) Size() int { return 3 }
func (D4) Size() int { return 4 }
func (D5) Size() int { return 5 }
func (D6) Size() int { return 6 }
func (D7) Size() int { return 7 }
func (D8) Size() int { return 8 }

// sizeOf returns the extent of D and panics with ErrBadShape on a
// non-positive extent (programmer error in a user-declared Dim).
func sizeOf[D Dim]() int {
	var d D
	n := d.Size()
	if n < 1 {
		panic(fmt.Errorf("%s: %T.Size()=%d: %w", opNew, d, n, ErrBadShape))
	}

	return n
}

// shape returns (width, height) for the pair W, H.
func shape[W, H Dim]() (int, int) {
	return sizeOf[W](), sizeOf[H]()
}
