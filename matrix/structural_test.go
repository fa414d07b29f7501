// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/matrix"
)

func TestTranspose_ConcreteInvolution(t *testing.T) {
	t.Parallel()

	// Four values into a 2×3 grid; the last two cells stay zero.
	m := matrix.New[F, matrix.D2, matrix.D3](1, 2, 3, 4)
	mt := matrix.Transpose(m)

	require.Equal(t, 3, mt.Width())
	require.Equal(t, 2, mt.Height())
	require.Equal(t, [][]F{{1, 3, 0}, {2, 4, 0}}, mt.Rows())
	RequireEqual(t, m, matrix.Transpose(mt))
}

func TestTranspose_CellRelation(t *testing.T) {
	t.Parallel()

	m := RandomSquare[matrix.D5](7)
	mt := matrix.Transpose(m)
	var x, y int
	for y = 0; y < 5; y++ {
		for x = 0; x < 5; x++ {
			require.Equal(t, m.At(x, y), mt.At(y, x))
		}
	}
}

func TestTransposeInPlace_MatchesTranspose(t *testing.T) {
	t.Parallel()

	m := RandomSquare[matrix.D4](11)
	want := matrix.Transpose(m)
	matrix.TransposeInPlace(&m)
	RequireEqual(t, want, m)

	var z M33
	matrix.TransposeInPlace(&z)
	RequireEqual(t, matrix.Zero[F, matrix.D3, matrix.D3](), z)
}

func TestIdentity(t *testing.T) {
	t.Parallel()

	id := matrix.Identity[F, matrix.D3]()
	require.Equal(t, [][]F{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, id.Rows())
	RequireEqual(t, id, matrix.Transpose(id))

	ints := matrix.Identity[matrix.Int, matrix.D2]()
	RequireEqual(t, matrix.New[matrix.Int, matrix.D2, matrix.D2](1, 0, 0, 1), ints)
}

func TestSwapRows(t *testing.T) {
	t.Parallel()

	m := MustFromRows[matrix.D2, matrix.D3](t, [][]F{{1, 2}, {3, 4}, {5, 6}})
	m.SwapRows(0, 2)
	require.Equal(t, [][]F{{5, 6}, {3, 4}, {1, 2}}, m.Rows())
	m.SwapRows(1, 1)
	require.Equal(t, [][]F{{5, 6}, {3, 4}, {1, 2}}, m.Rows())
}
