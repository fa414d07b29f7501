// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion shortcuts shared by
//     every test file in the package.
//   - Keep all data finite and well-formed unless a test is about NaN/Inf.

package matrix_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/matrix"
)

// Shorthands for the shapes used most across tests.
type (
	F   = matrix.F64
	M22 = matrix.Matrix[F, matrix.D2, matrix.D2]
	M23 = matrix.Matrix[F, matrix.D2, matrix.D3]
	M33 = matrix.Matrix[F, matrix.D3, matrix.D3]
	M44 = matrix.Matrix[F, matrix.D4, matrix.D4]
)

// closeEps is the tolerance for results that pass through a division.
const closeEps = 1e-12

// D0 is a deliberately broken dimension (Size() < 1).
type D0 struct{}

func (D0) Size() int { return 0 }

// MustFromRows BUILDS a W×H matrix from nested rows or fails the test.
// Implementation:
//   - Stage 1: call matrix.FromRows.
//   - Stage 2: require.NoError to abort early on a shape typo in the fixture.
//
// Notes:
//   - Prefer this over New in tests whose fixtures read better as a grid.
func MustFromRows[W, H matrix.Dim](t testing.TB, rows [][]F) matrix.Matrix[F, W, H] {
	t.Helper()
	m, err := matrix.FromRows[F, W, H](rows)
	require.NoError(t, err)

	return m
}

// RequireClose asserts AllClose(want, got) with closeEps and prints both on failure.
func RequireClose[W, H matrix.Dim](t testing.TB, want, got matrix.Matrix[F, W, H]) {
	t.Helper()
	require.Truef(t, matrix.AllClose(want, got, matrix.WithEpsilon(closeEps)),
		"want:\n%vgot:\n%v", want, got)
}

// RequireEqual asserts exact cell equality and prints both on failure.
func RequireEqual[T matrix.Element[T], W, H matrix.Dim](t testing.TB, want, got matrix.Matrix[T, W, H]) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want:\n%vgot:\n%v", want, got)
}

// RequirePanicsWith runs fn and asserts it panics with an error matching target.
func RequirePanicsWith(t testing.TB, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.Truef(t, ok, "panic value %#v is not an error", r)
		require.Truef(t, errors.Is(err, target), "panic %v does not wrap %v", err, target)
	}()
	fn()
}

// RandomSquare FILLS an N×N matrix with pseudo-random values in [-1, 1) and
// adds N to the diagonal, so the result is strictly diagonally dominant and
// therefore invertible.
//
// Determinism:
//   - Seeded math/rand source; the same seed yields the same matrix.
func RandomSquare[N matrix.Dim](seed int64) matrix.Matrix[F, N, N] {
	rng := rand.New(rand.NewSource(seed))
	var m matrix.Matrix[F, N, N]
	n := m.Width()
	var x, y int
	for y = 0; y < n; y++ {
		for x = 0; x < n; x++ {
			v := F(rng.Float64()*2 - 1)
			if x == y {
				v += F(n)
			}
			m.Set(x, y, v)
		}
	}

	return m
}
