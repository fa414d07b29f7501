// SPDX-License-Identifier: MIT
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fixmat/matrix"
)

// 1) TestDefaultOptions_Documented verifies that resolved defaults equal the documented constants.
func TestDefaultOptions_Documented(t *testing.T) {
	t.Parallel()

	o := matrix.NewOptions()
	require.Equal(t, matrix.DefaultEpsilon, o.Epsilon())
	require.Equal(t, matrix.DefaultRelative, o.Relative())
	require.Equal(t, matrix.DefaultPrecision, o.Precision())
	require.Equal(t, o, matrix.GatherOptions_TestOnly())
}

// 2) TestOptions_LastWriterWins ensures each Option toggles exactly its intended field.
func TestOptions_LastWriterWins(t *testing.T) {
	t.Parallel()

	o := matrix.NewOptions(matrix.WithRelative(), matrix.WithAbsolute())
	require.False(t, o.Relative())
	o = matrix.NewOptions(matrix.WithAbsolute(), matrix.WithRelative())
	require.True(t, o.Relative())

	o = matrix.NewOptions(matrix.WithEpsilon(1), matrix.WithEpsilon(0.5), matrix.WithPrecision(3))
	require.Equal(t, 0.5, o.Epsilon())
	require.Equal(t, 3, o.Precision())
	require.False(t, o.Relative(), "untouched fields keep defaults")
}

// 3) TestOptions_InvalidPanics checks the constructor guards.
func TestOptions_InvalidPanics(t *testing.T) {
	t.Parallel()

	for name, eps := range map[string]float64{
		"negative": -1e-9,
		"nan":      math.NaN(),
		"+inf":     math.Inf(1),
	} {
		eps := eps
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			require.PanicsWithValue(t, matrix.PanicEpsilonInvalid_TestOnly, func() { matrix.WithEpsilon(eps) })
		})
	}
	require.PanicsWithValue(t, matrix.PanicPrecisionInvalid_TestOnly, func() { matrix.WithPrecision(-2) })
	require.NotPanics(t, func() { matrix.WithEpsilon(0) })
	require.NotPanics(t, func() { matrix.WithPrecision(-1) })
}

func TestAllClose(t *testing.T) {
	t.Parallel()

	a := matrix.New[F, matrix.D2, matrix.D1](1, 1e6)
	b := matrix.New[F, matrix.D2, matrix.D1](1+1e-10, 1e6+1e-4)

	assert.False(t, matrix.AllClose(a, b), "1e-4 off at 1e6 exceeds the absolute default")
	assert.True(t, matrix.AllClose(a, b, matrix.WithEpsilon(1e-3)))
	assert.True(t, matrix.AllClose(a, b, matrix.WithRelative()), "relative tolerance scales with magnitude")
	assert.True(t, matrix.AllClose(a, a, matrix.WithEpsilon(0)))

	nan := matrix.New[F, matrix.D2, matrix.D1](F(math.NaN()), 0)
	assert.False(t, matrix.AllClose(nan, nan), "NaN is never close, not even to itself")
	inf := matrix.New[F, matrix.D2, matrix.D1](F(math.Inf(1)), 0)
	assert.False(t, matrix.AllClose(inf, inf, matrix.WithEpsilon(1)))

	ints := matrix.New[matrix.Int, matrix.D2, matrix.D1](3, 4)
	assert.True(t, matrix.AllClose(ints, ints))
}

func TestCheckFinite(t *testing.T) {
	t.Parallel()

	require.NoError(t, matrix.CheckFinite(matrix.Identity[F, matrix.D3]()))

	var m M22
	m.Set(1, 1, F(math.Inf(-1)))
	err := matrix.CheckFinite(m)
	require.ErrorIs(t, err, matrix.ErrNonFinite)
	require.Contains(t, err.Error(), "(1,1)")

	require.True(t, matrix.IsNonFinite_TestOnly(math.NaN()))
	require.False(t, matrix.IsNonFinite_TestOnly(math.MaxFloat64))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	m := matrix.New[F, matrix.D2, matrix.D2](1, 2.5, -1.0/3, 4)
	require.Equal(t, "[1, 2.5]\n[-0.3333333333333333, 4]\n", matrix.Format(m))
	require.Equal(t, "[1.00, 2.50]\n[-0.33, 4.00]\n", matrix.Format(m, matrix.WithPrecision(2)))
	require.Equal(t, "[1, 2]\n[-0, 4]\n", matrix.Format(m, matrix.WithPrecision(0)))
}

func TestPivotSearch_FirstMaximumWins(t *testing.T) {
	t.Parallel()

	m := matrix.New[F, matrix.D3, matrix.D3](
		1, 0, 0,
		-3, 0, 0,
		3, 0, 0,
	)
	require.Equal(t, 1, matrix.MaxInSubColumn_TestOnly(m, 0, 0), "|-3| ties |3|: lowest row wins")
	require.Equal(t, 2, matrix.MaxInSubColumn_TestOnly(m, 0, 2))
	require.Equal(t, 0, matrix.MaxInSubColumn_TestOnly(m, 1, 0), "all-zero column keeps the start row")
}
