// SPDX-License-Identifier: MIT
package matrix_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fixmat/matrix"
)

// inverseFixture mirrors one entry of testdata/inverse3x3.yaml.
type inverseFixture struct {
	Name     string `yaml:"name"`
	M        M33    `yaml:"m"`
	Inverse  M33    `yaml:"inverse"`
	Det      F      `yaml:"det"`
	Singular bool   `yaml:"singular"`
}

func mustReadTestdata(t *testing.T, name string) []byte {
	t.Helper()
	raw, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)

	return raw
}

func TestYAML_InverseFixtures(t *testing.T) {
	t.Parallel()

	var doc struct {
		Cases []inverseFixture `yaml:"cases"`
	}
	require.NoError(t, yaml.Unmarshal(mustReadTestdata(t, "inverse3x3.yaml"), &doc))
	require.Len(t, doc.Cases, 4)

	for _, tc := range doc.Cases {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			inv, det, err := matrix.TryInverse[F, F, F](tc.M)
			if tc.Singular {
				require.ErrorIs(t, err, matrix.ErrSingular)
				require.Equal(t, F(0), det)
				return
			}
			require.NoError(t, err)
			require.InDelta(t, float64(tc.Det), float64(det), 1e-12)
			RequireClose(t, tc.Inverse, inv)
		})
	}
}

func TestYAML_RoundTrip(t *testing.T) {
	t.Parallel()

	m := matrix.New[F, matrix.D3, matrix.D2](1, 2.5, -3, 4, 0, 6)
	out, err := yaml.Marshal(m)
	require.NoError(t, err)
	require.Equal(t, "- [1, 2.5, -3]\n- [4, 0, 6]\n", string(out))

	var back matrix.Matrix[F, matrix.D3, matrix.D2]
	require.NoError(t, yaml.Unmarshal(out, &back))
	RequireEqual(t, m, back)
}

func TestYAML_ZeroValueMarshalsZeros(t *testing.T) {
	t.Parallel()

	var z M22
	out, err := yaml.Marshal(z)
	require.NoError(t, err)
	require.Equal(t, "- [0, 0]\n- [0, 0]\n", string(out))
}

func TestYAML_ShapeMismatch(t *testing.T) {
	t.Parallel()

	var doc struct {
		M M33 `yaml:"m"`
	}
	err := yaml.Unmarshal(mustReadTestdata(t, "bad_shape.yaml"), &doc)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	var wide matrix.Matrix[F, matrix.D2, matrix.D1]
	err = yaml.Unmarshal([]byte("- [1, 2, 3]\n"), &wide)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestYAML_BadCell(t *testing.T) {
	t.Parallel()

	var m M22
	err := yaml.Unmarshal([]byte("- [1, two]\n- [3, 4]\n"), &m)
	require.Error(t, err)
	require.NotErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestYAML_SmallVectors(t *testing.T) {
	t.Parallel()

	var doc struct {
		Points []matrix.Vec4[F] `yaml:"points"`
	}
	require.NoError(t, yaml.Unmarshal(mustReadTestdata(t, "points.yaml"), &doc))
	require.Equal(t, []matrix.Vec4[F]{matrix.V4[F](2, 4, 8, 2), matrix.V4[F](1, 1, 1, 1)}, doc.Points)
	require.Equal(t, matrix.V3[F](1, 2, 4), matrix.Dehomogenize(doc.Points[0]))

	out, err := yaml.Marshal(matrix.V2[F](1, -2))
	require.NoError(t, err)
	require.Equal(t, "x: 1\n\"y\": -2\n", string(out))
}
