package grid

import (
	"bytes"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_TwoByTwo(t *testing.T) {
	m, err := Load(writeFixture(t, "1 2\n3 4\n"))
	require.NoError(t, err)

	nx, ny := m.Dims()
	assert.Equal(t, 2, nx)
	assert.Equal(t, 2, ny)
	assert.Equal(t, []float64{1, 2}, m.Row(0))
	assert.Equal(t, []float64{3, 4}, m.Row(1))
	assert.Equal(t, 2.0, m.At(1, 0))
	assert.Equal(t, 3.0, m.At(0, 1))
}

// TestParse_Layout checks the first row sets Nx and the row count sets Ny,
// with mixed whitespace, comments and blank lines tolerated.
func TestParse_Layout(t *testing.T) {
	input := "# header\n1\t2   3\n\n  4 5 6  \n# trailing comment\n7 8 9\n"
	m, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	nx, ny := m.Dims()
	assert.Equal(t, 3, nx)
	assert.Equal(t, 3, ny)
	assert.Equal(t, []float64{7, 8, 9}, m.Row(2))
}

func TestParse_Float32Precision(t *testing.T) {
	m, err := Parse(strings.NewReader("0.1 1e-3\n"))
	require.NoError(t, err)

	assert.Equal(t, float64(float32(0.1)), m.At(0, 0))
	assert.Equal(t, float64(float32(1e-3)), m.At(1, 0))
}

func TestParse_SpecialValues(t *testing.T) {
	m, err := Parse(strings.NewReader("nan inf -inf 1e40\n"))
	require.NoError(t, err)

	assert.True(t, math.IsNaN(m.At(0, 0)))
	assert.True(t, math.IsInf(m.At(1, 0), 1))
	assert.True(t, math.IsInf(m.At(2, 0), -1))
	assert.True(t, math.IsInf(m.At(3, 0), 1), "float32 overflow saturates")
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		wantErr  error
		wantLine int
	}{
		{name: "non-numeric token", content: "1 2\n3 abc\n", wantErr: ErrNotNumeric, wantLine: 2},
		{name: "ragged row", content: "1 2 3\n4 5\n", wantErr: ErrRaggedRow, wantLine: 2},
		{name: "empty file", content: "", wantErr: ErrNoData},
		{name: "comments only", content: "# nothing\n\n", wantErr: ErrNoData},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFixture(t, tc.content)
			m, err := Load(path)
			require.Error(t, err)
			assert.Nil(t, m)
			assert.ErrorIs(t, err, tc.wantErr)

			var le *LoadError
			require.True(t, errors.As(err, &le))
			assert.Equal(t, path, le.Path)
			assert.Equal(t, tc.wantLine, le.Line)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.txt")

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrNotExist)

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Contains(t, le.Error(), path)
}

func TestWriteText_RoundTrip(t *testing.T) {
	f32 := func(v float64) float64 { return float64(float32(v)) }
	src, err := FromRows([][]float64{
		{1, -2.5, f32(0.1)},
		{f32(1e-7), f32(3e12), 0},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, src))

	got, err := Parse(&buf)
	require.NoError(t, err)
	assert.True(t, mat.Equal(src.Dense(), got.Dense()))
}

func TestSaveText(t *testing.T) {
	src, err := FromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, SaveText(path, src))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "1 2\n3 4\n", string(content))
}
