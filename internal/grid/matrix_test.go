package grid

import (
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/tiff"
)

func TestNew_BadShape(t *testing.T) {
	for _, tc := range []struct {
		name   string
		nx, ny int
		data   []float64
	}{
		{"zero width", 0, 1, nil},
		{"negative height", 1, -1, nil},
		{"short data", 2, 2, []float64{1, 2, 3}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.nx, tc.ny, tc.data)
			assert.ErrorIs(t, err, ErrBadShape)
		})
	}
}

func TestFromRows_Ragged(t *testing.T) {
	_, err := FromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, ErrRaggedRow)

	_, err = FromRows(nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestRanges(t *testing.T) {
	m, err := FromRows([][]float64{
		{-3, 0, math.NaN()},
		{0.5, 8, math.Inf(1)},
	})
	require.NoError(t, err)

	min, max, ok := m.Range()
	require.True(t, ok)
	assert.Equal(t, -3.0, min)
	assert.Equal(t, 8.0, max)

	min, max, ok = m.PositiveRange()
	require.True(t, ok)
	assert.Equal(t, 0.5, min)
	assert.Equal(t, 8.0, max)
}

func TestNonPositive(t *testing.T) {
	m, err := FromRows([][]float64{{0, -1, 2}, {math.NaN(), math.Inf(1), 1e-30}})
	require.NoError(t, err)
	assert.Equal(t, 3, m.NonPositive())
}

func TestPositiveRange_None(t *testing.T) {
	m, err := FromRows([][]float64{{0, -1}, {-2, math.NaN()}})
	require.NoError(t, err)

	_, _, ok := m.PositiveRange()
	assert.False(t, ok)
}

func TestLoadTIFF_Gray(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 2))
	img.SetGray(0, 0, color.Gray{Y: 10})
	img.SetGray(2, 0, color.Gray{Y: 200})
	img.SetGray(1, 1, color.Gray{Y: 77})

	path := filepath.Join(t.TempDir(), "img.tif")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, tiff.Encode(f, img, nil))
	require.NoError(t, f.Close())

	m, err := LoadTIFF(path)
	require.NoError(t, err)

	nx, ny := m.Dims()
	assert.Equal(t, 3, nx)
	assert.Equal(t, 2, ny)
	assert.Equal(t, []float64{10, 0, 200}, m.Row(0))
	assert.Equal(t, []float64{0, 77, 0}, m.Row(1))
}

func TestLoadTIFF_NotTIFF(t *testing.T) {
	path := writeFixture(t, "1 2\n3 4\n")

	_, err := LoadTIFF(path)
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, path, le.Path)
}

func TestFromImage_Color(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.White)

	m, err := FromImage(img)
	require.NoError(t, err)
	assert.Equal(t, 65535.0, m.At(0, 0))
}
