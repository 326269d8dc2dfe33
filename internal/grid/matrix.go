// Package grid holds the 2D matrices emberplot renders and the loaders that
// read them from text and TIFF files.
package grid

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is an Ny×Nx array of samples. Row y, column x maps to image
// position (x, y) with row 0 first in the file.
type Matrix struct {
	dense *mat.Dense
}

// New builds a matrix from row-major data of ny rows and nx columns.
// The slice is used as backing storage.
func New(nx, ny int, data []float64) (*Matrix, error) {
	if nx <= 0 || ny <= 0 || len(data) != nx*ny {
		return nil, ErrBadShape
	}
	return &Matrix{dense: mat.NewDense(ny, nx, data)}, nil
}

// FromRows builds a matrix from equal-width rows.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrNoData
	}
	nx := len(rows[0])
	data := make([]float64, 0, nx*len(rows))
	for _, row := range rows {
		if len(row) != nx {
			return nil, ErrRaggedRow
		}
		data = append(data, row...)
	}
	return New(nx, len(rows), data)
}

// Dims returns the column count Nx and the row count Ny.
func (m *Matrix) Dims() (nx, ny int) {
	r, c := m.dense.Dims()
	return c, r
}

// At returns the value at column x of row y.
func (m *Matrix) At(x, y int) float64 {
	return m.dense.At(y, x)
}

// Set stores v at column x of row y.
func (m *Matrix) Set(x, y int, v float64) {
	m.dense.Set(y, x, v)
}

// Row returns a copy of row y.
func (m *Matrix) Row(y int) []float64 {
	nx, _ := m.Dims()
	return mat.Row(make([]float64, nx), y, m.dense)
}

// Dense exposes the underlying gonum matrix (rows × columns).
func (m *Matrix) Dense() *mat.Dense {
	return m.dense
}

// Range returns the smallest and largest finite values.
// ok is false when the matrix holds no finite value.
func (m *Matrix) Range() (min, max float64, ok bool) {
	return m.scan(func(float64) bool { return true })
}

// PositiveRange is Range restricted to values strictly greater than zero.
func (m *Matrix) PositiveRange() (min, max float64, ok bool) {
	return m.scan(func(v float64) bool { return v > 0 })
}

// NonPositive counts values that are zero, negative or NaN.
func (m *Matrix) NonPositive() int {
	n := 0
	for _, v := range m.dense.RawMatrix().Data {
		if !(v > 0) {
			n++
		}
	}
	return n
}

func (m *Matrix) scan(keep func(float64) bool) (min, max float64, ok bool) {
	min, max = math.Inf(1), math.Inf(-1)
	for _, v := range m.dense.RawMatrix().Data {
		if math.IsNaN(v) || math.IsInf(v, 0) || !keep(v) {
			continue
		}
		min = math.Min(min, v)
		max = math.Max(max, v)
		ok = true
	}
	if !ok {
		return 0, 0, false
	}
	return min, max, true
}
