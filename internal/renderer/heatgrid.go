package renderer

import (
	"errors"
	"math"

	"github.com/linuxmatters/emberplot/internal/grid"
	"github.com/linuxmatters/emberplot/internal/spectrum"
	"gonum.org/v1/plot/plotter"
)

var (
	// ErrNoPositiveData is returned when log scaling is requested for a
	// matrix without a single positive finite value.
	ErrNoPositiveData = errors.New("renderer: log scale needs at least one positive value")

	// ErrNoFiniteData is returned when a matrix holds only NaN or ±Inf.
	ErrNoFiniteData = errors.New("renderer: no finite values")
)

// heatGrid adapts a matrix to plotter.GridXYZ.
//
// Without an extent, cells sit at their pixel coordinates and the Y axis is
// inverted so row 0 is drawn at the top. With an extent, rows are reversed
// so row 0 still lands at the top of an ordinary increasing axis.
// Under log scaling Z is log10 of the value and non-positive cells are NaN,
// which the heatmap leaves blank.
type heatGrid struct {
	m   *grid.Matrix
	ext *spectrum.Extent
	log bool
}

var _ plotter.GridXYZ = heatGrid{}

func (g heatGrid) Dims() (c, r int) {
	return g.m.Dims()
}

func (g heatGrid) Z(c, r int) float64 {
	return scaleValue(g.m.At(c, g.row(r)), g.log)
}

func (g heatGrid) X(c int) float64 {
	if g.ext == nil {
		return float64(c)
	}
	nx, _ := g.m.Dims()
	return g.ext.XMin + (float64(c)+0.5)*g.ext.Width()/float64(nx)
}

func (g heatGrid) Y(r int) float64 {
	if g.ext == nil {
		return float64(r)
	}
	_, ny := g.m.Dims()
	return g.ext.YMin + (float64(r)+0.5)*g.ext.Height()/float64(ny)
}

// row maps grid row r to the matrix row it displays.
func (g heatGrid) row(r int) int {
	if g.ext == nil {
		return r
	}
	_, ny := g.m.Dims()
	return ny - 1 - r
}

func scaleValue(v float64, log bool) float64 {
	if !log {
		return v
	}
	if !(v > 0) {
		return math.NaN()
	}
	return math.Log10(v)
}

// valueRange returns the colour range for m in scaled units. A constant
// matrix is widened by one unit (one decade under log scaling).
func valueRange(m *grid.Matrix, log bool) (lo, hi float64, err error) {
	var ok bool
	if log {
		lo, hi, ok = m.PositiveRange()
		if !ok {
			return 0, 0, ErrNoPositiveData
		}
		lo, hi = math.Log10(lo), math.Log10(hi)
	} else {
		lo, hi, ok = m.Range()
		if !ok {
			return 0, 0, ErrNoFiniteData
		}
	}

	if hi <= lo {
		hi = lo + 1
	}
	return lo, hi, nil
}
