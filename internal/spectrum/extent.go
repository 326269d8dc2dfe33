// Package spectrum computes wavenumber axes for spectral plots and the
// centred power spectrum of spatial data.
package spectrum

import (
	"math"

	"github.com/linuxmatters/emberplot/internal/config"
)

// Extent is the bounding box assigned to image axes.
type Extent struct {
	XMin, XMax float64
	YMin, YMax float64
}

// Width returns XMax - XMin.
func (e Extent) Width() float64 { return e.XMax - e.XMin }

// Height returns YMax - YMin.
func (e Extent) Height() float64 { return e.YMax - e.YMin }

// KMax returns the largest wavenumber resolved by n samples spaced delta
// apart: π(n-1)/(n·delta).
func KMax(n int, delta float64) float64 {
	return math.Pi * float64(n-1) / (float64(n) * delta)
}

// SpectralExtent returns (-kx_max, kx_max, -ky_max, ky_max) for an nx×ny
// matrix using the configured spatial steps. An axis with a single sample
// has k_max = 0 and falls back to the unit extent [-0.5, 0.5].
func SpectralExtent(nx, ny int) Extent {
	kx := halfWidth(nx, config.DeltaX)
	ky := halfWidth(ny, config.DeltaY)
	return Extent{XMin: -kx, XMax: kx, YMin: -ky, YMax: ky}
}

func halfWidth(n int, delta float64) float64 {
	k := KMax(n, delta)
	if k <= 0 {
		return 0.5
	}
	return k
}
