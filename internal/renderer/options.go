package renderer

import (
	"math"

	"github.com/linuxmatters/emberplot/internal/config"
	"github.com/linuxmatters/emberplot/internal/spectrum"
	"gonum.org/v1/plot/vg"
)

// Mode selects how axes are labelled.
type Mode int

const (
	// Normal shows pixel coordinates.
	Normal Mode = iota
	// Spectral shows wavenumbers spanning the spectral extent.
	Spectral
)

func (m Mode) String() string {
	if m == Spectral {
		return "spectral"
	}
	return "normal"
}

// Options configures a single heatmap.
type Options struct {
	XLabel   string
	YLabel   string
	Title    string
	LogScale bool

	// Extent overrides the axis bounds; nil keeps pixel coordinates.
	Extent *spectrum.Extent
}

// ModeOptions returns the configuration for rendering an nx×ny matrix in
// the given mode. Both modes use log scaling.
func ModeOptions(mode Mode, nx, ny int) Options {
	if mode == Spectral {
		ext := spectrum.SpectralExtent(nx, ny)
		return Options{
			XLabel:   config.SpectralXLabel,
			YLabel:   config.SpectralYLabel,
			Title:    config.Title,
			LogScale: true,
			Extent:   &ext,
		}
	}
	return Options{
		XLabel:   config.NormalXLabel,
		YLabel:   config.NormalYLabel,
		Title:    config.Title,
		LogScale: true,
	}
}

// FigureSize returns the figure size in inches for an nx×ny matrix,
// inversely proportional to each dimension.
func FigureSize(nx, ny int) (width, height float64) {
	return float64(config.FigureWidthScale) / float64(nx), float64(config.FigureHeightScale) / float64(ny)
}

// PageSize is FigureSize clamped to a printable page.
func PageSize(nx, ny int) (width, height vg.Length) {
	w, h := FigureSize(nx, ny)
	return clampInches(w), clampInches(h)
}

func clampInches(v float64) vg.Length {
	v = math.Max(config.MinFigureInches, math.Min(config.MaxFigureInches, v))
	return vg.Length(v) * vg.Inch
}
