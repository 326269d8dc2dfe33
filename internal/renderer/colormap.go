package renderer

import (
	"fmt"
	"image/color"
	"math"

	"github.com/linuxmatters/emberplot/internal/config"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
)

// spectralMap is a continuous colour map interpolated between the
// ColorBrewer Spectral classes, running blue (low) to red (high).
type spectralMap struct {
	stops    []color.NRGBA
	min, max float64
	alpha    float64
}

var _ palette.ColorMap = (*spectralMap)(nil)

func newSpectralMap(min, max float64) (*spectralMap, error) {
	p, err := brewer.GetPalette(brewer.TypeAny, config.ColorMapName, config.ColorMapSteps)
	if err != nil {
		return nil, fmt.Errorf("loading %s palette: %w", config.ColorMapName, err)
	}

	// Brewer lists Spectral from red to blue
	cs := p.Colors()
	stops := make([]color.NRGBA, len(cs))
	for i, c := range cs {
		stops[len(cs)-1-i] = color.NRGBAModel.Convert(c).(color.NRGBA)
	}

	return &spectralMap{stops: stops, min: min, max: max, alpha: 1}, nil
}

func (m *spectralMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < m.min:
		return nil, palette.ErrUnderflow
	case v > m.max:
		return nil, palette.ErrOverflow
	}

	var t float64
	if m.max > m.min {
		t = (v - m.min) / (m.max - m.min)
	}
	return m.interpolate(t), nil
}

func (m *spectralMap) Min() float64 { return m.min }
func (m *spectralMap) Max() float64 { return m.max }
func (m *spectralMap) SetMin(v float64) { m.min = v }
func (m *spectralMap) SetMax(v float64) { m.max = v }
func (m *spectralMap) Alpha() float64 { return m.alpha }
func (m *spectralMap) SetAlpha(a float64) { m.alpha = a }

// Palette samples n evenly spaced colours from the map.
func (m *spectralMap) Palette(n int) palette.Palette {
	cs := make([]color.Color, n)
	for i := range cs {
		var t float64
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		cs[i] = m.interpolate(t)
	}
	return colors(cs)
}

// interpolate returns the colour at fraction t in [0, 1].
func (m *spectralMap) interpolate(t float64) color.NRGBA {
	t = math.Max(0, math.Min(1, t))
	pos := t * float64(len(m.stops)-1)
	i := int(pos)
	if i >= len(m.stops)-1 {
		i = len(m.stops) - 2
	}
	frac := pos - float64(i)

	lo, hi := m.stops[i], m.stops[i+1]
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*frac))
	}
	return color.NRGBA{
		R: mix(lo.R, hi.R),
		G: mix(lo.G, hi.G),
		B: mix(lo.B, hi.B),
		A: uint8(math.Round(255 * m.alpha)),
	}
}

type colors []color.Color

func (c colors) Colors() []color.Color { return c }
