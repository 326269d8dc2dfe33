package renderer

import (
	"image"
	"image/color"

	"github.com/linuxmatters/emberplot/internal/config"
	"github.com/linuxmatters/emberplot/internal/grid"
)

// Rasterize colours m into an image with one pixel per cell, row 0 at the
// top. Masked cells take config.MaskColor.
func Rasterize(m *grid.Matrix, opts Options) (*image.RGBA, error) {
	lo, hi, err := valueRange(m, opts.LogScale)
	if err != nil {
		return nil, err
	}

	cm, err := newSpectralMap(lo, hi)
	if err != nil {
		return nil, err
	}

	r, g, b, err := config.ParseHexColor(config.MaskColor)
	if err != nil {
		return nil, err
	}
	mask := color.RGBA{R: r, G: g, B: b, A: 255}

	nx, ny := m.Dims()
	img := image.NewRGBA(image.Rect(0, 0, nx, ny))
	for y := 0; y < ny; y++ {
		for x := 0; x < nx; x++ {
			c, err := cm.At(scaleValue(m.At(x, y), opts.LogScale))
			if err != nil {
				img.SetRGBA(x, y, mask)
				continue
			}
			img.Set(x, y, c)
		}
	}
	return img, nil
}
