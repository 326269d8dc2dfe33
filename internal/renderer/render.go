package renderer

import (
	"fmt"

	"github.com/linuxmatters/emberplot/internal/grid"
)

// Render draws m as a heatmap and saves it as a PDF at path. The figure is
// closed before returning, whether or not saving succeeded.
func Render(m *grid.Matrix, path string, opts Options) error {
	nx, ny := m.Dims()
	fig := NewFigure(PageSize(nx, ny))
	defer fig.Close()

	if err := fig.Draw(m, opts); err != nil {
		return fmt.Errorf("drawing figure %d: %w", fig.Num, err)
	}
	if err := fig.Save(path); err != nil {
		return fmt.Errorf("saving figure %d: %w", fig.Num, err)
	}
	return nil
}

// RenderMode renders m using the labels and axes of mode.
func RenderMode(m *grid.Matrix, path string, mode Mode) error {
	nx, ny := m.Dims()
	return Render(m, path, ModeOptions(mode, nx, ny))
}
