package renderer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/linuxmatters/emberplot/internal/config"
	"github.com/linuxmatters/emberplot/internal/grid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"
)

// ErrFigureClosed is returned when drawing to or saving a closed figure.
var ErrFigureClosed = errors.New("renderer: figure is closed")

// Open figures by number. Every figure must be closed once saved.
var figures = struct {
	sync.Mutex
	next int
	open map[int]*Figure
}{open: make(map[int]*Figure)}

// OpenFigures returns the number of figures created and not yet closed.
func OpenFigures() int {
	figures.Lock()
	defer figures.Unlock()
	return len(figures.open)
}

// Figure is a numbered PDF page holding one heatmap and its colorbar.
type Figure struct {
	Num    int
	Width  vg.Length
	Height vg.Length

	canvas *vgpdf.Canvas
}

// NewFigure opens a figure of the given page size.
func NewFigure(width, height vg.Length) *Figure {
	figures.Lock()
	defer figures.Unlock()

	f := &Figure{
		Num:    figures.next,
		Width:  width,
		Height: height,
		canvas: vgpdf.New(width, height),
	}
	figures.next++
	figures.open[f.Num] = f
	return f
}

// Draw renders m onto the figure as a heatmap with a colorbar on the right.
func (f *Figure) Draw(m *grid.Matrix, opts Options) error {
	if f.canvas == nil {
		return ErrFigureClosed
	}

	lo, hi, err := valueRange(m, opts.LogScale)
	if err != nil {
		return err
	}

	cm, err := newSpectralMap(lo, hi)
	if err != nil {
		return err
	}

	heat := newHeatPlot(m, opts, cm)
	bar := newColorBarPlot(cm, opts.LogScale)

	dc := draw.New(f.canvas)
	width := dc.Max.X - dc.Min.X
	barWidth := width * config.ColorBarFraction

	// Line the colorbar up with the heatmap's data area
	top := heat.Title.TextStyle.Height(heat.Title.Text) + heat.Title.Padding
	bottom := heat.X.Label.TextStyle.Height(heat.X.Label.Text) + heat.X.Label.Padding +
		heat.X.Tick.Label.Height("0") + heat.X.Tick.Length + heat.X.Padding

	heat.Draw(draw.Crop(dc, 0, -barWidth, 0, 0))
	bar.Draw(draw.Crop(dc, width-barWidth, 0, bottom, -top))
	return nil
}

func newHeatPlot(m *grid.Matrix, opts Options, cm *spectralMap) *plot.Plot {
	p := plot.New()
	p.Title.Text = opts.Title
	p.Title.TextStyle.Font.Size = vg.Points(config.TitleFontSize)

	p.X.Label.Text = plainLabel(opts.XLabel)
	p.Y.Label.Text = plainLabel(opts.YLabel)
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font.Size = vg.Points(config.LabelFontSize)
		ax.Tick.Label.Font.Size = vg.Points(config.TickFontSize)
	}

	hm := plotter.NewHeatMap(heatGrid{m: m, ext: opts.Extent, log: opts.LogScale}, cm.Palette(config.PaletteColors))
	hm.Min, hm.Max = cm.Min(), cm.Max()
	p.Add(hm)

	if opts.Extent == nil {
		p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	} else {
		p.X.Min, p.X.Max = opts.Extent.XMin, opts.Extent.XMax
		p.Y.Min, p.Y.Max = opts.Extent.YMin, opts.Extent.YMax
	}
	return p
}

func newColorBarPlot(cm *spectralMap, log bool) *plot.Plot {
	p := plot.New()
	p.HideX()
	p.Add(&plotter.ColorBar{ColorMap: cm, Vertical: true, Colors: config.PaletteColors})
	p.Y.Tick.Label.Font.Size = vg.Points(config.ColorBarFontSize)
	if log {
		p.Y.Tick.Marker = plot.TickerFunc(decadeTicks)
	}
	return p
}

// WriteTo writes the figure as a PDF document.
func (f *Figure) WriteTo(w io.Writer) (int64, error) {
	if f.canvas == nil {
		return 0, ErrFigureClosed
	}
	return f.canvas.WriteTo(w)
}

// Save writes the figure to path as a PDF document.
func (f *Figure) Save(path string) error {
	if f.canvas == nil {
		return ErrFigureClosed
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := f.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return out.Close()
}

// Close releases the figure. Closing twice is a no-op.
func (f *Figure) Close() error {
	figures.Lock()
	defer figures.Unlock()

	delete(figures.open, f.Num)
	f.canvas = nil
	return nil
}
