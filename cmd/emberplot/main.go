package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/linuxmatters/emberplot/internal/cli"
	"github.com/linuxmatters/emberplot/internal/config"
	"github.com/linuxmatters/emberplot/internal/grid"
	"github.com/linuxmatters/emberplot/internal/renderer"
	"github.com/linuxmatters/emberplot/internal/spectrum"
	"github.com/linuxmatters/emberplot/internal/ui"
)

// version is set via ldflags at build time
// Local dev builds: "dev"
// Release builds: git tag (e.g. "v0.1.0")
var version = "dev"

var CLI struct {
	IFile      string `name:"ifile" short:"i" help:"Path to input file" placeholder:"PATH"`
	OFile      string `name:"ofile" short:"o" help:"Path to output file" default:"${default_output}" placeholder:"PATH"`
	IsSpectral bool   `name:"isSpectral" short:"s" help:"Use spectral scaled output"`
	FFT        bool   `name:"fft" short:"f" help:"Plot the centred power spectrum of the input (implies --isSpectral)"`
	Preview    bool   `short:"p" help:"Print a preview of the heatmap in the terminal"`
	Version    bool   `help:"Show version information"`
}

// job is one render request
type job struct {
	input   string
	output  string
	mode    renderer.Mode
	fft     bool
	preview bool
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("emberplot"),
		kong.Description("Create PDF image from text input."),
		kong.Vars{
			"version":        version,
			"default_output": config.DefaultOutput,
		},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	// Handle version flag
	if CLI.Version {
		cli.PrintVersion("emberplot", version)
		os.Exit(0)
	}

	// Validate required flags when not showing version
	if CLI.IFile == "" {
		cli.PrintError("--ifile is required")
		_ = ctx.PrintUsage(true)
		os.Exit(1)
	}

	j := job{
		input:   CLI.IFile,
		output:  CLI.OFile,
		mode:    renderer.Normal,
		fft:     CLI.FFT,
		preview: CLI.Preview,
	}
	if CLI.IsSpectral {
		j.mode = renderer.Spectral
	}

	fmt.Printf("Loading \"%s\" to \"%s\"\n", j.input, j.output)

	summary, err := run(j)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	cli.PrintRenderSummary(summary)
}

func run(j job) (cli.RenderSummary, error) {
	start := time.Now()

	m, err := grid.Load(j.input)
	if err != nil {
		return cli.RenderSummary{}, err
	}

	if j.fft {
		m, err = spectrum.PowerSpectrum(m)
		if err != nil {
			return cli.RenderSummary{}, fmt.Errorf("computing power spectrum: %w", err)
		}
		j.mode = renderer.Spectral
	}

	nx, ny := m.Dims()
	opts := renderer.ModeOptions(j.mode, nx, ny)

	if n := m.NonPositive(); opts.LogScale && n > 0 {
		cli.PrintWarning(fmt.Sprintf("%d of %d values are not positive and are left blank on the log scale", n, nx*ny))
	}

	if err := renderer.Render(m, j.output, opts); err != nil {
		return cli.RenderSummary{}, err
	}

	if j.preview {
		img, err := renderer.Rasterize(m, opts)
		if err != nil {
			return cli.RenderSummary{}, fmt.Errorf("building preview: %w", err)
		}
		cfg := ui.DefaultPreviewConfig().Fit(nx, ny)
		fmt.Print(ui.RenderPreview("Preview", ui.DownsampleImage(img, cfg)))
	}

	summary := cli.RenderSummary{
		Output:     j.output,
		Mode:       j.mode.String(),
		Columns:    nx,
		Rows:       ny,
		ValueRange: "n/a",
		Duration:   time.Since(start),
	}
	if lo, hi, ok := m.Range(); ok {
		summary.ValueRange = fmt.Sprintf("%.4g … %.4g", lo, hi)
	}
	if info, err := os.Stat(j.output); err == nil {
		summary.FileSize = info.Size()
	}
	return summary, nil
}
