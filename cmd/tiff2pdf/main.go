package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/linuxmatters/emberplot/internal/cli"
	"github.com/linuxmatters/emberplot/internal/config"
	"github.com/linuxmatters/emberplot/internal/grid"
	"github.com/linuxmatters/emberplot/internal/renderer"
)

// version is set via ldflags at build time
var version = "dev"

// Exit codes
const (
	exitLoad   = 1
	exitRender = 2
	exitText   = 3
)

var CLI struct {
	Src     string `arg:"" optional:"" help:"Source TIFF image" type:"path"`
	Dst     string `arg:"" optional:"" help:"Destination PDF (defaults to the source with a .pdf extension)" type:"path"`
	Text    string `help:"Also write the decoded matrix as text to this path" placeholder:"PATH"`
	Version bool   `help:"Show version information"`
}

// stageError carries the exit code of the stage that failed
type stageError struct {
	code int
	err  error
}

func (e *stageError) Error() string { return e.err.Error() }
func (e *stageError) Unwrap() error { return e.err }

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("tiff2pdf"),
		kong.Description("Render a TIFF image as a spectral PDF heatmap."),
		kong.Vars{"version": version},
		kong.UsageOnError(),
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	if CLI.Version {
		cli.PrintVersion("tiff2pdf", version)
		os.Exit(0)
	}

	if CLI.Src == "" {
		cli.PrintError("a source TIFF is required")
		_ = ctx.PrintUsage(true)
		os.Exit(exitLoad)
	}

	dst := CLI.Dst
	if dst == "" {
		dst = defaultDestination(CLI.Src)
	}

	fmt.Printf("Loading \"%s\" to \"%s\"\n", CLI.Src, dst)

	if err := run(CLI.Src, dst, CLI.Text); err != nil {
		cli.PrintError(err.Error())
		var se *stageError
		if errors.As(err, &se) {
			os.Exit(se.code)
		}
		os.Exit(exitLoad)
	}

	cli.PrintSuccess("Wrote " + dst)
	if CLI.Text != "" {
		cli.PrintInfo("Text", CLI.Text)
	}
}

// defaultDestination swaps the extension of src for .pdf
func defaultDestination(src string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + config.PDFExtension
}

func run(src, dst, textPath string) error {
	m, err := grid.LoadTIFF(src)
	if err != nil {
		return &stageError{code: exitLoad, err: err}
	}

	if err := renderer.RenderMode(m, dst, renderer.Spectral); err != nil {
		return &stageError{code: exitRender, err: err}
	}

	if textPath != "" {
		if err := grid.SaveText(textPath, m); err != nil {
			return &stageError{code: exitText, err: fmt.Errorf("writing text dump: %w", err)}
		}
	}
	return nil
}
