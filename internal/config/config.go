package config

// Spatial step sizes used to derive wavenumber extents
const (
	DeltaX = 1.0
	DeltaY = 1.0
)

// Figure sizing (inches). A figure is FigureWidthScale/Nx wide and
// FigureHeightScale/Ny tall, clamped to the page limits below.
const (
	FigureWidthScale  = 1024 * 20
	FigureHeightScale = 1024 * 16

	MinFigureInches = 4.0
	MaxFigureInches = 200.0 // PDF viewers reject pages above 14400pt

	// Fraction of the figure width given to the colorbar
	ColorBarFraction = 0.12
)

// Typography (points)
const (
	LabelFontSize    = 20
	TickFontSize     = 16
	TitleFontSize    = 24
	ColorBarFontSize = 20
)

// Labels and titles. Sub- and superscripts use TeX markers and are drawn
// as plain text.
const (
	Title = "Spectral colored data (arbitrary units)"

	SpectralXLabel = "$k_x$"
	SpectralYLabel = "$k_y$"
	NormalXLabel   = "xPos"
	NormalYLabel   = "yPos"
)

// Colour mapping
const (
	// ColorBrewer scheme used as control points for the continuous map
	ColorMapName  = "Spectral"
	ColorMapSteps = 11

	// Number of discrete colours handed to the heatmap
	PaletteColors = 256

	// Masked cells (non-positive under log scaling, NaN) are left blank.
	// MaskColor is only used by the terminal preview.
	MaskColor = "#202020"
)

// Output defaults
const (
	DefaultOutput = "output.pdf"
	PDFExtension  = ".pdf"
)

// Terminal preview size in cells
const (
	PreviewWidth  = 72
	PreviewHeight = 20
)
