package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/disintegration/gift"
	"github.com/linuxmatters/emberplot/internal/cli"
	"github.com/linuxmatters/emberplot/internal/config"
)

// PreviewConfig holds configuration for the terminal preview
type PreviewConfig struct {
	Width  int // Width in terminal cells
	Height int // Height in terminal cells
}

// DefaultPreviewConfig returns the preview size from config
func DefaultPreviewConfig() PreviewConfig {
	return PreviewConfig{
		Width:  config.PreviewWidth,
		Height: config.PreviewHeight,
	}
}

// Fit shrinks the preview so that an nx×ny matrix is never upsampled.
func (c PreviewConfig) Fit(nx, ny int) PreviewConfig {
	return PreviewConfig{
		Width:  max(1, min(c.Width, nx)),
		Height: max(1, min(c.Height, ny)),
	}
}

var (
	previewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(cli.EmberYellow).
				MarginLeft(2)

	previewBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(cli.EmberOrange).
			MarginLeft(2)
)

// DownsampleImage scales img to the preview size. Each terminal cell
// averages the source pixels it covers.
func DownsampleImage(img image.Image, cfg PreviewConfig) [][]color.RGBA {
	g := gift.New(gift.Resize(cfg.Width, cfg.Height, gift.BoxResampling))
	dst := image.NewRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)

	b := dst.Bounds()
	preview := make([][]color.RGBA, b.Dy())
	for row := range preview {
		preview[row] = make([]color.RGBA, b.Dx())
		for col := range preview[row] {
			preview[row][col] = dst.RGBAAt(b.Min.X+col, b.Min.Y+row)
		}
	}
	return preview
}

// RenderPreview converts a preview grid to 24-bit ANSI background colours
// inside a rounded border, with title above it.
func RenderPreview(title string, preview [][]color.RGBA) string {
	if len(preview) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, row := range preview {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, pixel := range row {
			// \x1b[48;2;R;G;Bm sets the background, a space is one pixel
			fmt.Fprintf(&sb, "\x1b[48;2;%d;%d;%dm \x1b[0m", pixel.R, pixel.G, pixel.B)
		}
	}

	return previewTitleStyle.Render(title+":") + "\n" + previewBoxStyle.Render(sb.String()) + "\n"
}
