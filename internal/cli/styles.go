package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Styles
var (
	// Title style - bold red with fire emoji
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(EmberCrimson).
			MarginBottom(1)

	// Success message style
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(LeafGreen)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(EmberCrimson)

	// Highlight style for important values
	HighlightStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SparkYellow)

	// Key-value pair styles
	KeyStyle = lipgloss.NewStyle().
			Foreground(AshGray)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(White)

	// Box style for framed content
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(EmberCrimson).
			Padding(1, 2).
			MarginTop(1).
			MarginBottom(1)
)

// PrintVersion prints version information
func PrintVersion(name, version string) {
	fmt.Println(TitleStyle.Render(name + " 🔥"))
	fmt.Printf("%s %s\n", KeyStyle.Render("Version:"), ValueStyle.Render(version))
	fmt.Println()
}

// PrintError prints an error message
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// PrintWarning prints a warning message
func PrintWarning(message string) {
	fmt.Printf("%s %s\n", HighlightStyle.Render("Warning:"), message)
}

// PrintSuccess prints a success message
func PrintSuccess(message string) {
	fmt.Printf("%s %s\n", SuccessStyle.Render("✓"), message)
}

// PrintInfo prints an informational message
func PrintInfo(key, value string) {
	fmt.Printf("%s %s\n", KeyStyle.Render(key+":"), ValueStyle.Render(value))
}

// FormatDuration formats a duration nicely
func FormatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", d.Seconds()*1000)
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

// FormatBytes formats bytes into human-readable format
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// RenderSummary describes a finished render
type RenderSummary struct {
	Output     string
	Mode       string
	Columns    int
	Rows       int
	ValueRange string
	FileSize   int64
	Duration   time.Duration
}

// PrintRenderSummary prints a summary in a box
func PrintRenderSummary(s RenderSummary) {
	fmt.Println(FormatRenderSummary(s))
}

// FormatRenderSummary renders the summary box without printing it
func FormatRenderSummary(s RenderSummary) string {
	var b strings.Builder

	b.WriteString(SuccessStyle.Render("✓ Render Complete!"))
	b.WriteString("\n\n")

	rows := []struct{ key, value string }{
		{"Output:    ", s.Output},
		{"Mode:      ", s.Mode},
		{"Matrix:    ", fmt.Sprintf("%d×%d", s.Columns, s.Rows)},
		{"Values:    ", s.ValueRange},
		{"File Size: ", FormatBytes(s.FileSize)},
		{"Time:      ", FormatDuration(s.Duration)},
	}
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(KeyStyle.Render(row.key))
		b.WriteString(ValueStyle.Render(row.value))
	}

	return BoxStyle.Render(b.String())
}
