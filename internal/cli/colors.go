package cli

import "github.com/charmbracelet/lipgloss"

// Ember theme 🔥
// Every style in help, status output and the terminal preview takes its
// colours from here, named by the role they play.
var (
	// Ember ramp (bright to dark), used for headings and borders
	EmberYellow  = lipgloss.Color("#FFD700") // Titles and flags
	EmberOrange  = lipgloss.Color("#FF8C00") // Section headers, preview border
	EmberRed     = lipgloss.Color("#FF4500") // Arguments
	EmberCrimson = lipgloss.Color("#A40000") // Errors, summary border

	// Status colours
	SparkYellow = lipgloss.Color("#FFFF00") // Warnings
	LeafGreen   = lipgloss.Color("#00AA00") // Success

	// Text colours
	WarmGray = lipgloss.Color("#B8860B") // Defaults and subtle help text
	AshGray  = lipgloss.Color("#888888") // Keys in key/value output
	White    = lipgloss.Color("#FFFFFF") // Values
)
