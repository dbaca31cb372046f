package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleLabel  = lipgloss.NewStyle().Foreground(colorGray)
	styleMoving = lipgloss.NewStyle().Foreground(colorGray)
)

const (
	iconWarning = "!"
	iconInfo    = "›"
)

func printWarning(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", StyleWarning.Render(iconWarning), fmt.Sprintf(format, args...))
}

func printDetail(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s %s %s\n", StyleDim.Render(iconInfo), styleLabel.Render(label+":"), StyleValue.Render(value))
}
