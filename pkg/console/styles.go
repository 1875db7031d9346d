package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Color palette shared across the console screens
var (
	primaryColor   = lipgloss.Color("39")  // blue
	secondaryColor = lipgloss.Color("135") // purple
	successColor   = lipgloss.Color("42")  // green
	warningColor   = lipgloss.Color("214") // orange
	errorColor     = lipgloss.Color("196") // red
	mutedColor     = lipgloss.Color("241") // gray
	cyanColor      = lipgloss.Color("51")
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	tabStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Padding(0, 1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(lipgloss.Color("237")).
			Padding(0, 1)

	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(mutedColor)

	idStyle = lipgloss.NewStyle().
		Foreground(mutedColor)

	subtleStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	menuButtonStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	menuButtonActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor)

	searchPromptStyle = lipgloss.NewStyle().
				Foreground(cyanColor)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	statusErrorStyle = lipgloss.NewStyle().
				Foreground(errorColor)

	statusOKStyle = lipgloss.NewStyle().
			Foreground(successColor)
)

// statusColor maps an entity status string to its badge color
func statusColor(status string) lipgloss.Color {
	switch status {
	case "active", "published", "solved":
		return successColor
	case "pending", "open":
		return warningColor
	case "hidden", "discontinued":
		return mutedColor
	case "rejected":
		return errorColor
	default:
		return mutedColor
	}
}

// formatStatus renders a colored status badge
func formatStatus(status string) string {
	return lipgloss.NewStyle().Foreground(statusColor(status)).Render(status)
}

// formatPriority renders a ticket priority marker
func formatPriority(p string) string {
	switch p {
	case "P0":
		return lipgloss.NewStyle().Bold(true).Foreground(errorColor).Render(p)
	case "P1":
		return lipgloss.NewStyle().Foreground(warningColor).Render(p)
	case "P2":
		return lipgloss.NewStyle().Foreground(cyanColor).Render(p)
	default:
		return subtleStyle.Render(p)
	}
}

// highlightRow applies the selection background to a full-width row, padding
// or truncating to the given width first so the highlight spans the row.
func highlightRow(content string, width int) string {
	w := ansi.StringWidth(content)
	if w > width {
		content = ansi.Truncate(content, width, "…")
	} else if w < width {
		content += strings.Repeat(" ", width-w)
	}
	return lipgloss.NewStyle().
		Background(lipgloss.Color("237")).
		Render(content)
}

// padCell pads or truncates a cell to an exact width
func padCell(content string, width int) string {
	w := ansi.StringWidth(content)
	if w > width {
		return ansi.Truncate(content, width, "…")
	}
	return content + strings.Repeat(" ", width-w)
}
