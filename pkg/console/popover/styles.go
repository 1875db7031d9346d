package popover

import "github.com/charmbracelet/lipgloss"

// Colors matching the console style system
var (
	borderColor   = lipgloss.Color("240")
	selectedBg    = lipgloss.Color("237")
	selectedFg    = lipgloss.Color("255")
	normalFg      = lipgloss.Color("252")
	dangerFg      = lipgloss.Color("196")
	arrowFg       = lipgloss.Color("241")
	iconFg        = lipgloss.Color("245")
)

// Styles control the menu's visual treatment
type Styles struct {
	Box            lipgloss.Style
	Item           lipgloss.Style
	ItemSelected   lipgloss.Style
	Danger         lipgloss.Style
	DangerSelected lipgloss.Style
	Icon           lipgloss.Style
	Arrow          lipgloss.Style
}

// DefaultStyles returns the standard menu styling. The box keeps zero
// vertical padding so each item occupies exactly one row inside the border
// (hit testing depends on it).
func DefaultStyles() Styles {
	return Styles{
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor).
			Padding(0, 1),

		Item: lipgloss.NewStyle().
			Foreground(normalFg),

		ItemSelected: lipgloss.NewStyle().
			Background(selectedBg).
			Foreground(selectedFg).
			Bold(true),

		Danger: lipgloss.NewStyle().
			Foreground(dangerFg),

		DangerSelected: lipgloss.NewStyle().
			Background(selectedBg).
			Foreground(dangerFg).
			Bold(true),

		Icon: lipgloss.NewStyle().
			Foreground(iconFg),

		Arrow: lipgloss.NewStyle().
			Foreground(arrowFg),
	}
}
