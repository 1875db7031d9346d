package console

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/shopdesk/internal/models"
)

// ticketDetail is the scrollable markdown overlay for one ticket
type ticketDetail struct {
	Ticket   models.Ticket
	Viewport viewport.Model
}

// newTicketDetail renders the ticket body and wraps it in a viewport sized
// for the overlay
func newTicketDetail(t models.Ticket, width, height int) *ticketDetail {
	vpWidth := width * 80 / 100
	if vpWidth < 40 {
		vpWidth = width - 4
	}
	vpHeight := height * 70 / 100
	if vpHeight < 8 {
		vpHeight = height - 4
	}

	vp := viewport.New(vpWidth, vpHeight)
	vp.SetContent(renderTicketMarkdown(t, vpWidth))

	return &ticketDetail{
		Ticket:   t,
		Viewport: vp,
	}
}

// renderTicketMarkdown converts the ticket body to ANSI-formatted output.
// On renderer failure the raw markdown is shown instead.
func renderTicketMarkdown(t models.Ticket, width int) string {
	source := fmt.Sprintf("# %s\n\n**From:** %s  \n**Status:** %s · **Priority:** %s\n\n---\n\n%s",
		t.Subject, t.Requester, t.Status, t.Priority, t.Body)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width-2),
	)
	if err != nil {
		return source
	}
	out, err := renderer.Render(source)
	if err != nil {
		return source
	}
	return out
}

// View renders the detail overlay box
func (d *ticketDetail) View() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(primaryColor).
		Padding(0, 1)

	footer := subtleStyle.Render(fmt.Sprintf("  %s  j/k:scroll  esc:close", d.Ticket.ID))
	return box.Render(d.Viewport.View() + "\n" + footer)
}
