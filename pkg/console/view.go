package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/marcus/shopdesk/internal/models"
	"github.com/marcus/shopdesk/pkg/console/popover"
)

// listTopRows is the number of chrome rows above the list (header, search,
// column headers). Hit-region y coordinates depend on it.
const listTopRows = 3

// View renders the full console frame and rebuilds the hit map for it
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return "loading..."
	}

	m.Hits.Clear()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderSearchLine())
	b.WriteString("\n")
	b.WriteString(m.renderColumnHeaders())
	b.WriteString("\n")

	rows := m.renderRows()
	for i := 0; i < m.visibleRows(); i++ {
		if i < len(rows) {
			b.WriteString(rows[i])
		}
		b.WriteString("\n")
	}
	b.WriteString(m.renderStatusBar())

	base := b.String()

	if m.Form != nil {
		box := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 2).
			Render(m.Form.View())
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box)
	}
	if m.Detail != nil {
		return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, m.Detail.View())
	}

	return m.Menu.Render(base, popover.Viewport{Width: m.Width, Height: m.Height})
}

// renderHeader draws the title and screen tabs, registering a hit region per
// tab
func (m Model) renderHeader() string {
	title := titleStyle.Render(" shopdesk ")
	x := lipgloss.Width(title)

	tabs := []struct {
		screen Screen
		label  string
	}{
		{ScreenCatalog, fmt.Sprintf("Catalog (%d)", len(m.Data.Products))},
		{ScreenReviews, fmt.Sprintf("Reviews (%d)", len(m.Data.Reviews))},
		{ScreenTickets, fmt.Sprintf("Tickets (%d)", len(m.Data.Tickets))},
	}

	var parts []string
	parts = append(parts, title)
	for _, tab := range tabs {
		style := tabStyle
		if tab.screen == m.Screen {
			style = tabActiveStyle
		}
		rendered := style.Render(tab.label)
		w := lipgloss.Width(rendered)
		m.Hits.AddRect("tab:"+tab.screen.String(), x, 0, w, 1, nil)
		x += w
		parts = append(parts, rendered)
	}

	return padCell(strings.Join(parts, ""), m.Width)
}

func (m Model) renderSearchLine() string {
	var line string
	if m.Searching {
		line = " " + searchPromptStyle.Render("/") + m.Search.View()
	} else if q := m.Search.Value(); q != "" {
		line = " " + searchPromptStyle.Render("/"+q) + subtleStyle.Render("  (/ to edit, esc clears)")
	} else {
		line = " " + subtleStyle.Render("/ search")
	}
	if m.Screen == ScreenCatalog {
		if m.IncludeHidden {
			line += subtleStyle.Render("  ·  showing hidden")
		}
	}
	return padCell(line, m.Width)
}

func (m Model) renderColumnHeaders() string {
	var line string
	switch m.Screen {
	case ScreenCatalog:
		line = " " + columnHeaderStyle.Render(
			padCell("ID", 12)+padCell("SKU", 12)+padCell("NAME", m.nameColWidth())+
				padCell("PRICE", 10)+padCell("STOCK", 7)+"STATUS")
	case ScreenReviews:
		line = " " + columnHeaderStyle.Render(
			padCell("ID", 12)+padCell("PRODUCT", 12)+padCell("AUTHOR", 16)+
				padCell("RATING", 8)+padCell("STATUS", 11)+"BODY")
	case ScreenTickets:
		line = " " + columnHeaderStyle.Render(
			padCell("ID", 12)+padCell("PRI", 5)+padCell("STATUS", 9)+
				padCell("REQUESTER", 20)+"SUBJECT")
	}
	return padCell(line, m.Width)
}

// nameColWidth sizes the flexible product name column from the fixed columns
func (m Model) nameColWidth() int {
	w := m.Width - 1 - 12 - 12 - 10 - 7 - 12 - 4
	if w < 8 {
		w = 8
	}
	return w
}

// renderRows draws the visible slice of the active screen's list and
// registers a row region plus a menu-button region for each
func (m Model) renderRows() []string {
	s := m.Screen
	scroll := m.Scrolls[s]
	visible := m.visibleRows()

	var lines []string
	for i := 0; i < visible; i++ {
		idx := scroll + i
		if idx >= m.rowCount() {
			break
		}

		var id, content string
		var entity any
		switch s {
		case ScreenCatalog:
			p := m.Data.Products[idx]
			id, entity = p.ID, p
			content = m.renderProductRow(p, idx == m.Cursors[s])
		case ScreenReviews:
			r := m.Data.Reviews[idx]
			id, entity = r.ID, r
			content = m.renderReviewRow(r, idx == m.Cursors[s])
		case ScreenTickets:
			t := m.Data.Tickets[idx]
			id, entity = t.ID, t
			content = m.renderTicketRow(t, idx == m.Cursors[s])
		}

		y := listTopRows + i
		ref := rowRef{Index: idx, Entity: entity}
		m.Hits.AddRect("row:"+id, 0, y, m.Width-3, 1, ref)
		m.Hits.AddRect("menu:"+id, m.Width-3, y, 3, 1, ref)

		buttonStyle := menuButtonStyle
		if m.ActiveRowID == "menu:"+id {
			buttonStyle = menuButtonActiveStyle
		}
		lines = append(lines, padCell(content, m.Width-3)+buttonStyle.Render(" ⋯ "))
	}
	return lines
}

func (m Model) renderProductRow(p models.Product, selected bool) string {
	contentWidth := m.Width - 3
	if selected {
		plain := fmt.Sprintf(" %s%s%s%s%s%s",
			padCell(p.ID, 12), padCell(p.SKU, 12), padCell(p.Name, m.nameColWidth()),
			padCell("$"+formatPrice(p.PriceCents), 10), padCell(fmt.Sprintf("%d", p.Stock), 7),
			p.Status)
		return highlightRow(plain, contentWidth)
	}
	return " " + idStyle.Render(padCell(p.ID, 12)) + padCell(p.SKU, 12) +
		padCell(p.Name, m.nameColWidth()) + padCell("$"+formatPrice(p.PriceCents), 10) +
		padCell(fmt.Sprintf("%d", p.Stock), 7) + formatStatus(string(p.Status))
}

func (m Model) renderReviewRow(r models.Review, selected bool) string {
	contentWidth := m.Width - 3
	stars := strings.Repeat("★", r.Rating) + strings.Repeat("☆", 5-r.Rating)
	if selected {
		plain := fmt.Sprintf(" %s%s%s%s%s%s",
			padCell(r.ID, 12), padCell(r.ProductID, 12), padCell(r.Author, 16),
			padCell(stars, 8), padCell(string(r.Status), 11), r.Body)
		return highlightRow(plain, contentWidth)
	}
	bodyWidth := contentWidth - 1 - 12 - 12 - 16 - 8 - 11
	if bodyWidth < 4 {
		bodyWidth = 4
	}
	return " " + idStyle.Render(padCell(r.ID, 12)) + idStyle.Render(padCell(r.ProductID, 12)) +
		padCell(r.Author, 16) + padCell(stars, 8) +
		padCell(formatStatus(string(r.Status)), 11) + padCell(r.Body, bodyWidth)
}

func (m Model) renderTicketRow(t models.Ticket, selected bool) string {
	contentWidth := m.Width - 3
	if selected {
		plain := fmt.Sprintf(" %s%s%s%s%s",
			padCell(t.ID, 12), padCell(string(t.Priority), 5), padCell(string(t.Status), 9),
			padCell(t.Requester, 20), t.Subject)
		return highlightRow(plain, contentWidth)
	}
	subjectWidth := contentWidth - 1 - 12 - 5 - 9 - 20
	if subjectWidth < 4 {
		subjectWidth = 4
	}
	return " " + idStyle.Render(padCell(t.ID, 12)) + padCell(formatPriority(string(t.Priority)), 5) +
		padCell(formatStatus(string(t.Status)), 9) + padCell(t.Requester, 20) +
		padCell(t.Subject, subjectWidth)
}

func (m Model) renderStatusBar() string {
	left := ""
	switch {
	case m.Err != nil:
		left = statusErrorStyle.Render(" " + m.Err.Error())
	case m.StatusMessage != "" && m.StatusIsError:
		left = statusErrorStyle.Render(" " + m.StatusMessage)
	case m.StatusMessage != "":
		left = statusOKStyle.Render(" " + m.StatusMessage)
	}

	hints := "j/k:move  enter:menu  tab:screen  /:search  n:new  H:hidden  q:quit"
	right := statusBarStyle.Render(hints + " ")

	gap := m.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return padCell(left, m.Width)
	}
	return left + strings.Repeat(" ", gap) + right
}
