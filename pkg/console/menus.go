package console

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/shopdesk/internal/db"
	"github.com/marcus/shopdesk/internal/models"
	"github.com/marcus/shopdesk/pkg/console/popover"
)

// productMenu builds the contextual menu for a catalog row. Actions run off
// the UI thread and report back through actionResultMsg.
func productMenu(database *db.DB, p models.Product) []popover.MenuItem {
	items := []popover.MenuItem{
		{
			Label: "Edit",
			Icon:  "✎",
			Action: func() tea.Msg {
				return editProductMsg{ProductID: p.ID}
			},
		},
		{
			Label: "Restock +10",
			Icon:  "+",
			Action: func() tea.Msg {
				stock, err := database.AdjustStock(p.ID, 10)
				if err != nil {
					return actionResultMsg{Err: err}
				}
				return actionResultMsg{
					Status:  fmt.Sprintf("%s stock: %d", p.SKU, stock),
					Refresh: true,
				}
			},
		},
		{
			Label: "Reviews",
			Icon:  "★",
			Kind:  popover.KindArrow,
			Action: func() tea.Msg {
				return viewProductReviewsMsg{ProductID: p.ID}
			},
		},
	}

	if p.Status == models.ProductHidden {
		items = append(items, popover.MenuItem{
			Label: "Show",
			Action: func() tea.Msg {
				return setProductStatus(database, p, models.ProductActive)
			},
		})
	} else {
		items = append(items, popover.MenuItem{
			Label: "Hide",
			Action: func() tea.Msg {
				return setProductStatus(database, p, models.ProductHidden)
			},
		})
	}

	if p.Status != models.ProductDiscontinued {
		items = append(items, popover.MenuItem{
			Label: "Discontinue",
			Kind:  popover.KindDanger,
			Action: func() tea.Msg {
				return setProductStatus(database, p, models.ProductDiscontinued)
			},
		})
	}

	return items
}

func setProductStatus(database *db.DB, p models.Product, status models.ProductStatus) tea.Msg {
	if err := database.SetProductStatus(p.ID, status); err != nil {
		return actionResultMsg{Err: err}
	}
	return actionResultMsg{
		Status:  fmt.Sprintf("%s → %s", p.SKU, status),
		Refresh: true,
	}
}

// reviewMenu builds the contextual menu for a review row
func reviewMenu(database *db.DB, r models.Review) []popover.MenuItem {
	var items []popover.MenuItem

	if r.Status != models.ReviewPublished {
		items = append(items, popover.MenuItem{
			Label: "Publish",
			Icon:  "✓",
			Action: func() tea.Msg {
				return setReviewStatus(database, r, models.ReviewPublished)
			},
		})
	}
	if r.Reply == "" {
		items = append(items, popover.MenuItem{
			Label: "Reply thanks",
			Icon:  "↩",
			Action: func() tea.Msg {
				if err := database.SetReviewReply(r.ID, "Thanks for the feedback!"); err != nil {
					return actionResultMsg{Err: err}
				}
				return actionResultMsg{Status: "replied to " + r.Author, Refresh: true}
			},
		})
	}
	if r.Status != models.ReviewRejected {
		items = append(items, popover.MenuItem{
			Label: "Reject",
			Kind:  popover.KindDanger,
			Action: func() tea.Msg {
				return setReviewStatus(database, r, models.ReviewRejected)
			},
		})
	}
	items = append(items, popover.MenuItem{
		Label: "Delete",
		Kind:  popover.KindDanger,
		Action: func() tea.Msg {
			if err := database.DeleteReview(r.ID); err != nil {
				return actionResultMsg{Err: err}
			}
			return actionResultMsg{Status: "review deleted", Refresh: true}
		},
	})

	return items
}

func setReviewStatus(database *db.DB, r models.Review, status models.ReviewStatus) tea.Msg {
	if err := database.SetReviewStatus(r.ID, status); err != nil {
		return actionResultMsg{Err: err}
	}
	return actionResultMsg{
		Status:  fmt.Sprintf("review %s", status),
		Refresh: true,
	}
}

// ticketMenu builds the contextual menu for a ticket row
func ticketMenu(database *db.DB, t models.Ticket) []popover.MenuItem {
	items := []popover.MenuItem{
		{
			Label: "View",
			Icon:  "⊙",
			Kind:  popover.KindArrow,
			Action: func() tea.Msg {
				return viewTicketMsg{TicketID: t.ID}
			},
		},
	}

	transitions := []struct {
		label  string
		status models.TicketStatus
	}{
		{"Reopen", models.TicketOpen},
		{"Mark pending", models.TicketPending},
		{"Solve", models.TicketSolved},
	}
	for _, tr := range transitions {
		if t.Status == tr.status {
			continue
		}
		status := tr.status
		items = append(items, popover.MenuItem{
			Label: tr.label,
			Action: func() tea.Msg {
				if err := database.SetTicketStatus(t.ID, status); err != nil {
					return actionResultMsg{Err: err}
				}
				return actionResultMsg{
					Status:  fmt.Sprintf("%s → %s", t.ID, status),
					Refresh: true,
				}
			},
		})
	}

	items = append(items, popover.MenuItem{
		Label: "Delete",
		Kind:  popover.KindDanger,
		Action: func() tea.Msg {
			if err := database.DeleteTicket(t.ID); err != nil {
				return actionResultMsg{Err: err}
			}
			return actionResultMsg{Status: "ticket deleted", Refresh: true}
		},
	})

	return items
}

// menuForRow builds the menu matching a hit-region payload
func (m Model) menuForRow(data any) []popover.MenuItem {
	switch v := data.(type) {
	case models.Product:
		return productMenu(m.DB, v)
	case models.Review:
		return reviewMenu(m.DB, v)
	case models.Ticket:
		return ticketMenu(m.DB, v)
	}
	return nil
}
