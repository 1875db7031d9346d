package console

import (
	"time"

	"github.com/sahilm/fuzzy"
	"golang.org/x/sync/errgroup"

	"github.com/marcus/shopdesk/internal/db"
	"github.com/marcus/shopdesk/internal/models"
)

// RefreshDataMsg carries a full snapshot of the store for display
type RefreshDataMsg struct {
	Timestamp time.Time
	Products  []models.Product
	Reviews   []models.Review
	Tickets   []models.Ticket
	Err       error
}

// FetchData retrieves all data needed for the console display. Products are
// searched server-side with relevance ranking; reviews and tickets are
// filtered client-side with fuzzy matching since their lists stay small.
func FetchData(database *db.DB, searchQuery string, includeHidden bool) RefreshDataMsg {
	msg := RefreshDataMsg{
		Timestamp: time.Now(),
	}

	var products []models.Product
	var reviews []models.Review
	var tickets []models.Ticket

	var g errgroup.Group
	g.Go(func() error {
		var err error
		products, err = fetchProducts(database, searchQuery, includeHidden)
		return err
	})
	g.Go(func() error {
		var err error
		reviews, err = database.ListReviews(db.ListReviewsOptions{
			SortBy:   "created",
			SortDesc: true,
		})
		return err
	})
	g.Go(func() error {
		var err error
		tickets, err = database.ListTickets(db.ListTicketsOptions{
			SortBy: "priority",
		})
		return err
	})
	if err := g.Wait(); err != nil {
		msg.Err = err
		return msg
	}

	msg.Products = products
	msg.Reviews = filterReviews(reviews, searchQuery)
	msg.Tickets = filterTickets(tickets, searchQuery)
	return msg
}

func fetchProducts(database *db.DB, searchQuery string, includeHidden bool) ([]models.Product, error) {
	var products []models.Product

	if searchQuery != "" {
		results, err := database.SearchProductsRanked(searchQuery, db.ListProductsOptions{})
		if err != nil {
			return nil, err
		}
		for _, r := range results {
			products = append(products, r.Product)
		}
	} else {
		var err error
		products, err = database.ListProducts(db.ListProductsOptions{SortBy: "name"})
		if err != nil {
			return nil, err
		}
	}

	if includeHidden {
		return products, nil
	}
	visible := products[:0]
	for _, p := range products {
		if p.Status != models.ProductHidden {
			visible = append(visible, p)
		}
	}
	return visible, nil
}

// filterReviews narrows reviews by fuzzy-matching the query against author
// and body text
func filterReviews(reviews []models.Review, query string) []models.Review {
	if query == "" {
		return reviews
	}
	searchStrings := make([]string, len(reviews))
	for i, r := range reviews {
		searchStrings[i] = r.Author + " " + r.Body
	}
	matches := fuzzy.Find(query, searchStrings)
	filtered := make([]models.Review, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, reviews[match.Index])
	}
	return filtered
}

// filterTickets narrows tickets by fuzzy-matching the query against subject
// and requester
func filterTickets(tickets []models.Ticket, query string) []models.Ticket {
	if query == "" {
		return tickets
	}
	searchStrings := make([]string, len(tickets))
	for i, t := range tickets {
		searchStrings[i] = t.Subject + " " + t.Requester
	}
	matches := fuzzy.Find(query, searchStrings)
	filtered := make([]models.Ticket, 0, len(matches))
	for _, match := range matches {
		filtered = append(filtered, tickets[match.Index])
	}
	return filtered
}
