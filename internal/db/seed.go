package db

import (
	"fmt"

	"github.com/marcus/shopdesk/internal/models"
)

// Seed populates the database with demo catalog, review, and ticket data.
// Intended for 'shopdesk init --seed' and for trying out the console.
func (db *DB) Seed() error {
	products := []models.Product{
		{SKU: "MUG-0001", Name: "Stoneware Mug", Description: "12oz hand-glazed stoneware mug.", PriceCents: 1800, Stock: 42},
		{SKU: "TEE-0420", Name: "Logo Tee", Description: "Organic cotton, unisex fit.", PriceCents: 2400, Stock: 120},
		{SKU: "PST-0007", Name: "Riso Print A3", Description: "Two-color risograph print, numbered.", PriceCents: 3500, Stock: 9},
		{SKU: "CND-0012", Name: "Cedar Candle", Description: "40h burn time.", PriceCents: 2200, Stock: 0, Status: models.ProductHidden},
		{SKU: "BAG-0033", Name: "Canvas Tote", PriceCents: 1600, Stock: 77},
	}

	for i := range products {
		if err := db.CreateProduct(&products[i]); err != nil {
			return fmt.Errorf("seed product %s: %w", products[i].SKU, err)
		}
	}

	reviews := []models.Review{
		{ProductID: products[0].ID, Author: "mira", Rating: 5, Body: "Perfect weight, great glaze."},
		{ProductID: products[0].ID, Author: "jon", Rating: 2, Body: "Chipped on arrival.", Status: models.ReviewPending},
		{ProductID: products[1].ID, Author: "ada", Rating: 4, Body: "Runs a little large.", Status: models.ReviewPublished},
		{ProductID: products[2].ID, Author: "sam", Rating: 1, Body: "spam spam spam", Status: models.ReviewRejected},
	}

	for i := range reviews {
		if err := db.CreateReview(&reviews[i]); err != nil {
			return fmt.Errorf("seed review: %w", err)
		}
	}

	tickets := []models.Ticket{
		{Subject: "Order #1042 never arrived", Requester: "mira@example.com", Priority: models.PriorityP1,
			Body: "Tracking shows **delivered** but nothing at the door.\n\n- Ordered: 2 mugs\n- Order ID: `#1042`"},
		{Subject: "Wrong size shipped", Requester: "jon@example.com", Priority: models.PriorityP2,
			Body: "Ordered M, received XL. Happy to exchange."},
		{Subject: "Wholesale inquiry", Requester: "buyer@shopco.example", Priority: models.PriorityP3, Status: models.TicketPending,
			Body: "Do you offer wholesale pricing for the tote bags?"},
	}

	for i := range tickets {
		if err := db.CreateTicket(&tickets[i]); err != nil {
			return fmt.Errorf("seed ticket: %w", err)
		}
	}

	return nil
}
