package models

import "time"

// ProductStatus represents the lifecycle state of a catalog product
type ProductStatus string

const (
	ProductActive       ProductStatus = "active"
	ProductHidden       ProductStatus = "hidden"
	ProductDiscontinued ProductStatus = "discontinued"
)

// IsValidProductStatus checks if a product status is valid
func IsValidProductStatus(s ProductStatus) bool {
	switch s {
	case ProductActive, ProductHidden, ProductDiscontinued:
		return true
	}
	return false
}

// ReviewStatus represents the moderation state of a customer review
type ReviewStatus string

const (
	ReviewPending   ReviewStatus = "pending"
	ReviewPublished ReviewStatus = "published"
	ReviewRejected  ReviewStatus = "rejected"
)

// IsValidReviewStatus checks if a review status is valid
func IsValidReviewStatus(s ReviewStatus) bool {
	switch s {
	case ReviewPending, ReviewPublished, ReviewRejected:
		return true
	}
	return false
}

// TicketStatus represents the state of a support ticket
type TicketStatus string

const (
	TicketOpen    TicketStatus = "open"
	TicketPending TicketStatus = "pending"
	TicketSolved  TicketStatus = "solved"
)

// IsValidTicketStatus checks if a ticket status is valid
func IsValidTicketStatus(s TicketStatus) bool {
	switch s {
	case TicketOpen, TicketPending, TicketSolved:
		return true
	}
	return false
}

// Priority represents ticket priority (P0 = most urgent)
type Priority string

const (
	PriorityP0 Priority = "P0"
	PriorityP1 Priority = "P1"
	PriorityP2 Priority = "P2"
	PriorityP3 Priority = "P3"
)

// IsValidPriority checks if a priority is valid
func IsValidPriority(p Priority) bool {
	switch p {
	case PriorityP0, PriorityP1, PriorityP2, PriorityP3:
		return true
	}
	return false
}

// Product is a catalog entry
type Product struct {
	ID          string        `json:"id"`
	SKU         string        `json:"sku"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	PriceCents  int64         `json:"price_cents"`
	Stock       int           `json:"stock"`
	Status      ProductStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Review is a customer review awaiting or past moderation
type Review struct {
	ID        string       `json:"id"`
	ProductID string       `json:"product_id"`
	Author    string       `json:"author"`
	Rating    int          `json:"rating"`
	Body      string       `json:"body,omitempty"`
	Status    ReviewStatus `json:"status"`
	Reply     string       `json:"reply,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// Ticket is a customer support request. Body is markdown.
type Ticket struct {
	ID        string       `json:"id"`
	Subject   string       `json:"subject"`
	Requester string       `json:"requester"`
	Status    TicketStatus `json:"status"`
	Priority  Priority     `json:"priority"`
	Body      string       `json:"body,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Config holds per-directory console settings
type Config struct {
	LastScreen    string `json:"last_screen,omitempty"`
	IncludeHidden bool   `json:"include_hidden,omitempty"`
}

// IsValidRating checks a review rating is in the 1..5 range
func IsValidRating(r int) bool {
	return r >= 1 && r <= 5
}
