package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/marcus/shopdesk/internal/models"
)

// ListReviewsOptions controls filtering and ordering for ListReviews
type ListReviewsOptions struct {
	Status    []models.ReviewStatus
	ProductID string
	MinRating int
	SortBy    string // "created", "rating" (default "created")
	SortDesc  bool
}

// CreateReview inserts a new review, assigning an ID and timestamp
func (db *DB) CreateReview(r *models.Review) error {
	if r.ProductID == "" {
		return fmt.Errorf("review product_id is required")
	}
	if !models.IsValidRating(r.Rating) {
		return fmt.Errorf("invalid rating: %d", r.Rating)
	}
	if r.Status == "" {
		r.Status = models.ReviewPending
	}
	if !models.IsValidReviewStatus(r.Status) {
		return fmt.Errorf("invalid review status: %s", r.Status)
	}

	id, err := generateReviewID()
	if err != nil {
		return fmt.Errorf("generate id: %w", err)
	}
	r.ID = id
	r.CreatedAt = time.Now().UTC()

	return db.withWriteLock(func() error {
		_, err := db.conn.Exec(`
			INSERT INTO reviews (id, product_id, author, rating, body, status, reply, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			r.ID, NormalizeProductID(r.ProductID), r.Author, r.Rating, r.Body, string(r.Status), r.Reply, r.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert review: %w", err)
		}
		return nil
	})
}

// GetReview fetches a review by ID
func (db *DB) GetReview(id string) (*models.Review, error) {
	row := db.conn.QueryRow(`
		SELECT id, product_id, author, rating, body, status, reply, created_at
		FROM reviews WHERE id = ?`, id)
	r, err := scanReview(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("review not found")
	}
	return r, err
}

// SetReviewStatus transitions a review through moderation
func (db *DB) SetReviewStatus(id string, status models.ReviewStatus) error {
	if !models.IsValidReviewStatus(status) {
		return fmt.Errorf("invalid review status: %s", status)
	}
	return db.withWriteLock(func() error {
		res, err := db.conn.Exec(`UPDATE reviews SET status = ? WHERE id = ?`, string(status), id)
		if err != nil {
			return fmt.Errorf("set review status: %w", err)
		}
		return requireRow(res, "review", id)
	})
}

// SetReviewReply stores the merchant reply on a review
func (db *DB) SetReviewReply(id string, reply string) error {
	return db.withWriteLock(func() error {
		res, err := db.conn.Exec(`UPDATE reviews SET reply = ? WHERE id = ?`, reply, id)
		if err != nil {
			return fmt.Errorf("set review reply: %w", err)
		}
		return requireRow(res, "review", id)
	})
}

// ListReviews returns reviews matching the options
func (db *DB) ListReviews(opts ListReviewsOptions) ([]models.Review, error) {
	query := `
		SELECT id, product_id, author, rating, body, status, reply, created_at
		FROM reviews WHERE 1=1`
	var args []any

	if len(opts.Status) > 0 {
		query += " AND status IN (" + placeholders(len(opts.Status)) + ")"
		for _, s := range opts.Status {
			args = append(args, string(s))
		}
	}
	if opts.ProductID != "" {
		query += " AND product_id = ?"
		args = append(args, NormalizeProductID(opts.ProductID))
	}
	if opts.MinRating > 0 {
		query += " AND rating >= ?"
		args = append(args, opts.MinRating)
	}

	switch opts.SortBy {
	case "rating":
		query += " ORDER BY rating"
	default:
		query += " ORDER BY created_at"
	}
	if opts.SortDesc {
		query += " DESC"
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, *r)
	}
	return reviews, rows.Err()
}

// DeleteReview removes a review
func (db *DB) DeleteReview(id string) error {
	return db.withWriteLock(func() error {
		res, err := db.conn.Exec(`DELETE FROM reviews WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete review: %w", err)
		}
		return requireRow(res, "review", id)
	})
}

func scanReview(row rowScanner) (*models.Review, error) {
	var r models.Review
	var status string
	err := row.Scan(&r.ID, &r.ProductID, &r.Author, &r.Rating, &r.Body, &status, &r.Reply, &r.CreatedAt)
	if err != nil {
		return nil, err
	}
	r.Status = models.ReviewStatus(status)
	return &r, nil
}
