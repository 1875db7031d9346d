package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/marcus/shopdesk/internal/models"
)

// ListTicketsOptions controls filtering and ordering for ListTickets
type ListTicketsOptions struct {
	Status   []models.TicketStatus
	Priority []models.Priority
	SortBy   string // "created", "updated", "priority" (default "updated")
	SortDesc bool
}

// CreateTicket inserts a new ticket, assigning an ID and timestamps
func (db *DB) CreateTicket(t *models.Ticket) error {
	if t.Subject == "" {
		return fmt.Errorf("ticket subject is required")
	}
	if t.Status == "" {
		t.Status = models.TicketOpen
	}
	if !models.IsValidTicketStatus(t.Status) {
		return fmt.Errorf("invalid ticket status: %s", t.Status)
	}
	if t.Priority == "" {
		t.Priority = models.PriorityP2
	}
	if !models.IsValidPriority(t.Priority) {
		return fmt.Errorf("invalid priority: %s", t.Priority)
	}

	id, err := generateTicketID()
	if err != nil {
		return fmt.Errorf("generate id: %w", err)
	}
	t.ID = id

	now := time.Now().UTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	return db.withWriteLock(func() error {
		_, err := db.conn.Exec(`
			INSERT INTO tickets (id, subject, requester, status, priority, body, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, t.Subject, t.Requester, string(t.Status), string(t.Priority), t.Body, t.CreatedAt, t.UpdatedAt)
		if err != nil {
			return fmt.Errorf("insert ticket: %w", err)
		}
		return nil
	})
}

// GetTicket fetches a ticket by ID
func (db *DB) GetTicket(id string) (*models.Ticket, error) {
	row := db.conn.QueryRow(`
		SELECT id, subject, requester, status, priority, body, created_at, updated_at
		FROM tickets WHERE id = ?`, id)
	t, err := scanTicket(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("ticket not found")
	}
	return t, err
}

// SetTicketStatus transitions a ticket to the given status
func (db *DB) SetTicketStatus(id string, status models.TicketStatus) error {
	if !models.IsValidTicketStatus(status) {
		return fmt.Errorf("invalid ticket status: %s", status)
	}
	return db.withWriteLock(func() error {
		res, err := db.conn.Exec(`
			UPDATE tickets SET status = ?, updated_at = ? WHERE id = ?`,
			string(status), time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("set ticket status: %w", err)
		}
		return requireRow(res, "ticket", id)
	})
}

// ListTickets returns tickets matching the options
func (db *DB) ListTickets(opts ListTicketsOptions) ([]models.Ticket, error) {
	query := `
		SELECT id, subject, requester, status, priority, body, created_at, updated_at
		FROM tickets WHERE 1=1`
	var args []any

	if len(opts.Status) > 0 {
		query += " AND status IN (" + placeholders(len(opts.Status)) + ")"
		for _, s := range opts.Status {
			args = append(args, string(s))
		}
	}
	if len(opts.Priority) > 0 {
		query += " AND priority IN (" + placeholders(len(opts.Priority)) + ")"
		for _, p := range opts.Priority {
			args = append(args, string(p))
		}
	}

	switch opts.SortBy {
	case "created":
		query += " ORDER BY created_at"
	case "priority":
		query += " ORDER BY priority"
	default:
		query += " ORDER BY updated_at"
	}
	if opts.SortDesc {
		query += " DESC"
	}

	rows, err := db.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var tickets []models.Ticket
	for rows.Next() {
		t, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, *t)
	}
	return tickets, rows.Err()
}

// DeleteTicket removes a ticket
func (db *DB) DeleteTicket(id string) error {
	return db.withWriteLock(func() error {
		res, err := db.conn.Exec(`DELETE FROM tickets WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("delete ticket: %w", err)
		}
		return requireRow(res, "ticket", id)
	})
}

func scanTicket(row rowScanner) (*models.Ticket, error) {
	var t models.Ticket
	var status, priority string
	err := row.Scan(&t.ID, &t.Subject, &t.Requester, &status, &priority, &t.Body, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Status = models.TicketStatus(status)
	t.Priority = models.Priority(priority)
	return &t, nil
}
