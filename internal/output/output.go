package output

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/marcus/shopdesk/internal/models"
)

// Error prints an error message to stderr
func Error(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
}

// JSON writes a value to stdout as indented JSON
func JSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// JSONError writes a structured error object to stdout
func JSONError(code, message string) {
	JSON(map[string]string{"error": code, "message": message})
}

// TerminalWidth returns the current terminal width, defaulting to 80 when
// stdout is not a terminal
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// FormatPrice renders cents as a dollar amount
func FormatPrice(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// Truncate shortens a string to max runes, appending an ellipsis
func Truncate(s string, max int) string {
	if max <= 1 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// FormatProductShort renders one product as a single list line
func FormatProductShort(p *models.Product) string {
	return fmt.Sprintf("%s  %-12s %-9s %8s  stock:%-4d %s",
		p.ID, p.SKU, FormatPrice(p.PriceCents), "["+p.Status+"]", p.Stock, p.Name)
}

// FormatReviewShort renders one review as a single list line
func FormatReviewShort(r *models.Review) string {
	stars := strings.Repeat("★", r.Rating) + strings.Repeat("☆", 5-r.Rating)
	body := Truncate(strings.ReplaceAll(r.Body, "\n", " "), 48)
	return fmt.Sprintf("%s  %s  %-11s %-12s %s", r.ID, stars, "["+r.Status+"]", r.Author, body)
}

// FormatTicketShort renders one ticket as a single list line
func FormatTicketShort(t *models.Ticket) string {
	return fmt.Sprintf("%s  %s  %-9s %-24s %s",
		t.ID, t.Priority, "["+t.Status+"]", t.Requester, Truncate(t.Subject, 60))
}
