package db

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
)

const (
	productIDPrefix = "pr-"
	reviewIDPrefix  = "rv-"
	ticketIDPrefix  = "tk-"
)

// idGenerator is the function used to generate entity IDs.
// It can be replaced in tests to control ID generation.
var idGenerator = defaultGenerateID

// defaultGenerateID generates a unique ID with the given prefix using crypto/rand
func defaultGenerateID(prefix string) (string, error) {
	bytes := make([]byte, 4) // 8 hex characters
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return prefix + hex.EncodeToString(bytes), nil
}

func generateProductID() (string, error) {
	return idGenerator(productIDPrefix)
}

func generateReviewID() (string, error) {
	return idGenerator(reviewIDPrefix)
}

func generateTicketID() (string, error) {
	return idGenerator(ticketIDPrefix)
}

// NormalizeProductID ensures a product ID has the pr- prefix.
// Accepts bare hex IDs like "abc123" and returns "pr-abc123"
func NormalizeProductID(id string) string {
	if id == "" {
		return id
	}
	if !strings.HasPrefix(id, productIDPrefix) {
		return productIDPrefix + id
	}
	return id
}
