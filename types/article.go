package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Article is the normalized record emitted by every extraction path.
// The engine fills everything except the Source* fields, which the
// caller attaches after extraction.
type Article struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	PubDate     time.Time `json:"pubDate"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl,omitempty"`

	SourceName     string `json:"sourceName,omitempty"`
	SourceCategory string `json:"sourceCategory,omitempty"`
	SourceURL      string `json:"sourceUrl,omitempty"`
}

// GenerateID creates a short, stable ID by hashing the provided string input
func GenerateID(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])[:16]
}
