// ABOUTME: Recommendation (nudge) model: short motivational messages.
// ABOUTME: Append-only log, read most-recent-first.
package models

import (
	"time"
)

// Recommendation is a coaching nudge issued to a user.
type Recommendation struct {
	UserID    string    `json:"user_id"`
	Message   string    `json:"message"`
	Context   string    `json:"context,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewRecommendation creates a Recommendation timestamped now.
func NewRecommendation(userID, message, context string) *Recommendation {
	return &Recommendation{
		UserID:    userID,
		Message:   message,
		Context:   context,
		CreatedAt: time.Now().UTC(),
	}
}
