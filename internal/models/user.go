// ABOUTME: User profile and workout feedback models.
// ABOUTME: Users are created lazily on first touch; feedback is an append-only log.
package models

import (
	"time"
)

// Preferences holds coarse training preferences for a user.
type Preferences struct {
	DaysPerWeek int      `json:"days_per_week,omitempty"`
	Equipment   []string `json:"equipment,omitempty"`
}

// User is a tracked account.
type User struct {
	UserID      string      `json:"user_id"`
	Name        string      `json:"name"`
	Preferences Preferences `json:"preferences,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}

// NewUser creates a User with default preferences.
func NewUser(userID, name string) *User {
	return &User{
		UserID: userID,
		Name:   name,
		Preferences: Preferences{
			DaysPerWeek: 4,
			Equipment:   []string{"bodyweight", "dumbbells"},
		},
		CreatedAt: time.Now().UTC(),
	}
}

// Feedback is a user's note about a session: perceived exertion, mood, pain.
type Feedback struct {
	UserID    string    `json:"user_id"`
	RPE       *int      `json:"rpe,omitempty"` // rate of perceived exertion, 1-10
	Mood      string    `json:"mood,omitempty"`
	Pain      string    `json:"pain"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewFeedback creates a Feedback entry timestamped now. Pain defaults to "none".
func NewFeedback(userID string) *Feedback {
	return &Feedback{
		UserID:    userID,
		Pain:      "none",
		CreatedAt: time.Now().UTC(),
	}
}

// WithRPE sets the perceived exertion rating.
func (f *Feedback) WithRPE(rpe int) *Feedback {
	f.RPE = &rpe
	return f
}

// WithMood sets the reported mood.
func (f *Feedback) WithMood(mood string) *Feedback {
	f.Mood = mood
	return f
}

// WithPain sets the reported pain area.
func (f *Feedback) WithPain(pain string) *Feedback {
	f.Pain = pain
	return f
}

// WithNotes sets free-form notes.
func (f *Feedback) WithNotes(notes string) *Feedback {
	f.Notes = notes
	return f
}
