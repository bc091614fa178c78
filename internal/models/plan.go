// ABOUTME: Daily Plan, PlanItem, Intensity, and PlanStatus models.
// ABOUTME: Intensity ordering Low<Moderate<High drives the hysteresis rule.
package models

import (
	"time"
)

// Intensity is a workout intensity tier.
type Intensity string

const (
	IntensityLow      Intensity = "Low"
	IntensityModerate Intensity = "Moderate"
	IntensityHigh     Intensity = "High"
)

// intensityRank fixes the ordering Low < Moderate < High.
var intensityRank = map[Intensity]int{
	IntensityLow:      0,
	IntensityModerate: 1,
	IntensityHigh:     2,
}

// Rank returns the intensity's position on the Low<Moderate<High scale.
// Unrecognized values rank as Moderate so a corrupt stored intensity can
// never register as a two-step jump.
func (i Intensity) Rank() int {
	if r, ok := intensityRank[i]; ok {
		return r
	}
	return intensityRank[IntensityModerate]
}

// IsValidIntensity checks if a string is a valid intensity tier.
func IsValidIntensity(s string) bool {
	_, ok := intensityRank[Intensity(s)]
	return ok
}

// PlanStatus is the lifecycle state of a daily plan.
type PlanStatus string

const (
	StatusProposed   PlanStatus = "Proposed"
	StatusInProgress PlanStatus = "In Progress"
	StatusCompleted  PlanStatus = "Completed"
)

// ItemType classifies a plan item.
type ItemType string

const (
	ItemWorkout  ItemType = "Workout"
	ItemHabit    ItemType = "Habit"
	ItemRecovery ItemType = "Recovery"
)

// PlanItem is one entry in a daily plan. Immutable value, embedded in Plan.
type PlanItem struct {
	Type            ItemType  `json:"type"`
	Intensity       Intensity `json:"intensity"`
	DurationMinutes int       `json:"duration_minutes"`
	Notes           string    `json:"notes,omitempty"`
}

// Plan is a user's plan for one calendar day. One plan per (user, date),
// enforced by upsert on that key rather than a uniqueness constraint.
type Plan struct {
	UserID    string     `json:"user_id"`
	Date      string     `json:"date"` // "YYYY-MM-DD"
	Items     []PlanItem `json:"items"`
	Status    PlanStatus `json:"status"`
	StartedAt *time.Time `json:"started_at,omitempty"`
}

// NewPlan creates a Proposed plan for the given day.
func NewPlan(userID, date string, items []PlanItem) *Plan {
	return &Plan{
		UserID: userID,
		Date:   date,
		Items:  items,
		Status: StatusProposed,
	}
}

// WorkoutItem returns the first Workout-type item, or nil if none exists.
// Item-list order matters: the first workout is the one hysteresis keys on.
func (p *Plan) WorkoutItem() *PlanItem {
	for i := range p.Items {
		if p.Items[i].Type == ItemWorkout {
			return &p.Items[i]
		}
	}
	return nil
}

// Today returns the current day key in "YYYY-MM-DD" form (UTC).
func Today() string {
	return time.Now().UTC().Format("2006-01-02")
}
