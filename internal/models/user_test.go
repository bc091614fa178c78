// ABOUTME: Tests for User and Feedback models.
// ABOUTME: Validates constructor defaults and builder methods.
package models

import (
	"testing"
)

func TestNewUserDefaults(t *testing.T) {
	u := NewUser("U123", "Demo User")

	if u.UserID != "U123" || u.Name != "Demo User" {
		t.Errorf("identity = (%s, %s), want (U123, Demo User)", u.UserID, u.Name)
	}
	if u.Preferences.DaysPerWeek != 4 {
		t.Errorf("DaysPerWeek = %d, want 4", u.Preferences.DaysPerWeek)
	}
	if len(u.Preferences.Equipment) == 0 {
		t.Error("expected default equipment")
	}
	if u.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestNewFeedback(t *testing.T) {
	fb := NewFeedback("U123")

	if fb.Pain != "none" {
		t.Errorf("Pain = %s, want none", fb.Pain)
	}
	if fb.RPE != nil {
		t.Error("expected RPE unset by default")
	}

	fb = fb.WithRPE(7).WithMood("great").WithPain("left knee").WithNotes("cut it short")
	if fb.RPE == nil || *fb.RPE != 7 {
		t.Errorf("RPE = %v, want 7", fb.RPE)
	}
	if fb.Mood != "great" || fb.Pain != "left knee" || fb.Notes != "cut it short" {
		t.Errorf("unexpected feedback fields: %+v", fb)
	}
}
