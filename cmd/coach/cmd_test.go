// ABOUTME: Tests for CLI helper functions.
// ABOUTME: Tests parseTime, padRight, and plan status coloring.
package main

import (
	"testing"

	"github.com/harperreed/coach/internal/models"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "RFC3339",
			input:   "2026-08-30T08:30:00Z",
			wantErr: false,
		},
		{
			name:    "RFC3339 with offset",
			input:   "2026-08-30T08:30:00+05:00",
			wantErr: false,
		},
		{
			name:    "date and time with T",
			input:   "2026-08-30T08:30",
			wantErr: false,
		},
		{
			name:    "date and time with space",
			input:   "2026-08-30 08:30",
			wantErr: false,
		},
		{
			name:    "date only",
			input:   "2026-08-30",
			wantErr: false,
		},
		{
			name:    "invalid format",
			input:   "30-08-2026",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseTime(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTime(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Errorf("parseTime(%q) unexpected error: %v", tt.input, err)
			}
			if got.IsZero() {
				t.Errorf("parseTime(%q) returned zero time", tt.input)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"HR", 5, "HR   "},
		{"Steps", 5, "Steps"},
		{"SleepScore", 5, "SleepScore"},
		{"", 3, "   "},
	}

	for _, tt := range tests {
		if got := padRight(tt.input, tt.width); got != tt.want {
			t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
	}
}

func TestStatusColor(t *testing.T) {
	// Colors may be stripped in tests; the status text must survive either way.
	for _, status := range []models.PlanStatus{
		models.StatusProposed, models.StatusInProgress, models.StatusCompleted,
	} {
		got := statusColor(status)
		if got == "" {
			t.Errorf("statusColor(%s) returned empty string", status)
		}
	}
}
