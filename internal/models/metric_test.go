// ABOUTME: Tests for Metric model and MetricType enum.
// ABOUTME: Validates type constants, units mapping, and constructor.
package models

import (
	"testing"
	"time"
)

func TestIsValidMetricType(t *testing.T) {
	for _, mt := range AllMetricTypes {
		if !IsValidMetricType(string(mt)) {
			t.Errorf("IsValidMetricType(%s) = false, want true", mt)
		}
	}
	for _, s := range []string{"hr", "STEPS", "Sleep", ""} {
		if IsValidMetricType(s) {
			t.Errorf("IsValidMetricType(%s) = true, want false", s)
		}
	}
}

func TestAllMetricTypesHaveUnits(t *testing.T) {
	for _, mt := range AllMetricTypes {
		if _, ok := MetricUnits[mt]; !ok {
			t.Errorf("MetricType %s has no unit defined", mt)
		}
	}
}

func TestNewMetric(t *testing.T) {
	m := NewMetric("U123", MetricHR, 72)

	if m.UserID != "U123" {
		t.Errorf("UserID = %s, want U123", m.UserID)
	}
	if m.MetricType != MetricHR {
		t.Errorf("MetricType = %s, want HR", m.MetricType)
	}
	if m.Value != 72.0 {
		t.Errorf("Value = %v, want 72", m.Value)
	}
	if m.RecordedAt.IsZero() {
		t.Error("expected RecordedAt to be set")
	}
	if m.Day != "" {
		t.Errorf("Day = %s, want empty on a raw sample", m.Day)
	}
}

func TestMetricBuilders(t *testing.T) {
	ts := time.Date(2026, 8, 29, 7, 30, 0, 0, time.UTC)
	m := NewMetric("U123", MetricSteps, 6500).
		WithRecordedAt(ts).
		WithDevice("FIT1").
		WithDay("2026-08-29")

	if !m.RecordedAt.Equal(ts) {
		t.Errorf("RecordedAt = %v, want %v", m.RecordedAt, ts)
	}
	if m.DeviceID != "FIT1" {
		t.Errorf("DeviceID = %s, want FIT1", m.DeviceID)
	}
	if m.Day != "2026-08-29" {
		t.Errorf("Day = %s, want 2026-08-29", m.Day)
	}
}
