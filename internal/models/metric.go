// ABOUTME: Metric sample model and MetricType enum for sensor data.
// ABOUTME: Samples are append-only except daily Steps totals, which upsert per day.
package models

import (
	"time"
)

// MetricType represents the type of sensor metric being recorded.
type MetricType string

const (
	MetricHR         MetricType = "HR"
	MetricSteps      MetricType = "Steps"
	MetricSleepScore MetricType = "SleepScore"
	MetricWeight     MetricType = "Weight"
	MetricHRV        MetricType = "HRV"
)

// MetricUnits maps metric types to their display units.
var MetricUnits = map[MetricType]string{
	MetricHR:         "bpm",
	MetricSteps:      "steps",
	MetricSleepScore: "score",
	MetricWeight:     "kg",
	MetricHRV:        "ms",
}

// AllMetricTypes returns all valid metric types.
var AllMetricTypes = []MetricType{
	MetricHR, MetricSteps, MetricSleepScore, MetricWeight, MetricHRV,
}

// IsValidMetricType checks if a string is a valid metric type.
func IsValidMetricType(s string) bool {
	for _, mt := range AllMetricTypes {
		if string(mt) == s {
			return true
		}
	}
	return false
}

// Metric represents a single sensor sample for a user.
//
// Value is any rather than float64: samples arrive from devices and imports
// that occasionally send numeric strings, and the scorer drops whatever it
// cannot coerce instead of failing the whole window.
type Metric struct {
	UserID     string     `json:"user_id"`
	DeviceID   string     `json:"device_id,omitempty"`
	MetricType MetricType `json:"metric_type"`
	Value      any        `json:"value"`
	RecordedAt time.Time  `json:"recorded_at"`

	// Day is a "YYYY-MM-DD" key set only on daily-total samples (Steps),
	// where it is the upsert key alongside user and type.
	Day string `json:"day,omitempty"`
}

// NewMetric creates a new Metric recorded now.
func NewMetric(userID string, metricType MetricType, value float64) *Metric {
	return &Metric{
		UserID:     userID,
		MetricType: metricType,
		Value:      value,
		RecordedAt: time.Now().UTC(),
	}
}

// WithRecordedAt sets a custom sample timestamp.
func (m *Metric) WithRecordedAt(t time.Time) *Metric {
	m.RecordedAt = t
	return m
}

// WithDevice sets the originating device ID.
func (m *Metric) WithDevice(deviceID string) *Metric {
	m.DeviceID = deviceID
	return m
}

// WithDay tags the sample with a calendar-day key.
func (m *Metric) WithDay(day string) *Metric {
	m.Day = day
	return m
}
