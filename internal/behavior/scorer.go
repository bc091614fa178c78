// ABOUTME: Behavior scorer adapting workout intensity to recent signals.
// ABOUTME: Adherence from plan completion, readiness from HR and sleep trends.
package behavior

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/store"
)

// Baselines used when a user has no history in the lookback window.
const (
	DefaultHRBaseline    = 75.0 // bpm
	DefaultSleepBaseline = 70.0 // sleep score
)

const (
	adherenceWindowDays = 7

	baselineWindow = 14 * 24 * time.Hour
	recentHRWindow = 24 * time.Hour
	sleepWindow    = 7 * 24 * time.Hour

	// Only the newest sleep scores count toward the recent average so a
	// week of stale data cannot dilute last night's signal.
	recentSleepSamples = 3

	metricFetchLimit = 500
)

// Scorer computes adherence, readiness, and the next best workout intensity
// for a user. It holds no state beyond the store handle and is safe to use
// concurrently across users.
type Scorer struct {
	st store.Store
}

// NewScorer creates a Scorer reading from the given store.
func NewScorer(st store.Store) *Scorer {
	return &Scorer{st: st}
}

// AdherenceScore returns the fraction of the user's recent plans marked
// Completed, in [0,1] rounded to 2 decimals. windowDays <= 0 means the
// default 7-day window. With no plans in the window it returns the neutral
// 0.5 so new users don't collapse straight to Low intensity.
func (s *Scorer) AdherenceScore(userID string, windowDays int) (float64, error) {
	if windowDays <= 0 {
		windowDays = adherenceWindowDays
	}
	since := time.Now().UTC().AddDate(0, 0, -windowDays).Format("2006-01-02")

	docs, err := s.st.FindMany(store.Plans, store.Filter{
		"user_id": userID,
		"date":    store.Range{Gte: since},
	}, nil)
	if err != nil {
		return 0, fmt.Errorf("recent plans: %w", err)
	}
	if len(docs) == 0 {
		return 0.5, nil
	}

	completed := 0
	for _, doc := range docs {
		if doc["status"] == string(models.StatusCompleted) {
			completed++
		}
	}
	return round2(float64(completed) / float64(len(docs))), nil
}

// ReadinessScore returns a physiological recovery score in [0.1, 1.0].
//
// A 14-day baseline is compared against recent samples: heart rate over the
// last 24 hours (lower than baseline is better, ±20 bpm saturates) and the
// latest sleep scores. Sleep carries the larger weight as the more stable
// signal.
func (s *Scorer) ReadinessScore(userID string) (float64, error) {
	hrBaseVals, err := s.metricValues(userID, models.MetricHR, baselineWindow, metricFetchLimit)
	if err != nil {
		return 0, err
	}
	sleepBaseVals, err := s.metricValues(userID, models.MetricSleepScore, baselineWindow, metricFetchLimit)
	if err != nil {
		return 0, err
	}

	hrBaseline := meanOr(hrBaseVals, DefaultHRBaseline)
	sleepBaseline := meanOr(sleepBaseVals, DefaultSleepBaseline)

	hrRecent, err := s.metricValues(userID, models.MetricHR, recentHRWindow, metricFetchLimit)
	if err != nil {
		return 0, err
	}
	sleepRecent, err := s.metricValues(userID, models.MetricSleepScore, sleepWindow, recentSleepSamples)
	if err != nil {
		return 0, err
	}

	hrAvg := meanOr(hrRecent, hrBaseline)
	sleepAvg := meanOr(sleepRecent, sleepBaseline)

	// HR down is better, sleep up is better.
	hrScore := clamp(0.5 + (hrBaseline-hrAvg)/20.0)
	sleepScore := clamp(sleepAvg / 100.0)

	return round2(0.4*hrScore + 0.6*sleepScore), nil
}

// NextBestIntensity suggests the intensity tier for the user's next workout.
//
// High requires both strong readiness and solid adherence; adherence alone
// never pushes to High. Hysteresis then clamps any two-step jump from the
// last plan's workout intensity down to Moderate, so recommendations cannot
// oscillate between Low and High in a single cycle.
func (s *Scorer) NextBestIntensity(userID string) (models.Intensity, error) {
	readiness, err := s.ReadinessScore(userID)
	if err != nil {
		return "", err
	}
	adherence, err := s.AdherenceScore(userID, 0)
	if err != nil {
		return "", err
	}

	target := models.IntensityLow
	switch {
	case readiness > 0.8 && adherence >= 0.6:
		target = models.IntensityHigh
	case readiness >= 0.6:
		target = models.IntensityModerate
	}

	lastDoc, err := s.st.FindOne(store.Plans, store.Filter{"user_id": userID},
		&store.FindOptions{Sort: &store.Sort{Field: "date", Desc: true}})
	if errors.Is(err, store.ErrNotFound) {
		return target, nil // no prior plan: no hysteresis
	}
	if err != nil {
		return "", fmt.Errorf("last plan: %w", err)
	}

	var last models.Plan
	if err := store.Decode(lastDoc, &last); err != nil {
		return "", fmt.Errorf("last plan: %w", err)
	}

	workout := last.WorkoutItem()
	if workout == nil || workout.Intensity == "" {
		return target, nil
	}
	if abs(target.Rank()-workout.Intensity.Rank()) > 1 {
		target = models.IntensityModerate
	}
	return target, nil
}

// metricValues fetches numeric metric values within the window, newest
// first. Values that fail numeric coercion are dropped, not zeroed.
func (s *Scorer) metricValues(userID string, metric models.MetricType, window time.Duration, limit int) ([]float64, error) {
	since := time.Now().UTC().Add(-window)

	docs, err := s.st.FindMany(store.SensorData, store.Filter{
		"user_id":     userID,
		"metric_type": string(metric),
		"recorded_at": store.Range{Gte: since},
	}, &store.FindOptions{
		Sort:  &store.Sort{Field: "recorded_at", Desc: true},
		Limit: limit,
	})
	if err != nil {
		return nil, fmt.Errorf("fetch %s samples: %w", metric, err)
	}

	vals := make([]float64, 0, len(docs))
	for _, doc := range docs {
		if v, ok := coerceNumeric(doc["value"]); ok {
			vals = append(vals, v)
		}
	}
	return vals, nil
}

func coerceNumeric(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func meanOr(vals []float64, fallback float64) float64 {
	if len(vals) == 0 {
		return fallback
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func clamp(x float64) float64 {
	return math.Max(0.1, math.Min(1.0, x))
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
