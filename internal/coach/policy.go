// ABOUTME: Plan generation policy and step-trend nudge generator.
// ABOUTME: Fixed templates per intensity tier; Moderate fallback if scoring fails.
package coach

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/store"
)

// IntensityRecommender is the slice of the behavior scorer plan generation
// depends on. Satisfied by *behavior.Scorer.
type IntensityRecommender interface {
	NextBestIntensity(userID string) (models.Intensity, error)
}

// Step-trend nudge thresholds. Tuned by hand, not computed.
const (
	LowStepThreshold      = 300
	ModerateStepThreshold = 2000

	recentStepSamples = 6
)

// planTemplates fixes the three items of a daily plan per intensity tier,
// always in the order Workout, Habit, Recovery.
var planTemplates = map[models.Intensity][]models.PlanItem{
	models.IntensityLow: {
		{Type: models.ItemWorkout, Intensity: models.IntensityLow, DurationMinutes: 20, Notes: "Light mobility + walk"},
		{Type: models.ItemHabit, Intensity: models.IntensityLow, DurationMinutes: 5, Notes: "Hydrate: +1L"},
		{Type: models.ItemRecovery, Intensity: models.IntensityLow, DurationMinutes: 10, Notes: "Stretch + sleep target 8h"},
	},
	models.IntensityModerate: {
		{Type: models.ItemWorkout, Intensity: models.IntensityModerate, DurationMinutes: 35, Notes: "Bodyweight circuit + brisk walk"},
		{Type: models.ItemHabit, Intensity: models.IntensityLow, DurationMinutes: 5, Notes: "2L water + protein target"},
		{Type: models.ItemRecovery, Intensity: models.IntensityLow, DurationMinutes: 10, Notes: "Cooldown + mindfulness 5m"},
	},
	models.IntensityHigh: {
		{Type: models.ItemWorkout, Intensity: models.IntensityHigh, DurationMinutes: 45, Notes: "Intervals + strength"},
		{Type: models.ItemHabit, Intensity: models.IntensityLow, DurationMinutes: 5, Notes: "Macros check + 2.5L water"},
		{Type: models.ItemRecovery, Intensity: models.IntensityLow, DurationMinutes: 15, Notes: "Mobility + sleep hygiene"},
	},
}

// GeneratePlan builds and persists today's plan for the user.
//
// Scoring failures never abort generation: any scorer error degrades to a
// Moderate plan with a logged warning, because coaching should survive a
// transient store hiccup. The upsert on (user, date) makes generation
// idempotent within a day, with one guard: a plan the user already marked
// Completed today is returned as-is rather than reset to Proposed.
func GeneratePlan(user *models.User, recommender IntensityRecommender, st store.Store) (*models.Plan, error) {
	intensity, err := recommender.NextBestIntensity(user.UserID)
	if err != nil || intensity == "" {
		log.Warn("intensity lookup failed, using fallback",
			"user", user.UserID, "fallback", models.IntensityModerate, "err", err)
		intensity = models.IntensityModerate
	}

	today := models.Today()

	existing, err := PlanForDate(st, user.UserID, today)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.Status == models.StatusCompleted {
		log.Info("plan already completed today, keeping it", "user", user.UserID, "date", today)
		return existing, nil
	}

	items, ok := planTemplates[intensity]
	if !ok {
		items = planTemplates[models.IntensityModerate]
	}
	plan := models.NewPlan(user.UserID, today, append([]models.PlanItem(nil), items...))

	set, err := store.Encode(plan)
	if err != nil {
		return nil, fmt.Errorf("encode plan: %w", err)
	}
	if err := st.Upsert(store.Plans, store.Filter{
		"user_id": user.UserID,
		"date":    today,
	}, set); err != nil {
		return nil, fmt.Errorf("store plan: %w", err)
	}

	log.Info("generated plan", "user", user.UserID, "date", today, "intensity", intensity)
	return plan, nil
}

// GenerateNudge derives a motivational message from the user's recent step
// trend and persists it. The six most recent Steps samples are averaged
// regardless of day boundary, a short-term trend signal, not a daily total.
// Store failures propagate; there is no fallback message.
func GenerateNudge(userID string, st store.Store) (*models.Recommendation, error) {
	docs, err := st.FindMany(store.SensorData, store.Filter{
		"user_id":     userID,
		"metric_type": string(models.MetricSteps),
	}, &store.FindOptions{
		Sort:  &store.Sort{Field: "recorded_at", Desc: true},
		Limit: recentStepSamples,
	})
	if err != nil {
		return nil, fmt.Errorf("recent steps: %w", err)
	}

	sum, count := 0.0, 0
	for _, doc := range docs {
		if v, ok := doc["value"].(float64); ok {
			sum += v
			count++
		}
	}
	avg := 0
	if count > 0 {
		avg = int(sum / float64(count))
	}

	var msg string
	switch {
	case avg < LowStepThreshold:
		msg = "Quick win: 10-minute brisk walk to boost your step count."
	case avg < ModerateStepThreshold:
		msg = "Great start! Add another short walk to hit your daily goal."
	default:
		msg = "Nice pace! Add a 5-minute stretch break to stay loose."
	}

	rec := models.NewRecommendation(userID, msg, "nudge")
	doc, err := store.Encode(rec)
	if err != nil {
		return nil, fmt.Errorf("encode recommendation: %w", err)
	}
	if err := st.InsertOne(store.Recommendations, doc); err != nil {
		return nil, fmt.Errorf("store recommendation: %w", err)
	}

	log.Info("nudge issued", "user", userID, "avg_steps", avg)
	return rec, nil
}
