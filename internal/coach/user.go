// ABOUTME: User bootstrap, metric ingest, and recent-history reads.
// ABOUTME: Users are upserted lazily on first touch; most lists read newest-first.
package coach

import (
	"errors"
	"fmt"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/store"
)

const (
	defaultRecommendationLimit = 20
	defaultMetricListLimit     = 50
)

// EnsureUser returns the stored user, creating a default profile on first
// touch. Idempotent.
func EnsureUser(st store.Store, userID, name string) (*models.User, error) {
	doc, err := st.FindOne(store.Users, store.Filter{"user_id": userID}, nil)
	if errors.Is(err, store.ErrNotFound) {
		user := models.NewUser(userID, name)
		enc, err := store.Encode(user)
		if err != nil {
			return nil, fmt.Errorf("encode user: %w", err)
		}
		if err := st.InsertOne(store.Users, enc); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		return user, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	var user models.User
	if err := store.Decode(doc, &user); err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}

// IngestMetrics appends a batch of sensor samples.
func IngestMetrics(st store.Store, metrics []*models.Metric) error {
	docs := make([]store.Doc, 0, len(metrics))
	for _, m := range metrics {
		doc, err := store.Encode(m)
		if err != nil {
			return fmt.Errorf("encode metric: %w", err)
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil
	}
	if err := st.InsertMany(store.SensorData, docs); err != nil {
		return fmt.Errorf("ingest metrics: %w", err)
	}
	return nil
}

// SetDailySteps overwrites the user's step total for today. One Steps record
// per (user, day); repeated calls update in place.
func SetDailySteps(st store.Store, userID string, steps int) (*models.Metric, error) {
	today := models.Today()
	m := models.NewMetric(userID, models.MetricSteps, float64(steps)).WithDay(today)

	set, err := store.Encode(m)
	if err != nil {
		return nil, fmt.Errorf("encode steps: %w", err)
	}
	if err := st.Upsert(store.SensorData, store.Filter{
		"user_id":     userID,
		"metric_type": string(models.MetricSteps),
		"day":         today,
	}, set); err != nil {
		return nil, fmt.Errorf("set daily steps: %w", err)
	}
	return m, nil
}

// RecentMetrics returns the user's newest samples, most recent first.
func RecentMetrics(st store.Store, userID string, limit int) ([]models.Metric, error) {
	if limit <= 0 {
		limit = defaultMetricListLimit
	}
	docs, err := st.FindMany(store.SensorData, store.Filter{"user_id": userID},
		&store.FindOptions{
			Sort:  &store.Sort{Field: "recorded_at", Desc: true},
			Limit: limit,
		})
	if err != nil {
		return nil, fmt.Errorf("list metrics: %w", err)
	}
	return store.DecodeAll[models.Metric](docs)
}

// RecentRecommendations returns the user's newest nudges, most recent first.
func RecentRecommendations(st store.Store, userID string, limit int) ([]models.Recommendation, error) {
	if limit <= 0 {
		limit = defaultRecommendationLimit
	}
	docs, err := st.FindMany(store.Recommendations, store.Filter{"user_id": userID},
		&store.FindOptions{
			Sort:  &store.Sort{Field: "created_at", Desc: true},
			Limit: limit,
		})
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	return store.DecodeAll[models.Recommendation](docs)
}

// RecordFeedback appends a session feedback entry.
func RecordFeedback(st store.Store, fb *models.Feedback) error {
	doc, err := store.Encode(fb)
	if err != nil {
		return fmt.Errorf("encode feedback: %w", err)
	}
	if err := st.InsertOne(store.Feedback, doc); err != nil {
		return fmt.Errorf("record feedback: %w", err)
	}
	return nil
}
