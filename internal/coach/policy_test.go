// ABOUTME: Tests for plan generation, the completed-plan guard, and nudges.
// ABOUTME: Uses a stub recommender plus a temp sqlite store.
package coach

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/store"
)

const testUser = "U123"

type stubRecommender struct {
	intensity models.Intensity
	err       error
}

func (s *stubRecommender) NextBestIntensity(userID string) (models.Intensity, error) {
	return s.intensity, s.err
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := store.OpenSQLite(filepath.Join(t.TempDir(), "coach.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func testUserProfile() *models.User {
	return models.NewUser(testUser, "Demo User")
}

func TestGeneratePlanItems(t *testing.T) {
	st := newTestStore(t)

	plan, err := GeneratePlan(testUserProfile(), &stubRecommender{intensity: models.IntensityModerate}, st)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	if plan.Status != models.StatusProposed {
		t.Errorf("Status = %s, want Proposed", plan.Status)
	}
	if plan.Date != models.Today() {
		t.Errorf("Date = %s, want today", plan.Date)
	}
	if len(plan.Items) != 3 {
		t.Fatalf("len(Items) = %d, want 3", len(plan.Items))
	}

	wantTypes := []models.ItemType{models.ItemWorkout, models.ItemHabit, models.ItemRecovery}
	for i, want := range wantTypes {
		if plan.Items[i].Type != want {
			t.Errorf("Items[%d].Type = %s, want %s", i, plan.Items[i].Type, want)
		}
	}

	workout := plan.WorkoutItem()
	if workout.Intensity != models.IntensityModerate || workout.DurationMinutes != 35 {
		t.Errorf("workout = %s/%dm, want Moderate/35m", workout.Intensity, workout.DurationMinutes)
	}
}

func TestGeneratePlanPerTier(t *testing.T) {
	tests := []struct {
		intensity   models.Intensity
		wantMinutes int
	}{
		{models.IntensityLow, 20},
		{models.IntensityModerate, 35},
		{models.IntensityHigh, 45},
	}

	for _, tt := range tests {
		t.Run(string(tt.intensity), func(t *testing.T) {
			st := newTestStore(t)
			plan, err := GeneratePlan(testUserProfile(), &stubRecommender{intensity: tt.intensity}, st)
			if err != nil {
				t.Fatalf("GeneratePlan: %v", err)
			}
			workout := plan.WorkoutItem()
			if workout == nil || workout.DurationMinutes != tt.wantMinutes {
				t.Errorf("workout minutes = %v, want %d", workout, tt.wantMinutes)
			}
		})
	}
}

func TestGeneratePlanFallsBackToModerate(t *testing.T) {
	st := newTestStore(t)

	plan, err := GeneratePlan(testUserProfile(), &stubRecommender{err: errors.New("store down")}, st)
	if err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if plan.WorkoutItem().Intensity != models.IntensityModerate {
		t.Errorf("fallback intensity = %s, want Moderate", plan.WorkoutItem().Intensity)
	}
}

func TestGeneratePlanIdempotentWithinDay(t *testing.T) {
	st := newTestStore(t)
	rec := &stubRecommender{intensity: models.IntensityModerate}

	if _, err := GeneratePlan(testUserProfile(), rec, st); err != nil {
		t.Fatalf("first GeneratePlan: %v", err)
	}
	if _, err := GeneratePlan(testUserProfile(), rec, st); err != nil {
		t.Fatalf("second GeneratePlan: %v", err)
	}

	docs, err := st.FindMany(store.Plans, store.Filter{"user_id": testUser}, nil)
	if err != nil {
		t.Fatalf("find plans: %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("plan docs = %d, want 1", len(docs))
	}
}

func TestGeneratePlanKeepsCompletedPlan(t *testing.T) {
	st := newTestStore(t)
	rec := &stubRecommender{intensity: models.IntensityModerate}

	if _, err := GeneratePlan(testUserProfile(), rec, st); err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}
	if err := CompletePlan(st, testUser); err != nil {
		t.Fatalf("CompletePlan: %v", err)
	}

	// Regeneration must not reset a plan the user already finished.
	rec.intensity = models.IntensityHigh
	plan, err := GeneratePlan(testUserProfile(), rec, st)
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	if plan.Status != models.StatusCompleted {
		t.Errorf("Status = %s, want Completed preserved", plan.Status)
	}
	if plan.WorkoutItem().Intensity != models.IntensityModerate {
		t.Errorf("workout = %s, want original Moderate", plan.WorkoutItem().Intensity)
	}
}

func TestPlanLifecycle(t *testing.T) {
	st := newTestStore(t)

	if _, err := GeneratePlan(testUserProfile(), &stubRecommender{intensity: models.IntensityLow}, st); err != nil {
		t.Fatalf("GeneratePlan: %v", err)
	}

	if err := StartPlan(st, testUser); err != nil {
		t.Fatalf("StartPlan: %v", err)
	}
	plan, err := PlanForDate(st, testUser, models.Today())
	if err != nil {
		t.Fatalf("PlanForDate: %v", err)
	}
	if plan.Status != models.StatusInProgress {
		t.Errorf("Status = %s, want In Progress", plan.Status)
	}
	if plan.StartedAt == nil {
		t.Error("expected StartedAt set on start")
	}

	if err := CompletePlan(st, testUser); err != nil {
		t.Fatalf("CompletePlan: %v", err)
	}
	plan, err = PlanForDate(st, testUser, models.Today())
	if err != nil {
		t.Fatalf("PlanForDate: %v", err)
	}
	if plan.Status != models.StatusCompleted {
		t.Errorf("Status = %s, want Completed", plan.Status)
	}
}

func TestPlanForDateMissing(t *testing.T) {
	st := newTestStore(t)

	plan, err := PlanForDate(st, testUser, "2020-01-01")
	if err != nil {
		t.Fatalf("PlanForDate: %v", err)
	}
	if plan != nil {
		t.Errorf("plan = %+v, want nil for a day without one", plan)
	}
}

func seedSteps(t *testing.T, st store.Store, values []float64) {
	t.Helper()
	now := time.Now().UTC()
	var batch []*models.Metric
	for i, v := range values {
		batch = append(batch, models.NewMetric(testUser, models.MetricSteps, v).
			WithRecordedAt(now.Add(-time.Duration(len(values)-i)*time.Minute)))
	}
	if err := IngestMetrics(st, batch); err != nil {
		t.Fatalf("seed steps: %v", err)
	}
}

func TestGenerateNudgeTiers(t *testing.T) {
	tests := []struct {
		name  string
		steps []float64
		want  string
	}{
		{"no data", nil, "Quick win: 10-minute brisk walk to boost your step count."},
		{"low", []float64{250, 250}, "Quick win: 10-minute brisk walk to boost your step count."},
		{"middle", []float64{1000, 1000}, "Great start! Add another short walk to hit your daily goal."},
		{"high", []float64{3000, 3000}, "Nice pace! Add a 5-minute stretch break to stay loose."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newTestStore(t)
			seedSteps(t, st, tt.steps)

			rec, err := GenerateNudge(testUser, st)
			if err != nil {
				t.Fatalf("GenerateNudge: %v", err)
			}
			if rec.Message != tt.want {
				t.Errorf("Message = %q, want %q", rec.Message, tt.want)
			}
			if rec.Context != "nudge" {
				t.Errorf("Context = %q, want nudge", rec.Context)
			}
		})
	}
}

func TestGenerateNudgeUsesSixMostRecent(t *testing.T) {
	st := newTestStore(t)
	// An enormous old sample must fall outside the six-sample window.
	seedSteps(t, st, []float64{100000, 100, 100, 100, 100, 100, 100})

	rec, err := GenerateNudge(testUser, st)
	if err != nil {
		t.Fatalf("GenerateNudge: %v", err)
	}
	if rec.Message != "Quick win: 10-minute brisk walk to boost your step count." {
		t.Errorf("Message = %q, want the low-steps nudge", rec.Message)
	}
}

func TestGenerateNudgePersists(t *testing.T) {
	st := newTestStore(t)

	if _, err := GenerateNudge(testUser, st); err != nil {
		t.Fatalf("GenerateNudge: %v", err)
	}

	recs, err := RecentRecommendations(st, testUser, 0)
	if err != nil {
		t.Fatalf("RecentRecommendations: %v", err)
	}
	if len(recs) != 1 {
		t.Errorf("recommendations = %d, want 1", len(recs))
	}
}
