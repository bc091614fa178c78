// ABOUTME: Plan status transitions: start and complete today's plan.
// ABOUTME: No state machine; any status is directly settable, as in the data model.
package coach

import (
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/store"
)

// PlanForDate returns the user's plan for the given day, or nil if none exists.
func PlanForDate(st store.Store, userID, date string) (*models.Plan, error) {
	doc, err := st.FindOne(store.Plans, store.Filter{
		"user_id": userID,
		"date":    date,
	}, nil)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find plan: %w", err)
	}

	var plan models.Plan
	if err := store.Decode(doc, &plan); err != nil {
		return nil, fmt.Errorf("find plan: %w", err)
	}
	return &plan, nil
}

// StartPlan marks today's plan In Progress and stamps started_at.
func StartPlan(st store.Store, userID string) error {
	now := time.Now().UTC()
	err := st.Upsert(store.Plans, store.Filter{
		"user_id": userID,
		"date":    models.Today(),
	}, store.Doc{
		"status":     string(models.StatusInProgress),
		"started_at": now.Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("start plan: %w", err)
	}
	return nil
}

// CompletePlan marks today's plan Completed.
func CompletePlan(st store.Store, userID string) error {
	err := st.Upsert(store.Plans, store.Filter{
		"user_id": userID,
		"date":    models.Today(),
	}, store.Doc{
		"status": string(models.StatusCompleted),
	})
	if err != nil {
		return fmt.Errorf("complete plan: %w", err)
	}
	return nil
}
