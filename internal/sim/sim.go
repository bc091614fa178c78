// ABOUTME: Demo sensor-data seeder for trying out scoring without a device.
// ABOUTME: Emits plausible HR, Steps, and occasional SleepScore samples.
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/harperreed/coach/internal/coach"
	"github.com/harperreed/coach/internal/models"
	"github.com/harperreed/coach/internal/store"
)

const simDeviceID = "SIM1"

// Summary reports what one simulation run wrote.
type Summary struct {
	Samples int
	ByType  map[models.MetricType]int
}

// Run writes rounds of simulated sensor samples through the store.
// Each round carries one HR and one Steps sample; roughly 30% of rounds
// also carry a SleepScore. Timestamps are spread backwards from now at
// interval spacing so windowed scoring sees a plausible history.
func Run(st store.Store, userID string, rounds int, interval time.Duration, rng *rand.Rand) (*Summary, error) {
	if rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", rounds)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	summary := &Summary{ByType: make(map[models.MetricType]int)}
	now := time.Now().UTC()

	var batch []*models.Metric
	for i := 0; i < rounds; i++ {
		ts := now.Add(-time.Duration(rounds-1-i) * interval)

		batch = append(batch,
			models.NewMetric(userID, models.MetricHR, float64(70+rng.Intn(26))).
				WithRecordedAt(ts).WithDevice(simDeviceID),
			models.NewMetric(userID, models.MetricSteps, float64(100+rng.Intn(701))).
				WithRecordedAt(ts).WithDevice(simDeviceID),
		)
		summary.ByType[models.MetricHR]++
		summary.ByType[models.MetricSteps]++

		if rng.Float64() < 0.3 {
			batch = append(batch,
				models.NewMetric(userID, models.MetricSleepScore, float64(60+rng.Intn(26))).
					WithRecordedAt(ts).WithDevice(simDeviceID))
			summary.ByType[models.MetricSleepScore]++
		}
	}

	if err := coach.IngestMetrics(st, batch); err != nil {
		return nil, fmt.Errorf("seed samples: %w", err)
	}
	summary.Samples = len(batch)
	return summary, nil
}
