// ABOUTME: MCP tool implementations for plans, nudges, and sensor metrics.
// ABOUTME: Tools default to the configured account unless user_id is passed.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/coach/internal/coach"
	"github.com/harperreed/coach/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// get_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_plan",
		Description: "Get today's workout plan, generating one if none exists yet",
	}, s.handleGetPlan)

	// generate_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_plan",
		Description: "Regenerate today's plan from current adherence and readiness",
	}, s.handleGeneratePlan)

	// start_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "start_plan",
		Description: "Mark today's plan as In Progress",
	}, s.handleStartPlan)

	// complete_plan
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "complete_plan",
		Description: "Mark today's plan as Completed",
	}, s.handleCompletePlan)

	// generate_nudge
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "generate_nudge",
		Description: "Issue a motivational nudge from the recent step trend",
	}, s.handleGenerateNudge)

	// add_metric
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_metric",
		Description: "Record a sensor sample (HR, SleepScore, Weight, HRV, Steps)",
	}, s.handleAddMetric)

	// set_steps
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "set_steps",
		Description: "Overwrite today's step total (one record per day)",
	}, s.handleSetSteps)

	// list_metrics
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_metrics",
		Description: "List recent sensor samples, most recent first",
	}, s.handleListMetrics)

	// list_recommendations
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_recommendations",
		Description: "List recent coaching nudges, most recent first",
	}, s.handleListRecommendations)

	// get_scores
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_scores",
		Description: "Get adherence, readiness, and the next recommended intensity",
	}, s.handleGetScores)
}

// Tool input/output types

type userInput struct {
	UserID string `json:"user_id,omitempty" jsonschema:"Account to act on (defaults to the configured user)"`
}

type planOutput struct {
	Date    string            `json:"date"`
	Status  string            `json:"status"`
	Items   []models.PlanItem `json:"items"`
	Message string            `json:"message"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type nudgeOutput struct {
	Message string `json:"message"`
	Context string `json:"context"`
}

type addMetricInput struct {
	UserID     string  `json:"user_id,omitempty" jsonschema:"Account to act on (defaults to the configured user)"`
	MetricType string  `json:"metric_type" jsonschema:"Type of metric (HR, Steps, SleepScore, Weight, HRV)"`
	Value      float64 `json:"value" jsonschema:"The sample value"`
	RecordedAt string  `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
}

type setStepsInput struct {
	UserID string `json:"user_id,omitempty" jsonschema:"Account to act on (defaults to the configured user)"`
	Value  int    `json:"value" jsonschema:"Today's step total"`
}

type listInput struct {
	UserID string `json:"user_id,omitempty" jsonschema:"Account to act on (defaults to the configured user)"`
	Limit  int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type scoresOutput struct {
	Adherence float64 `json:"adherence"`
	Readiness float64 `json:"readiness"`
	Intensity string  `json:"next_intensity"`
}

// Tool handlers

func (s *Server) handleGetPlan(ctx context.Context, req *mcp.CallToolRequest, input userInput) (*mcp.CallToolResult, planOutput, error) {
	userID := s.user(input.UserID)

	plan, err := coach.PlanForDate(s.st, userID, models.Today())
	if err != nil {
		return nil, planOutput{}, err
	}
	if plan == nil {
		user, err := coach.EnsureUser(s.st, userID, s.defaultName)
		if err != nil {
			return nil, planOutput{}, err
		}
		plan, err = coach.GeneratePlan(user, s.scorer, s.st)
		if err != nil {
			return nil, planOutput{}, err
		}
	}

	return nil, planOutput{
		Date:    plan.Date,
		Status:  string(plan.Status),
		Items:   plan.Items,
		Message: fmt.Sprintf("Plan for %s (%s)", plan.Date, plan.Status),
	}, nil
}

func (s *Server) handleGeneratePlan(ctx context.Context, req *mcp.CallToolRequest, input userInput) (*mcp.CallToolResult, planOutput, error) {
	userID := s.user(input.UserID)

	user, err := coach.EnsureUser(s.st, userID, s.defaultName)
	if err != nil {
		return nil, planOutput{}, err
	}
	plan, err := coach.GeneratePlan(user, s.scorer, s.st)
	if err != nil {
		return nil, planOutput{}, err
	}

	workout := plan.WorkoutItem()
	intensity := ""
	if workout != nil {
		intensity = string(workout.Intensity)
	}
	return nil, planOutput{
		Date:    plan.Date,
		Status:  string(plan.Status),
		Items:   plan.Items,
		Message: fmt.Sprintf("Generated %s plan for %s", intensity, plan.Date),
	}, nil
}

func (s *Server) handleStartPlan(ctx context.Context, req *mcp.CallToolRequest, input userInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := coach.StartPlan(s.st, s.user(input.UserID)); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: "Plan started."}, nil
}

func (s *Server) handleCompletePlan(ctx context.Context, req *mcp.CallToolRequest, input userInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := coach.CompletePlan(s.st, s.user(input.UserID)); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{Message: "Plan completed. Nice work."}, nil
}

func (s *Server) handleGenerateNudge(ctx context.Context, req *mcp.CallToolRequest, input userInput) (*mcp.CallToolResult, nudgeOutput, error) {
	rec, err := coach.GenerateNudge(s.user(input.UserID), s.st)
	if err != nil {
		return nil, nudgeOutput{}, err
	}
	return nil, nudgeOutput{Message: rec.Message, Context: rec.Context}, nil
}

func (s *Server) handleAddMetric(ctx context.Context, req *mcp.CallToolRequest, input addMetricInput) (*mcp.CallToolResult, simpleOutput, error) {
	if !models.IsValidMetricType(input.MetricType) {
		return nil, simpleOutput{}, fmt.Errorf("unknown metric type: %s", input.MetricType)
	}

	m := models.NewMetric(s.user(input.UserID), models.MetricType(input.MetricType), input.Value)

	if input.RecordedAt != "" {
		t, err := time.Parse(time.RFC3339, input.RecordedAt)
		if err != nil {
			t, err = time.Parse("2006-01-02 15:04", input.RecordedAt)
		}
		if err == nil {
			m.WithRecordedAt(t)
		}
	}

	if err := coach.IngestMetrics(s.st, []*models.Metric{m}); err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Added %s: %.2f %s", input.MetricType, input.Value, models.MetricUnits[m.MetricType]),
	}, nil
}

func (s *Server) handleSetSteps(ctx context.Context, req *mcp.CallToolRequest, input setStepsInput) (*mcp.CallToolResult, simpleOutput, error) {
	m, err := coach.SetDailySteps(s.st, s.user(input.UserID), input.Value)
	if err != nil {
		return nil, simpleOutput{}, err
	}
	return nil, simpleOutput{
		Message: fmt.Sprintf("Steps for %s set to %d", m.Day, input.Value),
	}, nil
}

func (s *Server) handleListMetrics(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	metrics, err := coach.RecentMetrics(s.st, s.user(input.UserID), input.Limit)
	if err != nil {
		return nil, nil, err
	}
	if len(metrics) == 0 {
		return nil, map[string]interface{}{"message": "No metrics found."}, nil
	}
	return nil, metrics, nil
}

func (s *Server) handleListRecommendations(ctx context.Context, req *mcp.CallToolRequest, input listInput) (*mcp.CallToolResult, any, error) {
	if input.Limit <= 0 {
		input.Limit = 20
	}

	recs, err := coach.RecentRecommendations(s.st, s.user(input.UserID), input.Limit)
	if err != nil {
		return nil, nil, err
	}
	if len(recs) == 0 {
		return nil, map[string]interface{}{"message": "No recommendations found."}, nil
	}
	return nil, recs, nil
}

func (s *Server) handleGetScores(ctx context.Context, req *mcp.CallToolRequest, input userInput) (*mcp.CallToolResult, scoresOutput, error) {
	userID := s.user(input.UserID)

	adherence, err := s.scorer.AdherenceScore(userID, 0)
	if err != nil {
		return nil, scoresOutput{}, err
	}
	readiness, err := s.scorer.ReadinessScore(userID)
	if err != nil {
		return nil, scoresOutput{}, err
	}
	intensity, err := s.scorer.NextBestIntensity(userID)
	if err != nil {
		return nil, scoresOutput{}, err
	}

	return nil, scoresOutput{
		Adherence: adherence,
		Readiness: readiness,
		Intensity: string(intensity),
	}, nil
}
