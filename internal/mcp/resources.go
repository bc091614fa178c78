// ABOUTME: MCP resource implementations for the coaching core.
// ABOUTME: Provides coach://plan/today, coach://metrics/recent, coach://recommendations/recent.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harperreed/coach/internal/coach"
	"github.com/harperreed/coach/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// coach://plan/today - today's plan for the configured account
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "coach://plan/today",
		Name:        "Today's Plan",
		Description: "The workout plan proposed for today",
		MIMEType:    "application/json",
	}, s.handlePlanResource)

	// coach://metrics/recent - last 20 sensor samples
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "coach://metrics/recent",
		Name:        "Recent Sensor Samples",
		Description: "Last 20 sensor samples for the configured account",
		MIMEType:    "application/json",
	}, s.handleMetricsResource)

	// coach://recommendations/recent - last 20 nudges
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "coach://recommendations/recent",
		Name:        "Recent Nudges",
		Description: "Last 20 coaching nudges for the configured account",
		MIMEType:    "application/json",
	}, s.handleRecommendationsResource)
}

// Resource handlers

func (s *Server) handlePlanResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	plan, err := coach.PlanForDate(s.st, s.defaultUser, models.Today())
	if err != nil {
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	var result any = plan
	if plan == nil {
		result = map[string]interface{}{"message": "No plan generated yet today."}
	}
	return jsonResource("coach://plan/today", result)
}

func (s *Server) handleMetricsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	metrics, err := coach.RecentMetrics(s.st, s.defaultUser, 20)
	if err != nil {
		return nil, fmt.Errorf("failed to list metrics: %w", err)
	}
	return jsonResource("coach://metrics/recent", metrics)
}

func (s *Server) handleRecommendationsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	recs, err := coach.RecentRecommendations(s.st, s.defaultUser, 20)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	return jsonResource("coach://recommendations/recent", recs)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
