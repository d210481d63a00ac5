package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tempo/internal/application"
	"tempo/internal/application/commands"
	"tempo/internal/domain"
)

// RegisterReadTools adds all read-only goal tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, rec *application.Reconciler) {
	s.AddTool(listGoalsTool(), listGoalsHandler(rec))
	s.AddTool(showGoalTool(), showGoalHandler(rec))
	s.AddTool(projectionTool(), projectionHandler(rec))
	s.AddTool(scheduleTool(), scheduleHandler(rec))
}

// --- list_goals ---

func listGoalsTool() mcp.Tool {
	return mcp.NewTool("list_goals",
		mcp.WithDescription("List goals with their progress. Optionally filter by time horizon (weekly, quarterly, annual, lifetime, ongoing)."),
		mcp.WithString("horizon",
			mcp.Description("Time horizon filter. Omit to list all goals."),
		),
	)
}

func listGoalsHandler(rec *application.Reconciler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		horizon := domain.TimeHorizon(req.GetString("horizon", ""))

		cmd := commands.NewListGoalsCommand(rec, horizon)
		goals, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return formatGoals(goals)
	}
}

// --- show_goal ---

func showGoalTool() mcp.Tool {
	return mcp.NewTool("show_goal",
		mcp.WithDescription("Show one goal in full detail: tracking state, history, completed dates, linkage."),
		mcp.WithString("goal_id",
			mcp.Description("Goal id"),
			mcp.Required(),
		),
	)
}

func showGoalHandler(rec *application.Reconciler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		goalID := req.GetString("goal_id", "")

		cmd := commands.NewShowGoalCommand(rec, goalID)
		goal, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(formatGoalDetail(goal)), nil
	}
}

// --- projection ---

func projectionTool() mcp.Tool {
	return mcp.NewTool("projection",
		mcp.WithDescription("Compute pacing projections for a goal: year-to-date extrapolation, lifetime completion estimate, good-enough threshold status."),
		mcp.WithString("goal_id",
			mcp.Description("Goal id"),
			mcp.Required(),
		),
		mcp.WithString("period",
			mcp.Description("Quarter key (e.g. \"Q2 2024\") for good-enough status. Defaults to the current quarter."),
		),
	)
}

func projectionHandler(rec *application.Reconciler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		goalID := req.GetString("goal_id", "")

		cmd := commands.NewProjectionCommand(rec, goalID, time.Now())
		cmd.Period = req.GetString("period", "")
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(formatProjection(result)), nil
	}
}

// --- weekly_schedules ---

func scheduleTool() mcp.Tool {
	return mcp.NewTool("weekly_schedules",
		mcp.WithDescription("List stored weekly schedules (planned days per goal per week)."),
	)
}

func scheduleHandler(rec *application.Reconciler) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		schedules, err := rec.WeeklySchedules()
		if err != nil {
			return toolError(err)
		}

		if len(schedules) == 0 {
			return mcp.NewToolResultText("No weekly schedules stored."), nil
		}

		var sb strings.Builder
		for _, ws := range schedules {
			fmt.Fprintf(&sb, "week of %s:\n", ws.WeekStartDate)
			for goalID, days := range ws.ScheduledDays {
				fmt.Fprintf(&sb, "  %s  %v\n", goalID, days)
			}
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func formatGoals(goals []*domain.Goal) (*mcp.CallToolResult, error) {
	if len(goals) == 0 {
		return mcp.NewToolResultText("No goals."), nil
	}
	var sb strings.Builder
	for _, g := range goals {
		sb.WriteString(formatGoalLine(g))
		sb.WriteByte('\n')
	}
	return mcp.NewToolResultText(sb.String()), nil
}

func formatGoalLine(g *domain.Goal) string {
	line := fmt.Sprintf("%s  %s [%s/%s]", g.ID, g.Title, g.TimeHorizon, g.TrackingType)
	if g.TrackingType == domain.TrackingCount && g.Tracking.Target != nil {
		line += fmt.Sprintf("  %g/%g %s", g.Tracking.Progress, g.Tracking.Target.Value, g.Tracking.Target.Unit)
	} else if g.TrackingType == domain.TrackingBoolean {
		line += fmt.Sprintf("  %d days done", len(g.Tracking.CompletedDates))
	}
	return line
}

func formatGoalDetail(g *domain.Goal) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", formatGoalLine(g))
	fmt.Fprintf(&sb, "status: %s  category: %s\n", g.Status, g.Category)
	if g.ParentGoalID != "" {
		fmt.Fprintf(&sb, "parent: %s\n", g.ParentGoalID)
	}
	if g.IsGoodEnough() {
		fmt.Fprintf(&sb, "threshold: %s %g %s per %s\n", g.Relationship, g.Threshold, g.Unit, g.Timeframe)
		for _, e := range domain.HistoryFromQuarterlyValues(g.Tracking.QuarterlyValues) {
			fmt.Fprintf(&sb, "  %s  %g\n", e.Date, e.Value)
		}
	} else {
		for _, e := range g.Tracking.CountHistory {
			fmt.Fprintf(&sb, "  %s  %g\n", e.Date, e.Value)
		}
	}
	if len(g.Tracking.CompletedDates) > 0 {
		fmt.Fprintf(&sb, "completed: %s\n", strings.Join(g.Tracking.CompletedDates, ", "))
	}
	return sb.String()
}

func formatProjection(r *commands.ProjectionResult) string {
	var sb strings.Builder
	ytd := r.YearToDate
	fmt.Fprintf(&sb, "current: %g %s (%.1f%% of target)\n", ytd.CurrentValue, ytd.Unit, ytd.PercentComplete)
	fmt.Fprintf(&sb, "projected year-end: %g %s (%.1f%% of target %g)\n", ytd.ProjectedValue, ytd.Unit, ytd.ProjectedPercent, ytd.Target)

	if r.Lifetime != nil {
		switch r.Lifetime.Outcome {
		case domain.LifetimeComplete:
			fmt.Fprintf(&sb, "lifetime: already complete (%g of %g)\n", r.Lifetime.CurrentTotal, r.Lifetime.Target)
		case domain.LifetimeInsufficientData:
			sb.WriteString("lifetime: insufficient data to project\n")
		default:
			fmt.Fprintf(&sb, "lifetime: ~%d years to completion (avg %g/year, done ~%d)\n",
				r.Lifetime.YearsToCompletion, r.Lifetime.AvgPerYear, r.Lifetime.ProjectedCompletionYear)
		}
	}

	if r.GoodEnough != nil {
		fmt.Fprintf(&sb, "good-enough status: %s\n", r.GoodEnough)
	}
	return sb.String()
}
