package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tempo/internal/application"
	"tempo/internal/application/commands"
	"tempo/internal/domain"
)

// RegisterWriteTools adds all mutating goal tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, rec *application.Reconciler) {
	s.AddTool(recordTool(), recordHandler(rec))
	s.AddTool(toggleTool(), toggleHandler(rec))
	s.AddTool(quarterlyTool(), quarterlyHandler(rec))
	s.AddTool(createGoalTool(), createGoalHandler(rec))
	s.AddTool(deleteGoalTool(), deleteGoalHandler(rec))
	s.AddTool(recalculateTool(), recalculateHandler(rec))
}

// --- record_progress ---

func recordTool() mcp.Tool {
	return mcp.NewTool("record_progress",
		mcp.WithDescription("Record a numeric amount for a count goal on a date. An amount of 0 removes the day's entry. The ledger is synced to linked goals."),
		mcp.WithString("goal_id",
			mcp.Description("Goal id"),
			mcp.Required(),
		),
		mcp.WithNumber("amount",
			mcp.Description("Amount for the day; replaces any existing entry for the date"),
			mcp.Required(),
		),
		mcp.WithString("date",
			mcp.Description("ISO date (YYYY-MM-DD)"),
			mcp.Required(),
		),
	)
}

func recordHandler(rec *application.Reconciler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		goalID := req.GetString("goal_id", "")
		amount := req.GetFloat("amount", 0)
		date := req.GetString("date", "")

		cmd := commands.NewRecordProgressCommand(rec, goalID, amount, date)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- toggle_day ---

func toggleTool() mcp.Tool {
	return mcp.NewTool("toggle_day",
		mcp.WithDescription("Toggle a date's done/not-done state on a boolean goal."),
		mcp.WithString("goal_id",
			mcp.Description("Goal id"),
			mcp.Required(),
		),
		mcp.WithString("date",
			mcp.Description("ISO date (YYYY-MM-DD)"),
			mcp.Required(),
		),
	)
}

func toggleHandler(rec *application.Reconciler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewToggleCompletionCommand(rec, req.GetString("goal_id", ""), req.GetString("date", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- set_quarterly_value ---

func quarterlyTool() mcp.Tool {
	return mcp.NewTool("set_quarterly_value",
		mcp.WithDescription("Set the value for one quarter on a good-enough goal (key format \"Q1 2024\")."),
		mcp.WithString("goal_id",
			mcp.Description("Goal id"),
			mcp.Required(),
		),
		mcp.WithString("quarter",
			mcp.Description("Quarter key, e.g. \"Q2 2024\""),
			mcp.Required(),
		),
		mcp.WithNumber("value",
			mcp.Description("Value for the quarter"),
			mcp.Required(),
		),
	)
}

func quarterlyHandler(rec *application.Reconciler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRecordQuarterlyCommand(rec,
			req.GetString("goal_id", ""),
			req.GetString("quarter", ""),
			req.GetFloat("value", 0))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- create_goal ---

func createGoalTool() mcp.Tool {
	return mcp.NewTool("create_goal",
		mcp.WithDescription("Create a new goal. Starts with empty tracking state and not_started status."),
		mcp.WithString("title",
			mcp.Description("Goal title"),
			mcp.Required(),
		),
		mcp.WithString("horizon",
			mcp.Description("Time horizon: weekly, quarterly, annual, lifetime, or ongoing"),
			mcp.Required(),
		),
		mcp.WithString("tracking_type",
			mcp.Description("Tracking mode: boolean or count"),
			mcp.Required(),
		),
		mcp.WithString("category",
			mcp.Description("Display category"),
		),
		mcp.WithNumber("target",
			mcp.Description("Cumulative target value for count goals"),
		),
		mcp.WithString("unit",
			mcp.Description("Unit of the target value"),
		),
		mcp.WithString("parent_goal_id",
			mcp.Description("Id of a parent goal whose ledger this goal rolls into"),
		),
	)
}

func createGoalHandler(rec *application.Reconciler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		goal := &domain.Goal{
			Title:        req.GetString("title", ""),
			Category:     req.GetString("category", ""),
			TimeHorizon:  domain.TimeHorizon(req.GetString("horizon", "")),
			TrackingType: domain.TrackingType(req.GetString("tracking_type", "")),
			ParentGoalID: req.GetString("parent_goal_id", ""),
		}
		if target := req.GetFloat("target", 0); target > 0 {
			goal.Tracking.Target = &domain.Target{
				Value: target,
				Unit:  req.GetString("unit", ""),
			}
		}

		cmd := commands.NewCreateGoalCommand(rec, goal)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- delete_goal ---

func deleteGoalTool() mcp.Tool {
	return mcp.NewTool("delete_goal",
		mcp.WithDescription("Delete a goal by id. Linked goals are not cascaded."),
		mcp.WithString("goal_id",
			mcp.Description("Goal id"),
			mcp.Required(),
		),
	)
}

func deleteGoalHandler(rec *application.Reconciler) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewDeleteGoalCommand(rec, req.GetString("goal_id", ""))
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- recalculate ---

func recalculateTool() mcp.Tool {
	return mcp.NewTool("recalculate",
		mcp.WithDescription("Run the full reconciliation sweep: recompute cached progress and sync linked goals. Safe to call repeatedly."),
	)
}

func recalculateHandler(rec *application.Reconciler) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewRecalculateCommand(rec)
		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
