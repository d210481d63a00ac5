package commands

import (
	"context"
	"fmt"
	"slices"

	"tempo/internal/application"
	"tempo/internal/domain"
)

// ToggleCompletionResult contains the result of toggling a day
type ToggleCompletionResult struct {
	Goal      *domain.Goal
	Completed bool
	Message   string
}

// ToggleCompletionCommand flips a date's done/not-done state on a boolean
// goal. Toggles never propagate to linked goals.
type ToggleCompletionCommand struct {
	rec    *application.Reconciler
	GoalID string
	Date   string
}

// NewToggleCompletionCommand creates a new ToggleCompletionCommand
func NewToggleCompletionCommand(rec *application.Reconciler, goalID, date string) *ToggleCompletionCommand {
	return &ToggleCompletionCommand{
		rec:    rec,
		GoalID: goalID,
		Date:   date,
	}
}

// Validate checks if the toggle operation is valid
func (c *ToggleCompletionCommand) Validate() error {
	if err := application.ValidateRequired("goalID", c.GoalID); err != nil {
		return err
	}
	return application.ValidateDate("date", c.Date)
}

// Execute runs the toggle command
func (c *ToggleCompletionCommand) Execute(ctx context.Context) (*ToggleCompletionResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	goal, err := c.rec.ToggleCompletion(c.GoalID, c.Date)
	if err != nil {
		return nil, err
	}

	completed := slices.Contains(goal.Tracking.CompletedDates, c.Date)
	msg := fmt.Sprintf("Unmarked %s for %q", c.Date, goal.Title)
	if completed {
		msg = fmt.Sprintf("Marked %s done for %q", c.Date, goal.Title)
	}
	return &ToggleCompletionResult{Goal: goal, Completed: completed, Message: msg}, nil
}
