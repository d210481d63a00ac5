package commands

import (
	"context"
	"fmt"

	"tempo/internal/application"
	"tempo/internal/domain"
)

// RecalculateResult contains the result of a full consistency sweep
type RecalculateResult struct {
	Goals   []*domain.Goal
	Message string
}

// RecalculateCommand runs the full reconciliation sweep over every goal
type RecalculateCommand struct {
	rec *application.Reconciler
}

// NewRecalculateCommand creates a new RecalculateCommand
func NewRecalculateCommand(rec *application.Reconciler) *RecalculateCommand {
	return &RecalculateCommand{rec: rec}
}

// Execute runs the recalculate command
func (c *RecalculateCommand) Execute(ctx context.Context) (*RecalculateResult, error) {
	goals, err := c.rec.RecalculateAll()
	if err != nil {
		return nil, err
	}

	return &RecalculateResult{
		Goals:   goals,
		Message: fmt.Sprintf("Reconciled %d goals", len(goals)),
	}, nil
}

// WeekTransitionResult contains the goals reset by a week transition
type WeekTransitionResult struct {
	Goals   []*domain.Goal
	Message string
}

// WeekTransitionCommand clears scheduled days of weekly goals at the start
// of a new week
type WeekTransitionCommand struct {
	rec *application.Reconciler
}

// NewWeekTransitionCommand creates a new WeekTransitionCommand
func NewWeekTransitionCommand(rec *application.Reconciler) *WeekTransitionCommand {
	return &WeekTransitionCommand{rec: rec}
}

// Execute runs the week transition command
func (c *WeekTransitionCommand) Execute(ctx context.Context) (*WeekTransitionResult, error) {
	goals, err := c.rec.ProcessWeekTransition()
	if err != nil {
		return nil, err
	}

	return &WeekTransitionResult{
		Goals:   goals,
		Message: fmt.Sprintf("Reset schedules for %d weekly goals", len(goals)),
	}, nil
}
