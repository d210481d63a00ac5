package commands

import (
	"context"

	"tempo/internal/application"
	"tempo/internal/domain"
)

// ListGoalsCommand lists goals, optionally filtered by time horizon
type ListGoalsCommand struct {
	rec     *application.Reconciler
	Horizon domain.TimeHorizon // empty lists everything
}

// NewListGoalsCommand creates a new ListGoalsCommand
func NewListGoalsCommand(rec *application.Reconciler, horizon domain.TimeHorizon) *ListGoalsCommand {
	return &ListGoalsCommand{rec: rec, Horizon: horizon}
}

// Execute runs the list goals command
func (c *ListGoalsCommand) Execute(ctx context.Context) ([]*domain.Goal, error) {
	if c.Horizon == "" {
		return c.rec.Goals()
	}
	return c.rec.GoalsByHorizon(c.Horizon)
}

// ShowGoalCommand fetches a single goal by id
type ShowGoalCommand struct {
	rec    *application.Reconciler
	GoalID string
}

// NewShowGoalCommand creates a new ShowGoalCommand
func NewShowGoalCommand(rec *application.Reconciler, goalID string) *ShowGoalCommand {
	return &ShowGoalCommand{rec: rec, GoalID: goalID}
}

// Execute runs the show goal command
func (c *ShowGoalCommand) Execute(ctx context.Context) (*domain.Goal, error) {
	if err := application.ValidateRequired("goalID", c.GoalID); err != nil {
		return nil, err
	}
	return c.rec.Goal(c.GoalID)
}
