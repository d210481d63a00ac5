package commands

import (
	"context"
	"time"

	"tempo/internal/application"
	"tempo/internal/domain"
)

// ProjectionResult bundles the display projections for one goal. Lifetime
// and GoodEnough are populated only where they apply.
type ProjectionResult struct {
	Goal       *domain.Goal
	YearToDate domain.YearProjection
	Lifetime   *domain.LifetimeProjection
	GoodEnough *domain.ThresholdStatus
}

// ProjectionCommand computes pacing and trend projections for a goal
// snapshot. Pure read: nothing is written back.
type ProjectionCommand struct {
	rec    *application.Reconciler
	GoalID string
	AsOf   time.Time
	Period string // quarter key for good-enough status; empty uses AsOf's quarter
}

// NewProjectionCommand creates a new ProjectionCommand
func NewProjectionCommand(rec *application.Reconciler, goalID string, asOf time.Time) *ProjectionCommand {
	return &ProjectionCommand{
		rec:    rec,
		GoalID: goalID,
		AsOf:   asOf,
	}
}

// Execute runs the projection command
func (c *ProjectionCommand) Execute(ctx context.Context) (*ProjectionResult, error) {
	if err := application.ValidateRequired("goalID", c.GoalID); err != nil {
		return nil, err
	}

	goal, err := c.rec.Goal(c.GoalID)
	if err != nil {
		return nil, err
	}

	result := &ProjectionResult{
		Goal:       goal,
		YearToDate: domain.YearToDateProjection(goal, c.AsOf),
	}

	if goal.TimeHorizon == domain.HorizonLifetime {
		p := domain.ProjectLifetime(goal, c.AsOf)
		result.Lifetime = &p
	}

	if goal.IsGoodEnough() {
		period := c.Period
		if period == "" {
			q, y := domain.QuarterOf(c.AsOf)
			period = domain.QuarterKey(q, y)
		}
		s := domain.GoodEnoughStatus(goal, period, c.AsOf)
		result.GoodEnough = &s
	}

	return result, nil
}
