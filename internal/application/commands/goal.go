package commands

import (
	"context"
	"fmt"

	"tempo/internal/application"
	"tempo/internal/domain"
)

// CreateGoalResult contains the result of creating a goal
type CreateGoalResult struct {
	Goal    *domain.Goal
	Message string
}

// CreateGoalCommand registers a new goal
type CreateGoalCommand struct {
	rec  *application.Reconciler
	Goal *domain.Goal
}

// NewCreateGoalCommand creates a new CreateGoalCommand
func NewCreateGoalCommand(rec *application.Reconciler, goal *domain.Goal) *CreateGoalCommand {
	return &CreateGoalCommand{rec: rec, Goal: goal}
}

// Validate checks if the create operation is valid
func (c *CreateGoalCommand) Validate() error {
	if c.Goal == nil {
		return &application.ValidationError{
			Field:   "goal",
			Message: "goal is required",
		}
	}
	if err := application.ValidateRequired("title", c.Goal.Title); err != nil {
		return err
	}
	switch c.Goal.TrackingType {
	case domain.TrackingBoolean, domain.TrackingCount:
	default:
		return &application.ValidationError{
			Field:   "trackingType",
			Message: fmt.Sprintf("invalid tracking type: %q", c.Goal.TrackingType),
		}
	}
	return application.ValidateWeekdays("scheduledDays", c.Goal.Tracking.ScheduledDays)
}

// Execute runs the create goal command
func (c *CreateGoalCommand) Execute(ctx context.Context) (*CreateGoalResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	goal, err := c.rec.CreateGoal(c.Goal)
	if err != nil {
		return nil, err
	}

	return &CreateGoalResult{
		Goal:    goal,
		Message: fmt.Sprintf("Created goal: %s %q", goal.ID, goal.Title),
	}, nil
}

// UpdateGoalResult contains the result of a general goal edit
type UpdateGoalResult struct {
	Goals   []*domain.Goal
	Message string
}

// UpdateGoalCommand persists an edited goal, re-deriving the progress
// ledger across its linked peers
type UpdateGoalCommand struct {
	rec  *application.Reconciler
	Goal *domain.Goal
}

// NewUpdateGoalCommand creates a new UpdateGoalCommand
func NewUpdateGoalCommand(rec *application.Reconciler, goal *domain.Goal) *UpdateGoalCommand {
	return &UpdateGoalCommand{rec: rec, Goal: goal}
}

// Validate checks if the update operation is valid
func (c *UpdateGoalCommand) Validate() error {
	if c.Goal == nil {
		return &application.ValidationError{
			Field:   "goal",
			Message: "goal is required",
		}
	}
	return application.ValidateRequired("goalID", c.Goal.ID)
}

// Execute runs the update goal command
func (c *UpdateGoalCommand) Execute(ctx context.Context) (*UpdateGoalResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	goals, err := c.rec.UpdateGoal(c.Goal)
	if err != nil {
		return nil, err
	}

	return &UpdateGoalResult{
		Goals:   goals,
		Message: fmt.Sprintf("Updated goal: %s %q", c.Goal.ID, c.Goal.Title),
	}, nil
}

// DeleteGoalResult contains the result of a delete operation
type DeleteGoalResult struct {
	DeletedID string
	Message   string
}

// DeleteGoalCommand deletes a goal by id. Linked goals are left in place;
// dangling parent references are tolerated everywhere.
type DeleteGoalCommand struct {
	rec *application.Reconciler
	ID  string
}

// NewDeleteGoalCommand creates a new DeleteGoalCommand
func NewDeleteGoalCommand(rec *application.Reconciler, id string) *DeleteGoalCommand {
	return &DeleteGoalCommand{rec: rec, ID: id}
}

// Validate checks if the delete operation is valid
func (c *DeleteGoalCommand) Validate() error {
	return application.ValidateRequired("goalID", c.ID)
}

// Execute runs the delete goal command
func (c *DeleteGoalCommand) Execute(ctx context.Context) (*DeleteGoalResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.rec.DeleteGoal(c.ID); err != nil {
		return nil, err
	}

	return &DeleteGoalResult{
		DeletedID: c.ID,
		Message:   fmt.Sprintf("Deleted goal: %s", c.ID),
	}, nil
}
