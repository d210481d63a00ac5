package commands

import (
	"context"
	"fmt"

	"tempo/internal/application"
	"tempo/internal/domain"
)

// SetWeekScheduleResult contains the result of scheduling a week
type SetWeekScheduleResult struct {
	Message string
}

// SetWeekScheduleCommand records a goal's scheduled days for a given week
type SetWeekScheduleCommand struct {
	rec           *application.Reconciler
	WeekStartDate string
	GoalID        string
	Days          []int
}

// NewSetWeekScheduleCommand creates a new SetWeekScheduleCommand
func NewSetWeekScheduleCommand(rec *application.Reconciler, weekStartDate, goalID string, days []int) *SetWeekScheduleCommand {
	return &SetWeekScheduleCommand{
		rec:           rec,
		WeekStartDate: weekStartDate,
		GoalID:        goalID,
		Days:          days,
	}
}

// Validate checks if the schedule operation is valid
func (c *SetWeekScheduleCommand) Validate() error {
	if err := application.ValidateDate("weekStartDate", c.WeekStartDate); err != nil {
		return err
	}
	if err := application.ValidateRequired("goalID", c.GoalID); err != nil {
		return err
	}
	return application.ValidateWeekdays("scheduledDays", c.Days)
}

// Execute runs the set week schedule command
func (c *SetWeekScheduleCommand) Execute(ctx context.Context) (*SetWeekScheduleResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.rec.SetWeekSchedule(c.WeekStartDate, c.GoalID, c.Days); err != nil {
		return nil, err
	}

	return &SetWeekScheduleResult{
		Message: fmt.Sprintf("Scheduled %d days for goal %s in week of %s", len(c.Days), c.GoalID, c.WeekStartDate),
	}, nil
}

// UpdateScheduledDaysCommand replaces a goal's current scheduled weekdays
type UpdateScheduledDaysCommand struct {
	rec    *application.Reconciler
	GoalID string
	Days   []int
}

// NewUpdateScheduledDaysCommand creates a new UpdateScheduledDaysCommand
func NewUpdateScheduledDaysCommand(rec *application.Reconciler, goalID string, days []int) *UpdateScheduledDaysCommand {
	return &UpdateScheduledDaysCommand{
		rec:    rec,
		GoalID: goalID,
		Days:   days,
	}
}

// Validate checks if the update operation is valid
func (c *UpdateScheduledDaysCommand) Validate() error {
	if err := application.ValidateRequired("goalID", c.GoalID); err != nil {
		return err
	}
	return application.ValidateWeekdays("scheduledDays", c.Days)
}

// Execute runs the update scheduled days command
func (c *UpdateScheduledDaysCommand) Execute(ctx context.Context) (*domain.Goal, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c.rec.UpdateScheduledDays(c.GoalID, c.Days)
}
