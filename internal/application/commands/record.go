package commands

import (
	"context"
	"fmt"

	"tempo/internal/application"
	"tempo/internal/domain"
)

// RecordProgressResult contains the result of recording a progress amount
type RecordProgressResult struct {
	Goals   []*domain.Goal
	Message string
}

// RecordProgressCommand records a dated amount against a count goal and
// syncs the ledger across its linked goals
type RecordProgressCommand struct {
	rec    *application.Reconciler
	GoalID string
	Amount float64
	Date   string
}

// NewRecordProgressCommand creates a new RecordProgressCommand
func NewRecordProgressCommand(rec *application.Reconciler, goalID string, amount float64, date string) *RecordProgressCommand {
	return &RecordProgressCommand{
		rec:    rec,
		GoalID: goalID,
		Amount: amount,
		Date:   date,
	}
}

// Validate checks if the record operation is valid
func (c *RecordProgressCommand) Validate() error {
	if err := application.ValidateRequired("goalID", c.GoalID); err != nil {
		return err
	}
	if err := application.ValidateDate("date", c.Date); err != nil {
		return err
	}
	return application.ValidateAmount("amount", c.Amount)
}

// Execute runs the record progress command
func (c *RecordProgressCommand) Execute(ctx context.Context) (*RecordProgressResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	goals, err := c.rec.RecordProgress(c.GoalID, c.Amount, c.Date)
	if err != nil {
		return nil, err
	}

	target := goals[0]
	msg := fmt.Sprintf("Recorded %g for %q on %s (total %g)", c.Amount, target.Title, c.Date, target.Tracking.Progress)
	if c.Amount <= 0 {
		msg = fmt.Sprintf("Removed entry for %q on %s (total %g)", target.Title, c.Date, target.Tracking.Progress)
	}
	return &RecordProgressResult{Goals: goals, Message: msg}, nil
}

// RecordQuarterlyResult contains the result of setting a quarterly value
type RecordQuarterlyResult struct {
	Goals   []*domain.Goal
	Message string
}

// RecordQuarterlyCommand sets the value for one quarter on a good-enough
// goal
type RecordQuarterlyCommand struct {
	rec        *application.Reconciler
	GoalID     string
	QuarterKey string
	Value      float64
}

// NewRecordQuarterlyCommand creates a new RecordQuarterlyCommand
func NewRecordQuarterlyCommand(rec *application.Reconciler, goalID, quarterKey string, value float64) *RecordQuarterlyCommand {
	return &RecordQuarterlyCommand{
		rec:        rec,
		GoalID:     goalID,
		QuarterKey: quarterKey,
		Value:      value,
	}
}

// Validate checks if the quarterly record operation is valid
func (c *RecordQuarterlyCommand) Validate() error {
	if err := application.ValidateRequired("goalID", c.GoalID); err != nil {
		return err
	}
	if _, _, err := domain.ParseQuarterKey(c.QuarterKey); err != nil {
		return &application.ValidationError{
			Field:   "quarterKey",
			Message: err.Error(),
		}
	}
	return application.ValidateAmount("value", c.Value)
}

// Execute runs the record quarterly command
func (c *RecordQuarterlyCommand) Execute(ctx context.Context) (*RecordQuarterlyResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	goals, err := c.rec.RecordQuarterlyValue(c.GoalID, c.QuarterKey, c.Value)
	if err != nil {
		return nil, err
	}

	target := goals[0]
	return &RecordQuarterlyResult{
		Goals:   goals,
		Message: fmt.Sprintf("Set %s to %g for %q (total %g)", c.QuarterKey, c.Value, target.Title, target.Tracking.Progress),
	}, nil
}
