package ports

import "tempo/internal/domain"

// GoalStore defines the interface for durable goal storage. The engine
// reads the full collection, computes updates, and writes whole goals back;
// it never patches records in place. Per-key write ordering is the only
// consistency guarantee a store has to provide.
type GoalStore interface {
	// Goal operations
	GetAllGoals() ([]*domain.Goal, error)
	// GetGoal returns (nil, nil) when no goal has the id
	GetGoal(id string) (*domain.Goal, error)
	UpsertGoal(goal *domain.Goal) error
	DeleteGoal(id string) error

	// Weekly schedule operations (planning display only)
	GetAllWeeklySchedules() ([]*domain.WeeklySchedule, error)
	UpsertWeeklySchedule(weekStartDate, goalID string, days []int) error
}
