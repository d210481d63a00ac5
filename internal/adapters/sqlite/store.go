package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"tempo/internal/domain"
	"tempo/internal/ports"

	_ "modernc.org/sqlite"
)

// Store implements ports.GoalStore using SQLite. Goal records are kept as
// JSON documents alongside a few indexed columns, so the persisted shape
// stays field-for-field compatible with the Goal record itself.
type Store struct {
	db     *sql.DB
	dbPath string
}

// Ensure Store implements GoalStore
var _ ports.GoalStore = (*Store)(nil)

// NewStore creates an unopened Store
func NewStore() *Store {
	return &Store{}
}

// Open initializes the database at dbPath, creating the schema if needed
func (s *Store) Open(dbPath string) error {
	// Expand ~ in path
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}
	s.dbPath = dbPath

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	// Performance pragmas + schema in single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA busy_timeout = 5000;

		CREATE TABLE IF NOT EXISTS goals (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			category TEXT NOT NULL,
			time_horizon TEXT NOT NULL,
			status TEXT NOT NULL,
			data TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS weekly_schedules (
			week_start_date TEXT PRIMARY KEY,
			scheduled_days TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_goals_horizon ON goals(time_horizon);
		CREATE INDEX IF NOT EXISTS idx_goals_category ON goals(category);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// GetAllGoals returns every stored goal
func (s *Store) GetAllGoals() ([]*domain.Goal, error) {
	rows, err := s.db.Query(`SELECT data FROM goals ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer rows.Close()

	var goals []*domain.Goal
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}
		goal, err := decodeGoal(data)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

// GetGoal returns the goal with the given id, or (nil, nil) when absent
func (s *Store) GetGoal(id string) (*domain.Goal, error) {
	var data string
	err := s.db.QueryRow(`SELECT data FROM goals WHERE id = ?`, id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query goal %s: %w", id, err)
	}
	return decodeGoal(data)
}

// UpsertGoal inserts or replaces a goal record
func (s *Store) UpsertGoal(goal *domain.Goal) error {
	data, err := json.Marshal(goal)
	if err != nil {
		return fmt.Errorf("failed to encode goal %s: %w", goal.ID, err)
	}
	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO goals (id, title, category, time_horizon, status, data)
		VALUES (?, ?, ?, ?, ?, ?)
	`, goal.ID, goal.Title, goal.Category, string(goal.TimeHorizon), string(goal.Status), string(data))
	if err != nil {
		return fmt.Errorf("failed to upsert goal %s: %w", goal.ID, err)
	}
	return nil
}

// DeleteGoal removes a goal by id. Deleting an unknown id is a no-op.
func (s *Store) DeleteGoal(id string) error {
	if _, err := s.db.Exec(`DELETE FROM goals WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete goal %s: %w", id, err)
	}
	return nil
}

// GetAllWeeklySchedules returns every stored week schedule
func (s *Store) GetAllWeeklySchedules() ([]*domain.WeeklySchedule, error) {
	rows, err := s.db.Query(`SELECT week_start_date, scheduled_days FROM weekly_schedules ORDER BY week_start_date`)
	if err != nil {
		return nil, fmt.Errorf("failed to query weekly schedules: %w", err)
	}
	defer rows.Close()

	var schedules []*domain.WeeklySchedule
	for rows.Next() {
		var weekStart, daysJSON string
		if err := rows.Scan(&weekStart, &daysJSON); err != nil {
			return nil, fmt.Errorf("failed to scan weekly schedule: %w", err)
		}
		days := make(map[string][]int)
		if err := json.Unmarshal([]byte(daysJSON), &days); err != nil {
			return nil, fmt.Errorf("failed to decode weekly schedule %s: %w", weekStart, err)
		}
		schedules = append(schedules, &domain.WeeklySchedule{
			WeekStartDate: weekStart,
			ScheduledDays: days,
		})
	}
	return schedules, rows.Err()
}

// UpsertWeeklySchedule sets one goal's days within a week's schedule,
// merging into the existing record for that week if present
func (s *Store) UpsertWeeklySchedule(weekStartDate, goalID string, days []int) error {
	var daysJSON string
	scheduled := make(map[string][]int)
	err := s.db.QueryRow(`SELECT scheduled_days FROM weekly_schedules WHERE week_start_date = ?`, weekStartDate).Scan(&daysJSON)
	if err != nil && err != sql.ErrNoRows {
		return fmt.Errorf("failed to query weekly schedule %s: %w", weekStartDate, err)
	}
	if err == nil {
		if err := json.Unmarshal([]byte(daysJSON), &scheduled); err != nil {
			return fmt.Errorf("failed to decode weekly schedule %s: %w", weekStartDate, err)
		}
	}

	scheduled[goalID] = days
	encoded, err := json.Marshal(scheduled)
	if err != nil {
		return fmt.Errorf("failed to encode weekly schedule %s: %w", weekStartDate, err)
	}

	_, err = s.db.Exec(`
		INSERT OR REPLACE INTO weekly_schedules (week_start_date, scheduled_days)
		VALUES (?, ?)
	`, weekStartDate, string(encoded))
	if err != nil {
		return fmt.Errorf("failed to upsert weekly schedule %s: %w", weekStartDate, err)
	}
	return nil
}

func decodeGoal(data string) (*domain.Goal, error) {
	var goal domain.Goal
	if err := json.Unmarshal([]byte(data), &goal); err != nil {
		return nil, fmt.Errorf("failed to decode goal: %w", err)
	}
	return &goal, nil
}
