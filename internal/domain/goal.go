package domain

// TimeHorizon classifies a goal by the period it is tracked over
type TimeHorizon string

const (
	HorizonWeekly    TimeHorizon = "weekly"
	HorizonQuarterly TimeHorizon = "quarterly"
	HorizonAnnual    TimeHorizon = "annual"
	HorizonLifetime  TimeHorizon = "lifetime"
	HorizonOngoing   TimeHorizon = "ongoing"
)

// TrackingType determines how progress is recorded against a goal
type TrackingType string

const (
	// TrackingBoolean marks whole days as done/not-done
	TrackingBoolean TrackingType = "boolean"
	// TrackingCount accumulates numeric daily amounts toward an optional target
	TrackingCount TrackingType = "count"
)

// GoalStatus is set by user action; it is never derived by the engine
type GoalStatus string

const (
	StatusNotStarted GoalStatus = "not_started"
	StatusInProgress GoalStatus = "in_progress"
	StatusCompleted  GoalStatus = "completed"
	StatusArchived   GoalStatus = "archived"
)

// GoalType tags special goal kinds. Only "good_enough" is defined: a
// threshold goal compared per period instead of accumulated toward a target.
type GoalType string

const GoalTypeGoodEnough GoalType = "good_enough"

// Relationship is the comparison operator for good-enough thresholds
type Relationship string

const (
	RelGreaterOrEqual Relationship = ">="
	RelLessOrEqual    Relationship = "<="
	RelGreater        Relationship = ">"
	RelLess           Relationship = "<"
	RelEqual          Relationship = "="
)

// Timeframe scopes a good-enough threshold to a quarter or a whole year
type Timeframe string

const (
	TimeframeQuarterly Timeframe = "quarterly"
	TimeframeAnnual    Timeframe = "annual"
)

// Target is the cumulative numeric goal for count tracking
type Target struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Checkpoint is a display-only sub-milestone; the engine never reconciles it
type Checkpoint struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	DueDate   string `json:"dueDate,omitempty"`
}

// Tracking holds a goal's progress state. CountHistory is the source of
// truth for count goals; Progress is a denormalized cache of its sum (or
// of QuarterlyValues for good-enough goals) and must never diverge.
type Tracking struct {
	ScheduledDays   []int              `json:"scheduledDays"`
	CompletedDates  []string           `json:"completedDates"`
	CountHistory    []CountEntry       `json:"countHistory,omitempty"`
	Progress        float64            `json:"progress"`
	Target          *Target            `json:"target,omitempty"`
	QuarterlyValues map[string]float64 `json:"quarterlyValues,omitempty"`
	Checkpoints     []Checkpoint       `json:"checkpoints,omitempty"`
}

// Goal is the central entity: a trackable objective with a time horizon,
// tracking mode, and progress history. ParentGoalID establishes a one-level
// link whose progress ledger is kept identical to this goal's.
type Goal struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Category     string       `json:"category"`
	Status       GoalStatus   `json:"status"`
	TimeHorizon  TimeHorizon  `json:"timeHorizon"`
	TrackingType TrackingType `json:"trackingType"`
	Type         GoalType     `json:"type,omitempty"`
	DaysPerWeek  int          `json:"daysPerWeek,omitempty"`
	ParentGoalID string       `json:"parentGoalId,omitempty"`
	Tracking     Tracking     `json:"tracking"`

	// Good-enough threshold fields; unset for other goal kinds
	Threshold    float64      `json:"threshold,omitempty"`
	Relationship Relationship `json:"relationship,omitempty"`
	Timeframe    Timeframe    `json:"timeframe,omitempty"`
	Unit         string       `json:"unit,omitempty"`
}

// WeeklySchedule is a period-indexed projection of intended scheduled days
// for weeks other than the current one. Planning display only; it never
// participates in progress reconciliation.
type WeeklySchedule struct {
	WeekStartDate string           `json:"weekStartDate"`
	ScheduledDays map[string][]int `json:"scheduledDays"`
}

// IsGoodEnough reports whether the goal is a threshold-style goal
func (g *Goal) IsGoodEnough() bool {
	return g.Type == GoalTypeGoodEnough
}

// CloneTracking returns a deep copy of the goal's tracking state.
// Reconciliation writes the same ledger onto every linked goal; each goal
// must own its slices so a later write to one cannot alias another.
func (g *Goal) CloneTracking() Tracking {
	t := g.Tracking
	if g.Tracking.ScheduledDays != nil {
		t.ScheduledDays = append([]int(nil), g.Tracking.ScheduledDays...)
	}
	if g.Tracking.CompletedDates != nil {
		t.CompletedDates = append([]string(nil), g.Tracking.CompletedDates...)
	}
	if g.Tracking.CountHistory != nil {
		t.CountHistory = append([]CountEntry(nil), g.Tracking.CountHistory...)
	}
	if g.Tracking.QuarterlyValues != nil {
		t.QuarterlyValues = make(map[string]float64, len(g.Tracking.QuarterlyValues))
		for k, v := range g.Tracking.QuarterlyValues {
			t.QuarterlyValues[k] = v
		}
	}
	if g.Tracking.Checkpoints != nil {
		t.Checkpoints = append([]Checkpoint(nil), g.Tracking.Checkpoints...)
	}
	return t
}
