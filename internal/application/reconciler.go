package application

import (
	"time"

	"github.com/google/uuid"

	"tempo/internal/domain"
	"tempo/internal/ports"
)

// Clock returns the current time; injected so sweep debouncing is testable
type Clock func() time.Time

// Reconciler is the single authoritative path for mutating goal progress.
// Every operation is a discrete read-modify-write-propagate unit over the
// full goal collection. The engine does not lock or implement optimistic
// concurrency: if two operations race, the store's per-key write ordering
// is the only consistency guarantee. Known limitation, kept deliberately.
type Reconciler struct {
	store    ports.GoalStore
	clock    Clock
	cooldown time.Duration

	lastSweep time.Time
}

// Option configures a Reconciler
type Option func(*Reconciler)

// WithClock replaces the time source used for sweep debouncing
func WithClock(clock Clock) Option {
	return func(r *Reconciler) { r.clock = clock }
}

// WithSweepCooldown enables debouncing of RecalculateAll: calls within the
// cooldown window of a completed sweep are skipped. Zero disables it.
func WithSweepCooldown(d time.Duration) Option {
	return func(r *Reconciler) { r.cooldown = d }
}

// NewReconciler creates a Reconciler backed by the given store
func NewReconciler(store ports.GoalStore, opts ...Option) *Reconciler {
	r := &Reconciler{
		store: store,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RecordProgress applies a dated amount to a count goal and propagates the
// resulting ledger to every linked goal. An amount <= 0 removes the day's
// entry. Returns the full related set that was rewritten.
func (r *Reconciler) RecordProgress(goalID string, amount float64, date string) ([]*domain.Goal, error) {
	if err := ValidateRequired("goalID", goalID); err != nil {
		return nil, err
	}
	if err := ValidateDate("date", date); err != nil {
		return nil, err
	}
	if err := ValidateAmount("amount", amount); err != nil {
		return nil, err
	}

	goals, goal, err := r.loadGoal(goalID)
	if err != nil {
		return nil, err
	}

	history := domain.UpsertEntry(goal.Tracking.CountHistory, date, amount)
	progress := domain.Sum(history)
	completed := domain.MarkCompletion(goal, date, amount)

	related := domain.RelatedGoals(goals, goal)
	for _, g := range related {
		g.Tracking.CountHistory = append([]domain.CountEntry(nil), history...)
		g.Tracking.Progress = progress
		g.Tracking.CompletedDates = append([]string(nil), completed...)
	}

	if err := r.persist(related); err != nil {
		return nil, err
	}
	return related, nil
}

// ToggleCompletion flips the date's membership in a goal's completed
// dates. Boolean completion never propagates to linked goals; that
// asymmetry with count goals is intentional and preserved.
func (r *Reconciler) ToggleCompletion(goalID, date string) (*domain.Goal, error) {
	if err := ValidateRequired("goalID", goalID); err != nil {
		return nil, err
	}
	if err := ValidateDate("date", date); err != nil {
		return nil, err
	}

	_, goal, err := r.loadGoal(goalID)
	if err != nil {
		return nil, err
	}

	goal.Tracking.CompletedDates = domain.ToggleDate(goal.Tracking.CompletedDates, date)

	if err := r.store.UpsertGoal(goal); err != nil {
		return nil, &StoreError{Op: "upsert goal", Err: err}
	}
	return goal, nil
}

// RecordQuarterlyValue sets the value for one "Qn YYYY" key on a
// good-enough goal. Progress becomes the sum of all quarterly values and
// the count history is regenerated from them, then the whole ledger is
// propagated to linked goals.
func (r *Reconciler) RecordQuarterlyValue(goalID, quarterKey string, value float64) ([]*domain.Goal, error) {
	if err := ValidateRequired("goalID", goalID); err != nil {
		return nil, err
	}
	if _, _, err := domain.ParseQuarterKey(quarterKey); err != nil {
		return nil, &ValidationError{Field: "quarterKey", Message: err.Error()}
	}
	if err := ValidateAmount("value", value); err != nil {
		return nil, err
	}

	goals, goal, err := r.loadGoal(goalID)
	if err != nil {
		return nil, err
	}

	values := make(map[string]float64, len(goal.Tracking.QuarterlyValues)+1)
	for k, v := range goal.Tracking.QuarterlyValues {
		values[k] = v
	}
	values[quarterKey] = value

	progress := domain.SumQuarterlyValues(values)
	history := domain.HistoryFromQuarterlyValues(values)

	related := domain.RelatedGoals(goals, goal)
	for _, g := range related {
		g.Tracking.QuarterlyValues = cloneValues(values)
		g.Tracking.Progress = progress
		g.Tracking.CountHistory = append([]domain.CountEntry(nil), history...)
	}

	if err := r.persist(related); err != nil {
		return nil, err
	}
	return related, nil
}

// RecalculateAll runs the full consistency sweep: progress caches are
// recomputed from their source series, good-enough histories are
// regenerated from quarterly values, and stale parents are overwritten
// from their children (child-to-parent only; a parent is never trusted
// over a child). Only changed goals are written back, so a converged
// collection produces zero writes and the sweep is an idempotent fixpoint.
func (r *Reconciler) RecalculateAll() ([]*domain.Goal, error) {
	goals, err := r.store.GetAllGoals()
	if err != nil {
		return nil, &StoreError{Op: "get all goals", Err: err}
	}

	if r.cooldown > 0 {
		now := r.clock()
		if !r.lastSweep.IsZero() && now.Sub(r.lastSweep) < r.cooldown {
			return goals, nil
		}
	}

	changed := make(map[string]bool)

	for _, g := range goals {
		if g.TrackingType == domain.TrackingCount && len(g.Tracking.CountHistory) > 0 {
			if sum := domain.Sum(g.Tracking.CountHistory); g.Tracking.Progress != sum {
				g.Tracking.Progress = sum
				changed[g.ID] = true
			}
		}

		if g.IsGoodEnough() && len(g.Tracking.QuarterlyValues) > 0 {
			sum := domain.SumQuarterlyValues(g.Tracking.QuarterlyValues)
			history := domain.HistoryFromQuarterlyValues(g.Tracking.QuarterlyValues)
			if g.Tracking.Progress != sum || !historiesEqual(g.Tracking.CountHistory, history) {
				g.Tracking.Progress = sum
				g.Tracking.CountHistory = history
				changed[g.ID] = true
			}
		}
	}

	for _, pair := range domain.LinkedPairs(goals) {
		if ledgersEqual(pair.Child, pair.Parent) {
			continue
		}
		pair.Parent.Tracking.CountHistory = append([]domain.CountEntry(nil), pair.Child.Tracking.CountHistory...)
		pair.Parent.Tracking.Progress = pair.Child.Tracking.Progress
		pair.Parent.Tracking.QuarterlyValues = cloneValues(pair.Child.Tracking.QuarterlyValues)
		changed[pair.Parent.ID] = true
	}

	for _, g := range goals {
		if !changed[g.ID] {
			continue
		}
		if err := r.store.UpsertGoal(g); err != nil {
			return nil, &StoreError{Op: "upsert goal", Err: err}
		}
	}

	r.lastSweep = r.clock()
	return goals, nil
}

// UpdateGoal is the general-purpose edit entry point. When the edited goal
// participates in a linkage, the longest count history among the related
// set wins and is propagated to every peer: a UI edit made from a stale
// copy must not drop ledger entries recorded elsewhere.
func (r *Reconciler) UpdateGoal(updated *domain.Goal) ([]*domain.Goal, error) {
	if updated == nil || updated.ID == "" {
		return nil, &ValidationError{Field: "goalID", Message: "goal ID is required"}
	}

	goals, err := r.store.GetAllGoals()
	if err != nil {
		return nil, &StoreError{Op: "get all goals", Err: err}
	}

	found := false
	for i, g := range goals {
		if g.ID == updated.ID {
			goals[i] = updated
			found = true
			break
		}
	}
	if !found {
		return nil, &GoalNotFoundError{ID: updated.ID}
	}

	related := domain.RelatedGoals(goals, updated)
	if len(related) > 1 {
		authoritative := related[0]
		for _, g := range related[1:] {
			if len(g.Tracking.CountHistory) > len(authoritative.Tracking.CountHistory) {
				authoritative = g
			}
		}
		history := authoritative.Tracking.CountHistory
		progress := domain.Sum(history)
		values := authoritative.Tracking.QuarterlyValues
		if len(values) > 0 {
			progress = domain.SumQuarterlyValues(values)
		}
		for _, g := range related {
			g.Tracking.CountHistory = append([]domain.CountEntry(nil), history...)
			g.Tracking.Progress = progress
			if len(values) > 0 {
				g.Tracking.QuarterlyValues = cloneValues(values)
			}
		}
	}

	if err := r.persist(related); err != nil {
		return nil, err
	}
	return related, nil
}

// CreateGoal registers a new goal with a generated id, not-started status,
// and empty tracking state
func (r *Reconciler) CreateGoal(goal *domain.Goal) (*domain.Goal, error) {
	if err := ValidateRequired("title", goal.Title); err != nil {
		return nil, err
	}
	if err := ValidateWeekdays("scheduledDays", goal.Tracking.ScheduledDays); err != nil {
		return nil, err
	}

	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	goal.Status = domain.StatusNotStarted
	if goal.Tracking.ScheduledDays == nil {
		goal.Tracking.ScheduledDays = []int{}
	}
	goal.Tracking.CompletedDates = []string{}

	if err := r.store.UpsertGoal(goal); err != nil {
		return nil, &StoreError{Op: "upsert goal", Err: err}
	}
	return goal, nil
}

// DeleteGoal removes a goal. Linked goals are not cascaded; a dangling
// parent reference is treated as "no parent" everywhere.
func (r *Reconciler) DeleteGoal(id string) error {
	if err := ValidateRequired("goalID", id); err != nil {
		return err
	}
	if err := r.store.DeleteGoal(id); err != nil {
		return &StoreError{Op: "delete goal", Err: err}
	}
	return nil
}

// Goal returns a single goal by id
func (r *Reconciler) Goal(id string) (*domain.Goal, error) {
	goal, err := r.store.GetGoal(id)
	if err != nil {
		return nil, &StoreError{Op: "get goal", Err: err}
	}
	if goal == nil {
		return nil, &GoalNotFoundError{ID: id}
	}
	return goal, nil
}

// Goals returns the full goal collection
func (r *Reconciler) Goals() ([]*domain.Goal, error) {
	goals, err := r.store.GetAllGoals()
	if err != nil {
		return nil, &StoreError{Op: "get all goals", Err: err}
	}
	return goals, nil
}

// GoalsByHorizon filters the collection by time horizon
func (r *Reconciler) GoalsByHorizon(horizon domain.TimeHorizon) ([]*domain.Goal, error) {
	goals, err := r.Goals()
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Goal, 0, len(goals))
	for _, g := range goals {
		if g.TimeHorizon == horizon {
			out = append(out, g)
		}
	}
	return out, nil
}

// UpdateScheduledDays replaces a goal's scheduled weekdays. Planning only;
// progress state is untouched.
func (r *Reconciler) UpdateScheduledDays(goalID string, days []int) (*domain.Goal, error) {
	if err := ValidateWeekdays("scheduledDays", days); err != nil {
		return nil, err
	}

	_, goal, err := r.loadGoal(goalID)
	if err != nil {
		return nil, err
	}

	goal.Tracking.ScheduledDays = append([]int(nil), days...)
	if err := r.store.UpsertGoal(goal); err != nil {
		return nil, &StoreError{Op: "upsert goal", Err: err}
	}
	return goal, nil
}

// SetWeekSchedule records the scheduled days for a goal in a given week
func (r *Reconciler) SetWeekSchedule(weekStartDate, goalID string, days []int) error {
	if err := ValidateDate("weekStartDate", weekStartDate); err != nil {
		return err
	}
	if err := ValidateRequired("goalID", goalID); err != nil {
		return err
	}
	if err := ValidateWeekdays("scheduledDays", days); err != nil {
		return err
	}
	if err := r.store.UpsertWeeklySchedule(weekStartDate, goalID, days); err != nil {
		return &StoreError{Op: "upsert weekly schedule", Err: err}
	}
	return nil
}

// WeeklySchedules returns all stored week schedules
func (r *Reconciler) WeeklySchedules() ([]*domain.WeeklySchedule, error) {
	schedules, err := r.store.GetAllWeeklySchedules()
	if err != nil {
		return nil, &StoreError{Op: "get weekly schedules", Err: err}
	}
	return schedules, nil
}

// ProcessWeekTransition clears the scheduled days of every weekly-horizon
// goal, called once when a new week starts
func (r *Reconciler) ProcessWeekTransition() ([]*domain.Goal, error) {
	goals, err := r.store.GetAllGoals()
	if err != nil {
		return nil, &StoreError{Op: "get all goals", Err: err}
	}

	var updated []*domain.Goal
	for _, g := range goals {
		if g.TimeHorizon != domain.HorizonWeekly || len(g.Tracking.ScheduledDays) == 0 {
			continue
		}
		g.Tracking.ScheduledDays = []int{}
		if err := r.store.UpsertGoal(g); err != nil {
			return nil, &StoreError{Op: "upsert goal", Err: err}
		}
		updated = append(updated, g)
	}
	return updated, nil
}

// loadGoal reads the full collection and locates the target goal.
// A missing primary goal id is an error; writes never begin before the
// target resolves.
func (r *Reconciler) loadGoal(goalID string) ([]*domain.Goal, *domain.Goal, error) {
	goals, err := r.store.GetAllGoals()
	if err != nil {
		return nil, nil, &StoreError{Op: "get all goals", Err: err}
	}
	for _, g := range goals {
		if g.ID == goalID {
			return goals, g, nil
		}
	}
	return nil, nil, &GoalNotFoundError{ID: goalID}
}

// persist writes each goal in the computed batch. A mid-batch store
// failure aborts the remainder and surfaces the error; already-written
// goals stay written (known gap, the store owns retry policy).
func (r *Reconciler) persist(goals []*domain.Goal) error {
	for _, g := range goals {
		if err := r.store.UpsertGoal(g); err != nil {
			return &StoreError{Op: "upsert goal", Err: err}
		}
	}
	return nil
}

func historiesEqual(a, b []domain.CountEntry) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func quarterlyEqual(a, b map[string]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

func ledgersEqual(child, parent *domain.Goal) bool {
	return historiesEqual(child.Tracking.CountHistory, parent.Tracking.CountHistory) &&
		child.Tracking.Progress == parent.Tracking.Progress &&
		quarterlyEqual(child.Tracking.QuarterlyValues, parent.Tracking.QuarterlyValues)
}

func cloneValues(values map[string]float64) map[string]float64 {
	if values == nil {
		return nil
	}
	out := make(map[string]float64, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}
