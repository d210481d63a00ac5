package application

import (
	"errors"
	"testing"
	"time"

	"tempo/internal/domain"
)

// fakeStore is an in-memory GoalStore. It hands out deep copies so tests
// exercise the real persist path instead of shared-pointer mutation.
type fakeStore struct {
	goals     []*domain.Goal
	schedules map[string]*domain.WeeklySchedule
	upserts   int
}

func newFakeStore(goals ...*domain.Goal) *fakeStore {
	return &fakeStore{
		goals:     goals,
		schedules: make(map[string]*domain.WeeklySchedule),
	}
}

func cloneGoal(g *domain.Goal) *domain.Goal {
	c := *g
	c.Tracking = g.CloneTracking()
	return &c
}

func (s *fakeStore) GetAllGoals() ([]*domain.Goal, error) {
	out := make([]*domain.Goal, len(s.goals))
	for i, g := range s.goals {
		out[i] = cloneGoal(g)
	}
	return out, nil
}

func (s *fakeStore) GetGoal(id string) (*domain.Goal, error) {
	for _, g := range s.goals {
		if g.ID == id {
			return cloneGoal(g), nil
		}
	}
	return nil, nil
}

func (s *fakeStore) UpsertGoal(goal *domain.Goal) error {
	s.upserts++
	for i, g := range s.goals {
		if g.ID == goal.ID {
			s.goals[i] = cloneGoal(goal)
			return nil
		}
	}
	s.goals = append(s.goals, cloneGoal(goal))
	return nil
}

func (s *fakeStore) DeleteGoal(id string) error {
	out := s.goals[:0]
	for _, g := range s.goals {
		if g.ID != id {
			out = append(out, g)
		}
	}
	s.goals = out
	return nil
}

func (s *fakeStore) GetAllWeeklySchedules() ([]*domain.WeeklySchedule, error) {
	out := make([]*domain.WeeklySchedule, 0, len(s.schedules))
	for _, ws := range s.schedules {
		out = append(out, ws)
	}
	return out, nil
}

func (s *fakeStore) UpsertWeeklySchedule(weekStartDate, goalID string, days []int) error {
	ws, ok := s.schedules[weekStartDate]
	if !ok {
		ws = &domain.WeeklySchedule{
			WeekStartDate: weekStartDate,
			ScheduledDays: make(map[string][]int),
		}
		s.schedules[weekStartDate] = ws
	}
	ws.ScheduledDays[goalID] = append([]int(nil), days...)
	return nil
}

func (s *fakeStore) mustGet(t *testing.T, id string) *domain.Goal {
	t.Helper()
	for _, g := range s.goals {
		if g.ID == id {
			return g
		}
	}
	t.Fatalf("goal %s not in store", id)
	return nil
}

func countGoal(id string, target float64) *domain.Goal {
	g := &domain.Goal{
		ID:           id,
		Title:        id,
		TrackingType: domain.TrackingCount,
		TimeHorizon:  domain.HorizonAnnual,
	}
	if target > 0 {
		g.Tracking.Target = &domain.Target{Value: target, Unit: "pages"}
	}
	return g
}

func TestRecordProgress_SumInvariant(t *testing.T) {
	store := newFakeStore(countGoal("a", 100))
	rec := NewReconciler(store)

	if _, err := rec.RecordProgress("a", 5, "2024-01-10"); err != nil {
		t.Fatalf("RecordProgress failed: %v", err)
	}
	if _, err := rec.RecordProgress("a", 3, "2024-01-12"); err != nil {
		t.Fatalf("RecordProgress failed: %v", err)
	}

	g := store.mustGet(t, "a")
	if g.Tracking.Progress != 8 {
		t.Errorf("progress = %g, want 8", g.Tracking.Progress)
	}
	if got := domain.Sum(g.Tracking.CountHistory); got != g.Tracking.Progress {
		t.Errorf("progress %g diverged from history sum %g", g.Tracking.Progress, got)
	}
}

func TestRecordProgress_SameDateReplaces(t *testing.T) {
	store := newFakeStore(countGoal("a", 100))
	rec := NewReconciler(store)

	rec.RecordProgress("a", 5, "2024-01-10")
	rec.RecordProgress("a", 8, "2024-01-10")

	g := store.mustGet(t, "a")
	if len(g.Tracking.CountHistory) != 1 {
		t.Fatalf("expected one entry per date, got %d", len(g.Tracking.CountHistory))
	}
	if g.Tracking.Progress != 8 {
		t.Errorf("progress = %g, want 8", g.Tracking.Progress)
	}
}

func TestRecordProgress_ZeroRemovesEntryAndCompletion(t *testing.T) {
	store := newFakeStore(countGoal("a", 5))
	rec := NewReconciler(store)

	rec.RecordProgress("a", 5, "2024-01-10")
	if g := store.mustGet(t, "a"); len(g.Tracking.CompletedDates) != 1 {
		t.Fatalf("expected date marked complete, got %v", g.Tracking.CompletedDates)
	}

	rec.RecordProgress("a", 0, "2024-01-10")

	g := store.mustGet(t, "a")
	if len(g.Tracking.CountHistory) != 0 {
		t.Errorf("expected entry removed, got %v", g.Tracking.CountHistory)
	}
	if g.Tracking.Progress != 0 {
		t.Errorf("progress = %g, want 0", g.Tracking.Progress)
	}
	if len(g.Tracking.CompletedDates) != 0 {
		t.Errorf("expected completion cleared, got %v", g.Tracking.CompletedDates)
	}
}

func TestRecordProgress_CompletionBoundary(t *testing.T) {
	store := newFakeStore(countGoal("a", 10))
	rec := NewReconciler(store)

	rec.RecordProgress("a", 9, "2024-01-10")
	if g := store.mustGet(t, "a"); len(g.Tracking.CompletedDates) != 0 {
		t.Errorf("9 against target 10 should not complete, got %v", g.Tracking.CompletedDates)
	}

	rec.RecordProgress("a", 10, "2024-01-10")
	if g := store.mustGet(t, "a"); len(g.Tracking.CompletedDates) != 1 {
		t.Errorf("10 against target 10 should complete, got %v", g.Tracking.CompletedDates)
	}
}

func TestRecordProgress_PropagatesToLinkedGoals(t *testing.T) {
	parent := countGoal("lifetime", 100)
	child := countGoal("annual", 24)
	child.ParentGoalID = "lifetime"
	store := newFakeStore(parent, child)
	rec := NewReconciler(store)

	related, err := rec.RecordProgress("annual", 5, "2024-01-10")
	if err != nil {
		t.Fatalf("RecordProgress failed: %v", err)
	}
	if len(related) != 2 {
		t.Fatalf("expected both goals rewritten, got %d", len(related))
	}

	p := store.mustGet(t, "lifetime")
	c := store.mustGet(t, "annual")
	if p.Tracking.Progress != 5 || c.Tracking.Progress != 5 {
		t.Errorf("progress not synced: parent %g, child %g", p.Tracking.Progress, c.Tracking.Progress)
	}
	if len(p.Tracking.CountHistory) != 1 {
		t.Errorf("parent history not synced: %v", p.Tracking.CountHistory)
	}
}

func TestRecordProgress_DanglingParentTolerated(t *testing.T) {
	orphan := countGoal("orphan", 10)
	orphan.ParentGoalID = "deleted-long-ago"
	store := newFakeStore(orphan)
	rec := NewReconciler(store)

	related, err := rec.RecordProgress("orphan", 3, "2024-01-10")
	if err != nil {
		t.Fatalf("RecordProgress failed: %v", err)
	}
	if len(related) != 1 {
		t.Errorf("expected only the orphan rewritten, got %d", len(related))
	}
}

func TestRecordProgress_Validation(t *testing.T) {
	store := newFakeStore(countGoal("a", 10))
	rec := NewReconciler(store)

	tests := []struct {
		name   string
		goalID string
		date   string
		want   error
	}{
		{"empty goal id", "", "2024-01-10", ErrInvalidInput},
		{"bad date", "a", "Jan 10", ErrInvalidInput},
		{"unknown goal", "nope", "2024-01-10", ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := rec.RecordProgress(tt.goalID, 5, tt.date)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestToggleCompletion_DoesNotPropagate(t *testing.T) {
	parent := &domain.Goal{ID: "p", Title: "p", TrackingType: domain.TrackingBoolean}
	child := &domain.Goal{ID: "c", Title: "c", TrackingType: domain.TrackingBoolean, ParentGoalID: "p"}
	store := newFakeStore(parent, child)
	rec := NewReconciler(store)

	if _, err := rec.ToggleCompletion("c", "2024-01-10"); err != nil {
		t.Fatalf("ToggleCompletion failed: %v", err)
	}

	if got := store.mustGet(t, "c").Tracking.CompletedDates; len(got) != 1 {
		t.Errorf("child not toggled: %v", got)
	}
	if got := store.mustGet(t, "p").Tracking.CompletedDates; len(got) != 0 {
		t.Errorf("boolean toggle leaked to parent: %v", got)
	}
}

func TestToggleCompletion_RoundTrip(t *testing.T) {
	g := &domain.Goal{ID: "g", Title: "g", TrackingType: domain.TrackingBoolean}
	store := newFakeStore(g)
	rec := NewReconciler(store)

	rec.ToggleCompletion("g", "2024-01-10")
	rec.ToggleCompletion("g", "2024-01-10")

	if got := store.mustGet(t, "g").Tracking.CompletedDates; len(got) != 0 {
		t.Errorf("double toggle should restore empty set, got %v", got)
	}
}

func TestRecordQuarterlyValue_RegeneratesLedger(t *testing.T) {
	g := countGoal("ge", 0)
	g.Type = domain.GoalTypeGoodEnough
	g.Threshold = 80
	g.Relationship = domain.RelGreaterOrEqual
	g.Timeframe = domain.TimeframeQuarterly
	store := newFakeStore(g)
	rec := NewReconciler(store)

	rec.RecordQuarterlyValue("ge", "Q1 2024", 10)
	if _, err := rec.RecordQuarterlyValue("ge", "Q2 2024", 5); err != nil {
		t.Fatalf("RecordQuarterlyValue failed: %v", err)
	}

	got := store.mustGet(t, "ge")
	if got.Tracking.Progress != 15 {
		t.Errorf("progress = %g, want 15", got.Tracking.Progress)
	}
	want := []domain.CountEntry{
		{Date: "Q1-2024", Value: 10},
		{Date: "Q2-2024", Value: 5},
	}
	if len(got.Tracking.CountHistory) != len(want) {
		t.Fatalf("history = %v, want %v", got.Tracking.CountHistory, want)
	}
	for i, w := range want {
		if got.Tracking.CountHistory[i] != w {
			t.Errorf("history[%d] = %+v, want %+v", i, got.Tracking.CountHistory[i], w)
		}
	}
}

func TestRecordQuarterlyValue_RejectsBadKey(t *testing.T) {
	store := newFakeStore(countGoal("ge", 0))
	rec := NewReconciler(store)

	_, err := rec.RecordQuarterlyValue("ge", "Q1-2024", 10)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want invalid input", err)
	}
}

func TestRecalculateAll_FixesDriftedProgress(t *testing.T) {
	g := countGoal("a", 100)
	g.Tracking.CountHistory = []domain.CountEntry{
		{Date: "2024-01-10", Value: 5},
		{Date: "2024-01-12", Value: 3},
	}
	g.Tracking.Progress = 99 // stale cache
	store := newFakeStore(g)
	rec := NewReconciler(store)

	if _, err := rec.RecalculateAll(); err != nil {
		t.Fatalf("RecalculateAll failed: %v", err)
	}

	if got := store.mustGet(t, "a").Tracking.Progress; got != 8 {
		t.Errorf("progress = %g, want 8", got)
	}
}

func TestRecalculateAll_SyncsStaleParent(t *testing.T) {
	parent := countGoal("p", 100)
	child := countGoal("c", 24)
	child.ParentGoalID = "p"
	child.Tracking.CountHistory = []domain.CountEntry{{Date: "2024-01-10", Value: 5}}
	child.Tracking.Progress = 5
	store := newFakeStore(parent, child)
	rec := NewReconciler(store)

	if _, err := rec.RecalculateAll(); err != nil {
		t.Fatalf("RecalculateAll failed: %v", err)
	}

	p := store.mustGet(t, "p")
	if p.Tracking.Progress != 5 || len(p.Tracking.CountHistory) != 1 {
		t.Errorf("parent not synced from child: progress %g, history %v",
			p.Tracking.Progress, p.Tracking.CountHistory)
	}
}

func TestRecalculateAll_IdempotentFixpoint(t *testing.T) {
	parent := countGoal("p", 100)
	child := countGoal("c", 24)
	child.ParentGoalID = "p"
	child.Tracking.CountHistory = []domain.CountEntry{{Date: "2024-01-10", Value: 5}}
	child.Tracking.Progress = 99
	store := newFakeStore(parent, child)
	rec := NewReconciler(store)

	if _, err := rec.RecalculateAll(); err != nil {
		t.Fatalf("first sweep failed: %v", err)
	}

	writesAfterFirst := store.upserts
	if _, err := rec.RecalculateAll(); err != nil {
		t.Fatalf("second sweep failed: %v", err)
	}

	if store.upserts != writesAfterFirst {
		t.Errorf("converged collection still wrote %d goals", store.upserts-writesAfterFirst)
	}
}

func TestRecalculateAll_GoodEnoughHistoryRegenerated(t *testing.T) {
	g := countGoal("ge", 0)
	g.Type = domain.GoalTypeGoodEnough
	g.Tracking.QuarterlyValues = map[string]float64{"Q1 2024": 10, "Q2 2024": 5}
	g.Tracking.Progress = 0
	store := newFakeStore(g)
	rec := NewReconciler(store)

	if _, err := rec.RecalculateAll(); err != nil {
		t.Fatalf("RecalculateAll failed: %v", err)
	}

	got := store.mustGet(t, "ge")
	if got.Tracking.Progress != 15 {
		t.Errorf("progress = %g, want 15", got.Tracking.Progress)
	}
	if len(got.Tracking.CountHistory) != 2 {
		t.Errorf("history not regenerated: %v", got.Tracking.CountHistory)
	}
}

func TestRecalculateAll_CooldownSkipsSweep(t *testing.T) {
	g := countGoal("a", 100)
	store := newFakeStore(g)

	now := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	rec := NewReconciler(store,
		WithClock(func() time.Time { return now }),
		WithSweepCooldown(5*time.Second),
	)

	if _, err := rec.RecalculateAll(); err != nil {
		t.Fatalf("first sweep failed: %v", err)
	}

	// Drift introduced behind the reconciler's back, inside the window
	store.goals[0].Tracking.CountHistory = []domain.CountEntry{{Date: "2024-01-10", Value: 5}}
	store.goals[0].Tracking.Progress = 99

	now = now.Add(2 * time.Second)
	rec.RecalculateAll()
	if got := store.mustGet(t, "a").Tracking.Progress; got != 99 {
		t.Errorf("sweep ran inside cooldown window, progress = %g", got)
	}

	now = now.Add(10 * time.Second)
	rec.RecalculateAll()
	if got := store.mustGet(t, "a").Tracking.Progress; got != 5 {
		t.Errorf("sweep after cooldown did not fix drift, progress = %g", got)
	}
}

func TestUpdateGoal_LongestHistoryWins(t *testing.T) {
	parent := countGoal("p", 100)
	parent.Tracking.CountHistory = []domain.CountEntry{
		{Date: "2024-01-01", Value: 1},
		{Date: "2024-01-02", Value: 2},
	}
	parent.Tracking.Progress = 3
	child := countGoal("c", 24)
	child.ParentGoalID = "p"
	store := newFakeStore(parent, child)
	rec := NewReconciler(store)

	// Edit the child from a stale copy with an empty ledger
	edited := countGoal("c", 24)
	edited.ParentGoalID = "p"
	edited.Title = "renamed"

	if _, err := rec.UpdateGoal(edited); err != nil {
		t.Fatalf("UpdateGoal failed: %v", err)
	}

	c := store.mustGet(t, "c")
	if c.Title != "renamed" {
		t.Errorf("edit not applied: %s", c.Title)
	}
	if len(c.Tracking.CountHistory) != 2 || c.Tracking.Progress != 3 {
		t.Errorf("stale edit dropped ledger entries: history %v, progress %g",
			c.Tracking.CountHistory, c.Tracking.Progress)
	}
}

func TestUpdateGoal_UnknownGoal(t *testing.T) {
	store := newFakeStore()
	rec := NewReconciler(store)

	_, err := rec.UpdateGoal(countGoal("ghost", 10))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestCreateGoal_AssignsDefaults(t *testing.T) {
	store := newFakeStore()
	rec := NewReconciler(store)

	goal, err := rec.CreateGoal(&domain.Goal{Title: "Read more", TrackingType: domain.TrackingCount})
	if err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}

	if goal.ID == "" {
		t.Error("expected generated id")
	}
	if goal.Status != domain.StatusNotStarted {
		t.Errorf("status = %s, want not_started", goal.Status)
	}
	if goal.Tracking.CompletedDates == nil || goal.Tracking.ScheduledDays == nil {
		t.Error("expected empty tracking slices, got nil")
	}
}

func TestCreateGoal_RequiresTitle(t *testing.T) {
	rec := NewReconciler(newFakeStore())

	_, err := rec.CreateGoal(&domain.Goal{})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("error = %v, want invalid input", err)
	}
}

func TestGoal_NotFound(t *testing.T) {
	rec := NewReconciler(newFakeStore())

	_, err := rec.Goal("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want not found", err)
	}
}

func TestProcessWeekTransition_ClearsWeeklyGoalsOnly(t *testing.T) {
	weekly := &domain.Goal{ID: "w", Title: "w", TimeHorizon: domain.HorizonWeekly}
	weekly.Tracking.ScheduledDays = []int{1, 3, 5}
	annual := countGoal("a", 10)
	annual.Tracking.ScheduledDays = []int{2}
	store := newFakeStore(weekly, annual)
	rec := NewReconciler(store)

	updated, err := rec.ProcessWeekTransition()
	if err != nil {
		t.Fatalf("ProcessWeekTransition failed: %v", err)
	}

	if len(updated) != 1 || updated[0].ID != "w" {
		t.Fatalf("expected only the weekly goal reset, got %d", len(updated))
	}
	if got := store.mustGet(t, "w").Tracking.ScheduledDays; len(got) != 0 {
		t.Errorf("weekly schedule not cleared: %v", got)
	}
	if got := store.mustGet(t, "a").Tracking.ScheduledDays; len(got) != 1 {
		t.Errorf("annual goal should keep its days: %v", got)
	}
}

func TestSetWeekSchedule_MergesIntoWeek(t *testing.T) {
	store := newFakeStore(countGoal("a", 10), countGoal("b", 10))
	rec := NewReconciler(store)

	rec.SetWeekSchedule("2024-01-08", "a", []int{1, 3})
	if err := rec.SetWeekSchedule("2024-01-08", "b", []int{2}); err != nil {
		t.Fatalf("SetWeekSchedule failed: %v", err)
	}

	schedules, err := rec.WeeklySchedules()
	if err != nil {
		t.Fatalf("WeeklySchedules failed: %v", err)
	}
	if len(schedules) != 1 {
		t.Fatalf("expected one week record, got %d", len(schedules))
	}
	if len(schedules[0].ScheduledDays) != 2 {
		t.Errorf("expected both goals in the week, got %v", schedules[0].ScheduledDays)
	}
}
