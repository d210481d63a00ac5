package domain

import "slices"

// IsComplete decides whether date counts as done for the goal.
//
// Boolean goals: complete iff the date is in completedDates.
// Count goals: complete iff the day's recorded value meets the target
// (v >= target.value), or is simply positive when no target is set. This
// is the single canonical rule; every call site goes through here.
func IsComplete(goal *Goal, date string) bool {
	if goal.TrackingType == TrackingBoolean {
		return slices.Contains(goal.Tracking.CompletedDates, date)
	}
	return meetsDailyTarget(goal, EntryValue(goal.Tracking.CountHistory, date))
}

// meetsDailyTarget applies the count completion rule to a day's value
func meetsDailyTarget(goal *Goal, value float64) bool {
	if t := goal.Tracking.Target; t != nil && t.Value > 0 {
		return value >= t.Value
	}
	return value > 0
}

// MarkCompletion returns completedDates with date added or removed
// according to whether value completes the day, keeping the set sorted.
func MarkCompletion(goal *Goal, date string, value float64) []string {
	dates := goal.Tracking.CompletedDates
	if meetsDailyTarget(goal, value) {
		if slices.Contains(dates, date) {
			return dates
		}
		out := append(append([]string(nil), dates...), date)
		slices.Sort(out)
		return out
	}
	out := make([]string, 0, len(dates))
	for _, d := range dates {
		if d != date {
			out = append(out, d)
		}
	}
	return out
}

// ToggleDate flips membership of date in a sorted date set
func ToggleDate(dates []string, date string) []string {
	if slices.Contains(dates, date) {
		out := make([]string, 0, len(dates))
		for _, d := range dates {
			if d != date {
				out = append(out, d)
			}
		}
		return out
	}
	out := append(append([]string(nil), dates...), date)
	slices.Sort(out)
	return out
}
