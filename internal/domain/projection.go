package domain

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// Projections are pure functions over a goal snapshot. They never mutate
// state and never return NaN or Inf: every division is guarded. Raw
// percentages are not clamped to 100 here so callers can still detect
// "exceeding target"; clamping is a display concern.

// YearProjection is the year-to-date pacing estimate for a goal
type YearProjection struct {
	PercentComplete  float64
	ProjectedPercent float64
	CurrentValue     float64
	ProjectedValue   float64
	Target           float64
	Unit             string
}

// YearToDateProjection extrapolates the year-end value from progress so
// far in asOf's year. For count goals the current value is the cached
// progress sum; for boolean goals it is the number of completed dates in
// the year, against a target of daysPerWeek*52 (or 365 when unset).
func YearToDateProjection(goal *Goal, asOf time.Time) YearProjection {
	startOfYear := time.Date(asOf.Year(), time.January, 1, 0, 0, 0, 0, asOf.Location())
	endOfYear := time.Date(asOf.Year(), time.December, 31, 0, 0, 0, 0, asOf.Location())

	daysPassed := daysBetween(startOfYear, asOf)
	totalDays := daysBetween(startOfYear, endOfYear)
	percentOfYearPassed := float64(daysPassed) / float64(totalDays)

	var current, target float64
	unit := "times"
	if goal.TrackingType == TrackingCount {
		current = goal.Tracking.Progress
		if t := goal.Tracking.Target; t != nil {
			target = t.Value
			unit = t.Unit
		}
	} else {
		current = float64(completedInYear(goal.Tracking.CompletedDates, asOf.Year()))
		if goal.DaysPerWeek > 0 {
			target = float64(goal.DaysPerWeek) * 52
		} else {
			target = 365
		}
	}

	var projected float64
	if percentOfYearPassed > 0 {
		projected = current / percentOfYearPassed
	}

	return YearProjection{
		PercentComplete:  safePercent(current, target),
		ProjectedPercent: safePercent(projected, target),
		CurrentValue:     current,
		ProjectedValue:   math.Round(projected),
		Target:           target,
		Unit:             unit,
	}
}

// LifetimeOutcome classifies a lifetime projection result
type LifetimeOutcome int

const (
	// LifetimeOnTrack means a completion year could be projected
	LifetimeOnTrack LifetimeOutcome = iota
	// LifetimeComplete means the target has already been reached
	LifetimeComplete
	// LifetimeInsufficientData means no positive yearly average exists to
	// project from
	LifetimeInsufficientData
)

// LifetimeProjection estimates when a lifetime target will be reached
type LifetimeProjection struct {
	Outcome                 LifetimeOutcome
	CurrentTotal            float64
	Target                  float64
	AvgPerYear              float64
	YearsToCompletion       int
	ProjectedCompletionYear int
}

// ProjectLifetime projects target completion from the rolling average of
// the last five yearly totals (fewer when the history is shorter).
func ProjectLifetime(goal *Goal, asOf time.Time) LifetimeProjection {
	p := LifetimeProjection{CurrentTotal: goal.Tracking.Progress}
	if t := goal.Tracking.Target; t != nil {
		p.Target = t.Value
	}

	yearly := LastNYearTotals(goal.Tracking.CountHistory, 5)
	if len(yearly) > 0 {
		var sum float64
		for _, v := range yearly {
			sum += v
		}
		p.AvgPerYear = sum / float64(len(yearly))
	}

	if p.Target > 0 && p.CurrentTotal >= p.Target {
		p.Outcome = LifetimeComplete
		return p
	}
	if p.AvgPerYear <= 0 {
		p.Outcome = LifetimeInsufficientData
		return p
	}

	p.Outcome = LifetimeOnTrack
	p.YearsToCompletion = int(math.Ceil((p.Target - p.CurrentTotal) / p.AvgPerYear))
	p.ProjectedCompletionYear = asOf.Year() + p.YearsToCompletion
	return p
}

// ThresholdStatus is the three-way good-enough classification
type ThresholdStatus int

const (
	// ThresholdNoData means the period has no recorded value yet (or lies
	// in the future)
	ThresholdNoData ThresholdStatus = iota
	ThresholdMet
	ThresholdClose
	ThresholdMissed
)

func (s ThresholdStatus) String() string {
	switch s {
	case ThresholdMet:
		return "met"
	case ThresholdClose:
		return "close"
	case ThresholdMissed:
		return "missed"
	default:
		return "no data"
	}
}

// GoodEnoughStatus evaluates a good-enough goal for one quarter key
// ("Qn YYYY"). Quarterly-timeframe goals compare that quarter's value
// directly; annual-timeframe goals compare the sum of all quarters in the
// key's year against the full annual threshold (no pro-ration to elapsed
// quarters). A ±10% band around the threshold yields ThresholdClose.
func GoodEnoughStatus(goal *Goal, period string, asOf time.Time) ThresholdStatus {
	quarter, year, err := ParseQuarterKey(period)
	if err != nil {
		return ThresholdNoData
	}

	value, recorded := goal.Tracking.QuarterlyValues[period]
	if goal.Timeframe == TimeframeAnnual {
		curQ, curY := QuarterOf(asOf)
		if year > curY || (year == curY && quarter > curQ) {
			return ThresholdNoData
		}
		if !hasYearData(goal.Tracking.QuarterlyValues, year) {
			return ThresholdNoData
		}
		value = YearTotal(goal.Tracking.QuarterlyValues, year)
	} else if !recorded {
		return ThresholdNoData
	}

	tolerance := goal.Threshold * 0.1
	if meetsThreshold(goal.Relationship, value, goal.Threshold) {
		return ThresholdMet
	}
	if withinTolerance(goal.Relationship, value, goal.Threshold, tolerance) {
		return ThresholdClose
	}
	return ThresholdMissed
}

func meetsThreshold(rel Relationship, value, threshold float64) bool {
	switch rel {
	case RelGreaterOrEqual:
		return value >= threshold
	case RelLessOrEqual:
		return value <= threshold
	case RelGreater:
		return value > threshold
	case RelLess:
		return value < threshold
	case RelEqual:
		return value == threshold
	default:
		return false
	}
}

func withinTolerance(rel Relationship, value, threshold, tolerance float64) bool {
	switch rel {
	case RelGreaterOrEqual, RelGreater:
		return value > threshold-tolerance
	case RelLessOrEqual, RelLess:
		return value < threshold+tolerance
	case RelEqual:
		return math.Abs(value-threshold) <= tolerance
	default:
		return false
	}
}

func hasYearData(values map[string]float64, year int) bool {
	for k := range values {
		if _, y, err := ParseQuarterKey(k); err == nil && y == year {
			return true
		}
	}
	return false
}

func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}

func completedInYear(dates []string, year int) int {
	prefix := strconv.Itoa(year) + "-"
	count := 0
	for _, d := range dates {
		if strings.HasPrefix(d, prefix) {
			count++
		}
	}
	return count
}

func safePercent(value, target float64) float64 {
	if target == 0 {
		return 0
	}
	return value / target * 100
}
