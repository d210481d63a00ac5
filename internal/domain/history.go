package domain

import (
	"regexp"
	"sort"
	"strings"
)

// CountEntry is one dated progress amount. Dates are ISO strings for daily
// entries ("2024-01-10"); good-enough goals also materialize quarter keys
// ("Q1-2024") into the same series.
type CountEntry struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// UpsertEntry returns a new history with the entry for date replaced or
// inserted, sorted ascending by date string. A value <= 0 removes the
// entry instead of storing it: zero rows are noise in the series and the
// completion policy would never count them.
func UpsertEntry(history []CountEntry, date string, value float64) []CountEntry {
	out := RemoveEntry(history, date)
	if value <= 0 {
		return out
	}
	out = append(out, CountEntry{Date: date, Value: value})
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}

// RemoveEntry returns a new history without the entry for date
func RemoveEntry(history []CountEntry, date string) []CountEntry {
	out := make([]CountEntry, 0, len(history))
	for _, e := range history {
		if e.Date != date {
			out = append(out, e)
		}
	}
	return out
}

// EntryValue returns the recorded value for date, or 0 if absent
func EntryValue(history []CountEntry, date string) float64 {
	for _, e := range history {
		if e.Date == date {
			return e.Value
		}
	}
	return 0
}

// Sum totals all values in the history; an empty history sums to 0
func Sum(history []CountEntry) float64 {
	var total float64
	for _, e := range history {
		total += e.Value
	}
	return total
}

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// entryYear extracts the 4-digit year from a date key. Three shapes are
// accepted: a plain year ("2023"), and compound keys where either the
// first or second dash-delimited segment is a year ("2023-Q1", "2023-05-14",
// "Q1-2023"). Anything else is unparseable.
func entryYear(date string) (string, bool) {
	if yearPattern.MatchString(date) {
		return date, true
	}
	parts := strings.Split(date, "-")
	if len(parts) < 2 {
		return "", false
	}
	if yearPattern.MatchString(parts[0]) {
		return parts[0], true
	}
	if yearPattern.MatchString(parts[1]) {
		return parts[1], true
	}
	return "", false
}

// GroupByYear sums history values per year. Entries whose date key does
// not contain a recognizable year are dropped.
func GroupByYear(history []CountEntry) map[string]float64 {
	totals := make(map[string]float64)
	for _, e := range history {
		year, ok := entryYear(e.Date)
		if !ok {
			continue
		}
		totals[year] += e.Value
	}
	return totals
}

// LastNYearTotals returns up to n yearly sums for the most recent years in
// the history, ordered oldest to newest. Fewer are returned when the
// history spans fewer years.
func LastNYearTotals(history []CountEntry, n int) []float64 {
	totals := GroupByYear(history)
	years := make([]string, 0, len(totals))
	for y := range totals {
		years = append(years, y)
	}
	sort.Strings(years)
	if len(years) > n {
		years = years[len(years)-n:]
	}
	out := make([]float64, 0, len(years))
	for _, y := range years {
		out = append(out, totals[y])
	}
	return out
}
