package domain

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Quarter keys are stored as "Q1 2024". When a good-enough goal's quarterly
// values are materialized into its count history the space becomes a dash
// ("Q1-2024") so the key survives as a date-shaped string.

var quarterKeyPattern = regexp.MustCompile(`^Q([1-4]) (\d{4})$`)

// QuarterKey formats a quarter number and year as a quarterly-values key
func QuarterKey(quarter, year int) string {
	return fmt.Sprintf("Q%d %d", quarter, year)
}

// ParseQuarterKey splits a "Qn YYYY" key into quarter number and year
func ParseQuarterKey(key string) (quarter, year int, err error) {
	m := quarterKeyPattern.FindStringSubmatch(key)
	if m == nil {
		return 0, 0, fmt.Errorf("invalid quarter key: %q", key)
	}
	quarter, _ = strconv.Atoi(m[1])
	year, _ = strconv.Atoi(m[2])
	return quarter, year, nil
}

// QuarterOf returns the quarter number (1-4) and year containing t
func QuarterOf(t time.Time) (quarter, year int) {
	return int(t.Month()-1)/3 + 1, t.Year()
}

// SumQuarterlyValues totals all per-quarter values
func SumQuarterlyValues(values map[string]float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// YearTotal sums the quarterly values belonging to one year
func YearTotal(values map[string]float64, year int) float64 {
	suffix := fmt.Sprintf(" %d", year)
	var total float64
	for k, v := range values {
		if strings.HasSuffix(k, suffix) {
			total += v
		}
	}
	return total
}

// HistoryFromQuarterlyValues regenerates a count history from per-quarter
// values: one entry per key with the space replaced by a dash, sorted by
// the resulting date string.
func HistoryFromQuarterlyValues(values map[string]float64) []CountEntry {
	out := make([]CountEntry, 0, len(values))
	for k, v := range values {
		out = append(out, CountEntry{Date: strings.Replace(k, " ", "-", 1), Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out
}
