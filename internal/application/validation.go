package application

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ValidateRequired checks if a string field is non-empty (after trimming
// whitespace). Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateDate checks that a date string is a well-formed ISO date
// (YYYY-MM-DD). Malformed dates are rejected before any mutation is
// computed.
func ValidateDate(fieldName, date string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("invalid date %q (expected YYYY-MM-DD)", date),
		}
	}
	return nil
}

// ValidateAmount rejects non-finite progress values. Zero and negative
// amounts are valid input: they remove the day's entry.
func ValidateAmount(fieldName string, amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return &ValidationError{
			Field:   fieldName,
			Message: "amount must be a finite number",
		}
	}
	return nil
}

// ValidateWeekdays checks that every scheduled day is a weekday index 0-6
func ValidateWeekdays(fieldName string, days []int) error {
	for _, d := range days {
		if d < 0 || d > 6 {
			return &ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("invalid weekday index %d (expected 0-6)", d),
			}
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "goalID" -> "goal ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"goalID":        "goal ID",
		"parentGoalID":  "parent goal ID",
		"date":          "date",
		"quarterKey":    "quarter key",
		"weekStartDate": "week start date",
		"title":         "title",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}
