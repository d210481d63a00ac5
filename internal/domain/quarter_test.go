package domain

import (
	"testing"
	"time"
)

func TestParseQuarterKey(t *testing.T) {
	tests := []struct {
		key     string
		quarter int
		year    int
		wantErr bool
	}{
		{"Q1 2024", 1, 2024, false},
		{"Q4 2019", 4, 2019, false},
		{"Q5 2024", 0, 0, true},
		{"Q1-2024", 0, 0, true},
		{"2024", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			q, y, err := ParseQuarterKey(tt.key)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseQuarterKey(%q) error = %v, wantErr %v", tt.key, err, tt.wantErr)
			}
			if q != tt.quarter || y != tt.year {
				t.Errorf("ParseQuarterKey(%q) = Q%d %d, want Q%d %d", tt.key, q, y, tt.quarter, tt.year)
			}
		})
	}
}

func TestQuarterOf(t *testing.T) {
	tests := []struct {
		month   time.Month
		quarter int
	}{
		{time.January, 1},
		{time.March, 1},
		{time.April, 2},
		{time.June, 2},
		{time.July, 3},
		{time.October, 4},
		{time.December, 4},
	}

	for _, tt := range tests {
		q, y := QuarterOf(time.Date(2024, tt.month, 15, 0, 0, 0, 0, time.UTC))
		if q != tt.quarter || y != 2024 {
			t.Errorf("QuarterOf(%s) = Q%d %d, want Q%d 2024", tt.month, q, y, tt.quarter)
		}
	}
}

func TestYearTotal(t *testing.T) {
	values := map[string]float64{
		"Q1 2024": 10,
		"Q2 2024": 5,
		"Q4 2023": 99,
	}

	if got := YearTotal(values, 2024); got != 15 {
		t.Errorf("YearTotal(2024) = %g, want 15", got)
	}
	if got := YearTotal(values, 2022); got != 0 {
		t.Errorf("YearTotal(2022) = %g, want 0", got)
	}
}

func TestHistoryFromQuarterlyValues(t *testing.T) {
	values := map[string]float64{
		"Q2 2024": 5,
		"Q1 2024": 10,
		"Q4 2023": 3,
	}

	history := HistoryFromQuarterlyValues(values)

	want := []CountEntry{
		{Date: "Q1-2024", Value: 10},
		{Date: "Q2-2024", Value: 5},
		{Date: "Q4-2023", Value: 3},
	}
	if len(history) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(history))
	}
	for i, w := range want {
		if history[i] != w {
			t.Errorf("position %d: got %+v, want %+v", i, history[i], w)
		}
	}
}

func TestHistoryFromQuarterlyValues_RoundTripsThroughGroupByYear(t *testing.T) {
	values := map[string]float64{
		"Q1 2022": 10,
		"Q2 2022": 5,
		"Q1 2023": 7,
	}

	totals := GroupByYear(HistoryFromQuarterlyValues(values))

	if got := totals["2022"]; got != 15 {
		t.Errorf("2022 total = %g, want 15", got)
	}
	if got := totals["2023"]; got != 7 {
		t.Errorf("2023 total = %g, want 7", got)
	}
}
