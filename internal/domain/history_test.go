package domain

import (
	"testing"
)

func TestUpsertEntry_ReplacesExistingDate(t *testing.T) {
	history := []CountEntry{
		{Date: "2024-01-10", Value: 5},
		{Date: "2024-01-12", Value: 3},
	}

	out := UpsertEntry(history, "2024-01-10", 8)

	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if got := EntryValue(out, "2024-01-10"); got != 8 {
		t.Errorf("expected replaced value 8, got %g", got)
	}
}

func TestUpsertEntry_ZeroRemovesEntry(t *testing.T) {
	history := []CountEntry{
		{Date: "2024-01-10", Value: 5},
		{Date: "2024-01-12", Value: 3},
	}

	out := UpsertEntry(history, "2024-01-10", 0)

	if len(out) != 1 {
		t.Fatalf("expected 1 entry after removal, got %d", len(out))
	}
	if out[0].Date != "2024-01-12" {
		t.Errorf("wrong surviving entry: %s", out[0].Date)
	}
}

func TestUpsertEntry_NegativeRemovesEntry(t *testing.T) {
	history := []CountEntry{{Date: "2024-01-10", Value: 5}}

	out := UpsertEntry(history, "2024-01-10", -2)

	if len(out) != 0 {
		t.Errorf("expected empty history, got %d entries", len(out))
	}
}

func TestUpsertEntry_KeepsHistorySorted(t *testing.T) {
	history := []CountEntry{
		{Date: "2024-01-05", Value: 1},
		{Date: "2024-01-20", Value: 2},
	}

	out := UpsertEntry(history, "2024-01-12", 4)

	want := []string{"2024-01-05", "2024-01-12", "2024-01-20"}
	if len(out) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(out))
	}
	for i, w := range want {
		if out[i].Date != w {
			t.Errorf("position %d: expected %s, got %s", i, w, out[i].Date)
		}
	}
}

func TestUpsertEntry_DoesNotMutateInput(t *testing.T) {
	history := []CountEntry{{Date: "2024-01-10", Value: 5}}

	UpsertEntry(history, "2024-01-10", 8)

	if history[0].Value != 5 {
		t.Errorf("input history mutated: %g", history[0].Value)
	}
}

func TestSum(t *testing.T) {
	tests := []struct {
		name    string
		history []CountEntry
		want    float64
	}{
		{"empty", nil, 0},
		{"single", []CountEntry{{Date: "2024-01-10", Value: 5}}, 5},
		{"multiple", []CountEntry{
			{Date: "2024-01-10", Value: 5},
			{Date: "2024-01-12", Value: 2.5},
			{Date: "2024-02-01", Value: 1},
		}, 8.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sum(tt.history); got != tt.want {
				t.Errorf("Sum() = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestGroupByYear_MixedKeyShapes(t *testing.T) {
	history := []CountEntry{
		{Date: "Q1-2022", Value: 10},
		{Date: "2022-Q2", Value: 5},
		{Date: "2023", Value: 7},
	}

	totals := GroupByYear(history)

	if got := totals["2022"]; got != 15 {
		t.Errorf("2022 total = %g, want 15", got)
	}
	if got := totals["2023"]; got != 7 {
		t.Errorf("2023 total = %g, want 7", got)
	}
	if len(totals) != 2 {
		t.Errorf("expected 2 years, got %d", len(totals))
	}
}

func TestGroupByYear_FullDates(t *testing.T) {
	history := []CountEntry{
		{Date: "2024-01-10", Value: 3},
		{Date: "2024-06-01", Value: 2},
		{Date: "2023-12-31", Value: 1},
	}

	totals := GroupByYear(history)

	if got := totals["2024"]; got != 5 {
		t.Errorf("2024 total = %g, want 5", got)
	}
	if got := totals["2023"]; got != 1 {
		t.Errorf("2023 total = %g, want 1", got)
	}
}

func TestGroupByYear_DropsUnparseableKeys(t *testing.T) {
	history := []CountEntry{
		{Date: "not-a-date", Value: 99},
		{Date: "garbage", Value: 1},
		{Date: "2024-01-10", Value: 3},
	}

	totals := GroupByYear(history)

	if len(totals) != 1 {
		t.Fatalf("expected 1 year, got %d", len(totals))
	}
	if got := totals["2024"]; got != 3 {
		t.Errorf("2024 total = %g, want 3", got)
	}
}

func TestLastNYearTotals_OrderAndWindow(t *testing.T) {
	history := []CountEntry{
		{Date: "2019-01-01", Value: 1},
		{Date: "2020-01-01", Value: 2},
		{Date: "2021-01-01", Value: 3},
		{Date: "2022-01-01", Value: 4},
	}

	got := LastNYearTotals(history, 3)

	want := []float64{2, 3, 4}
	if len(got) != len(want) {
		t.Fatalf("expected %d totals, got %d", len(want), len(got))
	}
	for i, w := range want {
		if got[i] != w {
			t.Errorf("position %d: got %g, want %g", i, got[i], w)
		}
	}
}

func TestLastNYearTotals_ShortHistory(t *testing.T) {
	history := []CountEntry{{Date: "2024-01-01", Value: 9}}

	got := LastNYearTotals(history, 5)

	if len(got) != 1 || got[0] != 9 {
		t.Errorf("expected [9], got %v", got)
	}
}
