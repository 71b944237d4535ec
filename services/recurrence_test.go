package services

import (
	"testing"
	"time"

	"task-quest-system/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextDueDateZeroCompletionsReturnsOriginal(t *testing.T) {
	original := date(2024, time.March, 15)
	cadences := []models.Cadence{
		models.CadenceDaily,
		models.CadenceWeekly,
		models.CadenceMonthly,
		models.CadenceYearly,
		models.CadenceOnce,
	}
	for _, c := range cadences {
		got := NextDueDate(original, 0, 3, c)
		if !got.Equal(original) {
			t.Fatalf("cadence %s: expected %s, got %s", c, original, got)
		}
	}
}

func TestNextDueDateDaily(t *testing.T) {
	got := NextDueDate(date(2024, time.March, 15), 2, 3, models.CadenceDaily)
	if want := date(2024, time.March, 21); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestNextDueDateWeekly(t *testing.T) {
	got := NextDueDate(date(2024, time.March, 1), 3, 2, models.CadenceWeekly)
	if want := date(2024, time.April, 12); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestNextDueDateMonthlyClampsToLeapFebruary(t *testing.T) {
	got := NextDueDate(date(2024, time.January, 31), 1, 1, models.CadenceMonthly)
	if want := date(2024, time.February, 29); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestNextDueDateMonthlyClampsToRegularFebruary(t *testing.T) {
	got := NextDueDate(date(2025, time.January, 31), 1, 1, models.CadenceMonthly)
	if want := date(2025, time.February, 28); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestNextDueDateMonthlyCarriesYear(t *testing.T) {
	got := NextDueDate(date(2025, time.November, 15), 1, 2, models.CadenceMonthly)
	if want := date(2026, time.January, 15); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}

	// 14 months forward from March
	got = NextDueDate(date(2024, time.March, 10), 7, 2, models.CadenceMonthly)
	if want := date(2025, time.May, 10); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestNextDueDateYearlyClampsLeapDay(t *testing.T) {
	got := NextDueDate(date(2024, time.February, 29), 1, 1, models.CadenceYearly)
	if want := date(2025, time.February, 28); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}

	// Four years later lands on a leap year again
	got = NextDueDate(date(2024, time.February, 29), 4, 1, models.CadenceYearly)
	if want := date(2028, time.February, 29); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
}

func TestNextDueDateUnknownCadenceReturnsOriginal(t *testing.T) {
	original := date(2024, time.June, 1)
	got := NextDueDate(original, 5, 2, models.Cadence("fortnightly"))
	if !got.Equal(original) {
		t.Fatalf("expected %s, got %s", original, got)
	}
}
