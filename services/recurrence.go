package services

import (
	"time"

	"task-quest-system/models"
)

// NextDueDate computes the due date of the next occurrence of a recurring
// task from its immutable anchor date and the number of completions so far.
// It never looks at "today", so a task's schedule can always be re-derived.
//
// Monthly and yearly cadences clamp the day-of-month to the last valid day
// of the target month (Jan 31 + 1 month → Feb 28/29). One-time and unknown
// cadences return the original date unchanged.
func NextDueDate(original time.Time, timesCompleted, interval int, cadence models.Cadence) time.Time {
	switch cadence {
	case models.CadenceDaily:
		return original.AddDate(0, 0, interval*timesCompleted)
	case models.CadenceWeekly:
		return original.AddDate(0, 0, 7*interval*timesCompleted)
	case models.CadenceMonthly:
		month := int(original.Month()) + interval*timesCompleted
		year := original.Year() + (month-1)/12
		month = (month-1)%12 + 1
		day := clampDay(original.Day(), year, time.Month(month))
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, original.Location())
	case models.CadenceYearly:
		year := original.Year() + interval*timesCompleted
		day := clampDay(original.Day(), year, original.Month())
		return time.Date(year, original.Month(), day, 0, 0, 0, 0, original.Location())
	default:
		return time.Date(original.Year(), original.Month(), original.Day(), 0, 0, 0, 0, original.Location())
	}
}

// clampDay limits day to the number of days in the given month.
func clampDay(day, year int, month time.Month) int {
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if day > last {
		return last
	}
	return day
}
